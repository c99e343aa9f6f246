// Package cli turns command-line arguments into an app.Config. It owns the
// usage text, all flag validation, and process-level concerns like exit
// codes, keeping the entrypoint in cmd thin.
package cli
