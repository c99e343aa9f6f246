// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the load-validate-bind-report lifecycle,
// decoupled from any specific entrypoint such as a CLI.
package app
