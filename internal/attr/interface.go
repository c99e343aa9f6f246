package attr

import (
	"context"
)

// Loader is the interface for a format-specific declaration loader.
type Loader interface {
	// Load reads configuration from the given paths, each a file or a
	// directory searched recursively, and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
