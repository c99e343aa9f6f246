package attr

import (
	"context"
	"fmt"
)

// MultiLoader runs several loaders over the same paths and merges their
// models. It backs the "auto" format: a directory can mix HCL and YAML
// files as long as schema names stay unique across formats.
type MultiLoader []Loader

// Load runs each loader in order and folds the results into one model.
// Objects keep their per-loader order; a schema declared by two loaders is
// an error.
func (ml MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	merged := NewModel()
	for _, loader := range ml {
		model, err := loader.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		for name, schema := range model.Schemas {
			if _, exists := merged.Schemas[name]; exists {
				return nil, fmt.Errorf("schema %q is declared by more than one source format", name)
			}
			merged.Schemas[name] = schema
		}
		merged.Objects = append(merged.Objects, model.Objects...)
	}
	return merged, nil
}
