package hclattr

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/chronotype/internal/attr"
	"github.com/vk/chronotype/internal/ctxlog"
	"github.com/vk/chronotype/internal/fsutil"
)

// Loader is the HCL-specific implementation of the attr.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL declaration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL loading process. It is agnostic to the
// origin of the paths and accepts any mix of schema and object blocks in
// any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*attr.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := attr.NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, sb := range root.Schemas {
			schema, err := translateSchema(sb)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			if _, exists := model.Schemas[schema.Name]; exists {
				return nil, fmt.Errorf("in %s: duplicate schema %q", file, schema.Name)
			}
			model.Schemas[schema.Name] = schema
		}

		for _, ob := range root.Objects {
			object, err := translateObject(ob)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Objects = append(model.Objects, object)
		}
	}

	logger.Debug("HCL loading complete.", "schemas", len(model.Schemas), "objects", len(model.Objects))
	return model, nil
}
