package binder

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/vk/chronotype/internal/attr"
	"github.com/vk/chronotype/internal/ctxlog"
	"github.com/vk/chronotype/registry"
)

// ValidateModel performs a strict parity check between the model and the
// registry. It collects every problem instead of stopping at the first, so
// a single run surfaces all wiring mistakes at once.
func ValidateModel(ctx context.Context, model *attr.Model, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	registered := typeNameList(reg)

	for _, schemaName := range slices.Sorted(maps.Keys(model.Schemas)) {
		schema := model.Schemas[schemaName]
		for _, attrName := range slices.Sorted(maps.Keys(schema.Attributes)) {
			def := schema.Attributes[attrName]
			if !reg.IsRegistered(def.Type) {
				errs = append(errs, fmt.Sprintf("schema '%s': attribute '%s' references unknown type '%s' (registered: %s)",
					schemaName, attrName, def.Type, registered))
			}
		}
	}

	for _, object := range model.Objects {
		schema, ok := model.Schemas[object.SchemaName]
		if !ok {
			errs = append(errs, fmt.Sprintf("object '%s.%s': references undeclared schema '%s'",
				object.SchemaName, object.Name, object.SchemaName))
			continue
		}
		for _, valueName := range slices.Sorted(maps.Keys(object.Values)) {
			if _, declared := schema.Attributes[valueName]; !declared {
				errs = append(errs, fmt.Sprintf("object '%s.%s': value for undeclared attribute '%s'",
					object.SchemaName, object.Name, valueName))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("model validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Model validation passed.", "schemas", len(model.Schemas), "objects", len(model.Objects))
	return nil
}

// typeNameList renders the registered type names for error messages.
func typeNameList(reg *registry.Registry) string {
	names := reg.TypeNames()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = string(name)
	}
	return strings.Join(parts, ", ")
}
