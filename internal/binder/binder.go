package binder

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/vk/chronotype/internal/attr"
	"github.com/vk/chronotype/internal/ctxlog"
	"github.com/vk/chronotype/registry"
	"github.com/zclconf/go-cty/cty"
)

// BoundObject is one object with every attribute coerced to its canonical
// form. Values only contains attributes that were provided or defaulted;
// optional attributes without a value are simply absent.
type BoundObject struct {
	SchemaName string
	Name       string
	Values     map[string]cty.Value
}

// AttributeNames returns the bound attribute names in lexical order.
func (b *BoundObject) AttributeNames() []string {
	return slices.Sorted(maps.Keys(b.Values))
}

// Bind coerces every object in the model against its schema. It stops at
// the first failing object so the error stays close to its cause; run
// ValidateModel first to surface structural problems in bulk.
func Bind(ctx context.Context, model *attr.Model, reg *registry.Registry) ([]*BoundObject, error) {
	logger := ctxlog.FromContext(ctx)

	bound := make([]*BoundObject, 0, len(model.Objects))
	for _, object := range model.Objects {
		schema, ok := model.Schemas[object.SchemaName]
		if !ok {
			return nil, fmt.Errorf("object '%s.%s': references undeclared schema '%s'",
				object.SchemaName, object.Name, object.SchemaName)
		}

		b, err := bindObject(object, schema, reg)
		if err != nil {
			return nil, err
		}
		logger.Debug("Object bound.", "schema", object.SchemaName, "name", object.Name, "attributes", len(b.Values))
		bound = append(bound, b)
	}

	return bound, nil
}

// bindObject applies declaration defaults and coerces one object's values.
func bindObject(object *attr.Object, schema *attr.Schema, reg *registry.Registry) (*BoundObject, error) {
	for _, valueName := range slices.Sorted(maps.Keys(object.Values)) {
		if _, declared := schema.Attributes[valueName]; !declared {
			return nil, fmt.Errorf("object '%s.%s': value for undeclared attribute '%s'",
				object.SchemaName, object.Name, valueName)
		}
	}

	out := &BoundObject{
		SchemaName: object.SchemaName,
		Name:       object.Name,
		Values:     make(map[string]cty.Value, len(schema.Attributes)),
	}

	for _, name := range slices.Sorted(maps.Keys(schema.Attributes)) {
		def := schema.Attributes[name]

		val, provided := object.Values[name]
		switch {
		case provided:
		case def.Default != nil:
			val = *def.Default
		case def.Optional:
			continue
		default:
			return nil, fmt.Errorf("object '%s.%s': missing required attribute %q",
				object.SchemaName, object.Name, name)
		}

		coerced, err := reg.Coerce(def.Type, val)
		if err != nil {
			return nil, fmt.Errorf("object '%s.%s': attribute %q: %w",
				object.SchemaName, object.Name, name, err)
		}
		out.Values[name] = coerced
	}

	return out, nil
}
