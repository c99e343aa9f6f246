package hclattr

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/chronotype/internal/attr"
	"github.com/vk/chronotype/registry"
	"github.com/zclconf/go-cty/cty"
)

// translateSchema converts a decoded schema block into its model form.
func translateSchema(sb *schemaBlock) (*attr.Schema, error) {
	schema := &attr.Schema{
		Name:       sb.Name,
		Attributes: make(map[string]*attr.AttributeDef, len(sb.Attributes)),
	}

	for _, ab := range sb.Attributes {
		def, err := translateAttribute(sb.Name, ab)
		if err != nil {
			return nil, err
		}
		if _, exists := schema.Attributes[def.Name]; exists {
			return nil, fmt.Errorf("schema %q: duplicate attribute %q", sb.Name, def.Name)
		}
		schema.Attributes[def.Name] = def
	}

	return schema, nil
}

// translateAttribute resolves the type keyword and evaluates the default
// expression, if any, into a concrete value.
func translateAttribute(schemaName string, ab *attributeBlock) (*attr.AttributeDef, error) {
	typeName := hcl.ExprAsKeyword(ab.Type)
	if typeName == "" {
		return nil, fmt.Errorf("schema %q, attribute %q: type must be a bare keyword such as datetime or duration", schemaName, ab.Name)
	}

	def := &attr.AttributeDef{
		Name:        ab.Name,
		Type:        registry.TypeName(typeName),
		Description: ab.Description,
		Optional:    ab.Optional,
	}

	if ab.Default != nil {
		val, diags := ab.Default.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("schema %q, attribute %q: invalid default: %w", schemaName, ab.Name, diags)
		}
		// A default is only meaningful when it evaluates to a non-null
		// value, and its presence makes the attribute optional.
		if !val.IsNull() {
			def.Default = &val
			def.Optional = true
		}
	}

	return def, nil
}

// translateObject evaluates every value expression in the object body.
// Expressions must be self-contained literals; there are no variables to
// resolve against.
func translateObject(ob *objectBlock) (*attr.Object, error) {
	attrs, diags := ob.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("object %q %q: %w", ob.SchemaName, ob.Name, diags)
	}

	object := &attr.Object{
		SchemaName: ob.SchemaName,
		Name:       ob.Name,
		Values:     make(map[string]cty.Value, len(attrs)),
	}

	for name, a := range attrs {
		val, valDiags := a.Expr.Value(nil)
		if valDiags.HasErrors() {
			return nil, fmt.Errorf("object %q %q, attribute %q: %w", ob.SchemaName, ob.Name, name, valDiags)
		}
		object.Values[name] = val
	}

	return object, nil
}
