package attr

import (
	"github.com/vk/chronotype/registry"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of everything loaded
// from configuration: all schema declarations and all objects.
type Model struct {
	Schemas map[string]*Schema
	Objects []*Object
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{Schemas: make(map[string]*Schema)}
}

// Schema is a named set of attribute declarations.
type Schema struct {
	Name       string
	Attributes map[string]*AttributeDef
}

// AttributeDef declares a single typed attribute within a schema.
type AttributeDef struct {
	Name        string
	Type        registry.TypeName
	Description string

	// Default, when non-nil, is coerced through the registry exactly like
	// a provided value. Loaders set Optional alongside it.
	Default  *cty.Value
	Optional bool
}

// Object is the format-agnostic representation of one block of attribute
// values, addressed to a schema by name. Values hold whatever loose shapes
// the source format produced; the binder coerces them later.
type Object struct {
	SchemaName string
	Name       string
	Values     map[string]cty.Value
}
