package hclattr

import (
	"github.com/hashicorp/hcl/v2"
)

// attributeBlock represents an `attribute` block within a schema block.
type attributeBlock struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
	Optional    bool           `hcl:"optional,optional"`
}

// schemaBlock represents a top-level `schema` block declaring a named set
// of typed attributes.
type schemaBlock struct {
	Name       string            `hcl:"name,label"`
	Attributes []*attributeBlock `hcl:"attribute,block"`
}

// objectBlock represents a top-level `object` block carrying attribute
// values for one schema. Its body holds the values as plain HCL attributes.
type objectBlock struct {
	SchemaName string   `hcl:"schema_name,label"`
	Name       string   `hcl:"instance_name,label"`
	Body       hcl.Body `hcl:",remain"`
}

// fileRoot decodes all recognized top-level blocks from one file. There is
// no remain body: a block this tool does not understand is an error.
type fileRoot struct {
	Schemas []*schemaBlock `hcl:"schema,block"`
	Objects []*objectBlock `hcl:"object,block"`
}
