package yamlattr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/chronotype/internal/attr"
	"github.com/vk/chronotype/internal/ctxlog"
	"github.com/vk/chronotype/internal/fsutil"
	"github.com/vk/chronotype/registry"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the attr.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML declaration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .yaml/.yml file reachable from paths and translates the
// declarations into the format-agnostic model. Unknown keys are rejected by
// the decoder, matching the strictness of the HCL loader.
func (l *Loader) Load(ctx context.Context, paths ...string) (*attr.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := attr.NewModel()

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}

		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)

		for {
			var doc document
			if err := decoder.Decode(&doc); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, fmt.Errorf("failed to parse YAML file %s: %w", file, err)
			}
			if err := mergeDocument(model, &doc); err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
		}
	}

	logger.Debug("YAML loading complete.", "schemas", len(model.Schemas), "objects", len(model.Objects))
	return model, nil
}

// mergeDocument translates one decoded document into the model.
func mergeDocument(model *attr.Model, doc *document) error {
	for schemaName, attrDocs := range doc.Schemas {
		if _, exists := model.Schemas[schemaName]; exists {
			return fmt.Errorf("duplicate schema %q", schemaName)
		}
		schema := &attr.Schema{
			Name:       schemaName,
			Attributes: make(map[string]*attr.AttributeDef, len(attrDocs)),
		}
		for attrName, ad := range attrDocs {
			def, err := translateAttribute(schemaName, attrName, ad)
			if err != nil {
				return err
			}
			schema.Attributes[attrName] = def
		}
		model.Schemas[schemaName] = schema
	}

	for _, od := range doc.Objects {
		object, err := translateObject(od)
		if err != nil {
			return err
		}
		model.Objects = append(model.Objects, object)
	}

	return nil
}

// translateAttribute converts one attribute document, evaluating its
// default into a concrete cty value.
func translateAttribute(schemaName, attrName string, ad *attributeDoc) (*attr.AttributeDef, error) {
	if ad == nil || ad.Type == "" {
		return nil, fmt.Errorf("schema %q, attribute %q: type is required", schemaName, attrName)
	}

	def := &attr.AttributeDef{
		Name:        attrName,
		Type:        registry.TypeName(ad.Type),
		Description: ad.Description,
		Optional:    ad.Optional,
	}

	if ad.Default != nil {
		val, err := nativeToCty(ad.Default)
		if err != nil {
			return nil, fmt.Errorf("schema %q, attribute %q: invalid default: %w", schemaName, attrName, err)
		}
		def.Default = &val
		def.Optional = true
	}

	return def, nil
}

// translateObject converts one object document's values.
func translateObject(od *objectDoc) (*attr.Object, error) {
	if od.Schema == "" {
		return nil, errors.New("object is missing the schema key")
	}
	if od.Name == "" {
		return nil, fmt.Errorf("object for schema %q is missing the name key", od.Schema)
	}

	object := &attr.Object{
		SchemaName: od.Schema,
		Name:       od.Name,
		Values:     make(map[string]cty.Value, len(od.Values)),
	}

	for name, raw := range od.Values {
		val, err := nativeToCty(raw)
		if err != nil {
			return nil, fmt.Errorf("object %q %q, attribute %q: %w", od.Schema, od.Name, name, err)
		}
		object.Values[name] = val
	}

	return object, nil
}
