package yamlattr

// attributeDoc mirrors hclattr's attribute block in YAML form.
type attributeDoc struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Default     any    `yaml:"default"`
	Optional    bool   `yaml:"optional"`
}

// objectDoc carries loosely-typed attribute values for one schema.
type objectDoc struct {
	Schema string         `yaml:"schema"`
	Name   string         `yaml:"name"`
	Values map[string]any `yaml:"values"`
}

// document is the root of one YAML configuration document. A file may hold
// several documents separated by ---.
type document struct {
	Schemas map[string]map[string]*attributeDoc `yaml:"schemas"`
	Objects []*objectDoc                        `yaml:"objects"`
}
