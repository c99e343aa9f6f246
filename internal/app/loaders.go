package app

import (
	"fmt"

	"github.com/vk/chronotype/internal/attr"
	"github.com/vk/chronotype/internal/hclattr"
	"github.com/vk/chronotype/internal/yamlattr"
)

// LoaderFor returns the declaration loader for the given source format. The
// auto format layers both loaders over the same paths, letting a directory
// mix HCL and YAML files.
func LoaderFor(format string) (attr.Loader, error) {
	switch format {
	case FormatHCL:
		return hclattr.NewLoader(), nil
	case FormatYAML:
		return yamlattr.NewLoader(), nil
	case FormatAuto:
		return attr.MultiLoader{hclattr.NewLoader(), yamlattr.NewLoader()}, nil
	default:
		return nil, fmt.Errorf("invalid format %q: must be one of auto, hcl, yaml", format)
	}
}
