package app

import (
	"github.com/vk/chronotype/registry"
	"github.com/vk/chronotype/temporal"
)

// coreModules is the definitive list of all type modules that are compiled
// into the chronotype binary.
var coreModules = []registry.Module{
	&temporal.Module{},
}
