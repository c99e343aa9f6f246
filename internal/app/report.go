package app

import (
	"fmt"

	"github.com/vk/chronotype/internal/binder"
	"github.com/vk/chronotype/temporal"
)

// printReport renders every bound object with its canonical values to the
// application's output writer.
func (a *App) printReport(bound []*binder.BoundObject) error {
	for _, object := range bound {
		fmt.Fprintf(a.outW, "%s %q\n", object.SchemaName, object.Name)
		for _, name := range object.AttributeNames() {
			rendered, err := temporal.FormatValue(object.Values[name])
			if err != nil {
				return fmt.Errorf("object '%s.%s': attribute %q: %w", object.SchemaName, object.Name, name, err)
			}
			fmt.Fprintf(a.outW, "  %-12s = %s\n", name, rendered)
		}
	}
	return nil
}

// printTypes lists every registered type with its target and ordered
// coercion rules.
func (a *App) printTypes() {
	for _, name := range a.registry.TypeNames() {
		desc, err := a.registry.Describe(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(a.outW, "%s (%s)\n", name, desc.Target.FriendlyName())
		for _, rule := range desc.Rules() {
			fmt.Fprintf(a.outW, "  <- %s\n", rule.Name)
		}
	}
}
