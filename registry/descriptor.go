package registry

import (
	"github.com/zclconf/go-cty/cty"
)

// TypeName identifies a canonical value type known to a Registry.
type TypeName string

// ShapePredicate classifies an arbitrary input value, reporting whether a
// coercion rule applies to it. Predicates must be pure and must return
// false for null and unknown values.
type ShapePredicate func(v cty.Value) bool

// ConvertFunc converts an input accepted by the paired ShapePredicate into
// a value of the owning descriptor's target type. Any returned error is
// surfaced to the caller wrapped in a *ConversionFailedError.
//
// Convert functions run while the registry holds its read lock, so they
// must not call back into the Registry.
type ConvertFunc func(v cty.Value) (cty.Value, error)

// CoercionRule pairs a shape predicate with the conversion it enables.
// Rules are tried in registration order and the first match wins, even if
// its conversion then fails.
type CoercionRule struct {
	// Name identifies the rule in diagnostics, e.g. "from-epoch-seconds".
	Name string

	// Matches reports whether this rule accepts the given input value.
	Matches ShapePredicate

	// Convert produces the canonical value for an accepted input.
	Convert ConvertFunc
}

// TypeDescriptor is a registry entry: the canonical cty type registered
// under a name, together with the ordered coercion rules that produce it.
type TypeDescriptor struct {
	// Name is the registry key this descriptor was registered under.
	Name TypeName

	// Target is the canonical capsule type. A value whose type equals
	// Target is already canonical and never passes through a rule.
	Target cty.Type

	rules []CoercionRule
}

// Satisfies reports whether v is already a canonical value of this type.
// Null and unknown values never satisfy.
func (d *TypeDescriptor) Satisfies(v cty.Value) bool {
	if v.IsNull() || !v.IsKnown() {
		return false
	}
	return v.Type().Equals(d.Target)
}

// Rules returns a copy of the descriptor's ordered rule list.
func (d *TypeDescriptor) Rules() []CoercionRule {
	out := make([]CoercionRule, len(d.rules))
	copy(out, d.rules)
	return out
}
