package registry

import (
	"github.com/zclconf/go-cty/cty"
)

// Coerce converts v into the canonical value of the named type.
//
// A value that already has the target type is returned unchanged without
// consulting any rule. Otherwise the type's rules are tried in registration
// order and the first one whose shape predicate matches decides the
// outcome: its conversion result, or a *ConversionFailedError wrapping the
// constructor's error. Inputs matching no rule fail with
// *NoApplicableRuleError; an unregistered name fails with
// *UnknownTypeError.
//
// Coercion has no side effects. A failing input fails every time; the
// caller decides whether to abort or report and continue.
func (r *Registry) Coerce(name TypeName, v cty.Value) (cty.Value, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.types[name]
	if !ok {
		return cty.NilVal, &UnknownTypeError{Name: name}
	}

	// Null and unknown values have no shape: they match no rule and are
	// not instances of the target type.
	if v.IsNull() || !v.IsKnown() {
		return cty.NilVal, &NoApplicableRuleError{Name: name, Given: v.Type()}
	}

	if v.Type().Equals(d.Target) {
		return v, nil
	}

	for _, rule := range d.rules {
		if !rule.Matches(v) {
			continue
		}
		out, err := rule.Convert(v)
		if err != nil {
			return cty.NilVal, &ConversionFailedError{Name: name, Rule: rule.Name, Err: err}
		}
		return out, nil
	}

	return cty.NilVal, &NoApplicableRuleError{Name: name, Given: v.Type()}
}
