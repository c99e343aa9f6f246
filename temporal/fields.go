package temporal

import (
	"fmt"
	"math"
	"sort"

	"github.com/vk/chronotype/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// mappingFields flattens a string-keyed mapping value into a Go map. The
// input has already matched registry.IsMapping, so iteration is safe.
func mappingFields(v cty.Value) map[string]cty.Value {
	out := make(map[string]cty.Value)
	for it := v.ElementIterator(); it.Next(); {
		key, elem := it.Element()
		out[key.AsString()] = elem
	}
	return out
}

// checkFieldNames rejects field names the target constructor does not
// accept. Names are checked in lexical order so the failure is
// deterministic when several are unknown.
func checkFieldNames(fields map[string]cty.Value, allowed map[string]bool, what string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !allowed[name] {
			return fmt.Errorf("unknown %s field %q", what, name)
		}
	}
	return nil
}

// intField extracts an exact-integer numeric field. The boolean reports
// whether the field was present.
func intField(fields map[string]cty.Value, name string) (int, bool, error) {
	v, ok := fields[name]
	if !ok {
		return 0, false, nil
	}
	if !registry.IsNumber(v) {
		return 0, false, fmt.Errorf("field %q must be a number", name)
	}
	var i int
	if err := gocty.FromCtyValue(v, &i); err != nil {
		return 0, false, fmt.Errorf("field %q must be an integer", name)
	}
	return i, true, nil
}

// intFieldOr extracts an exact-integer numeric field, falling back to a
// default when the field is absent.
func intFieldOr(fields map[string]cty.Value, name string, fallback int) (int, error) {
	i, ok, err := intField(fields, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return fallback, nil
	}
	return i, nil
}

// toInt64 converts an integral float64 to int64, failing for magnitudes
// outside the representable range, where the plain conversion is
// implementation-defined. math.MaxInt64 rounds up to 2^63 as a float64,
// so the upper bound is exclusive.
func toInt64(f float64, what string) (int64, error) {
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%s out of range", what)
	}
	return int64(f), nil
}

// floatField extracts a numeric field, fraction allowed.
func floatField(fields map[string]cty.Value, name string) (float64, bool, error) {
	v, ok := fields[name]
	if !ok {
		return 0, false, nil
	}
	if !registry.IsNumber(v) {
		return 0, false, fmt.Errorf("field %q must be a number", name)
	}
	var f float64
	if err := gocty.FromCtyValue(v, &f); err != nil {
		return 0, false, fmt.Errorf("field %q must be a number", name)
	}
	return f, true, nil
}
