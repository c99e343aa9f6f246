package yamlattr

import (
	"fmt"
	"time"

	"github.com/vk/chronotype/temporal"
	"github.com/zclconf/go-cty/cty"
)

// nativeToCty converts a decoded YAML value into its cty equivalent. The
// mapping mirrors what HCL expression evaluation produces for the same
// shapes.
func nativeToCty(v any) (cty.Value, error) {
	switch val := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case bool:
		return cty.BoolVal(val), nil
	case int:
		return cty.NumberIntVal(int64(val)), nil
	case int64:
		return cty.NumberIntVal(val), nil
	case uint64:
		return cty.NumberUIntVal(val), nil
	case float64:
		return cty.NumberFloatVal(val), nil
	case string:
		return cty.StringVal(val), nil
	case time.Time:
		// The YAML decoder resolves unquoted ISO 8601 scalars itself.
		return temporal.DateTimeVal(val), nil
	case map[string]any:
		if len(val) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(val))
		for key, elem := range val {
			converted, err := nativeToCty(elem)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in key %q: %w", key, err)
			}
			attrs[key] = converted
		}
		return cty.ObjectVal(attrs), nil
	case []any:
		if len(val) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(val))
		for i, elem := range val {
			converted, err := nativeToCty(elem)
			if err != nil {
				return cty.NilVal, fmt.Errorf("at index %d: %w", i, err)
			}
			elems[i] = converted
		}
		return cty.TupleVal(elems), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}
