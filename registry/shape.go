package registry

import (
	"github.com/zclconf/go-cty/cty"
)

// Shape predicates for building coercion rules. All of them treat null and
// unknown values as shapeless and return false.

// IsNumber reports whether v is a known, non-null number.
func IsNumber(v cty.Value) bool {
	return known(v) && v.Type().Equals(cty.Number)
}

// IsString reports whether v is a known, non-null string.
func IsString(v cty.Value) bool {
	return known(v) && v.Type().Equals(cty.String)
}

// IsMapping reports whether v is a known, non-null string-keyed mapping,
// i.e. a cty object or map value.
func IsMapping(v cty.Value) bool {
	if !known(v) {
		return false
	}
	ty := v.Type()
	return ty.IsObjectType() || ty.IsMapType()
}

// IsCapsule reports whether v is a known, non-null capsule value: an opaque
// Go value carried through the cty type system. Rules that accept foreign
// objects start from this shape and inspect the encapsulated value.
func IsCapsule(v cty.Value) bool {
	return known(v) && v.Type().IsCapsuleType()
}

// IsLiteral returns a predicate matching exactly the string lit, case
// sensitively and with no whitespace tolerance.
func IsLiteral(lit string) ShapePredicate {
	return func(v cty.Value) bool {
		return IsString(v) && v.AsString() == lit
	}
}

func known(v cty.Value) bool {
	return !v.IsNull() && v.IsKnown()
}
