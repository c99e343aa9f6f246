package temporal

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/vk/chronotype/registry"
	"github.com/zclconf/go-cty/cty"
)

// DateTimeName is the registry name of the datetime type.
const DateTimeName registry.TypeName = "datetime"

// DateTimeType is the canonical capsule type carrying a time.Time. Equality
// follows time.Time.Equal, so two values denoting the same instant compare
// equal regardless of their locations.
var DateTimeType = cty.CapsuleWithOps("datetime", reflect.TypeOf(time.Time{}), &cty.CapsuleOps{
	GoString: func(v any) string {
		return fmt.Sprintf("temporal.DateTimeVal(%s)", v.(*time.Time).Format(time.RFC3339Nano))
	},
	TypeGoString: func(reflect.Type) string {
		return "temporal.DateTimeType"
	},
	Equals: func(a, b any) cty.Value {
		return cty.BoolVal(a.(*time.Time).Equal(*b.(*time.Time)))
	},
	RawEquals: func(a, b any) bool {
		return a.(*time.Time).Equal(*b.(*time.Time))
	},
})

// DateTimeVal wraps t in a canonical datetime value.
func DateTimeVal(t time.Time) cty.Value {
	return cty.CapsuleVal(DateTimeType, &t)
}

// AsDateTime unwraps a canonical datetime value. It panics if v is not a
// known, non-null value of DateTimeType.
func AsDateTime(v cty.Value) time.Time {
	return *v.EncapsulatedValue().(*time.Time)
}

// dateTimeFieldNames lists the constructor fields accepted by the mapping
// rule. All are time.Date arguments except time_zone, which selects the
// location the remaining fields are interpreted in.
var dateTimeFieldNames = map[string]bool{
	"year":       true,
	"month":      true,
	"day":        true,
	"hour":       true,
	"minute":     true,
	"second":     true,
	"nanosecond": true,
	"time_zone":  true,
}

// dateTimeFromEpoch builds an instant from a count of seconds since the
// Unix epoch. The fractional part becomes sub-second precision, rounded to
// the nearest nanosecond. The result is anchored in UTC.
func dateTimeFromEpoch(v cty.Value) (cty.Value, error) {
	f, _ := v.AsBigFloat().Float64()
	whole := math.Floor(f)
	sec, err := toInt64(whole, "epoch seconds")
	if err != nil {
		return cty.NilVal, err
	}
	nsec := math.Round((f - whole) * 1e9)
	return DateTimeVal(time.Unix(sec, int64(nsec)).UTC()), nil
}

// dateTimeNow builds the current instant, anchored in UTC like the epoch
// rule. Only the exact literal "now" reaches this conversion; the rule's
// predicate accepts nothing else.
func dateTimeNow(cty.Value) (cty.Value, error) {
	return DateTimeVal(time.Now().UTC()), nil
}

// dateTimeFromFields builds an instant via time.Date from a string-keyed
// mapping. The year is required; the remaining components default to the
// earliest valid value. Components outside their usual ranges are
// normalized exactly as time.Date documents, so month = 13 rolls into
// January of the following year rather than failing.
func dateTimeFromFields(v cty.Value) (cty.Value, error) {
	fields := mappingFields(v)
	if err := checkFieldNames(fields, dateTimeFieldNames, "datetime"); err != nil {
		return cty.NilVal, err
	}

	year, ok, err := intField(fields, "year")
	if err != nil {
		return cty.NilVal, err
	}
	if !ok {
		return cty.NilVal, fmt.Errorf("field %q is required", "year")
	}

	month, err := intFieldOr(fields, "month", 1)
	if err != nil {
		return cty.NilVal, err
	}
	day, err := intFieldOr(fields, "day", 1)
	if err != nil {
		return cty.NilVal, err
	}
	hour, err := intFieldOr(fields, "hour", 0)
	if err != nil {
		return cty.NilVal, err
	}
	minute, err := intFieldOr(fields, "minute", 0)
	if err != nil {
		return cty.NilVal, err
	}
	second, err := intFieldOr(fields, "second", 0)
	if err != nil {
		return cty.NilVal, err
	}
	nanosecond, err := intFieldOr(fields, "nanosecond", 0)
	if err != nil {
		return cty.NilVal, err
	}

	loc := time.UTC
	if tz, ok := fields["time_zone"]; ok {
		if !registry.IsString(tz) {
			return cty.NilVal, fmt.Errorf("field %q must be a string", "time_zone")
		}
		loc, err = loadLocation(tz.AsString())
		if err != nil {
			return cty.NilVal, err
		}
	}

	return DateTimeVal(time.Date(year, time.Month(month), day, hour, minute, second, nanosecond, loc)), nil
}
