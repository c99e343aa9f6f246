package temporal

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/vk/chronotype/registry"
	"github.com/zclconf/go-cty/cty"
)

// DurationName is the registry name of the duration type.
const DurationName registry.TypeName = "duration"

// DurationType is the canonical capsule type carrying a time.Duration.
var DurationType = cty.CapsuleWithOps("duration", reflect.TypeOf(time.Duration(0)), &cty.CapsuleOps{
	GoString: func(v any) string {
		return fmt.Sprintf("temporal.DurationVal(%s)", *v.(*time.Duration))
	},
	TypeGoString: func(reflect.Type) string {
		return "temporal.DurationType"
	},
	Equals: func(a, b any) cty.Value {
		return cty.BoolVal(*a.(*time.Duration) == *b.(*time.Duration))
	},
	RawEquals: func(a, b any) bool {
		return *a.(*time.Duration) == *b.(*time.Duration)
	},
})

// DurationVal wraps d in a canonical duration value.
func DurationVal(d time.Duration) cty.Value {
	return cty.CapsuleVal(DurationType, &d)
}

// AsDuration unwraps a canonical duration value. It panics if v is not a
// known, non-null value of DurationType.
func AsDuration(v cty.Value) time.Duration {
	return *v.EncapsulatedValue().(*time.Duration)
}

// durationUnits maps accepted field names to their fixed lengths, largest
// first. Weeks and days use the fixed 7-day and 24-hour convention.
var durationUnits = []struct {
	name string
	unit time.Duration
}{
	{"weeks", 7 * 24 * time.Hour},
	{"days", 24 * time.Hour},
	{"hours", time.Hour},
	{"minutes", time.Minute},
	{"seconds", time.Second},
	{"milliseconds", time.Millisecond},
	{"microseconds", time.Microsecond},
	{"nanoseconds", time.Nanosecond},
}

var durationFieldNames = func() map[string]bool {
	names := make(map[string]bool, len(durationUnits))
	for _, u := range durationUnits {
		names[u.name] = true
	}
	return names
}()

// durationFromSeconds treats the number as a count of elapsed seconds,
// fraction allowed, rounded to the nearest nanosecond.
//
// A count of fixed-length seconds does not model calendar arithmetic:
// 86400 seconds is not "one day" across a DST transition. Callers who need
// calendar math should combine a datetime with explicit field offsets.
func durationFromSeconds(v cty.Value) (cty.Value, error) {
	f, _ := v.AsBigFloat().Float64()
	nanos, err := toInt64(math.Round(f*float64(time.Second)), "duration")
	if err != nil {
		return cty.NilVal, err
	}
	return DurationVal(time.Duration(nanos)), nil
}

// durationFromFields sums named unit fields into a single span. Fractional
// values are allowed and negative values subtract. Calendar-dependent units
// are rejected outright: a month has no fixed length to sum.
func durationFromFields(v cty.Value) (cty.Value, error) {
	fields := mappingFields(v)

	for _, name := range []string{"months", "years"} {
		if _, ok := fields[name]; ok {
			return cty.NilVal, fmt.Errorf("field %q is calendar-dependent and has no fixed length", name)
		}
	}
	if err := checkFieldNames(fields, durationFieldNames, "duration"); err != nil {
		return cty.NilVal, err
	}

	var total time.Duration
	for _, u := range durationUnits {
		f, ok, err := floatField(fields, u.name)
		if err != nil {
			return cty.NilVal, err
		}
		if !ok {
			continue
		}
		nanos, err := toInt64(math.Round(f*float64(u.unit)), fmt.Sprintf("field %q", u.name))
		if err != nil {
			return cty.NilVal, err
		}
		total += time.Duration(nanos)
	}
	return DurationVal(total), nil
}
