package temporal

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"time"

	"github.com/vk/chronotype/registry"
	"github.com/zclconf/go-cty/cty"
)

// TimeZoneName is the registry name of the timezone type.
const TimeZoneName registry.TypeName = "timezone"

// TimeZoneType is the canonical capsule type carrying a *time.Location.
// Locations compare by name: "UTC" equals "UTC", and a fixed-offset zone
// equals another with the same spelling.
var TimeZoneType = cty.CapsuleWithOps("timezone", reflect.TypeOf(time.Location{}), &cty.CapsuleOps{
	GoString: func(v any) string {
		return fmt.Sprintf("temporal.TimeZoneVal(%q)", v.(*time.Location).String())
	},
	TypeGoString: func(reflect.Type) string {
		return "temporal.TimeZoneType"
	},
	Equals: func(a, b any) cty.Value {
		return cty.BoolVal(a.(*time.Location).String() == b.(*time.Location).String())
	},
	RawEquals: func(a, b any) bool {
		return a.(*time.Location).String() == b.(*time.Location).String()
	},
})

// TimeZoneVal wraps loc in a canonical timezone value.
func TimeZoneVal(loc *time.Location) cty.Value {
	return cty.CapsuleVal(TimeZoneType, loc)
}

// AsTimeZone unwraps a canonical timezone value. It panics if v is not a
// known, non-null value of TimeZoneType.
func AsTimeZone(v cty.Value) *time.Location {
	return v.EncapsulatedValue().(*time.Location)
}

// offsetPattern matches fixed numeric UTC offsets: ±HH, ±HHMM and ±HH:MM.
var offsetPattern = regexp.MustCompile(`^([+-])(\d{2})(?::?(\d{2}))?$`)

// loadLocation resolves a timezone from an IANA name such as
// "Europe/Madrid" or from a fixed numeric offset string. The resulting
// location's String() round-trips to the given name.
func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, errors.New("timezone name must not be empty")
	}

	if m := offsetPattern.FindStringSubmatch(name); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 23 || minutes > 59 {
			return nil, fmt.Errorf("invalid UTC offset %q", name)
		}
		offset := (hours*60 + minutes) * 60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(name, offset), nil
	}

	return time.LoadLocation(name)
}

// timeZoneFromString resolves the string through loadLocation, passing the
// standard library's error through unchanged for unknown names.
func timeZoneFromString(v cty.Value) (cty.Value, error) {
	loc, err := loadLocation(v.AsString())
	if err != nil {
		return cty.NilVal, err
	}
	return TimeZoneVal(loc), nil
}
