package temporal

import (
	"fmt"
	"time"

	"github.com/zclconf/go-cty/cty"
	"golang.org/x/text/language/display"
)

// FormatValue renders a canonical temporal value for human-readable
// reports. Datetimes print in RFC 3339, durations and timezones use their
// native String forms, and locale tags carry their English display name
// when one is known.
func FormatValue(v cty.Value) (string, error) {
	if v.IsNull() || !v.IsKnown() {
		return "", fmt.Errorf("cannot render a null or unknown value")
	}

	switch ty := v.Type(); {
	case ty.Equals(DateTimeType):
		return AsDateTime(v).Format(time.RFC3339Nano), nil
	case ty.Equals(DurationType):
		return AsDuration(v).String(), nil
	case ty.Equals(TimeZoneType):
		return AsTimeZone(v).String(), nil
	case ty.Equals(LocaleType):
		tag := AsLocale(v)
		if name := display.English.Tags().Name(tag); name != "" {
			return fmt.Sprintf("%s (%s)", tag, name), nil
		}
		return tag.String(), nil
	default:
		return "", fmt.Errorf("not a canonical temporal value: %s", ty.FriendlyName())
	}
}
