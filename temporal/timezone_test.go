package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/chronotype/registry"
	"github.com/zclconf/go-cty/cty"
)

func TestTimeZone_FromIANAName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		zone string
	}{
		{name: "continental zone", zone: "Africa/Timbuktu"},
		{name: "utc", zone: "UTC"},
		{name: "zone with DST rules", zone: "Europe/Madrid"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			r := newRegistry(t)

			// --- Act ---
			out, err := r.Coerce(TimeZoneName, cty.StringVal(tc.zone))

			// --- Assert ---
			require.NoError(t, err)
			require.True(t, out.Type().Equals(TimeZoneType))
			assert.Equal(t, tc.zone, AsTimeZone(out).String(),
				"the location should round-trip to the requested name")
		})
	}
}

func TestTimeZone_FromFixedOffset(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		offset     string
		wantSecond int
	}{
		{name: "colon separated", offset: "+05:30", wantSecond: 5*3600 + 30*60},
		{name: "compact", offset: "-0800", wantSecond: -8 * 3600},
		{name: "hours only", offset: "+07", wantSecond: 7 * 3600},
		{name: "negative with colon", offset: "-03:30", wantSecond: -(3*3600 + 30*60)},
		{name: "zero offset", offset: "+00:00", wantSecond: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			r := newRegistry(t)

			// --- Act ---
			out, err := r.Coerce(TimeZoneName, cty.StringVal(tc.offset))

			// --- Assert ---
			require.NoError(t, err)
			loc := AsTimeZone(out)
			assert.Equal(t, tc.offset, loc.String())

			_, gotOffset := time.Date(2026, 1, 1, 0, 0, 0, 0, loc).Zone()
			assert.Equal(t, tc.wantSecond, gotOffset)
		})
	}
}

func TestTimeZone_ConversionErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "unknown IANA name", input: "Not/AZone", wantMsg: "Not/AZone"},
		{name: "empty name", input: "", wantMsg: "must not be empty"},
		{name: "offset hours out of range", input: "+25:00", wantMsg: "invalid UTC offset"},
		{name: "offset minutes out of range", input: "+05:75", wantMsg: "invalid UTC offset"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			r := newRegistry(t)

			// --- Act ---
			_, err := r.Coerce(TimeZoneName, cty.StringVal(tc.input))

			// --- Assert ---
			var convErr *registry.ConversionFailedError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, "from-name", convErr.Rule)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestTimeZone_HasNoNumberRule(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := newRegistry(t)

	// --- Act ---
	_, err := r.Coerce(TimeZoneName, cty.NumberIntVal(2))

	// --- Assert ---
	var noRuleErr *registry.NoApplicableRuleError
	require.ErrorAs(t, err, &noRuleErr,
		"a bare numeric offset is ambiguous and is not coerced")
}

func TestTimeZone_IdentityShortCircuit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := newRegistry(t)
	v := TimeZoneVal(time.UTC)

	// --- Act ---
	out, err := r.Coerce(TimeZoneName, v)

	// --- Assert ---
	require.NoError(t, err)
	assert.Same(t, v.EncapsulatedValue(), out.EncapsulatedValue())
}
