package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/text/language"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input cty.Value
		want  string
	}{
		{
			name:  "datetime in RFC 3339",
			input: DateTimeVal(time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)),
			want:  "2026-08-25T09:00:00Z",
		},
		{
			name:  "duration in native form",
			input: DurationVal(90 * time.Minute),
			want:  "1h30m0s",
		},
		{
			name:  "timezone by name",
			input: TimeZoneVal(time.UTC),
			want:  "UTC",
		},
		{
			name:  "locale with display name",
			input: LocaleVal(language.MustParse("en-GB")),
			want:  "en-GB (British English)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			got, err := FormatValue(tc.input)

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatValue_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input cty.Value
	}{
		{name: "primitive value", input: cty.StringVal("now")},
		{name: "null value", input: cty.NullVal(DateTimeType)},
		{name: "unknown value", input: cty.UnknownVal(DateTimeType)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			_, err := FormatValue(tc.input)

			// --- Assert ---
			assert.Error(t, err)
		})
	}
}
