package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/chronotype/internal/testutil"
)

func TestValidation_UnknownTypePanicsAtStartup(t *testing.T) {
	configHCL := `
		schema "event" {
			attribute "badge" {
				type = color
			}
		}
	`

	result := testutil.RunHCLTest(t, configHCL)

	require.Error(t, result.Err)
	require.Nil(t, result.App)
	require.Contains(t, result.Err.Error(), "application startup panicked")
	require.Contains(t, result.Err.Error(), "model validation failed")
	require.Contains(t, result.Err.Error(),
		"schema 'event': attribute 'badge' references unknown type 'color' (registered: datetime, duration, locale, timezone)")
}

func TestValidation_AggregatesEveryProblemBeforePanicking(t *testing.T) {
	configHCL := `
		schema "event" {
			attribute "badge" {
				type = color
			}
		}

		object "party" "launch" {
			starts_at = 0
		}
	`

	result := testutil.RunHCLTest(t, configHCL)

	require.Error(t, result.Err)

	// Both structural problems are reported in one pass, not just the first.
	require.Contains(t, result.Err.Error(), "references unknown type 'color'")
	require.Contains(t, result.Err.Error(), "object 'party.launch': references undeclared schema 'party'")
}

func TestValidation_UndeclaredAttributeValuePanicsAtStartup(t *testing.T) {
	configHCL := `
		schema "meeting" {
			attribute "starts_at" {
				type = datetime
			}
		}

		object "meeting" "standup" {
			starts_at = 0
			color     = "red"
		}
	`

	result := testutil.RunHCLTest(t, configHCL)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "application startup panicked")
	require.Contains(t, result.Err.Error(), "object 'meeting.standup': value for undeclared attribute 'color'")
}

func TestBind_MissingRequiredAttributeFailsTheRun(t *testing.T) {
	configHCL := `
		schema "meeting" {
			attribute "starts_at" {
				type = datetime
			}
		}

		object "meeting" "standup" {
		}
	`

	result := testutil.RunHCLTest(t, configHCL)

	// Startup succeeds; the object's data is only checked when binding.
	require.Error(t, result.Err)
	require.NotNil(t, result.App)
	require.Contains(t, result.Err.Error(), "binding failed")
	require.Contains(t, result.Err.Error(), `object 'meeting.standup': missing required attribute "starts_at"`)
}

func TestBind_FreeFormDateTimeStringHasNoRule(t *testing.T) {
	configHCL := `
		schema "meeting" {
			attribute "starts_at" {
				type = datetime
			}
		}

		object "meeting" "standup" {
			starts_at = "later"
		}
	`

	result := testutil.RunHCLTest(t, configHCL)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), `object 'meeting.standup': attribute "starts_at"`)
	require.Contains(t, result.Err.Error(), `no coercion to "datetime" from string`)
}

func TestBind_ConversionFailureNamesRuleAndCause(t *testing.T) {
	configHCL := `
		schema "meeting" {
			attribute "zone" {
				type = timezone
			}
		}

		object "meeting" "standup" {
			zone = "Not/AZone"
		}
	`

	result := testutil.RunHCLTest(t, configHCL)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), `coercing to "timezone" via rule "from-name"`)
	require.Contains(t, result.Err.Error(), "Not/AZone")
}

func TestBind_CalendarDurationUnitsAreRejected(t *testing.T) {
	configHCL := `
		schema "meeting" {
			attribute "length" {
				type = duration
			}
		}

		object "meeting" "standup" {
			length = { months = 3 }
		}
	`

	result := testutil.RunHCLTest(t, configHCL)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), `coercing to "duration" via rule "from-fields"`)
	require.Contains(t, result.Err.Error(), `field "months" is calendar-dependent and has no fixed length`)
}
