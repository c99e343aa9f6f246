package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/chronotype/internal/testutil"
)

func TestYAMLBinding_RendersCanonicalReport(t *testing.T) {
	configYAML := `
schemas:
  meeting:
    starts_at:
      type: datetime
    length:
      type: duration
      default: 1800
    lang:
      type: locale
objects:
  - schema: meeting
    name: standup
    values:
      starts_at:
        year: 2026
        month: 8
        day: 25
        hour: 9
      length:
        minutes: 45
      lang: en_GB
`

	result := testutil.RunYAMLTest(t, configYAML)

	require.NoError(t, result.Err)
	require.NotNil(t, result.App)

	standup := "meeting \"standup\"\n" +
		reportLine("lang", "en-GB (British English)") +
		reportLine("length", "45m0s") +
		reportLine("starts_at", "2026-08-25T09:00:00Z")
	require.Contains(t, result.Output, standup)
}

func TestYAMLBinding_UnquotedTimestampArrivesCanonical(t *testing.T) {
	// An unquoted ISO 8601 scalar is decoded by the YAML parser itself, so
	// the value reaches the binder already canonical and takes the identity
	// path instead of a coercion rule.
	configYAML := `
schemas:
  meeting:
    starts_at:
      type: datetime
objects:
  - schema: meeting
    name: kickoff
    values:
      starts_at: 2026-08-25T09:00:00Z
`

	result := testutil.RunYAMLTest(t, configYAML)

	require.NoError(t, result.Err)
	require.Contains(t, result.Output, reportLine("starts_at", "2026-08-25T09:00:00Z"))
}

func TestYAMLBinding_QuotedTimestampStaysAString(t *testing.T) {
	// Quoting the scalar keeps it a string, and there is deliberately no
	// rule for free-form datetime strings.
	configYAML := `
schemas:
  meeting:
    starts_at:
      type: datetime
objects:
  - schema: meeting
    name: kickoff
    values:
      starts_at: "2026-08-25T09:00:00Z"
`

	result := testutil.RunYAMLTest(t, configYAML)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "binding failed")
	require.Contains(t, result.Err.Error(), `no coercion to "datetime" from string`)
}

func TestYAMLBinding_MultipleDocumentsInOneFile(t *testing.T) {
	configYAML := `
schemas:
  meeting:
    starts_at:
      type: datetime
---
objects:
  - schema: meeting
    name: kickoff
    values:
      starts_at: 1767225600
`

	result := testutil.RunYAMLTest(t, configYAML)

	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "meeting \"kickoff\"\n"+reportLine("starts_at", "2026-01-01T00:00:00Z"))
}

func TestYAMLBinding_UnknownKeysAreRejected(t *testing.T) {
	configYAML := `
schemas:
  meeting:
    starts_at:
      type: datetime
      rquired: true
`

	result := testutil.RunYAMLTest(t, configYAML)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "application startup panicked")
	require.Contains(t, result.Err.Error(), "rquired")
}
