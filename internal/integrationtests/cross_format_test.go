package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/chronotype/internal/testutil"
)

func TestCrossFormat_HCLSchemasWithYAMLObjects(t *testing.T) {
	// The auto format loads both languages from one directory, so a schema
	// declared in HCL can be instantiated from YAML.
	files := map[string]string{
		"schemas.hcl": `
			schema "meeting" {
				attribute "starts_at" {
					type = datetime
				}
				attribute "length" {
					type    = duration
					default = 1800
				}
			}
		`,
		"objects.yaml": `
objects:
  - schema: meeting
    name: standup
    values:
      starts_at: 1767225600
`,
	}

	result := testutil.RunBindTest(t, files)

	require.NoError(t, result.Err)
	standup := "meeting \"standup\"\n" +
		reportLine("length", "30m0s") +
		reportLine("starts_at", "2026-01-01T00:00:00Z")
	require.Contains(t, result.Output, standup)
}

func TestCrossFormat_YAMLSchemasWithHCLObjects(t *testing.T) {
	files := map[string]string{
		"schemas.yaml": `
schemas:
  meeting:
    starts_at:
      type: datetime
`,
		"objects.hcl": `
			object "meeting" "kickoff" {
				starts_at = { year = 2027 }
			}
		`,
	}

	result := testutil.RunBindTest(t, files)

	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "meeting \"kickoff\"\n"+reportLine("starts_at", "2027-01-01T00:00:00Z"))
}

func TestCrossFormat_DuplicateSchemaAcrossFormatsPanics(t *testing.T) {
	files := map[string]string{
		"first.hcl": `
			schema "meeting" {
				attribute "starts_at" {
					type = datetime
				}
			}
		`,
		"second.yaml": `
schemas:
  meeting:
    starts_at:
      type: datetime
`,
	}

	result := testutil.RunBindTest(t, files)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "application startup panicked")
	require.Contains(t, result.Err.Error(), `schema "meeting" is declared by more than one source format`)
}
