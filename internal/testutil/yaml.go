package testutil

import (
	"testing"
)

// RunYAMLTest provides a simplified harness for testing a single YAML
// configuration string. It wraps the main integration test harness.
func RunYAMLTest(t *testing.T, configYAML string) *HarnessResult {
	t.Helper()

	files := map[string]string{
		"main.yaml": configYAML,
	}
	return RunBindTest(t, files)
}
