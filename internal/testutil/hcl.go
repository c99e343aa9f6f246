package testutil

import (
	"testing"
)

// RunHCLTest provides a simplified harness for testing a single HCL
// configuration string. It wraps the main integration test harness.
func RunHCLTest(t *testing.T, configHCL string) *HarnessResult {
	t.Helper()

	files := map[string]string{
		"main.hcl": configHCL,
	}
	return RunBindTest(t, files)
}
