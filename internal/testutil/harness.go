package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/chronotype/internal/app"
	"github.com/vk/chronotype/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunBindTest provides a standardized harness for running load-validate-bind
// integration tests using a default background context.
func RunBindTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunBindTestWithContext(context.Background(), t, files, modules...)
}

// RunBindTestWithContext provides a standardized harness for running
// integration tests with a specific context provided by the caller.
func RunBindTestWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir := t.TempDir()

	// 2. Write all configuration files to the temporary directory.
	//    The test provides relative paths (e.g., "schemas/event.hcl"),
	//    which naturally creates the subdirectory structure within tmpDir.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		dir := filepath.Dir(filePath)
		require.NoError(t, os.MkdirAll(dir, 0755))
		err := os.WriteFile(filePath, []byte(content), 0644)
		require.NoError(t, err)
	}

	// 3. Configure the app to load everything under the temporary directory.
	//    The auto format exercises the same multi-format loader the CLI
	//    defaults to, so mixed .hcl and .yaml fixtures work out of the box.
	appConfig := &app.Config{
		ConfigPath: tmpDir,
		Format:     app.FormatAuto,
		LogLevel:   "debug",
		LogFormat:  "text",
	}

	loader, err := app.LoaderFor(appConfig.Format)
	require.NoError(t, err)

	outBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("CHRONOTYPE_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.New(outBuffer, appConfig, loader, modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			Output: outBuffer.String(),
			Err:    fmt.Errorf("application startup panicked | %v", panicErr),
			App:    nil,
		}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("CHRONOTYPE_TEST_LOGS") == "true" {
		t.Logf("--- Full Output for %s ---\n%s", t.Name(), outBuffer.String())
	}

	return &HarnessResult{
		Output: outBuffer.String(),
		Err:    runErr,
		App:    testApp,
	}
}
