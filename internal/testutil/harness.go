package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/symbolgen/internal/app"
	"github.com/stretchr/testify/require"
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
	LogOutput string
	Output    []byte
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext writes files into a temporary sheets
// directory, points the app at it and runs the app once. An empty Format
// renders SVG so tests can inspect the output as text.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	sheetsDir := filepath.Join(tmpDir, "sheets")
	require.NoError(t, os.Mkdir(sheetsDir, 0755))

	// Relative names like "rows/a.hcl" create their subdirectories.
	for name, content := range files {
		filePath := filepath.Join(sheetsDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	if cfg.SheetPath == "" && len(files) > 0 {
		cfg.SheetPath = sheetsDir
	}
	if cfg.Format == "" && cfg.OutputPath == "" {
		cfg.Format = "svg"
	}
	cfg.LogLevel = "debug"
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err}
	}

	logBuffer := &SafeBuffer{}
	out := &bytes.Buffer{}

	var testApp *app.App
	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		testApp, runErr = app.NewApp(out, logBuffer, validated)
		if runErr != nil {
			return
		}
		defer func() {
			require.NoError(t, testApp.Close())
		}()
		runErr = testApp.Run(ctx)
	}()

	if os.Getenv("SYMBOLGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Output:    out.Bytes(),
		Err:       runErr,
		App:       testApp,
	}
}
