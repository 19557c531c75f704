// Package testutil holds the harness shared by the application-level
// tests: fixture trees in temporary directories and in-process runs of the
// app with captured output.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/errdefgen/internal/app"
	"github.com/specialistvlad/errdefgen/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
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

// WriteTree writes files, keyed by slash-separated relative path, below a
// fresh temporary directory and returns that directory.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// HarnessResult holds the outcome of an in-process run.
type HarnessResult struct {
	Dir         string
	Output      string
	LogOutput   string
	Diagnostics string
	Err         error
	App         *app.App
}

// RunApp writes files to a temporary directory and runs the app against it.
func RunApp(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunAppInDir(t, WriteTree(t, files), cfg)
}

// RunAppInDir runs the app with debug logging against an existing
// directory. cfg.Path and cfg.Output are interpreted relative to dir.
func RunAppInDir(t *testing.T, dir string, cfg app.Config) *HarnessResult {
	t.Helper()

	cfg.Path = filepath.Join(dir, filepath.FromSlash(cfg.Path))
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(dir, filepath.FromSlash(cfg.Output))
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	a := app.NewApp(out, logs, appConfig, hcl.NewLoader(), hcl.NewWriter())
	runErr := a.Run(context.Background())

	diags := &SafeBuffer{}
	if runErr != nil {
		require.NoError(t, a.WriteDiagnostics(diags, runErr))
	}

	if os.Getenv("ERRDEFGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Dir:         dir,
		Output:      out.String(),
		LogOutput:   logs.String(),
		Diagnostics: diags.String(),
		Err:         runErr,
		App:         a,
	}
}

// ReadFile reads a file produced by a run, relative to its directory.
func (r *HarnessResult) ReadFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(data)
}
