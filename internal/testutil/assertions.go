package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertNoFile checks that a run did not create name.
func AssertNoFile(t *testing.T, result *HarnessResult, name string) {
	t.Helper()
	_, err := os.Stat(filepath.Join(result.Dir, filepath.FromSlash(name)))
	require.True(t, os.IsNotExist(err), "expected %s not to exist", name)
}

// AssertLogged checks that the run logged msg at least once.
func AssertLogged(t *testing.T, result *HarnessResult, msg string) {
	t.Helper()
	require.Contains(t, result.LogOutput, msg, "expected log message %q was not found in logs", msg)
}
