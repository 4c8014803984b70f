package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testNow is a Sunday afternoon.
var testNow = time.Date(2026, time.October, 18, 15, 0, 0, 0, time.UTC)

// newTestContainer creates a container rooted in temporary directories.
// globalConfig is written as the global config file when non-empty.
func newTestContainer(t *testing.T, globalConfig string) *app.Container {
	t.Helper()

	root := t.TempDir()
	cfg := app.Config{
		GlobalConfigDir: filepath.Join(root, "config", domain.AppDirName),
		StateDir:        filepath.Join(root, "state", domain.AppDirName),
	}
	if globalConfig != "" {
		require.NoError(t, os.MkdirAll(cfg.GlobalConfigDir, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(cfg.GlobalConfigDir, domain.ConfigFileName), []byte(globalConfig), 0o600))
	}

	c, err := app.NewWithConfig(cfg, &testutil.MockClock{NowTime: testNow})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// writeDraftFile writes a YAML draft file and returns its path.
func writeDraftFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runRoot executes the root command with args and returns stdout and stderr.
func runRoot(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const sampleDrafts = `
- title: Water plants
  repeat: weekly
  due: 2026-10-20
- title: Pay rent
  repeat: custom
  days: [1, 15]
  due: 2026-10-01
- title: Call mom
  completed: true
  due: 2026-10-12
`
