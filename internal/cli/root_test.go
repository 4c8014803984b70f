package cli

import (
	"testing"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLaunchTUI replaces launchTUIFunc for the duration of the test.
func mockLaunchTUI(t *testing.T) *[]*app.Container {
	t.Helper()
	original := launchTUIFunc
	t.Cleanup(func() { launchTUIFunc = original })

	var calls []*app.Container
	launchTUIFunc = func(c *app.Container) error {
		calls = append(calls, c)
		return nil
	}
	return &calls
}

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	calls := mockLaunchTUI(t)

	_, _, err := runRoot(t, nil)

	assert.NoError(t, err)
	assert.Len(t, *calls, 1, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	calls := mockLaunchTUI(t)

	stdout, _, err := runRoot(t, nil, "--help")

	assert.NoError(t, err)
	assert.Empty(t, *calls, "launchTUIFunc should NOT be called when --help is provided")
	assert.Contains(t, stdout, "Task Commands:")
	assert.Contains(t, stdout, "calendar")
}

func TestNewRootCommand_From_SeedsBeforeLaunch(t *testing.T) {
	calls := mockLaunchTUI(t)
	c := newTestContainer(t, "")
	path := writeDraftFile(t, sampleDrafts)

	_, _, err := runRoot(t, c, "--from", path)

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	tasks := (*calls)[0].Tasks.List()
	require.Len(t, tasks, 3)
	assert.Equal(t, "Water plants", tasks[0].Title)
}

func TestNewRootCommand_From_InvalidFile(t *testing.T) {
	calls := mockLaunchTUI(t)
	c := newTestContainer(t, "")
	path := writeDraftFile(t, "- title: ok\n- description: no title\n")

	_, _, err := runRoot(t, c, "--from", path)

	require.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Contains(t, err.Error(), "task 2")
	assert.Empty(t, *calls, "TUI must not start when seeding fails")
	assert.Empty(t, c.Tasks.List())
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	mockLaunchTUI(t)
	c := newTestContainer(t, "[calendar]\nweek_start = \"friday\"\n")

	_, stderr, err := runRoot(t, c)

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: ")
	assert.Contains(t, stderr, "week_start")
}

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{name: "none", args: []string{"calendar"}, want: ""},
		{name: "separate value", args: []string{"--config", "/tmp/a.toml", "list"}, want: "/tmp/a.toml"},
		{name: "equals form", args: []string{"list", "--config=/tmp/b.toml"}, want: "/tmp/b.toml"},
		{name: "missing value", args: []string{"--config"}, want: ""},
		{name: "after terminator", args: []string{"parse", "--", "--config=x"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigPathFromArgs(tt.args))
		})
	}
}
