package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_FromFile(t *testing.T) {
	c := newTestContainer(t, "")
	path := writeDraftFile(t, sampleDrafts)

	stdout, _, err := runRoot(t, c, "list", "--from", path)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	// Due-date order: Oct 1, Oct 12, Oct 20.
	assert.Contains(t, lines[1], "Pay rent")
	assert.Contains(t, lines[1], "Custom (1, 15)")
	assert.Contains(t, lines[2], "Call mom")
	assert.Contains(t, lines[3], "Water plants")
	assert.Contains(t, lines[3], "Oct 20, 2026")
	assert.Contains(t, stdout, "2 pending, 1 overdue, 3 total")
}

func TestListCommand_HideCompleted(t *testing.T) {
	c := newTestContainer(t, "")
	path := writeDraftFile(t, sampleDrafts)

	stdout, _, err := runRoot(t, c, "list", "--from", path, "--hide-completed")

	require.NoError(t, err)
	assert.NotContains(t, stdout, "Call mom")
	assert.Contains(t, stdout, "Water plants")
}

func TestListCommand_HideCompletedFromConfig(t *testing.T) {
	c := newTestContainer(t, "[display]\nhide_completed = true\n")
	path := writeDraftFile(t, sampleDrafts)

	stdout, _, err := runRoot(t, c, "list", "--from", path)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Call mom")

	c = newTestContainer(t, "[display]\nhide_completed = true\n")
	stdout, _, err = runRoot(t, c, "list", "--from", path, "--hide-completed=false")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Call mom")
}

func TestListCommand_Empty(t *testing.T) {
	c := newTestContainer(t, "")

	stdout, _, err := runRoot(t, c, "list")

	require.NoError(t, err)
	assert.Contains(t, stdout, "0 pending, 0 overdue, 0 total")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "task-1", shortID("task-1"))
	assert.Equal(t, "3f2a9c10", shortID("3f2a9c10-1111-4222-8333-444455556666"))
}
