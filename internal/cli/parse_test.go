package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	c := newTestContainer(t, "")

	stdout, _, err := runRoot(t, c, "parse", "Water plants every week")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Title:  Water plants\n")
	assert.Contains(t, stdout, "Repeat: Weekly\n")
	assert.Contains(t, stdout, "Due:    Oct 18, 2026\n")
	assert.Empty(t, c.Tasks.List(), "parse must not add tasks")
}

func TestParseCommand_JoinsArgs(t *testing.T) {
	c := newTestContainer(t, "[display]\ndate_format = \"2006-01-02\"\n")

	stdout, _, err := runRoot(t, c, "parse", "Journal", "daily")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Title:  Journal\n")
	assert.Contains(t, stdout, "Repeat: Daily\n")
	assert.Contains(t, stdout, "Due:    2026-10-18\n")
}

func TestParseCommand_RequiresText(t *testing.T) {
	c := newTestContainer(t, "")

	_, _, err := runRoot(t, c, "parse")

	assert.Error(t, err)
}
