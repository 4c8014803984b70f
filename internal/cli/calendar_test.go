package cli

import (
	"testing"

	"github.com/runoshun/recur/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarCommand_CurrentMonth(t *testing.T) {
	c := newTestContainer(t, "")
	path := writeDraftFile(t, sampleDrafts)

	stdout, _, err := runRoot(t, c, "calendar", "--from", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "October 2026")
	assert.Contains(t, stdout, "Su")
	assert.Contains(t, stdout, "20"+markPending)
	assert.Contains(t, stdout, "12"+markDone)
	assert.Contains(t, stdout, "Oct 20  [ ] Water plants (weekly)")
	assert.Contains(t, stdout, "Oct 12  [x] Call mom (once)")
}

func TestCalendarCommand_MonthFlagAndWeekStart(t *testing.T) {
	c := newTestContainer(t, "[calendar]\nweek_start = \"monday\"\n")

	stdout, _, err := runRoot(t, c, "calendar", "--month", "2026-02")

	require.NoError(t, err)
	assert.Contains(t, stdout, "February 2026")
	assert.Regexp(t, `Mo\s+Tu\s+We\s+Th\s+Fr\s+Sa\s+Su`, stdout)
	assert.NotContains(t, stdout, "[ ]", "no tasks means no agenda")
}

func TestCalendarCommand_InvalidMonth(t *testing.T) {
	c := newTestContainer(t, "")

	_, _, err := runRoot(t, c, "calendar", "--month", "2026-13")

	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}
