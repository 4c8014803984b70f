package domain

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigPath(t *testing.T) {
	assert.Equal(t, "/home/user/.config/recur", GlobalAppDir("/home/user/.config"))
	assert.Equal(t, "/home/user/.config/recur/config.toml", GlobalConfigPath("/home/user/.config"))
}

func TestLogFilePath(t *testing.T) {
	dir := StateDir("/home/user/.local/state")
	assert.Equal(t, "/home/user/.local/state/recur", dir)
	assert.Equal(t, "/home/user/.local/state/recur/logs/recur.log", LogFilePath(dir))
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultWeekStart, cfg.Calendar.WeekStart)
	assert.Equal(t, DefaultDateFormat, cfg.Display.DateFormat)
	assert.False(t, cfg.Display.HideCompleted)
	assert.Empty(t, cfg.Warnings)
}

func TestConfig_WeekStart(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, time.Sunday, cfg.WeekStart())

	cfg.Calendar.WeekStart = "Monday"
	assert.Equal(t, time.Monday, cfg.WeekStart())

	cfg.Calendar.WeekStart = "someday"
	assert.Equal(t, time.Sunday, cfg.WeekStart())

	cfg.Calendar.WeekStart = "friday"
	assert.Equal(t, time.Sunday, cfg.WeekStart())
}

func TestConfig_FormatDate(t *testing.T) {
	d := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

	cfg := NewDefaultConfig()
	assert.Equal(t, "Oct 18, 2026", cfg.FormatDate(d))

	cfg.Display.DateFormat = DateLayout
	assert.Equal(t, "2026-10-18", cfg.FormatDate(d))

	cfg.Display.DateFormat = " "
	assert.Equal(t, "Oct 18, 2026", cfg.FormatDate(d))
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Calendar.WeekStart = "monday"
	cfg.Display.HideCompleted = true

	content := RenderConfigTemplate(cfg)

	assert.Contains(t, content, `level = "info"`)
	assert.Contains(t, content, `week_start = "monday"`)
	assert.Contains(t, content, `date_format = "Jan 2, 2006"`)
	assert.Contains(t, content, "hide_completed = true")

	// The rendered template must be valid TOML that round-trips the values.
	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, "info", parsed.Log.Level)
	assert.Equal(t, "monday", parsed.Calendar.WeekStart)
	assert.True(t, parsed.Display.HideCompleted)
}
