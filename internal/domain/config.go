package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Log      LogConfig      `toml:"log"`
	Calendar CalendarConfig `toml:"calendar"`
	Display  DisplayConfig  `toml:"display"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// CalendarConfig holds month view settings from [calendar] section.
type CalendarConfig struct {
	WeekStart string `toml:"week_start,omitempty"` // First column of the month grid: sunday or monday
}

// DisplayConfig holds list settings from [display] section.
type DisplayConfig struct {
	DateFormat       string `toml:"date_format,omitempty"`    // Go time layout for due dates in the list
	HideCompleted    bool   `toml:"hide_completed,omitempty"` // Hide completed occurrences on startup
	HideCompletedSet bool   `toml:"-"`                        // True if HideCompleted was explicitly set
}

// Default configuration values.
const (
	DefaultLogLevel   = "info"
	DefaultWeekStart  = "sunday"
	DefaultDateFormat = "Jan 2, 2006"
)

// Directory and file names for recur.
const (
	AppDirName     = "recur"       // Directory name under the config and state homes
	ConfigFileName = "config.toml" // Config file name
	LogFileName    = "recur.log"   // Log file name
	LogsDirName    = "logs"        // Log directory name under the state dir
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Calendar: CalendarConfig{
			WeekStart: DefaultWeekStart,
		},
		Display: DisplayConfig{
			DateFormat: DefaultDateFormat,
		},
	}
}

// WeekStart returns the configured first weekday, falling back to Sunday.
func (c *Config) WeekStart() time.Weekday {
	wd, err := ParseWeekStart(c.Calendar.WeekStart)
	if err != nil {
		return time.Sunday
	}
	return wd
}

// FormatDate formats a due date with the configured layout.
func (c *Config) FormatDate(t time.Time) string {
	layout := c.Display.DateFormat
	if strings.TrimSpace(layout) == "" {
		layout = DefaultDateFormat
	}
	return t.Format(layout)
}

// GlobalAppDir returns the global recur directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// StateDir returns the recur state directory.
// stateHome is typically XDG_STATE_HOME or ~/.local/state (resolved by caller).
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName)
}

// LogFilePath returns the log file path under a state directory.
func LogFilePath(stateDir string) string {
	return filepath.Join(stateDir, LogsDirName, LogFileName)
}

// templateData holds all data for rendering the config template.
type templateData struct {
	LogLevel      string
	WeekStart     string
	DateFormat    string
	HideCompleted bool
}

// RenderConfigTemplate renders a commented config template from the given Config.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		LogLevel:      cfg.Log.Level,
		WeekStart:     cfg.Calendar.WeekStart,
		DateFormat:    cfg.Display.DateFormat,
		HideCompleted: cfg.Display.HideCompleted,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
