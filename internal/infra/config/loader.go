// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/recur/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/recur)
	explicitPath  string // Path given with --config (optional)
}

// NewLoader creates a new Loader. explicitPath may be empty.
func NewLoader(explicitPath string) *Loader {
	return &Loader{
		globalConfDir: DefaultGlobalConfigDir(),
		explicitPath:  explicitPath,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir, explicitPath string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
		explicitPath:  explicitPath,
	}
}

// DefaultGlobalConfigDir returns the default global config directory.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// DefaultStateDir returns the default state directory used for logs.
func DefaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// Load returns the merged configuration: defaults <- global <- explicit file.
// A missing global file is not an error. A missing explicit file is.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if global != nil {
		base = mergeConfigs(base, global)
	}

	if l.explicitPath != "" {
		explicit, err := loadFile(l.explicitPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", l.explicitPath, err)
		}
		base = mergeConfigs(base, explicit)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Only keys present in the file are set; everything else stays zero for merging.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "calendar":
			for k, v := range m {
				switch k {
				case "week_start":
					if s, ok := v.(string); ok {
						if _, err := domain.ParseWeekStart(s); err != nil {
							warnings = append(warnings, fmt.Sprintf("invalid [calendar] week_start: %q", s))
							continue
						}
						res.Calendar.WeekStart = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [calendar]: %s", k))
				}
			}
		case "display":
			for k, v := range m {
				switch k {
				case "date_format":
					if s, ok := v.(string); ok {
						res.Display.DateFormat = s
					}
				case "hide_completed":
					if b, ok := v.(bool); ok {
						res.Display.HideCompleted = b
						res.Display.HideCompletedSet = true
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [display]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges override into base and returns a new config.
// Non-zero override values take precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Log:      base.Log,
		Calendar: base.Calendar,
		Display:  base.Display,
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Calendar.WeekStart != "" {
		result.Calendar.WeekStart = override.Calendar.WeekStart
	}
	if override.Display.DateFormat != "" {
		result.Display.DateFormat = override.Display.DateFormat
	}
	if override.Display.HideCompletedSet {
		result.Display.HideCompleted = override.Display.HideCompleted
		result.Display.HideCompletedSet = true
	}

	return result
}
