package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/recur/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/recur)
	explicitPath  string // Path given with --config (optional)
}

// NewManager creates a new Manager.
func NewManager(explicitPath string) *Manager {
	return &Manager{
		globalConfDir: DefaultGlobalConfigDir(),
		explicitPath:  explicitPath,
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(globalConfDir, explicitPath string) *Manager {
	return &Manager{
		globalConfDir: globalConfDir,
		explicitPath:  explicitPath,
	}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// GetExplicitConfigInfo returns information about the --config file.
func (m *Manager) GetExplicitConfigInfo() domain.ConfigInfo {
	if m.explicitPath == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(m.explicitPath)
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig creates a global config file rendered from cfg.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(domain.RenderConfigTemplate(cfg)), 0o600)
}
