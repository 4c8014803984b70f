// Package app provides the dependency injection container for the application.
package app

import (
	"time"

	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/infra/config"
	"github.com/runoshun/recur/internal/infra/draftfile"
	"github.com/runoshun/recur/internal/infra/ids"
	"github.com/runoshun/recur/internal/infra/logging"
	"github.com/runoshun/recur/internal/infra/memstore"
	"github.com/runoshun/recur/internal/infra/scheduler"
	"github.com/runoshun/recur/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	GlobalConfigDir    string // Directory holding the global config.toml
	ExplicitConfigPath string // Path given with --config (empty = none)
	StateDir           string // Directory holding logs (empty = logging disabled)
}

// DefaultConfig returns the paths derived from the XDG environment.
func DefaultConfig(explicitConfigPath string) Config {
	return Config{
		GlobalConfigDir:    config.DefaultGlobalConfigDir(),
		ExplicitConfigPath: explicitConfigPath,
		StateDir:           config.DefaultStateDir(),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskStore
	Clock         domain.Clock
	IDs           domain.IDGenerator
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	DraftParser   domain.DraftParser
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config // Effective configuration loaded at startup
	fileLog   *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container using the default XDG paths.
func New(explicitConfigPath string) (*Container, error) {
	return NewWithConfig(DefaultConfig(explicitConfigPath), domain.RealClock{})
}

// NewWithConfig creates a new Container rooted at the given paths.
// The effective config is loaded once; a missing --config file is an error.
func NewWithConfig(cfg Config, clock domain.Clock) (*Container, error) {
	configLoader := config.NewLoaderWithGlobalDir(cfg.GlobalConfigDir, cfg.ExplicitConfigPath)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	fileLog := logging.New(cfg.StateDir, logging.ParseLevel(appConfig.Log.Level), clock)
	idGen := ids.UUIDGenerator{}

	return &Container{
		Tasks:         memstore.New(clock, idGen),
		Clock:         clock,
		IDs:           idGen,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithGlobalDir(cfg.GlobalConfigDir, cfg.ExplicitConfigPath),
		DraftParser:   draftfile.Parser{},
		Logger:        fileLog,
		AppConfig:     appConfig,
		fileLog:       fileLog,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskStore, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:     tasks,
		Clock:     clock,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.fileLog == nil {
		return nil
	}
	return c.fileLog.Close()
}

// LogPath returns the log file path, or "" when logging is disabled.
func (c *Container) LogPath() string {
	if c.fileLog == nil {
		return ""
	}
	return c.fileLog.Path()
}

// NewScheduler returns a scheduler evaluating wall-clock jobs in the local time zone.
func (c *Container) NewScheduler() *scheduler.Scheduler {
	return scheduler.New(time.Local)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// QuickAddTaskUseCase returns a new QuickAddTask use case.
func (c *Container) QuickAddTaskUseCase() *usecase.QuickAddTask {
	return usecase.NewQuickAddTask(c.Tasks, c.Clock, c.Logger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Clock)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks, c.Clock)
}

// ShowCalendarUseCase returns a new ShowCalendar use case.
func (c *Container) ShowCalendarUseCase() *usecase.ShowCalendar {
	return usecase.NewShowCalendar(c.Tasks, c.ConfigLoader, c.Clock)
}

// ImportDraftsUseCase returns a new ImportDrafts use case.
func (c *Container) ImportDraftsUseCase() *usecase.ImportDrafts {
	return usecase.NewImportDrafts(c.Tasks, c.DraftParser, c.Clock, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.LogPath())
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
