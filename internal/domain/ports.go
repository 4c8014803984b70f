package domain

import "time"

// TaskStore holds the task collection of one session.
// Operations on unknown IDs are no-ops reported through the bool result.
type TaskStore interface {
	// Add assigns a fresh ID, creation time and zero streak, then appends the task.
	Add(draft TaskDraft) Task

	// Update replaces the stored task with the given ID wholesale.
	Update(id string, task Task) bool

	// Modify applies fn to a copy of the stored task and saves it, all under one lock.
	// The store is left unchanged when fn returns an error.
	Modify(id string, fn func(*Task) error) (Task, bool, error)

	// Delete removes the task with the given ID.
	Delete(id string) bool

	// Toggle flips completion, applying the Decide result in one step.
	Toggle(id string) (Decision, bool)

	// Get returns a copy of the task with the given ID.
	Get(id string) (Task, bool)

	// List returns copies of all tasks in insertion order.
	List() []Task
}

// IDGenerator produces unique task IDs.
type IDGenerator interface {
	NewID() string
}

// Logger provides logging functionality.
type Logger interface {
	// Info logs an info message.
	Info(taskID, category, msg string)
	// Debug logs a debug message.
	Debug(taskID, category, msg string)
	// Warn logs a warning message.
	Warn(taskID, category, msg string)
	// Error logs an error message.
	Error(taskID, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the global configuration merged with the explicit file, if any.
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes one configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and initializes configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetExplicitConfigInfo returns information about the --config file.
	// Path is empty when none was given.
	GetExplicitConfigInfo() ConfigInfo

	// InitGlobalConfig writes a config template rendered from cfg to the global path.
	// Returns ErrConfigExists if the file already exists.
	InitGlobalConfig(cfg *Config) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// DraftParser turns an import file into drafts.
type DraftParser interface {
	// ParseDrafts parses content. Entries without a due date are due on today.
	ParseDrafts(content []byte, today time.Time) ([]TaskDraft, error)
}
