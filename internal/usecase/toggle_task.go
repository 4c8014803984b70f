package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/recur/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	ID string // Task ID to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Decision domain.Decision // Applied decision; Spawned carries its stored ID
	Found    bool            // False if the task no longer exists
}

// ToggleTask flips a task's completion and applies the recurrence decision.
type ToggleTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(store domain.TaskStore, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		store:  store,
		logger: logger,
	}
}

// Execute toggles the task. Unknown IDs are a silent no-op.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	decision, found := uc.store.Toggle(in.ID)
	if !found {
		return &ToggleTaskOutput{Found: false}, nil
	}

	if uc.logger != nil {
		current := decision.Current
		if current.Completed {
			uc.logger.Info(current.ID, "toggle", fmt.Sprintf("completed, streak %d", current.CurrentStreak))
		} else {
			uc.logger.Info(current.ID, "toggle", "reopened, streak reset")
		}
		if s := decision.Spawned; s != nil {
			uc.logger.Debug(current.ID, "recur", fmt.Sprintf("spawned %s due %s", s.ID, domain.DateKey(s.DueDate)))
		}
	}

	return &ToggleTaskOutput{Decision: decision, Found: true}, nil
}
