package usecase

import (
	"context"

	"github.com/runoshun/recur/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	ID string // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Found bool // False if there was nothing to delete
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.TaskStore, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		store:  store,
		logger: logger,
	}
}

// Execute deletes a task. Unknown IDs are a silent no-op.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	found := uc.store.Delete(in.ID)

	if found && uc.logger != nil {
		uc.logger.Info(in.ID, "task", "deleted")
	}

	return &DeleteTaskOutput{Found: found}, nil
}
