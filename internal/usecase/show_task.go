package usecase

import (
	"context"

	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	ID string
}

// ShowTaskOutput contains a task and its recurrence outlook.
// Fields are ordered to minimize memory padding.
type ShowTaskOutput struct {
	NextDue *domain.Task // Occurrence that completing now would spawn (nil = none)
	Task    domain.Task
}

// ShowTask is the use case for displaying task details.
type ShowTask struct {
	store domain.TaskStore
	clock domain.Clock
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(store domain.TaskStore, clock domain.Clock) *ShowTask {
	return &ShowTask{
		store: store,
		clock: clock,
	}
}

// Execute returns the task, or domain.ErrTaskNotFound.
// NextDue previews the successor without changing the store.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := shared.GetTask(uc.store, in.ID)
	if err != nil {
		return nil, err
	}

	out := &ShowTaskOutput{Task: task}
	if !task.Completed {
		out.NextDue = domain.Decide(task, uc.clock.Now()).Spawned
	}
	return out, nil
}
