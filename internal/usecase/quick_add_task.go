package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/recur/internal/domain"
)

// QuickAddTaskInput contains the free text to add.
type QuickAddTaskInput struct {
	Text string // e.g. "Water plants every week"
}

// QuickAddTaskOutput contains the result of a quick add.
type QuickAddTaskOutput struct {
	Task domain.Task
}

// QuickAddTask adds a task parsed from free text.
type QuickAddTask struct {
	store  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewQuickAddTask creates a new QuickAddTask use case.
func NewQuickAddTask(store domain.TaskStore, clock domain.Clock, logger domain.Logger) *QuickAddTask {
	return &QuickAddTask{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute parses the text and adds the resulting task, due today.
func (uc *QuickAddTask) Execute(_ context.Context, in QuickAddTaskInput) (*QuickAddTaskOutput, error) {
	draft := domain.ParseQuickAdd(in.Text, uc.clock.Now())
	if draft.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	task := uc.store.Add(draft)

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("quick-added: %q (%s)", task.Title, task.RepeatFrequency))
	}

	return &QuickAddTaskOutput{Task: task}, nil
}
