// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/usecase/shared"
)

// AddTaskInput contains the parameters for adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	DueDate     *time.Time // Due date (nil = today)
	Title       string     // Task title (required)
	Description string     // Task description (optional)
	Repeat      string     // once, daily, weekly, monthly or custom (unknown = once)
	CustomDays  []int      // Days of month for custom repeat
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task domain.Task // The stored task
}

// AddTask is the use case for adding a task.
type AddTask struct {
	store  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.TaskStore, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute validates the input and adds the task.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	due := domain.StartOfDay(uc.clock.Now())
	if in.DueDate != nil {
		due = domain.StartOfDay(*in.DueDate)
	}

	draft, err := shared.NormalizeDraft(domain.TaskDraft{
		Title:           in.Title,
		Description:     in.Description,
		RepeatFrequency: domain.ParseRepeatFrequency(in.Repeat),
		CustomDays:      in.CustomDays,
		DueDate:         due,
	})
	if err != nil {
		return nil, err
	}

	task := uc.store.Add(draft)

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("created: %q (%s, due %s)",
			task.Title, task.RepeatFrequency, domain.DateKey(task.DueDate)))
	}

	return &AddTaskOutput{Task: task}, nil
}
