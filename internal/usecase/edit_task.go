package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing a task.
// All fields except ID are optional. Only non-nil fields will be updated.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Title       *string    // New title (nil = no change)
	Description *string    // New description (nil = no change)
	Repeat      *string    // New repeat frequency (nil = no change)
	CustomDays  *[]int     // New custom days (nil = no change)
	DueDate     *time.Time // New due date (nil = no change)
	ID          string     // Task ID to edit (required)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task  domain.Task // The updated task (zero if not found)
	Found bool        // False if the task no longer exists
}

// EditTask is the use case for editing an existing task.
// The edit is applied to the stored task in place; completion and streak are kept.
type EditTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(store domain.TaskStore, logger domain.Logger) *EditTask {
	return &EditTask{
		store:  store,
		logger: logger,
	}
}

// Execute edits a task with the given input.
// A task that disappeared in the meantime is reported with Found=false and no error.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Title == nil && in.Description == nil && in.Repeat == nil && in.CustomDays == nil && in.DueDate == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	task, found, err := uc.store.Modify(in.ID, func(task *domain.Task) error {
		return applyEdit(task, in)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return &EditTaskOutput{Found: false}, nil
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("edited: %q", task.Title))
	}

	return &EditTaskOutput{Task: task, Found: true}, nil
}

// applyEdit merges the non-nil input fields into task and validates the result.
// Completion, streak and history are left alone.
func applyEdit(task *domain.Task, in EditTaskInput) error {
	draft := domain.TaskDraft{
		Title:           task.Title,
		Description:     task.Description,
		RepeatFrequency: task.RepeatFrequency,
		CustomDays:      task.CustomDays,
		DueDate:         task.DueDate,
	}
	if in.Title != nil {
		draft.Title = *in.Title
	}
	if in.Description != nil {
		draft.Description = *in.Description
	}
	if in.Repeat != nil {
		draft.RepeatFrequency = domain.ParseRepeatFrequency(*in.Repeat)
	}
	if in.CustomDays != nil {
		draft.CustomDays = *in.CustomDays
	}
	if in.DueDate != nil {
		draft.DueDate = domain.StartOfDay(*in.DueDate)
	}

	draft, err := shared.NormalizeDraft(draft)
	if err != nil {
		return err
	}

	task.Title = draft.Title
	task.Description = draft.Description
	task.RepeatFrequency = draft.RepeatFrequency
	task.CustomDays = draft.CustomDays
	task.DueDate = draft.DueDate
	return nil
}
