package usecase

import (
	"context"
	"time"

	"github.com/runoshun/recur/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
// Fields are ordered to minimize memory padding.
type ListTasksInput struct {
	From          *time.Time // Only tasks due on or after this day (nil = no lower bound)
	To            *time.Time // Only tasks due on or before this day (nil = no upper bound)
	HideCompleted bool       // Exclude completed occurrences
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks   []domain.Task // Matching tasks ordered by due date
	Total   int           // Number of tasks in the store
	Pending int           // Matching tasks that are not completed
	Overdue int           // Matching tasks that are overdue today
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	store domain.TaskStore
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.TaskStore, clock domain.Clock) *ListTasks {
	return &ListTasks{
		store: store,
		clock: clock,
	}
}

// Execute lists tasks matching the given input criteria in due-date order.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	all := uc.store.List()
	today := uc.clock.Now()

	var from, to time.Time
	if in.From != nil {
		from = domain.StartOfDay(*in.From)
	}
	if in.To != nil {
		to = domain.StartOfDay(*in.To)
	}

	out := &ListTasksOutput{Total: len(all)}
	for _, t := range domain.SortByDueDate(all) {
		if in.HideCompleted && t.Completed {
			continue
		}
		if in.From != nil && t.DueDate.Before(from) {
			continue
		}
		if in.To != nil && t.DueDate.After(to) {
			continue
		}
		out.Tasks = append(out.Tasks, t)
		if !t.Completed {
			out.Pending++
		}
		if t.IsOverdue(today) {
			out.Overdue++
		}
	}

	return out, nil
}
