package shared

import (
	"github.com/runoshun/recur/internal/domain"
)

// GetTask retrieves a task by ID and returns domain.ErrTaskNotFound if not found.
// It is for read paths that must report a missing task; the store itself
// treats unknown IDs as silent no-ops.
func GetTask(store domain.TaskStore, id string) (domain.Task, error) {
	task, ok := store.Get(id)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}
