// Package domain contains core business entities and interfaces.
package domain

import (
	"slices"
	"time"
)

// Task is one occurrence of a possibly repeating task.
// Fields are ordered to minimize memory padding.
type Task struct {
	DueDate           time.Time       // Day this occurrence is due (midnight)
	CreatedAt         time.Time       // When this occurrence was created
	LastCompletedDate *time.Time      // Most recent completion (nil = never completed)
	ID                string          // Opaque unique ID (immutable)
	Title             string          // Title (required)
	Description       string          // Description (optional)
	RepeatFrequency   RepeatFrequency // Recurrence rule
	CustomDays        []int           // Days of month, only used by RepeatCustom
	CurrentStreak     int             // Consecutive completed occurrences
	Completed         bool            // Completion state of this occurrence
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	c := t
	c.CustomDays = slices.Clone(t.CustomDays)
	if t.LastCompletedDate != nil {
		last := *t.LastCompletedDate
		c.LastCompletedDate = &last
	}
	return c
}

// IsRepeating returns true if completing the task spawns a next occurrence.
func (t Task) IsRepeating() bool {
	return t.RepeatFrequency.IsRepeating()
}

// IsOverdue returns true if the task is not completed and was due before today.
func (t Task) IsOverdue(today time.Time) bool {
	return !t.Completed && t.DueDate.Before(StartOfDay(today))
}

// IsDueOn returns true if the task is due on the given day.
func (t Task) IsDueOn(day time.Time) bool {
	return SameDay(t.DueDate, day)
}

// SortByDueDate returns a copy of tasks ordered by due date.
// Ties keep creation order, then insertion order.
func SortByDueDate(tasks []Task) []Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b Task) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return sorted
}

// CountPending returns the number of tasks that are not completed.
func CountPending(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}
