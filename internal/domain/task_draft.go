package domain

import (
	"slices"
	"time"
)

// maxDayOfMonth is the largest day value accepted in CustomDays.
const maxDayOfMonth = 31

// TaskDraft is the input for adding a task.
// It carries everything except the ID, creation time and streak, which the store assigns.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	DueDate           time.Time
	LastCompletedDate *time.Time
	Title             string
	Description       string
	RepeatFrequency   RepeatFrequency
	CustomDays        []int
	Completed         bool
}

// NewTask builds a task from the draft with the given identity.
// The streak always starts at zero, the due date is truncated to its day and
// an unset or unknown frequency becomes RepeatOnce.
func (d TaskDraft) NewTask(id string, createdAt time.Time) Task {
	freq := d.RepeatFrequency
	if !freq.IsValid() {
		freq = RepeatOnce
	}
	t := Task{
		ID:              id,
		Title:           d.Title,
		Description:     d.Description,
		Completed:       d.Completed,
		RepeatFrequency: freq,
		CustomDays:      slices.Clone(d.CustomDays),
		DueDate:         StartOfDay(d.DueDate),
		CreatedAt:       createdAt,
		CurrentStreak:   0,
	}
	if d.LastCompletedDate != nil {
		last := *d.LastCompletedDate
		t.LastCompletedDate = &last
	}
	return t
}

// NormalizeCustomDays returns the valid days of month (1 to 31) in
// ascending order without duplicates. It returns nil when none remain.
func NormalizeCustomDays(days []int) []int {
	var out []int
	for _, d := range days {
		if d >= 1 && d <= maxDayOfMonth {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}
