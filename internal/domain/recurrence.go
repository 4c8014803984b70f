package domain

import "time"

// Decision is the outcome of toggling a task's completion.
type Decision struct {
	// Spawned is the next occurrence, or nil when none is created.
	// It has no ID; the store assigns one when it commits the decision.
	Spawned *Task
	// Current is the toggled occurrence that replaces the original.
	Current Task
}

// Decide computes the result of toggling task at time now.
// It is pure: the task is not modified and the result depends only on the arguments.
//
// Flow:
//   - completed flips
//   - streak is recomputed (see ComputeStreak)
//   - LastCompletedDate moves to now only when completing
//   - completing a repeating task spawns one successor (see NextDueDate)
func Decide(task Task, now time.Time) Decision {
	completed := !task.Completed
	streak := ComputeStreak(task, completed, now)

	current := task.Clone()
	current.Completed = completed
	current.CurrentStreak = streak
	if !completed {
		return Decision{Current: current}
	}

	completedAt := now
	current.LastCompletedDate = &completedAt

	next, ok := NextDueDate(task, now)
	if !ok {
		return Decision{Current: current}
	}

	spawned := task.Clone()
	spawned.ID = ""
	spawned.Completed = false
	spawned.DueDate = next
	spawned.CreatedAt = now
	spawned.CurrentStreak = streak
	spawnedAt := now
	spawned.LastCompletedDate = &spawnedAt

	return Decision{Current: current, Spawned: &spawned}
}

// ComputeStreak returns the streak the task has after being set to completed at now.
//
//   - un-completing always resets to 0
//   - the first ever completion starts at 1
//   - daily: a gap of at most one calendar day continues the streak, else it restarts at 1
//   - weekly: a gap of at most one week (7 calendar days) continues, else it restarts at 1
//   - monthly and custom do not accumulate and stay at 0 after the first completion
//   - once starts a fresh streak of 1 on every re-completion
func ComputeStreak(task Task, completed bool, now time.Time) int {
	if !completed {
		return 0
	}
	if task.LastCompletedDate == nil {
		return 1
	}

	gap := DaysBetween(*task.LastCompletedDate, now)
	switch task.RepeatFrequency {
	case RepeatDaily:
		if gap <= 1 {
			return task.CurrentStreak + 1
		}
		return 1
	case RepeatWeekly:
		if gap <= daysPerWeek {
			return task.CurrentStreak + 1
		}
		return 1
	case RepeatMonthly, RepeatCustom:
		return 0
	case RepeatOnce:
		return 1
	default:
		return 1
	}
}

// NextDueDate returns the due date of the occurrence that follows task.
// ok is false when no successor is created: once tasks, unknown
// frequencies and custom tasks without any valid day.
//
// Fixed steps advance task.DueDate by one day, one week or one calendar month.
// Custom picks the first listed day after now's day-of-month within DueDate's
// month, or the smallest listed day of the following month.
func NextDueDate(task Task, now time.Time) (next time.Time, ok bool) {
	switch task.RepeatFrequency {
	case RepeatDaily:
		return task.DueDate.AddDate(0, 0, 1), true
	case RepeatWeekly:
		return task.DueDate.AddDate(0, 0, daysPerWeek), true
	case RepeatMonthly:
		return AddMonths(task.DueDate, 1), true
	case RepeatCustom:
		return nextCustomDueDate(task.DueDate, task.CustomDays, now.Day())
	case RepeatOnce:
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func nextCustomDueDate(due time.Time, customDays []int, today int) (time.Time, bool) {
	days := NormalizeCustomDays(customDays)
	if len(days) == 0 {
		return time.Time{}, false
	}
	for _, d := range days {
		if d > today {
			return withDay(due, d), true
		}
	}
	return withDay(AddMonths(withDay(due, 1), 1), days[0]), true
}
