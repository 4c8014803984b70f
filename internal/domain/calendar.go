package domain

import (
	"fmt"
	"strings"
	"time"
)

// CalendarDay is one cell of a month grid.
// Fields are ordered to minimize memory padding.
type CalendarDay struct {
	Date    time.Time // Midnight of the day
	Tasks   []Task    // Tasks due on this day, in due-date order
	InMonth bool      // False for leading/trailing days of adjacent months
	IsToday bool
}

// PendingCount returns the number of tasks in the cell that are not completed.
func (d CalendarDay) PendingCount() int {
	return CountPending(d.Tasks)
}

// MonthGrid lays out the month containing month as whole weeks starting on weekStart.
// The grid runs from the start of the week holding the 1st to the end of the
// week holding the last day, so its length is a multiple of seven.
func MonthGrid(month time.Time, weekStart time.Weekday, today time.Time, tasks []Task) []CalendarDay {
	y, m, _ := month.Date()
	loc := month.Location()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	last := time.Date(y, m, DaysInMonth(y, m), 0, 0, 0, 0, loc)

	start := StartOfWeek(first, weekStart)
	end := EndOfWeek(last, weekStart)

	byDay := make(map[string][]Task)
	for _, t := range SortByDueDate(tasks) {
		key := DateKey(t.DueDate.In(loc))
		byDay[key] = append(byDay[key], t)
	}

	var grid []CalendarDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		grid = append(grid, CalendarDay{
			Date:    d,
			Tasks:   byDay[DateKey(d)],
			InMonth: d.Month() == m,
			IsToday: SameDay(today, d),
		})
	}
	return grid
}

// StartOfWeek returns midnight of the first day of the week containing t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	d := StartOfDay(t)
	offset := (int(d.Weekday()) - int(weekStart) + daysPerWeek) % daysPerWeek
	return d.AddDate(0, 0, -offset)
}

// EndOfWeek returns midnight of the last day of the week containing t.
func EndOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	return StartOfWeek(t, weekStart).AddDate(0, 0, daysPerWeek-1)
}

// WeekdayHeaders returns abbreviated weekday names starting at weekStart.
func WeekdayHeaders(weekStart time.Weekday) []string {
	headers := make([]string, 0, daysPerWeek)
	for i := range daysPerWeek {
		wd := time.Weekday((int(weekStart) + i) % daysPerWeek)
		headers = append(headers, wd.String()[:2])
	}
	return headers
}

// ParseWeekday parses an English weekday name such as "monday" or "Mon".
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) >= 3 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			full := strings.ToLower(wd.String())
			if name == full || name == full[:3] {
				return wd, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// ParseWeekStart parses the first column of the month grid.
// Only Sunday and Monday are accepted.
func ParseWeekStart(s string) (time.Weekday, error) {
	wd, err := ParseWeekday(s)
	if err != nil {
		return time.Sunday, err
	}
	if wd != time.Sunday && wd != time.Monday {
		return time.Sunday, fmt.Errorf("%w: %q (want sunday or monday)", ErrInvalidWeekday, s)
	}
	return wd, nil
}

// ParseMonth parses a YYYY-MM month and returns the 1st of that month in loc.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01", strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return t, nil
}
