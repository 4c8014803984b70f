package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/recur/internal/domain"
)

// ShowCalendarInput contains the parameters for showing a month.
type ShowCalendarInput struct {
	Month time.Time // Any day in the month to show (zero = current month)
}

// ShowCalendarOutput contains a month grid with tasks overlaid on their due dates.
// Fields are ordered to minimize memory padding.
type ShowCalendarOutput struct {
	Month     time.Time            // First day of the month
	Days      []domain.CalendarDay // Whole weeks covering the month
	Headers   []string             // Weekday column headers
	WeekStart time.Weekday
}

// Weeks splits the grid into rows of seven days.
func (o *ShowCalendarOutput) Weeks() [][]domain.CalendarDay {
	var weeks [][]domain.CalendarDay
	for i := 0; i+7 <= len(o.Days); i += 7 {
		weeks = append(weeks, o.Days[i:i+7])
	}
	return weeks
}

// ShowCalendar builds the month view.
type ShowCalendar struct {
	store        domain.TaskStore
	configLoader domain.ConfigLoader
	clock        domain.Clock
}

// NewShowCalendar creates a new ShowCalendar use case.
func NewShowCalendar(store domain.TaskStore, configLoader domain.ConfigLoader, clock domain.Clock) *ShowCalendar {
	return &ShowCalendar{
		store:        store,
		configLoader: configLoader,
		clock:        clock,
	}
}

// Execute lays out the requested month using the configured week start.
func (uc *ShowCalendar) Execute(_ context.Context, in ShowCalendarInput) (*ShowCalendarOutput, error) {
	weekStart := time.Sunday
	if uc.configLoader != nil {
		cfg, err := uc.configLoader.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		weekStart = cfg.WeekStart()
	}

	now := uc.clock.Now()
	month := in.Month
	if month.IsZero() {
		month = now
	}
	y, m, _ := month.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, month.Location())

	return &ShowCalendarOutput{
		Month:     first,
		Days:      domain.MonthGrid(first, weekStart, now, uc.store.List()),
		Headers:   domain.WeekdayHeaders(weekStart),
		WeekStart: weekStart,
	}, nil
}
