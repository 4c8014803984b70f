package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCalendar_Execute_CurrentMonth(t *testing.T) {
	store, clock := newTestStore()
	store.Add(domain.TaskDraft{Title: "Water plants", DueDate: date(2026, time.October, 20)})
	uc := NewShowCalendar(store, &testutil.MockConfigLoader{}, clock)

	out, err := uc.Execute(context.Background(), ShowCalendarInput{})

	require.NoError(t, err)
	assert.Equal(t, date(2026, time.October, 1), out.Month)
	assert.Equal(t, time.Sunday, out.WeekStart)
	assert.Equal(t, "Su", out.Headers[0])

	weeks := out.Weeks()
	require.Len(t, weeks, 5)
	for _, w := range weeks {
		assert.Len(t, w, 7)
	}

	// Oct 20 is the Tuesday of the fourth row.
	cell := weeks[3][2]
	assert.Equal(t, date(2026, time.October, 20), cell.Date)
	require.Len(t, cell.Tasks, 1)
	assert.Equal(t, "Water plants", cell.Tasks[0].Title)
	assert.True(t, weeks[3][0].IsToday)
}

func TestShowCalendar_Execute_MondayStart(t *testing.T) {
	store, clock := newTestStore()
	cfg := domain.NewDefaultConfig()
	cfg.Calendar.WeekStart = "monday"
	uc := NewShowCalendar(store, &testutil.MockConfigLoader{Config: cfg}, clock)

	out, err := uc.Execute(context.Background(), ShowCalendarInput{Month: date(2026, time.February, 20)})

	require.NoError(t, err)
	assert.Equal(t, date(2026, time.February, 1), out.Month)
	assert.Equal(t, time.Monday, out.WeekStart)
	assert.Equal(t, "Mo", out.Headers[0])
	assert.Equal(t, time.Monday, out.Days[0].Date.Weekday())
}

func TestShowCalendar_Execute_ConfigError(t *testing.T) {
	store, clock := newTestStore()
	loadErr := errors.New("broken toml")
	uc := NewShowCalendar(store, &testutil.MockConfigLoader{LoadErr: loadErr}, clock)

	_, err := uc.Execute(context.Background(), ShowCalendarInput{})

	assert.ErrorIs(t, err, loadErr)
}
