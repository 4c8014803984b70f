package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/recur/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickAddTask_Execute(t *testing.T) {
	store, clock := newTestStore()
	uc := NewQuickAddTask(store, clock, nil)

	out, err := uc.Execute(context.Background(), QuickAddTaskInput{Text: "Water plants every week"})

	require.NoError(t, err)
	assert.Equal(t, "Water plants", out.Task.Title)
	assert.Equal(t, domain.RepeatWeekly, out.Task.RepeatFrequency)
	assert.Equal(t, date(2026, time.October, 18), out.Task.DueDate)
	assert.Equal(t, 1, store.Len())
}

func TestQuickAddTask_Execute_EmptyTitle(t *testing.T) {
	store, clock := newTestStore()
	uc := NewQuickAddTask(store, clock, nil)

	_, err := uc.Execute(context.Background(), QuickAddTaskInput{Text: "   "})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Equal(t, 0, store.Len())
}
