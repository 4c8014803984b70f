package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/infra/memstore"
	"github.com/runoshun/recur/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestEditTask_Execute_UpdatesFields(t *testing.T) {
	store, clock := newTestStore()
	added := store.Add(domain.TaskDraft{Title: "Run", RepeatFrequency: domain.RepeatDaily, DueDate: clock.NowTime})
	_, _ = store.Toggle(added.ID)
	logger := &testutil.MockLogger{}
	uc := NewEditTask(store, logger)

	out, err := uc.Execute(context.Background(), EditTaskInput{
		ID:         added.ID,
		Title:      ptr("  Run 5k "),
		Repeat:     ptr("custom"),
		CustomDays: ptr([]int{20, 10}),
		DueDate:    ptr(time.Date(2026, time.October, 25, 13, 0, 0, 0, time.UTC)),
	})

	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, "Run 5k", out.Task.Title)
	assert.Equal(t, domain.RepeatCustom, out.Task.RepeatFrequency)
	assert.Equal(t, []int{10, 20}, out.Task.CustomDays)
	assert.Equal(t, date(2026, time.October, 25), out.Task.DueDate)

	// Completion state and streak survive an edit.
	stored, _ := store.Get(added.ID)
	assert.True(t, stored.Completed)
	assert.Equal(t, 1, stored.CurrentStreak)
	assert.Equal(t, out.Task, stored)
	assert.Equal(t, []string{`edited: "Run 5k"`}, logger.Messages())
}

func TestEditTask_Execute_SwitchingAwayFromCustomDropsDays(t *testing.T) {
	store, _ := newTestStore()
	added := store.Add(domain.TaskDraft{Title: "Pay", RepeatFrequency: domain.RepeatCustom, CustomDays: []int{1}})
	uc := NewEditTask(store, nil)

	out, err := uc.Execute(context.Background(), EditTaskInput{ID: added.ID, Repeat: ptr("monthly")})

	require.NoError(t, err)
	assert.Nil(t, out.Task.CustomDays)
	assert.Equal(t, domain.RepeatMonthly, out.Task.RepeatFrequency)
}

func TestEditTask_Execute_NotFoundIsSilent(t *testing.T) {
	store, _ := newTestStore()
	uc := NewEditTask(store, nil)

	out, err := uc.Execute(context.Background(), EditTaskInput{ID: "gone", Title: ptr("x")})

	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Equal(t, 0, store.Len())
}

func TestEditTask_Execute_Errors(t *testing.T) {
	store, _ := newTestStore()
	added := store.Add(domain.TaskDraft{Title: "Run"})
	uc := NewEditTask(store, nil)

	_, err := uc.Execute(context.Background(), EditTaskInput{ID: added.ID})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, err = uc.Execute(context.Background(), EditTaskInput{ID: added.ID, Title: ptr(" ")})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = uc.Execute(context.Background(), EditTaskInput{ID: added.ID, Repeat: ptr("custom")})
	assert.ErrorIs(t, err, domain.ErrNoCustomDays)

	stored, _ := store.Get(added.ID)
	assert.Equal(t, "Run", stored.Title)
	assert.Equal(t, domain.RepeatOnce, stored.RepeatFrequency)
}

// interleavedToggleStore completes the task between any read and the write
// that follows it, the way a concurrent toggle from the TUI can.
type interleavedToggleStore struct {
	*memstore.Store
}

func (s interleavedToggleStore) Get(id string) (domain.Task, bool) {
	task, ok := s.Store.Get(id)
	_, _ = s.Store.Toggle(id)
	return task, ok
}

func (s interleavedToggleStore) Modify(id string, fn func(*domain.Task) error) (domain.Task, bool, error) {
	_, _ = s.Store.Toggle(id)
	return s.Store.Modify(id, fn)
}

func TestEditTask_Execute_KeepsConcurrentCompletion(t *testing.T) {
	store, clock := newTestStore()
	added := store.Add(domain.TaskDraft{Title: "Run", RepeatFrequency: domain.RepeatDaily, DueDate: clock.NowTime})
	uc := NewEditTask(interleavedToggleStore{store}, nil)

	out, err := uc.Execute(context.Background(), EditTaskInput{ID: added.ID, Title: ptr("Run 5k")})

	require.NoError(t, err)
	require.True(t, out.Found)
	assert.Equal(t, "Run 5k", out.Task.Title)
	assert.True(t, out.Task.Completed)
	assert.Equal(t, 1, out.Task.CurrentStreak)

	stored, _ := store.Get(added.ID)
	assert.True(t, stored.Completed)
	assert.Len(t, store.List(), 2)
}
