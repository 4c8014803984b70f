package tui

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/recur/internal/domain"
)

func TestView_LoadingBeforeWindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.width = 0

	assert.Equal(t, "Loading...", m.View())
}

func TestView_MainShowsTasksAndCounts(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)
	m, _, _ := newTestModel(t,
		domain.TaskDraft{Title: "Water plants", RepeatFrequency: domain.RepeatWeekly, DueDate: date(2026, 10, 18)},
		domain.TaskDraft{Title: "File taxes", RepeatFrequency: domain.RepeatOnce, DueDate: date(2026, 10, 15)},
	)

	view := m.View()

	assert.Contains(t, view, "Tasks · Sun Oct 18")
	assert.Contains(t, view, "2 pending, 1 overdue, 2 total")
	assert.Contains(t, view, "Water plants")
	assert.Contains(t, view, "[weekly]")
	assert.Contains(t, view, "3d late")
	assert.Contains(t, view, "quick add")
}

func TestView_EmptyStates(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)

	t.Run("no tasks", func(t *testing.T) {
		m, _, _ := newTestModel(t)
		assert.Contains(t, m.View(), "No tasks yet")
	})

	t.Run("all completed and hidden", func(t *testing.T) {
		m, _, _ := newTestModel(t,
			domain.TaskDraft{Title: "Done", RepeatFrequency: domain.RepeatOnce, DueDate: date(2026, 10, 18), Completed: true},
		)
		press(t, m, runeKey("H"))

		view := m.View()
		assert.Contains(t, view, "Everything is done")
		assert.Contains(t, view, "(completed hidden)")
	})
}

func TestView_NoticeAndError(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)
	m, _, _ := newTestModel(t)

	m.notice = "Added something"
	assert.Contains(t, m.View(), "Added something")

	m.err = domain.ErrEmptyTitle
	view := m.View()
	assert.Contains(t, view, "Error: title cannot be empty")
	assert.NotContains(t, view, "Added something")
}

func TestView_ConfirmDialog(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)
	m, _, _ := newTestModel(t,
		domain.TaskDraft{Title: "Old chore", RepeatFrequency: domain.RepeatOnce, DueDate: date(2026, 10, 18)},
	)

	press(t, m, runeKey("d"))

	view := m.View()
	assert.Contains(t, view, `Delete "Old chore"?`)
	assert.Contains(t, view, "[ y ] Confirm")
}

func TestView_Form(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)
	m, _, _ := newTestModel(t,
		domain.TaskDraft{Title: "Pay rent", RepeatFrequency: domain.RepeatCustom, CustomDays: []int{1}, DueDate: date(2026, 11, 1)},
	)

	press(t, m, runeKey("n"))
	view := m.View()
	assert.Contains(t, view, "New Task")
	assert.Contains(t, view, "‹ once ›")
	assert.Contains(t, view, "(custom only)")

	press(t, m, keyEsc)
	press(t, m, runeKey("e"))
	view = m.View()
	assert.Contains(t, view, "Edit Task")
	assert.Contains(t, view, "‹ custom ›")
	assert.NotContains(t, view, "(custom only)")
}

func TestView_QuickAdd(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)
	m, _, _ := newTestModel(t)

	press(t, m, runeKey("a"))

	assert.Contains(t, m.View(), "Quick Add")
}

func TestView_Help(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)
	m, _, _ := newTestModel(t)

	press(t, m, runeKey("?"))

	view := m.View()
	assert.Contains(t, view, "KEYBOARD SHORTCUTS")
	assert.Contains(t, view, "quick add")
	assert.Contains(t, view, "next month")
}

func TestView_Calendar(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)
	m, _, _ := newTestModel(t,
		domain.TaskDraft{Title: "Reorganize the garage shelves", RepeatFrequency: domain.RepeatOnce, DueDate: date(2026, 10, 5)},
		domain.TaskDraft{Title: "A1", RepeatFrequency: domain.RepeatOnce, DueDate: date(2026, 10, 20)},
		domain.TaskDraft{Title: "A2", RepeatFrequency: domain.RepeatOnce, DueDate: date(2026, 10, 20)},
		domain.TaskDraft{Title: "A3", RepeatFrequency: domain.RepeatOnce, DueDate: date(2026, 10, 20)},
		domain.TaskDraft{Title: "A4", RepeatFrequency: domain.RepeatOnce, DueDate: date(2026, 10, 20)},
	)

	press(t, m, runeKey("c"))
	view := m.View()

	assert.Contains(t, view, "October 2026")
	assert.Contains(t, view, "Su")
	assert.Contains(t, view, "Sa")
	assert.Contains(t, view, "18 ●", "today is marked")
	assert.Contains(t, view, "○ Reorgani")
	assert.NotContains(t, view, "Reorganize the garage shelves")
	assert.Contains(t, view, "…")
	assert.Contains(t, view, "A1")
	assert.Contains(t, view, "A2")
	assert.Contains(t, view, "+2 more")
	assert.NotContains(t, view, "A3")
}

func TestView_DetailContent(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)
	m, _, _ := newTestModel(t,
		domain.TaskDraft{
			Title:           "Water plants",
			Description:     "Balcony first",
			RepeatFrequency: domain.RepeatWeekly,
			DueDate:         date(2026, 10, 18),
		},
	)

	press(t, m, keyEnter)
	require.Equal(t, ModeDetail, m.mode)

	content := m.detailContent(80)
	assert.Contains(t, content, "Water plants")
	assert.Contains(t, content, "pending")
	assert.Contains(t, content, "Oct 18, 2026")
	assert.Contains(t, content, "weekly")
	assert.Contains(t, content, "Streak")
	assert.Contains(t, content, "Oct 25, 2026")
	assert.Contains(t, content, "Balcony first")
	assert.NotContains(t, content, "Last done")

	assert.True(t, strings.Contains(m.View(), "[esc] back"))
}

func TestStatusLine_Render(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)
	styles := DefaultStyles()
	sl := NewStatusLine(60, &styles)

	out := sl.Render(StatusLineInfo{
		Mode:     ModeCalendar,
		KeyHints: []KeyHint{{Key: "t", Desc: "today"}},
	})

	assert.Contains(t, out, "t today")
	assert.Contains(t, out, "calendar")
}

func TestStatusLine_TruncatesHints(t *testing.T) {
	forceColorProfile(t, termenv.Ascii)
	styles := DefaultStyles()
	sl := NewStatusLine(30, &styles)

	hints := make([]KeyHint, 0, 10)
	for range 10 {
		hints = append(hints, KeyHint{Key: "k", Desc: "something"})
	}
	out := sl.Render(StatusLineInfo{Mode: ModeNormal, KeyHints: hints})

	assert.Contains(t, out, "...")
	assert.Contains(t, out, "normal")
}
