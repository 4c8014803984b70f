package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/infra/memstore"
	"github.com/runoshun/recur/internal/testutil"
)

// testNow is a Sunday afternoon.
var testNow = time.Date(2026, time.October, 18, 15, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newTestModel returns a sized model over an in-memory store seeded with drafts.
func newTestModel(t *testing.T, drafts ...domain.TaskDraft) (*Model, *memstore.Store, *testutil.MockClock) {
	t.Helper()

	clock := &testutil.MockClock{NowTime: testNow}
	store := memstore.New(clock, &testutil.SequenceIDs{})
	for _, d := range drafts {
		store.Add(d)
	}
	c := app.NewWithDeps(app.Config{}, store, clock, &testutil.MockLogger{})

	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	drain(t, m, m.Init())
	return m, store, clock
}

// drain runs cmd and feeds every resulting TUI message back into the model
// until no commands remain. Messages from other components are dropped.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(t, m, c)
		}
	case Msg:
		_, next := m.Update(msg)
		drain(t, m, next)
	}
}

// press sends a key and drains the resulting commands.
func press(t *testing.T, m *Model, k tea.KeyMsg) {
	t.Helper()
	_, cmd := m.Update(k)
	drain(t, m, cmd)
}

// typeText sends text to the focused input. The returned command (cursor
// blink) is not run.
func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

// forceColorProfile pins the lipgloss color profile for the duration of the test.
func forceColorProfile(t *testing.T, p termenv.Profile) {
	t.Helper()
	prev := lipgloss.DefaultRenderer().ColorProfile()
	lipgloss.SetColorProfile(p)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}
