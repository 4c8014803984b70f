package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/recur/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.total = msg.Total
		m.pending = msg.Pending
		m.overdue = msg.Overdue
		m.updateTaskList()
		return m, nil

	case MsgCalendarLoaded:
		m.calendar = msg.Calendar
		return m, nil

	case MsgTaskShown:
		m.detail = msg.Detail
		m.mode = ModeDetail
		m.initDetailViewport()
		return m, nil

	case MsgTaskCreated:
		m.mode = ModeNormal
		m.resetForm()
		m.quickInput.Reset()
		m.notice = fmt.Sprintf("Added %q due %s", msg.Task.Title, m.config.FormatDate(msg.Task.DueDate))
		return m, m.reload()

	case MsgTaskUpdated:
		m.mode = ModeNormal
		m.resetForm()
		if !msg.Found {
			m.notice = "Task no longer exists"
		} else {
			m.notice = fmt.Sprintf("Updated %q", msg.Task.Title)
		}
		return m, m.reload()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = ""
		return m, m.reload()

	case MsgTaskToggled:
		m.notice = m.toggleNotice(msg)
		return m, m.reload()

	case MsgDayChanged:
		now := m.container.Clock.Now()
		if domain.SameDay(m.month, firstOfMonth(m.today)) {
			m.month = firstOfMonth(now)
		}
		m.today = domain.StartOfDay(now)
		return m, m.reload()

	case MsgError:
		m.err = msg.Err
		// Input errors keep the form open so the user can correct them.
		if !m.mode.IsInputMode() {
			m.mode = ModeNormal
		}
		m.confirmAction = ConfirmNone
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// toggleNotice describes the outcome of a toggle.
func (m *Model) toggleNotice(msg MsgTaskToggled) string {
	if !msg.Found {
		return "Task no longer exists"
	}
	cur := msg.Decision.Current
	if !cur.Completed {
		return fmt.Sprintf("Reopened %q", cur.Title)
	}
	notice := fmt.Sprintf("Completed %q", cur.Title)
	if cur.CurrentStreak > 1 {
		notice += fmt.Sprintf(" · streak %d", cur.CurrentStreak)
	}
	if next := msg.Decision.Spawned; next != nil {
		notice += " · next due " + m.config.FormatDate(next.DueDate)
	}
	return notice
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error and notice on any key press
	m.err = nil
	m.notice = ""

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeForm:
		return m.handleFormMode(msg)
	case ModeQuickAdd:
		return m.handleQuickAddMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	case ModeCalendar:
		return m.handleCalendarMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		m.taskList.Paginator.PrevPage()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.taskList.Paginator.NextPage()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.toggleTask(task.ID)

	case key.Matches(msg, m.keys.New):
		m.openForm(nil)
		return m, nil

	case key.Matches(msg, m.keys.QuickAdd):
		m.mode = ModeQuickAdd
		m.quickInput.Reset()
		m.quickInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.openForm(task)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.showTask(task.ID)

	case key.Matches(msg, m.keys.Calendar):
		m.mode = ModeCalendar
		return m, m.loadCalendar()

	case key.Matches(msg, m.keys.HideCompleted):
		m.hideCompleted = !m.hideCompleted
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleConfirmMode handles keys in confirm mode.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.confirmAction {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			return m, m.deleteTask(m.confirmTaskID)
		}
	}

	return m, nil
}

// handleFormMode handles keys in the add/edit form.
func (m *Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.resetForm()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.submitForm()

	case key.Matches(msg, m.keys.NextField):
		m.formField = m.formField.Next()
		m.focusFormField()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.formField = m.formField.Prev()
		m.focusFormField()
		return m, nil

	case msg.Type == tea.KeyEnter && m.formField != FieldDesc:
		return m, m.submitForm()
	}

	// Forward to current input field
	var cmd tea.Cmd
	switch m.formField {
	case FieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case FieldRepeat:
		n := len(domain.AllRepeatFrequencies())
		switch msg.String() {
		case "left", "h":
			m.formRepeat = (m.formRepeat + n - 1) % n
		case "right", "l", " ":
			m.formRepeat = (m.formRepeat + 1) % n
		}
	case FieldDays:
		m.daysInput, cmd = m.daysInput.Update(msg)
	case FieldDue:
		m.dueInput, cmd = m.dueInput.Update(msg)
	case FieldDesc:
		m.descInput, cmd = m.descInput.Update(msg)
	case formFieldCount:
	}
	return m, cmd
}

// handleQuickAddMode handles keys in the quick add prompt.
func (m *Model) handleQuickAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.quickInput.Reset()
		return m, nil

	case msg.Type == tea.KeyEnter:
		text := m.quickInput.Value()
		if text == "" {
			return m, nil
		}
		return m, m.quickAdd(text)
	}

	var cmd tea.Cmd
	m.quickInput, cmd = m.quickInput.Update(msg)
	return m, cmd
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// handleDetailMode handles keys in the task detail view.
func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Detail):
		m.mode = ModeNormal
		m.detail = nil
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.detail == nil {
			return m, nil
		}
		id := m.detail.Task.ID
		m.mode = ModeNormal
		m.detail = nil
		return m, m.toggleTask(id)
	}

	// Forward other keys to viewport for scrolling
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// handleCalendarMode handles keys in the month calendar.
func (m *Model) handleCalendarMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Calendar):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.PrevMonth):
		m.month = m.month.AddDate(0, -1, 0)
		return m, m.loadCalendar()

	case key.Matches(msg, m.keys.NextMonth):
		m.month = m.month.AddDate(0, 1, 0)
		return m, m.loadCalendar()

	case key.Matches(msg, m.keys.Today):
		m.month = firstOfMonth(m.today)
		return m, m.loadCalendar()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}
