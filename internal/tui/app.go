package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/usecase"
	"github.com/runoshun/recur/internal/usecase/shared"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	config    *domain.Config
	err       error
	calendar  *usecase.ShowCalendarOutput
	detail    *usecase.ShowTaskOutput

	// State (slices - contain pointers)
	tasks []domain.Task

	// Components (structs with pointers)
	keys           KeyMap
	styles         Styles
	help           help.Model
	taskList       list.Model
	detailViewport viewport.Model

	// Input state (large structs)
	titleInput textinput.Model
	daysInput  textinput.Model
	dueInput   textinput.Model
	quickInput textinput.Model
	descInput  textarea.Model

	// Time state
	today time.Time // Current day as of the last reload
	month time.Time // First day of the month shown in the calendar

	// Strings
	notice        string // One-shot status message, cleared on the next key press
	editingID     string // Task being edited in the form ("" = adding)
	confirmTaskID string

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	formField     FormField
	formRepeat    int // Index into domain.AllRepeatFrequencies
	width         int
	height        int
	total         int
	pending       int
	overdue       int
	hideCompleted bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	days := textinput.New()
	days.Placeholder = "1, 15"
	days.CharLimit = 100

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD (empty = today)"
	due.CharLimit = 10

	qi := textinput.New()
	qi.Placeholder = "Water plants every week"
	qi.CharLimit = 200

	di := textarea.New()
	di.Placeholder = "Description (optional)"
	di.CharLimit = 1000
	di.ShowLineNumbers = false
	di.SetHeight(3)

	cfg := c.AppConfig
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	now := c.Clock.Now()
	m := &Model{
		container:     c,
		config:        cfg,
		mode:          ModeNormal,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		help:          help.New(),
		titleInput:    ti,
		daysInput:     days,
		dueInput:      due,
		quickInput:    qi,
		descInput:     di,
		today:         domain.StartOfDay(now),
		month:         firstOfMonth(now),
		hideCompleted: cfg.Display.HideCompleted,
	}

	delegate := newTaskDelegate(m.styles, func() time.Time { return m.today })
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()
	m.taskList = taskList

	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.reload()
}

func firstOfMonth(t time.Time) time.Time {
	y, mo, _ := t.Date()
	return time.Date(y, mo, 1, 0, 0, 0, 0, t.Location())
}

// reload refreshes both the task list and the calendar.
func (m *Model) reload() tea.Cmd {
	return tea.Batch(m.loadTasks(), m.loadCalendar())
}

// loadTasks returns a command that loads tasks from the store.
func (m *Model) loadTasks() tea.Cmd {
	hide := m.hideCompleted
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(
			context.Background(),
			usecase.ListTasksInput{HideCompleted: hide},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{
			Tasks:   out.Tasks,
			Total:   out.Total,
			Pending: out.Pending,
			Overdue: out.Overdue,
		}
	}
}

// loadCalendar returns a command that builds the grid for the shown month.
func (m *Model) loadCalendar() tea.Cmd {
	month := m.month
	return func() tea.Msg {
		out, err := m.container.ShowCalendarUseCase().Execute(
			context.Background(),
			usecase.ShowCalendarInput{Month: month},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgCalendarLoaded{Calendar: out}
	}
}

// showTask returns a command that loads the details of a task.
func (m *Model) showTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ShowTaskUseCase().Execute(
			context.Background(),
			usecase.ShowTaskInput{ID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskShown{Detail: out}
	}
}

// createTask returns a command that adds a new task.
func (m *Model) createTask(in usecase.AddTaskInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{Task: out.Task}
	}
}

// quickAdd returns a command that adds a task parsed from free text.
func (m *Model) quickAdd(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.QuickAddTaskUseCase().Execute(
			context.Background(),
			usecase.QuickAddTaskInput{Text: text},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{Task: out.Task}
	}
}

// editTask returns a command that replaces an existing task's fields.
func (m *Model) editTask(in usecase.EditTaskInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.EditTaskUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskUpdated{Task: out.Task, Found: out.Found}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(
			context.Background(),
			usecase.DeleteTaskInput{ID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: taskID}
	}
}

// toggleTask returns a command that flips a task's completion.
func (m *Model) toggleTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(
			context.Background(),
			usecase.ToggleTaskInput{ID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{Decision: out.Decision, Found: out.Found}
	}
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.taskList.SelectedItem() == nil {
		return nil
	}
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		task := ti.task
		return &task
	}
	return nil
}

// updateTaskList updates the task list items from tasks.
func (m *Model) updateTaskList() {
	items := make([]list.Item, 0, len(m.tasks))
	for _, task := range m.tasks {
		items = append(items, taskItem{task: task})
	}
	m.taskList.SetItems(items)
}

// openForm switches to the task form, prefilled from task when editing.
func (m *Model) openForm(task *domain.Task) {
	m.resetForm()
	m.mode = ModeForm
	if task != nil {
		m.editingID = task.ID
		m.titleInput.SetValue(task.Title)
		m.formRepeat = repeatIndex(task.RepeatFrequency)
		m.daysInput.SetValue(shared.FormatCustomDays(task.CustomDays))
		m.dueInput.SetValue(task.DueDate.Format(domain.DateLayout))
		m.descInput.SetValue(task.Description)
	}
	m.focusFormField()
}

// resetForm clears every form input.
func (m *Model) resetForm() {
	m.editingID = ""
	m.formField = FieldTitle
	m.formRepeat = 0
	m.titleInput.Reset()
	m.daysInput.Reset()
	m.dueInput.Reset()
	m.descInput.Reset()
}

// focusFormField focuses the current field in the task form.
func (m *Model) focusFormField() {
	m.titleInput.Blur()
	m.daysInput.Blur()
	m.dueInput.Blur()
	m.descInput.Blur()

	switch m.formField {
	case FieldTitle:
		m.titleInput.Focus()
	case FieldDays:
		m.daysInput.Focus()
	case FieldDue:
		m.dueInput.Focus()
	case FieldDesc:
		m.descInput.Focus()
	case FieldRepeat, formFieldCount:
		// Repeat is a picker; nothing to focus
	}
}

// formRepeatFrequency returns the frequency selected in the form.
func (m *Model) formRepeatFrequency() domain.RepeatFrequency {
	freqs := domain.AllRepeatFrequencies()
	return freqs[m.formRepeat%len(freqs)]
}

func repeatIndex(f domain.RepeatFrequency) int {
	for i, v := range domain.AllRepeatFrequencies() {
		if v == f {
			return i
		}
	}
	return 0
}

// submitForm validates the form and returns the add or edit command.
// Input errors are reported on the model and leave the form open.
func (m *Model) submitForm() tea.Cmd {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.err = domain.ErrEmptyTitle
		return nil
	}

	var due *time.Time
	if s := strings.TrimSpace(m.dueInput.Value()); s != "" {
		parsed, err := domain.ParseDate(s, m.today.Location())
		if err != nil {
			m.err = fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
			return nil
		}
		due = &parsed
	}

	repeat := string(m.formRepeatFrequency())
	days := shared.ParseCustomDays(m.daysInput.Value())
	desc := m.descInput.Value()

	if m.editingID == "" {
		return m.createTask(usecase.AddTaskInput{
			Title:       title,
			Description: desc,
			Repeat:      repeat,
			CustomDays:  days,
			DueDate:     due,
		})
	}

	if due == nil {
		today := m.today
		due = &today
	}
	return m.editTask(usecase.EditTaskInput{
		ID:          m.editingID,
		Title:       &title,
		Description: &desc,
		Repeat:      &repeat,
		CustomDays:  &days,
		DueDate:     due,
	})
}

// initDetailViewport sizes the detail viewport and fills it with the loaded task.
func (m *Model) initDetailViewport() {
	width := m.width - 12
	height := m.height - 10
	if width < 40 {
		width = 40
	}
	if height < 10 {
		height = 10
	}
	m.detailViewport = viewport.New(width, height)
	m.detailViewport.SetContent(m.detailContent(width))
}

// updateLayoutSizes resizes components after a window size change.
func (m *Model) updateLayoutSizes() {
	listWidth := m.width - 4
	if listWidth < 40 {
		listWidth = 40
	}
	// header(2) + footer(2) + app padding(2) + dialog room
	listHeight := m.height - 8
	if listHeight < 3 {
		listHeight = 3
	}
	m.taskList.SetSize(listWidth, listHeight)
	m.descInput.SetWidth(min(listWidth-20, 60))
	if m.mode == ModeDetail {
		m.initDetailViewport()
	}
}
