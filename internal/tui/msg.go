package tui

import (
	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task list is loaded from the store.
type MsgTasksLoaded struct {
	Tasks   []domain.Task
	Total   int
	Pending int
	Overdue int
}

func (MsgTasksLoaded) sealed() {}

// MsgCalendarLoaded is sent when a month grid is built.
type MsgCalendarLoaded struct {
	Calendar *usecase.ShowCalendarOutput
}

func (MsgCalendarLoaded) sealed() {}

// MsgTaskShown is sent when details of a task are loaded.
type MsgTaskShown struct {
	Detail *usecase.ShowTaskOutput
}

func (MsgTaskShown) sealed() {}

// MsgTaskCreated is sent when a new task is added.
type MsgTaskCreated struct {
	Task domain.Task
}

func (MsgTaskCreated) sealed() {}

// MsgTaskUpdated is sent when a task is edited.
type MsgTaskUpdated struct {
	Task  domain.Task
	Found bool
}

func (MsgTaskUpdated) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID string
}

func (MsgTaskDeleted) sealed() {}

// MsgTaskToggled is sent when a task's completion is flipped.
type MsgTaskToggled struct {
	Decision domain.Decision
	Found    bool
}

func (MsgTaskToggled) sealed() {}

// MsgDayChanged is sent by the midnight scheduler job.
type MsgDayChanged struct{}

func (MsgDayChanged) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
