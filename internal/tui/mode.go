// Package tui provides the terminal user interface for recur.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal   Mode = iota // Default navigation mode
	ModeConfirm              // Confirmation dialog mode
	ModeForm                 // Add/edit task form
	ModeQuickAdd             // One-line quick add prompt
	ModeHelp                 // Help overlay mode
	ModeDetail               // Task detail view mode
	ModeCalendar             // Month calendar view
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeConfirm:
		return "confirm"
	case ModeForm:
		return "form"
	case ModeQuickAdd:
		return "quick_add"
	case ModeHelp:
		return "help"
	case ModeDetail:
		return "detail"
	case ModeCalendar:
		return "calendar"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeForm, ModeQuickAdd:
		return true
	case ModeNormal, ModeConfirm, ModeHelp, ModeDetail, ModeCalendar:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	}
	return ""
}

// FormField identifies the focused field of the task form.
type FormField int

const (
	FieldTitle FormField = iota
	FieldRepeat
	FieldDays
	FieldDue
	FieldDesc
	formFieldCount
)

// String returns the field label.
func (f FormField) String() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldRepeat:
		return "Repeat"
	case FieldDays:
		return "Days"
	case FieldDue:
		return "Due"
	case FieldDesc:
		return "Description"
	case formFieldCount:
		return ""
	}
	return ""
}

// Next returns the following field, wrapping around.
func (f FormField) Next() FormField {
	return (f + 1) % formFieldCount
}

// Prev returns the preceding field, wrapping around.
func (f FormField) Prev() FormField {
	return (f + formFieldCount - 1) % formFieldCount
}
