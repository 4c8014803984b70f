package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/recur/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Due state colors
	Overdue  lipgloss.Color
	DueToday lipgloss.Color
	Upcoming lipgloss.Color
	Done     lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	Overdue:  lipgloss.Color("#D63031"), // Red
	DueToday: lipgloss.Color("#FDCB6E"), // Yellow
	Upcoming: lipgloss.Color("#74B9FF"), // Light blue
	Done:     lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Notice     lipgloss.Style

	// Task list
	TaskTitle          lipgloss.Style
	TaskTitleSelected  lipgloss.Style
	TaskTitleDone      lipgloss.Style
	TaskDesc           lipgloss.Style
	SelectionIndicator lipgloss.Style
	RepeatBadge        lipgloss.Style
	Streak             lipgloss.Style

	// Due dates
	DueOverdue  lipgloss.Style
	DueToday    lipgloss.Style
	DueUpcoming lipgloss.Style
	DueDone     lipgloss.Style

	// Calendar
	CalTitle   lipgloss.Style
	CalHeader  lipgloss.Style
	CalCell    lipgloss.Style
	CalOutside lipgloss.Style
	CalToday   lipgloss.Style
	CalTask    lipgloss.Style
	CalDone    lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt lipgloss.Style
	InputLabel  lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style

	// Detail view
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
	DetailDesc  lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	calCell := lipgloss.NewStyle().
		Width(calCellWidth).
		Height(calCellHeight).
		Padding(0, 1)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(Colors.Success),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskTitleDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		RepeatBadge: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Streak: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		DueOverdue: lipgloss.NewStyle().
			Foreground(Colors.Overdue).
			Bold(true),

		DueToday: lipgloss.NewStyle().
			Foreground(Colors.DueToday),

		DueUpcoming: lipgloss.NewStyle().
			Foreground(Colors.Upcoming),

		DueDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		CalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		CalHeader: lipgloss.NewStyle().
			Width(calCellWidth).
			Padding(0, 1).
			Foreground(Colors.Muted),

		CalCell: calCell.
			Foreground(Colors.TitleNormal),

		CalOutside: calCell.
			Foreground(Colors.Muted),

		CalToday: calCell.
			Foreground(Colors.TitleSelected).
			Bold(true),

		CalTask: lipgloss.NewStyle().
			Foreground(Colors.Upcoming),

		CalDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		InputLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(13),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(12),

		DetailValue: lipgloss.NewStyle(),

		DetailDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}

// DueStyle returns the style for a task's due date relative to today.
func (s Styles) DueStyle(task domain.Task, today time.Time) lipgloss.Style {
	switch {
	case task.Completed:
		return s.DueDone
	case task.IsOverdue(today):
		return s.DueOverdue
	case task.IsDueOn(today):
		return s.DueToday
	default:
		return s.DueUpcoming
	}
}

// CheckIcon returns the completion marker for a task.
func CheckIcon(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}
