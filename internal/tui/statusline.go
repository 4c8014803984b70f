package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusLineInfo contains information for rendering the status line.
// Fields are ordered to minimize memory padding.
type StatusLineInfo struct {
	Pagination string // Optional pagination info (e.g., "1/3")
	KeyHints   []KeyHint
	Mode       Mode
}

// KeyHint represents a key and its description.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusLine renders a unified status line at the bottom of the screen.
// Fields are ordered to minimize memory padding.
type StatusLine struct {
	styles *Styles
	width  int
}

// NewStatusLine creates a new StatusLine with the given width and styles.
func NewStatusLine(width int, styles *Styles) *StatusLine {
	return &StatusLine{
		width:  width,
		styles: styles,
	}
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Render renders the status line with the given info.
func (s *StatusLine) Render(info StatusLineInfo) string {
	keyStyle := s.styles.FooterKey
	mutedStyle := lipgloss.NewStyle().Foreground(Colors.Muted)

	hints := make([]string, 0, len(info.KeyHints))
	for _, h := range info.KeyHints {
		hints = append(hints, keyStyle.Render(h.Key)+" "+h.Desc)
	}
	content := strings.Join(hints, "  ")

	modeIndicator := mutedStyle.Render(info.Mode.String())

	contentWidth := s.width - 2 // Account for padding

	rightContent := modeIndicator
	if info.Pagination != "" {
		rightContent = info.Pagination + "  " + modeIndicator
	}
	rightLen := lipgloss.Width(rightContent)
	contentLen := lipgloss.Width(content)

	// Truncate content if needed
	maxContentWidth := contentWidth - rightLen - 2
	if contentLen > maxContentWidth {
		if maxContentWidth <= 3 {
			content = "..."
		} else {
			truncateStyle := lipgloss.NewStyle().MaxWidth(maxContentWidth - 3)
			content = truncateStyle.Render(content) + "..."
		}
		contentLen = lipgloss.Width(content)
	}

	spacing := contentWidth - contentLen - rightLen
	if spacing < 1 {
		spacing = 1
	}

	fullContent := content + strings.Repeat(" ", spacing) + rightContent
	return s.styles.Footer.Width(s.width).Render(fullContent)
}

// GetStatusInfo returns status line info for the TUI model.
func (m *Model) GetStatusInfo() StatusLineInfo {
	info := StatusLineInfo{Mode: m.mode}

	switch m.mode {
	case ModeNormal:
		if m.taskList.Paginator.TotalPages > 1 {
			info.Pagination = m.taskList.Paginator.View()
		}
		info.KeyHints = []KeyHint{
			{Key: "j/k", Desc: "nav"},
			{Key: "space", Desc: "done"},
			{Key: "n", Desc: "new"},
			{Key: "a", Desc: "quick add"},
			{Key: "c", Desc: "calendar"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	case ModeCalendar:
		info.KeyHints = []KeyHint{
			{Key: "←/→", Desc: "month"},
			{Key: "t", Desc: "today"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case ModeConfirm, ModeForm, ModeQuickAdd, ModeHelp, ModeDetail:
		// Hints are shown in the dialogs/views themselves
		info.KeyHints = nil
	}

	return info
}
