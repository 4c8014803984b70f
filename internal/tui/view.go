package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/runoshun/recur/internal/domain"
)

// Calendar cell geometry: one day number line plus task lines.
const (
	calCellWidth  = 14
	calCellHeight = 4
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeDetail:
		content = m.viewDetail()
	case ModeCalendar:
		content = m.viewCalendar()
	case ModeNormal, ModeConfirm, ModeForm, ModeQuickAdd:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	b.WriteString(m.viewMessages())

	b.WriteString(m.viewTaskList())

	// Dialogs/overlays
	switch m.mode {
	case ModeNormal, ModeHelp, ModeDetail, ModeCalendar:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeForm:
		b.WriteString("\n")
		b.WriteString(m.viewForm())
	case ModeQuickAdd:
		b.WriteString("\n")
		b.WriteString(m.viewQuickAdd())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewMessages renders the error or notice line, if any.
func (m *Model) viewMessages() string {
	switch {
	case m.err != nil:
		return m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n"
	case m.notice != "":
		return m.styles.Notice.Render(m.notice) + "\n\n"
	}
	return ""
}

// viewHeader renders the header with the date and task counts.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks · " + m.today.Format("Mon Jan 2"))

	countText := fmt.Sprintf("%d pending, %d overdue, %d total", m.pending, m.overdue, m.total)
	if m.hideCompleted {
		countText += " (completed hidden)"
	}
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(countText)

	headerWidth := m.width - 6 // padding
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewTaskList renders the task list or the empty state.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.viewEmptyState()
	}
	return m.taskList.View()
}

// viewEmptyState renders the message shown when there are no tasks.
func (m *Model) viewEmptyState() string {
	msg := "No tasks yet. Press n to add one or a to quick add."
	if m.hideCompleted && m.total > 0 {
		msg = "Everything is done. Press H to show completed tasks."
	}
	return m.styles.TaskDesc.Render(msg) + "\n"
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	var action, target string
	var color lipgloss.Color

	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		action = "Delete"
		target = fmt.Sprintf("%q", m.taskTitle(m.confirmTaskID))
		color = Colors.Error
	}

	titleStyle := m.styles.DialogTitle.Foreground(color)
	title := titleStyle.Render(fmt.Sprintf("%s %s?", action, target))
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")

	yesBtn := m.styles.HelpKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		prompt,
		"",
		buttons,
	)

	return m.styles.Dialog.BorderForeground(color).Render(content)
}

// taskTitle returns the title of a loaded task, or its ID when not loaded.
func (m *Model) taskTitle(id string) string {
	for _, t := range m.tasks {
		if t.ID == id {
			return t.Title
		}
	}
	return id
}

// viewForm renders the add/edit task form.
func (m *Model) viewForm() string {
	heading := "◆ New Task"
	if m.editingID != "" {
		heading = "◆ Edit Task"
	}
	title := m.styles.DialogTitle.Render(heading)

	row := func(f FormField, value string) string {
		marker := "  "
		label := m.styles.InputLabel.Render(f.String())
		if f == m.formField {
			marker = m.styles.InputPrompt.Render("> ")
		}
		return marker + label + value
	}

	repeat := m.formRepeatFrequency()
	picker := m.styles.RepeatBadge.Render("‹ " + string(repeat) + " ›")

	rows := []string{
		title,
		"",
		row(FieldTitle, m.titleInput.View()),
		row(FieldRepeat, picker),
	}
	if repeat == domain.RepeatCustom {
		rows = append(rows, row(FieldDays, m.daysInput.View()))
	} else {
		rows = append(rows, row(FieldDays, m.styles.Footer.Render("(custom only)")))
	}
	rows = append(rows,
		row(FieldDue, m.dueInput.View()),
		row(FieldDesc, ""),
		m.descInput.View(),
		"",
		m.styles.FooterKey.Render("tab")+m.styles.Footer.Render(" next  ")+
			m.styles.FooterKey.Render("←/→")+m.styles.Footer.Render(" repeat  ")+
			m.styles.FooterKey.Render("ctrl+s")+m.styles.Footer.Render(" save  ")+
			m.styles.FooterKey.Render("esc")+m.styles.Footer.Render(" cancel"),
	)

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// viewQuickAdd renders the quick add prompt.
func (m *Model) viewQuickAdd() string {
	title := m.styles.DialogTitle.Render("◆ Quick Add")
	hint := m.styles.Footer.Render(`e.g. "Pay rent monthly", "Stretch daily"`)
	input := m.quickInput.View()
	keys := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" add  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, title, hint, "", input, "", keys)
	return m.styles.Dialog.Render(content)
}

// viewFooter renders the status line.
func (m *Model) viewFooter() string {
	return NewStatusLine(m.width-4, &m.styles).Render(m.GetStatusInfo())
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	content := m.help.FullHelpView(m.keys.FullHelp())

	return m.styles.Dialog.
		BorderForeground(Colors.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content, "", m.styles.Footer.Render("[?/esc] close")))
}

// viewDetail renders the task detail view.
func (m *Model) viewDetail() string {
	if m.detail == nil {
		return "No task selected"
	}

	footer := m.styles.Footer.Render("[space] toggle  [esc] back")
	return m.styles.Dialog.
		Width(m.width - 4).
		BorderForeground(Colors.Muted).
		Render(m.detailViewport.View() + "\n\n" + footer)
}

// detailContent renders the loaded task for the detail viewport.
func (m *Model) detailContent(width int) string {
	if m.detail == nil {
		return "No task selected"
	}
	task := m.detail.Task

	labelStyle := m.styles.DetailLabel
	valueStyle := m.styles.DetailValue
	prop := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.DetailTitle.Render(wordwrap.String(task.Title, width)))
	b.WriteString("\n")

	status := "pending"
	if task.Completed {
		status = "completed"
	} else if task.IsOverdue(m.today) {
		status = "overdue"
	}
	b.WriteString(labelStyle.Render("Status"))
	b.WriteString(m.styles.DueStyle(task, m.today).Render(status))
	b.WriteString("\n")

	b.WriteString(prop("Due", m.config.FormatDate(task.DueDate)))
	repeat := string(task.RepeatFrequency)
	if badge := repeatLabel(task); badge != "" {
		repeat = strings.Trim(badge, "[]")
	}
	b.WriteString(prop("Repeat", repeat))
	if task.RepeatFrequency.IsRepeating() {
		b.WriteString(prop("Streak", fmt.Sprint(task.CurrentStreak)))
	}
	if task.LastCompletedDate != nil {
		b.WriteString(prop("Last done", task.LastCompletedDate.Format("2006-01-02 15:04")))
	}
	if next := m.detail.NextDue; next != nil && !task.Completed {
		b.WriteString(prop("Next", m.config.FormatDate(next.DueDate)))
	}
	b.WriteString(prop("Created", task.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString(prop("ID", task.ID))

	if task.Description != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(m.styles.DetailDesc.Render(wordwrap.String(task.Description, width)))
	}

	return b.String()
}

// viewCalendar renders the month grid with tasks in each day cell.
func (m *Model) viewCalendar() string {
	var b strings.Builder

	if m.calendar == nil {
		return "Loading calendar..."
	}
	cal := m.calendar

	b.WriteString(m.styles.CalTitle.Render(cal.Month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(m.viewMessages())

	headers := make([]string, 0, len(cal.Headers))
	for _, h := range cal.Headers {
		headers = append(headers, m.styles.CalHeader.Render(h))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")

	for _, week := range cal.Weeks() {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			cells = append(cells, m.renderCalendarCell(day))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

// renderCalendarCell renders one day: its number followed by as many task
// titles as fit, then a "+N" overflow marker.
func (m *Model) renderCalendarCell(day domain.CalendarDay) string {
	style := m.styles.CalCell
	switch {
	case day.IsToday:
		style = m.styles.CalToday
	case !day.InMonth:
		style = m.styles.CalOutside
	}

	inner := calCellWidth - 2 // padding
	lines := []string{fmt.Sprint(day.Date.Day())}
	if day.IsToday {
		lines[0] += " ●"
	}

	slots := calCellHeight - 1
	for i, t := range day.Tasks {
		if i == slots-1 && len(day.Tasks) > slots {
			lines = append(lines, m.styles.Footer.Render(fmt.Sprintf("+%d more", len(day.Tasks)-i)))
			break
		}
		taskStyle := m.styles.CalTask
		if t.Completed {
			taskStyle = m.styles.CalDone
		}
		label := CheckIcon(t.Completed) + " " + escapeNewlines(t.Title)
		lines = append(lines, taskStyle.Render(truncate.StringWithTail(label, uint(inner), "…")))
	}

	return style.Render(strings.Join(lines, "\n"))
}
