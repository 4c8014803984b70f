package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/recur/internal/domain"
)

type taskItem struct {
	task domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Title
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// repeatLabel returns the badge shown next to a task, or "" for one-off tasks.
func repeatLabel(task domain.Task) string {
	switch task.RepeatFrequency {
	case domain.RepeatOnce:
		return ""
	case domain.RepeatCustom:
		parts := make([]string, 0, len(task.CustomDays))
		for _, d := range task.CustomDays {
			parts = append(parts, fmt.Sprint(d))
		}
		return "[custom " + strings.Join(parts, ",") + "]"
	case domain.RepeatDaily, domain.RepeatWeekly, domain.RepeatMonthly:
		return "[" + string(task.RepeatFrequency) + "]"
	}
	return ""
}

// dueLabel describes the due date relative to today.
func dueLabel(task domain.Task, today time.Time) string {
	switch days := domain.DaysBetween(today, task.DueDate); {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days < 0:
		return fmt.Sprintf("%dd late", -days)
	default:
		return task.DueDate.Format("Jan 02")
	}
}

type taskDelegate struct {
	today  func() time.Time
	styles Styles
}

func newTaskDelegate(styles Styles, today func() time.Time) taskDelegate {
	return taskDelegate{styles: styles, today: today}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()
	today := d.today()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	dueStr := fmt.Sprintf("%-9s", dueLabel(task, today))
	badge := repeatLabel(task)
	streakStr := ""
	if task.CurrentStreak > 0 {
		streakStr = fmt.Sprintf(" x%d", task.CurrentStreak)
	}

	// indent(2) + indicator(1) + space(1) + icon(1) + space(2) + due(9) + space(2)
	prefixWidth := 18
	suffixWidth := runewidth.StringWidth(badge) + runewidth.StringWidth(streakStr)
	if badge != "" {
		suffixWidth++
	}
	listWidth := m.Width()
	maxTitleLen := listWidth - prefixWidth - suffixWidth - 2
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}

	title := escapeNewlines(task.Title)
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	titleStyle := d.styles.TaskTitle
	switch {
	case task.Completed:
		titleStyle = d.styles.TaskTitleDone
	case selected:
		titleStyle = d.styles.TaskTitleSelected
	}
	dueStyle := d.styles.DueStyle(task, today)
	indicatorStyle := d.styles.SelectionIndicator
	if selected {
		indicatorStyle = indicatorStyle.Bold(true)
		dueStyle = dueStyle.Bold(true)
	}

	line := "  " + indicatorStyle.Render(indicatorChar) + " " +
		dueStyle.Render(CheckIcon(task.Completed)) + "  " +
		dueStyle.Render(dueStr) + "  " +
		titleStyle.Render(title)
	if badge != "" {
		line += " " + d.styles.RepeatBadge.Render(badge)
	}
	if streakStr != "" {
		line += d.styles.Streak.Render(streakStr)
	}
	lineWidth := lipgloss.Width(line)
	if lineWidth < listWidth {
		line += fmt.Sprintf("%*s", listWidth-lineWidth, "")
	}
	_, _ = fmt.Fprintln(w, line)

	descLine := strings.Repeat(" ", prefixWidth)
	if task.Description != "" {
		desc := escapeNewlines(task.Description)
		maxDescLen := listWidth - prefixWidth - 2
		if maxDescLen < 10 {
			maxDescLen = 10
		}
		if runewidth.StringWidth(desc) > maxDescLen {
			desc = runewidth.Truncate(desc, maxDescLen-3, "...")
		}
		descLine += desc
	}
	descLineWidth := runewidth.StringWidth(descLine)
	if descLineWidth < listWidth {
		descLine += fmt.Sprintf("%*s", listWidth-descLineWidth, "")
	}
	_, _ = fmt.Fprint(w, d.styles.TaskDesc.Render(descLine))
}
