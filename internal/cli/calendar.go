package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/usecase"
)

// calCellWidth is the printed width of one day column.
const calCellWidth = 5

// Day markers after the day number.
const (
	markPending = "*"
	markDone    = "+"
)

var (
	calTitleStyle   = lipgloss.NewStyle().Bold(true).Width(calCellWidth * 7).Align(lipgloss.Center)
	calHeaderStyle  = lipgloss.NewStyle().Faint(true).Width(calCellWidth).Align(lipgloss.Right)
	calCellStyle    = lipgloss.NewStyle().Width(calCellWidth).Align(lipgloss.Right)
	calOutsideStyle = calCellStyle.Faint(true)
	calTodayStyle   = calCellStyle.Reverse(true)
)

// newCalendarCommand creates the calendar command.
func newCalendarCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Month string
		From  string
	}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month with task markers",
		Long: `Print a month grid with markers on days that have tasks due.

  *  at least one pending task
  +  every task on that day is completed

The first column follows [calendar] week_start in the config.
Tasks due in the month are listed below the grid.

Examples:
  recur calendar --from tasks.yaml
  recur calendar --month 2026-11 --from tasks.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var month time.Time
			if opts.Month != "" {
				m, err := domain.ParseMonth(opts.Month, c.Clock.Now().Location())
				if err != nil {
					return err
				}
				month = m
			}

			if opts.From != "" {
				if err := seedFromFile(cmd, c, opts.From); err != nil {
					return err
				}
			}

			out, err := c.ShowCalendarUseCase().Execute(cmd.Context(), usecase.ShowCalendarInput{Month: month})
			if err != nil {
				return err
			}

			printCalendar(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Month, "month", "", "Month to show as YYYY-MM (default: current month)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Seed the session from a YAML draft file")

	return cmd
}

// printCalendar renders the grid followed by an agenda of the month's tasks.
func printCalendar(w io.Writer, out *usecase.ShowCalendarOutput) {
	lines := []string{calTitleStyle.Render(out.Month.Format("January 2006"))}

	headers := make([]string, 0, len(out.Headers))
	for _, h := range out.Headers {
		headers = append(headers, calHeaderStyle.Render(h))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, headers...))

	for _, week := range out.Weeks() {
		cells := make([]string, 0, len(week))
		for _, d := range week {
			cells = append(cells, renderCalendarCell(d))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	_, _ = fmt.Fprintln(w, strings.Join(lines, "\n"))

	var agenda []string
	for _, d := range out.Days {
		if !d.InMonth {
			continue
		}
		for _, t := range d.Tasks {
			check := "[ ]"
			if t.Completed {
				check = "[x]"
			}
			agenda = append(agenda, fmt.Sprintf("%s  %s %s (%s)",
				d.Date.Format("Jan 02"), check, t.Title, strings.ToLower(t.RepeatFrequency.Display())))
		}
	}
	if len(agenda) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, strings.Join(agenda, "\n"))
	}
}

func renderCalendarCell(d domain.CalendarDay) string {
	mark := " "
	switch {
	case d.PendingCount() > 0:
		mark = markPending
	case len(d.Tasks) > 0:
		mark = markDone
	}
	text := fmt.Sprintf("%d%s", d.Date.Day(), mark)

	switch {
	case d.IsToday:
		return calTodayStyle.Render(text)
	case !d.InMonth:
		return calOutsideStyle.Render(text)
	default:
		return calCellStyle.Render(text)
	}
}
