package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/usecase"
	"github.com/runoshun/recur/internal/usecase/shared"
)

// shortIDLen is the number of ID characters printed in listings.
const shortIDLen = 8

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		From          string
		HideCompleted bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by due date",
		Long: `Display tasks ordered by due date.

Tasks exist only for the session, so list is mostly useful together
with --from to check a draft file before starting the TUI.

Output format is tab-separated with columns:
  ID, DUE, REPEAT, STREAK, DONE, TITLE

Examples:
  recur list --from tasks.yaml
  recur list --from tasks.yaml --hide-completed`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.From != "" {
				if err := seedFromFile(cmd, c, opts.From); err != nil {
					return err
				}
			}

			hide := opts.HideCompleted
			if !cmd.Flags().Changed("hide-completed") {
				hide = c.AppConfig.Display.HideCompleted
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{HideCompleted: hide})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks, c.AppConfig)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d pending, %d overdue, %d total\n", out.Pending, out.Overdue, out.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Seed the session from a YAML draft file")
	cmd.Flags().BoolVar(&opts.HideCompleted, "hide-completed", false, "Hide completed occurrences")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []domain.Task, cfg *domain.Config) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tDUE\tREPEAT\tSTREAK\tDONE\tTITLE")
	for _, t := range tasks {
		repeat := t.RepeatFrequency.Display()
		if t.RepeatFrequency == domain.RepeatCustom {
			repeat += " (" + shared.FormatCustomDays(t.CustomDays) + ")"
		}
		streak := "-"
		if t.RepeatFrequency.TracksStreak() {
			streak = strconv.Itoa(t.CurrentStreak)
		}
		done := ""
		if t.Completed {
			done = "x"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID), cfg.FormatDate(t.DueDate), repeat, streak, done, t.Title)
	}
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
