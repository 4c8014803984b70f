package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/usecase"
)

// defaultLogLines is the number of log lines shown without --lines.
const defaultLogLines = 50

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		lines int
		path  bool
	}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the activity log",
		Long: `Show the end of the activity log.

Completions, spawned occurrences, streak changes and imports are logged to
$XDG_STATE_HOME/recur/logs/recur.log. Use [log] level in the config to
control how much is written.

Examples:
  recur logs
  recur logs --lines 200
  recur logs --lines 0    # whole file
  recur logs --path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.path {
				path := c.LogPath()
				if path == "" {
					return fmt.Errorf("logging is disabled")
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), usecase.ShowLogsInput{
				Lines: opts.lines,
			})
			if err != nil {
				return err
			}

			if out.Content != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.lines, "lines", "n", defaultLogLines, "Number of lines to display (0 = all)")
	cmd.Flags().BoolVar(&opts.path, "path", false, "Print the log file path instead")

	return cmd
}
