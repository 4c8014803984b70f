package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/domain"
)

// newParseCommand creates the parse command that previews quick-add text.
func newParseCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Preview how quick-add text is read",
		Long: `Show the task that quick-add would create from free text.

The frequency is taken from phrases such as "every day", "weekly" or
"monthly"; the title is the text before the first frequency keyword.
Nothing is added.

Examples:
  recur parse "Water plants every week"
  recur parse Journal daily`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.ParseQuickAdd(strings.Join(args, " "), c.Clock.Now())

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Title:  %s\n", draft.Title)
			_, _ = fmt.Fprintf(w, "Repeat: %s\n", draft.RepeatFrequency.Display())
			_, _ = fmt.Fprintf(w, "Due:    %s\n", c.AppConfig.FormatDate(draft.DueDate))
			return nil
		},
	}
	return cmd
}
