// Package cli provides the command-line interface for recur.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/usecase"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// configFlag is the persistent flag naming an extra config file.
const configFlag = "config"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for recur.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var from string

	root := &cobra.Command{
		Use:   "recur",
		Short: "Personal recurring task tracker",
		Long: `recur tracks one-off and recurring tasks in an interactive terminal UI.

Completing a daily, weekly, monthly or custom task schedules its next
occurrence and keeps a completion streak. Tasks live for the session only;
use --from to seed the session from a YAML file.

Examples:
  # Start with an empty session
  recur

  # Seed the session from a file
  recur --from tasks.yaml`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from != "" {
				if err := seedFromFile(cmd, c, from); err != nil {
					return err
				}
			}
			return launchTUIFunc(c)
		},
	}

	root.Flags().StringVar(&from, "from", "", "Seed the session from a YAML draft file")
	root.PersistentFlags().String(configFlag, "", "Extra config file layered over the global config")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	parseCmd := newParseCommand(c)
	parseCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	calendarCmd := newCalendarCommand(c)
	calendarCmd.GroupID = groupTask

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupSetup

	root.AddCommand(
		parseCmd,
		listCmd,
		calendarCmd,
		configCmd,
		logsCmd,
	)

	return root
}

// ConfigPathFromArgs returns the value of --config in args, or "".
// The container is built before cobra parses flags, so main scans for it directly.
func ConfigPathFromArgs(args []string) string {
	prefix := "--" + configFlag
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, prefix+"="); ok {
			return v
		}
		if arg == prefix && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// seedFromFile imports the drafts in path into the session store.
func seedFromFile(cmd *cobra.Command, c *app.Container, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read draft file: %w", err)
	}

	if _, err := c.ImportDraftsUseCase().Execute(cmd.Context(), usecase.ImportDraftsInput{Content: content}); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
