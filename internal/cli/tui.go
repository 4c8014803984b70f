package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/recur/internal/app"
	"github.com/runoshun/recur/internal/infra/scheduler"
	"github.com/runoshun/recur/internal/tui"
)

// launchTUI runs the interactive TUI until the user quits.
// A midnight job tells the program that "today" has changed.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())

	sched := c.NewScheduler()
	if err := scheduleRollover(c, sched, func() {
		p.Send(tui.MsgDayChanged{})
	}); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	_, err := p.Run()
	return err
}

// scheduleRollover registers onDayChange at every midnight and logs the first run.
func scheduleRollover(c *app.Container, sched *scheduler.Scheduler, onDayChange func()) error {
	id, err := sched.OnDayChange(onDayChange)
	if err != nil {
		return fmt.Errorf("schedule day change: %w", err)
	}
	if next, ok := sched.NextRun(id, c.Clock.Now()); ok && c.Logger != nil {
		c.Logger.Debug("", "tui", "next day rollover at "+next.Format(time.RFC3339))
	}
	return nil
}
