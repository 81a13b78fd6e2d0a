package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/habits/internal/habit"
	"github.com/kingrea/habits/internal/ui"
)

func newLogCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "log <habit>",
		Short: "Mark a habit as done today",
		Long: `Mark a habit as done for today. Multi-word habit names may be
given unquoted, e.g. habits log Language learning.

Logging the same habit twice on one day changes nothing.`,
		Example: "  habits log Programming\n  habits log Reading books",
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runLog(cmd, args)
		},
	}
}

func (r *root) runLog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprint(out, ui.Usage("habits log <habit>"))
		return nil
	}

	a := r.app
	if err := a.tracker.LogCompletion(name); err != nil {
		var invalid *habit.InvalidHabitError
		if errors.As(err, &invalid) {
			a.logf("rejected unknown habit %q", name)
			fmt.Fprint(out, ui.UnknownHabit(invalid.Name, invalid.Known))
			return nil
		}
		return err
	}
	streak, err := a.tracker.CalculateStreak(name)
	if err != nil {
		return err
	}
	a.logf("logged %q, streak %d", name, streak)
	fmt.Fprint(out, ui.Logged(name, streak))
	return nil
}
