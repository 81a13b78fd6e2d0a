package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/habits/internal/ui"
)

func newStatusCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's status and current streaks",
		Args:  cobra.NoArgs,
		RunE:  r.runStatus,
	}
}

func (r *root) runStatus(cmd *cobra.Command, _ []string) error {
	rows, err := r.app.tracker.Status()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.Status(r.app.tracker.Today(), rows))
	return nil
}

func newSummaryCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		Aliases: []string{"week"},
		Short:   "Show completions over the last seven days",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := r.app.reporter.WeeklySummary()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.Summary(summary))
			return nil
		},
	}
}

func newCalendarCmd(r *root) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "calendar <habit>",
		Short: "Show a day-by-day completion strip for one habit",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			name := strings.Join(args, " ")
			if strings.TrimSpace(name) == "" {
				fmt.Fprint(out, ui.Usage("habits calendar <habit> [--days N]"))
				return nil
			}
			a := r.app
			if !a.registry.Contains(name) {
				fmt.Fprint(out, ui.UnknownHabit(name, a.registry.Names()))
				return nil
			}
			n := days
			if !cmd.Flags().Changed("days") {
				n = a.cfg.Settings.CalendarDays
			}
			if n < 1 {
				return errors.New("--days must be at least 1")
			}
			cal, err := a.reporter.CompletionCalendar(name, n)
			if err != nil {
				return err
			}
			fmt.Fprint(out, ui.Calendar(name, cal))
			return nil
		},
	}
	cmd.Flags().IntVarP(&days, "days", "d", 0, "number of days to show (default from config)")
	return cmd
}

func newHistoryCmd(r *root) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent activity from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 1 {
				return errors.New("--limit must be at least 1")
			}
			lines, total := r.app.journal.Tail(limit)
			fmt.Fprint(cmd.OutOrStdout(), ui.Journal(lines, total))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of entries to show")
	return cmd
}
