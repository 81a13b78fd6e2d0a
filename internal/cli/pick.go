package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingrea/habits/internal/tui"
	"github.com/kingrea/habits/internal/ui"
)

func newPickCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a habit to log from an interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			picker, err := tui.NewPicker(r.app.tracker)
			if err != nil {
				return err
			}
			p := tea.NewProgram(
				picker,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			// Run blocks until the picker quits
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("cli: run picker: %w", err)
			}
			return r.reportPick(cmd, picker.Outcome())
		},
	}
}

func (r *root) reportPick(cmd *cobra.Command, outcome tui.Outcome) error {
	if outcome.Err != nil {
		return outcome.Err
	}
	if !outcome.Logged {
		r.app.logf("picker closed without logging")
		return nil
	}
	r.app.logf("picked %q, streak %d", outcome.Habit, outcome.Streak)
	fmt.Fprint(cmd.OutOrStdout(), ui.Logged(outcome.Habit, outcome.Streak))
	return nil
}
