package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kingrea/habits/internal/config"
	"github.com/kingrea/habits/internal/habit"
	"github.com/kingrea/habits/internal/ui"
)

func init() {
	cobra.EnableCaseInsensitive = true
}

// root wires the command tree to a single app instance built before any
// subcommand runs.
type root struct {
	cmd   *cobra.Command
	flags globalFlags
	app   *app
}

// newRoot builds the habits command tree.
func newRoot(version string) *root {
	r := &root{}
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "Track daily habits and build streaks",
		Long: `habits records daily completions of a fixed set of habits,
keeps consecutive-day streaks, and summarizes the last seven days.

Running habits with no command shows today's status.`,
		Args:              cobra.NoArgs,
		RunE:              r.runStatus,
		PersistentPreRunE: r.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version,
	}

	cmd.PersistentFlags().StringVar(&r.flags.home, "home", "", "habits directory (default ~/.habits)")
	cmd.PersistentFlags().StringVar(&r.flags.config, "config", "", "config file (default <home>/config.yaml)")
	cmd.PersistentFlags().StringVar(&r.flags.data, "data", "", "completion log file, overrides data_file")
	cmd.PersistentFlags().BoolVar(&r.flags.noColor, "no-color", false, "disable coloured output")
	cmd.PersistentFlags().BoolVar(&r.flags.verbose, "verbose", false, "mirror diagnostics to stderr")

	cmd.AddCommand(
		newLogCmd(r),
		newStatusCmd(r),
		newSummaryCmd(r),
		newCalendarCmd(r),
		newHistoryCmd(r),
		newPickCmd(r),
		newConfigCmd(r),
		newVersionCmd(version),
	)

	cmd.InitDefaultHelpCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "help" {
			sub.PersistentPreRunE = skipSetup
		}
	}

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		defaultHelp(c, args)
		if c == cmd {
			fmt.Fprintf(c.OutOrStdout(), "\nAvailable habits:\n%s", ui.HabitList(r.helpHabits()))
		}
	})
	r.cmd = cmd
	return r
}

// Execute runs the CLI and reports failures on stderr.
func Execute(version string) error {
	return newRoot(version).run(os.Args[1:], os.Stdout, os.Stderr)
}

func (r *root) run(args []string, stdout, stderr io.Writer) error {
	r.cmd.SetArgs(args)
	r.cmd.SetOut(stdout)
	r.cmd.SetErr(stderr)

	err := r.cmd.Execute()
	if err != nil {
		r.app.logf("error: %v", err)
		fmt.Fprint(stderr, ui.Error(err))
		fmt.Fprintln(stderr, "Run 'habits help' for usage.")
	}
	if closeErr := r.app.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func (r *root) setup(cmd *cobra.Command, args []string) error {
	a, err := newApp(&r.flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	r.app = a
	a.logf("run %s %v", cmd.CommandPath(), args)
	return nil
}

// helpHabits lists configured habits even when setup has not run, as with
// --help.
func (r *root) helpHabits() []string {
	if r.app != nil {
		return r.app.registry.Names()
	}
	home := r.flags.home
	if home == "" {
		var err error
		if home, err = config.DefaultHomeDir(); err != nil {
			return habit.DefaultNames()
		}
	}
	cfg, err := config.Load(home, r.flags.config)
	if err != nil {
		return habit.DefaultNames()
	}
	return habit.NewRegistry(cfg.Settings.Habits).Names()
}
