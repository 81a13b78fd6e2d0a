package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// skipSetup replaces the root's setup for commands that touch no files.
func skipSetup(*cobra.Command, []string) error { return nil }

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print the habits version",
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipSetup,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "habits %s\n", version)
		},
	}
}
