package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect habits configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show effective configuration",
			Args:  cobra.NoArgs,
			RunE:  r.runConfigShow,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show file locations",
			Args:  cobra.NoArgs,
			Run:   r.runConfigPath,
		},
	)
	return cmd
}

func (r *root) runConfigShow(cmd *cobra.Command, _ []string) error {
	settings := r.app.cfg.Settings
	settings.DataFile = r.app.cfg.DataPath()
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# Effective configuration (%s)\n", r.app.cfg.ConfigFile)
	fmt.Fprint(out, string(data))
	return nil
}

func (r *root) runConfigPath(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Home:    %s\n", r.app.cfg.HomeDir)
	fmt.Fprintf(out, "Config:  %s\n", r.app.cfg.ConfigFile)
	fmt.Fprintf(out, "Data:    %s\n", r.app.cfg.DataPath())
	fmt.Fprintf(out, "Journal: %s\n", r.app.cfg.JournalPath())
	fmt.Fprintf(out, "Logs:    %s\n", r.app.logger.Path())
}
