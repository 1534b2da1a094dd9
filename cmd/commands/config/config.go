package config

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect porkbun-ddns configuration",
		Long: "Inspect the configuration read from <data>/config.toml.\n\n" +
			"The file is edited by hand; these commands only read it.",
	}

	cmd.AddCommand(PathCommand())
	cmd.AddCommand(ShowCommand())

	return cmd
}

// dataDir returns the --data flag inherited from the root command, or the
// default folder when run standalone.
func dataDir(cmd *cobra.Command) string {
	if f := cmd.Flag("data"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return ""
}
