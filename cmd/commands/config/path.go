package config

import (
	"fmt"

	"nathanbeddoewebdev/porkbun-ddns/internal/config"

	"github.com/spf13/cobra"
)

// PathCommand returns the "config path" command.
func PathCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "path",
		Short:        "Print the path of config.toml",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Path(dataDir(cmd)))
			return nil
		},
	}

	return cmd
}
