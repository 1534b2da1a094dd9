package auth

import (
	"fmt"

	"nathanbeddoewebdev/porkbun-ddns/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand(store auth.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.DeleteCredentials(store); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed Porkbun API keys")
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
