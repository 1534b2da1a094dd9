package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/porkbun-ddns/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand(store auth.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which API keys are stored",
		Long: `Show which Porkbun API keys are stored in the keychain.

Example:
  porkbun-ddns auth status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range auth.CredentialKeys {
				_, err := store.GetToken(k.Key)
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: stored\n", k.Prompt)
				case errors.Is(err, auth.ErrTokenNotFound):
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not stored\n", k.Prompt)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", k.Prompt, err)
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
