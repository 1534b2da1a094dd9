package auth

import (
	"nathanbeddoewebdev/porkbun-ddns/internal/services/auth"

	"github.com/spf13/cobra"
)

func NewCommand(store auth.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Porkbun API keys in the OS keychain",
		Long: `Manage Porkbun API keys in the OS keychain.

Keys stored here are used when neither the environment nor config.toml
provides them.`,
	}

	cmd.AddCommand(LoginCommand(store))
	cmd.AddCommand(StatusCommand(store))
	cmd.AddCommand(LogoutCommand(store))

	return cmd
}
