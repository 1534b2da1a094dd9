package dns

import (
	"fmt"

	"nathanbeddoewebdev/porkbun-ddns/internal/services/auth"

	"github.com/spf13/cobra"
)

// PingCommand returns the "dns ping" subcommand.
func PingCommand(store auth.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Show the public IPv4 address Porkbun sees",
		Long: `Call the Porkbun ping endpoint with the configured keys and print the
address that would be written to your A records.

Example:
  porkbun-ddns dns ping`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newDNSService(cmd, store)
			if err != nil {
				return err
			}

			ip, err := svc.ObserveIP(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ip)
			return nil
		},
	}

	return cmd
}
