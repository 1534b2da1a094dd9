package dns

import (
	"nathanbeddoewebdev/porkbun-ddns/internal/app"
	"nathanbeddoewebdev/porkbun-ddns/internal/dns/services"
	"nathanbeddoewebdev/porkbun-ddns/internal/services/auth"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "dns" Cobra command with all subcommands attached.
func NewCommand(store auth.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Inspect the registrar without changing anything",
		Long:  `Check connectivity and credentials, and list the records of a domain.`,
	}

	cmd.AddCommand(PingCommand(store))
	cmd.AddCommand(ListCommand(store))

	return cmd
}

func newDNSService(cmd *cobra.Command, store auth.Store) (*services.Service, error) {
	a, err := app.Load(app.OptionsFromCommand(cmd, store))
	if err != nil {
		return nil, err
	}
	return services.New(a.Provider, services.WithLogger(a.Logger)), nil
}
