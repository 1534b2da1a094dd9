package cmd

import (
	"log/slog"
	"os"

	"nathanbeddoewebdev/porkbun-ddns/cmd/commands/auth"
	cfgcmd "nathanbeddoewebdev/porkbun-ddns/cmd/commands/config"
	"nathanbeddoewebdev/porkbun-ddns/cmd/commands/dns"
	"nathanbeddoewebdev/porkbun-ddns/internal/app"
	"nathanbeddoewebdev/porkbun-ddns/internal/config"
	"nathanbeddoewebdev/porkbun-ddns/internal/dns/providers"
	"nathanbeddoewebdev/porkbun-ddns/internal/dns/services"
	authstore "nathanbeddoewebdev/porkbun-ddns/internal/services/auth"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command. Run without a subcommand it
// performs one update pass.
func rootCmd(store authstore.Store) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "porkbun-ddns",
		Short: "Keep Porkbun A records pointed at this machine's public IPv4 address",
		Long: `porkbun-ddns updates the A records of your Porkbun domains to the
public IPv4 address of the machine it runs on. Each invocation performs a
single pass; run it from a cron job or systemd timer.

Domains and credentials are read from <data>/config.toml. On first run a
template is written there and the command exits so you can fill it in.

Quick start:
  porkbun-ddns                     # Write data/config.toml, then edit it
  porkbun-ddns --verbose           # Update every configured record
  porkbun-ddns config show         # Check which records will be updated
  porkbun-ddns auth login          # Keep API keys in the OS keychain instead
  porkbun-ddns dns ping            # Show the public IP Porkbun sees`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, store)
		},
	}

	cmd.PersistentFlags().String("data", config.DefaultFolder, "Directory containing config.toml")
	cmd.PersistentFlags().Bool("debug", false, "Log API requests to stderr")
	cmd.Flags().Bool("verbose", false, "Print the outcome of every record")

	cmd.AddCommand(auth.NewCommand(store))
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(dns.NewCommand(store))

	return cmd
}

func runUpdate(cmd *cobra.Command, store authstore.Store) error {
	a, err := app.Load(app.OptionsFromCommand(cmd, store))
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	svc := services.New(a.Provider,
		services.WithOutput(cmd.OutOrStdout()),
		services.WithVerbose(verbose),
		services.WithLogger(a.Logger),
	)

	summary, err := svc.Run(cmd.Context(), a.Config.Specs())
	if err != nil {
		return err
	}

	changed, skipped, errored := summary.Totals()
	a.Logger.Debug("pass complete",
		slog.String("ip", summary.IP),
		slog.Int("domains", len(summary.Domains)),
		slog.Int("failed_domains", summary.FailedDomains()),
		slog.Int("changed", changed),
		slog.Int("skipped", skipped),
		slog.Int("errored", errored),
	)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	providers.RegisterPorkbun()

	var root = rootCmd(authstore.DefaultStore())
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
