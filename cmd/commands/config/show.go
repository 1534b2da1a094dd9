package config

import (
	"fmt"

	"nathanbeddoewebdev/porkbun-ddns/internal/config"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "config show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show configured domains and the records each run updates",
		Long: "Validate config.toml and list, per domain, the record names an update\n" +
			"pass will reconcile, in the order they are processed. Credentials are\n" +
			"never printed.\n\n" +
			"Examples:\n" +
			"  porkbun-ddns config show\n" +
			"  porkbun-ddns --data /etc/porkbun-ddns config show",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(dataDir(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "apikey: %s\n", setOrNot(cfg.APIKey))
	fmt.Fprintf(out, "secretapikey: %s\n", setOrNot(cfg.SecretAPIKey))

	if len(cfg.Domains) == 0 {
		fmt.Fprintln(out, "No domains configured.")
		return nil
	}

	for _, spec := range cfg.Specs() {
		targets := spec.Targets()
		fmt.Fprintf(out, "\n%s (%d records)\n", spec.Name, len(targets))
		for _, target := range targets {
			fmt.Fprintf(out, "  %s\n", target)
		}
	}
	return nil
}

func setOrNot(value string) string {
	if value == "" {
		return "(not set)"
	}
	return "set"
}
