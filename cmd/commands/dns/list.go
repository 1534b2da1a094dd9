package dns

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
	"nathanbeddoewebdev/porkbun-ddns/internal/services/auth"

	"github.com/spf13/cobra"
)

// ListCommand returns the "dns list" subcommand.
func ListCommand(store auth.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <domain>",
		Short: "List DNS records for a domain",
		Long: `List all DNS records for the given domain.

Examples:
  porkbun-ddns dns list example.com
  porkbun-ddns dns list example.com --type A`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, store, args[0])
		},
	}

	cmd.Flags().String("type", "", "Filter records by type (A, AAAA, CNAME, MX, TXT, etc.)")

	return cmd
}

func runList(cmd *cobra.Command, store auth.Store, domainName string) error {
	typeFilter, _ := cmd.Flags().GetString("type")

	svc, err := newDNSService(cmd, store)
	if err != nil {
		return err
	}

	recordType := domain.RecordType(strings.ToUpper(strings.TrimSpace(typeFilter)))
	records, err := svc.ListRecords(cmd.Context(), domainName, recordType)
	if err != nil {
		return fmt.Errorf("error listing records: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tCONTENT\tTTL\tPRIORITY")
	fmt.Fprintln(w, "--\t----\t----\t-------\t---\t--------")

	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Name,
			string(r.Type),
			r.Content,
			r.TTL,
			r.Priority,
		)
	}

	return w.Flush()
}
