package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
	"nathanbeddoewebdev/porkbun-ddns/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand(store auth.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the Porkbun API keys",
		Long: `Store the Porkbun API key and secret API key using the local keychain.
Keys not given by flag are prompted for.

Example:
  porkbun-ddns auth login
  porkbun-ddns auth login --apikey pk1_... --secretapikey sk1_...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey, _ := cmd.Flags().GetString("apikey")
			secretKey, _ := cmd.Flags().GetString("secretapikey")
			values := map[string]string{
				auth.APIKeyKey:       strings.TrimSpace(apiKey),
				auth.SecretAPIKeyKey: strings.TrimSpace(secretKey),
			}

			in := bufio.NewReader(cmd.InOrStdin())
			for _, k := range auth.CredentialKeys {
				if values[k.Key] != "" {
					continue
				}
				value, err := prompt(cmd, in, k.Prompt)
				if err != nil {
					return err
				}
				if value == "" {
					return fmt.Errorf("%s cannot be empty", strings.ToLower(k.Prompt))
				}
				values[k.Key] = value
			}

			creds := domain.Credentials{
				APIKey:       values[auth.APIKeyKey],
				SecretAPIKey: values[auth.SecretAPIKeyKey],
			}
			if err := auth.SaveCredentials(store, creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Saved Porkbun API keys")
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("apikey", "", "API key (optional, overrides prompt)")
	cmd.Flags().String("secretapikey", "", "Secret API key (optional, overrides prompt)")

	return cmd
}

// prompt reads one value, hiding input when stdin is a terminal.
func prompt(cmd *cobra.Command, in *bufio.Reader, label string) (string, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "Enter %s: ", label)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytes, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(bytes)), nil
	}

	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
