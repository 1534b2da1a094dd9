package config

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
	"nathanbeddoewebdev/porkbun-ddns/internal/services/auth"
)

// ErrMissingCredentials is returned when no source supplies both keys.
var ErrMissingCredentials = errors.New("missing API credentials: set apikey and secretapikey in config.toml, export PORKBUN_APIKEY and PORKBUN_SECRETAPIKEY, or run 'porkbun-ddns auth login'")

// ResolveCredentials picks each key from the first source that has it:
// the environment, then config.toml, then the keychain. The keychain is only
// consulted when one of the keys is still missing, and store may be nil.
func ResolveCredentials(cfg *Config, env *Env, store auth.Store) (domain.Credentials, error) {
	var creds domain.Credentials
	if env != nil {
		creds = domain.Credentials{APIKey: env.APIKey, SecretAPIKey: env.SecretAPIKey}
	}
	if cfg != nil {
		creds.APIKey = firstNonEmpty(creds.APIKey, cfg.APIKey)
		creds.SecretAPIKey = firstNonEmpty(creds.SecretAPIKey, cfg.SecretAPIKey)
	}
	if creds.Complete() {
		return creds, nil
	}

	if store != nil {
		stored, err := auth.LoadCredentials(store)
		if err != nil {
			return domain.Credentials{}, fmt.Errorf("%w (keychain: %v)", ErrMissingCredentials, err)
		}
		creds.APIKey = firstNonEmpty(creds.APIKey, stored.APIKey)
		creds.SecretAPIKey = firstNonEmpty(creds.SecretAPIKey, stored.SecretAPIKey)
	}
	if !creds.Complete() {
		return domain.Credentials{}, ErrMissingCredentials
	}
	return creds, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
