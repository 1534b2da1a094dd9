package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
)

// Keychain keys holding the two Porkbun credentials.
const (
	APIKeyKey       = "porkbun-apikey"
	SecretAPIKeyKey = "porkbun-secretapikey"
)

// CredentialKey describes a single credential field.
type CredentialKey struct {
	// Key is the keychain entry name.
	Key string

	// Prompt is the human-readable label shown when prompting the user.
	Prompt string
}

// CredentialKeys lists every credential that must be stored, in prompt order.
var CredentialKeys = []CredentialKey{
	{Key: APIKeyKey, Prompt: "API Key"},
	{Key: SecretAPIKeyKey, Prompt: "Secret API Key"},
}

// LoadCredentials reads both keys from the store. Keys that are not stored
// are left empty; any other store failure is returned.
func LoadCredentials(store Store) (domain.Credentials, error) {
	var creds domain.Credentials
	for _, target := range []struct {
		key string
		dst *string
	}{
		{APIKeyKey, &creds.APIKey},
		{SecretAPIKeyKey, &creds.SecretAPIKey},
	} {
		value, err := store.GetToken(target.key)
		if errors.Is(err, ErrTokenNotFound) {
			continue
		}
		if err != nil {
			return domain.Credentials{}, fmt.Errorf("auth: failed to read %s: %w", target.key, err)
		}
		*target.dst = value
	}
	return creds, nil
}

// SaveCredentials stores both keys.
func SaveCredentials(store Store, creds domain.Credentials) error {
	if !creds.Complete() {
		return errors.New("auth: both the API key and the secret API key are required")
	}
	if err := store.SetToken(APIKeyKey, creds.APIKey); err != nil {
		return fmt.Errorf("auth: failed to store %s: %w", APIKeyKey, err)
	}
	if err := store.SetToken(SecretAPIKeyKey, creds.SecretAPIKey); err != nil {
		return fmt.Errorf("auth: failed to store %s: %w", SecretAPIKeyKey, err)
	}
	return nil
}

// DeleteCredentials removes both keys. Keys that were never stored are ignored.
func DeleteCredentials(store Store) error {
	for _, k := range CredentialKeys {
		if err := store.DeleteToken(k.Key); err != nil && !errors.Is(err, ErrTokenNotFound) {
			return fmt.Errorf("auth: failed to delete %s: %w", k.Key, err)
		}
	}
	return nil
}
