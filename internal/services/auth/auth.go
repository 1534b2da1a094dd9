package auth

import (
	"errors"

	"nathanbeddoewebdev/porkbun-ddns/internal/util"
)

// ServiceName is the keychain service every credential is stored under.
const ServiceName = "porkbun-ddns"

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(key string, token string) error
	GetToken(key string) (string, error)
	DeleteToken(key string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeKey normalizes a credential key for consistent lookup.
func NormalizeKey(key string) string {
	return util.NormalizeKey(key)
}
