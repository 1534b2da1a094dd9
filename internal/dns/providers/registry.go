package providers

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
	"nathanbeddoewebdev/porkbun-ddns/internal/util"
)

// DefaultName is the provider used by every command.
const DefaultName = "porkbun"

// Settings carries the runtime values a provider is built from.
type Settings struct {
	Credentials domain.Credentials

	// BaseURL overrides the provider's API root when non-empty.
	BaseURL string

	// Timeout bounds each request when positive.
	Timeout time.Duration

	Logger *slog.Logger
}

// Factory is a constructor function that builds a DNS Provider from settings.
type Factory func(settings Settings) (domain.Provider, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register adds a provider factory to the DNS registry.
// It panics on empty name, nil factory, or duplicate registration
// (programmer errors detected at startup).
func Register(name string, factory Factory) {
	normalizedName := util.NormalizeKey(name)
	if normalizedName == "" {
		panic("dns/providers: empty provider name")
	}
	if factory == nil {
		panic("dns/providers: nil factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[normalizedName]; exists {
		panic(fmt.Sprintf("dns/providers: provider %q already registered", name))
	}

	registry[normalizedName] = factory
}

// Get constructs and returns the DNS Provider for the given name.
func Get(name string, settings Settings) (domain.Provider, error) {
	normalizedName := util.NormalizeKey(name)
	mu.RLock()
	factory, ok := registry[normalizedName]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("dns/providers: unknown provider %q", name)
	}

	return factory(settings)
}

// List returns the names of all registered DNS providers.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Reset clears the DNS provider registry. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
}

// RegisterPorkbun registers the Porkbun provider factory with the DNS registry.
// Calling it more than once is a no-op.
func RegisterPorkbun() {
	mu.RLock()
	_, exists := registry[DefaultName]
	mu.RUnlock()
	if exists {
		return
	}

	Register(DefaultName, func(s Settings) (domain.Provider, error) {
		if !s.Credentials.Complete() {
			return nil, fmt.Errorf("porkbun: both the API key and the secret API key are required")
		}
		return NewPorkbunProvider(s.Credentials,
			WithBaseURL(s.BaseURL),
			WithTimeout(s.Timeout),
			WithLogger(s.Logger),
		), nil
	})
}
