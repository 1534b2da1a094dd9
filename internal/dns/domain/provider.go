package domain

import "context"

// Provider is the interface a registrar client must implement.
// It covers exactly the three remote operations a pass needs.
type Provider interface {
	// GetDisplayName returns the human-readable provider name (e.g. "Porkbun").
	GetDisplayName() string

	// Ping returns the caller's public address as observed by the registrar.
	Ping(ctx context.Context) (string, error)

	// ListRecords returns all DNS records held for the given apex domain.
	ListRecords(ctx context.Context, domain string) ([]Record, error)

	// EditRecord replaces the content and TTL of a record by its ID.
	EditRecord(ctx context.Context, domain string, id string, opts EditRecordOpts) error
}
