package domain

// DefaultTTL is sent when the registrar holds no TTL for a record being edited.
// It stays a string because the registrar stores TTLs as decimal strings.
const DefaultTTL = "600"

// EditRecordOpts holds the fields replaced by an edit.
// Type, name and priority are kept by the registrar.
type EditRecordOpts struct {
	// Content is the new record value. Required.
	Content string

	// TTL is the time-to-live in seconds, as a decimal string.
	TTL string
}
