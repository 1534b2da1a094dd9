package domain

import "strings"

// RecordType represents a DNS record type.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeAlias RecordType = "ALIAS"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeNS    RecordType = "NS"
	RecordTypeMX    RecordType = "MX"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeTLSA  RecordType = "TLSA"
	RecordTypeCAA   RecordType = "CAA"
	RecordTypeHTTPS RecordType = "HTTPS"
	RecordTypeSVCB  RecordType = "SVCB"
	RecordTypeSSHFP RecordType = "SSHFP"
)

// Record represents a single DNS record as returned by the registrar.
// Numeric fields are kept as the decimal strings found on the wire.
type Record struct {
	// ID is the registrar-assigned record identifier.
	ID string `json:"id"`

	// Name is the fully-qualified record name
	// (e.g. "www.example.com" or "example.com" for the apex).
	Name string `json:"name"`

	// Type is the DNS record type (A, AAAA, CNAME, etc.).
	Type RecordType `json:"type"`

	// Content is the record value (IP address, hostname, text, etc.).
	Content string `json:"content"`

	// TTL is the time-to-live in seconds. Empty when the registrar sent none.
	TTL string `json:"ttl,omitempty"`

	// Priority is used for record types that support it (MX, SRV, etc.).
	Priority string `json:"prio,omitempty"`

	// Notes is an optional human-readable annotation on the record.
	Notes string `json:"notes,omitempty"`
}

// HasTTL reports whether the registrar returned a TTL for the record.
func (r Record) HasTTL() bool {
	return r.TTL != ""
}

// Credentials authenticate every registrar request.
type Credentials struct {
	APIKey       string
	SecretAPIKey string
}

// Complete reports whether both keys are set.
func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.SecretAPIKey != ""
}

// DomainSpec is one apex domain the operator wants reconciled.
type DomainSpec struct {
	// Name is the apex (e.g. "example.com").
	Name string

	// UpdateApex controls whether the apex record itself is a target.
	UpdateApex bool

	// Subdomains are labels under the apex (e.g. "www" for "www.example.com").
	Subdomains []string
}

// Targets returns the fully-qualified names to reconcile, apex first and then
// subdomains in configured order.
func (d DomainSpec) Targets() []string {
	targets := make([]string, 0, len(d.Subdomains)+1)
	if d.UpdateApex {
		targets = append(targets, d.Name)
	}
	for _, label := range d.Subdomains {
		targets = append(targets, label+"."+d.Name)
	}
	return targets
}

// InZone reports whether name is the apex itself or a name under it.
// A bare suffix check would let "evilexample.com" match "example.com".
func (d DomainSpec) InZone(name string) bool {
	suffix := "." + d.Name
	return name == d.Name || (len(name) > len(suffix) && strings.HasSuffix(name, suffix))
}
