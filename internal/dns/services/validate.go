package services

import (
	"fmt"
	"net/netip"
	"strings"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
)

// validRecordTypes is the set of DNS record types the registrar supports.
var validRecordTypes = map[domain.RecordType]bool{
	domain.RecordTypeA:     true,
	domain.RecordTypeAAAA:  true,
	domain.RecordTypeCNAME: true,
	domain.RecordTypeAlias: true,
	domain.RecordTypeTXT:   true,
	domain.RecordTypeNS:    true,
	domain.RecordTypeMX:    true,
	domain.RecordTypeSRV:   true,
	domain.RecordTypeTLSA:  true,
	domain.RecordTypeCAA:   true,
	domain.RecordTypeHTTPS: true,
	domain.RecordTypeSVCB:  true,
	domain.RecordTypeSSHFP: true,
}

// normalizeDomain lowercases and strips any trailing dot from a domain name.
// Only used for ad-hoc lookups; configured names go to the wire verbatim.
func normalizeDomain(d string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(d), "."))
}

// validateRecordType returns an error if t is not a supported record type.
func validateRecordType(t domain.RecordType) error {
	if !validRecordTypes[t] {
		return fmt.Errorf("unsupported record type %q", t)
	}
	return nil
}

// validateObservedIP checks that the address reported by ping can be written
// into an A record. IPv4-mapped IPv6 forms are rejected.
func validateObservedIP(ip string) error {
	addr, err := netip.ParseAddr(ip)
	if err != nil || !addr.Is4() {
		return fmt.Errorf("observed address %q is not a valid IPv4 address", ip)
	}
	return nil
}
