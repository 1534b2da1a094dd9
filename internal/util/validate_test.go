package util

import (
	"strings"
	"testing"
)

func TestValidateDomainName_Valid(t *testing.T) {
	valid := []string{
		"example.com",
		"my-site.io",
		"a.b.co.uk",
		"xn--bcher-kva.example",
		"Example.COM",
	}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			if err := ValidateDomainName(name); err != nil {
				t.Errorf("expected %q to be valid, got error: %v", name, err)
			}
		})
	}
}

func TestValidateDomainName_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		wantMsg string
	}{
		{"", "must not be empty"},
		{"localhost", "at least one period"},
		{"example..com", "empty labels"},
		{".example.com", "empty labels"},
		{"-example.com", "starting or ending with a hyphen"},
		{"example-.com", "starting or ending with a hyphen"},
		{"exa mple.com", "invalid characters"},
		{"*.example.com", "invalid characters"},
		{"_dmarc.example.com", "invalid characters"},
		{"example.com/", "invalid characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDomainName(tt.name)
			if err == nil {
				t.Fatalf("expected %q to be invalid, got nil", tt.name)
			}
			if got := err.Error(); !strings.Contains(got, tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, got)
			}
		})
	}
}

func TestValidateSubdomain(t *testing.T) {
	valid := []string{"www", "*", "_acme-challenge", "a.b", "mail-1"}
	for _, label := range valid {
		if err := ValidateSubdomain(label); err != nil {
			t.Errorf("expected %q to be valid, got error: %v", label, err)
		}
	}

	invalid := []string{"", "www.", "a..b", "-www", "w w", "www/"}
	for _, label := range invalid {
		if err := ValidateSubdomain(label); err == nil {
			t.Errorf("expected %q to be invalid, got nil", label)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	if got := NormalizeKey("  Porkbun-APIKey \n"); got != "porkbun-apikey" {
		t.Errorf("NormalizeKey = %q, want %q", got, "porkbun-apikey")
	}
}
