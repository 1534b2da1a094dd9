package util

import (
	"fmt"
	"regexp"
	"strings"
)

// validNameChars matches alphanumerics, hyphens, periods, underscores and the
// wildcard label.
var validNameChars = regexp.MustCompile(`^[a-zA-Z0-9.\-_*]+$`)

// ValidateDomainName checks that an apex domain looks like a registrable name:
//   - Only alphanumeric characters, hyphens (-), and periods (.)
//   - At least one period
//   - No empty labels and no label starting or ending with a hyphen
func ValidateDomainName(name string) error {
	if name == "" {
		return fmt.Errorf("domain name must not be empty")
	}
	if strings.ContainsAny(name, "_*") || !validNameChars.MatchString(name) {
		return fmt.Errorf("domain name %q contains invalid characters (only a-z, A-Z, 0-9, hyphens, and periods are allowed)", name)
	}
	if !strings.Contains(name, ".") {
		return fmt.Errorf("domain name %q must contain at least one period", name)
	}
	return validateLabels("domain name", name)
}

// ValidateSubdomain checks a subdomain label as written in the config, such as
// "www", "*" or "a.b". Leading underscores are allowed for service labels.
func ValidateSubdomain(label string) error {
	if label == "" {
		return fmt.Errorf("subdomain must not be empty")
	}
	if !validNameChars.MatchString(label) {
		return fmt.Errorf("subdomain %q contains invalid characters (only a-z, A-Z, 0-9, hyphens, underscores, periods, and * are allowed)", label)
	}
	return validateLabels("subdomain", label)
}

func validateLabels(kind, name string) error {
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			return fmt.Errorf("%s %q must not contain empty labels", kind, name)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("%s %q must not have labels starting or ending with a hyphen", kind, name)
		}
	}
	return nil
}
