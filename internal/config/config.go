// Package config loads the porkbun-ddns configuration.
//
// Configuration lives in a data folder (data/ by default) as config.toml.
// Credentials may additionally come from the environment, a .env file in the
// same folder, or the OS keychain.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
	"nathanbeddoewebdev/porkbun-ddns/internal/util"
)

const (
	// DefaultFolder is the data folder used when none is given.
	DefaultFolder = "data/"

	// FileName is the name of the config file inside the data folder.
	FileName = "config.toml"
)

// Template is written to an empty or missing config file.
const Template = `apikey = ""
secretapikey = ""

[[domains]]
name = "example.com"
update_tld = false
subdomains = []
`

var (
	// ErrNotConfigured is returned after a template has been written. The
	// user has to fill it out before the next run.
	ErrNotConfigured = errors.New("config file does not exist, please fill out the generated config file before running again")

	// ErrInvalid is returned when the config file cannot be parsed or fails
	// validation.
	ErrInvalid = errors.New("invalid config")
)

// Config is the parsed contents of config.toml.
type Config struct {
	APIKey       string   `toml:"apikey"`
	SecretAPIKey string   `toml:"secretapikey"`
	Domains      []Domain `toml:"domains"`
}

// Domain is one [[domains]] entry.
type Domain struct {
	Name       string   `toml:"name"`
	UpdateTLD  bool     `toml:"update_tld"`
	Subdomains []string `toml:"subdomains"`
}

// Spec converts the entry into the form the updater works with.
func (d Domain) Spec() domain.DomainSpec {
	subdomains := make([]string, len(d.Subdomains))
	copy(subdomains, d.Subdomains)
	return domain.DomainSpec{
		Name:       d.Name,
		UpdateApex: d.UpdateTLD,
		Subdomains: subdomains,
	}
}

// Specs returns every configured domain in file order.
func (c *Config) Specs() []domain.DomainSpec {
	specs := make([]domain.DomainSpec, 0, len(c.Domains))
	for _, d := range c.Domains {
		specs = append(specs, d.Spec())
	}
	return specs
}

// NormalizeFolder returns folder with a trailing path separator. An empty
// folder yields DefaultFolder.
func NormalizeFolder(folder string) string {
	if folder == "" {
		return DefaultFolder
	}
	if strings.HasSuffix(folder, "/") || strings.HasSuffix(folder, string(filepath.Separator)) {
		return folder
	}
	return folder + string(filepath.Separator)
}

// Path returns the config file path inside folder.
func Path(folder string) string {
	return NormalizeFolder(folder) + FileName
}

// Load reads and validates config.toml from folder.
//
// If the file is missing or empty, Template is written in its place and
// ErrNotConfigured is returned. The folder itself is never created.
func Load(folder string) (*Config, error) {
	path := Path(folder)

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		if err := os.WriteFile(path, []byte(Template), 0o600); err != nil {
			return nil, fmt.Errorf("config: error opening folder %s, either the location does not exist or has permissions issues: %w", NormalizeFolder(folder), err)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, path)
	}

	return Parse(path, data)
}

// Parse decodes and validates raw config.toml contents. The path is used
// only in error messages.
func Parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalid, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	return &cfg, nil
}

// Validate normalizes every domain entry in place and checks that names
// and subdomain labels are well formed. Surrounding whitespace and a
// trailing dot are removed from names and labels.
func (c *Config) Validate() error {
	for i := range c.Domains {
		d := &c.Domains[i]
		d.Name = trimName(d.Name)
		if err := util.ValidateDomainName(d.Name); err != nil {
			return fmt.Errorf("domains[%d]: %w", i, err)
		}
		for j, label := range d.Subdomains {
			label = trimName(label)
			if err := util.ValidateSubdomain(label); err != nil {
				return fmt.Errorf("domains[%d] (%s): %w", i, d.Name, err)
			}
			d.Subdomains[j] = label
		}
	}
	return nil
}

func trimName(s string) string {
	return strings.TrimSuffix(strings.TrimSpace(s), ".")
}
