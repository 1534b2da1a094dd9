package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvFileName is the optional dotenv file read from the data folder.
const EnvFileName = ".env"

// Env holds settings read from the process environment.
type Env struct {
	APIKey       string        `envconfig:"PORKBUN_APIKEY"`
	SecretAPIKey string        `envconfig:"PORKBUN_SECRETAPIKEY"`
	BaseURL      string        `envconfig:"PORKBUN_DDNS_BASE_URL"`
	Timeout      time.Duration `envconfig:"PORKBUN_DDNS_TIMEOUT" default:"30s"`
	Debug        bool          `envconfig:"PORKBUN_DDNS_DEBUG"`
}

// LoadEnv loads <folder>/.env when present and then reads Env from the
// environment. Variables already set in the environment win over the file.
func LoadEnv(folder string) (*Env, error) {
	path := NormalizeFolder(folder) + EnvFileName
	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to stat %s: %w", path, err)
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrInvalid, err)
	}
	return &env, nil
}
