// Package app assembles the runtime pieces every command needs: settings
// from the environment and the data folder, a logger, and a provider built
// with resolved credentials.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"nathanbeddoewebdev/porkbun-ddns/internal/config"
	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
	"nathanbeddoewebdev/porkbun-ddns/internal/dns/providers"
	"nathanbeddoewebdev/porkbun-ddns/internal/services/auth"
)

// Options selects where settings are read from.
type Options struct {
	// DataDir holds config.toml and the optional .env file.
	DataDir string

	// Debug enables debug logging regardless of PORKBUN_DDNS_DEBUG.
	Debug bool

	// Stderr receives log output. Defaults to os.Stderr.
	Stderr io.Writer

	// Store is the keychain fallback for credentials. May be nil.
	Store auth.Store
}

// App is a fully resolved runtime.
type App struct {
	Config   *config.Config
	Env      *config.Env
	Logger   *slog.Logger
	Provider domain.Provider
}

// OptionsFromCommand reads the persistent root flags. Flags that are not
// defined on cmd keep their defaults, so subcommands also work standalone.
func OptionsFromCommand(cmd *cobra.Command, store auth.Store) Options {
	opts := Options{
		DataDir: config.DefaultFolder,
		Stderr:  cmd.ErrOrStderr(),
		Store:   store,
	}
	if f := cmd.Flag("data"); f != nil && f.Value.String() != "" {
		opts.DataDir = f.Value.String()
	}
	if f := cmd.Flag("debug"); f != nil {
		opts.Debug = f.Value.String() == "true"
	}
	return opts
}

// Load reads the environment and config.toml, resolves credentials, and
// builds the default provider. No network request is made.
func Load(opts Options) (*App, error) {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	env, err := config.LoadEnv(opts.DataDir)
	if err != nil {
		return nil, err
	}
	logger := NewLogger(opts.Stderr, opts.Debug || env.Debug)

	cfg, err := config.Load(opts.DataDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config",
		slog.String("path", config.Path(opts.DataDir)),
		slog.Int("domains", len(cfg.Domains)),
	)

	creds, err := config.ResolveCredentials(cfg, env, opts.Store)
	if err != nil {
		return nil, err
	}

	provider, err := providers.Get(providers.DefaultName, providers.Settings{
		Credentials: creds,
		BaseURL:     env.BaseURL,
		Timeout:     env.Timeout,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	return &App{Config: cfg, Env: env, Logger: logger, Provider: provider}, nil
}

// NewLogger returns a text logger at Info, or Debug when debug is set.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
