// Package services provides the DNS service layer.
//
// The Service type wraps a domain.Provider and owns the reconciliation
// policy: it observes the public IP once per pass, then walks every
// configured domain, deciding per target name whether the registrar's A
// record must change, can be skipped, or is in error. CLI commands
// construct a Service from a provider and call service methods rather than
// calling the provider directly.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
)

// ErrPingFailed wraps any failure to observe the public IP. It is the only
// error that aborts a pass.
var ErrPingFailed = errors.New("ping failed")

// Service is the DNS business logic layer. It sits between CLI commands and
// the provider and holds no state between calls.
type Service struct {
	provider domain.Provider
	out      io.Writer
	verbose  bool
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithOutput sets where report lines are written. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithVerbose enables the per-target report lines.
func WithVerbose(verbose bool) Option {
	return func(s *Service) {
		s.verbose = verbose
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a Service backed by the given provider.
func New(provider domain.Provider, opts ...Option) *Service {
	svc := &Service{
		provider: provider,
		out:      io.Discard,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ObserveIP asks the registrar for the caller's public address. The result
// must be a textual IPv4 address; anything else is reported as
// ErrPingFailed.
func (s *Service) ObserveIP(ctx context.Context) (string, error) {
	ip, err := s.provider.Ping(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPingFailed, err)
	}
	if err := validateObservedIP(ip); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPingFailed, err)
	}
	return ip, nil
}

// ListRecords returns the records of a domain, optionally restricted to one
// record type. An empty recordType returns every record.
func (s *Service) ListRecords(ctx context.Context, domainName string, recordType domain.RecordType) ([]domain.Record, error) {
	domainName = normalizeDomain(domainName)
	if domainName == "" {
		return nil, fmt.Errorf("domain name is required")
	}
	if recordType != "" {
		if err := validateRecordType(recordType); err != nil {
			return nil, err
		}
	}

	records, err := s.provider.ListRecords(ctx, domainName)
	if err != nil {
		return nil, err
	}
	if recordType == "" {
		return records, nil
	}

	filtered := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if r.Type == recordType {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *Service) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Service) verbosef(format string, args ...any) {
	if s.verbose {
		s.printf(format, args...)
	}
}
