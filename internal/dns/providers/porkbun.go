package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
)

const (
	// PorkbunBaseURL is the production endpoint of the Porkbun API v3.
	PorkbunBaseURL = "https://api.porkbun.com/api/json/v3"

	// PorkbunTimeout bounds every request, including reading the body.
	PorkbunTimeout = 30 * time.Second

	porkbunStatusSuccess = "SUCCESS"
	porkbunStatusError   = "ERROR"
)

// Compile-time check that PorkbunProvider satisfies domain.Provider.
var _ domain.Provider = (*PorkbunProvider)(nil)

// PorkbunProvider implements domain.Provider using the Porkbun API v3.
// It holds no state besides its configuration and is safe to share.
type PorkbunProvider struct {
	creds   domain.Credentials
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// Option configures a PorkbunProvider.
type Option func(*PorkbunProvider)

// WithBaseURL points the provider at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(p *PorkbunProvider) {
		if baseURL != "" {
			p.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(p *PorkbunProvider) {
		if timeout > 0 {
			p.client.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *PorkbunProvider) {
		if client != nil {
			p.client = client
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *PorkbunProvider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPorkbunProvider creates a PorkbunProvider with the given credentials.
func NewPorkbunProvider(creds domain.Credentials, opts ...Option) *PorkbunProvider {
	p := &PorkbunProvider{
		creds:   creds,
		baseURL: PorkbunBaseURL,
		client:  &http.Client{Timeout: PorkbunTimeout},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetDisplayName returns the human-readable provider name.
func (p *PorkbunProvider) GetDisplayName() string {
	return "Porkbun"
}

// --- API request/response types ---

// porkbunAuth is embedded in every request body.
type porkbunAuth struct {
	APIKey    string `json:"apikey"`
	SecretKey string `json:"secretapikey"`
}

// porkbunResponse is the envelope shared by all Porkbun API responses.
// It is decoded first; the endpoint payload is decoded only on SUCCESS.
type porkbunResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// porkbunDomainRecord maps to the Porkbun DNS record object.
type porkbunDomainRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
	TTL     string `json:"ttl"`
	Prio    string `json:"prio"`
	Notes   string `json:"notes"`
}

// --- HTTP helpers ---

// post sends a POST request with the JSON body to path and decodes a SUCCESS
// response into out. An ERROR response yields *domain.APIError; anything
// else that goes wrong yields *domain.TransportError.
func (p *PorkbunProvider) post(ctx context.Context, path string, body any, out any) error {
	op := http.MethodPost + " " + path

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("porkbun: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("porkbun: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("porkbun request failed", slog.String("op", op), slog.Duration("elapsed", time.Since(start)), slog.Any("error", err))
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	p.logger.Debug("porkbun request",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	var envelope porkbunResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("invalid JSON response (HTTP %d): %w", resp.StatusCode, err)}
	}

	switch envelope.Status {
	case porkbunStatusSuccess:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return &domain.TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
		return nil
	case porkbunStatusError:
		return mapAPIError(envelope.Message)
	default:
		return &domain.TransportError{Op: op, Err: fmt.Errorf("unexpected response status %q (HTTP %d)", envelope.Status, resp.StatusCode)}
	}
}

// authBody returns the base request body with credentials embedded.
func (p *PorkbunProvider) authBody() porkbunAuth {
	return porkbunAuth{APIKey: p.creds.APIKey, SecretKey: p.creds.SecretAPIKey}
}

// mapAPIError builds the API error for a Porkbun ERROR message, attaching
// a domain sentinel where the message is recognisable.
func mapAPIError(message string) *domain.APIError {
	apiErr := &domain.APIError{Message: message}
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "invalid api key") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "authentication"):
		apiErr.Kind = domain.ErrUnauthorized
	case strings.Contains(msg, "not found") ||
		strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "invalid domain"):
		apiErr.Kind = domain.ErrNotFound
	case strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests"):
		apiErr.Kind = domain.ErrRateLimited
	case strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "conflict"):
		apiErr.Kind = domain.ErrConflict
	}
	return apiErr
}

// --- Provider implementation ---

// Ping returns the caller's IP address as seen by Porkbun, verbatim.
func (p *PorkbunProvider) Ping(ctx context.Context) (string, error) {
	type response struct {
		porkbunResponse
		YourIP string `json:"yourIp"`
	}

	var out response
	if err := p.post(ctx, "/ping", p.authBody(), &out); err != nil {
		return "", fmt.Errorf("failed to ping: %w", err)
	}
	if out.YourIP == "" {
		return "", fmt.Errorf("failed to ping: %w", &domain.TransportError{Op: "POST /ping", Err: errors.New("response is missing yourIp")})
	}
	return out.YourIP, nil
}

// ListRecords returns all DNS records for the given domain, in registrar order.
func (p *PorkbunProvider) ListRecords(ctx context.Context, domainName string) ([]domain.Record, error) {
	type response struct {
		porkbunResponse
		Records []porkbunDomainRecord `json:"records"`
	}

	var out response
	if err := p.post(ctx, "/dns/retrieve/"+url.PathEscape(domainName), p.authBody(), &out); err != nil {
		return nil, fmt.Errorf("failed to list records for %q: %w", domainName, err)
	}

	records := make([]domain.Record, 0, len(out.Records))
	for _, r := range out.Records {
		records = append(records, toDomainRecord(r))
	}
	return records, nil
}

// EditRecord replaces the content and TTL of an existing DNS record by its ID.
func (p *PorkbunProvider) EditRecord(ctx context.Context, domainName string, id string, opts domain.EditRecordOpts) error {
	type request struct {
		porkbunAuth
		Content string `json:"content"`
		TTL     string `json:"ttl"`
	}

	body := request{
		porkbunAuth: p.authBody(),
		Content:     opts.Content,
		TTL:         opts.TTL,
	}

	path := "/dns/edit/" + url.PathEscape(domainName) + "/" + url.PathEscape(id)
	if err := p.post(ctx, path, body, nil); err != nil {
		return fmt.Errorf("failed to edit record %q for %q: %w", id, domainName, err)
	}
	return nil
}

// --- Conversion helpers ---

// toDomainRecord converts a Porkbun API record to a domain.Record.
func toDomainRecord(r porkbunDomainRecord) domain.Record {
	return domain.Record{
		ID:       r.ID,
		Name:     r.Name,
		Type:     domain.RecordType(r.Type),
		Content:  r.Content,
		TTL:      r.TTL,
		Priority: r.Prio,
		Notes:    r.Notes,
	}
}
