package providers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"maps"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/jarcoal/httpmock"
)

// --- Test helpers ---

var testCreds = domain.Credentials{APIKey: "test-api-key", SecretAPIKey: "test-secret-key"}

// newTestPorkbunProvider creates a PorkbunProvider pointed at the given test server.
func newTestPorkbunProvider(t *testing.T, serverURL string, opts ...Option) *PorkbunProvider {
	t.Helper()
	return NewPorkbunProvider(testCreds, append([]Option{WithBaseURL(serverURL)}, opts...)...)
}

// porkbunSuccess returns a minimal success response body.
func porkbunSuccess(extra map[string]any) map[string]any {
	m := map[string]any{"status": "SUCCESS"}
	maps.Copy(m, extra)
	return m
}

// porkbunError returns an error response body.
func porkbunError(message string) map[string]any {
	return map[string]any{
		"status":  "ERROR",
		"message": message,
	}
}

// capturedRequest records what the fake registrar received.
type capturedRequest struct {
	Path string
	Body map[string]any
}

// newStaticServer creates an httptest.Server that always returns the given JSON
// and records every request it receives.
func newStaticServer(t *testing.T, body any) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		var reqBody map[string]any
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		captured = append(captured, capturedRequest{Path: r.URL.Path, Body: reqBody})

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("failed to encode test response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

// testRecordJSON returns a sample Porkbun API record object.
func testRecordJSON(id, name, typ, content, ttl string) map[string]any {
	return map[string]any{
		"id":      id,
		"name":    name,
		"type":    typ,
		"content": content,
		"ttl":     ttl,
		"prio":    "0",
		"notes":   "",
	}
}

// --- Ping tests ---

func TestPing_HappyPath(t *testing.T) {
	srv, captured := newStaticServer(t, porkbunSuccess(map[string]any{"yourIp": "203.0.113.7"}))
	p := newTestPorkbunProvider(t, srv.URL)

	ip, err := p.Ping(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ip != "203.0.113.7" {
		t.Errorf("ip = %q, want %q", ip, "203.0.113.7")
	}

	want := []capturedRequest{{
		Path: "/ping",
		Body: map[string]any{"apikey": "test-api-key", "secretapikey": "test-secret-key"},
	}}
	if diff := cmp.Diff(want, *captured); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestPing_APIError(t *testing.T) {
	srv, _ := newStaticServer(t, porkbunError("Invalid API key. (002)"))
	p := newTestPorkbunProvider(t, srv.URL)

	_, err := p.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *domain.APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "Invalid API key. (002)" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Invalid API key. (002)")
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestPing_MissingIP(t *testing.T) {
	srv, _ := newStaticServer(t, porkbunSuccess(nil))
	p := newTestPorkbunProvider(t, srv.URL)

	_, err := p.Ping(context.Background())
	var transportErr *domain.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *domain.TransportError, got %T: %v", err, err)
	}
}

func TestPing_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>bad gateway</html>")
	}))
	t.Cleanup(srv.Close)
	p := newTestPorkbunProvider(t, srv.URL)

	_, err := p.Ping(context.Background())
	var transportErr *domain.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *domain.TransportError, got %T: %v", err, err)
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure must not be reported as an API error: %v", err)
	}
}

func TestPing_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	p := newTestPorkbunProvider(t, srv.URL, WithTimeout(50*time.Millisecond))

	_, err := p.Ping(context.Background())
	var transportErr *domain.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *domain.TransportError, got %T: %v", err, err)
	}
	if transportErr.Op != "POST /ping" {
		t.Errorf("Op = %q, want %q", transportErr.Op, "POST /ping")
	}
}

// --- ListRecords tests ---

func TestListRecords_HappyPath(t *testing.T) {
	body := porkbunSuccess(map[string]any{
		"records": []any{
			testRecordJSON("1", "example.com", "A", "198.51.100.2", "300"),
			testRecordJSON("2", "www.example.com", "A", "203.0.113.7", "600"),
			map[string]any{
				"id":      "3",
				"name":    "mx.example.com",
				"type":    "MX",
				"content": "mail.example.net",
				"ttl":     nil,
				"prio":    "10",
				"notes":   nil,
			},
		},
	})

	srv, captured := newStaticServer(t, body)
	p := newTestPorkbunProvider(t, srv.URL)

	records, err := p.ListRecords(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []domain.Record{
		{ID: "1", Name: "example.com", Type: domain.RecordTypeA, Content: "198.51.100.2", TTL: "300", Priority: "0"},
		{ID: "2", Name: "www.example.com", Type: domain.RecordTypeA, Content: "203.0.113.7", TTL: "600", Priority: "0"},
		{ID: "3", Name: "mx.example.com", Type: domain.RecordTypeMX, Content: "mail.example.net", Priority: "10"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("ListRecords mismatch (-want +got):\n%s", diff)
	}
	if records[2].HasTTL() {
		t.Error("expected null ttl to be treated as absent")
	}
	if got := (*captured)[0].Path; got != "/dns/retrieve/example.com" {
		t.Errorf("path = %q, want /dns/retrieve/example.com", got)
	}
}

func TestListRecords_EmptyList(t *testing.T) {
	srv, _ := newStaticServer(t, porkbunSuccess(map[string]any{"records": []any{}}))
	p := newTestPorkbunProvider(t, srv.URL)

	records, err := p.ListRecords(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records, got %d", len(records))
	}
}

func TestListRecords_InvalidDomain(t *testing.T) {
	srv, _ := newStaticServer(t, porkbunError("Invalid domain."))
	p := newTestPorkbunProvider(t, srv.URL)

	_, err := p.ListRecords(context.Background(), "notmine.com")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if got := domain.Message(err); got != "Invalid domain." {
		t.Errorf("Message = %q, want %q", got, "Invalid domain.")
	}
}

func TestListRecords_UnknownStatus(t *testing.T) {
	srv, _ := newStaticServer(t, map[string]any{"status": "MAINTENANCE"})
	p := newTestPorkbunProvider(t, srv.URL)

	_, err := p.ListRecords(context.Background(), "example.com")
	var transportErr *domain.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *domain.TransportError, got %T: %v", err, err)
	}
}

func TestListRecords_ConnectionError(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodPost, "https://porkbun.test/api/dns/retrieve/example.com",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	p := NewPorkbunProvider(testCreds,
		WithBaseURL("https://porkbun.test/api"),
		WithHTTPClient(&http.Client{Transport: transport}),
	)

	_, err := p.ListRecords(context.Background(), "example.com")
	var transportErr *domain.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *domain.TransportError, got %T: %v", err, err)
	}
	if transportErr.Op != "POST /dns/retrieve/example.com" {
		t.Errorf("Op = %q, want %q", transportErr.Op, "POST /dns/retrieve/example.com")
	}
	if n := transport.GetTotalCallCount(); n != 1 {
		t.Errorf("expected 1 call, got %d", n)
	}
}

// --- EditRecord tests ---

func TestEditRecord_HappyPath(t *testing.T) {
	srv, captured := newStaticServer(t, porkbunSuccess(nil))
	p := newTestPorkbunProvider(t, srv.URL)

	err := p.EditRecord(context.Background(), "example.com", "101", domain.EditRecordOpts{
		Content: "203.0.113.7",
		TTL:     "300",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []capturedRequest{{
		Path: "/dns/edit/example.com/101",
		Body: map[string]any{
			"apikey":       "test-api-key",
			"secretapikey": "test-secret-key",
			"content":      "203.0.113.7",
			"ttl":          "300",
		},
	}}
	if diff := cmp.Diff(want, *captured); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestEditRecord_APIError(t *testing.T) {
	srv, _ := newStaticServer(t, porkbunError("Edit error: We were unable to edit the DNS record."))
	p := newTestPorkbunProvider(t, srv.URL)

	err := p.EditRecord(context.Background(), "example.com", "999", domain.EditRecordOpts{
		Content: "203.0.113.7",
		TTL:     "600",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got, want := domain.Message(err), "Edit error: We were unable to edit the DNS record."; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestEditRecord_ServerErrorWithJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(porkbunError("Too many requests."))
	}))
	t.Cleanup(srv.Close)
	p := newTestPorkbunProvider(t, srv.URL)

	err := p.EditRecord(context.Background(), "example.com", "1", domain.EditRecordOpts{Content: "203.0.113.7", TTL: "600"})
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got: %v", err)
	}
}

// --- mapAPIError tests ---

func TestMapAPIError(t *testing.T) {
	cases := []struct {
		message string
		want    error
	}{
		{"Invalid API key. (002)", domain.ErrUnauthorized},
		{"All HTTP request must use API key and secret key authentication.", domain.ErrUnauthorized},
		{"Invalid domain.", domain.ErrNotFound},
		{"Record does not exist.", domain.ErrNotFound},
		{"Rate limit exceeded.", domain.ErrRateLimited},
		{"Duplicate record.", domain.ErrConflict},
		{"Something else went wrong.", nil},
	}

	for _, c := range cases {
		got := mapAPIError(c.message)
		if got.Message != c.message {
			t.Errorf("mapAPIError(%q).Message = %q", c.message, got.Message)
		}
		if got.Kind != c.want {
			t.Errorf("mapAPIError(%q).Kind = %v, want %v", c.message, got.Kind, c.want)
		}
	}
}
