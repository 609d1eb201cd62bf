package apisports

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/albapepper/impostor-data/internal/config"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient points a client at an httptest server and counts requests.
func newTestClient(t *testing.T, partial bool, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{
		BaseURL:        srv.URL,
		APIKey:         "test-key",
		MaxPages:       10,
		PartialResults: partial,
	}, discardLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, &calls
}

func writeBody(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Options{APIKey: "  "}, nil)
	var cfgErr *config.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *config.ConfigError, got %v", err)
	}
}

func TestGetSendsAuthAndAcceptHeaders(t *testing.T) {
	var gotKey, gotAccept, gotQuery string
	c, _ := newTestClient(t, true, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-apisports-key")
		gotAccept = r.Header.Get("Accept")
		gotQuery = r.URL.RawQuery
		writeBody(w, `{"response":[],"errors":[]}`)
	})

	env, err := c.get(context.Background(), "/teams", url.Values{"name": {"Arsenal"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotAccept != "application/json" {
		t.Errorf("accept header = %q", gotAccept)
	}
	if gotQuery != "name=Arsenal" {
		t.Errorf("query = %q", gotQuery)
	}
	if err := env.protocolError("/teams"); err != nil {
		t.Errorf("empty errors array should not be a protocol error: %v", err)
	}
}

func TestGetNonSuccessIsHTTPError(t *testing.T) {
	c, _ := newTestClient(t, true, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, strings.Repeat("x", 500))
	})

	_, err := c.get(context.Background(), "/teams", nil)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d", httpErr.StatusCode)
	}
	if httpErr.Rejected() {
		t.Errorf("500 is not a credentials rejection")
	}
	if len(httpErr.Body) > 203 {
		t.Errorf("body not truncated: %d bytes", len(httpErr.Body))
	}
	if strings.Contains(httpErr.Error(), "xxx") {
		t.Errorf("error message leaks upstream body: %s", httpErr.Error())
	}
}

func TestGetRejectedCredentials(t *testing.T) {
	c, _ := newTestClient(t, true, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.get(context.Background(), "/status", nil)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || !httpErr.Rejected() {
		t.Fatalf("expected rejected *HTTPError, got %v", err)
	}
	if !IsUpstreamHTTP(err) {
		t.Fatal("IsUpstreamHTTP should match")
	}
}

func TestGetTransportErrorIsWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	c, err := NewClient(Options{APIKey: "k", BaseURL: "http://upstream"}, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	c.httpClient = &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	})}

	_, err = c.get(context.Background(), "/teams", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
	if IsUpstreamHTTP(err) {
		t.Fatal("transport error is not an upstream HTTP error")
	}
}

func TestProtocolErrorForms(t *testing.T) {
	cases := []struct {
		name   string
		errors string
		want   int
	}{
		{"absent", ``, 0},
		{"null", `null`, 0},
		{"empty array", `[]`, 0},
		{"empty object", `{}`, 0},
		{"object", `{"token":"Error/Missing application key","plan":"Free plans do not have access"}`, 2},
		{"array", `["rate limit"]`, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := &envelope{}
			if tc.errors != "" {
				env.Errors = []byte(tc.errors)
			}
			err := env.protocolError("/x")
			if tc.want == 0 {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var protoErr *ProtocolError
			if !errors.As(err, &protoErr) {
				t.Fatalf("expected *ProtocolError, got %v", err)
			}
			if len(protoErr.Messages) != tc.want {
				t.Fatalf("messages = %v", protoErr.Messages)
			}
		})
	}
}

func TestPagingDone(t *testing.T) {
	one, two := 1, 2
	cases := []struct {
		name      string
		p         *paging
		requested int
		want      bool
	}{
		{"absent", nil, 1, true},
		{"current equals total", &paging{Current: &one, Total: &one}, 1, true},
		{"more pages", &paging{Current: &one, Total: &two}, 1, false},
		{"missing total", &paging{Current: &two}, 2, true},
		{"missing current", &paging{Total: &two}, 1, false},
		{"current past total", &paging{Current: &two, Total: &one}, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.done(tc.requested); got != tc.want {
				t.Fatalf("done = %v, want %v", got, tc.want)
			}
		})
	}
}
