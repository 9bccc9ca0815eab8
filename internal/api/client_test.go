package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient creates a client pointed at a test server with a generous
// rate limit so tests are not throttled.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, 5*time.Second, WithRateLimit(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

// TestNewClient tests base URL validation.
func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "valid http URL", baseURL: "http://localhost:8000", wantErr: false},
		{name: "valid https URL", baseURL: "https://api.example.com", wantErr: false},
		{name: "trailing slash accepted", baseURL: "http://localhost:8000/", wantErr: false},
		{name: "missing scheme", baseURL: "localhost:8000", wantErr: true},
		{name: "empty", baseURL: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewClient(tt.baseURL, time.Second)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBaseURL) {
					t.Errorf("NewClient(%q) error = %v, want ErrInvalidBaseURL", tt.baseURL, err)
				}
				return
			}
			if err != nil {
				t.Errorf("NewClient(%q) unexpected error: %v", tt.baseURL, err)
			}
		})
	}
}

// TestClientRequestHeaders tests that every request carries the common headers.
func TestClientRequestHeaders(t *testing.T) {
	t.Parallel()

	var gotRequestID, gotAuth, gotCustom string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAuth = r.Header.Get("Authorization")
		gotCustom = r.Header.Get("X-Staging-Bypass")
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck // test handler
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, 5*time.Second,
		WithAPIKey("test-key"),
		WithHeaders(map[string]string{"X-Staging-Bypass": "1"}),
		WithRateLimit(1000),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotRequestID == "" {
		t.Error("expected X-Request-ID header to be set")
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotCustom != "1" {
		t.Errorf("X-Staging-Bypass = %q, want %q", gotCustom, "1")
	}
}

// TestClientStatusError tests conversion of non-2xx responses.
func TestClientStatusError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "audit backend unavailable", http.StatusServiceUnavailable)
	}))

	err := client.Health(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want 503", statusErr.StatusCode)
	}
	if statusErr.Message != "audit backend unavailable" {
		t.Errorf("Message = %q, want backend error text", statusErr.Message)
	}
}

// TestStartAudit tests the audit start endpoint contract.
func TestStartAudit(t *testing.T) {
	t.Parallel()

	t.Run("returns task handle", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/seo/audit/technical" {
				t.Errorf("path = %q, want /api/seo/audit/technical", r.URL.Path)
			}
			w.Write([]byte(`{"task_id":"task-7","status":"queued"}`)) //nolint:errcheck // test handler
		}))

		handle, err := client.StartAudit(context.Background(), "https://example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if handle.TaskID != "task-7" {
			t.Errorf("TaskID = %q, want %q", handle.TaskID, "task-7")
		}
		if handle.Status != StateQueued {
			t.Errorf("Status = %q, want queued", handle.Status)
		}
	})

	t.Run("missing task_id is an unexpected shape", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"status":"queued"}`)) //nolint:errcheck // test handler
		}))

		_, err := client.StartAudit(context.Background(), "https://example.com")
		if !errors.Is(err, ErrUnexpectedShape) {
			t.Errorf("error = %v, want ErrUnexpectedShape", err)
		}
	})

	t.Run("malformed JSON is an unexpected shape", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`<html>not json</html>`)) //nolint:errcheck // test handler
		}))

		_, err := client.StartAudit(context.Background(), "https://example.com")
		if !errors.Is(err, ErrUnexpectedShape) {
			t.Errorf("error = %v, want ErrUnexpectedShape", err)
		}
	})
}

// TestAuditStatusContract tests the completeness check on audit status.
func TestAuditStatusContract(t *testing.T) {
	t.Parallel()

	t.Run("complete without result is an unexpected shape", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"task_id":"task-7","status":"complete"}`)) //nolint:errcheck // test handler
		}))

		_, err := client.AuditStatus(context.Background(), "task-7")
		if !errors.Is(err, ErrUnexpectedShape) {
			t.Errorf("error = %v, want ErrUnexpectedShape", err)
		}
	})

	t.Run("processing status decodes", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"task_id":"task-7","status":"processing","progress":40}`)) //nolint:errcheck // test handler
		}))

		status, err := client.AuditStatus(context.Background(), "task-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Status != StateProcessing {
			t.Errorf("Status = %q, want processing", status.Status)
		}
		if status.Progress != 40 {
			t.Errorf("Progress = %d, want 40", status.Progress)
		}
	})
}

// TestResearchKeywords tests the keyword research endpoint.
func TestResearchKeywords(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/keywords/research" {
			t.Errorf("path = %q, want /api/keywords/research", r.URL.Path)
		}
		w.Write([]byte(`{"keywords":[{"keyword":"coffee grinder","score":82.5,"volume":9900,"difficulty":45,"cpc":1.2,"level":"moderate"}]}`)) //nolint:errcheck // test handler
	}))

	keywords, err := client.ResearchKeywords(context.Background(), "coffee grinder", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keywords) != 1 {
		t.Fatalf("got %d keywords, want 1", len(keywords))
	}
	if keywords[0].CPC != 1.2 {
		t.Errorf("CPC = %v, want 1.2", keywords[0].CPC)
	}
}

// TestTaskStateTerminal tests terminal state detection.
func TestTaskStateTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state TaskState
		want  bool
	}{
		{state: StateQueued, want: false},
		{state: StateProcessing, want: false},
		{state: StateComplete, want: true},
		{state: StateFailed, want: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			t.Parallel()

			if got := tt.state.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %v, want %v", got, tt.want)
			}
		})
	}
}
