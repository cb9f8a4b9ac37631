package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDoJSON_Success(t *testing.T) {
	var gotUA, gotRequestID, gotIdempotency, gotDefault string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotIdempotency = r.Header.Get("Idempotency-Key")
		gotDefault = r.Header.Get("X-Custom")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	c.DefaultHeaders.Set("X-Custom", "yes")

	_, raw, err := c.DoJSON(context.Background(), http.MethodPost, "/v1/test", nil, map[string]string{"k": "v"})
	if err != nil {
		t.Fatalf("DoJSON() err=%v", err)
	}
	if string(raw) != `{"ok":true}` {
		t.Fatalf("raw=%s", raw)
	}
	if !strings.HasPrefix(gotUA, "harmonizer/") {
		t.Fatalf("User-Agent=%q", gotUA)
	}
	if gotRequestID == "" {
		t.Fatal("X-Request-Id not set")
	}
	if gotIdempotency != gotRequestID {
		t.Fatalf("Idempotency-Key=%q, want %q", gotIdempotency, gotRequestID)
	}
	if gotDefault != "yes" {
		t.Fatalf("default header=%q", gotDefault)
	}
	if string(gotBody) != `{"k":"v"}` {
		t.Fatalf("body=%s", gotBody)
	}
}

func TestDoJSON_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	_, raw, err := c.DoJSON(context.Background(), http.MethodPost, "/v1/test", nil, nil)
	var se *HTTPStatusError
	if !errors.As(err, &se) {
		t.Fatalf("want *HTTPStatusError, got %T (%v)", err, err)
	}
	if se.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("StatusCode=%d", se.StatusCode)
	}
	if !strings.Contains(string(se.Body), "slow down") {
		t.Fatalf("Body=%s", se.Body)
	}
	if string(raw) != string(se.Body) {
		t.Fatalf("raw=%s", raw)
	}
}

func TestDoJSON_NoRetry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	_, _, err = c.DoJSON(context.Background(), http.MethodPost, "/v1/test", nil, nil)
	if err == nil {
		t.Fatal("want error")
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want exactly 1", calls)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"https://api.example.com", "/v1/chat/completions", "https://api.example.com/v1/chat/completions"},
		{"https://api.example.com/", "/v1/models", "https://api.example.com/v1/models"},
		{"https://api.example.com/proxy", "v1/models", "https://api.example.com/proxy/v1/models"},
		{"https://api.example.com/proxy/", "/v1/models", "https://api.example.com/proxy/v1/models"},
	}

	for _, tt := range tests {
		c, err := New(tt.base, nil)
		if err != nil {
			t.Fatalf("New(%q) err=%v", tt.base, err)
		}
		if got := c.Resolve(tt.path); got != tt.want {
			t.Errorf("Resolve(%q, %q)=%q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestDoJSON_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = c.DoJSON(ctx, http.MethodPost, "/v1/test", nil, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}
