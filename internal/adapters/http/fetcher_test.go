package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	logadapter "github.com/qbio/feedship/internal/adapters/log"
)

func newTestFetcher(attempts int) *Fetcher {
	cfg := DefaultConfig()
	cfg.Attempts = attempts
	f := NewFetcher(http.DefaultClient, logadapter.NewNoopLogger(), cfg)
	f.sleep = func(time.Duration) {}
	return f
}

func TestFetcher_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept-Language"); got != "en-US,en;q=0.9" {
			t.Errorf("Accept-Language = %q", got)
		}
		if got := r.Header.Get("Referer"); got != "https://www.google.com/" {
			t.Errorf("Referer = %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent not set")
		}
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	body, err := newTestFetcher(5).FetchHTML(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchHTML() error = %v", err)
	}
	if body != "<html>ok</html>" {
		t.Errorf("body = %q", body)
	}
}

func TestFetcher_RetriesTransientStatuses(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	body, err := newTestFetcher(5).FetchHTML(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchHTML() error = %v", err)
	}
	if body != "recovered" {
		t.Errorf("body = %q", body)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d requests, want 3", got)
	}
}

func TestFetcher_GivesUpAfterAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestFetcher(3).FetchHTML(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("FetchHTML() error = nil, want exhausted retries")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d requests, want 3", got)
	}
}

func TestFetcher_NoRetryOnOtherStatuses(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestFetcher(5).FetchHTML(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("FetchHTML() error = nil, want 404 failure")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server saw %d requests, want 1 (no retry)", got)
	}
}

func TestFetcher_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestFetcher(5).FetchHTML(ctx, srv.URL); err == nil {
		t.Fatal("FetchHTML() error = nil, want context error")
	}
}

func TestTransientStatus(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{http.StatusForbidden, true},
		{http.StatusServiceUnavailable, true},
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, false},
		{http.StatusOK, false},
	}
	for _, tt := range tests {
		if got := transientStatus(tt.code); got != tt.want {
			t.Errorf("transientStatus(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestBackoff_Growth(t *testing.T) {
	var slept []time.Duration
	b := newBackoff(time.Second, 4*time.Second, func(d time.Duration) { slept = append(slept, d) })

	for i := 0; i < 4; i++ {
		b.Sleep()
	}

	if len(slept) != 4 {
		t.Fatalf("slept %d times", len(slept))
	}
	// Jitter is ±20%, so each sleep stays within those bounds.
	wants := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 4 * time.Second}
	for i, want := range wants {
		lo := time.Duration(float64(want) * 0.8)
		hi := time.Duration(float64(want) * 1.2)
		if slept[i] < lo || slept[i] > hi {
			t.Errorf("sleep %d = %v, want within [%v, %v]", i, slept[i], lo, hi)
		}
	}

	b.Reset()
	if b.current != time.Second {
		t.Errorf("after Reset current = %v, want 1s", b.current)
	}
}
