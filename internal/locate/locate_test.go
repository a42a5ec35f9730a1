package locate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","lat":41.9028,"lon":12.4964,"city":"Rome"}`))
	}))
	defer srv.Close()

	c := NewClient(WithURL(srv.URL))
	loc, err := c.Lookup(context.Background())
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}

	if loc.Lat != 41.9028 || loc.Lon != 12.4964 {
		t.Errorf("coordinates = (%v, %v), want (41.9028, 12.4964)", loc.Lat, loc.Lon)
	}
	if loc.City != "Rome" {
		t.Errorf("city = %q, want Rome", loc.City)
	}
}

func TestLookup_ServiceFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	c := NewClient(WithURL(srv.URL))
	if _, err := c.Lookup(context.Background()); err == nil {
		t.Fatal("Lookup() succeeded on a fail-status response")
	}
}

func TestLookup_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(WithURL(srv.URL))
	if _, err := c.Lookup(context.Background()); err == nil {
		t.Fatal("Lookup() succeeded on HTTP 429")
	}
}

func TestLookup_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":`))
	}))
	defer srv.Close()

	c := NewClient(WithURL(srv.URL))
	if _, err := c.Lookup(context.Background()); err == nil {
		t.Fatal("Lookup() succeeded on truncated JSON")
	}
}

func TestLookup_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(WithURL(srv.URL))
	if _, err := c.Lookup(ctx); err == nil {
		t.Fatal("Lookup() ignored a canceled context")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()
	if c.url != DefaultURL {
		t.Errorf("url = %q, want %q", c.url, DefaultURL)
	}
	if c.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.timeout, DefaultTimeout)
	}
	if c.client == nil {
		t.Error("client not initialized")
	}
}
