package famstock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDiskCacheServesWithinWindow(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		io.WriteString(w, "payload")
	}))
	defer srv.Close()

	now := time.Now()
	client := &http.Client{Transport: &diskCache{
		base:   http.DefaultTransport,
		window: time.Hour,
		now:    func() time.Time { return now },
	}}

	for range 3 {
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatal(err)
		}
		b, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil || string(b) != "payload" {
			t.Fatalf("body = %q (%v)", b, err)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("upstream hit %d times, want 1 within the freshness window", hits.Load())
	}

	// crossing the window boundary invalidates the entry
	now = now.Add(2 * time.Hour)
	if _, err := client.Get(srv.URL); err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 2 {
		t.Errorf("upstream hit %d times, want 2 after the window elapsed", hits.Load())
	}
}

func TestDiskCacheSkipsFailures(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	now := time.Now()
	client := &http.Client{Transport: &diskCache{
		base:   http.DefaultTransport,
		window: time.Hour,
		now:    func() time.Time { return now },
	}}
	for range 2 {
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
	}
	if hits.Load() != 2 {
		t.Errorf("upstream hit %d times, want 2: error responses must not be cached", hits.Load())
	}
}
