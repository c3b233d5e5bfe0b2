package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const twoEvents = `{"features": [
  {"id": "a", "properties": {"place": "Los Angeles region", "mag": 4.5, "time": 200, "url": "u-a"}, "geometry": {"coordinates": [-118, 34, 5]}},
  {"id": "b", "properties": {"place": "Tokyo region", "mag": 6.1, "time": 100, "url": "u-b"}, "geometry": {"coordinates": [139, 35, 10]}},
  {"id": "c", "properties": {"place": "broken", "mag": 1.0}, "geometry": {"coordinates": [1, 1, 1]}}
]}`

func TestFetchSuccess(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		_, _ = w.Write([]byte(twoEvents))
	}))
	defer srv.Close()

	c := New(Options{URL: srv.URL, UserAgent: "quake/test"})
	res, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(res.Events))
	}
	if res.Skipped != 1 {
		t.Fatalf("expected 1 skipped feature, got %d", res.Skipped)
	}
	if res.Feed.Name != DefaultFeed {
		t.Fatalf("expected default feed, got %q", res.Feed.Name)
	}
	if gotUA != "quake/test" {
		t.Fatalf("expected user agent to be sent, got %q", gotUA)
	}
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(Options{URL: srv.URL}).Fetch(context.Background())
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
	if err.Error() != "Failed to fetch earthquake data" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := New(Options{URL: srv.URL}).Fetch(context.Background())
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if errors.Is(err, ErrFetchFailed) {
		t.Fatalf("decode errors should carry the underlying message, got %v", err)
	}
}

func TestFetchCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(Options{URL: srv.URL}).Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	f, err := Lookup("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson"
	if f.URL() != want {
		t.Fatalf("expected %s, got %s", want, f.URL())
	}
	if _, err := Lookup("ALL_WEEK"); err != nil {
		t.Fatalf("lookup should be case-insensitive: %v", err)
	}
	if _, err := Lookup("everything"); err == nil || !strings.Contains(err.Error(), "unknown feed") {
		t.Fatalf("expected unknown feed error, got %v", err)
	}
}

func TestStatusResolvesOnce(t *testing.T) {
	s := Status{}
	if s.Phase != Loading {
		t.Fatalf("zero status should be loading")
	}
	failed, ok := s.Resolve(ErrFetchFailed)
	if !ok || failed.Phase != Failed || failed.Message != "Failed to fetch earthquake data" {
		t.Fatalf("unexpected failed status %+v ok=%t", failed, ok)
	}
	again, ok := failed.Resolve(nil)
	if ok || again != failed {
		t.Fatalf("terminal status must not transition, got %+v ok=%t", again, ok)
	}
	ready, ok := Status{}.Resolve(nil)
	if !ok || ready.Phase != Ready {
		t.Fatalf("expected ready, got %+v", ready)
	}
}
