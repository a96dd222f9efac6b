package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// net/http keeps idle connections in a background goroutine.
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{BaseURL: srv.URL, Language: "en"}, srv.Client())
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/en/weapon.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("User-Agent"); got != "tfd-search" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Header().Set("ETag", `"abc123"`)
		w.Write([]byte(`[{"weapon_id":"1"}]`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	doc, err := c.Fetch(context.Background(), ResourceWeapon, "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if doc.ETag != `"abc123"` {
		t.Errorf("ETag = %q", doc.ETag)
	}
	if string(doc.Body) != `[{"weapon_id":"1"}]` {
		t.Errorf("Body = %s", doc.Body)
	}
}

func TestFetchNotModified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") != `"abc123"` {
			t.Errorf("If-None-Match = %q", r.Header.Get("If-None-Match"))
		}
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Fetch(context.Background(), ResourceStat, `"abc123"`)
	if !errors.Is(err, ErrNotModified) {
		t.Errorf("error = %v, want ErrNotModified", err)
	}
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Fetch(context.Background(), ResourceModule, "")

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.Code != http.StatusServiceUnavailable {
		t.Errorf("Code = %d", se.Code)
	}
}

func TestFetchContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(srv)
	if _, err := c.Fetch(ctx, ResourceWeapon, ""); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestURL(t *testing.T) {
	c := NewClient(Config{Language: "ko"}, nil)
	want := "https://open.api.nexon.com/static/tfd/meta/ko/module.json"
	if got := c.URL(ResourceModule); got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
