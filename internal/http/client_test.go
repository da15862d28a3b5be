package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("cover bytes"))
		default:
			nethttp.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient()

	t.Run("success", func(t *testing.T) {
		body, err := client.Fetch(context.Background(), srv.URL+"/ok")
		if err != nil {
			t.Fatalf("Fetch returned error: %v", err)
		}
		if string(body) != "cover bytes" {
			t.Errorf("body = %q, want %q", body, "cover bytes")
		}
	})

	t.Run("non-200 is a network failure", func(t *testing.T) {
		_, err := client.Fetch(context.Background(), srv.URL+"/missing")
		if !errors.Is(err, ErrNetwork) {
			t.Errorf("error = %v, want ErrNetwork", err)
		}
	})

	t.Run("unreachable host is a network failure", func(t *testing.T) {
		_, err := client.Fetch(context.Background(), "http://127.0.0.1:1/")
		if !errors.Is(err, ErrNetwork) {
			t.Errorf("error = %v, want ErrNetwork", err)
		}
	})

	t.Run("unsupported scheme yields no result and no error", func(t *testing.T) {
		body, err := client.Fetch(context.Background(), "ftp://example.com/file")
		if body != nil || err != nil {
			t.Errorf("Fetch = (%v, %v), want (nil, nil)", body, err)
		}
	})
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		switch r.URL.Path {
		case "/good":
			w.Write([]byte(`{"info":{"version":"1.2.3"}}`))
		case "/garbage":
			w.Write([]byte(`<html>not json</html>`))
		}
	}))
	defer srv.Close()

	client := NewClient()

	t.Run("decodes JSON", func(t *testing.T) {
		var payload struct {
			Info struct {
				Version string `json:"version"`
			} `json:"info"`
		}
		if err := client.FetchJSON(context.Background(), srv.URL+"/good", &payload); err != nil {
			t.Fatalf("FetchJSON returned error: %v", err)
		}
		if payload.Info.Version != "1.2.3" {
			t.Errorf("version = %q, want %q", payload.Info.Version, "1.2.3")
		}
	})

	t.Run("garbage is a malformed response", func(t *testing.T) {
		var payload map[string]any
		err := client.FetchJSON(context.Background(), srv.URL+"/garbage", &payload)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("error = %v, want ErrMalformedResponse", err)
		}
	})
}

func TestProbe(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodHead {
			t.Errorf("probe used method %s, want HEAD", r.Method)
		}
	}))
	defer srv.Close()

	client := NewClient()

	if !client.Probe(context.Background(), srv.URL) {
		t.Error("Probe(reachable) = false, want true")
	}
	if client.Probe(context.Background(), "http://127.0.0.1:1/") {
		t.Error("Probe(unreachable) = true, want false")
	}
}
