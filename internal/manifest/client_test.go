package manifest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
)

func newTestClient(manifestURL string) *Client {
	client := NewClient(zerolog.Nop())
	client.manifestURL = manifestURL
	client.retryDelay = 10 * time.Millisecond
	return client
}

func TestRewriteURL(t *testing.T) {
	canonical := "https://raw.githubusercontent.com/a/b/main/install_info.json"

	tests := []struct {
		name     string
		rawURL   string
		opts     Options
		expected string
	}{
		{
			name:     "mirror disabled",
			rawURL:   canonical,
			opts:     Options{},
			expected: canonical,
		},
		{
			name:     "proxy ignored when mirror disabled",
			rawURL:   canonical,
			opts:     Options{CustomProxyURL: "https://proxy.example/"},
			expected: canonical,
		},
		{
			name:     "default mirror",
			rawURL:   canonical,
			opts:     Options{UseMirror: true},
			expected: "https://gh-proxy.com/raw.githubusercontent.com/a/b/main/install_info.json",
		},
		{
			name:     "custom proxy with trailing slash",
			rawURL:   canonical,
			opts:     Options{UseMirror: true, CustomProxyURL: "https://proxy.example/"},
			expected: "https://proxy.example/raw.githubusercontent.com/a/b/main/install_info.json",
		},
		{
			name:     "custom proxy without trailing slash",
			rawURL:   canonical,
			opts:     Options{UseMirror: true, CustomProxyURL: "https://proxy.example"},
			expected: "https://proxy.example/raw.githubusercontent.com/a/b/main/install_info.json",
		},
		{
			name:     "unparseable url passes through",
			rawURL:   "://missing-scheme",
			opts:     Options{UseMirror: true},
			expected: "://missing-scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RewriteURL(tt.rawURL, tt.opts); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"name": "LLC-zh-CN",
			"content-link": "https://example.com/pack.zip",
			"content-type": "zip",
			"font-link": "https://example.com/font.7z",
			"font-type": "7z",
			"absolutePath": "payload/lang"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	manifest, err := client.Fetch(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if manifest.Name != "LLC-zh-CN" {
		t.Errorf("Expected name 'LLC-zh-CN', got '%s'", manifest.Name)
	}
	if manifest.ContentLink != "https://example.com/pack.zip" {
		t.Errorf("Expected content link, got '%s'", manifest.ContentLink)
	}
	if manifest.ContentType != "zip" {
		t.Errorf("Expected content type 'zip', got '%s'", manifest.ContentType)
	}
	if !manifest.HasFont() {
		t.Error("Expected manifest to carry a font link")
	}
	if manifest.AbsolutePath != "payload/lang" {
		t.Errorf("Expected absolutePath 'payload/lang', got '%s'", manifest.AbsolutePath)
	}
}

func TestFetchAppliesNameFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content-link": "https://example.com/pack.zip", "content-type": "zip"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	manifest, err := client.Fetch(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if manifest.Name != model.DefaultContentName {
		t.Errorf("Expected fallback name '%s', got '%s'", model.DefaultContentName, manifest.Name)
	}
}

func TestFetchRetriesConnectionFailure(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= 2 {
			conn, _, err := w.(http.Hijacker).Hijack()
			if err != nil {
				t.Errorf("Expected hijack to succeed, got %v", err)
				return
			}
			conn.Close()
			return
		}
		w.Write([]byte(`{"name": "LLC-zh-CN", "content-link": "https://example.com/pack.zip", "content-type": "zip"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	manifest, err := client.Fetch(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Expected third attempt to succeed, got %v", err)
	}

	if got := hits.Load(); got != 3 {
		t.Errorf("Expected 3 attempts, got %d", got)
	}
	if manifest.Name != "LLC-zh-CN" {
		t.Errorf("Expected name 'LLC-zh-CN', got '%s'", manifest.Name)
	}
}

func TestFetchParseErrorNotRetried(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Fetch(context.Background(), Options{})
	if err == nil {
		t.Fatal("Expected parse error, got nil")
	}

	var parseErr *model.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %T", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("Expected exactly 1 attempt for parse failure, got %d", got)
	}
}

func TestFetchBadStatusNotRetried(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Fetch(context.Background(), Options{})
	if err == nil {
		t.Fatal("Expected transport error, got nil")
	}

	var transportErr *model.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Expected TransportError, got %T", err)
	}
	if transportErr.Kind != model.TransportOther {
		t.Errorf("Expected kind other, got %s", transportErr.Kind)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("Expected exactly 1 attempt for bad status, got %d", got)
	}
}
