package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/logging"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
)

// CanonicalManifestURL is the published location of the install manifest
const CanonicalManifestURL = "https://raw.githubusercontent.com/EveGlowLuna/LLC-TemporaryReplacer/refs/heads/main/install_info.json"

// DefaultMirrorBase is the relay used when mirroring is enabled without a
// custom proxy
const DefaultMirrorBase = "https://gh-proxy.com"

// Manifest fetch policy
const (
	FetchMaxRetries = 3
	FetchRetryDelay = 2 * time.Second

	ConnectTimeout = 5 * time.Second
	ReadTimeout    = 30 * time.Second
)

// Options selects how remote URLs are reached
type Options struct {
	UseMirror      bool
	CustomProxyURL string
}

// RewriteURL routes a URL through the configured relay. With mirroring off the
// URL passes through unchanged. With mirroring on, the relay base is joined
// with the original host and path; a custom proxy replaces the default base.
// URLs that cannot be parsed pass through unchanged.
func RewriteURL(rawURL string, opts Options) string {
	if !opts.UseMirror {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}

	base := DefaultMirrorBase
	if opts.CustomProxyURL != "" {
		base = strings.TrimRight(opts.CustomProxyURL, "/")
	}

	return base + "/" + parsed.Host + parsed.Path
}

// Client fetches the install manifest
type Client struct {
	client      *http.Client
	manifestURL string
	retryDelay  time.Duration
	logger      zerolog.Logger
}

// NewClient creates a new manifest client
func NewClient(logger zerolog.Logger) *Client {
	dialer := &net.Dialer{Timeout: ConnectTimeout}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   ConnectTimeout,
		ResponseHeaderTimeout: ReadTimeout,
	}

	return &Client{
		client:      &http.Client{Transport: transport},
		manifestURL: CanonicalManifestURL,
		retryDelay:  FetchRetryDelay,
		logger:      logging.ComponentLogger(logger, "manifest"),
	}
}

// Fetch retrieves and parses the install manifest. Timeout and connection
// failures are retried up to the attempt limit with a fixed delay; a bad
// status, an unreadable body classified otherwise, or a parse failure is
// terminal on first occurrence.
func (c *Client) Fetch(ctx context.Context, opts Options) (*model.InstallManifest, error) {
	requestURL := RewriteURL(c.manifestURL, opts)
	c.logger.Debug().Str("url", requestURL).Msg("fetching install manifest")

	var lastErr error
	for attempt := 1; attempt <= FetchMaxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return nil, model.ErrCancelled
			}
		}

		manifest, err := c.fetchOnce(ctx, requestURL)
		if err == nil {
			c.logger.Info().Str("name", manifest.Name).Msg("manifest retrieved")
			return manifest, nil
		}

		if errors.Is(err, model.ErrCancelled) {
			return nil, model.ErrCancelled
		}

		var transportErr *model.TransportError
		if errors.As(err, &transportErr) && transportErr.Retryable() {
			lastErr = err
			c.logger.Warn().Err(err).
				Int("attempt", attempt).
				Int("max", FetchMaxRetries).
				Msg("manifest fetch attempt failed")
			continue
		}

		return nil, err
	}

	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, requestURL string) (*model.InstallManifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &model.TransportError{Kind: model.TransportOther, URL: requestURL, Err: err}
	}
	req.Header.Set("User-Agent", model.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, model.ErrCancelled
		}
		return nil, &model.TransportError{Kind: model.ClassifyTransport(err), URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.TransportError{
			Kind: model.TransportOther,
			URL:  requestURL,
			Err:  fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, model.ErrCancelled
		}
		return nil, &model.TransportError{Kind: model.ClassifyTransport(err), URL: requestURL, Err: err}
	}

	return model.ParseManifest(body)
}
