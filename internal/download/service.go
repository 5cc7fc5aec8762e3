package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/logging"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
)

// Transport tuning for archive downloads
const (
	// ChunkSize is the streaming buffer size; cancellation is polled at
	// this granularity
	ChunkSize = 64 * 1024

	ConnectTimeout = 5 * time.Second
	ReadTimeout    = 60 * time.Second
)

// Service handles archive download operations
type Service struct {
	client     *http.Client
	retryDelay time.Duration
	logger     zerolog.Logger
}

// NewService creates a new download service
func NewService(logger zerolog.Logger) *Service {
	dialer := &net.Dialer{Timeout: ConnectTimeout}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   ConnectTimeout,
		ResponseHeaderTimeout: ReadTimeout,
	}

	return &Service{
		client:     &http.Client{Transport: transport},
		retryDelay: model.DownloadRetryDelay,
		logger:     logging.ComponentLogger(logger, "download"),
	}
}

// Download streams the task's URL into its destination path. Timeout and
// connection failures are retried up to the task's attempt limit with a fixed
// delay; from the second attempt onward a configured backup URL takes over
// permanently. Any other failure is terminal on first occurrence.
//
// Cancellation is checked before each chunk is written. On cancellation the
// partial file stays on disk for the caller's cleanup step and the result is
// model.ErrCancelled, which is not a failure.
func (s *Service) Download(ctx context.Context, task *model.DownloadTask, onProgress ProgressFunc) error {
	task.MarkStarted()

	var lastErr error
	useBackup := false

	for attempt := 1; attempt <= model.DownloadMaxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				task.MarkFinished(model.TaskStatusCancelled)
				return model.ErrCancelled
			}

			// Once present, the backup URL takes over for every remaining
			// attempt
			if task.BackupURL != "" && !useBackup {
				useBackup = true
				s.logger.Info().Str("url", task.BackupURL).Msg("switching to backup link")
			}
		}

		currentURL := task.URL
		if useBackup {
			currentURL = task.BackupURL
		}

		err := s.downloadOnce(ctx, currentURL, task, onProgress)
		if err == nil {
			task.Percent = 100
			task.MarkFinished(model.TaskStatusCompleted)
			return nil
		}

		if errors.Is(err, model.ErrCancelled) {
			task.MarkFinished(model.TaskStatusCancelled)
			s.logger.Info().Str("file", task.FileName()).Msg("download cancelled")
			return model.ErrCancelled
		}

		var transportErr *model.TransportError
		if errors.As(err, &transportErr) && transportErr.Retryable() {
			lastErr = err
			s.logger.Warn().Err(err).
				Int("attempt", attempt).
				Int("max", model.DownloadMaxRetries).
				Msg("download attempt failed")
			continue
		}

		task.LastError = err.Error()
		task.MarkFinished(model.TaskStatusFailed)
		return err
	}

	task.LastError = lastErr.Error()
	task.MarkFinished(model.TaskStatusFailed)
	return lastErr
}

// downloadOnce performs a single attempt against one URL
func (s *Service) downloadOnce(ctx context.Context, rawURL string, task *model.DownloadTask, onProgress ProgressFunc) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &model.TransportError{Kind: model.TransportOther, URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", model.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return model.ErrCancelled
		}
		return &model.TransportError{Kind: model.ClassifyTransport(err), URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &model.TransportError{
			Kind: model.TransportOther,
			URL:  rawURL,
			Err:  fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	// A fresh attempt truncates whatever the previous one left behind
	out, err := os.Create(task.DestPath)
	if err != nil {
		return &model.FilesystemError{Op: "create", Path: task.DestPath, Err: err}
	}
	defer out.Close()

	total := resp.ContentLength
	task.TotalBytes = total

	var written int64
	buf := make([]byte, ChunkSize)
	for {
		select {
		case <-ctx.Done():
			// The partial file stays behind; cleanup belongs to the caller
			return model.ErrCancelled
		default:
		}

		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return &model.FilesystemError{Op: "write", Path: task.DestPath, Err: writeErr}
			}
			written += int64(n)

			if total > 0 && onProgress != nil {
				percent := int(written * 100 / total)
				if percent > 100 {
					percent = 100
				}
				task.Percent = percent
				onProgress(percent)
			}
		}

		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				return model.ErrCancelled
			}
			return &model.TransportError{Kind: model.ClassifyTransport(readErr), URL: rawURL, Err: readErr}
		}
	}
}
