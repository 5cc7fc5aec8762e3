package download

import (
	"context"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
)

// ProgressFunc receives the running percentage (0 to 100) after each chunk.
// It is never called when the server does not announce a content length.
type ProgressFunc func(percent int)

// Downloader defines the interface for the archive fetch service.
type Downloader interface {
	// Download streams the task's URL to its destination path. It returns
	// model.ErrCancelled when the context is cancelled mid-transfer.
	Download(ctx context.Context, task *model.DownloadTask, onProgress ProgressFunc) error
}
