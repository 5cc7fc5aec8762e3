package extract

import (
	"context"
)

// Extractor defines the interface for the extraction service.
type Extractor interface {
	Extract(ctx context.Context, archivePath, format, targetDir, innerSubPath string) error
}
