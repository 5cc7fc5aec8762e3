package manifest

import (
	"context"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
)

// Fetcher defines the interface for the manifest client.
type Fetcher interface {
	Fetch(ctx context.Context, opts Options) (*model.InstallManifest, error)
}
