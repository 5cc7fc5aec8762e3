package install

import (
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/platform"
)

// Uninstall removes the installed content directory and the config marker.
// An empty name falls back to the default release name. Both removals are
// independently idempotent: absence is success. A removal failure is
// reported and not retried.
func Uninstall(gamePath, name string) error {
	if name == "" {
		name = model.DefaultContentName
	}

	if err := platform.RemoveIfExists(platform.ContentDir(gamePath, name)); err != nil {
		return err
	}
	return platform.RemoveIfExists(platform.MarkerPath(gamePath))
}
