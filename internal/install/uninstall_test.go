package install

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/platform"
)

func TestUninstallRemovesContentAndMarker(t *testing.T) {
	gameDir := t.TempDir()

	contentDir := platform.ContentDir(gameDir, "LLC-zh-CN")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		t.Fatalf("Failed to create content dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(contentDir, "strings.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("Failed to write content file: %v", err)
	}
	if err := os.WriteFile(platform.MarkerPath(gameDir), []byte(`{"lang":"LLC-zh-CN"}`), 0o644); err != nil {
		t.Fatalf("Failed to write marker: %v", err)
	}

	otherDir := platform.ContentDir(gameDir, "LLC-other")
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("Failed to create sibling dir: %v", err)
	}

	if err := Uninstall(gameDir, "LLC-zh-CN"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := os.Stat(contentDir); !os.IsNotExist(err) {
		t.Error("Expected content directory to be removed")
	}
	if _, err := os.Stat(platform.MarkerPath(gameDir)); !os.IsNotExist(err) {
		t.Error("Expected marker file to be removed")
	}
	if _, err := os.Stat(otherDir); err != nil {
		t.Error("Expected sibling release to survive")
	}
}

func TestUninstallIdempotent(t *testing.T) {
	gameDir := t.TempDir()

	if err := Uninstall(gameDir, "LLC-zh-CN"); err != nil {
		t.Fatalf("Expected success on missing content, got %v", err)
	}
	if err := Uninstall(gameDir, "LLC-zh-CN"); err != nil {
		t.Fatalf("Expected success on repeat call, got %v", err)
	}
}

func TestUninstallEmptyNameUsesDefault(t *testing.T) {
	gameDir := t.TempDir()

	defaultDir := platform.ContentDir(gameDir, model.DefaultContentName)
	if err := os.MkdirAll(defaultDir, 0o755); err != nil {
		t.Fatalf("Failed to create content dir: %v", err)
	}

	if err := Uninstall(gameDir, ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := os.Stat(defaultDir); !os.IsNotExist(err) {
		t.Error("Expected default-named content directory to be removed")
	}
}
