package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCopyFile(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src.txt")
	dst := filepath.Join(tempDir, "nested", "dir", "dst.txt")

	if err := os.WriteFile(src, []byte("font bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read copied file: %v", err)
	}
	if string(data) != "font bytes" {
		t.Errorf("Expected copied content 'font bytes', got %q", string(data))
	}
}

func TestCopyFile_ReplacesExisting(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src.txt")
	dst := filepath.Join(tempDir, "dst.txt")

	if err := os.WriteFile(src, []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old content that is longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	data, _ := os.ReadFile(dst)
	if string(data) != "new" {
		t.Errorf("Expected destination to be replaced, got %q", string(data))
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	tempDir := t.TempDir()

	err := CopyFile(filepath.Join(tempDir, "missing.txt"), filepath.Join(tempDir, "dst.txt"))
	if err == nil {
		t.Fatal("Expected error for missing source")
	}

	var fsErr *model.FilesystemError
	if !errors.As(err, &fsErr) {
		t.Errorf("Expected FilesystemError, got %T", err)
	}
}

func TestCopyDir_PreservesStructure(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src")
	dst := filepath.Join(tempDir, "dst")

	files := map[string]string{
		"a.txt":             "top",
		"sub/b.txt":         "nested",
		"sub/deeper/c.json": `{"k":"v"}`,
	}
	for rel, content := range files {
		path := filepath.Join(src, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir failed: %v", err)
	}

	for rel, content := range files {
		path := filepath.Join(dst, filepath.FromSlash(rel))
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Expected %s to exist after copy: %v", rel, err)
		}
		if string(data) != content {
			t.Errorf("File %s: expected %q, got %q", rel, content, string(data))
		}
	}
}

func TestCopyDir_SourceNotDirectory(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := CopyDir(src, filepath.Join(tempDir, "dst"))
	if err == nil {
		t.Fatal("Expected error when source is a file")
	}
}

func TestRemoveIfExists(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "content")

	if err := os.MkdirAll(filepath.Join(target, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "sub", "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := RemoveIfExists(target); err != nil {
		t.Fatalf("RemoveIfExists failed: %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("Expected target to be removed")
	}

	// Removing again is a no-op success
	if err := RemoveIfExists(target); err != nil {
		t.Errorf("Expected second removal to succeed, got %v", err)
	}
}
