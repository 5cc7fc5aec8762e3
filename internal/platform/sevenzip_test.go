package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestSevenZipPath_FindsBinaryOnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH override trick needs a unix shell")
	}

	binDir := t.TempDir()
	fake := filepath.Join(binDir, "7z")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PATH", binDir)

	path, err := SevenZipPath()
	if err != nil {
		t.Fatalf("Expected fake binary to be found: %v", err)
	}
	if path != fake {
		t.Errorf("Expected path %s, got %s", fake, path)
	}
}

func TestSevenZipPath_MissingBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH override trick needs a unix shell")
	}

	t.Setenv("PATH", t.TempDir())

	_, err := SevenZipPath()
	if err == nil {
		t.Fatal("Expected error when no candidate binary exists")
	}
	if !strings.Contains(err.Error(), "7-Zip") {
		t.Errorf("Expected error to name the missing tool, got %v", err)
	}
}

func TestOutputTail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLines int
		expected string
	}{
		{"short output kept whole", "line1\nline2", 5, "line1\nline2"},
		{"long output truncated", "a\nb\nc\nd\ne", 2, "d\ne"},
		{"blank lines dropped", "a\n\n\nb\n", 5, "a\nb"},
		{"windows line endings trimmed", "a\r\nb\r\n", 5, "a\nb"},
		{"empty input", "", 3, ""},
	}

	for _, test := range tests {
		result := OutputTail(test.input, test.maxLines)
		if result != test.expected {
			t.Errorf("%s: OutputTail() = %q, expected %q", test.name, result, test.expected)
		}
	}
}
