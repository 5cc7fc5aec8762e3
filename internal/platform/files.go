package platform

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0o755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// CopyFile copies src to dst, replacing dst if it exists. Parent directories
// of dst are created as needed.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &model.FilesystemError{Op: "open", Path: src, Err: err}
	}
	defer in.Close()

	if err := CreateDirectoryIfNotExists(filepath.Dir(dst)); err != nil {
		return &model.FilesystemError{Op: "mkdir", Path: filepath.Dir(dst), Err: err}
	}

	out, err := os.Create(dst)
	if err != nil {
		return &model.FilesystemError{Op: "create", Path: dst, Err: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return &model.FilesystemError{Op: "copy", Path: dst, Err: err}
	}

	if err := out.Close(); err != nil {
		return &model.FilesystemError{Op: "close", Path: dst, Err: err}
	}
	return nil
}

// CopyDir recursively copies the contents of src into dst, preserving the
// relative structure. The copy is not transactional: a failure partway
// leaves dst partially populated and is surfaced to the caller.
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return &model.FilesystemError{Op: "stat", Path: src, Err: err}
	}
	if !srcInfo.IsDir() {
		return &model.FilesystemError{Op: "copydir", Path: src, Err: fmt.Errorf("not a directory")}
	}

	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return &model.FilesystemError{Op: "walk", Path: path, Err: err}
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return &model.FilesystemError{Op: "rel", Path: path, Err: err}
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, DefaultDirPermissions); err != nil {
				return &model.FilesystemError{Op: "mkdir", Path: target, Err: err}
			}
			return nil
		}

		return CopyFile(path, target)
	})
}

// RemoveIfExists removes a file or directory tree. A missing path is a
// success, which keeps uninstall idempotent.
func RemoveIfExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := os.RemoveAll(path); err != nil {
		return &model.FilesystemError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

// OpenDirInManager opens the directory in the system file manager
func OpenDirInManager(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
