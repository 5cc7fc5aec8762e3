package extract

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/logging"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/platform"
)

// Archive format and tool constants
const (
	// Archive formats accepted from the manifest
	FormatZip    = "zip"
	FormatSevenZ = "7z"

	// 7-Zip invocation
	SevenZipExtractCommand = "x"
	SevenZipOutputPrefix   = "-o"
	SevenZipYesFlag        = "-y"
	SevenZipToolName       = "7z"

	// Staging directory prefix
	StagingPrefix = "staging-"

	// Diagnostic lines kept from a failed tool run
	OutputTailLines = 20
)

// Service handles archive extraction operations
type Service struct {
	logger zerolog.Logger
}

// NewService creates a new extraction service
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		logger: logging.ComponentLogger(logger, "extract"),
	}
}

// Extract unpacks the archive into targetDir according to its format. When
// innerSubPath is non-empty the archive is unpacked into a staging directory
// first, the nested payload located, and its contents copied into targetDir;
// the staging directory is removed on every path out.
func (s *Service) Extract(ctx context.Context, archivePath, format, targetDir, innerSubPath string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != FormatZip && format != FormatSevenZ {
		return &model.ValidationError{Reason: fmt.Sprintf("unsupported archive format: %q", format)}
	}

	if innerSubPath == "" {
		s.logger.Info().Str("archive", archivePath).Str("target", targetDir).Msg("extracting archive")
		return s.unpack(ctx, archivePath, format, targetDir)
	}

	stagingDir := filepath.Join(filepath.Dir(archivePath), stagingName())
	if err := os.MkdirAll(stagingDir, platform.DefaultDirPermissions); err != nil {
		return &model.FilesystemError{Op: "mkdir", Path: stagingDir, Err: err}
	}
	defer func() {
		if err := os.RemoveAll(stagingDir); err != nil {
			s.logger.Warn().Err(err).Str("path", stagingDir).Msg("failed to remove staging directory")
		}
	}()

	s.logger.Info().Str("archive", archivePath).Str("staging", stagingDir).Msg("extracting to staging")
	if err := s.unpack(ctx, archivePath, format, stagingDir); err != nil {
		return err
	}

	payloadDir := filepath.Join(stagingDir, filepath.FromSlash(innerSubPath))
	info, err := os.Stat(payloadDir)
	if err != nil || !info.IsDir() {
		return &model.ValidationError{Reason: "archive layout mismatch"}
	}

	return platform.CopyDir(payloadDir, targetDir)
}

// unpack dispatches to the format-specific decompressor
func (s *Service) unpack(ctx context.Context, archivePath, format, destDir string) error {
	switch format {
	case FormatZip:
		return s.extractZip(ctx, archivePath, destDir)
	case FormatSevenZ:
		return s.extractSevenZip(ctx, archivePath, destDir)
	default:
		return &model.ValidationError{Reason: fmt.Sprintf("unsupported archive format: %q", format)}
	}
}

// extractZip unpacks a zip archive in-process. Cancellation is checked before
// each entry. Entries escaping destDir are rejected by the per-entry guard,
// so ErrInsecurePath from the reader is not treated as fatal.
func (s *Service) extractZip(ctx context.Context, archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return &model.ExtractionError{Tool: FormatZip, Err: err}
	}
	defer reader.Close()

	if err := os.MkdirAll(destDir, platform.DefaultDirPermissions); err != nil {
		return &model.FilesystemError{Op: "mkdir", Path: destDir, Err: err}
	}

	cleanDest := filepath.Clean(destDir)
	for _, entry := range reader.File {
		select {
		case <-ctx.Done():
			return model.ErrCancelled
		default:
		}

		if err := s.extractZipEntry(entry, cleanDest); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) extractZipEntry(entry *zip.File, destDir string) error {
	target := filepath.Join(destDir, filepath.FromSlash(entry.Name))
	if target != destDir && !strings.HasPrefix(target, destDir+string(os.PathSeparator)) {
		return &model.ExtractionError{Tool: FormatZip, Err: fmt.Errorf("entry escapes target directory: %q", entry.Name)}
	}

	if entry.FileInfo().IsDir() {
		if err := os.MkdirAll(target, platform.DefaultDirPermissions); err != nil {
			return &model.FilesystemError{Op: "mkdir", Path: target, Err: err}
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), platform.DefaultDirPermissions); err != nil {
		return &model.FilesystemError{Op: "mkdir", Path: filepath.Dir(target), Err: err}
	}

	in, err := entry.Open()
	if err != nil {
		return &model.ExtractionError{Tool: FormatZip, Err: err}
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode())
	if err != nil {
		return &model.FilesystemError{Op: "create", Path: target, Err: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return &model.FilesystemError{Op: "write", Path: target, Err: err}
	}
	return out.Close()
}

// extractSevenZip shells out to a 7-Zip compatible binary. A non-zero exit is
// a hard failure carrying the tool's diagnostic tail.
func (s *Service) extractSevenZip(ctx context.Context, archivePath, destDir string) error {
	tool, err := platform.SevenZipPath()
	if err != nil {
		return &model.ExtractionError{Tool: SevenZipToolName, Err: err}
	}

	if err := os.MkdirAll(destDir, platform.DefaultDirPermissions); err != nil {
		return &model.FilesystemError{Op: "mkdir", Path: destDir, Err: err}
	}

	args := buildSevenZipArgs(archivePath, destDir)
	cmd := exec.CommandContext(ctx, tool, args...)

	output, err := cmd.CombinedOutput()
	if ctx.Err() == context.Canceled {
		return model.ErrCancelled
	}
	if err != nil {
		tail := platform.OutputTail(string(output), OutputTailLines)
		s.logger.Error().Str("tool", tool).Str("output", tail).Msg("decompressor failed")
		return &model.ExtractionError{Tool: SevenZipToolName, Output: tail, Err: err}
	}
	return nil
}

// buildSevenZipArgs builds the 7z extraction arguments
func buildSevenZipArgs(archivePath, destDir string) []string {
	return []string{
		SevenZipExtractCommand,         // Extract with full paths
		archivePath,                    // Archive file
		SevenZipOutputPrefix + destDir, // Output directory, no space after -o
		SevenZipYesFlag,                // Assume yes on all prompts
	}
}

// stagingName generates a unique staging directory name using UUID v7 for
// better uniqueness and time ordering
func stagingName() string {
	id, err := uuid.NewV7()
	if err != nil {
		return StagingPrefix + uuid.NewString()
	}
	return StagingPrefix + id.String()
}
