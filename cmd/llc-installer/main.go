package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/extract"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/logging"
)

// DefaultBundleName is the archive the installer expects beside the binary
const DefaultBundleName = "LocalizeLimbusCompany-TR.zip"

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		bundlePath string
		destDir    string
		noLaunch   bool
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:     "llc-installer",
		Short:   "Unpack the offline localization bundle and launch the installed program",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(logLevel)

			if bundlePath == "" {
				bundlePath = defaultBundlePath()
			}
			if _, err := os.Stat(bundlePath); err != nil {
				return fmt.Errorf("localization bundle not found at %s: %w", bundlePath, err)
			}
			if destDir == "" {
				destDir = strings.TrimSuffix(bundlePath, filepath.Ext(bundlePath))
			}

			extractor := extract.NewService(logger)
			logger.Info().Str("bundle", bundlePath).Str("dest", destDir).Msg("unpacking bundle")
			if err := extractor.Extract(cmd.Context(), bundlePath, extract.FormatZip, destDir, ""); err != nil {
				return fmt.Errorf("failed to unpack bundle: %w", err)
			}

			if noLaunch {
				logger.Info().Msg("bundle unpacked, launch skipped")
				return nil
			}
			return launchInstalled(logger, destDir)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&bundlePath, "bundle", "", "path to the bundle archive (default "+DefaultBundleName+" beside the binary)")
	cmd.Flags().StringVar(&destDir, "dest", "", "directory to unpack into (default bundle path without extension)")
	cmd.Flags().BoolVar(&noLaunch, "no-launch", false, "unpack only, do not launch the installed program")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

// defaultBundlePath looks for the bundle next to the executable, falling back
// to the working directory when the executable path is unavailable
func defaultBundlePath() string {
	exePath, err := os.Executable()
	if err != nil {
		return DefaultBundleName
	}
	return filepath.Join(filepath.Dir(exePath), DefaultBundleName)
}

// launchInstalled starts the unpacked program. The executable is named after
// its directory, matching how the bundle is published.
func launchInstalled(logger zerolog.Logger, destDir string) error {
	exeName := filepath.Base(destDir) + ".exe"
	exePath := filepath.Join(destDir, exeName)
	if _, err := os.Stat(exePath); err != nil {
		return fmt.Errorf("installed program not found at %s: %w", exePath, err)
	}

	launch := exec.Command(exePath)
	launch.Dir = destDir
	if err := launch.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", exeName, err)
	}
	logger.Info().Str("program", exePath).Msg("launched installed program")
	return nil
}
