package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/config"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/download"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/extract"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/install"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/logging"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/manifest"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.eveglowluna.llc-temporaryreplacer"
	AppName = "LLC Temporary Replacer"

	WindowWidth  = 560
	WindowHeight = 520
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// The log pane must exist before the logger so component logs reach
	// the window as well as stderr
	logPane := ui.NewLogPane()
	logger := logging.New("info", logging.PaneWriter(logPane))
	logger.Info().Str("version", version).Msg("starting LLC temporary replacer")

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	// Initialize services
	settings := config.NewSettings(workDir, logger)
	manifests := manifest.NewClient(logger)
	downloads := download.NewService(logger)
	extractor := extract.NewService(logger)
	orchestrator := install.NewOrchestrator(settings, manifests, downloads, extractor, logger)

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, orchestrator, logPane, logger)

	// Show and run
	myWindow.ShowAndRun()
}
