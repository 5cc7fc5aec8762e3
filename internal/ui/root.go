package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/config"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/install"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/logging"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/platform"
)

// RootUI represents the main installer window
type RootUI struct {
	window fyne.Window

	settings     *config.Settings
	orchestrator *install.Orchestrator
	localization *Localization
	logPane      *LogPane
	logger       zerolog.Logger

	gamePathLabel  *widget.Label
	gamePathEntry  *widget.Entry
	browseBtn      *widget.Button
	fontTitleLabel *widget.Label
	fontLabel      *widget.Label
	chooseFontBtn  *widget.Button
	restoreFontBtn *widget.Button
	mirrorCheck    *widget.Check

	phaseLabel  *widget.Label
	progressBar *widget.ProgressBar
	contentRow  *ArtifactRow
	fontRow     *ArtifactRow

	installBtn   *widget.Button
	uninstallBtn *widget.Button
}

// NewRootUI creates and initializes the main UI. It starts the event consumer
// goroutine that relays orchestrator events onto the UI thread.
func NewRootUI(window fyne.Window, settings *config.Settings, orchestrator *install.Orchestrator, logPane *LogPane, logger zerolog.Logger) *RootUI {
	ui := &RootUI{
		window:       window,
		settings:     settings,
		orchestrator: orchestrator,
		localization: NewLocalization(),
		logPane:      logPane,
		logger:       logging.ComponentLogger(logger, "ui"),
	}

	window.SetTitle(ui.localization.GetText(KeyAppTitle))
	if logo, err := LoadLogoResource(); err == nil {
		window.SetIcon(logo)
	}

	ui.setupUI()
	go ui.consumeEvents()
	ui.maybeOfferSteamPath()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Game path row
	ui.gamePathLabel = widget.NewLabel(ui.localization.GetText(KeyGamePath))
	ui.gamePathEntry = widget.NewEntry()
	ui.gamePathEntry.SetPlaceHolder(ui.localization.GetText(KeyGamePathPlaceholder))
	ui.gamePathEntry.SetText(ui.settings.GetGamePath())
	ui.gamePathEntry.OnChanged = func(path string) {
		ui.settings.SetGamePath(strings.TrimSpace(path))
	}
	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseGamePath)
	openDirBtn := widget.NewButton(IconFolder, ui.onOpenGameDir)
	openDirBtn.Importance = widget.LowImportance
	gamePathRow := container.NewBorder(nil, nil, ui.gamePathLabel,
		container.NewHBox(ui.browseBtn, openDirBtn), ui.gamePathEntry)

	// Font row
	ui.fontTitleLabel = widget.NewLabel(ui.localization.GetText(KeyFont))
	ui.fontLabel = widget.NewLabel("")
	ui.fontLabel.Truncation = fyne.TextTruncateEllipsis
	ui.chooseFontBtn = widget.NewButton(ui.localization.GetText(KeyChooseFont), ui.onChooseFont)
	ui.restoreFontBtn = widget.NewButton(ui.localization.GetText(KeyRestoreDefaultFont), ui.onRestoreDefaultFont)
	fontChooserRow := container.NewBorder(nil, nil, ui.fontTitleLabel,
		container.NewHBox(ui.chooseFontBtn, ui.restoreFontBtn), ui.fontLabel)
	ui.refreshFontLabel()

	// Mirror toggle and settings access
	ui.mirrorCheck = widget.NewCheck(ui.localization.GetText(KeyUseMirror), func(checked bool) {
		ui.settings.SetUseMirror(checked)
	})
	ui.mirrorCheck.SetChecked(ui.settings.GetUseMirror())
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	optionsRow := container.NewBorder(nil, nil, ui.mirrorCheck, settingsBtn)

	// Progress section: overall bar plus one status line per archive. The
	// font row stays hidden until the manifest turns out to carry a font.
	ui.phaseLabel = widget.NewLabel(ui.localization.GetText(KeyPhaseIdle))
	ui.progressBar = widget.NewProgressBar()
	ui.contentRow = NewArtifactRow(model.ArtifactContent, ui.localization)
	ui.fontRow = NewArtifactRow(model.ArtifactFont, ui.localization)
	ui.fontRow.Hide()

	// Action buttons
	ui.installBtn = widget.NewButton(ui.localization.GetText(KeyInstall), ui.onInstallClick)
	ui.installBtn.Importance = widget.HighImportance
	ui.uninstallBtn = widget.NewButton(ui.localization.GetText(KeyUninstall), ui.onUninstallClick)
	buttonRow := container.NewGridWithColumns(2, ui.installBtn, ui.uninstallBtn)

	top := container.NewVBox(
		gamePathRow,
		fontChooserRow,
		optionsRow,
		widget.NewSeparator(),
		ui.phaseLabel,
		ui.progressBar,
		ui.contentRow,
		ui.fontRow,
		widget.NewSeparator(),
		buttonRow,
	)

	content := container.NewBorder(top, nil, nil, nil, ui.logPane.Container())
	ui.window.SetContent(content)
}

// consumeEvents drains the orchestrator event channel for the lifetime of the
// window. It is the only reader; widget mutation goes through fyne.Do.
func (ui *RootUI) consumeEvents() {
	for ev := range ui.orchestrator.Events() {
		switch ev.Kind {
		case install.EventPhase:
			ui.onPhaseEvent(ev.Phase)
		case install.EventProgress:
			ui.onProgressEvent(ev.Artifact, ev.Percent)
		case install.EventLog:
			ui.logger.Info().Msg(ev.Message)
		case install.EventDone:
			ui.onDoneEvent(ev)
		}
	}
}

// onPhaseEvent reflects a state machine transition in the controls
func (ui *RootUI) onPhaseEvent(phase model.Phase) {
	fyne.Do(func() {
		ui.phaseLabel.SetText(ui.phaseText(phase))

		if phase.IsActive() {
			ui.installBtn.SetText(ui.localization.GetText(KeyCancel))
			ui.uninstallBtn.Disable()
		} else {
			ui.installBtn.SetText(ui.localization.GetText(KeyInstall))
			ui.uninstallBtn.Enable()
		}

		switch phase {
		case model.PhaseFetchingManifest:
			ui.progressBar.SetValue(0)
			ui.contentRow.Reset()
			ui.fontRow.Reset()
			ui.fontRow.Hide()
		case model.PhaseExtracting:
			ui.contentRow.SetStatus(model.TaskStatusCompleted)
			if ui.fontRow.Visible() {
				ui.fontRow.SetStatus(model.TaskStatusCompleted)
			}
		}
	})
}

// onProgressEvent routes a percent update to its artifact row
func (ui *RootUI) onProgressEvent(kind model.ArtifactKind, percent int) {
	fyne.Do(func() {
		row := ui.contentRow
		if kind == model.ArtifactFont {
			row = ui.fontRow
			if !row.Visible() {
				row.Show()
			}
		}
		row.SetStatus(model.TaskStatusDownloading)
		row.SetPercent(percent)

		if kind == model.ArtifactContent {
			ui.progressBar.SetValue(float64(percent) / 100)
		}
	})
}

// onDoneEvent renders the terminal outcome. Cancellation is informational,
// never an error dialog; the orchestrator already logged the failure detail.
func (ui *RootUI) onDoneEvent(ev install.Event) {
	fyne.Do(func() {
		switch ev.Outcome {
		case install.OutcomeSuccess:
			ui.progressBar.SetValue(1)
			dialog.ShowInformation(
				ui.localization.GetText(KeyInfoTitle),
				ui.localization.GetText(KeyInstallComplete),
				ui.window,
			)
		case install.OutcomeCancelled:
			ui.markUnfinishedRows(model.TaskStatusCancelled)
			dialog.ShowInformation(
				ui.localization.GetText(KeyInfoTitle),
				ui.localization.GetText(KeyInstallCancelled),
				ui.window,
			)
		case install.OutcomeError:
			ui.markUnfinishedRows(model.TaskStatusFailed)
			dialog.ShowError(installFailureError(ui.localization, ev.Err), ui.window)
		}
	})
}

// installFailureError labels a terminal failure for the dialog; the raw error
// chain stays in the log pane.
func installFailureError(l *Localization, err error) error {
	return fmt.Errorf("%s: %w", l.GetText(KeyInstallFailed), err)
}

// markUnfinishedRows pushes a terminal status onto rows still in flight
func (ui *RootUI) markUnfinishedRows(status model.TaskStatus) {
	ui.contentRow.MarkUnfinished(status)
	if ui.fontRow.Visible() {
		ui.fontRow.MarkUnfinished(status)
	}
}

// phaseText maps a phase to its localized progress message
func (ui *RootUI) phaseText(phase model.Phase) string {
	switch phase {
	case model.PhaseFetchingManifest:
		return ui.localization.GetText(KeyPhaseFetchingInfo)
	case model.PhaseDownloading:
		return ui.localization.GetText(KeyPhaseDownloading)
	case model.PhaseExtracting:
		return ui.localization.GetText(KeyPhaseExtracting)
	case model.PhasePostProcessing:
		return ui.localization.GetText(KeyPhasePostProcessing)
	case model.PhaseCancelling:
		return ui.localization.GetText(KeyPhaseCancelling)
	default:
		return ui.localization.GetText(KeyPhaseIdle)
	}
}

// onInstallClick starts an install sequence; while one is active the same
// button doubles as the cancel control
func (ui *RootUI) onInstallClick() {
	if err := ui.orchestrator.Start(); err != nil {
		ui.logger.Warn().Err(err).Msg("install rejected")
		dialog.ShowError(err, ui.window)
	}
}

// onUninstallClick removes the installed localization
func (ui *RootUI) onUninstallClick() {
	if err := ui.orchestrator.Uninstall(); err != nil {
		ui.logger.Warn().Err(err).Msg("uninstall rejected")
		dialog.ShowError(err, ui.window)
		return
	}
	dialog.ShowInformation(
		ui.localization.GetText(KeyInfoTitle),
		ui.localization.GetText(KeyUninstallComplete),
		ui.window,
	)
}

// onBrowseGamePath handles game directory browsing
func (ui *RootUI) onBrowseGamePath() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.gamePathEntry.SetText(uri.Path())
	}, ui.window)
}

// onChooseFont handles font file selection
func (ui *RootUI) onChooseFont() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.settings.SetFontPath(path)
		ui.refreshFontLabel()
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".ttf", ".otf"}))
	fileDialog.Show()
}

// onOpenGameDir opens the game directory in the system file manager
func (ui *RootUI) onOpenGameDir() {
	gamePath := ui.settings.GetGamePath()
	if gamePath == "" {
		return
	}
	if err := platform.OpenDirInManager(gamePath); err != nil {
		ui.logger.Warn().Err(err).Str("path", gamePath).Msg("failed to open game directory")
	}
}

// onRestoreDefaultFont reverts to the font bundled with the language pack
func (ui *RootUI) onRestoreDefaultFont() {
	ui.settings.SetFontPath("")
	ui.refreshFontLabel()
}

// refreshFontLabel shows the chosen font file, or the bundled default
func (ui *RootUI) refreshFontLabel() {
	fontPath := ui.settings.GetFontPath()
	if fontPath == "" {
		ui.fontLabel.SetText(ui.localization.GetText(KeyBundledFont))
		return
	}
	ui.fontLabel.SetText(filepath.Base(fontPath))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.refreshUITexts).Show()
}

// refreshUITexts updates all UI texts with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.gamePathLabel.SetText(ui.localization.GetText(KeyGamePath))
	ui.gamePathEntry.SetPlaceHolder(ui.localization.GetText(KeyGamePathPlaceholder))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.fontTitleLabel.SetText(ui.localization.GetText(KeyFont))
	ui.chooseFontBtn.SetText(ui.localization.GetText(KeyChooseFont))
	ui.restoreFontBtn.SetText(ui.localization.GetText(KeyRestoreDefaultFont))
	ui.mirrorCheck.Text = ui.localization.GetText(KeyUseMirror)
	ui.mirrorCheck.Refresh()
	ui.refreshFontLabel()

	phase := ui.orchestrator.Phase()
	ui.phaseLabel.SetText(ui.phaseText(phase))
	if phase.IsActive() {
		ui.installBtn.SetText(ui.localization.GetText(KeyCancel))
	} else {
		ui.installBtn.SetText(ui.localization.GetText(KeyInstall))
	}
	ui.uninstallBtn.SetText(ui.localization.GetText(KeyUninstall))

	ui.contentRow.RefreshTexts()
	ui.fontRow.RefreshTexts()
}

// maybeOfferSteamPath offers the conventional Steam location when no game
// path is stored yet
func (ui *RootUI) maybeOfferSteamPath() {
	if ui.settings.GetGamePath() != "" {
		return
	}
	path, ok := platform.DetectSteamInstall()
	if !ok {
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeySteamDetectTitle),
		ui.localization.GetText(KeySteamDetectMessage),
		func(accepted bool) {
			if accepted {
				ui.gamePathEntry.SetText(path)
			}
		},
		ui.window,
	)
}
