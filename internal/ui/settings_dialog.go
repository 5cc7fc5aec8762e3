package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// Called after a confirmed save so the caller can refresh texts
	onSaved func()

	// UI components
	proxyEntry     *widget.Entry
	languageSelect *widget.Select
	languageByName map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Custom proxy for the download mirror
	sd.proxyEntry = widget.NewEntry()
	sd.proxyEntry.SetPlaceHolder(sd.localization.GetText(KeyCustomProxyHint))

	// Interface language selection (kept for the session, not persisted)
	names := sd.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageOptions := make([]string, 0, len(codes))
	sd.languageByName = make(map[string]string, len(codes))
	for _, code := range codes {
		languageOptions = append(languageOptions, names[code])
		sd.languageByName[names[code]] = code
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyCustomProxy)),
		sd.proxyEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 240))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.proxyEntry.SetText(sd.settings.GetCustomProxyURL())
	sd.languageSelect.SetSelected(sd.localization.GetAvailableLanguages()[sd.localization.GetCurrentLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetCustomProxyURL(strings.TrimSpace(sd.proxyEntry.Text))

	if code, ok := sd.languageByName[sd.languageSelect.Selected]; ok {
		sd.localization.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
