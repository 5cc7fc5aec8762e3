package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
)

// ArtifactRow is a single status line for one downloaded archive (language
// pack or font): name on the left, status and percent on the right. All
// mutators must run on the UI thread.
type ArtifactRow struct {
	widget.BaseWidget

	kind         model.ArtifactKind
	localization *Localization

	nameLabel    *widget.Label
	statusLabel  *widget.Label
	percentLabel *widget.Label

	status  model.TaskStatus
	percent int
}

// NewArtifactRow creates a status row for the given artifact kind
func NewArtifactRow(kind model.ArtifactKind, localization *Localization) *ArtifactRow {
	ar := &ArtifactRow{
		kind:         kind,
		localization: localization,
		status:       model.TaskStatusPending,
	}
	ar.ExtendBaseWidget(ar)
	ar.createUI()
	ar.updateLabels()
	return ar
}

// createUI creates the UI components
func (ar *ArtifactRow) createUI() {
	ar.nameLabel = widget.NewLabel("")
	ar.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	ar.nameLabel.Truncation = fyne.TextTruncateEllipsis

	ar.statusLabel = widget.NewLabel("")
	ar.statusLabel.Alignment = fyne.TextAlignTrailing

	ar.percentLabel = widget.NewLabel("")
	ar.percentLabel.Alignment = fyne.TextAlignTrailing
}

// SetStatus updates the task status shown by the row
func (ar *ArtifactRow) SetStatus(status model.TaskStatus) {
	ar.status = status
	ar.updateLabels()
	ar.Refresh()
}

// SetPercent updates the download percent shown by the row
func (ar *ArtifactRow) SetPercent(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	ar.percent = percent
	ar.updateLabels()
	ar.Refresh()
}

// MarkUnfinished forces a terminal status onto a row that never reached one.
// Rows already completed or failed keep their state.
func (ar *ArtifactRow) MarkUnfinished(status model.TaskStatus) {
	if ar.status.IsFinished() {
		return
	}
	ar.SetStatus(status)
}

// Reset returns the row to its pristine pending state
func (ar *ArtifactRow) Reset() {
	ar.status = model.TaskStatusPending
	ar.percent = 0
	ar.updateLabels()
	ar.Refresh()
}

// RefreshTexts re-resolves localized strings after a language change
func (ar *ArtifactRow) RefreshTexts() {
	ar.updateLabels()
	ar.Refresh()
}

// updateLabels renders the current state into the labels
func (ar *ArtifactRow) updateLabels() {
	key := KeyContentArtifact
	if ar.kind == model.ArtifactFont {
		key = KeyFontArtifact
	}
	ar.nameLabel.SetText(ar.localization.GetText(key))

	switch ar.status {
	case model.TaskStatusDownloading:
		ar.statusLabel.Importance = widget.HighImportance
		ar.statusLabel.SetText(ar.localization.GetText(KeyStatusDownloading))
	case model.TaskStatusCompleted:
		ar.statusLabel.Importance = widget.SuccessImportance
		ar.statusLabel.SetText(ar.localization.GetText(KeyStatusCompleted))
	case model.TaskStatusCancelled:
		ar.statusLabel.Importance = widget.MediumImportance
		ar.statusLabel.SetText(ar.localization.GetText(KeyStatusCancelled))
	case model.TaskStatusFailed:
		ar.statusLabel.Importance = widget.DangerImportance
		ar.statusLabel.SetText(IconError + " " + ar.localization.GetText(KeyStatusFailed))
	default:
		ar.statusLabel.Importance = widget.MediumImportance
		ar.statusLabel.SetText(ar.localization.GetText(KeyStatusPending))
	}

	switch ar.status {
	case model.TaskStatusDownloading:
		ar.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, ar.percent))
	case model.TaskStatusCompleted:
		// Bar and status already say it; no redundant 100% label
		ar.percentLabel.SetText("")
	default:
		ar.percentLabel.SetText(DashPlaceholder)
	}
}

// CreateRenderer creates the widget renderer
func (ar *ArtifactRow) CreateRenderer() fyne.WidgetRenderer {
	return &artifactRowRenderer{row: ar}
}

// artifactRowRenderer renders the artifact row widget
type artifactRowRenderer struct {
	row    *ArtifactRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *artifactRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *artifactRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	min := r.layout.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}

// Refresh refreshes the renderer
func (r *artifactRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *artifactRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *artifactRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *artifactRowRenderer) createLayout() {
	ar := r.row

	// Fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	rightSide := container.NewHBox(
		fixedWidth(StatusLabelWidth, ar.statusLabel),
		fixedWidth(PercentLabelWidth, ar.percentLabel),
	)

	// Name expands into the remaining space, status cluster pinned right
	r.layout = container.NewBorder(nil, nil, nil, rightSide, ar.nameLabel)
}
