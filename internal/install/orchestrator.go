package install

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/config"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/download"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/extract"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/logging"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/manifest"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/platform"
)

const (
	// WorkDirPrefix names the per-attempt scratch directory under the system
	// temp root
	WorkDirPrefix = "llc-install-"

	// EventBuffer sizes the event channel; progress events are emitted only
	// on percent changes, so the buffer covers a full sequence
	EventBuffer = 256
)

// Orchestrator sequences install and uninstall operations. At most one
// sequence is in flight at a time; a Start while active is a cancellation
// request.
type Orchestrator struct {
	mu     sync.Mutex
	phase  model.Phase
	cancel context.CancelFunc

	settings  *config.Settings
	manifests manifest.Fetcher
	downloads download.Downloader
	extractor extract.Extractor
	workRoot  string // parent of per-attempt scratch directories

	events chan Event
	logger zerolog.Logger
}

// NewOrchestrator creates a new install orchestrator
func NewOrchestrator(settings *config.Settings, manifests manifest.Fetcher, downloads download.Downloader, extractor extract.Extractor, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		phase:     model.PhaseIdle,
		settings:  settings,
		manifests: manifests,
		downloads: downloads,
		extractor: extractor,
		workRoot:  os.TempDir(),
		events:    make(chan Event, EventBuffer),
		logger:    logging.ComponentLogger(logger, "install"),
	}
}

// Events returns the orchestrator event channel. The consumer must keep
// draining it while a sequence runs.
func (o *Orchestrator) Events() <-chan Event {
	return o.events
}

// Phase returns the current sequence phase
func (o *Orchestrator) Phase() model.Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

// Start begins an install sequence. When a sequence is already active the
// call is reinterpreted as a cancellation request and returns nil. Rejected
// with a validation error when the game directory is unset or invalid, or
// when the game process is running.
func (o *Orchestrator) Start() error {
	o.mu.Lock()

	if o.phase.IsActive() {
		requested := o.requestCancelLocked()
		o.mu.Unlock()
		if requested {
			o.announcePhase(model.PhaseCancelling)
		}
		return nil
	}

	gamePath := o.settings.GetGamePath()
	if !platform.ValidateGameDir(gamePath) {
		o.mu.Unlock()
		return &model.ValidationError{Reason: "game directory not set or missing " + platform.GameExecutableName}
	}
	if running, err := o.gameRunning(); err == nil && running {
		o.mu.Unlock()
		return &model.ValidationError{Reason: "close the game before installing"}
	}

	ctx, cancel := context.WithCancel(context.Background())
	o.cancel = cancel
	o.phase = model.PhaseFetchingManifest
	o.mu.Unlock()

	o.announcePhase(model.PhaseFetchingManifest)
	go o.run(ctx, gamePath)
	return nil
}

// Cancel requests cancellation of the active sequence. Only the download
// stage is interruptible; requests during other stages are refused with a
// log entry.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	requested := o.requestCancelLocked()
	o.mu.Unlock()
	if requested {
		o.announcePhase(model.PhaseCancelling)
	}
}

// requestCancelLocked is called with o.mu held; the caller announces the
// phase change after releasing the lock
func (o *Orchestrator) requestCancelLocked() bool {
	if !o.phase.CanCancel() {
		o.logger.Info().Str("phase", o.phase.String()).Msg("cancellation refused outside download stage")
		return false
	}
	o.phase = model.PhaseCancelling
	if o.cancel != nil {
		o.cancel()
	}
	return true
}

// Uninstall removes the installed release and the config marker. It shares
// the single-flight and running-game guards with Start and holds the
// sequence lock for its whole duration.
func (o *Orchestrator) Uninstall() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.phase.IsActive() {
		return &model.ValidationError{Reason: "an operation is already in progress"}
	}

	gamePath := o.settings.GetGamePath()
	if !platform.ValidateGameDir(gamePath) {
		return &model.ValidationError{Reason: "game directory not set or missing " + platform.GameExecutableName}
	}
	if running, err := o.gameRunning(); err == nil && running {
		return &model.ValidationError{Reason: "close the game before uninstalling"}
	}

	if err := Uninstall(gamePath, ""); err != nil {
		return err
	}
	o.logger.Info().Str("game_path", gamePath).Msg("localization removed")
	return nil
}

// gameRunning wraps the process scan; a scan failure is logged and treated
// as "not running" so a broken process table does not block installs
func (o *Orchestrator) gameRunning() (bool, error) {
	running, err := platform.GameRunning()
	if err != nil {
		o.logger.Warn().Err(err).Msg("process scan failed")
	}
	return running, err
}

// run executes one install sequence end to end
func (o *Orchestrator) run(ctx context.Context, gamePath string) {
	defer func() {
		o.mu.Lock()
		if o.cancel != nil {
			o.cancel()
			o.cancel = nil
		}
		o.mu.Unlock()
	}()

	o.emit(Event{Kind: EventLog, Message: "removing previous installation"})
	if err := Uninstall(gamePath, ""); err != nil {
		o.finishError(err)
		return
	}

	opts := manifest.Options{
		UseMirror:      o.settings.GetUseMirror(),
		CustomProxyURL: o.settings.GetCustomProxyURL(),
	}

	m, err := o.manifests.Fetch(ctx, opts)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) {
			o.finishCancelled()
			return
		}
		o.finishError(err)
		return
	}

	workDir := filepath.Join(o.workRoot, WorkDirPrefix+newID())
	if err := os.MkdirAll(workDir, platform.DefaultDirPermissions); err != nil {
		o.finishError(&model.FilesystemError{Op: "mkdir", Path: workDir, Err: err})
		return
	}
	// Archives and staging directories vanish with the work directory on
	// every path out, including failures before extraction
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			o.logger.Warn().Err(err).Str("path", workDir).Msg("work directory cleanup failed")
		}
	}()

	tasks := o.buildTasks(m, opts, workDir)

	o.setPhase(model.PhaseDownloading)
	if err := o.downloadAll(ctx, tasks); err != nil {
		if errors.Is(err, model.ErrCancelled) {
			o.finishCancelled()
			return
		}
		o.finishError(err)
		return
	}

	o.setPhase(model.PhaseExtracting)
	if err := o.extractAll(ctx, m, tasks, gamePath); err != nil {
		if errors.Is(err, model.ErrCancelled) {
			o.finishCancelled()
			return
		}
		o.finishError(err)
		return
	}

	o.setPhase(model.PhasePostProcessing)
	if err := o.postProcess(gamePath, m.Name); err != nil {
		o.finishError(err)
		return
	}

	o.emit(Event{Kind: EventLog, Message: "installation complete"})
	o.emit(Event{Kind: EventDone, Outcome: OutcomeSuccess})
	o.setPhase(model.PhaseIdle)
}

// buildTasks creates one download task per present artifact link. With the
// mirror enabled the task URL is the rewritten one and the origin URL is kept
// as the backup for later attempts.
func (o *Orchestrator) buildTasks(m *model.InstallManifest, opts manifest.Options, workDir string) []*model.DownloadTask {
	makeTask := func(kind model.ArtifactKind, link, fileName, format string) *model.DownloadTask {
		effective := manifest.RewriteURL(link, opts)
		task := model.NewDownloadTask(string(kind)+"-"+newID(), kind, effective, filepath.Join(workDir, fileName), format)
		if effective != link {
			task.BackupURL = link
		}
		return task
	}

	tasks := []*model.DownloadTask{
		makeTask(model.ArtifactContent, m.ContentLink, m.ContentFileName(), m.ContentType),
	}
	if m.HasFont() {
		tasks = append(tasks, makeTask(model.ArtifactFont, m.FontLink, m.FontFileName(), m.FontType))
	}
	return tasks
}

// downloadAll runs every task concurrently; the first failure cancels the
// siblings
func (o *Orchestrator) downloadAll(ctx context.Context, tasks []*model.DownloadTask) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		g.Go(func() error {
			last := -1
			return o.downloads.Download(gctx, task, func(percent int) {
				if percent == last {
					return
				}
				last = percent
				o.emit(Event{Kind: EventProgress, Artifact: task.Kind, Percent: percent})
			})
		})
	}

	return g.Wait()
}

// extractAll unpacks the finished archives. Completed files are routed back
// to their artifact by name: the file matching the manifest's font filename
// goes to the game root, the content file honors the nested payload path.
func (o *Orchestrator) extractAll(ctx context.Context, m *model.InstallManifest, tasks []*model.DownloadTask, gamePath string) error {
	byName := make(map[string]*model.DownloadTask, len(tasks))
	for _, task := range tasks {
		byName[task.FileName()] = task
	}

	contentTask, ok := byName[m.ContentFileName()]
	if !ok {
		return &model.ValidationError{Reason: "no completed download matches the manifest content filename"}
	}

	contentTarget := gamePath
	innerSubPath := ""
	if m.AbsolutePath != "" {
		contentTarget = platform.ContentDir(gamePath, m.Name)
		innerSubPath = m.AbsolutePath
	}
	if err := o.extractor.Extract(ctx, contentTask.DestPath, contentTask.Format, contentTarget, innerSubPath); err != nil {
		return err
	}

	if m.HasFont() {
		fontTask, ok := byName[m.FontFileName()]
		if !ok {
			return &model.ValidationError{Reason: "no completed download matches the manifest font filename"}
		}
		if err := o.extractor.Extract(ctx, fontTask.DestPath, fontTask.Format, gamePath, ""); err != nil {
			return err
		}
	}
	return nil
}

// postProcess copies a user-chosen font into the installed release and
// refreshes the config marker
func (o *Orchestrator) postProcess(gamePath, name string) error {
	if !o.settings.UseBundledFont() {
		fontPath := o.settings.GetFontPath()
		fontDir := platform.FontDir(gamePath, name)

		if err := platform.RemoveIfExists(fontDir); err != nil {
			return err
		}
		if err := platform.CreateDirectoryIfNotExists(fontDir); err != nil {
			return &model.FilesystemError{Op: "mkdir", Path: fontDir, Err: err}
		}
		if err := platform.CopyFile(fontPath, filepath.Join(fontDir, filepath.Base(fontPath))); err != nil {
			return err
		}
		o.logger.Info().Str("font", fontPath).Msg("custom font installed")
	}

	return writeMarkerIfChanged(gamePath, name)
}

func (o *Orchestrator) finishError(err error) {
	o.logger.Error().Err(err).Msg("install sequence failed")
	o.emit(Event{Kind: EventDone, Outcome: OutcomeError, Err: err})
	o.setPhase(model.PhaseIdle)
}

func (o *Orchestrator) finishCancelled() {
	o.logger.Info().Msg("install sequence cancelled")
	o.emit(Event{Kind: EventDone, Outcome: OutcomeCancelled})
	o.setPhase(model.PhaseIdle)
}

func (o *Orchestrator) setPhase(phase model.Phase) {
	o.mu.Lock()
	o.phase = phase
	o.mu.Unlock()
	o.announcePhase(phase)
}

func (o *Orchestrator) announcePhase(phase model.Phase) {
	o.logger.Debug().Str("phase", phase.String()).Msg("phase change")
	o.emit(Event{Kind: EventPhase, Phase: phase})
}

func (o *Orchestrator) emit(ev Event) {
	o.events <- ev
}

// markerFile is the config marker recording the active language
type markerFile struct {
	Lang string `json:"lang"`
}

// writeMarkerIfChanged writes the config marker, skipping the write when the
// marker on disk already records the same language
func writeMarkerIfChanged(gamePath, name string) error {
	path := platform.MarkerPath(gamePath)

	if raw, err := os.ReadFile(path); err == nil {
		var current markerFile
		if json.Unmarshal(raw, &current) == nil && current.Lang == name {
			return nil
		}
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return &model.FilesystemError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}

	raw, err := json.Marshal(markerFile{Lang: name})
	if err != nil {
		return fmt.Errorf("encode config marker: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return &model.FilesystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// newID generates a unique identifier using UUID v7 for better uniqueness
// and time ordering
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
