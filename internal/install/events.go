package install

import (
	"github.com/EveGlowLuna/LLC-TemporaryReplacer/internal/model"
)

// EventKind discriminates events on the orchestrator channel
type EventKind string

const (
	// EventPhase reports a state machine transition
	EventPhase EventKind = "phase"

	// EventProgress reports per-artifact download progress
	EventProgress EventKind = "progress"

	// EventLog carries a user-facing milestone message
	EventLog EventKind = "log"

	// EventDone reports the terminal outcome of a sequence
	EventDone EventKind = "done"
)

// Outcome is the terminal result of one install or uninstall sequence
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeError     Outcome = "error"
)

// Event crosses from the worker goroutines to the UI consumer. Fields beyond
// Kind are populated per kind; values are snapshots, safe to read after
// delivery.
type Event struct {
	Kind     EventKind
	Phase    model.Phase        // EventPhase
	Artifact model.ArtifactKind // EventProgress
	Percent  int                // EventProgress
	Message  string             // EventLog
	Outcome  Outcome            // EventDone
	Err      error              // EventDone with OutcomeError
}
