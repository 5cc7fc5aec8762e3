package ui

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LogPane is a scrolling text pane that doubles as an io.Writer so the
// application logger can feed it. Writes arrive from worker goroutines;
// widget mutation is marshalled onto the UI thread with fyne.Do. The line
// buffer is capped so long sessions do not grow the canvas without bound.
type LogPane struct {
	mu    sync.Mutex
	lines []string

	label  *widget.Label
	scroll *container.Scroll
}

// NewLogPane creates an empty log pane
func NewLogPane() *LogPane {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord
	label.TextStyle = fyne.TextStyle{Monospace: true}

	scroll := container.NewVScroll(label)
	scroll.SetMinSize(fyne.NewSize(0, LogPaneMinHeight))

	return &LogPane{
		label:  label,
		scroll: scroll,
	}
}

// Container returns the scrollable pane for embedding in a layout
func (lp *LogPane) Container() fyne.CanvasObject {
	return lp.scroll
}

// Write appends one formatted log line and scrolls to the bottom. It never
// returns an error so the multi-writer above it keeps all sinks alive.
func (lp *LogPane) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\r\n")

	lp.mu.Lock()
	lp.lines = append(lp.lines, line)
	if len(lp.lines) > LogPaneMaxLines {
		lp.lines = lp.lines[len(lp.lines)-LogPaneMaxLines:]
	}
	text := strings.Join(lp.lines, "\n")
	lp.mu.Unlock()

	fyne.Do(func() {
		lp.label.SetText(text)
		lp.scroll.ScrollToBottom()
	})

	return len(p), nil
}
