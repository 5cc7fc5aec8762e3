package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconError    = "❌"
)

// Text fragments
const (
	ProgressLabelFormat = "%d%%"
	DashPlaceholder     = "—"
)

// Layout sizing
const (
	StatusLabelWidth  float32 = 84
	PercentLabelWidth float32 = 48

	RowMinWidth  float32 = 360
	RowMinHeight float32 = 32

	LogPaneMinHeight float32 = 140
)

// Log pane behavior
const (
	LogPaneMaxLines = 500
)
