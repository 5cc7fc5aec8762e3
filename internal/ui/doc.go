package ui

// Package ui contains the Fyne-based desktop user interface for the installer.
// It wires user interactions to the install orchestrator and renders phase,
// per-archive progress, and the log pane. All UI strings are localized via
// Localization.
