package model

// Package model defines domain data structures used across the app: the
// remote install manifest, archive download tasks, phase and status enums,
// and the error taxonomy. Structures are designed for direct binding in the
// UI and explicit state transitions.
