package platform

// Package platform contains OS/platform integration and external tooling
// glue: filesystem helpers, game installation probing, 7-Zip binary
// discovery, and OS open/reveal.
