package manifest

// Package manifest retrieves and parses the remote install manifest that
// describes the localization release: which archives to download, their
// formats, and how the content is laid out inside them. Requests go through
// the configured mirror or custom proxy when enabled.
