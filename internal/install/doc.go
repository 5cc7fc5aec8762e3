package install

// Package install drives the install and uninstall sequences: uninstall of
// the previous release, manifest fetch, concurrent archive downloads,
// extraction, font copy and config marker update, and unconditional cleanup.
// One sequence runs at a time; progress and outcomes reach the UI through an
// ordered event channel.
