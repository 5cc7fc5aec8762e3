package download

// Package download implements the archive fetch pipeline: chunked HTTP
// streaming to disk, progress propagation to the UI, cooperative
// cancellation polled per chunk, and bounded retries with backup URL
// substitution.
