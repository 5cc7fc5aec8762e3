package model

import (
	"strings"
	"time"
)

// ArtifactKind distinguishes the archives one install attempt may download
type ArtifactKind string

const (
	// ArtifactContent is the language pack archive
	ArtifactContent ArtifactKind = "content"

	// ArtifactFont is the optional font archive
	ArtifactFont ArtifactKind = "font"
)

// Retry policy applied to every archive download
const (
	DownloadMaxRetries = 3
	DownloadRetryDelay = 2 * time.Second
)

// UserAgent is sent on every remote request
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DownloadTask represents a single archive download within one install
// attempt. A task is owned by the fetch operation that created it and is
// never reused across attempts.
type DownloadTask struct {
	ID         string
	Kind       ArtifactKind
	URL        string
	BackupURL  string // origin fallback used from the second attempt onward
	DestPath   string
	Format     string // archive format for the extraction step
	Status     TaskStatus
	Percent    int   // 0 to 100, floor of the bytes ratio
	TotalBytes int64 // -1 when the server reports no length
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewDownloadTask creates a pending task for one artifact
func NewDownloadTask(id string, kind ArtifactKind, url, destPath, format string) *DownloadTask {
	return &DownloadTask{
		ID:         id,
		Kind:       kind,
		URL:        url,
		DestPath:   destPath,
		Format:     format,
		Status:     TaskStatusPending,
		TotalBytes: -1,
	}
}

// FileName returns the base name of the destination path. Completion events
// from concurrent downloads are routed back to their artifact by this name.
func (dt *DownloadTask) FileName() string {
	// Support both / and \ separators
	parts := strings.FieldsFunc(dt.DestPath, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return dt.DestPath
	}
	return parts[len(parts)-1]
}

// MarkStarted records the transition into the downloading state
func (dt *DownloadTask) MarkStarted() {
	dt.Status = TaskStatusDownloading
	dt.StartedAt = time.Now()
}

// MarkFinished records a terminal status and the completion time
func (dt *DownloadTask) MarkFinished(status TaskStatus) {
	dt.Status = status
	dt.FinishedAt = time.Now()
}
