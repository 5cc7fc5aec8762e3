package model

// Phase represents the stage of the active install sequence
type Phase string

const (
	// PhaseIdle means no sequence is running
	PhaseIdle Phase = "Idle"

	// PhaseFetchingManifest means the remote manifest is being retrieved
	PhaseFetchingManifest Phase = "FetchingManifest"

	// PhaseDownloading means archive downloads are in progress
	PhaseDownloading Phase = "Downloading"

	// PhaseExtracting means downloaded archives are being unpacked
	PhaseExtracting Phase = "Extracting"

	// PhasePostProcessing means font copy and config marker steps are running
	PhasePostProcessing Phase = "PostProcessing"

	// PhaseCancelling means a cancel was requested and downloads are winding down
	PhaseCancelling Phase = "Cancelling"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsActive returns true if an install sequence is in flight
func (p Phase) IsActive() bool {
	return p != PhaseIdle
}

// CanCancel returns true if the sequence accepts a cancellation request.
// Only the download stage is interruptible; extraction and post-processing
// run to completion once started.
func (p Phase) CanCancel() bool {
	return p == PhaseDownloading
}

// TaskStatus represents the status of a single archive download task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the download is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusCancelled means the task was stopped by user request
	TaskStatusCancelled TaskStatus = "Cancelled"

	// TaskStatusFailed means the task failed with an error
	TaskStatusFailed TaskStatus = "Failed"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsFinished returns true if the task is in a terminal state (completed,
// cancelled, or failed)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusCancelled || ts == TaskStatusFailed
}
