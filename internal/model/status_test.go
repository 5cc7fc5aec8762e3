package model

import "testing"

func TestPhase_IsActive(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseIdle, false},
		{PhaseFetchingManifest, true},
		{PhaseDownloading, true},
		{PhaseExtracting, true},
		{PhasePostProcessing, true},
		{PhaseCancelling, true},
	}

	for _, test := range tests {
		result := test.phase.IsActive()
		if result != test.expected {
			t.Errorf("Phase(%s).IsActive() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestPhase_CanCancel(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseIdle, false},
		{PhaseFetchingManifest, false},
		{PhaseDownloading, true},
		{PhaseExtracting, false},
		{PhasePostProcessing, false},
		{PhaseCancelling, false},
	}

	for _, test := range tests {
		result := test.phase.CanCancel()
		if result != test.expected {
			t.Errorf("Phase(%s).CanCancel() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestTaskStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusDownloading, false},
		{TaskStatusCompleted, true},
		{TaskStatusCancelled, true},
		{TaskStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTaskStatus_String(t *testing.T) {
	status := TaskStatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("TaskStatus.String() = %s, expected %s", result, expected)
	}
}
