package sessions

import (
	"testing"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
)

func job(status constants.JobStatus, pages int) entity.Job {
	return entity.Job{Status: status, PageCount: pages, CreditsCharged: pages}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name           string
		jobs           []entity.Job
		wantStatus     constants.SessionStatus
		wantUnits      int
		wantTerminal   bool
		wantSucceeded  bool
		wantFailedJobs int
	}{
		{
			name:       "no jobs yet",
			jobs:       nil,
			wantStatus: constants.SessionStatusUploading,
		},
		{
			name:       "all queued",
			jobs:       []entity.Job{job(constants.JobStatusQueued, 2), job(constants.JobStatusQueued, 1)},
			wantStatus: constants.SessionStatusProcessing,
		},
		{
			name:       "partial progress",
			jobs:       []entity.Job{job(constants.JobStatusCompleted, 3), job(constants.JobStatusPolling, 2)},
			wantStatus: constants.SessionStatusProcessing,
			wantUnits:  3,
		},
		{
			name:          "all completed",
			jobs:          []entity.Job{job(constants.JobStatusCompleted, 3), job(constants.JobStatusCompleted, 1)},
			wantStatus:    constants.SessionStatusPostProcessing,
			wantUnits:     4,
			wantTerminal:  true,
			wantSucceeded: true,
		},
		{
			name:           "mixed outcomes fail the session",
			jobs:           []entity.Job{job(constants.JobStatusCompleted, 2), job(constants.JobStatusFailed, 1), job(constants.JobStatusCompleted, 1)},
			wantStatus:     constants.SessionStatusFailed,
			wantUnits:      3,
			wantTerminal:   true,
			wantFailedJobs: 1,
		},
		{
			name:           "expired job counts as failed",
			jobs:           []entity.Job{job(constants.JobStatusExpired, 1)},
			wantStatus:     constants.SessionStatusFailed,
			wantTerminal:   true,
			wantFailedJobs: 1,
		},
		{
			name:         "cancelled only",
			jobs:         []entity.Job{job(constants.JobStatusCancelled, 1), job(constants.JobStatusCancelled, 2)},
			wantStatus:   constants.SessionStatusCancelled,
			wantTerminal: true,
		},
		{
			name:         "completed plus cancelled is cancelled, not failed",
			jobs:         []entity.Job{job(constants.JobStatusCompleted, 2), job(constants.JobStatusCancelled, 1)},
			wantStatus:   constants.SessionStatusCancelled,
			wantUnits:    2,
			wantTerminal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.jobs)
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.CompletedUnits != tt.wantUnits {
				t.Errorf("CompletedUnits = %d, want %d", got.CompletedUnits, tt.wantUnits)
			}
			if got.AllTerminal != tt.wantTerminal {
				t.Errorf("AllTerminal = %v, want %v", got.AllTerminal, tt.wantTerminal)
			}
			if got.AllSucceeded != tt.wantSucceeded {
				t.Errorf("AllSucceeded = %v, want %v", got.AllSucceeded, tt.wantSucceeded)
			}
			if got.FailedJobs != tt.wantFailedJobs {
				t.Errorf("FailedJobs = %d, want %d", got.FailedJobs, tt.wantFailedJobs)
			}
		})
	}
}

func TestDeriveUnitsNeverExceedTotal(t *testing.T) {
	jobs := []entity.Job{
		job(constants.JobStatusCompleted, 4),
		job(constants.JobStatusCompleted, 2),
		job(constants.JobStatusFailed, 3),
	}
	total := 0
	for _, j := range jobs {
		total += j.PageCount
	}
	got := Derive(jobs)
	if got.CompletedUnits > total {
		t.Fatalf("CompletedUnits %d exceeds total %d", got.CompletedUnits, total)
	}
	if got.CompletedUnits != 6 {
		t.Fatalf("CompletedUnits = %d, want 6", got.CompletedUnits)
	}
}
