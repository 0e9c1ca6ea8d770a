package sessions

import (
	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
)

// Rollup is the derived view of a session's jobs. Session status is a pure
// function of job statuses computed on read; the stored column is only a
// cache updated through conditional transitions.
type Rollup struct {
	Status         constants.SessionStatus
	CompletedUnits int
	AllTerminal    bool
	AllSucceeded   bool
	FailedJobs     int
	CancelledJobs  int
}

// Derive computes the rollup. Mixed outcomes (some jobs failed) make the
// whole session FAILED; the successful jobs keep their results for per-job
// inspection but no partial bundle is produced.
func Derive(jobs []entity.Job) Rollup {
	r := Rollup{AllTerminal: true}
	if len(jobs) == 0 {
		r.Status = constants.SessionStatusUploading
		r.AllTerminal = false
		return r
	}
	for _, j := range jobs {
		switch j.Status {
		case constants.JobStatusCompleted:
			r.CompletedUnits += j.PageCount
		case constants.JobStatusFailed, constants.JobStatusExpired:
			r.FailedJobs++
		case constants.JobStatusCancelled:
			r.CancelledJobs++
		default:
			r.AllTerminal = false
		}
	}
	switch {
	case !r.AllTerminal:
		r.Status = constants.SessionStatusProcessing
	case r.FailedJobs > 0:
		r.Status = constants.SessionStatusFailed
	case r.CancelledJobs > 0:
		r.Status = constants.SessionStatusCancelled
	default:
		r.AllSucceeded = true
		r.Status = constants.SessionStatusPostProcessing
	}
	return r
}
