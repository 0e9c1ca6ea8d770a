package constants

// SessionStatus is the canonical status for rows in sessions.
type SessionStatus string

// Stable values (store these exact strings in DB).
const (
	SessionStatusUploading      SessionStatus = "UPLOADING"       // files accepted, jobs not yet all submitted
	SessionStatusProcessing     SessionStatus = "PROCESSING"      // at least one job still in flight
	SessionStatusPostProcessing SessionStatus = "POST_PROCESSING" // all jobs done, bundle being assembled
	SessionStatusCompleted      SessionStatus = "COMPLETED"       // bundle ready for download
	SessionStatusFailed         SessionStatus = "FAILED"          // terminal failure
	SessionStatusExpired        SessionStatus = "EXPIRED"         // TTL elapsed, data reclaimed
	SessionStatusCancelled      SessionStatus = "CANCELLED"       // cancelled by the owner
)

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "QUEUED"    // created, not yet submitted upstream
	JobStatusUploading JobStatus = "UPLOADING" // payload being sent to the extraction service
	JobStatusPolling   JobStatus = "POLLING"   // operation ref recorded, awaiting result
	JobStatusCompleted JobStatus = "COMPLETED" // fields extracted
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
	JobStatusExpired   JobStatus = "EXPIRED"   // TTL elapsed
	JobStatusCancelled JobStatus = "CANCELLED" // session cancel
)

// NonTerminalJobStatuses are the states a job can still leave. Every terminal
// transition is a conditional update guarded by this set.
var NonTerminalJobStatuses = []JobStatus{
	JobStatusQueued,
	JobStatusUploading,
	JobStatusPolling,
}

// IsTerminal reports whether a job can no longer transition.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusExpired, JobStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether a session can no longer transition.
func (s SessionStatus) IsTerminal() bool {
	switch s {
	case SessionStatusCompleted, SessionStatusFailed, SessionStatusExpired, SessionStatusCancelled:
		return true
	}
	return false
}

// SessionStatuses lists every stable session status string, for schema validation.
var SessionStatuses = []string{
	string(SessionStatusUploading), string(SessionStatusProcessing),
	string(SessionStatusPostProcessing), string(SessionStatusCompleted),
	string(SessionStatusFailed), string(SessionStatusExpired), string(SessionStatusCancelled),
}

// JobStatuses lists every stable job status string, for schema validation.
var JobStatuses = []string{
	string(JobStatusQueued), string(JobStatusUploading), string(JobStatusPolling),
	string(JobStatusCompleted), string(JobStatusFailed),
	string(JobStatusExpired), string(JobStatusCancelled),
}

// TxType is the canonical type for rows in transactions.
type TxType string

const (
	TxTypePurchase         TxType = "PURCHASE"
	TxTypeUsage            TxType = "USAGE"
	TxTypeRefund           TxType = "REFUND"
	TxTypeAdminCredit      TxType = "ADMIN_CREDIT"
	TxTypeAdminDebit       TxType = "ADMIN_DEBIT"
	TxTypeBonus            TxType = "BONUS"
	TxTypeManualAdjustment TxType = "MANUAL_ADJUSTMENT"
)

// TxTypes lists every stable transaction type string, for schema validation.
var TxTypes = []string{
	string(TxTypePurchase), string(TxTypeUsage), string(TxTypeRefund),
	string(TxTypeAdminCredit), string(TxTypeAdminDebit), string(TxTypeBonus),
	string(TxTypeManualAdjustment),
}

// TxStatus is the canonical status for rows in transactions.
type TxStatus string

const (
	TxStatusPending   TxStatus = "PENDING"
	TxStatusCompleted TxStatus = "COMPLETED"
	TxStatusFailed    TxStatus = "FAILED"
	TxStatusRefunded  TxStatus = "REFUNDED"
)

// TxStatuses lists every stable transaction status string, for schema validation.
var TxStatuses = []string{
	string(TxStatusPending), string(TxStatusCompleted),
	string(TxStatusFailed), string(TxStatusRefunded),
}

// CleanupStatus is the canonical status for rows in cleanup_log.
type CleanupStatus string

const (
	CleanupStatusRunning             CleanupStatus = "RUNNING"
	CleanupStatusCompleted           CleanupStatus = "COMPLETED"
	CleanupStatusCompletedWithErrors CleanupStatus = "COMPLETED_WITH_ERRORS"
	CleanupStatusFailed              CleanupStatus = "FAILED"
)

// CleanupStatuses lists every stable cleanup status string, for schema validation.
var CleanupStatuses = []string{
	string(CleanupStatusRunning), string(CleanupStatusCompleted),
	string(CleanupStatusCompletedWithErrors), string(CleanupStatusFailed),
}
