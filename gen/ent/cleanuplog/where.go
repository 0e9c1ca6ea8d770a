// Code generated by ent, DO NOT EDIT.

package cleanuplog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tobi-adeyemi/extractflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLTE(FieldID, id))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionsExpired applies equality check predicate on the "sessions_expired" field. It's identical to SessionsExpiredEQ.
func SessionsExpired(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldSessionsExpired, v))
}

// JobsExpired applies equality check predicate on the "jobs_expired" field. It's identical to JobsExpiredEQ.
func JobsExpired(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldJobsExpired, v))
}

// BlobsDeleted applies equality check predicate on the "blobs_deleted" field. It's identical to BlobsDeletedEQ.
func BlobsDeleted(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldBlobsDeleted, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldErrorCount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldStatus, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNotNull(FieldCompletedAt))
}

// SessionsExpiredEQ applies the EQ predicate on the "sessions_expired" field.
func SessionsExpiredEQ(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldSessionsExpired, v))
}

// SessionsExpiredNEQ applies the NEQ predicate on the "sessions_expired" field.
func SessionsExpiredNEQ(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNEQ(FieldSessionsExpired, v))
}

// SessionsExpiredIn applies the In predicate on the "sessions_expired" field.
func SessionsExpiredIn(vs ...int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldIn(FieldSessionsExpired, vs...))
}

// SessionsExpiredNotIn applies the NotIn predicate on the "sessions_expired" field.
func SessionsExpiredNotIn(vs ...int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNotIn(FieldSessionsExpired, vs...))
}

// SessionsExpiredGT applies the GT predicate on the "sessions_expired" field.
func SessionsExpiredGT(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGT(FieldSessionsExpired, v))
}

// SessionsExpiredGTE applies the GTE predicate on the "sessions_expired" field.
func SessionsExpiredGTE(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGTE(FieldSessionsExpired, v))
}

// SessionsExpiredLT applies the LT predicate on the "sessions_expired" field.
func SessionsExpiredLT(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLT(FieldSessionsExpired, v))
}

// SessionsExpiredLTE applies the LTE predicate on the "sessions_expired" field.
func SessionsExpiredLTE(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLTE(FieldSessionsExpired, v))
}

// JobsExpiredEQ applies the EQ predicate on the "jobs_expired" field.
func JobsExpiredEQ(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldJobsExpired, v))
}

// JobsExpiredNEQ applies the NEQ predicate on the "jobs_expired" field.
func JobsExpiredNEQ(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNEQ(FieldJobsExpired, v))
}

// JobsExpiredIn applies the In predicate on the "jobs_expired" field.
func JobsExpiredIn(vs ...int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldIn(FieldJobsExpired, vs...))
}

// JobsExpiredNotIn applies the NotIn predicate on the "jobs_expired" field.
func JobsExpiredNotIn(vs ...int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNotIn(FieldJobsExpired, vs...))
}

// JobsExpiredGT applies the GT predicate on the "jobs_expired" field.
func JobsExpiredGT(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGT(FieldJobsExpired, v))
}

// JobsExpiredGTE applies the GTE predicate on the "jobs_expired" field.
func JobsExpiredGTE(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGTE(FieldJobsExpired, v))
}

// JobsExpiredLT applies the LT predicate on the "jobs_expired" field.
func JobsExpiredLT(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLT(FieldJobsExpired, v))
}

// JobsExpiredLTE applies the LTE predicate on the "jobs_expired" field.
func JobsExpiredLTE(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLTE(FieldJobsExpired, v))
}

// BlobsDeletedEQ applies the EQ predicate on the "blobs_deleted" field.
func BlobsDeletedEQ(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldBlobsDeleted, v))
}

// BlobsDeletedNEQ applies the NEQ predicate on the "blobs_deleted" field.
func BlobsDeletedNEQ(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNEQ(FieldBlobsDeleted, v))
}

// BlobsDeletedIn applies the In predicate on the "blobs_deleted" field.
func BlobsDeletedIn(vs ...int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldIn(FieldBlobsDeleted, vs...))
}

// BlobsDeletedNotIn applies the NotIn predicate on the "blobs_deleted" field.
func BlobsDeletedNotIn(vs ...int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNotIn(FieldBlobsDeleted, vs...))
}

// BlobsDeletedGT applies the GT predicate on the "blobs_deleted" field.
func BlobsDeletedGT(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGT(FieldBlobsDeleted, v))
}

// BlobsDeletedGTE applies the GTE predicate on the "blobs_deleted" field.
func BlobsDeletedGTE(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGTE(FieldBlobsDeleted, v))
}

// BlobsDeletedLT applies the LT predicate on the "blobs_deleted" field.
func BlobsDeletedLT(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLT(FieldBlobsDeleted, v))
}

// BlobsDeletedLTE applies the LTE predicate on the "blobs_deleted" field.
func BlobsDeletedLTE(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLTE(FieldBlobsDeleted, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLTE(FieldErrorCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CleanupLog {
	return predicate.CleanupLog(sql.FieldContainsFold(FieldStatus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CleanupLog) predicate.CleanupLog {
	return predicate.CleanupLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CleanupLog) predicate.CleanupLog {
	return predicate.CleanupLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CleanupLog) predicate.CleanupLog {
	return predicate.CleanupLog(sql.NotPredicates(p))
}
