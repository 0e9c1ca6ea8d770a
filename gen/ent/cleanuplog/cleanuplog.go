// Code generated by ent, DO NOT EDIT.

package cleanuplog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the cleanuplog type in the database.
	Label = "cleanup_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldSessionsExpired holds the string denoting the sessions_expired field in the database.
	FieldSessionsExpired = "sessions_expired"
	// FieldJobsExpired holds the string denoting the jobs_expired field in the database.
	FieldJobsExpired = "jobs_expired"
	// FieldBlobsDeleted holds the string denoting the blobs_deleted field in the database.
	FieldBlobsDeleted = "blobs_deleted"
	// FieldErrorCount holds the string denoting the error_count field in the database.
	FieldErrorCount = "error_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the cleanuplog in the database.
	Table = "cleanup_log"
)

// Columns holds all SQL columns for cleanuplog fields.
var Columns = []string{
	FieldID,
	FieldStartedAt,
	FieldCompletedAt,
	FieldSessionsExpired,
	FieldJobsExpired,
	FieldBlobsDeleted,
	FieldErrorCount,
	FieldStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultSessionsExpired holds the default value on creation for the "sessions_expired" field.
	DefaultSessionsExpired int
	// SessionsExpiredValidator is a validator for the "sessions_expired" field. It is called by the builders before save.
	SessionsExpiredValidator func(int) error
	// DefaultJobsExpired holds the default value on creation for the "jobs_expired" field.
	DefaultJobsExpired int
	// JobsExpiredValidator is a validator for the "jobs_expired" field. It is called by the builders before save.
	JobsExpiredValidator func(int) error
	// DefaultBlobsDeleted holds the default value on creation for the "blobs_deleted" field.
	DefaultBlobsDeleted int
	// BlobsDeletedValidator is a validator for the "blobs_deleted" field. It is called by the builders before save.
	BlobsDeletedValidator func(int) error
	// DefaultErrorCount holds the default value on creation for the "error_count" field.
	DefaultErrorCount int
	// ErrorCountValidator is a validator for the "error_count" field. It is called by the builders before save.
	ErrorCountValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CleanupLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// BySessionsExpired orders the results by the sessions_expired field.
func BySessionsExpired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsExpired, opts...).ToFunc()
}

// ByJobsExpired orders the results by the jobs_expired field.
func ByJobsExpired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobsExpired, opts...).ToFunc()
}

// ByBlobsDeleted orders the results by the blobs_deleted field.
func ByBlobsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobsDeleted, opts...).ToFunc()
}

// ByErrorCount orders the results by the error_count field.
func ByErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
