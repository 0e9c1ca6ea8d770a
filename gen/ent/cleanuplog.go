// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tobi-adeyemi/extractflow/gen/ent/cleanuplog"
)

// CleanupLog is the model entity for the CleanupLog schema.
type CleanupLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// SessionsExpired holds the value of the "sessions_expired" field.
	SessionsExpired int `json:"sessions_expired,omitempty"`
	// JobsExpired holds the value of the "jobs_expired" field.
	JobsExpired int `json:"jobs_expired,omitempty"`
	// BlobsDeleted holds the value of the "blobs_deleted" field.
	BlobsDeleted int `json:"blobs_deleted,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int `json:"error_count,omitempty"`
	// Status holds the value of the "status" field.
	Status       string `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CleanupLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cleanuplog.FieldSessionsExpired, cleanuplog.FieldJobsExpired, cleanuplog.FieldBlobsDeleted, cleanuplog.FieldErrorCount:
			values[i] = new(sql.NullInt64)
		case cleanuplog.FieldStatus:
			values[i] = new(sql.NullString)
		case cleanuplog.FieldStartedAt, cleanuplog.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case cleanuplog.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CleanupLog fields.
func (_m *CleanupLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cleanuplog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cleanuplog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case cleanuplog.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case cleanuplog.FieldSessionsExpired:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_expired", values[i])
			} else if value.Valid {
				_m.SessionsExpired = int(value.Int64)
			}
		case cleanuplog.FieldJobsExpired:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field jobs_expired", values[i])
			} else if value.Valid {
				_m.JobsExpired = int(value.Int64)
			}
		case cleanuplog.FieldBlobsDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blobs_deleted", values[i])
			} else if value.Valid {
				_m.BlobsDeleted = int(value.Int64)
			}
		case cleanuplog.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case cleanuplog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CleanupLog.
// This includes values selected through modifiers, order, etc.
func (_m *CleanupLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CleanupLog.
// Note that you need to call CleanupLog.Unwrap() before calling this method if this CleanupLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CleanupLog) Update() *CleanupLogUpdateOne {
	return NewCleanupLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CleanupLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CleanupLog) Unwrap() *CleanupLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CleanupLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CleanupLog) String() string {
	var builder strings.Builder
	builder.WriteString("CleanupLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("sessions_expired=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsExpired))
	builder.WriteString(", ")
	builder.WriteString("jobs_expired=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobsExpired))
	builder.WriteString(", ")
	builder.WriteString("blobs_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlobsDeleted))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// CleanupLogs is a parsable slice of CleanupLog.
type CleanupLogs []*CleanupLog
