// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tobi-adeyemi/extractflow/gen/ent/cleanuplog"
	"github.com/tobi-adeyemi/extractflow/gen/ent/predicate"
)

// CleanupLogUpdate is the builder for updating CleanupLog entities.
type CleanupLogUpdate struct {
	config
	hooks    []Hook
	mutation *CleanupLogMutation
}

// Where appends a list predicates to the CleanupLogUpdate builder.
func (_u *CleanupLogUpdate) Where(ps ...predicate.CleanupLog) *CleanupLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CleanupLogUpdate) SetCompletedAt(v time.Time) *CleanupLogUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CleanupLogUpdate) SetNillableCompletedAt(v *time.Time) *CleanupLogUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CleanupLogUpdate) ClearCompletedAt() *CleanupLogUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSessionsExpired sets the "sessions_expired" field.
func (_u *CleanupLogUpdate) SetSessionsExpired(v int) *CleanupLogUpdate {
	_u.mutation.ResetSessionsExpired()
	_u.mutation.SetSessionsExpired(v)
	return _u
}

// SetNillableSessionsExpired sets the "sessions_expired" field if the given value is not nil.
func (_u *CleanupLogUpdate) SetNillableSessionsExpired(v *int) *CleanupLogUpdate {
	if v != nil {
		_u.SetSessionsExpired(*v)
	}
	return _u
}

// AddSessionsExpired adds value to the "sessions_expired" field.
func (_u *CleanupLogUpdate) AddSessionsExpired(v int) *CleanupLogUpdate {
	_u.mutation.AddSessionsExpired(v)
	return _u
}

// SetJobsExpired sets the "jobs_expired" field.
func (_u *CleanupLogUpdate) SetJobsExpired(v int) *CleanupLogUpdate {
	_u.mutation.ResetJobsExpired()
	_u.mutation.SetJobsExpired(v)
	return _u
}

// SetNillableJobsExpired sets the "jobs_expired" field if the given value is not nil.
func (_u *CleanupLogUpdate) SetNillableJobsExpired(v *int) *CleanupLogUpdate {
	if v != nil {
		_u.SetJobsExpired(*v)
	}
	return _u
}

// AddJobsExpired adds value to the "jobs_expired" field.
func (_u *CleanupLogUpdate) AddJobsExpired(v int) *CleanupLogUpdate {
	_u.mutation.AddJobsExpired(v)
	return _u
}

// SetBlobsDeleted sets the "blobs_deleted" field.
func (_u *CleanupLogUpdate) SetBlobsDeleted(v int) *CleanupLogUpdate {
	_u.mutation.ResetBlobsDeleted()
	_u.mutation.SetBlobsDeleted(v)
	return _u
}

// SetNillableBlobsDeleted sets the "blobs_deleted" field if the given value is not nil.
func (_u *CleanupLogUpdate) SetNillableBlobsDeleted(v *int) *CleanupLogUpdate {
	if v != nil {
		_u.SetBlobsDeleted(*v)
	}
	return _u
}

// AddBlobsDeleted adds value to the "blobs_deleted" field.
func (_u *CleanupLogUpdate) AddBlobsDeleted(v int) *CleanupLogUpdate {
	_u.mutation.AddBlobsDeleted(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *CleanupLogUpdate) SetErrorCount(v int) *CleanupLogUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *CleanupLogUpdate) SetNillableErrorCount(v *int) *CleanupLogUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *CleanupLogUpdate) AddErrorCount(v int) *CleanupLogUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CleanupLogUpdate) SetStatus(v string) *CleanupLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CleanupLogUpdate) SetNillableStatus(v *string) *CleanupLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the CleanupLogMutation object of the builder.
func (_u *CleanupLogUpdate) Mutation() *CleanupLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CleanupLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CleanupLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CleanupLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CleanupLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CleanupLogUpdate) check() error {
	if v, ok := _u.mutation.SessionsExpired(); ok {
		if err := cleanuplog.SessionsExpiredValidator(v); err != nil {
			return &ValidationError{Name: "sessions_expired", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.sessions_expired": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobsExpired(); ok {
		if err := cleanuplog.JobsExpiredValidator(v); err != nil {
			return &ValidationError{Name: "jobs_expired", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.jobs_expired": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlobsDeleted(); ok {
		if err := cleanuplog.BlobsDeletedValidator(v); err != nil {
			return &ValidationError{Name: "blobs_deleted", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.blobs_deleted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorCount(); ok {
		if err := cleanuplog.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.error_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := cleanuplog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CleanupLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cleanuplog.Table, cleanuplog.Columns, sqlgraph.NewFieldSpec(cleanuplog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(cleanuplog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(cleanuplog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SessionsExpired(); ok {
		_spec.SetField(cleanuplog.FieldSessionsExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsExpired(); ok {
		_spec.AddField(cleanuplog.FieldSessionsExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.JobsExpired(); ok {
		_spec.SetField(cleanuplog.FieldJobsExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobsExpired(); ok {
		_spec.AddField(cleanuplog.FieldJobsExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlobsDeleted(); ok {
		_spec.SetField(cleanuplog.FieldBlobsDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlobsDeleted(); ok {
		_spec.AddField(cleanuplog.FieldBlobsDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(cleanuplog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(cleanuplog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(cleanuplog.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cleanuplog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CleanupLogUpdateOne is the builder for updating a single CleanupLog entity.
type CleanupLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CleanupLogMutation
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CleanupLogUpdateOne) SetCompletedAt(v time.Time) *CleanupLogUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CleanupLogUpdateOne) SetNillableCompletedAt(v *time.Time) *CleanupLogUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CleanupLogUpdateOne) ClearCompletedAt() *CleanupLogUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSessionsExpired sets the "sessions_expired" field.
func (_u *CleanupLogUpdateOne) SetSessionsExpired(v int) *CleanupLogUpdateOne {
	_u.mutation.ResetSessionsExpired()
	_u.mutation.SetSessionsExpired(v)
	return _u
}

// SetNillableSessionsExpired sets the "sessions_expired" field if the given value is not nil.
func (_u *CleanupLogUpdateOne) SetNillableSessionsExpired(v *int) *CleanupLogUpdateOne {
	if v != nil {
		_u.SetSessionsExpired(*v)
	}
	return _u
}

// AddSessionsExpired adds value to the "sessions_expired" field.
func (_u *CleanupLogUpdateOne) AddSessionsExpired(v int) *CleanupLogUpdateOne {
	_u.mutation.AddSessionsExpired(v)
	return _u
}

// SetJobsExpired sets the "jobs_expired" field.
func (_u *CleanupLogUpdateOne) SetJobsExpired(v int) *CleanupLogUpdateOne {
	_u.mutation.ResetJobsExpired()
	_u.mutation.SetJobsExpired(v)
	return _u
}

// SetNillableJobsExpired sets the "jobs_expired" field if the given value is not nil.
func (_u *CleanupLogUpdateOne) SetNillableJobsExpired(v *int) *CleanupLogUpdateOne {
	if v != nil {
		_u.SetJobsExpired(*v)
	}
	return _u
}

// AddJobsExpired adds value to the "jobs_expired" field.
func (_u *CleanupLogUpdateOne) AddJobsExpired(v int) *CleanupLogUpdateOne {
	_u.mutation.AddJobsExpired(v)
	return _u
}

// SetBlobsDeleted sets the "blobs_deleted" field.
func (_u *CleanupLogUpdateOne) SetBlobsDeleted(v int) *CleanupLogUpdateOne {
	_u.mutation.ResetBlobsDeleted()
	_u.mutation.SetBlobsDeleted(v)
	return _u
}

// SetNillableBlobsDeleted sets the "blobs_deleted" field if the given value is not nil.
func (_u *CleanupLogUpdateOne) SetNillableBlobsDeleted(v *int) *CleanupLogUpdateOne {
	if v != nil {
		_u.SetBlobsDeleted(*v)
	}
	return _u
}

// AddBlobsDeleted adds value to the "blobs_deleted" field.
func (_u *CleanupLogUpdateOne) AddBlobsDeleted(v int) *CleanupLogUpdateOne {
	_u.mutation.AddBlobsDeleted(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *CleanupLogUpdateOne) SetErrorCount(v int) *CleanupLogUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *CleanupLogUpdateOne) SetNillableErrorCount(v *int) *CleanupLogUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *CleanupLogUpdateOne) AddErrorCount(v int) *CleanupLogUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CleanupLogUpdateOne) SetStatus(v string) *CleanupLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CleanupLogUpdateOne) SetNillableStatus(v *string) *CleanupLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the CleanupLogMutation object of the builder.
func (_u *CleanupLogUpdateOne) Mutation() *CleanupLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the CleanupLogUpdate builder.
func (_u *CleanupLogUpdateOne) Where(ps ...predicate.CleanupLog) *CleanupLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CleanupLogUpdateOne) Select(field string, fields ...string) *CleanupLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CleanupLog entity.
func (_u *CleanupLogUpdateOne) Save(ctx context.Context) (*CleanupLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CleanupLogUpdateOne) SaveX(ctx context.Context) *CleanupLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CleanupLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CleanupLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CleanupLogUpdateOne) check() error {
	if v, ok := _u.mutation.SessionsExpired(); ok {
		if err := cleanuplog.SessionsExpiredValidator(v); err != nil {
			return &ValidationError{Name: "sessions_expired", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.sessions_expired": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobsExpired(); ok {
		if err := cleanuplog.JobsExpiredValidator(v); err != nil {
			return &ValidationError{Name: "jobs_expired", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.jobs_expired": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlobsDeleted(); ok {
		if err := cleanuplog.BlobsDeletedValidator(v); err != nil {
			return &ValidationError{Name: "blobs_deleted", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.blobs_deleted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorCount(); ok {
		if err := cleanuplog.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.error_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := cleanuplog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CleanupLogUpdateOne) sqlSave(ctx context.Context) (_node *CleanupLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cleanuplog.Table, cleanuplog.Columns, sqlgraph.NewFieldSpec(cleanuplog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CleanupLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cleanuplog.FieldID)
		for _, f := range fields {
			if !cleanuplog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cleanuplog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(cleanuplog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(cleanuplog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SessionsExpired(); ok {
		_spec.SetField(cleanuplog.FieldSessionsExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsExpired(); ok {
		_spec.AddField(cleanuplog.FieldSessionsExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.JobsExpired(); ok {
		_spec.SetField(cleanuplog.FieldJobsExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobsExpired(); ok {
		_spec.AddField(cleanuplog.FieldJobsExpired, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlobsDeleted(); ok {
		_spec.SetField(cleanuplog.FieldBlobsDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlobsDeleted(); ok {
		_spec.AddField(cleanuplog.FieldBlobsDeleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(cleanuplog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(cleanuplog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(cleanuplog.FieldStatus, field.TypeString, value)
	}
	_node = &CleanupLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cleanuplog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
