// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tobi-adeyemi/extractflow/gen/ent/cleanuplog"
)

// CleanupLogCreate is the builder for creating a CleanupLog entity.
type CleanupLogCreate struct {
	config
	mutation *CleanupLogMutation
	hooks    []Hook
}

// SetStartedAt sets the "started_at" field.
func (_c *CleanupLogCreate) SetStartedAt(v time.Time) *CleanupLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CleanupLogCreate) SetNillableStartedAt(v *time.Time) *CleanupLogCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CleanupLogCreate) SetCompletedAt(v time.Time) *CleanupLogCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CleanupLogCreate) SetNillableCompletedAt(v *time.Time) *CleanupLogCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetSessionsExpired sets the "sessions_expired" field.
func (_c *CleanupLogCreate) SetSessionsExpired(v int) *CleanupLogCreate {
	_c.mutation.SetSessionsExpired(v)
	return _c
}

// SetNillableSessionsExpired sets the "sessions_expired" field if the given value is not nil.
func (_c *CleanupLogCreate) SetNillableSessionsExpired(v *int) *CleanupLogCreate {
	if v != nil {
		_c.SetSessionsExpired(*v)
	}
	return _c
}

// SetJobsExpired sets the "jobs_expired" field.
func (_c *CleanupLogCreate) SetJobsExpired(v int) *CleanupLogCreate {
	_c.mutation.SetJobsExpired(v)
	return _c
}

// SetNillableJobsExpired sets the "jobs_expired" field if the given value is not nil.
func (_c *CleanupLogCreate) SetNillableJobsExpired(v *int) *CleanupLogCreate {
	if v != nil {
		_c.SetJobsExpired(*v)
	}
	return _c
}

// SetBlobsDeleted sets the "blobs_deleted" field.
func (_c *CleanupLogCreate) SetBlobsDeleted(v int) *CleanupLogCreate {
	_c.mutation.SetBlobsDeleted(v)
	return _c
}

// SetNillableBlobsDeleted sets the "blobs_deleted" field if the given value is not nil.
func (_c *CleanupLogCreate) SetNillableBlobsDeleted(v *int) *CleanupLogCreate {
	if v != nil {
		_c.SetBlobsDeleted(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *CleanupLogCreate) SetErrorCount(v int) *CleanupLogCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *CleanupLogCreate) SetNillableErrorCount(v *int) *CleanupLogCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CleanupLogCreate) SetStatus(v string) *CleanupLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CleanupLogCreate) SetNillableStatus(v *string) *CleanupLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CleanupLogCreate) SetID(v uuid.UUID) *CleanupLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CleanupLogCreate) SetNillableID(v *uuid.UUID) *CleanupLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CleanupLogMutation object of the builder.
func (_c *CleanupLogCreate) Mutation() *CleanupLogMutation {
	return _c.mutation
}

// Save creates the CleanupLog in the database.
func (_c *CleanupLogCreate) Save(ctx context.Context) (*CleanupLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CleanupLogCreate) SaveX(ctx context.Context) *CleanupLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CleanupLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CleanupLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CleanupLogCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := cleanuplog.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.SessionsExpired(); !ok {
		v := cleanuplog.DefaultSessionsExpired
		_c.mutation.SetSessionsExpired(v)
	}
	if _, ok := _c.mutation.JobsExpired(); !ok {
		v := cleanuplog.DefaultJobsExpired
		_c.mutation.SetJobsExpired(v)
	}
	if _, ok := _c.mutation.BlobsDeleted(); !ok {
		v := cleanuplog.DefaultBlobsDeleted
		_c.mutation.SetBlobsDeleted(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := cleanuplog.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := cleanuplog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cleanuplog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CleanupLogCreate) check() error {
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "CleanupLog.started_at"`)}
	}
	if _, ok := _c.mutation.SessionsExpired(); !ok {
		return &ValidationError{Name: "sessions_expired", err: errors.New(`ent: missing required field "CleanupLog.sessions_expired"`)}
	}
	if v, ok := _c.mutation.SessionsExpired(); ok {
		if err := cleanuplog.SessionsExpiredValidator(v); err != nil {
			return &ValidationError{Name: "sessions_expired", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.sessions_expired": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JobsExpired(); !ok {
		return &ValidationError{Name: "jobs_expired", err: errors.New(`ent: missing required field "CleanupLog.jobs_expired"`)}
	}
	if v, ok := _c.mutation.JobsExpired(); ok {
		if err := cleanuplog.JobsExpiredValidator(v); err != nil {
			return &ValidationError{Name: "jobs_expired", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.jobs_expired": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlobsDeleted(); !ok {
		return &ValidationError{Name: "blobs_deleted", err: errors.New(`ent: missing required field "CleanupLog.blobs_deleted"`)}
	}
	if v, ok := _c.mutation.BlobsDeleted(); ok {
		if err := cleanuplog.BlobsDeletedValidator(v); err != nil {
			return &ValidationError{Name: "blobs_deleted", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.blobs_deleted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "CleanupLog.error_count"`)}
	}
	if v, ok := _c.mutation.ErrorCount(); ok {
		if err := cleanuplog.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.error_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CleanupLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := cleanuplog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CleanupLog.status": %w`, err)}
		}
	}
	return nil
}

func (_c *CleanupLogCreate) sqlSave(ctx context.Context) (*CleanupLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CleanupLogCreate) createSpec() (*CleanupLog, *sqlgraph.CreateSpec) {
	var (
		_node = &CleanupLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cleanuplog.Table, sqlgraph.NewFieldSpec(cleanuplog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(cleanuplog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(cleanuplog.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.SessionsExpired(); ok {
		_spec.SetField(cleanuplog.FieldSessionsExpired, field.TypeInt, value)
		_node.SessionsExpired = value
	}
	if value, ok := _c.mutation.JobsExpired(); ok {
		_spec.SetField(cleanuplog.FieldJobsExpired, field.TypeInt, value)
		_node.JobsExpired = value
	}
	if value, ok := _c.mutation.BlobsDeleted(); ok {
		_spec.SetField(cleanuplog.FieldBlobsDeleted, field.TypeInt, value)
		_node.BlobsDeleted = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(cleanuplog.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(cleanuplog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// CleanupLogCreateBulk is the builder for creating many CleanupLog entities in bulk.
type CleanupLogCreateBulk struct {
	config
	err      error
	builders []*CleanupLogCreate
}

// Save creates the CleanupLog entities in the database.
func (_c *CleanupLogCreateBulk) Save(ctx context.Context) ([]*CleanupLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CleanupLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CleanupLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CleanupLogCreateBulk) SaveX(ctx context.Context) []*CleanupLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CleanupLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CleanupLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
