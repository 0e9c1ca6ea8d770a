// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tobi-adeyemi/extractflow/gen/ent/cleanuplog"
	"github.com/tobi-adeyemi/extractflow/gen/ent/predicate"
)

// CleanupLogDelete is the builder for deleting a CleanupLog entity.
type CleanupLogDelete struct {
	config
	hooks    []Hook
	mutation *CleanupLogMutation
}

// Where appends a list predicates to the CleanupLogDelete builder.
func (_d *CleanupLogDelete) Where(ps ...predicate.CleanupLog) *CleanupLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CleanupLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CleanupLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CleanupLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cleanuplog.Table, sqlgraph.NewFieldSpec(cleanuplog.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CleanupLogDeleteOne is the builder for deleting a single CleanupLog entity.
type CleanupLogDeleteOne struct {
	_d *CleanupLogDelete
}

// Where appends a list predicates to the CleanupLogDelete builder.
func (_d *CleanupLogDeleteOne) Where(ps ...predicate.CleanupLog) *CleanupLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CleanupLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cleanuplog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CleanupLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
