// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tobi-adeyemi/extractflow/gen/ent/job"
	"github.com/tobi-adeyemi/extractflow/gen/ent/predicate"
	"github.com/tobi-adeyemi/extractflow/gen/ent/session"
	"github.com/tobi-adeyemi/extractflow/gen/ent/user"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdate) SetUserID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUserID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v string) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *string) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalUnits sets the "total_units" field.
func (_u *SessionUpdate) SetTotalUnits(v int) *SessionUpdate {
	_u.mutation.ResetTotalUnits()
	_u.mutation.SetTotalUnits(v)
	return _u
}

// SetNillableTotalUnits sets the "total_units" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTotalUnits(v *int) *SessionUpdate {
	if v != nil {
		_u.SetTotalUnits(*v)
	}
	return _u
}

// AddTotalUnits adds value to the "total_units" field.
func (_u *SessionUpdate) AddTotalUnits(v int) *SessionUpdate {
	_u.mutation.AddTotalUnits(v)
	return _u
}

// SetCompletedUnits sets the "completed_units" field.
func (_u *SessionUpdate) SetCompletedUnits(v int) *SessionUpdate {
	_u.mutation.ResetCompletedUnits()
	_u.mutation.SetCompletedUnits(v)
	return _u
}

// SetNillableCompletedUnits sets the "completed_units" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCompletedUnits(v *int) *SessionUpdate {
	if v != nil {
		_u.SetCompletedUnits(*v)
	}
	return _u
}

// AddCompletedUnits adds value to the "completed_units" field.
func (_u *SessionUpdate) AddCompletedUnits(v int) *SessionUpdate {
	_u.mutation.AddCompletedUnits(v)
	return _u
}

// SetNamingTemplate sets the "naming_template" field.
func (_u *SessionUpdate) SetNamingTemplate(v json.RawMessage) *SessionUpdate {
	_u.mutation.SetNamingTemplate(v)
	return _u
}

// AppendNamingTemplate appends value to the "naming_template" field.
func (_u *SessionUpdate) AppendNamingTemplate(v json.RawMessage) *SessionUpdate {
	_u.mutation.AppendNamingTemplate(v)
	return _u
}

// ClearNamingTemplate clears the value of the "naming_template" field.
func (_u *SessionUpdate) ClearNamingTemplate() *SessionUpdate {
	_u.mutation.ClearNamingTemplate()
	return _u
}

// SetExportColumns sets the "export_columns" field.
func (_u *SessionUpdate) SetExportColumns(v json.RawMessage) *SessionUpdate {
	_u.mutation.SetExportColumns(v)
	return _u
}

// AppendExportColumns appends value to the "export_columns" field.
func (_u *SessionUpdate) AppendExportColumns(v json.RawMessage) *SessionUpdate {
	_u.mutation.AppendExportColumns(v)
	return _u
}

// ClearExportColumns clears the value of the "export_columns" field.
func (_u *SessionUpdate) ClearExportColumns() *SessionUpdate {
	_u.mutation.ClearExportColumns()
	return _u
}

// SetPostProcessingStatus sets the "post_processing_status" field.
func (_u *SessionUpdate) SetPostProcessingStatus(v string) *SessionUpdate {
	_u.mutation.SetPostProcessingStatus(v)
	return _u
}

// SetNillablePostProcessingStatus sets the "post_processing_status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePostProcessingStatus(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPostProcessingStatus(*v)
	}
	return _u
}

// ClearPostProcessingStatus clears the value of the "post_processing_status" field.
func (_u *SessionUpdate) ClearPostProcessingStatus() *SessionUpdate {
	_u.mutation.ClearPostProcessingStatus()
	return _u
}

// SetPostProcessingStartedAt sets the "post_processing_started_at" field.
func (_u *SessionUpdate) SetPostProcessingStartedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetPostProcessingStartedAt(v)
	return _u
}

// SetNillablePostProcessingStartedAt sets the "post_processing_started_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePostProcessingStartedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetPostProcessingStartedAt(*v)
	}
	return _u
}

// ClearPostProcessingStartedAt clears the value of the "post_processing_started_at" field.
func (_u *SessionUpdate) ClearPostProcessingStartedAt() *SessionUpdate {
	_u.mutation.ClearPostProcessingStartedAt()
	return _u
}

// SetResultBundlePath sets the "result_bundle_path" field.
func (_u *SessionUpdate) SetResultBundlePath(v string) *SessionUpdate {
	_u.mutation.SetResultBundlePath(v)
	return _u
}

// SetNillableResultBundlePath sets the "result_bundle_path" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableResultBundlePath(v *string) *SessionUpdate {
	if v != nil {
		_u.SetResultBundlePath(*v)
	}
	return _u
}

// ClearResultBundlePath clears the value of the "result_bundle_path" field.
func (_u *SessionUpdate) ClearResultBundlePath() *SessionUpdate {
	_u.mutation.ClearResultBundlePath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdate) SetErrorMessage(v string) *SessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableErrorMessage(v *string) *SessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdate) ClearErrorMessage() *SessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SessionUpdate) SetExpiresAt(v time.Time) *SessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableExpiresAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *SessionUpdate) SetUser(v *User) *SessionUpdate {
	return _u.SetUserID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *SessionUpdate) AddJobIDs(ids ...uuid.UUID) *SessionUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *SessionUpdate) AddJobs(v ...*Job) *SessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SessionUpdate) ClearUser() *SessionUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *SessionUpdate) ClearJobs() *SessionUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *SessionUpdate) RemoveJobIDs(ids ...uuid.UUID) *SessionUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *SessionUpdate) RemoveJobs(v ...*Job) *SessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalUnits(); ok {
		if err := session.TotalUnitsValidator(v); err != nil {
			return &ValidationError{Name: "total_units", err: fmt.Errorf(`ent: validator failed for field "Session.total_units": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedUnits(); ok {
		if err := session.CompletedUnitsValidator(v); err != nil {
			return &ValidationError{Name: "completed_units", err: fmt.Errorf(`ent: validator failed for field "Session.completed_units": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.user"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalUnits(); ok {
		_spec.SetField(session.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalUnits(); ok {
		_spec.AddField(session.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedUnits(); ok {
		_spec.SetField(session.FieldCompletedUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedUnits(); ok {
		_spec.AddField(session.FieldCompletedUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NamingTemplate(); ok {
		_spec.SetField(session.FieldNamingTemplate, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNamingTemplate(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldNamingTemplate, value)
		})
	}
	if _u.mutation.NamingTemplateCleared() {
		_spec.ClearField(session.FieldNamingTemplate, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExportColumns(); ok {
		_spec.SetField(session.FieldExportColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExportColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldExportColumns, value)
		})
	}
	if _u.mutation.ExportColumnsCleared() {
		_spec.ClearField(session.FieldExportColumns, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostProcessingStatus(); ok {
		_spec.SetField(session.FieldPostProcessingStatus, field.TypeString, value)
	}
	if _u.mutation.PostProcessingStatusCleared() {
		_spec.ClearField(session.FieldPostProcessingStatus, field.TypeString)
	}
	if value, ok := _u.mutation.PostProcessingStartedAt(); ok {
		_spec.SetField(session.FieldPostProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PostProcessingStartedAtCleared() {
		_spec.ClearField(session.FieldPostProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResultBundlePath(); ok {
		_spec.SetField(session.FieldResultBundlePath, field.TypeString, value)
	}
	if _u.mutation.ResultBundlePathCleared() {
		_spec.ClearField(session.FieldResultBundlePath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(session.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.UserTable,
			Columns: []string{session.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.UserTable,
			Columns: []string{session.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.JobsTable,
			Columns: []string{session.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.JobsTable,
			Columns: []string{session.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.JobsTable,
			Columns: []string{session.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdateOne) SetUserID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUserID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v string) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalUnits sets the "total_units" field.
func (_u *SessionUpdateOne) SetTotalUnits(v int) *SessionUpdateOne {
	_u.mutation.ResetTotalUnits()
	_u.mutation.SetTotalUnits(v)
	return _u
}

// SetNillableTotalUnits sets the "total_units" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTotalUnits(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetTotalUnits(*v)
	}
	return _u
}

// AddTotalUnits adds value to the "total_units" field.
func (_u *SessionUpdateOne) AddTotalUnits(v int) *SessionUpdateOne {
	_u.mutation.AddTotalUnits(v)
	return _u
}

// SetCompletedUnits sets the "completed_units" field.
func (_u *SessionUpdateOne) SetCompletedUnits(v int) *SessionUpdateOne {
	_u.mutation.ResetCompletedUnits()
	_u.mutation.SetCompletedUnits(v)
	return _u
}

// SetNillableCompletedUnits sets the "completed_units" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCompletedUnits(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetCompletedUnits(*v)
	}
	return _u
}

// AddCompletedUnits adds value to the "completed_units" field.
func (_u *SessionUpdateOne) AddCompletedUnits(v int) *SessionUpdateOne {
	_u.mutation.AddCompletedUnits(v)
	return _u
}

// SetNamingTemplate sets the "naming_template" field.
func (_u *SessionUpdateOne) SetNamingTemplate(v json.RawMessage) *SessionUpdateOne {
	_u.mutation.SetNamingTemplate(v)
	return _u
}

// AppendNamingTemplate appends value to the "naming_template" field.
func (_u *SessionUpdateOne) AppendNamingTemplate(v json.RawMessage) *SessionUpdateOne {
	_u.mutation.AppendNamingTemplate(v)
	return _u
}

// ClearNamingTemplate clears the value of the "naming_template" field.
func (_u *SessionUpdateOne) ClearNamingTemplate() *SessionUpdateOne {
	_u.mutation.ClearNamingTemplate()
	return _u
}

// SetExportColumns sets the "export_columns" field.
func (_u *SessionUpdateOne) SetExportColumns(v json.RawMessage) *SessionUpdateOne {
	_u.mutation.SetExportColumns(v)
	return _u
}

// AppendExportColumns appends value to the "export_columns" field.
func (_u *SessionUpdateOne) AppendExportColumns(v json.RawMessage) *SessionUpdateOne {
	_u.mutation.AppendExportColumns(v)
	return _u
}

// ClearExportColumns clears the value of the "export_columns" field.
func (_u *SessionUpdateOne) ClearExportColumns() *SessionUpdateOne {
	_u.mutation.ClearExportColumns()
	return _u
}

// SetPostProcessingStatus sets the "post_processing_status" field.
func (_u *SessionUpdateOne) SetPostProcessingStatus(v string) *SessionUpdateOne {
	_u.mutation.SetPostProcessingStatus(v)
	return _u
}

// SetNillablePostProcessingStatus sets the "post_processing_status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePostProcessingStatus(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPostProcessingStatus(*v)
	}
	return _u
}

// ClearPostProcessingStatus clears the value of the "post_processing_status" field.
func (_u *SessionUpdateOne) ClearPostProcessingStatus() *SessionUpdateOne {
	_u.mutation.ClearPostProcessingStatus()
	return _u
}

// SetPostProcessingStartedAt sets the "post_processing_started_at" field.
func (_u *SessionUpdateOne) SetPostProcessingStartedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetPostProcessingStartedAt(v)
	return _u
}

// SetNillablePostProcessingStartedAt sets the "post_processing_started_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePostProcessingStartedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetPostProcessingStartedAt(*v)
	}
	return _u
}

// ClearPostProcessingStartedAt clears the value of the "post_processing_started_at" field.
func (_u *SessionUpdateOne) ClearPostProcessingStartedAt() *SessionUpdateOne {
	_u.mutation.ClearPostProcessingStartedAt()
	return _u
}

// SetResultBundlePath sets the "result_bundle_path" field.
func (_u *SessionUpdateOne) SetResultBundlePath(v string) *SessionUpdateOne {
	_u.mutation.SetResultBundlePath(v)
	return _u
}

// SetNillableResultBundlePath sets the "result_bundle_path" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableResultBundlePath(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetResultBundlePath(*v)
	}
	return _u
}

// ClearResultBundlePath clears the value of the "result_bundle_path" field.
func (_u *SessionUpdateOne) ClearResultBundlePath() *SessionUpdateOne {
	_u.mutation.ClearResultBundlePath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdateOne) SetErrorMessage(v string) *SessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableErrorMessage(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdateOne) ClearErrorMessage() *SessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SessionUpdateOne) SetExpiresAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableExpiresAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *SessionUpdateOne) SetUser(v *User) *SessionUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *SessionUpdateOne) AddJobIDs(ids ...uuid.UUID) *SessionUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *SessionUpdateOne) AddJobs(v ...*Job) *SessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SessionUpdateOne) ClearUser() *SessionUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *SessionUpdateOne) ClearJobs() *SessionUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *SessionUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *SessionUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *SessionUpdateOne) RemoveJobs(v ...*Job) *SessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalUnits(); ok {
		if err := session.TotalUnitsValidator(v); err != nil {
			return &ValidationError{Name: "total_units", err: fmt.Errorf(`ent: validator failed for field "Session.total_units": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedUnits(); ok {
		if err := session.CompletedUnitsValidator(v); err != nil {
			return &ValidationError{Name: "completed_units", err: fmt.Errorf(`ent: validator failed for field "Session.completed_units": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.user"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalUnits(); ok {
		_spec.SetField(session.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalUnits(); ok {
		_spec.AddField(session.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedUnits(); ok {
		_spec.SetField(session.FieldCompletedUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedUnits(); ok {
		_spec.AddField(session.FieldCompletedUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NamingTemplate(); ok {
		_spec.SetField(session.FieldNamingTemplate, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNamingTemplate(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldNamingTemplate, value)
		})
	}
	if _u.mutation.NamingTemplateCleared() {
		_spec.ClearField(session.FieldNamingTemplate, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExportColumns(); ok {
		_spec.SetField(session.FieldExportColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExportColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldExportColumns, value)
		})
	}
	if _u.mutation.ExportColumnsCleared() {
		_spec.ClearField(session.FieldExportColumns, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostProcessingStatus(); ok {
		_spec.SetField(session.FieldPostProcessingStatus, field.TypeString, value)
	}
	if _u.mutation.PostProcessingStatusCleared() {
		_spec.ClearField(session.FieldPostProcessingStatus, field.TypeString)
	}
	if value, ok := _u.mutation.PostProcessingStartedAt(); ok {
		_spec.SetField(session.FieldPostProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PostProcessingStartedAtCleared() {
		_spec.ClearField(session.FieldPostProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResultBundlePath(); ok {
		_spec.SetField(session.FieldResultBundlePath, field.TypeString, value)
	}
	if _u.mutation.ResultBundlePathCleared() {
		_spec.ClearField(session.FieldResultBundlePath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(session.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.UserTable,
			Columns: []string{session.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.UserTable,
			Columns: []string{session.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.JobsTable,
			Columns: []string{session.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.JobsTable,
			Columns: []string{session.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.JobsTable,
			Columns: []string{session.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
