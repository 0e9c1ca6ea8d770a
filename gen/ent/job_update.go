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

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *JobUpdate) SetSessionID(v uuid.UUID) *JobUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSessionID(v *uuid.UUID) *JobUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *JobUpdate) ClearSessionID() *JobUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *JobUpdate) SetUserID(v uuid.UUID) *JobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableUserID(v *uuid.UUID) *JobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v string) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *string) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *JobUpdate) SetFormat(v string) *JobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFormat(v *string) *JobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *JobUpdate) SetSourceFilename(v string) *JobUpdate {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSourceFilename(v *string) *JobUpdate {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *JobUpdate) SetFilePath(v string) *JobUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFilePath(v *string) *JobUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *JobUpdate) SetPageCount(v int) *JobUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePageCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *JobUpdate) AddPageCount(v int) *JobUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetCreditsCharged sets the "credits_charged" field.
func (_u *JobUpdate) SetCreditsCharged(v int) *JobUpdate {
	_u.mutation.ResetCreditsCharged()
	_u.mutation.SetCreditsCharged(v)
	return _u
}

// SetNillableCreditsCharged sets the "credits_charged" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreditsCharged(v *int) *JobUpdate {
	if v != nil {
		_u.SetCreditsCharged(*v)
	}
	return _u
}

// AddCreditsCharged adds value to the "credits_charged" field.
func (_u *JobUpdate) AddCreditsCharged(v int) *JobUpdate {
	_u.mutation.AddCreditsCharged(v)
	return _u
}

// SetExternalOperationRef sets the "external_operation_ref" field.
func (_u *JobUpdate) SetExternalOperationRef(v string) *JobUpdate {
	_u.mutation.SetExternalOperationRef(v)
	return _u
}

// SetNillableExternalOperationRef sets the "external_operation_ref" field if the given value is not nil.
func (_u *JobUpdate) SetNillableExternalOperationRef(v *string) *JobUpdate {
	if v != nil {
		_u.SetExternalOperationRef(*v)
	}
	return _u
}

// ClearExternalOperationRef clears the value of the "external_operation_ref" field.
func (_u *JobUpdate) ClearExternalOperationRef() *JobUpdate {
	_u.mutation.ClearExternalOperationRef()
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *JobUpdate) SetExtractedFields(v json.RawMessage) *JobUpdate {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *JobUpdate) AppendExtractedFields(v json.RawMessage) *JobUpdate {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *JobUpdate) ClearExtractedFields() *JobUpdate {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPollingStartedAt sets the "polling_started_at" field.
func (_u *JobUpdate) SetPollingStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetPollingStartedAt(v)
	return _u
}

// SetNillablePollingStartedAt sets the "polling_started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePollingStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetPollingStartedAt(*v)
	}
	return _u
}

// ClearPollingStartedAt clears the value of the "polling_started_at" field.
func (_u *JobUpdate) ClearPollingStartedAt() *JobUpdate {
	_u.mutation.ClearPollingStartedAt()
	return _u
}

// SetLastPolledAt sets the "last_polled_at" field.
func (_u *JobUpdate) SetLastPolledAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastPolledAt(v)
	return _u
}

// SetNillableLastPolledAt sets the "last_polled_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastPolledAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastPolledAt(*v)
	}
	return _u
}

// ClearLastPolledAt clears the value of the "last_polled_at" field.
func (_u *JobUpdate) ClearLastPolledAt() *JobUpdate {
	_u.mutation.ClearLastPolledAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *JobUpdate) SetExpiresAt(v time.Time) *JobUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableExpiresAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *JobUpdate) SetSession(v *Session) *JobUpdate {
	return _u.SetSessionID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *JobUpdate) SetUser(v *User) *JobUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *JobUpdate) ClearSession() *JobUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *JobUpdate) ClearUser() *JobUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := job.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Job.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := job.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "Job.source_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := job.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Job.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageCount(); ok {
		if err := job.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "Job.page_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreditsCharged(); ok {
		if err := job.CreditsChargedValidator(v); err != nil {
			return &ValidationError{Name: "credits_charged", err: fmt.Errorf(`ent: validator failed for field "Job.credits_charged": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.user"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(job.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(job.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(job.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(job.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(job.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsCharged(); ok {
		_spec.SetField(job.FieldCreditsCharged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsCharged(); ok {
		_spec.AddField(job.FieldCreditsCharged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExternalOperationRef(); ok {
		_spec.SetField(job.FieldExternalOperationRef, field.TypeString, value)
	}
	if _u.mutation.ExternalOperationRefCleared() {
		_spec.ClearField(job.FieldExternalOperationRef, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(job.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(job.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PollingStartedAt(); ok {
		_spec.SetField(job.FieldPollingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PollingStartedAtCleared() {
		_spec.ClearField(job.FieldPollingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastPolledAt(); ok {
		_spec.SetField(job.FieldLastPolledAt, field.TypeTime, value)
	}
	if _u.mutation.LastPolledAtCleared() {
		_spec.ClearField(job.FieldLastPolledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(job.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.SessionTable,
			Columns: []string{job.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.SessionTable,
			Columns: []string{job.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.UserTable,
			Columns: []string{job.UserColumn},
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
			Table:   job.UserTable,
			Columns: []string{job.UserColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetSessionID sets the "session_id" field.
func (_u *JobUpdateOne) SetSessionID(v uuid.UUID) *JobUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSessionID(v *uuid.UUID) *JobUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *JobUpdateOne) ClearSessionID() *JobUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *JobUpdateOne) SetUserID(v uuid.UUID) *JobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableUserID(v *uuid.UUID) *JobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v string) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *JobUpdateOne) SetFormat(v string) *JobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFormat(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *JobUpdateOne) SetSourceFilename(v string) *JobUpdateOne {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSourceFilename(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *JobUpdateOne) SetFilePath(v string) *JobUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFilePath(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *JobUpdateOne) SetPageCount(v int) *JobUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePageCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *JobUpdateOne) AddPageCount(v int) *JobUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetCreditsCharged sets the "credits_charged" field.
func (_u *JobUpdateOne) SetCreditsCharged(v int) *JobUpdateOne {
	_u.mutation.ResetCreditsCharged()
	_u.mutation.SetCreditsCharged(v)
	return _u
}

// SetNillableCreditsCharged sets the "credits_charged" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreditsCharged(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetCreditsCharged(*v)
	}
	return _u
}

// AddCreditsCharged adds value to the "credits_charged" field.
func (_u *JobUpdateOne) AddCreditsCharged(v int) *JobUpdateOne {
	_u.mutation.AddCreditsCharged(v)
	return _u
}

// SetExternalOperationRef sets the "external_operation_ref" field.
func (_u *JobUpdateOne) SetExternalOperationRef(v string) *JobUpdateOne {
	_u.mutation.SetExternalOperationRef(v)
	return _u
}

// SetNillableExternalOperationRef sets the "external_operation_ref" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableExternalOperationRef(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetExternalOperationRef(*v)
	}
	return _u
}

// ClearExternalOperationRef clears the value of the "external_operation_ref" field.
func (_u *JobUpdateOne) ClearExternalOperationRef() *JobUpdateOne {
	_u.mutation.ClearExternalOperationRef()
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *JobUpdateOne) SetExtractedFields(v json.RawMessage) *JobUpdateOne {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *JobUpdateOne) AppendExtractedFields(v json.RawMessage) *JobUpdateOne {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *JobUpdateOne) ClearExtractedFields() *JobUpdateOne {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPollingStartedAt sets the "polling_started_at" field.
func (_u *JobUpdateOne) SetPollingStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetPollingStartedAt(v)
	return _u
}

// SetNillablePollingStartedAt sets the "polling_started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePollingStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetPollingStartedAt(*v)
	}
	return _u
}

// ClearPollingStartedAt clears the value of the "polling_started_at" field.
func (_u *JobUpdateOne) ClearPollingStartedAt() *JobUpdateOne {
	_u.mutation.ClearPollingStartedAt()
	return _u
}

// SetLastPolledAt sets the "last_polled_at" field.
func (_u *JobUpdateOne) SetLastPolledAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastPolledAt(v)
	return _u
}

// SetNillableLastPolledAt sets the "last_polled_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastPolledAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastPolledAt(*v)
	}
	return _u
}

// ClearLastPolledAt clears the value of the "last_polled_at" field.
func (_u *JobUpdateOne) ClearLastPolledAt() *JobUpdateOne {
	_u.mutation.ClearLastPolledAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *JobUpdateOne) SetExpiresAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableExpiresAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *JobUpdateOne) SetSession(v *Session) *JobUpdateOne {
	return _u.SetSessionID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *JobUpdateOne) SetUser(v *User) *JobUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *JobUpdateOne) ClearSession() *JobUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *JobUpdateOne) ClearUser() *JobUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := job.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Job.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := job.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "Job.source_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := job.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Job.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageCount(); ok {
		if err := job.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "Job.page_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreditsCharged(); ok {
		if err := job.CreditsChargedValidator(v); err != nil {
			return &ValidationError{Name: "credits_charged", err: fmt.Errorf(`ent: validator failed for field "Job.credits_charged": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.user"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(job.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(job.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(job.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(job.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(job.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsCharged(); ok {
		_spec.SetField(job.FieldCreditsCharged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsCharged(); ok {
		_spec.AddField(job.FieldCreditsCharged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExternalOperationRef(); ok {
		_spec.SetField(job.FieldExternalOperationRef, field.TypeString, value)
	}
	if _u.mutation.ExternalOperationRefCleared() {
		_spec.ClearField(job.FieldExternalOperationRef, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(job.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(job.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PollingStartedAt(); ok {
		_spec.SetField(job.FieldPollingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PollingStartedAtCleared() {
		_spec.ClearField(job.FieldPollingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastPolledAt(); ok {
		_spec.SetField(job.FieldLastPolledAt, field.TypeTime, value)
	}
	if _u.mutation.LastPolledAtCleared() {
		_spec.ClearField(job.FieldLastPolledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(job.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.SessionTable,
			Columns: []string{job.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.SessionTable,
			Columns: []string{job.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.UserTable,
			Columns: []string{job.UserColumn},
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
			Table:   job.UserTable,
			Columns: []string{job.UserColumn},
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
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
