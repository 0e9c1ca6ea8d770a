// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tobi-adeyemi/extractflow/db/ent/schema"
	"github.com/tobi-adeyemi/extractflow/gen/ent/cleanuplog"
	"github.com/tobi-adeyemi/extractflow/gen/ent/job"
	"github.com/tobi-adeyemi/extractflow/gen/ent/session"
	"github.com/tobi-adeyemi/extractflow/gen/ent/transaction"
	"github.com/tobi-adeyemi/extractflow/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cleanuplogFields := schema.CleanupLog{}.Fields()
	_ = cleanuplogFields
	// cleanuplogDescStartedAt is the schema descriptor for started_at field.
	cleanuplogDescStartedAt := cleanuplogFields[1].Descriptor()
	// cleanuplog.DefaultStartedAt holds the default value on creation for the started_at field.
	cleanuplog.DefaultStartedAt = cleanuplogDescStartedAt.Default.(func() time.Time)
	// cleanuplogDescSessionsExpired is the schema descriptor for sessions_expired field.
	cleanuplogDescSessionsExpired := cleanuplogFields[3].Descriptor()
	// cleanuplog.DefaultSessionsExpired holds the default value on creation for the sessions_expired field.
	cleanuplog.DefaultSessionsExpired = cleanuplogDescSessionsExpired.Default.(int)
	// cleanuplog.SessionsExpiredValidator is a validator for the "sessions_expired" field. It is called by the builders before save.
	cleanuplog.SessionsExpiredValidator = cleanuplogDescSessionsExpired.Validators[0].(func(int) error)
	// cleanuplogDescJobsExpired is the schema descriptor for jobs_expired field.
	cleanuplogDescJobsExpired := cleanuplogFields[4].Descriptor()
	// cleanuplog.DefaultJobsExpired holds the default value on creation for the jobs_expired field.
	cleanuplog.DefaultJobsExpired = cleanuplogDescJobsExpired.Default.(int)
	// cleanuplog.JobsExpiredValidator is a validator for the "jobs_expired" field. It is called by the builders before save.
	cleanuplog.JobsExpiredValidator = cleanuplogDescJobsExpired.Validators[0].(func(int) error)
	// cleanuplogDescBlobsDeleted is the schema descriptor for blobs_deleted field.
	cleanuplogDescBlobsDeleted := cleanuplogFields[5].Descriptor()
	// cleanuplog.DefaultBlobsDeleted holds the default value on creation for the blobs_deleted field.
	cleanuplog.DefaultBlobsDeleted = cleanuplogDescBlobsDeleted.Default.(int)
	// cleanuplog.BlobsDeletedValidator is a validator for the "blobs_deleted" field. It is called by the builders before save.
	cleanuplog.BlobsDeletedValidator = cleanuplogDescBlobsDeleted.Validators[0].(func(int) error)
	// cleanuplogDescErrorCount is the schema descriptor for error_count field.
	cleanuplogDescErrorCount := cleanuplogFields[6].Descriptor()
	// cleanuplog.DefaultErrorCount holds the default value on creation for the error_count field.
	cleanuplog.DefaultErrorCount = cleanuplogDescErrorCount.Default.(int)
	// cleanuplog.ErrorCountValidator is a validator for the "error_count" field. It is called by the builders before save.
	cleanuplog.ErrorCountValidator = cleanuplogDescErrorCount.Validators[0].(func(int) error)
	// cleanuplogDescStatus is the schema descriptor for status field.
	cleanuplogDescStatus := cleanuplogFields[7].Descriptor()
	// cleanuplog.DefaultStatus holds the default value on creation for the status field.
	cleanuplog.DefaultStatus = cleanuplogDescStatus.Default.(string)
	// cleanuplog.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	cleanuplog.StatusValidator = cleanuplogDescStatus.Validators[0].(func(string) error)
	// cleanuplogDescID is the schema descriptor for id field.
	cleanuplogDescID := cleanuplogFields[0].Descriptor()
	// cleanuplog.DefaultID holds the default value on creation for the id field.
	cleanuplog.DefaultID = cleanuplogDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[3].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescFormat is the schema descriptor for format field.
	jobDescFormat := jobFields[4].Descriptor()
	// job.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	job.FormatValidator = func() func(string) error {
		validators := jobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescSourceFilename is the schema descriptor for source_filename field.
	jobDescSourceFilename := jobFields[5].Descriptor()
	// job.SourceFilenameValidator is a validator for the "source_filename" field. It is called by the builders before save.
	job.SourceFilenameValidator = jobDescSourceFilename.Validators[0].(func(string) error)
	// jobDescFilePath is the schema descriptor for file_path field.
	jobDescFilePath := jobFields[6].Descriptor()
	// job.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	job.FilePathValidator = jobDescFilePath.Validators[0].(func(string) error)
	// jobDescPageCount is the schema descriptor for page_count field.
	jobDescPageCount := jobFields[7].Descriptor()
	// job.PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	job.PageCountValidator = jobDescPageCount.Validators[0].(func(int) error)
	// jobDescCreditsCharged is the schema descriptor for credits_charged field.
	jobDescCreditsCharged := jobFields[8].Descriptor()
	// job.CreditsChargedValidator is a validator for the "credits_charged" field. It is called by the builders before save.
	job.CreditsChargedValidator = jobDescCreditsCharged.Validators[0].(func(int) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[14].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescStatus is the schema descriptor for status field.
	sessionDescStatus := sessionFields[2].Descriptor()
	// session.DefaultStatus holds the default value on creation for the status field.
	session.DefaultStatus = sessionDescStatus.Default.(string)
	// session.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	session.StatusValidator = sessionDescStatus.Validators[0].(func(string) error)
	// sessionDescTotalUnits is the schema descriptor for total_units field.
	sessionDescTotalUnits := sessionFields[3].Descriptor()
	// session.TotalUnitsValidator is a validator for the "total_units" field. It is called by the builders before save.
	session.TotalUnitsValidator = sessionDescTotalUnits.Validators[0].(func(int) error)
	// sessionDescCompletedUnits is the schema descriptor for completed_units field.
	sessionDescCompletedUnits := sessionFields[4].Descriptor()
	// session.DefaultCompletedUnits holds the default value on creation for the completed_units field.
	session.DefaultCompletedUnits = sessionDescCompletedUnits.Default.(int)
	// session.CompletedUnitsValidator is a validator for the "completed_units" field. It is called by the builders before save.
	session.CompletedUnitsValidator = sessionDescCompletedUnits.Validators[0].(func(int) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[11].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescType is the schema descriptor for type field.
	transactionDescType := transactionFields[2].Descriptor()
	// transaction.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	transaction.TypeValidator = func() func(string) error {
		validators := transactionDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescStatus is the schema descriptor for status field.
	transactionDescStatus := transactionFields[4].Descriptor()
	// transaction.DefaultStatus holds the default value on creation for the status field.
	transaction.DefaultStatus = transactionDescStatus.Default.(string)
	// transaction.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	transaction.StatusValidator = transactionDescStatus.Validators[0].(func(string) error)
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[9].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescCreditBalance is the schema descriptor for credit_balance field.
	userDescCreditBalance := userFields[2].Descriptor()
	// user.DefaultCreditBalance holds the default value on creation for the credit_balance field.
	user.DefaultCreditBalance = userDescCreditBalance.Default.(int)
	// user.CreditBalanceValidator is a validator for the "credit_balance" field. It is called by the builders before save.
	user.CreditBalanceValidator = userDescCreditBalance.Validators[0].(func(int) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[4].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
