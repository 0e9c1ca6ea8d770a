// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tobi-adeyemi/extractflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// TotalUnits applies equality check predicate on the "total_units" field. It's identical to TotalUnitsEQ.
func TotalUnits(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalUnits, v))
}

// CompletedUnits applies equality check predicate on the "completed_units" field. It's identical to CompletedUnitsEQ.
func CompletedUnits(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedUnits, v))
}

// PostProcessingStatus applies equality check predicate on the "post_processing_status" field. It's identical to PostProcessingStatusEQ.
func PostProcessingStatus(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPostProcessingStatus, v))
}

// PostProcessingStartedAt applies equality check predicate on the "post_processing_started_at" field. It's identical to PostProcessingStartedAtEQ.
func PostProcessingStartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPostProcessingStartedAt, v))
}

// ResultBundlePath applies equality check predicate on the "result_bundle_path" field. It's identical to ResultBundlePathEQ.
func ResultBundlePath(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldResultBundlePath, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExpiresAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldStatus, v))
}

// TotalUnitsEQ applies the EQ predicate on the "total_units" field.
func TotalUnitsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalUnits, v))
}

// TotalUnitsNEQ applies the NEQ predicate on the "total_units" field.
func TotalUnitsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTotalUnits, v))
}

// TotalUnitsIn applies the In predicate on the "total_units" field.
func TotalUnitsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTotalUnits, vs...))
}

// TotalUnitsNotIn applies the NotIn predicate on the "total_units" field.
func TotalUnitsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTotalUnits, vs...))
}

// TotalUnitsGT applies the GT predicate on the "total_units" field.
func TotalUnitsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTotalUnits, v))
}

// TotalUnitsGTE applies the GTE predicate on the "total_units" field.
func TotalUnitsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTotalUnits, v))
}

// TotalUnitsLT applies the LT predicate on the "total_units" field.
func TotalUnitsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTotalUnits, v))
}

// TotalUnitsLTE applies the LTE predicate on the "total_units" field.
func TotalUnitsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTotalUnits, v))
}

// CompletedUnitsEQ applies the EQ predicate on the "completed_units" field.
func CompletedUnitsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedUnits, v))
}

// CompletedUnitsNEQ applies the NEQ predicate on the "completed_units" field.
func CompletedUnitsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCompletedUnits, v))
}

// CompletedUnitsIn applies the In predicate on the "completed_units" field.
func CompletedUnitsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCompletedUnits, vs...))
}

// CompletedUnitsNotIn applies the NotIn predicate on the "completed_units" field.
func CompletedUnitsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCompletedUnits, vs...))
}

// CompletedUnitsGT applies the GT predicate on the "completed_units" field.
func CompletedUnitsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCompletedUnits, v))
}

// CompletedUnitsGTE applies the GTE predicate on the "completed_units" field.
func CompletedUnitsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCompletedUnits, v))
}

// CompletedUnitsLT applies the LT predicate on the "completed_units" field.
func CompletedUnitsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCompletedUnits, v))
}

// CompletedUnitsLTE applies the LTE predicate on the "completed_units" field.
func CompletedUnitsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCompletedUnits, v))
}

// NamingTemplateIsNil applies the IsNil predicate on the "naming_template" field.
func NamingTemplateIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldNamingTemplate))
}

// NamingTemplateNotNil applies the NotNil predicate on the "naming_template" field.
func NamingTemplateNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldNamingTemplate))
}

// ExportColumnsIsNil applies the IsNil predicate on the "export_columns" field.
func ExportColumnsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldExportColumns))
}

// ExportColumnsNotNil applies the NotNil predicate on the "export_columns" field.
func ExportColumnsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldExportColumns))
}

// PostProcessingStatusEQ applies the EQ predicate on the "post_processing_status" field.
func PostProcessingStatusEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPostProcessingStatus, v))
}

// PostProcessingStatusNEQ applies the NEQ predicate on the "post_processing_status" field.
func PostProcessingStatusNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPostProcessingStatus, v))
}

// PostProcessingStatusIn applies the In predicate on the "post_processing_status" field.
func PostProcessingStatusIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPostProcessingStatus, vs...))
}

// PostProcessingStatusNotIn applies the NotIn predicate on the "post_processing_status" field.
func PostProcessingStatusNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPostProcessingStatus, vs...))
}

// PostProcessingStatusGT applies the GT predicate on the "post_processing_status" field.
func PostProcessingStatusGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPostProcessingStatus, v))
}

// PostProcessingStatusGTE applies the GTE predicate on the "post_processing_status" field.
func PostProcessingStatusGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPostProcessingStatus, v))
}

// PostProcessingStatusLT applies the LT predicate on the "post_processing_status" field.
func PostProcessingStatusLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPostProcessingStatus, v))
}

// PostProcessingStatusLTE applies the LTE predicate on the "post_processing_status" field.
func PostProcessingStatusLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPostProcessingStatus, v))
}

// PostProcessingStatusContains applies the Contains predicate on the "post_processing_status" field.
func PostProcessingStatusContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPostProcessingStatus, v))
}

// PostProcessingStatusHasPrefix applies the HasPrefix predicate on the "post_processing_status" field.
func PostProcessingStatusHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPostProcessingStatus, v))
}

// PostProcessingStatusHasSuffix applies the HasSuffix predicate on the "post_processing_status" field.
func PostProcessingStatusHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPostProcessingStatus, v))
}

// PostProcessingStatusIsNil applies the IsNil predicate on the "post_processing_status" field.
func PostProcessingStatusIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPostProcessingStatus))
}

// PostProcessingStatusNotNil applies the NotNil predicate on the "post_processing_status" field.
func PostProcessingStatusNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPostProcessingStatus))
}

// PostProcessingStatusEqualFold applies the EqualFold predicate on the "post_processing_status" field.
func PostProcessingStatusEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPostProcessingStatus, v))
}

// PostProcessingStatusContainsFold applies the ContainsFold predicate on the "post_processing_status" field.
func PostProcessingStatusContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPostProcessingStatus, v))
}

// PostProcessingStartedAtEQ applies the EQ predicate on the "post_processing_started_at" field.
func PostProcessingStartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPostProcessingStartedAt, v))
}

// PostProcessingStartedAtNEQ applies the NEQ predicate on the "post_processing_started_at" field.
func PostProcessingStartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPostProcessingStartedAt, v))
}

// PostProcessingStartedAtIn applies the In predicate on the "post_processing_started_at" field.
func PostProcessingStartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPostProcessingStartedAt, vs...))
}

// PostProcessingStartedAtNotIn applies the NotIn predicate on the "post_processing_started_at" field.
func PostProcessingStartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPostProcessingStartedAt, vs...))
}

// PostProcessingStartedAtGT applies the GT predicate on the "post_processing_started_at" field.
func PostProcessingStartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPostProcessingStartedAt, v))
}

// PostProcessingStartedAtGTE applies the GTE predicate on the "post_processing_started_at" field.
func PostProcessingStartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPostProcessingStartedAt, v))
}

// PostProcessingStartedAtLT applies the LT predicate on the "post_processing_started_at" field.
func PostProcessingStartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPostProcessingStartedAt, v))
}

// PostProcessingStartedAtLTE applies the LTE predicate on the "post_processing_started_at" field.
func PostProcessingStartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPostProcessingStartedAt, v))
}

// PostProcessingStartedAtIsNil applies the IsNil predicate on the "post_processing_started_at" field.
func PostProcessingStartedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPostProcessingStartedAt))
}

// PostProcessingStartedAtNotNil applies the NotNil predicate on the "post_processing_started_at" field.
func PostProcessingStartedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPostProcessingStartedAt))
}

// ResultBundlePathEQ applies the EQ predicate on the "result_bundle_path" field.
func ResultBundlePathEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldResultBundlePath, v))
}

// ResultBundlePathNEQ applies the NEQ predicate on the "result_bundle_path" field.
func ResultBundlePathNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldResultBundlePath, v))
}

// ResultBundlePathIn applies the In predicate on the "result_bundle_path" field.
func ResultBundlePathIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldResultBundlePath, vs...))
}

// ResultBundlePathNotIn applies the NotIn predicate on the "result_bundle_path" field.
func ResultBundlePathNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldResultBundlePath, vs...))
}

// ResultBundlePathGT applies the GT predicate on the "result_bundle_path" field.
func ResultBundlePathGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldResultBundlePath, v))
}

// ResultBundlePathGTE applies the GTE predicate on the "result_bundle_path" field.
func ResultBundlePathGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldResultBundlePath, v))
}

// ResultBundlePathLT applies the LT predicate on the "result_bundle_path" field.
func ResultBundlePathLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldResultBundlePath, v))
}

// ResultBundlePathLTE applies the LTE predicate on the "result_bundle_path" field.
func ResultBundlePathLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldResultBundlePath, v))
}

// ResultBundlePathContains applies the Contains predicate on the "result_bundle_path" field.
func ResultBundlePathContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldResultBundlePath, v))
}

// ResultBundlePathHasPrefix applies the HasPrefix predicate on the "result_bundle_path" field.
func ResultBundlePathHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldResultBundlePath, v))
}

// ResultBundlePathHasSuffix applies the HasSuffix predicate on the "result_bundle_path" field.
func ResultBundlePathHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldResultBundlePath, v))
}

// ResultBundlePathIsNil applies the IsNil predicate on the "result_bundle_path" field.
func ResultBundlePathIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldResultBundlePath))
}

// ResultBundlePathNotNil applies the NotNil predicate on the "result_bundle_path" field.
func ResultBundlePathNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldResultBundlePath))
}

// ResultBundlePathEqualFold applies the EqualFold predicate on the "result_bundle_path" field.
func ResultBundlePathEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldResultBundlePath, v))
}

// ResultBundlePathContainsFold applies the ContainsFold predicate on the "result_bundle_path" field.
func ResultBundlePathContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldResultBundlePath, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldExpiresAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.Job) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
