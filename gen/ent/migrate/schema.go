// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CleanupLogColumns holds the columns for the "cleanup_log" table.
	CleanupLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "sessions_expired", Type: field.TypeInt, Default: 0},
		{Name: "jobs_expired", Type: field.TypeInt, Default: 0},
		{Name: "blobs_deleted", Type: field.TypeInt, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "RUNNING"},
	}
	// CleanupLogTable holds the schema information for the "cleanup_log" table.
	CleanupLogTable = &schema.Table{
		Name:       "cleanup_log",
		Columns:    CleanupLogColumns,
		PrimaryKey: []*schema.Column{CleanupLogColumns[0]},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "format", Type: field.TypeString},
		{Name: "source_filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "page_count", Type: field.TypeInt},
		{Name: "credits_charged", Type: field.TypeInt},
		{Name: "external_operation_ref", Type: field.TypeString, Nullable: true},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "polling_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_polled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_sessions_jobs",
				Columns:    []*schema.Column{JobsColumns[14]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "jobs_users_jobs",
				Columns:    []*schema.Column{JobsColumns[15]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_session_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[14]},
			},
			{
				Name:    "job_status_last_polled_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[11]},
			},
			{
				Name:    "job_expires_at_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[13], JobsColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "UPLOADING"},
		{Name: "total_units", Type: field.TypeInt},
		{Name: "completed_units", Type: field.TypeInt, Default: 0},
		{Name: "naming_template", Type: field.TypeJSON, Nullable: true},
		{Name: "export_columns", Type: field.TypeJSON, Nullable: true},
		{Name: "post_processing_status", Type: field.TypeString, Nullable: true},
		{Name: "post_processing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "result_bundle_path", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_users_sessions",
				Columns:    []*schema.Column{SessionsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[12], SessionsColumns[1], SessionsColumns[10]},
			},
			{
				Name:    "session_expires_at_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[11], SessionsColumns[1]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "credits_delta", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "COMPLETED"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "session_id", Type: field.TypeUUID, Nullable: true},
		{Name: "refund_of", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_users_transactions",
				Columns:    []*schema.Column{TransactionsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[9], TransactionsColumns[8]},
			},
			{
				Name:    "transaction_job_id_type",
				Unique:  true,
				Columns: []*schema.Column{TransactionsColumns[5], TransactionsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "credit_balance", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CleanupLogTable,
		JobsTable,
		SessionsTable,
		TransactionsTable,
		UsersTable,
	}
)

func init() {
	CleanupLogTable.Annotation = &entsql.Annotation{
		Table: "cleanup_log",
	}
	JobsTable.ForeignKeys[0].RefTable = SessionsTable
	JobsTable.ForeignKeys[1].RefTable = UsersTable
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	SessionsTable.ForeignKeys[0].RefTable = UsersTable
	SessionsTable.Annotation = &entsql.Annotation{
		Table: "sessions",
	}
	TransactionsTable.ForeignKeys[0].RefTable = UsersTable
	TransactionsTable.Annotation = &entsql.Annotation{
		Table: "transactions",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
