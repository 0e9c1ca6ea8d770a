// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CleanupLog is the predicate function for cleanuplog builders.
type CleanupLog func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
