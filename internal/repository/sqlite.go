package repository

import (
	"database/sql"
	"database/sql/driver"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"modernc.org/sqlite"

	"github.com/tobi-adeyemi/extractflow/gen/ent"
)

// sqliteDriver adapts modernc.org/sqlite (CGO-free) to the driver name Ent's
// sqlite3 dialect expects, with foreign keys switched on per connection.
type sqliteDriver struct{ *sqlite.Driver }

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return nil, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

func openSQLite(dsn string, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	path := strings.TrimPrefix(dsn, "sqlite://")
	logger.Info("opening embedded sqlite database", "path", path)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, err
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	return ent.NewClient(ent.Driver(drv)), nil, nil
}
