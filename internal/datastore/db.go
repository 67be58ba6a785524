package datastore

import (
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pg"
	DriverSQLite   = "sqlite"
)

func OpenPostgres(dsn string, password string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithPassword(password),
	))

	return bun.NewDB(sqldb, pgdialect.New())
}

// OpenSQLite opens a single-connection SQLite database, path may be any modernc DSN.
func OpenSQLite(path string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	sqldb.SetMaxOpenConns(1)
	if _, err := sqldb.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = sqldb.Close()
		return nil, err
	}

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}
