// Package postgres implements the store interface for PostgreSQL.
package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" //nolint:gci // load the postgres driver that is used by the system

	"github.com/tarancss/selene/lib/store/sqlstore"
)

// Postgres implements a connection to a PostgreSQL database.
type Postgres struct {
	*sqlstore.SQL
}

// New returns a postgres client connection to the specified database in 'connection', creating the relay tables
// when missing.
func New(connection string) (*Postgres, error) {
	db, err := sql.Open("postgres", connection)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to DB in %s: %w", connection, err)
	}

	if err = db.Ping(); err != nil {
		db.Close()

		return nil, fmt.Errorf("cannot reach DB in %s: %w", connection, err)
	}

	s, err := sqlstore.New(db, sqlstore.Postgres)
	if err != nil {
		db.Close()

		return nil, err
	}

	return &Postgres{SQL: s}, nil
}
