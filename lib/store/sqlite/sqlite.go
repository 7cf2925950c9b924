// Package sqlite implements the store interface on an embedded SQLite database file, for single instance relays.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" //nolint:gci // registers the "sqlite" driver

	"github.com/tarancss/selene/lib/store/sqlstore"
)

// SQLite is a store in a local database file.
type SQLite struct {
	*sqlstore.SQL
}

// New opens or creates the database at path.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open sqlite DB in %s: %w", path, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	s, err := sqlstore.New(db, sqlstore.SQLite)
	if err != nil {
		db.Close()

		return nil, err
	}

	return &SQLite{SQL: s}, nil
}
