// Package db implements the opening and graceful closing of database connections.
package db

import (
	"fmt"

	"github.com/tarancss/selene/lib/store"
	"github.com/tarancss/selene/lib/store/mongo"
	"github.com/tarancss/selene/lib/store/postgres"
	"github.com/tarancss/selene/lib/store/sqlite"
)

// Database types.
const (
	NONE     string = ""
	MONGODB  string = "mongodb"
	POSTGRES string = "postgresql"
	SQLITE   string = "sqlite"
)

// New returns a new database connection according to the options (database type). With no type it returns a nil
// store: the relay then runs without persistence.
func New(options, connection string) (store.DB, error) {
	var (
		dh  store.DB
		err error
	)

	switch options {
	case NONE:
		return nil, nil //nolint:nilnil // no store configured
	case MONGODB:
		dh, err = open(mongo.New(connection))
	case POSTGRES:
		dh, err = open(postgres.New(connection))
	case SQLITE:
		dh, err = open(sqlite.New(connection))
	default:
		err = fmt.Errorf("%w: %q", store.ErrUnknownType, options)
	}

	return dh, err
}

// open avoids returning a typed nil inside the interface.
func open[T store.DB](dh T, err error) (store.DB, error) {
	if err != nil {
		return nil, err
	}

	return dh, nil
}

// Close gracefully closes the database connection.
func Close(dh store.DB) error {
	if dh == nil {
		return nil
	}

	return dh.Close()
}
