// Package sqlstore implements the store interface on top of a SQL database. Queries are written once with '?'
// placeholders and rebound for the driver in use.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/store"
)

// Supported drivers.
const (
	Postgres = "postgres"
	SQLite   = "sqlite3"
)

var schema = []string{ //nolint:gochecknoglobals // migrations
	`CREATE TABLE IF NOT EXISTS selene_names (
		address text PRIMARY KEY,
		name    text NOT NULL,
		updated bigint NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS selene_hooks (
		id          text PRIMARY KEY,
		batch       text NOT NULL,
		net         text NOT NULL,
		signature   text NOT NULL,
		type        text NOT NULL,
		source      text NOT NULL,
		description text NOT NULL,
		slot        bigint NOT NULL,
		block_time  bigint NOT NULL,
		received    bigint NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS selene_hooks_signature ON selene_hooks (signature)`,
}

// SQL is a store backed by a SQL database.
type SQL struct {
	*sqlx.DB

	saveName string
	saveHook string
	getHooks string
}

var _ store.DB = (*SQL)(nil)

// New takes a database connection and its driver name, which must be Postgres or SQLite, and creates the tables
// if missing.
func New(db *sql.DB, driverName string) (*SQL, error) {
	if driverName != Postgres && driverName != SQLite {
		return nil, fmt.Errorf("unknown database driver '%s': %w", driverName, store.ErrUnknownType)
	}

	s := &SQL{DB: sqlx.NewDb(db, driverName)}

	txn, err := s.Beginx()
	if err != nil {
		return nil, err
	}

	for _, q := range schema {
		if _, err = txn.Exec(q); err != nil {
			_ = txn.Rollback()

			return nil, fmt.Errorf("error creating tables: %w", err)
		}
	}

	if err = txn.Commit(); err != nil {
		return nil, err
	}

	s.saveName = s.Rebind(`INSERT INTO selene_names (address, name, updated) VALUES (?, ?, ?)
		ON CONFLICT (address) DO UPDATE SET name = excluded.name, updated = excluded.updated`)
	s.saveHook = s.Rebind(`INSERT INTO selene_hooks
		(id, batch, net, signature, type, source, description, slot, block_time, received)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	s.getHooks = s.Rebind(`SELECT * FROM selene_hooks ORDER BY id DESC LIMIT ?`)

	return s, nil
}

type nameRow struct {
	Address string `db:"address"`
	Name    string `db:"name"`
	Updated int64  `db:"updated"`
}

type hookRow struct {
	ID          string `db:"id"`
	Batch       string `db:"batch"`
	Net         string `db:"net"`
	Signature   string `db:"signature"`
	Type        string `db:"type"`
	Source      string `db:"source"`
	Description string `db:"description"`
	Slot        int64  `db:"slot"`
	Timestamp   int64  `db:"block_time"`
	Received    int64  `db:"received"`
}

// times are kept as unix nanoseconds so both drivers scan them alike.
func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

// SaveName upserts the name of an account.
func (s *SQL) SaveName(ctx context.Context, n store.Name) error {
	if _, err := s.ExecContext(ctx, s.saveName, n.Address, n.Name, n.Updated.UnixNano()); err != nil {
		return fmt.Errorf("could not save name in db: %w", err)
	}

	return nil
}

// LoadNames returns every saved name.
func (s *SQL) LoadNames(ctx context.Context) ([]store.Name, error) {
	var rows []nameRow
	if err := s.SelectContext(ctx, &rows, `SELECT address, name, updated FROM selene_names`); err != nil {
		return nil, fmt.Errorf("error loading names: %w", err)
	}

	ns := make([]store.Name, 0, len(rows))
	for _, r := range rows {
		ns = append(ns, store.Name{Address: r.Address, Name: r.Name, Updated: fromNanos(r.Updated)})
	}

	return ns, nil
}

// SaveHook inserts a relayed transaction.
func (s *SQL) SaveHook(ctx context.Context, h store.Hook) error {
	_, err := s.ExecContext(ctx, s.saveHook, h.ID, h.Batch, h.Net, h.Signature, string(h.Type), string(h.Source),
		h.Description, int64(h.Slot), h.Timestamp, h.Received.UnixNano())
	if err != nil {
		return fmt.Errorf("could not insert hook in db: %w", err)
	}

	return nil
}

// GetHooks returns the latest relayed transactions, newest first.
func (s *SQL) GetHooks(ctx context.Context, limit int) ([]store.Hook, error) {
	limit, err := store.Limit(limit)
	if err != nil {
		return nil, err
	}

	var rows []hookRow
	if err = s.SelectContext(ctx, &rows, s.getHooks, limit); err != nil {
		return nil, fmt.Errorf("error getting hooks: %w", err)
	}

	hs := make([]store.Hook, 0, len(rows))
	for _, r := range rows {
		hs = append(hs, store.Hook{
			ID:          r.ID,
			Batch:       r.Batch,
			Net:         r.Net,
			Signature:   r.Signature,
			Type:        types.TransactionType(r.Type),
			Source:      types.Source(r.Source),
			Description: r.Description,
			Slot:        uint64(r.Slot),
			Timestamp:   r.Timestamp,
			Received:    fromNanos(r.Received),
		})
	}

	return hs, nil
}
