// Package sqlite implements the entry store on an embedded SQLite database.
// It is the default driver for single-user local deployments.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/workjournal/workjournal/internal/model"
	"github.com/workjournal/workjournal/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    date     TEXT NOT NULL,
    category TEXT NOT NULL,
    text     TEXT NOT NULL
);
`

// New opens (or creates) the database file and applies the schema.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires the adapter onto an existing connection (used by tests).
func NewWithDB(db *sql.DB) (store.Store, error) {
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Entries() store.Entries { return &entries{db: s.db} }

func (s *sqliteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *sqliteStore) Close() error { return s.db.Close() }

type entries struct{ db *sql.DB }

func (e *entries) Create(ctx context.Context, req model.CreateEntryRequest) (*model.Entry, error) {
	d, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, err
	}
	res, err := e.db.ExecContext(ctx,
		`INSERT INTO entries (date, category, text) VALUES (?,?,?)`,
		d.Format(time.DateOnly), req.Category, req.Text)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Entry{ID: id, Date: d, Category: req.Category, Text: req.Text}, nil
}

func (e *entries) List(ctx context.Context) ([]model.Entry, error) {
	rows, err := e.db.QueryContext(ctx,
		`SELECT id, date, category, text FROM entries ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Entry
	for rows.Next() {
		ent, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *ent)
	}
	return out, rows.Err()
}

func (e *entries) GetByID(ctx context.Context, id int64) (*model.Entry, error) {
	row := e.db.QueryRowContext(ctx,
		`SELECT id, date, category, text FROM entries WHERE id = ?`, id)
	ent, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	return ent, err
}

// scanEntry reads one row. Dates are stored as YYYY-MM-DD text and parsed in
// UTC so the calendar date survives the round trip untouched.
func scanEntry(scan func(...any) error) (*model.Entry, error) {
	var ent model.Entry
	var date string
	if err := scan(&ent.ID, &date, &ent.Category, &ent.Text); err != nil {
		return nil, err
	}
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return nil, err
	}
	ent.Date = d
	return &ent, nil
}
