// Package postgres implements the entry store on PostgreSQL via the pgx
// stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/workjournal/workjournal/internal/model"
	"github.com/workjournal/workjournal/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
    id       BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    date     DATE NOT NULL,
    category TEXT NOT NULL,
    text     TEXT NOT NULL
);
`

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New opens a connection and ensures the schema exists.
func New(dsn string) (store.Store, error) {
	db, err := Open(dsn)
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
	return &pgStore{db: db}, nil
}

type pgStore struct{ db *sql.DB }

func (s *pgStore) Entries() store.Entries { return &entries{db: s.db} }

func (s *pgStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *pgStore) Close() error { return s.db.Close() }

type entries struct{ db *sql.DB }

func (e *entries) Create(ctx context.Context, req model.CreateEntryRequest) (*model.Entry, error) {
	d, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, err
	}
	var id int64
	row := e.db.QueryRowContext(ctx, `
        INSERT INTO entries (date, category, text)
        VALUES ($1,$2,$3)
        RETURNING id
    `, d.Format(time.DateOnly), req.Category, req.Text)
	if err := row.Scan(&id); err != nil {
		return nil, err
	}
	return &model.Entry{ID: id, Date: d, Category: req.Category, Text: req.Text}, nil
}

func (e *entries) List(ctx context.Context) ([]model.Entry, error) {
	rows, err := e.db.QueryContext(ctx, `
        SELECT id, date, category, text FROM entries ORDER BY id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Entry
	for rows.Next() {
		var ent model.Entry
		var d time.Time
		if err := rows.Scan(&ent.ID, &d, &ent.Category, &ent.Text); err != nil {
			return nil, err
		}
		ent.Date = asCalendarDate(d)
		out = append(out, ent)
	}
	return out, rows.Err()
}

func (e *entries) GetByID(ctx context.Context, id int64) (*model.Entry, error) {
	var ent model.Entry
	var d time.Time
	row := e.db.QueryRowContext(ctx, `
        SELECT id, date, category, text FROM entries WHERE id=$1
    `, id)
	if err := row.Scan(&ent.ID, &d, &ent.Category, &ent.Text); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	ent.Date = asCalendarDate(d)
	return &ent, nil
}

// asCalendarDate pins a scanned DATE value to midnight UTC. The driver may
// attach a session timezone; keeping the raw value would shift the calendar
// date when it is later reformatted.
func asCalendarDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
