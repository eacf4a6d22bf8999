// Package store defines the persistence boundary for journal entries.
package store

import (
	"context"

	"github.com/workjournal/workjournal/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (sqlite, postgres).
type Store interface {
	Entries() Entries

	// Ping verifies connectivity. Used by the health endpoint and at startup.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool. The process-wide store
	// handle is opened once at startup and closed at shutdown.
	Close() error
}

// Entries is the repository for journal entries. The entry table has no
// update or delete path; the edit page only reads.
type Entries interface {
	// Create persists a new entry and returns it with the store-assigned id.
	Create(ctx context.Context, req model.CreateEntryRequest) (*model.Entry, error)

	// List returns every entry ordered by id ascending (arrival order).
	List(ctx context.Context) ([]model.Entry, error)

	// GetByID returns one entry or model.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.Entry, error)
}
