// Package storetest holds a compliance suite shared by store implementations.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/workjournal/workjournal/internal/model"
	"github.com/workjournal/workjournal/internal/store"
)

// Run exercises the Entries contract against a store implementation.
// makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	e1, err := s.Entries().Create(ctx, model.CreateEntryRequest{
		Date: "2023-01-30", Category: model.CategoryWork, Text: "shipped the importer",
	})
	if err != nil {
		t.Fatalf("Create e1: %v", err)
	}
	if e1.ID == 0 {
		t.Fatalf("Create: store did not assign an id")
	}
	e2, err := s.Entries().Create(ctx, model.CreateEntryRequest{
		Date: "2023-02-02", Category: model.CategoryLearning, Text: "read about WAL mode",
	})
	if err != nil {
		t.Fatalf("Create e2: %v", err)
	}
	if e2.ID == e1.ID {
		t.Fatalf("Create: duplicate id %d", e1.ID)
	}

	// List returns arrival order.
	lst, err := s.Entries().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(lst) != 2 || lst[0].ID != e1.ID || lst[1].ID != e2.ID {
		t.Fatalf("List: got %+v, want [e1 e2] in id order", lst)
	}

	got, err := s.Entries().GetByID(ctx, e1.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Category != model.CategoryWork || got.Text != "shipped the importer" {
		t.Fatalf("GetByID: got %+v", got)
	}
	// Dates round-trip as calendar dates regardless of driver storage type.
	if got.Date.Format(time.DateOnly) != "2023-01-30" {
		t.Fatalf("GetByID: date %s, want 2023-01-30", got.Date.Format(time.DateOnly))
	}

	if _, err := s.Entries().GetByID(ctx, 999999); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetByID(missing) err = %v, want ErrNotFound", err)
	}
}
