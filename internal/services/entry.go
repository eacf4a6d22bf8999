package services

import (
	"context"

	"github.com/workjournal/workjournal/internal/journal"
	"github.com/workjournal/workjournal/internal/model"
	"github.com/workjournal/workjournal/internal/store"
)

// EntryService orchestrates entry persistence and the weekly view model.
type EntryService struct {
	store store.Store
}

func NewEntryService(s store.Store) *EntryService {
	return &EntryService{store: s}
}

// CreateEntry persists one new entry. Input is assumed validated by the
// transport layer; a store failure propagates unchanged.
func (s *EntryService) CreateEntry(ctx context.Context, req model.CreateEntryRequest) (*model.Entry, error) {
	return s.store.Entries().Create(ctx, req)
}

// WeeklySummaries loads every entry and groups it into week summaries. The
// second return value is the number of entries hidden by the category filter.
func (s *EntryService) WeeklySummaries(ctx context.Context) ([]model.WeekSummary, int, error) {
	entries, err := s.store.Entries().List(ctx)
	if err != nil {
		return nil, 0, err
	}
	weeks, dropped := journal.BuildWeeks(entries)
	return weeks, dropped, nil
}

// GetEntry returns one entry by id or model.ErrNotFound.
func (s *EntryService) GetEntry(ctx context.Context, id int64) (*model.Entry, error) {
	return s.store.Entries().GetByID(ctx, id)
}
