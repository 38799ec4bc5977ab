package mock

import (
	"context"

	"github.com/ceramic-mug/hours"
)

var _ hours.JournalService = (*JournalService)(nil)

// JournalService is a mock implementation of hours.JournalService.
type JournalService struct {
	CreateEntryFn   func(ctx context.Context, entry *hours.JournalEntry) error
	FindEntryByIDFn func(ctx context.Context, id string) (*hours.JournalEntry, error)
	FindEntriesFn   func(ctx context.Context, filter hours.JournalEntryFilter) ([]*hours.JournalEntry, error)
	DeleteEntryFn   func(ctx context.Context, id string) error
}

func (s *JournalService) CreateEntry(ctx context.Context, entry *hours.JournalEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *JournalService) FindEntryByID(ctx context.Context, id string) (*hours.JournalEntry, error) {
	return s.FindEntryByIDFn(ctx, id)
}

func (s *JournalService) FindEntries(ctx context.Context, filter hours.JournalEntryFilter) ([]*hours.JournalEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *JournalService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}
