package hours

import (
	"context"
	"time"
)

// JournalEntry is one prayer-journal note, kept alongside the office reader.
type JournalEntry struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *JournalEntry) Validate() error {
	if e.Day == "" {
		return Errorf(EINVALID, "journal entry day required")
	}
	if _, err := time.Parse("2006-01-02", e.Day); err != nil {
		return Errorf(EINVALID, "journal entry day must use the YYYY-MM-DD key format")
	}
	if e.Body == "" {
		return Errorf(EINVALID, "journal entry body required")
	}
	return nil
}

// JournalEntryFilter represents a filter for FindEntries.
type JournalEntryFilter struct {
	ID  *string `json:"id"`
	Day *string `json:"day"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// JournalService manages journal entries.
type JournalService interface {
	// CreateEntry creates a new entry, assigning its ID and timestamps.
	CreateEntry(ctx context.Context, entry *JournalEntry) error

	// FindEntryByID retrieves an entry by ID.
	// Returns ENOTFOUND if the entry does not exist.
	FindEntryByID(ctx context.Context, id string) (*JournalEntry, error)

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter JournalEntryFilter) ([]*JournalEntry, error)

	// DeleteEntry permanently removes an entry.
	// Returns ENOTFOUND if the entry does not exist.
	DeleteEntry(ctx context.Context, id string) error
}
