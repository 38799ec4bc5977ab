package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ceramic-mug/hours"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ hours.JournalService = (*JournalService)(nil)

// JournalService implements hours.JournalService using SQLite.
type JournalService struct {
	db *DB
}

// NewJournalService creates a new JournalService.
func NewJournalService(db *DB) *JournalService {
	return &JournalService{db: db}
}

// CreateEntry creates a new entry, assigning its ID and timestamps.
func (s *JournalService) CreateEntry(ctx context.Context, entry *hours.JournalEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()
	entry.UpdatedAt = entry.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journal_entries (id, day, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Day, entry.Title, entry.Body,
		entry.CreatedAt.Format(time.RFC3339), entry.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindEntryByID retrieves an entry by ID.
func (s *JournalService) FindEntryByID(ctx context.Context, id string) (*hours.JournalEntry, error) {
	var entry hours.JournalEntry
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, day, title, body, created_at, updated_at
		FROM journal_entries
		WHERE id = ?
	`, id).Scan(&entry.ID, &entry.Day, &entry.Title, &entry.Body, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, hours.Errorf(hours.ENOTFOUND, "journal entry not found")
	}
	if err != nil {
		return nil, err
	}

	if entry.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if entry.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &entry, nil
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *JournalService) FindEntries(ctx context.Context, filter hours.JournalEntryFilter) ([]*hours.JournalEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, day, title, body, created_at, updated_at FROM journal_entries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Day != nil {
		query.WriteString(" AND day = ?")
		args = append(args, *filter.Day)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*hours.JournalEntry
	for rows.Next() {
		var entry hours.JournalEntry
		var createdAt, updatedAt string

		if err := rows.Scan(&entry.ID, &entry.Day, &entry.Title, &entry.Body, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if entry.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if entry.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// DeleteEntry permanently removes an entry.
func (s *JournalService) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return hours.Errorf(hours.ENOTFOUND, "journal entry not found")
	}

	return nil
}
