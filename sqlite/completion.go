package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ceramic-mug/hours"
)

// Compile-time interface verification.
var _ hours.CompletionService = (*CompletionService)(nil)

// CompletionService implements hours.CompletionService using SQLite.
type CompletionService struct {
	db *DB
}

// NewCompletionService creates a new CompletionService.
func NewCompletionService(db *DB) *CompletionService {
	return &CompletionService{db: db}
}

// MarkCompleted records a completion. Marking the same (day, hour) again
// refreshes the hash and timestamp rather than failing.
func (s *CompletionService) MarkCompleted(ctx context.Context, completion *hours.Completion) error {
	if err := completion.Validate(); err != nil {
		return err
	}

	completion.CompletedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO completions (day, hour, content_hash, completed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (day, hour) DO UPDATE SET
			content_hash = excluded.content_hash,
			completed_at = excluded.completed_at
	`, completion.Day, string(completion.Hour), completion.ContentHash,
		completion.CompletedAt.Format(time.RFC3339))

	return err
}

// IsCompleted reports whether the hour's office was completed on the day.
func (s *CompletionService) IsCompleted(ctx context.Context, day string, hour hours.Hour) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM completions WHERE day = ? AND hour = ?
	`, day, string(hour)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindCompletions retrieves completions matching the filter, most recent
// first.
func (s *CompletionService) FindCompletions(ctx context.Context, filter hours.CompletionFilter) ([]*hours.Completion, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT day, hour, content_hash, completed_at FROM completions WHERE 1=1")

	if filter.Day != nil {
		query.WriteString(" AND day = ?")
		args = append(args, *filter.Day)
	}
	if filter.Hour != nil {
		query.WriteString(" AND hour = ?")
		args = append(args, string(*filter.Hour))
	}

	query.WriteString(" ORDER BY completed_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []*hours.Completion
	for rows.Next() {
		completion, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, completion)
	}

	return completions, rows.Err()
}

func scanCompletion(rows *sql.Rows) (*hours.Completion, error) {
	var completion hours.Completion
	var hour, completedAt string

	if err := rows.Scan(&completion.Day, &hour, &completion.ContentHash, &completedAt); err != nil {
		return nil, err
	}
	completion.Hour = hours.Hour(hour)

	var err error
	completion.CompletedAt, err = parseRFC3339(completedAt, "completed_at")
	if err != nil {
		return nil, err
	}

	return &completion, nil
}
