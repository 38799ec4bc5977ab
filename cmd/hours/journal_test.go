package main

import (
	"context"
	"testing"

	"github.com/ceramic-mug/hours"
	"github.com/ceramic-mug/hours/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates an entry for today by default", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		var created *hours.JournalEntry
		deps.Journal = &mock.JournalService{
			CreateEntryFn: func(ctx context.Context, entry *hours.JournalEntry) error {
				entry.ID = "id-1"
				created = entry
				return nil
			},
		}

		cmd := &JournalAddCmd{Body: "A quiet morning.", Title: "Morning"}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, created)
		assert.Equal(t, "2026-08-25", created.Day)
		assert.Equal(t, "Morning", created.Title)
		assert.Equal(t, "A quiet morning.", created.Body)
		assert.Contains(t, stdout.String(), "id-1")
	})

	t.Run("honors an explicit day", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t)
		var created *hours.JournalEntry
		deps.Journal = &mock.JournalService{
			CreateEntryFn: func(ctx context.Context, entry *hours.JournalEntry) error {
				created = entry
				return nil
			},
		}

		cmd := &JournalAddCmd{Body: "Looking back.", Day: "2026-08-01"}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, created)
		assert.Equal(t, "2026-08-01", created.Day)
	})

	t.Run("surfaces validation failures", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)
		deps.Journal = &mock.JournalService{
			CreateEntryFn: func(ctx context.Context, entry *hours.JournalEntry) error {
				return entry.Validate()
			},
		}

		cmd := &JournalAddCmd{Body: "bad day", Day: "not-a-day"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, hours.EINVALID, hours.ErrorCode(err))
		assert.NotEmpty(t, stderr.String())
	})
}

func TestJournalListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists entries with summaries", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Journal = &mock.JournalService{
			FindEntriesFn: func(ctx context.Context, filter hours.JournalEntryFilter) ([]*hours.JournalEntry, error) {
				return []*hours.JournalEntry{
					{ID: "id-1", Day: "2026-08-25", Title: "Morning", Body: "A quiet morning."},
					{ID: "id-2", Day: "2026-08-25", Body: "First line.\nSecond line."},
				}, nil
			},
		}

		cmd := &JournalListCmd{Limit: 20}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "id-1  2026-08-25  Morning")
		assert.Contains(t, stdout.String(), "id-2  2026-08-25  First line.")
		assert.NotContains(t, stdout.String(), "Second line.")
	})

	t.Run("filters by day", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t)
		var gotFilter hours.JournalEntryFilter
		deps.Journal = &mock.JournalService{
			FindEntriesFn: func(ctx context.Context, filter hours.JournalEntryFilter) ([]*hours.JournalEntry, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		cmd := &JournalListCmd{Day: "2026-08-25", Limit: 20}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, gotFilter.Day)
		assert.Equal(t, "2026-08-25", *gotFilter.Day)
	})

	t.Run("prints a hint when there are no entries", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Journal = &mock.JournalService{
			FindEntriesFn: func(ctx context.Context, filter hours.JournalEntryFilter) ([]*hours.JournalEntry, error) {
				return nil, nil
			},
		}

		cmd := &JournalListCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No journal entries found.")
	})
}

func TestJournalDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes an entry", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		var deletedID string
		deps.Journal = &mock.JournalService{
			DeleteEntryFn: func(ctx context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		cmd := &JournalDeleteCmd{ID: "id-1"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "id-1", deletedID)
		assert.Contains(t, stdout.String(), "Deleted entry id-1")
	})

	t.Run("surfaces a missing entry", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)
		deps.Journal = &mock.JournalService{
			DeleteEntryFn: func(ctx context.Context, id string) error {
				return hours.Errorf(hours.ENOTFOUND, "journal entry not found")
			},
		}

		cmd := &JournalDeleteCmd{ID: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "journal entry not found")
	})
}

func TestEntrySummary(t *testing.T) {
	t.Parallel()

	t.Run("truncates long summaries", func(t *testing.T) {
		t.Parallel()

		long := "This entry body runs on far past the sixty character summary limit for lists."
		entry := &hours.JournalEntry{Body: long}

		summary := entrySummary(entry, false)

		assert.LessOrEqual(t, len(summary), 60)
		assert.Contains(t, summary, "...")
	})

	t.Run("keeps the full body when requested", func(t *testing.T) {
		t.Parallel()

		entry := &hours.JournalEntry{Title: "T", Body: "Full body text."}

		assert.Equal(t, "T: Full body text.", entrySummary(entry, true))
	})
}
