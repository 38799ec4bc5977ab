package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Commands that only touch the local database run end to end against a
// temporary file, the way a user would.
func TestMain_Run(t *testing.T) {
	t.Parallel()

	newMain := func(t *testing.T) *Main {
		t.Helper()
		m := NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "hours.db")
		return m
	}

	t.Run("days reports an empty database", func(t *testing.T) {
		t.Parallel()

		m := newMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"days"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No completed offices yet.")
	})

	t.Run("journal add then list round-trips an entry", func(t *testing.T) {
		t.Parallel()

		m := newMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"journal", "add", "A quiet morning.", "-t", "Morning"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Added entry")

		stdout.Reset()
		m2 := NewMain()
		m2.DBPath = m.DBPath
		err = m2.Run(context.Background(), []string{"journal", "list"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Morning")
	})

	t.Run("help does not require a database", func(t *testing.T) {
		t.Parallel()

		m := newMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

		require.NoError(t, err)
	})

	t.Run("rejects an unknown command", func(t *testing.T) {
		t.Parallel()

		m := newMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"nonsense"}, &stdout, &stderr)

		require.Error(t, err)
	})
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("honors the HOURS_DB environment variable", func(t *testing.T) {
		t.Setenv("HOURS_DB", "/tmp/custom-hours.db")

		assert.Equal(t, "/tmp/custom-hours.db", defaultDBPath())
	})
}
