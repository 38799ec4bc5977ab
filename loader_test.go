package hours_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ceramic-mug/hours"
	"github.com/ceramic-mug/hours/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("fetches the hour's URL and extracts the office", func(t *testing.T) {
		t.Parallel()

		var fetchedURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetchedURL = url
				return officePage, nil
			},
		}

		loader := hours.NewLoader(fetcher)
		office, err := loader.Load(context.Background(), hours.HourMorning)

		require.NoError(t, err)
		assert.Equal(t, hours.OfficeURL(hours.HourMorning), fetchedURL)
		assert.Equal(t, "The Morning Office", office.Title)

		state, loaded, loadErr := loader.State()
		assert.Equal(t, hours.LoadLoaded, state)
		assert.Equal(t, office, loaded)
		assert.NoError(t, loadErr)
	})

	t.Run("surfaces fetch failures and enters the failed state", func(t *testing.T) {
		t.Parallel()

		fetchErr := hours.Errorf(hours.EUNAVAILABLE, "connection refused")
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", fetchErr
			},
		}

		loader := hours.NewLoader(fetcher)
		office, err := loader.Load(context.Background(), hours.HourVespers)

		require.Error(t, err)
		assert.Nil(t, office)
		assert.Equal(t, hours.EUNAVAILABLE, hours.ErrorCode(err))

		state, loaded, loadErr := loader.State()
		assert.Equal(t, hours.LoadFailed, state)
		assert.Nil(t, loaded)
		assert.Equal(t, fetchErr, loadErr)
	})

	t.Run("retries by re-issuing the fetch", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				if calls == 1 {
					return "", errors.New("network error")
				}
				return officePage, nil
			},
		}

		loader := hours.NewLoader(fetcher)

		_, err := loader.Load(context.Background(), hours.HourCompline)
		require.Error(t, err)

		office, err := loader.Load(context.Background(), hours.HourCompline)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, "The Morning Office", office.Title)

		state, _, _ := loader.State()
		assert.Equal(t, hours.LoadLoaded, state)
	})

	t.Run("notifies the observer on every transition", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return officePage, nil
			},
		}

		var transitions []hours.LoadState
		loader := hours.NewLoader(fetcher, hours.WithOnChange(func(s hours.LoadState) {
			transitions = append(transitions, s)
		}))

		_, err := loader.Load(context.Background(), hours.HourMidday)

		require.NoError(t, err)
		assert.Equal(t, []hours.LoadState{hours.LoadLoading, hours.LoadLoaded}, transitions)
	})

	t.Run("starts idle", func(t *testing.T) {
		t.Parallel()

		loader := hours.NewLoader(&mock.Fetcher{})
		state, office, err := loader.State()

		assert.Equal(t, hours.LoadIdle, state)
		assert.Nil(t, office)
		assert.NoError(t, err)
	})
}

func TestLoadState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", hours.LoadIdle.String())
	assert.Equal(t, "loading", hours.LoadLoading.String())
	assert.Equal(t, "loaded", hours.LoadLoaded.String())
	assert.Equal(t, "failed", hours.LoadFailed.String())
	assert.Equal(t, "unknown", hours.LoadState(42).String())
}
