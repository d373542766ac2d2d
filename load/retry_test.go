package load_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/helixdoc/load"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noDelays is used for fast unit tests.
var noDelays = []time.Duration{0, 0, 0}

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("succeeds on first attempt", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "<html>content</html>", nil
		}

		html, err := load.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries on failure and succeeds", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			if attempts < 4 {
				return "", errors.New("transient error")
			}
			return "<html>success</html>", nil
		}

		html, err := load.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html>success</html>", html)
		assert.Equal(t, 4, attempts)
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", errors.New("persistent error")
		}

		_, err := load.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "persistent error")
		assert.Equal(t, 4, attempts)
	})

	t.Run("fetches once without delays", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", errors.New("boom")
		}

		_, err := load.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, nil)

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			cancel()
			return "", errors.New("transient error")
		}

		_, err := load.FetchWithRetry(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})
}

func TestRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Empty(t, load.RetryDelays(0))
	assert.Empty(t, load.RetryDelays(-1))
	assert.Equal(t, load.DefaultRetryDelays(), load.RetryDelays(3))
}
