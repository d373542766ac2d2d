package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/helixdoc"
	"github.com/fwojciec/helixdoc/mock"
	"github.com/fwojciec/helixdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotWriter_WriteEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("persists endpoints as a snapshot", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(setupTestDB(t))
		w := &sqlite.SnapshotWriter{
			Service:     svc,
			SourceURL:   referenceURL,
			ContentHash: "feed",
		}

		err := w.WriteEndpoints(context.Background(), testEndpoints())

		require.NoError(t, err)
		require.NotNil(t, w.Snapshot)
		assert.Equal(t, "feed", w.Snapshot.ContentHash)
		found, err := svc.FindEndpoints(context.Background(), w.Snapshot.ID)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("returns service error", func(t *testing.T) {
		t.Parallel()

		w := &sqlite.SnapshotWriter{
			Service: &mock.SnapshotService{
				CreateSnapshotFn: func(ctx context.Context, snap *helixdoc.Snapshot, endpoints []*helixdoc.Endpoint) error {
					return errors.New("disk full")
				},
			},
			SourceURL: referenceURL,
		}

		err := w.WriteEndpoints(context.Background(), testEndpoints())

		require.Error(t, err)
		assert.Nil(t, w.Snapshot)
	})
}
