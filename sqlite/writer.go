package sqlite

import (
	"context"

	"github.com/fwojciec/helixdoc"
)

// Ensure SnapshotWriter implements helixdoc.EndpointWriter at compile time.
var _ helixdoc.EndpointWriter = (*SnapshotWriter)(nil)

// SnapshotWriter persists each written collection as a new snapshot, so the
// database can sit alongside file writers.
type SnapshotWriter struct {
	Service     helixdoc.SnapshotService
	SourceURL   string
	ContentHash string

	// Snapshot is the last snapshot created, nil before the first write.
	Snapshot *helixdoc.Snapshot
}

func (w *SnapshotWriter) WriteEndpoints(ctx context.Context, endpoints []*helixdoc.Endpoint) error {
	snap := &helixdoc.Snapshot{
		SourceURL:   w.SourceURL,
		ContentHash: w.ContentHash,
	}
	if err := w.Service.CreateSnapshot(ctx, snap, endpoints); err != nil {
		return err
	}
	w.Snapshot = snap
	return nil
}
