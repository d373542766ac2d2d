package mock

import (
	"context"

	"github.com/fwojciec/helixdoc"
)

var _ helixdoc.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of helixdoc.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, snap *helixdoc.Snapshot, endpoints []*helixdoc.Endpoint) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*helixdoc.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter helixdoc.SnapshotFilter) ([]*helixdoc.Snapshot, error)
	FindEndpointsFn    func(ctx context.Context, snapshotID string) ([]*helixdoc.Endpoint, error)
	DeleteSnapshotFn   func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *helixdoc.Snapshot, endpoints []*helixdoc.Endpoint) error {
	return s.CreateSnapshotFn(ctx, snap, endpoints)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*helixdoc.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter helixdoc.SnapshotFilter) ([]*helixdoc.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) FindEndpoints(ctx context.Context, snapshotID string) ([]*helixdoc.Endpoint, error) {
	return s.FindEndpointsFn(ctx, snapshotID)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}
