package helixdoc

import (
	"context"
	"time"
)

// Snapshot represents one stored extraction run.
type Snapshot struct {
	ID            string    `json:"id"`
	SourceURL     string    `json:"sourceUrl"`
	ContentHash   string    `json:"contentHash"`
	EndpointCount int       `json:"endpointCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "snapshot source URL required")
	}
	return nil
}

// SnapshotService represents a service for managing stored extraction runs.
type SnapshotService interface {
	// CreateSnapshot stores a snapshot together with its endpoints.
	// ID, EndpointCount and CreatedAt are set on snap.
	CreateSnapshot(ctx context.Context, snap *Snapshot, endpoints []*Endpoint) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// FindEndpoints retrieves the endpoints of a snapshot in document order.
	// Returns ENOTFOUND if snapshot does not exist.
	FindEndpoints(ctx context.Context, snapshotID string) ([]*Endpoint, error)

	// DeleteSnapshot permanently removes a snapshot and its endpoints.
	// Returns ENOTFOUND if snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID          *string `json:"id"`
	SourceURL   *string `json:"sourceUrl"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
