package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/helixdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ helixdoc.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements helixdoc.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB

	// Now returns the creation time for new snapshots. Defaults to time.Now.
	Now func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db, Now: time.Now}
}

// CreateSnapshot stores snap and its endpoints in a single transaction.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *helixdoc.Snapshot, endpoints []*helixdoc.Endpoint) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	for _, e := range endpoints {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	snap.ID = uuid.New().String()
	snap.EndpointCount = len(endpoints)
	snap.CreatedAt = s.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, source_url, content_hash, endpoint_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, snap.ID, snap.SourceURL, snap.ContentHash, snap.EndpointCount, formatTime(snap.CreatedAt))
	if err != nil {
		return err
	}

	for i, e := range endpoints {
		if err := insertEndpoint(ctx, tx, snap.ID, i, e); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertEndpoint(ctx context.Context, tx *sql.Tx, snapshotID string, position int, e *helixdoc.Endpoint) error {
	columns := []struct {
		name  string
		value any
	}{
		{"token_types", e.TokenTypes},
		{"request_params", e.RequestParams},
		{"body_params", e.BodyParams},
		{"response_params", e.ResponseParams},
		{"examples", e.Examples},
	}
	encoded := make([]string, len(columns))
	for i, c := range columns {
		v, err := marshalColumn(c.value, c.name)
		if err != nil {
			return err
		}
		encoded[i] = v
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO endpoints (
			snapshot_id, position, docs_link, title, description, token_types,
			http_method, path, full_path, request_params, body_params, response_params, examples
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, snapshotID, position, e.DocsLink, e.Title, e.Description, encoded[0],
		e.Spec.HTTPMethod, e.Spec.Path, e.Spec.FullPath, encoded[1], encoded[2], encoded[3], encoded[4])
	if err != nil {
		return fmt.Errorf("insert endpoint %q: %w", e.Title, err)
	}
	return nil
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*helixdoc.Snapshot, error) {
	snaps, err := s.FindSnapshots(ctx, helixdoc.SnapshotFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, helixdoc.Errorf(helixdoc.ENOTFOUND, "snapshot not found")
	}
	return snaps[0], nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter helixdoc.SnapshotFilter) ([]*helixdoc.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, content_hash, endpoint_count, created_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*helixdoc.Snapshot
	for rows.Next() {
		var snap helixdoc.Snapshot
		var createdAt string

		if err := rows.Scan(&snap.ID, &snap.SourceURL, &snap.ContentHash, &snap.EndpointCount, &createdAt); err != nil {
			return nil, err
		}

		snap.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		snaps = append(snaps, &snap)
	}

	return snaps, rows.Err()
}

// FindEndpoints retrieves the endpoints of a snapshot in their stored order.
func (s *SnapshotService) FindEndpoints(ctx context.Context, snapshotID string) ([]*helixdoc.Endpoint, error) {
	if _, err := s.FindSnapshotByID(ctx, snapshotID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT docs_link, title, description, token_types, http_method, path, full_path,
			request_params, body_params, response_params, examples
		FROM endpoints
		WHERE snapshot_id = ?
		ORDER BY position ASC
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	endpoints := []*helixdoc.Endpoint{}
	for rows.Next() {
		e, err := scanEndpoint(rows)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, e)
	}

	return endpoints, rows.Err()
}

func scanEndpoint(rows *sql.Rows) (*helixdoc.Endpoint, error) {
	var e helixdoc.Endpoint
	var tokenTypes, requestParams, bodyParams, responseParams, examples string

	if err := rows.Scan(&e.DocsLink, &e.Title, &e.Description, &tokenTypes,
		&e.Spec.HTTPMethod, &e.Spec.Path, &e.Spec.FullPath,
		&requestParams, &bodyParams, &responseParams, &examples); err != nil {
		return nil, err
	}

	err := errors.Join(
		unmarshalColumn(tokenTypes, "token_types", &e.TokenTypes),
		unmarshalColumn(requestParams, "request_params", &e.RequestParams),
		unmarshalColumn(bodyParams, "body_params", &e.BodyParams),
		unmarshalColumn(responseParams, "response_params", &e.ResponseParams),
		unmarshalColumn(examples, "examples", &e.Examples),
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteSnapshot permanently removes a snapshot and its endpoints.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return helixdoc.Errorf(helixdoc.ENOTFOUND, "snapshot not found")
	}

	return nil
}
