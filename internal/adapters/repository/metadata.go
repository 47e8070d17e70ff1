package repository

import (
	"context"
	"fmt"

	"github.com/adenchik/leadboard/internal/domain/model"
)

// UpsertMetadata inserts or replaces one metadata key. Idempotent.
func (s *SQLStore) UpsertMetadata(ctx context.Context, key string, value int64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO metadata (key, value) VALUES (?, ?)
`, key, value)
	if err != nil {
		return fmt.Errorf("upsert metadata %s: %w", key, err)
	}
	return nil
}

// Metadata reads the sync timestamps. Keys that were never written read
// as zero, which callers treat as "no sync yet".
func (s *SQLStore) Metadata(ctx context.Context) (model.Meta, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM metadata`)
	if err != nil {
		return model.Meta{}, fmt.Errorf("query metadata: %w", err)
	}
	defer rows.Close()

	var m model.Meta
	for rows.Next() {
		var (
			key   string
			value int64
		)
		if err := rows.Scan(&key, &value); err != nil {
			return model.Meta{}, fmt.Errorf("scan metadata: %w", err)
		}
		switch key {
		case KeyTimePosted:
			m.TimePosted = value
		case KeyNextScheduledPostTime:
			m.NextScheduledPostTime = value
		}
	}
	return m, rows.Err()
}
