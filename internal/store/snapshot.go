package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// snapshotRepo implements SnapshotRepo on top of ent's SQL driver.
type snapshotRepo struct {
	drv *entsql.Driver
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	query, args := builder().Insert(snapshotsTable.Name).
		Columns("sequence", "timestamp", "data").
		Values(snap.Sequence, snap.Timestamp.UTC(), string(data)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	query, args := builder().Select("id", "sequence", "timestamp", "data").
		From(entsql.Table(snapshotsTable.Name)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		snap Snapshot
		raw  string
	)
	if err := rows.Scan(&snap.ID, &snap.Sequence, &snap.Timestamp, &raw); err != nil {
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &snap.Data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the newest snapshot that falls outside the keep window.
	query, args := builder().Select("id").
		From(entsql.Table(snapshotsTable.Name)).
		OrderBy(entsql.Desc("id")).
		Offset(keep).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	var threshold int
	found := rows.Next()
	if found {
		if err := rows.Scan(&threshold); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	rows.Close()
	if !found {
		return nil // fewer than keep snapshots exist
	}

	del, delArgs := builder().Delete(snapshotsTable.Name).
		Where(entsql.LTE("id", threshold)).
		Query()
	var res sql.Result
	if err := r.drv.Exec(ctx, del, delArgs, &res); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
