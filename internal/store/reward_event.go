package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(rewardEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "reward_type", "name", "rarity", "reason").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.RewardType, data.Name, data.Rarity, data.Reason).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error) {
	sel := builder().Select("session_id", "reward_type", "name", "rarity", "reason", "sequence", "timestamp").
		From(entsql.Table(rewardEventsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	if ps := filters(opts); len(ps) > 0 {
		sel.Where(entsql.And(ps...))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}
	defer rows.Close()

	var records []RewardEventRecord
	for rows.Next() {
		var rec RewardEventRecord
		if err := rows.Scan(&rec.SessionID, &rec.RewardType, &rec.Name, &rec.Rarity,
			&rec.Reason, &rec.Sequence, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan reward event: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reward events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) RewardCounts(ctx context.Context) (map[string]int, int, error) {
	query, args := builder().Select("reward_type", entsql.Count("*")).
		From(entsql.Table(rewardEventsTable.Name)).
		GroupBy("reward_type").
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, 0, fmt.Errorf("query reward counts: %w", err)
	}
	defer rows.Close()

	byType := make(map[string]int)
	total := 0
	for rows.Next() {
		var (
			rewardType string
			n          int
		)
		if err := rows.Scan(&rewardType, &n); err != nil {
			return nil, 0, fmt.Errorf("scan reward count: %w", err)
		}
		byType[rewardType] = n
		total += n
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reward counts: %w", err)
	}
	return byType, total, nil
}
