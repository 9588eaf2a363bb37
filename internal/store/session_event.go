package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on top of ent's SQL driver.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(sessionEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "action",
			"attempted", "correct", "best_streak", "stars", "badges", "planets", "duration_secs").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Action,
			data.Attempted, data.Correct, data.BestStreak, data.Stars, data.Badges, data.Planets, data.DurationSecs).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	sel := builder().Select("session_id", "sequence", "timestamp",
		"attempted", "correct", "best_streak", "stars", "badges", "planets", "duration_secs").
		From(entsql.Table(sessionEventsTable.Name)).
		Where(entsql.And(append([]*entsql.Predicate{entsql.EQ("action", "end")}, filters(opts)...)...)).
		OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		if err := rows.Scan(&rec.SessionID, &rec.Sequence, &rec.Timestamp,
			&rec.Attempted, &rec.Correct, &rec.BestStreak,
			&rec.Stars, &rec.Badges, &rec.Planets, &rec.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session summaries: %w", err)
	}
	return records, nil
}

// filters converts the generic query options to predicates.
func filters(opts QueryOpts) []*entsql.Predicate {
	var ps []*entsql.Predicate
	if opts.After > 0 {
		ps = append(ps, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		ps = append(ps, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		ps = append(ps, entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		ps = append(ps, entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.SessionID != "" {
		ps = append(ps, entsql.EQ("session_id", opts.SessionID))
	}
	return ps
}
