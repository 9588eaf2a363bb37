package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "medha.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestBuilderQuotesForSQLite(t *testing.T) {
	q, args := builder().Delete(rewardEventsTable.Name).Query()
	if want := "DELETE FROM `reward_events`"; q != want {
		t.Errorf("query = %q, want %q", q, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := countRows(s, "snapshots")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := countRows(s, "snapshots")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"session_events", "reward_events", "snapshots", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medha.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendRewardEvent(ctx, RewardEventData{
		SessionID: "s1", RewardType: "star", Name: "Star", Rarity: "common", Reason: "5 correct",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	_, total, err := s.EventRepo().RewardCounts(ctx)
	if err != nil {
		t.Fatalf("reward counts: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, id := range []string{"a", "b", "c"} {
		if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: id, Action: "start"}); err != nil {
			t.Fatalf("append start %s: %v", id, err)
		}
		if err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:    id,
			Action:       "end",
			Attempted:    10 + i,
			Correct:      5 + i,
			BestStreak:   3,
			Stars:        1,
			Badges:       1,
			Planets:      0,
			DurationSecs: 60,
		}); err != nil {
			t.Fatalf("append end %s: %v", id, err)
		}
	}

	records, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3 (start events must be excluded)", len(records))
	}
	if records[0].SessionID != "c" {
		t.Errorf("first = %q, want newest session c", records[0].SessionID)
	}
	if records[0].Attempted != 12 || records[0].Correct != 7 {
		t.Errorf("counters = %d/%d, want 7/12", records[0].Correct, records[0].Attempted)
	}
	if records[0].Timestamp.IsZero() {
		t.Error("timestamp not populated")
	}

	limited, err := repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited len = %d, want 2", len(limited))
	}

	one, err := repo.QuerySessionSummaries(ctx, QueryOpts{SessionID: "b"})
	if err != nil {
		t.Fatalf("query by session: %v", err)
	}
	if len(one) != 1 || one[0].SessionID != "b" {
		t.Errorf("by session = %+v, want session b only", one)
	}
}

func TestRewardEventsAndCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []RewardEventData{
		{SessionID: "s1", RewardType: "badge", Name: "Rocket", Rarity: "common", Reason: "5 in a row"},
		{SessionID: "s1", RewardType: "star", Name: "Star", Rarity: "common", Reason: "5 correct"},
		{SessionID: "s1", RewardType: "star", Name: "Star", Rarity: "common", Reason: "10 correct"},
		{SessionID: "s2", RewardType: "planet", Name: "Mercury", Rarity: "common", Reason: "10 correct"},
	}
	for _, e := range events {
		if err := repo.AppendRewardEvent(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.RewardType, err)
		}
	}

	records, err := repo.QueryRewardEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("len = %d, want 4", len(records))
	}
	if records[0].Name != "Mercury" {
		t.Errorf("first = %q, want newest Mercury", records[0].Name)
	}
	for i := 1; i < len(records); i++ {
		if records[i].Sequence >= records[i-1].Sequence {
			t.Errorf("records not in descending sequence order at %d", i)
		}
	}

	after, err := repo.QueryRewardEvents(ctx, QueryOpts{After: records[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 {
		t.Errorf("after len = %d, want 1", len(after))
	}

	byType, total, err := repo.RewardCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if byType["star"] != 2 || byType["badge"] != 1 || byType["planet"] != 1 {
		t.Errorf("byType = %v", byType)
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s", Action: "end"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendRewardEvent(ctx, RewardEventData{SessionID: "s", RewardType: "star"}); err != nil {
		t.Fatal(err)
	}

	sessions, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	rewards, err := repo.QueryRewardEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if sessions[0].Sequence != 1 || rewards[0].Sequence != 2 {
		t.Errorf("sequences = %d, %d; want 1, 2", sessions[0].Sequence, rewards[0].Sequence)
	}
}

func countRows(s *Store, table string) (int, error) {
	var n int
	err := s.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	return n, err
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "end", Attempted: 3}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendRewardEvent(ctx, RewardEventData{SessionID: "s1", RewardType: "star", Rarity: "common"}); err != nil {
		t.Fatalf("append reward: %v", err)
	}
	snap := &Snapshot{Timestamp: time.Now(), Data: SnapshotData{Version: 1}}
	if err := s.SnapshotRepo().Save(ctx, snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	if err := s.Reset(ctx, false); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for table, want := range map[string]int{"session_events": 0, "reward_events": 0, "snapshots": 1} {
		n, err := countRows(s, table)
		if err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if n != want {
			t.Errorf("%s rows = %d, want %d", table, n, want)
		}
	}

	if err := s.Reset(ctx, true); err != nil {
		t.Fatalf("reset with settings: %v", err)
	}
	if n, _ := countRows(s, "snapshots"); n != 0 {
		t.Errorf("snapshots rows = %d, want 0", n)
	}
}
