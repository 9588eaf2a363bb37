package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // restrict to one session
}

// SettingsSnapshotData is the persisted form of the player's settings.
type SettingsSnapshotData struct {
	Muted         bool `json:"muted"`
	KeypadVisible bool `json:"keypad_visible"`
}

// SnapshotData captures the device-local state at a point in time.
type SnapshotData struct {
	Version  int                   `json:"version"`
	Settings *SettingsSnapshotData `json:"settings,omitempty"`
}

// Snapshot represents a point-in-time capture of local state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages local state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData records a journey lifecycle event. Counters are only
// filled on the "end" action.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	Attempted    int
	Correct      int
	BestStreak   int
	Stars        int
	Badges       int
	Planets      int
	DurationSecs int
}

// RewardEventData records a single reward grant.
type RewardEventData struct {
	SessionID  string
	RewardType string
	Name       string
	Rarity     string
	Reason     string
}

// SessionSummaryRecord is a finished journey read back from the store.
type SessionSummaryRecord struct {
	SessionID    string
	Sequence     int64
	Timestamp    time.Time
	Attempted    int
	Correct      int
	BestStreak   int
	Stars        int
	Badges       int
	Planets      int
	DurationSecs int
}

// RewardEventRecord is a reward event read back from the store.
type RewardEventRecord struct {
	SessionID  string
	RewardType string
	Name       string
	Rarity     string
	Reason     string
	Sequence   int64
	Timestamp  time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a journey start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendRewardEvent records a reward grant.
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// QuerySessionSummaries returns finished journeys, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryRewardEvents returns reward events, newest first.
	QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error)

	// RewardCounts returns the number of rewards per type and in total.
	RewardCounts(ctx context.Context) (map[string]int, int, error)
}
