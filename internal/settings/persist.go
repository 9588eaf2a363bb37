package settings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mathmedha/medha/internal/store"
)

// snapshotVersion is bumped when SnapshotData changes shape.
const snapshotVersion = 1

// keepSnapshots is how many snapshots survive a prune.
const keepSnapshots = 5

// Load returns the most recently saved settings, or def when nothing has
// been saved yet.
func Load(ctx context.Context, repo store.SnapshotRepo, def State) (State, error) {
	snap, err := repo.Latest(ctx)
	if err != nil {
		return def, fmt.Errorf("load settings: %w", err)
	}
	if snap == nil || snap.Data.Settings == nil {
		return def, nil
	}
	return State{
		Muted:         snap.Data.Settings.Muted,
		KeypadVisible: snap.Data.Settings.KeypadVisible,
	}, nil
}

// Save writes st as a new snapshot and prunes old ones.
func Save(ctx context.Context, repo store.SnapshotRepo, st State) error {
	err := repo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version: snapshotVersion,
			Settings: &store.SettingsSnapshotData{
				Muted:         st.Muted,
				KeypadVisible: st.KeypadVisible,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := repo.Prune(ctx, keepSnapshots); err != nil {
		return fmt.Errorf("prune settings: %w", err)
	}
	return nil
}

// Persist saves s to repo after every change until the returned cancel
// function is called. Failures are logged; settings keep working in memory.
func Persist(s *Settings, repo store.SnapshotRepo) (cancel func()) {
	return s.Subscribe(func(st State) {
		if err := Save(context.Background(), repo, st); err != nil {
			slog.Warn("persist settings", "err", err)
		}
	})
}
