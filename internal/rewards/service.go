package rewards

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mathmedha/medha/internal/store"
)

// Service records awards to the local reward log and keeps the awards of
// the current journey for the results screen.
type Service struct {
	eventRepo store.EventRepo

	// SessionRewards accumulates awards granted during the current journey.
	SessionRewards []Award
}

// NewService creates a Service. A nil eventRepo disables persistence.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{eventRepo: eventRepo}
}

// AwardBadge records the n-th badge (1-based) of the journey.
func (s *Service) AwardBadge(ctx context.Context, kind BadgeKind, n int, sessionID string) *Award {
	return s.award(ctx, &Award{
		Type:      RewardBadge,
		Rarity:    BadgeRarity(n),
		Name:      kind.Name,
		SessionID: sessionID,
		Reason:    fmt.Sprintf("%d correct in a row!", BadgeStreak),
	})
}

// AwardStar records a golden star earned at correct cumulative answers.
func (s *Service) AwardStar(ctx context.Context, correct int, sessionID string) *Award {
	return s.award(ctx, &Award{
		Type:      RewardStar,
		Rarity:    RarityCommon,
		Name:      "Golden Star",
		SessionID: sessionID,
		Reason:    fmt.Sprintf("%d correct answers", correct),
	})
}

// AwardPlanet records the reveal of the planet at index of the journey.
func (s *Service) AwardPlanet(ctx context.Context, index int, sessionID string) *Award {
	p := Journey[index%len(Journey)]
	return s.award(ctx, &Award{
		Type:      RewardPlanet,
		Rarity:    PlanetRarity(index, len(Journey)),
		Name:      p.Name,
		SessionID: sessionID,
		Reason:    fmt.Sprintf("Reached %s", p.Name),
	})
}

// AwardCelebration records entering celebration mode.
func (s *Service) AwardCelebration(ctx context.Context, sessionID string) *Award {
	return s.award(ctx, &Award{
		Type:      RewardCelebration,
		Rarity:    RarityLegendary,
		SessionID: sessionID,
		Reason:    fmt.Sprintf("%d correct answers!", CelebrationAt),
	})
}

// AwardSession records a finished journey.
func (s *Service) AwardSession(ctx context.Context, accuracy float64, sessionID string) *Award {
	return s.award(ctx, &Award{
		Type:      RewardSession,
		Rarity:    SessionRarity(accuracy),
		SessionID: sessionID,
		Reason:    fmt.Sprintf("Journey complete (%.0f%% accuracy)", accuracy*100),
	})
}

// ResetSession clears the journey accumulator. Called at journey start.
func (s *Service) ResetSession() {
	s.SessionRewards = nil
}

// Counts returns the all-time reward counts per type and in total.
func (s *Service) Counts(ctx context.Context) (map[string]int, int, error) {
	if s.eventRepo == nil {
		return map[string]int{}, 0, nil
	}
	return s.eventRepo.RewardCounts(ctx)
}

func (s *Service) award(ctx context.Context, a *Award) *Award {
	a.AwardedAt = time.Now()
	s.persist(ctx, a)
	s.SessionRewards = append(s.SessionRewards, *a)
	return a
}

func (s *Service) persist(ctx context.Context, a *Award) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.AppendRewardEvent(ctx, store.RewardEventData{
		SessionID:  a.SessionID,
		RewardType: string(a.Type),
		Name:       a.Name,
		Rarity:     string(a.Rarity),
		Reason:     a.Reason,
	})
	if err != nil {
		slog.Warn("record reward", "type", a.Type, "session", a.SessionID, "err", err)
	}
}
