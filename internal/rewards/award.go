package rewards

import "time"

// Award represents a single reward earned during a journey.
type Award struct {
	Type      RewardType
	Rarity    Rarity
	Name      string // badge or planet name; empty for stars and sessions
	SessionID string
	Reason    string // human-readable reason, e.g. "5 correct in a row!"
	AwardedAt time.Time
}
