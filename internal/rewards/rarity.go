package rewards

// Rarity represents how special a reward is.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// BadgeRarity returns the rarity of the n-th badge (1-based) of a journey.
func BadgeRarity(n int) Rarity {
	switch {
	case n >= 8:
		return RarityLegendary
	case n >= 5:
		return RarityEpic
	case n >= 3:
		return RarityRare
	default:
		return RarityCommon
	}
}

// PlanetRarity returns the rarity for the planet at index (0-based) of a
// journey with total planets, by quartile of distance from the sun.
func PlanetRarity(index, total int) Rarity {
	if total <= 0 {
		return RarityCommon
	}
	q := index * 4 / total
	switch {
	case q >= 3:
		return RarityLegendary
	case q == 2:
		return RarityEpic
	case q == 1:
		return RarityRare
	default:
		return RarityCommon
	}
}

// SessionRarity returns the rarity for a given journey accuracy (0.0-1.0).
func SessionRarity(accuracy float64) Rarity {
	switch {
	case accuracy >= 0.90:
		return RarityLegendary
	case accuracy >= 0.75:
		return RarityEpic
	case accuracy >= 0.50:
		return RarityRare
	default:
		return RarityCommon
	}
}
