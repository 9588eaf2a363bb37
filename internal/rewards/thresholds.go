package rewards

// Milestones that grant rewards.
const (
	// BadgeStreak is the number of consecutive correct answers per badge.
	BadgeStreak = 5

	// StarEvery grants a golden star every N cumulative correct answers.
	StarEvery = 5

	// PlanetEvery reveals the next planet every N cumulative correct answers.
	PlanetEvery = 10

	// CelebrationAt is the cumulative correct count that starts celebration mode.
	CelebrationAt = 100
)

// PlanetsFor returns how many planets should be revealed after correct
// cumulative correct answers: min(correct/PlanetEvery, total).
func PlanetsFor(correct, total int) int {
	if correct < 0 {
		return 0
	}
	n := correct / PlanetEvery
	if n > total {
		return total
	}
	return n
}

// StarsFor returns how many stars correct cumulative answers are worth.
func StarsFor(correct int) int {
	if correct < 0 {
		return 0
	}
	return correct / StarEvery
}
