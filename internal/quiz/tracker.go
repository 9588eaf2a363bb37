package quiz

import (
	"fmt"

	"github.com/mathmedha/medha/internal/rewards"
)

// EventKind identifies a progression milestone.
type EventKind int

const (
	BadgeGranted EventKind = iota
	StarGranted
	PlanetRevealed
	CelebrationEntered
)

func (k EventKind) String() string {
	switch k {
	case BadgeGranted:
		return "badge"
	case StarGranted:
		return "star"
	case PlanetRevealed:
		return "planet"
	case CelebrationEntered:
		return "celebration"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is emitted by the Tracker when a milestone is reached.
type Event struct {
	Kind EventKind

	// Index is the 1-based count for badges and stars and the 0-based
	// journey index for planets.
	Index int
}

// Tracker accumulates score and streaks and decides when rewards are due.
// It cannot fail: it only consumes judged results.
type Tracker struct {
	attempted   int
	correct     int
	consecutive int

	// run is the current streak, not reset by badge grants.
	run        int
	bestStreak int

	badges   int
	stars    int
	revealed int
	planets  int

	celebrating bool
	effect      bool
}

// NewTracker creates a Tracker for a journey with planetCount planets.
func NewTracker(planetCount int) *Tracker {
	return &Tracker{planets: max(0, planetCount)}
}

// Attempt records one judged answer and returns the milestones it reached,
// in the order badge, stars, planets, celebration.
func (t *Tracker) Attempt(correct bool) []Event {
	t.attempted++

	if !correct {
		t.consecutive = 0
		t.run = 0
		t.effect = false
		return nil
	}

	t.correct++
	t.run++
	t.bestStreak = max(t.bestStreak, t.run)

	var events []Event
	t.consecutive++
	if t.consecutive == rewards.BadgeStreak {
		t.consecutive = 0
		t.badges++
		events = append(events, Event{Kind: BadgeGranted, Index: t.badges})
	}

	events = append(events, t.reconcile()...)

	if t.celebrating {
		t.effect = true
	}
	return events
}

// SetTotalCorrect overrides the cumulative correct count, for restoring a
// journey, and reconciles stars, planets and celebration with it.
func (t *Tracker) SetTotalCorrect(n int) []Event {
	t.correct = max(0, n)
	if t.attempted < t.correct {
		t.attempted = t.correct
	}
	return t.reconcile()
}

// reconcile re-derives counts that depend only on the cumulative correct
// total. It emits one event per newly reached milestone, so a jump in the
// total converges to the same state as counting up one by one.
func (t *Tracker) reconcile() []Event {
	var events []Event

	wantStars := rewards.StarsFor(t.correct)
	for t.stars < wantStars {
		t.stars++
		events = append(events, Event{Kind: StarGranted, Index: t.stars})
	}
	t.stars = wantStars

	wantPlanets := rewards.PlanetsFor(t.correct, t.planets)
	for t.revealed < wantPlanets {
		events = append(events, Event{Kind: PlanetRevealed, Index: t.revealed})
		t.revealed++
	}
	t.revealed = wantPlanets

	if !t.celebrating && t.correct >= rewards.CelebrationAt {
		t.celebrating = true
		t.effect = true
		events = append(events, Event{Kind: CelebrationEntered})
	}
	return events
}

// TotalAttempted returns the number of judged answers.
func (t *Tracker) TotalAttempted() int { return t.attempted }

// TotalCorrect returns the number of correct answers.
func (t *Tracker) TotalCorrect() int { return t.correct }

// ConsecutiveCorrect returns progress toward the next badge, in [0, BadgeStreak).
func (t *Tracker) ConsecutiveCorrect() int { return t.consecutive }

// BestStreak returns the longest run of correct answers.
func (t *Tracker) BestStreak() int { return t.bestStreak }

// Badges returns the number of badges granted.
func (t *Tracker) Badges() int { return t.badges }

// Stars returns the number of stars granted.
func (t *Tracker) Stars() int { return t.stars }

// Revealed returns the number of planets revealed.
func (t *Tracker) Revealed() int { return t.revealed }

// Celebrating reports whether celebration mode was entered. It stays on
// for the rest of the journey.
func (t *Tracker) Celebrating() bool { return t.celebrating }

// EffectActive reports whether the celebration effect is showing: armed by
// every correct answer while celebrating, disarmed by a wrong one.
func (t *Tracker) EffectActive() bool { return t.celebrating && t.effect }
