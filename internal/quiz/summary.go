package quiz

import "time"

// Summary is handed to the results view when a journey ends.
type Summary struct {
	SessionID       string
	Duration        time.Duration
	TotalAttempted  int
	TotalCorrect    int
	BestStreak      int
	Stars           int
	Badges          int
	PlanetsRevealed int
	Celebrating     bool
}

// Accuracy returns the share of correct answers, 0 when nothing was
// attempted.
func (s Summary) Accuracy() float64 {
	if s.TotalAttempted == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalAttempted)
}

// ResultsHandler receives the summary of a finished journey.
type ResultsHandler func(Summary)
