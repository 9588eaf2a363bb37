package problemgen

import "fmt"

// Question is a single multiplication challenge. It is created fresh for
// every prompt and never mutated.
type Question struct {
	// A and B are the two factors.
	A int
	B int

	// Display is the expression shown to the player, e.g. "7 × 6".
	Display string

	// Spoken is the text handed to speech synthesis.
	Spoken string
}

// NewQuestion builds a Question for a × b with its display and spoken forms.
func NewQuestion(a, b int) Question {
	return Question{
		A:       a,
		B:       b,
		Display: fmt.Sprintf("%d × %d", a, b),
		Spoken:  fmt.Sprintf("What is %d times %d?", a, b),
	}
}

// Answer returns the exact product of the factors.
func (q Question) Answer() int {
	return q.A * q.B
}

// String implements fmt.Stringer.
func (q Question) String() string {
	return q.Display
}
