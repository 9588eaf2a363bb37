package quiz

// AnswerBuffer is the answer the player is composing. Only characters that
// can form a number are accepted: digits, at most one decimal point, and a
// minus sign as the very first character.
type AnswerBuffer struct {
	text []rune
}

// Append adds r if the rules allow it and reports whether it did. Rejected
// characters are ignored silently.
func (b *AnswerBuffer) Append(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
	case r == '.':
		if b.has('.') {
			return false
		}
	case r == '-':
		if len(b.text) > 0 {
			return false
		}
	default:
		return false
	}
	b.text = append(b.text, r)
	return true
}

// Backspace removes the last character and reports whether there was one.
func (b *AnswerBuffer) Backspace() bool {
	if len(b.text) == 0 {
		return false
	}
	b.text = b.text[:len(b.text)-1]
	return true
}

// Clear empties the buffer.
func (b *AnswerBuffer) Clear() {
	b.text = b.text[:0]
}

// Empty reports whether nothing has been typed.
func (b *AnswerBuffer) Empty() bool {
	return len(b.text) == 0
}

func (b *AnswerBuffer) String() string {
	return string(b.text)
}

func (b *AnswerBuffer) has(r rune) bool {
	for _, c := range b.text {
		if c == r {
			return true
		}
	}
	return false
}
