package quiz

import "testing"

func TestAnswerBuffer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"digits", "123", "123"},
		{"leading minus", "-5", "-5"},
		{"second minus ignored", "--5", "-5"},
		{"minus after digit ignored", "5-", "5"},
		{"one decimal point", "1.2.3", "1.23"},
		{"negative decimal", "-0.5", "-0.5"},
		{"letters ignored", "4a2b", "42"},
		{"spaces ignored", " 4 2 ", "42"},
		{"unicode ignored", "४२", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b AnswerBuffer
			for _, r := range tt.input {
				b.Append(r)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("buffer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnswerBuffer_MinusScenario(t *testing.T) {
	var b AnswerBuffer

	if !b.Append('-') {
		t.Fatal("first minus rejected")
	}
	if b.String() != "-" {
		t.Fatalf("buffer = %q, want %q", b.String(), "-")
	}
	if b.Append('-') {
		t.Error("second minus accepted")
	}
	if b.String() != "-" {
		t.Fatalf("buffer = %q, want %q", b.String(), "-")
	}
	b.Append('5')
	if b.String() != "-5" {
		t.Errorf("buffer = %q, want %q", b.String(), "-5")
	}
}

func TestAnswerBuffer_Backspace(t *testing.T) {
	var b AnswerBuffer

	if b.Backspace() {
		t.Error("backspace on empty buffer reported a change")
	}

	for _, r := range "1.5" {
		b.Append(r)
	}
	b.Backspace()
	b.Backspace()
	if b.String() != "1" {
		t.Fatalf("buffer = %q, want %q", b.String(), "1")
	}

	// The decimal point is allowed again once removed.
	if !b.Append('.') {
		t.Error("decimal point rejected after deleting the previous one")
	}

	b.Clear()
	if !b.Empty() {
		t.Error("buffer not empty after Clear")
	}
	// Minus is allowed again on an empty buffer.
	if !b.Append('-') {
		t.Error("minus rejected on cleared buffer")
	}
}
