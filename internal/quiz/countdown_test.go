package quiz

import (
	"testing"
	"time"
)

func TestCountdown(t *testing.T) {
	c := NewCountdown(3 * time.Second)

	if c.Remaining() != 3 || c.Total() != 3 {
		t.Fatalf("remaining/total = %d/%d, want 3/3", c.Remaining(), c.Total())
	}

	expiries := 0
	for i := 0; i < 10; i++ {
		if c.Tick() {
			expiries++
		}
		if c.Remaining() < 0 {
			t.Fatalf("remaining went negative: %d", c.Remaining())
		}
	}

	if expiries != 1 {
		t.Errorf("expired %d times, want 1", expiries)
	}
	if c.Remaining() != 0 || !c.Expired() || !c.Stopped() {
		t.Errorf("state after expiry: remaining=%d expired=%v stopped=%v",
			c.Remaining(), c.Expired(), c.Stopped())
	}
	if c.Elapsed() != 3 {
		t.Errorf("elapsed = %d, want 3", c.Elapsed())
	}
}

func TestCountdown_Stop(t *testing.T) {
	c := NewCountdown(5 * time.Second)
	c.Tick()
	c.Stop()

	if c.Tick() {
		t.Error("tick after stop reported expiry")
	}
	if c.Remaining() != 4 {
		t.Errorf("remaining = %d, want 4", c.Remaining())
	}
	if c.Expired() {
		t.Error("stopped countdown reported expired")
	}
}

func TestNewCountdown(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{0, 30},
		{-time.Second, 30},
		{30 * time.Second, 30},
		{1500 * time.Millisecond, 2},
		{time.Minute, 60},
	}
	for _, tt := range tests {
		if got := NewCountdown(tt.d).Total(); got != tt.want {
			t.Errorf("NewCountdown(%v).Total() = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestCountdown_Fraction(t *testing.T) {
	c := NewCountdown(4 * time.Second)
	if c.Fraction() != 1 {
		t.Errorf("fraction = %v, want 1", c.Fraction())
	}
	c.Tick()
	if c.Fraction() != 0.75 {
		t.Errorf("fraction = %v, want 0.75", c.Fraction())
	}
}
