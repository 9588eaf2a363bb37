package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Space Journey", HeaderStats{Stars: 4, Badges: 2, Muted: true}, 100)
	for _, want := range []string{"Math Medha", "Space Journey", "★ 4", "✪ 2", "♪ off"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	b := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	f := RenderFooter([]key.Binding{b}, 80)
	if !strings.Contains(f, "back") {
		t.Errorf("footer missing help text: %q", f)
	}
}
