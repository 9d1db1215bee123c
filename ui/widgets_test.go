package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestFillRatio(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{"half", 1250, 2500, 0.5},
		{"over target clamps", 5000, 2500, 1},
		{"no intake", 0, 2500, 0},
		{"no target", 100, 0, 0},
	}
	for _, tt := range tests {
		if got := fillRatio(tt.current, tt.target); got != tt.want {
			t.Errorf("%s: fillRatio(%v, %v) = %v, want %v", tt.name, tt.current, tt.target, got, tt.want)
		}
	}
}

func TestBarColorThresholds(t *testing.T) {
	r := NewRenderer()
	tests := []struct {
		ratio float64
		want  string
	}{
		{0.1, "low"},
		{0.3, "medium"},
		{0.59, "medium"},
		{0.6, "high"},
	}
	colors := map[string]rl.Color{
		"low":    r.Theme.Starving,
		"medium": r.Theme.Short,
		"high":   r.Theme.Fed,
	}
	for _, tt := range tests {
		if got := r.barColor(tt.ratio); got != colors[tt.want] {
			t.Errorf("barColor(%v) = %v, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct{ in, want int }{{0, 1}, {1, 1}, {7, 7}, {500, 60}}
	for _, tt := range tests {
		if got := clampSpeed(tt.in, 60); got != tt.want {
			t.Errorf("clampSpeed(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
