package formula

import (
	"testing"
)

func TestEscapeChance(t *testing.T) {
	tests := []struct {
		name                   string
		attempts, user, target int
		want                   float64
	}{
		{"even levels", 0, 10, 10, 0.4},
		{"second try", 1, 10, 10, 0.55},
		{"much weaker", 0, 5, 10, 0},
		{"much stronger", 0, 20, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeChance(tt.attempts, tt.user, tt.target)
			if got < tt.want-1e-9 || got > tt.want+1e-9 {
				t.Errorf("EscapeChance(%d, %d, %d) = %v; want %v", tt.attempts, tt.user, tt.target, got, tt.want)
			}
		})
	}
}

func TestExperience(t *testing.T) {
	tests := []struct {
		level int
		mod   float64
		want  int
	}{
		{5, 1, 25},
		{5, 2, 50},
		{5, 0, 25},
		{0, 1, 1},
	}
	for _, tt := range tests {
		if got := Experience(tt.level, tt.mod); got != tt.want {
			t.Errorf("Experience(%d, %v) = %d; want %d", tt.level, tt.mod, got, tt.want)
		}
	}
}
