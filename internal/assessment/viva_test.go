package assessment

import (
	"strings"
	"testing"
)

func TestLengthScorer(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 2},
		{25, 50},
		{50, 100},
		{51, 100},
		{400, 100},
	}

	var s LengthScorer
	for _, tt := range tests {
		resp := strings.TrimSpace(strings.Repeat("word ", tt.words))
		if got := s.Score(resp); got != tt.want {
			t.Errorf("Score(%d words) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestVivaDifficultyBands(t *testing.T) {
	tests := []struct {
		cognitive, domain int
		want              string
	}{
		{0, 0, "basic"},
		{40, 60, "basic"},
		{60, 59, "basic"},
		{60, 60, "intermediate"},
		{70, 80, "intermediate"},
		{79, 80, "intermediate"},
		{80, 80, "advanced"},
		{100, 100, "advanced"},
	}

	for _, tt := range tests {
		if got := VivaDifficulty(tt.cognitive, tt.domain); got != tt.want {
			t.Errorf("VivaDifficulty(%d, %d) = %q, want %q", tt.cognitive, tt.domain, got, tt.want)
		}
	}
}
