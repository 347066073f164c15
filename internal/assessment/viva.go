package assessment

import "strings"

// VivaScorer grades a free-text viva response. The default is a crude
// length-based placeholder; a semantic scorer can replace it without
// touching the surrounding flow.
type VivaScorer interface {
	Score(response string) int
}

// LengthScorer scores min(100, word_count * 2).
type LengthScorer struct{}

func (LengthScorer) Score(response string) int {
	score := len(strings.Fields(response)) * 2
	if score > 100 {
		return 100
	}
	return score
}

// VivaDifficulty maps the average of the two MCQ assessment scores to
// the viva difficulty band.
func VivaDifficulty(cognitiveScore, domainScore int) string {
	avg := float64(cognitiveScore+domainScore) / 2
	switch {
	case avg < 60:
		return "basic"
	case avg < 80:
		return "intermediate"
	default:
		return "advanced"
	}
}
