// Package assessment implements the fixed-length adaptive assessments:
// the 5-round difficulty ladder used by the cognitive and domain tests,
// and the viva voce scorer.
package assessment

import (
	"fmt"

	"github.com/abhisek/studyflow/internal/fault"
)

// Kind identifies which assessment a ladder is running.
type Kind string

const (
	KindCognitive Kind = "cognitive"
	KindDomain    Kind = "domain"
)

// Ladder bounds.
const (
	Rounds     = 5
	StartLevel = 3
	MinLevel   = 1
	MaxLevel   = 5
)

// Ladder tracks one in-progress adaptive assessment. Difficulty moves
// up one level on a correct answer and down one on a wrong answer,
// clamped to [MinLevel, MaxLevel]. Exactly Rounds answers finish it.
type Ladder struct {
	Kind     Kind
	Level    int
	Answered int
	Correct  int
}

// NewLadder starts a ladder at the middle difficulty.
func NewLadder(kind Kind) *Ladder {
	return &Ladder{Kind: kind, Level: StartLevel}
}

// Submit records one answer and adjusts the difficulty. Submitting to
// a finished ladder is a state fault and changes nothing.
func (l *Ladder) Submit(correct bool) error {
	if l.Done() {
		return &fault.State{Msg: fmt.Sprintf("%s assessment already completed", l.Kind)}
	}

	if correct {
		l.Correct++
		if l.Level < MaxLevel {
			l.Level++
		}
	} else if l.Level > MinLevel {
		l.Level--
	}
	l.Answered++
	return nil
}

// Done reports whether all rounds have been answered.
func (l *Ladder) Done() bool {
	return l.Answered >= Rounds
}

// Score returns the final percentage and IQ metric. Only meaningful
// once Done.
func (l *Ladder) Score() (pct, iq int) {
	return l.Correct * 100 / Rounds, IQScore(l.Correct, Rounds)
}

// IQScore derives the bounded IQ-like metric from an accuracy ratio:
// 100 + (accuracy - 0.5) * 40, truncated and clamped to [70, 160].
func IQScore(correct, total int) int {
	if total == 0 {
		return 100
	}
	accuracy := float64(correct) / float64(total)
	adjusted := int(100 + (accuracy-0.5)*40)
	if adjusted < 70 {
		return 70
	}
	if adjusted > 160 {
		return 160
	}
	return adjusted
}
