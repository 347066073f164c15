package assessment

import (
	"errors"
	"testing"

	"github.com/abhisek/studyflow/internal/fault"
)

func TestLadderTrace(t *testing.T) {
	// Answers correct, correct, wrong, correct, wrong starting at
	// level 3 must visit 3→4→5→4→5→4.
	l := NewLadder(KindCognitive)
	answers := []bool{true, true, false, true, false}
	wantLevels := []int{4, 5, 4, 5, 4}

	if l.Level != 3 {
		t.Fatalf("start level = %d, want 3", l.Level)
	}

	for i, correct := range answers {
		if err := l.Submit(correct); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if l.Level != wantLevels[i] {
			t.Errorf("after answer %d: level = %d, want %d", i+1, l.Level, wantLevels[i])
		}
	}

	if !l.Done() {
		t.Fatal("ladder not done after 5 answers")
	}
	if l.Correct != 3 {
		t.Errorf("correct = %d, want 3", l.Correct)
	}

	pct, iq := l.Score()
	if pct != 60 {
		t.Errorf("score = %d, want 60", pct)
	}
	if iq != 104 {
		t.Errorf("iq = %d, want 104", iq)
	}
}

func TestLadderLevelClamps(t *testing.T) {
	l := NewLadder(KindDomain)

	// Three straight correct answers pin the level at 5.
	for i := 0; i < 3; i++ {
		if err := l.Submit(true); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if l.Level != 5 {
		t.Errorf("level = %d, want 5", l.Level)
	}

	l2 := NewLadder(KindDomain)
	for i := 0; i < 3; i++ {
		if err := l2.Submit(false); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if l2.Level != 1 {
		t.Errorf("level = %d, want 1", l2.Level)
	}
}

func TestLadderRejectsSixthAnswer(t *testing.T) {
	l := NewLadder(KindCognitive)
	for i := 0; i < 5; i++ {
		if err := l.Submit(true); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	err := l.Submit(true)
	if err == nil {
		t.Fatal("expected state fault on sixth answer")
	}
	var sf *fault.State
	if !errors.As(err, &sf) {
		t.Fatalf("expected *fault.State, got %T", err)
	}
	if l.Correct != 5 || l.Answered != 5 {
		t.Errorf("rejected submit mutated state: %+v", l)
	}
}

func TestIQScoreClamps(t *testing.T) {
	tests := []struct {
		correct, total int
		want           int
	}{
		{0, 5, 80},
		{5, 5, 120},
		{3, 5, 104},
		{2, 5, 96},
		{0, 0, 100},
		{1, 3, 93},
	}

	for _, tt := range tests {
		if got := IQScore(tt.correct, tt.total); got != tt.want {
			t.Errorf("IQScore(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
