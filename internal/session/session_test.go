package session

import (
	"testing"

	"github.com/abhisek/studyflow/internal/assessment"
	"github.com/abhisek/studyflow/internal/questiongen"
)

func TestManagerStartReturnsSameSession(t *testing.T) {
	m := NewManager()

	a := m.Start("25PY001CSE")
	b := m.Start("25PY001CSE")
	if a != b {
		t.Error("second Start created a new session")
	}
	if a.ID == "" {
		t.Error("session has no id")
	}

	other := m.Start("25PY002CSE")
	if other == a {
		t.Error("distinct rolls share a session")
	}
	if other.ID == a.ID {
		t.Error("distinct sessions share an id")
	}
}

func TestManagerEnd(t *testing.T) {
	m := NewManager()

	s := m.Start("25PY001CSE")
	s.Ladders[assessment.KindCognitive] = assessment.NewLadder(assessment.KindCognitive)

	m.End("25PY001CSE")
	if m.Get("25PY001CSE") != nil {
		t.Error("session survived End")
	}

	// A fresh Start after End carries no in-flight state.
	fresh := m.Start("25PY001CSE")
	if len(fresh.Ladders) != 0 {
		t.Error("new session inherited ladders")
	}
}

func TestWeeklyQuizDone(t *testing.T) {
	q := &WeeklyQuiz{
		WeekNo:    2,
		Questions: make([]questiongen.Question, 3),
	}
	for i := 0; i < 3; i++ {
		if q.Done() {
			t.Fatalf("done after %d of 3 answers", i)
		}
		q.Answered++
	}
	if !q.Done() {
		t.Error("not done after all answers")
	}
}
