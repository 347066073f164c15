package progression

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/store"
)

type fakeStudents struct {
	store.StudentRepo
	steps map[string]int
}

func (f *fakeStudents) SetCurrentStep(ctx context.Context, rollNo string, step int) error {
	if f.steps == nil {
		f.steps = make(map[string]int)
	}
	f.steps[rollNo] = step
	return nil
}

type fakeQuizzes struct {
	store.QuizRepo
	rows map[int]*store.WeekQuiz
}

func (f *fakeQuizzes) Get(ctx context.Context, rollNo string, weekNo int) (*store.WeekQuiz, error) {
	return f.rows[weekNo], nil
}

func newTestController() (*Controller, *fakeStudents, *fakeQuizzes) {
	students := &fakeStudents{}
	quizzes := &fakeQuizzes{rows: map[int]*store.WeekQuiz{}}
	return NewController(students, quizzes), students, quizzes
}

func TestReachedDerivation(t *testing.T) {
	c, _, quizzes := newTestController()
	ctx := context.Background()

	s := &store.Student{RollNo: "25PY001CSE", Weeks: 4, CurrentStep: 1}

	tests := []struct {
		name  string
		setup func()
		want  Step
	}{
		{"fresh record", func() {}, StepCognitive},
		{"cognitive done", func() { s.CognitiveScore, s.CognitiveIQ = 60, 104 }, StepDomain},
		{"domain done", func() { s.DomainScore, s.DomainIQ = 80, 112 }, StepViva},
		{"viva done", func() { s.VivaScore, s.VivaResponse = 90, "an explanation" }, StepConfigure},
		{"configured", func() { s.CourseConfigured = true }, StepWeekly},
		{"final quiz taken", func() {
			quizzes.rows[4] = &store.WeekQuiz{RollNo: s.RollNo, WeekNo: 4, Score: 70}
		}, StepAnalysis},
	}
	for _, tt := range tests {
		tt.setup()
		got, err := c.Reached(ctx, s)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: reached = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAdvanceBlockedByGate(t *testing.T) {
	c, students, _ := newTestController()
	ctx := context.Background()

	s := &store.Student{RollNo: "25PY001CSE", Weeks: 4, CurrentStep: 2}

	// Step 2 is not complete, so step 3 is out of reach.
	_, err := c.Advance(ctx, s)
	var state *fault.State
	if !errors.As(err, &state) {
		t.Fatalf("err = %v, want state fault", err)
	}
	if s.CurrentStep != 2 {
		t.Errorf("current step changed to %d on rejected advance", s.CurrentStep)
	}
	if len(students.steps) != 0 {
		t.Error("rejected advance wrote to the store")
	}
}

func TestAdvanceAfterCompletion(t *testing.T) {
	c, students, _ := newTestController()
	ctx := context.Background()

	s := &store.Student{
		RollNo: "25PY001CSE", Weeks: 4, CurrentStep: 2,
		CognitiveScore: 60, CognitiveIQ: 104,
	}
	got, err := c.Advance(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	if got != StepDomain {
		t.Errorf("advanced to %v, want %v", got, StepDomain)
	}
	if s.CurrentStep != 3 || students.steps[s.RollNo] != 3 {
		t.Errorf("step not persisted: mem=%d stored=%d", s.CurrentStep, students.steps[s.RollNo])
	}
}

func TestJumpToRevisit(t *testing.T) {
	c, _, _ := newTestController()
	ctx := context.Background()

	s := &store.Student{
		RollNo: "25PY001CSE", Weeks: 4, CurrentStep: 5,
		CognitiveIQ: 104, DomainIQ: 112, VivaResponse: "an explanation",
	}

	// Backward is always allowed.
	if _, err := c.JumpTo(ctx, s, StepCognitive); err != nil {
		t.Fatalf("backward jump: %v", err)
	}
	// Forward past the configuration gate is not.
	_, err := c.JumpTo(ctx, s, StepWeekly)
	var state *fault.State
	if !errors.As(err, &state) {
		t.Fatalf("err = %v, want state fault", err)
	}
}

func TestJumpToInvalidStep(t *testing.T) {
	c, _, _ := newTestController()
	ctx := context.Background()
	s := &store.Student{RollNo: "25PY001CSE", Weeks: 4, CurrentStep: 1}

	for _, target := range []Step{0, 8, -1} {
		var state *fault.State
		if _, err := c.JumpTo(ctx, s, target); !errors.As(err, &state) {
			t.Errorf("JumpTo(%d) err = %v, want state fault", int(target), err)
		}
	}
}

func TestAdvancePastFinal(t *testing.T) {
	c, _, _ := newTestController()
	ctx := context.Background()
	s := &store.Student{RollNo: "25PY001CSE", Weeks: 4, CurrentStep: 7}

	var state *fault.State
	if _, err := c.Advance(ctx, s); !errors.As(err, &state) {
		t.Errorf("err = %v, want state fault", state)
	}
}
