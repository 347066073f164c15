package analysis

import (
	"testing"

	"github.com/abhisek/studyflow/internal/store"
)

func TestAggregateNoMastery(t *testing.T) {
	s := &store.Student{RollNo: "25PY001CSE", Domain: "Python", CognitiveScore: 40, DomainScore: 40, VivaScore: 40}
	sum := Aggregate(s, nil)

	if sum.TopicsExcellented != NoTopicsSentinel {
		t.Errorf("topics = %q, want sentinel", sum.TopicsExcellented)
	}
	if sum.OutcomeOfCourse != "Needs improvement - Requires additional support" {
		t.Errorf("outcome = %q", sum.OutcomeOfCourse)
	}
	if sum.StudentProgress != "Struggling learner needing focused remediation" {
		t.Errorf("progress = %q", sum.StudentProgress)
	}
}

func TestAggregateAllMastered(t *testing.T) {
	s := &store.Student{
		RollNo: "25DS001CSE", Domain: "Data Science",
		CognitiveScore: 80, DomainScore: 90, VivaScore: 85,
	}
	quizzes := []*store.WeekQuiz{
		{RollNo: s.RollNo, WeekNo: 1, Score: 100, StrongAreas: "Week 1 topics"},
		{RollNo: s.RollNo, WeekNo: 2, Score: 100, StrongAreas: "None identified"},
	}
	sum := Aggregate(s, quizzes)

	want := "Logical Reasoning, Problem Solving, Data Analysis, Statistical Concepts, " +
		"Communication Skills, Technical Explanation, Week 1: Week 1 topics"
	if sum.TopicsExcellented != want {
		t.Errorf("topics = %q\nwant %q", sum.TopicsExcellented, want)
	}
	if sum.OutcomeOfCourse != "Excellent performance - Ready for advanced topics" {
		t.Errorf("outcome = %q", sum.OutcomeOfCourse)
	}
}

func TestAggregateOutcomeBands(t *testing.T) {
	tests := []struct {
		name            string
		c, d, v         int
		outcome         string
		wantProgressSub string
	}{
		{"excellent at boundary", 80, 80, 80, "Excellent performance - Ready for advanced topics", "Outstanding"},
		{"good", 70, 75, 70, "Good performance - Solid foundation established", "improvement identified"},
		{"satisfactory", 60, 60, 65, "Satisfactory performance - Basic concepts understood", "additional practice"},
		{"just below good", 70, 70, 69, "Satisfactory performance - Basic concepts understood", "additional practice"},
		{"needs improvement", 50, 60, 55, "Needs improvement - Requires additional support", "remediation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &store.Student{Domain: "Python", CognitiveScore: tt.c, DomainScore: tt.d, VivaScore: tt.v}
			sum := Aggregate(s, nil)
			if sum.OutcomeOfCourse != tt.outcome {
				t.Errorf("outcome = %q, want %q", sum.OutcomeOfCourse, tt.outcome)
			}
		})
	}
}

func TestAggregateUnknownDomainMastered(t *testing.T) {
	// A domain outside the known three contributes no topic pair even
	// when mastered, but the band labels still apply.
	s := &store.Student{Domain: "Robotics", DomainScore: 95}
	sum := Aggregate(s, nil)
	if sum.TopicsExcellented != NoTopicsSentinel {
		t.Errorf("topics = %q, want sentinel", sum.TopicsExcellented)
	}
}

func TestAggregateWeeklyFilter(t *testing.T) {
	s := &store.Student{Domain: "Python"}
	quizzes := []*store.WeekQuiz{
		{WeekNo: 1, Score: 85, StrongAreas: "Week 1 topics"},
		{WeekNo: 2, Score: 79, StrongAreas: "Most Week 2 topics"}, // below threshold
		{WeekNo: 3, Score: 90, StrongAreas: ""},                   // blank strong areas
		{WeekNo: 4, Score: 90, StrongAreas: "None identified"},    // excluded label
	}
	sum := Aggregate(s, quizzes)
	if sum.TopicsExcellented != "Week 1: Week 1 topics" {
		t.Errorf("topics = %q", sum.TopicsExcellented)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	s := &store.Student{Domain: "Machine Learning", CognitiveScore: 90, DomainScore: 90, VivaScore: 40}
	quizzes := []*store.WeekQuiz{
		{WeekNo: 1, Score: 95, StrongAreas: "Week 1 topics"},
		{WeekNo: 2, Score: 88, StrongAreas: "Week 2 topics"},
	}
	first := Aggregate(s, quizzes)
	for i := 0; i < 10; i++ {
		if got := Aggregate(s, quizzes); got != first {
			t.Fatalf("run %d produced %+v, want %+v", i, got, first)
		}
	}
}
