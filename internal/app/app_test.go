package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/studyflow/internal/assessment"
	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/questiongen"
	"github.com/abhisek/studyflow/internal/store"
	"github.com/abhisek/studyflow/internal/weekly"
)

// scriptGen returns deterministic questions so tests can choose
// correct or wrong answers at will.
type scriptGen struct {
	calls int
	fail  bool
}

func (g *scriptGen) Question(ctx context.Context, in questiongen.QuestionInput) (*questiongen.Question, error) {
	g.calls++
	if g.fail {
		return nil, errors.New("provider down")
	}
	return &questiongen.Question{
		Text:          fmt.Sprintf("q%d (%s level %d)", g.calls, in.Kind, in.Level),
		Options:       []string{"right", "w1", "w2", "w3"},
		CorrectOption: "right",
		Explanation:   "because",
	}, nil
}

func (g *scriptGen) OpenQuestion(ctx context.Context, domain, difficulty string) (*questiongen.OpenQuestion, error) {
	if g.fail {
		return nil, errors.New("provider down")
	}
	return &questiongen.OpenQuestion{
		Text:           fmt.Sprintf("explain %s (%s)", domain, difficulty),
		ExpectedPoints: []string{"p1"},
		Rubric:         "depth",
	}, nil
}

func (g *scriptGen) CourseContent(ctx context.Context, in questiongen.ContentInput) (string, error) {
	if g.fail {
		return "", errors.New("provider down")
	}
	return fmt.Sprintf("material for week %d", in.WeekNo), nil
}

func newTestApp(t *testing.T) (*App, *scriptGen) {
	t.Helper()
	dsn := fmt.Sprintf("file:app_%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", t.Name())
	st, err := store.Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	gen := &scriptGen{}
	return New(st, gen), gen
}

func intake(t *testing.T, a *App) *StudentView {
	t.Helper()
	sv, err := a.SubmitBackground(context.Background(), BackgroundInput{
		Name:           "Asha",
		Domain:         "Python",
		Branch:         "CSE",
		KnowledgeLevel: "Intermediate",
	})
	if err != nil {
		t.Fatalf("intake: %v", err)
	}
	return sv
}

// runLadder answers one full assessment with the given pattern.
func runLadder(t *testing.T, a *App, rollNo, kind string, answers []bool) *AnswerView {
	t.Helper()
	ctx := context.Background()
	var last *AnswerView
	for _, correct := range answers {
		if _, err := a.CurrentQuestion(ctx, rollNo, kind); err != nil {
			t.Fatalf("%s question: %v", kind, err)
		}
		answer := "right"
		if !correct {
			answer = "w1"
		}
		var err error
		last, err = a.SubmitAnswer(ctx, rollNo, kind, answer)
		if err != nil {
			t.Fatalf("%s answer: %v", kind, err)
		}
	}
	return last
}

func TestSubmitBackground(t *testing.T) {
	a, _ := newTestApp(t)
	sv := intake(t, a)

	if sv.RollNo[2:4] != "PY" {
		t.Errorf("roll = %s, want PY code", sv.RollNo)
	}
	if sv.CurrentStep != 2 {
		t.Errorf("step = %d, want 2", sv.CurrentStep)
	}
}

func TestSubmitBackgroundValidation(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   BackgroundInput
	}{
		{"missing name", BackgroundInput{Domain: "Python", KnowledgeLevel: "Beginner"}},
		{"missing domain", BackgroundInput{Name: "Asha", KnowledgeLevel: "Beginner"}},
		{"bad level", BackgroundInput{Name: "Asha", Domain: "Python", KnowledgeLevel: "Guru"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v *fault.Validation
			if _, err := a.SubmitBackground(ctx, tt.in); !errors.As(err, &v) {
				t.Errorf("err = %v, want validation fault", err)
			}
		})
	}
}

func TestAssessmentFlow(t *testing.T) {
	a, _ := newTestApp(t)
	sv := intake(t, a)
	ctx := context.Background()

	// The reference trace: C C W C W lands at 60% and IQ 104.
	last := runLadder(t, a, sv.RollNo, "cognitive", []bool{true, true, false, true, false})
	if !last.Done || last.Score != 60 || last.IQ != 104 {
		t.Fatalf("final view = %+v", last)
	}

	st, err := a.Student(ctx, sv.RollNo)
	if err != nil {
		t.Fatal(err)
	}
	if st.CurrentStep != 3 {
		t.Errorf("step = %d, want 3 after cognitive", st.CurrentStep)
	}

	// A finished assessment cannot be retaken.
	var state *fault.State
	if _, err := a.CurrentQuestion(ctx, sv.RollNo, "cognitive"); !errors.As(err, &state) {
		t.Errorf("retake err = %v, want state fault", err)
	}
}

func TestCurrentQuestionStableUntilAnswered(t *testing.T) {
	a, gen := newTestApp(t)
	sv := intake(t, a)
	ctx := context.Background()

	q1, err := a.CurrentQuestion(ctx, sv.RollNo, "cognitive")
	if err != nil {
		t.Fatal(err)
	}
	q2, err := a.CurrentQuestion(ctx, sv.RollNo, "cognitive")
	if err != nil {
		t.Fatal(err)
	}
	if q1.Text != q2.Text {
		t.Error("reload regenerated the pending question")
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestCurrentQuestionFallback(t *testing.T) {
	a, gen := newTestApp(t)
	sv := intake(t, a)
	gen.fail = true

	q, err := a.CurrentQuestion(context.Background(), sv.RollNo, "cognitive")
	if err != nil {
		t.Fatal(err)
	}
	want := questiongen.FallbackQuestion("Python")
	if q.Text != want.Text {
		t.Errorf("text = %q, want fallback", q.Text)
	}
}

func TestSubmitAnswerWithoutQuestion(t *testing.T) {
	a, _ := newTestApp(t)
	sv := intake(t, a)

	var state *fault.State
	if _, err := a.SubmitAnswer(context.Background(), sv.RollNo, "cognitive", "right"); !errors.As(err, &state) {
		t.Errorf("err = %v, want state fault", err)
	}
}

func TestVivaFlow(t *testing.T) {
	a, _ := newTestApp(t)
	sv := intake(t, a)
	ctx := context.Background()

	runLadder(t, a, sv.RollNo, "cognitive", []bool{true, true, true, true, true})
	runLadder(t, a, sv.RollNo, "domain", []bool{true, true, false, true, false})

	// 100 and 60 average to 80, the advanced band.
	vq, err := a.VivaQuestion(ctx, sv.RollNo)
	if err != nil {
		t.Fatal(err)
	}
	if vq.Difficulty != "advanced" {
		t.Errorf("difficulty = %q, want advanced", vq.Difficulty)
	}

	var v *fault.Validation
	if _, err := a.SubmitViva(ctx, sv.RollNo, "   "); !errors.As(err, &v) {
		t.Fatalf("blank response err = %v, want validation fault", err)
	}

	res, err := a.SubmitViva(ctx, sv.RollNo, "one two three four five")
	if err != nil {
		t.Fatal(err)
	}
	if res.Score != 10 {
		t.Errorf("score = %d, want 10", res.Score)
	}

	var state *fault.State
	if _, err := a.SubmitViva(ctx, sv.RollNo, "again"); !errors.As(err, &state) {
		t.Errorf("resubmit err = %v, want state fault", err)
	}
}

func TestVivaBlockedBeforeAssessments(t *testing.T) {
	a, _ := newTestApp(t)
	sv := intake(t, a)

	var state *fault.State
	if _, err := a.JumpTo(context.Background(), sv.RollNo, 4); !errors.As(err, &state) {
		t.Errorf("jump err = %v, want state fault", err)
	}
}

func TestStepsGatedBeforePrerequisites(t *testing.T) {
	a, _ := newTestApp(t)
	sv := intake(t, a)
	ctx := context.Background()

	// Straight after intake only the cognitive assessment is open.
	var state *fault.State
	if _, err := a.CurrentQuestion(ctx, sv.RollNo, "domain"); !errors.As(err, &state) {
		t.Errorf("domain question err = %v, want state fault", err)
	}
	if _, err := a.SubmitAnswer(ctx, sv.RollNo, "domain", "right"); !errors.As(err, &state) {
		t.Errorf("domain answer err = %v, want state fault", err)
	}
	if _, err := a.VivaQuestion(ctx, sv.RollNo); !errors.As(err, &state) {
		t.Errorf("viva question err = %v, want state fault", err)
	}
	if _, err := a.SubmitViva(ctx, sv.RollNo, "one two three four five"); !errors.As(err, &state) {
		t.Errorf("viva submit err = %v, want state fault", err)
	}
	if _, err := a.Configure(ctx, sv.RollNo, ConfigureInput{HoursPerDay: 2, Weeks: 4}); !errors.As(err, &state) {
		t.Errorf("configure err = %v, want state fault", err)
	}

	// The rejected calls must leave no trace in the record.
	st, err := a.students.Get(ctx, sv.RollNo)
	if err != nil {
		t.Fatal(err)
	}
	if st.DomainScore != 0 || st.DomainIQ != 0 {
		t.Errorf("domain result persisted: %d/%d", st.DomainScore, st.DomainIQ)
	}
	if st.VivaScore != 0 || st.VivaResponse != "" {
		t.Errorf("viva persisted: %d %q", st.VivaScore, st.VivaResponse)
	}
	if st.CourseConfigured {
		t.Error("course configured with earlier steps incomplete")
	}
}

func TestConfigureValidation(t *testing.T) {
	a, _ := newTestApp(t)
	sv := intake(t, a)
	ctx := context.Background()

	runLadder(t, a, sv.RollNo, "cognitive", []bool{true, true, true, true, true})
	runLadder(t, a, sv.RollNo, "domain", []bool{true, true, true, true, true})
	if _, err := a.SubmitViva(ctx, sv.RollNo, "a clear explanation of the topic"); err != nil {
		t.Fatal(err)
	}

	for _, in := range []ConfigureInput{
		{HoursPerDay: 0, Weeks: 4},
		{HoursPerDay: 9, Weeks: 4},
		{HoursPerDay: 3, Weeks: 1},
		{HoursPerDay: 3, Weeks: 13},
	} {
		var v *fault.Validation
		if _, err := a.Configure(ctx, sv.RollNo, in); !errors.As(err, &v) {
			t.Errorf("Configure(%+v) err = %v, want validation fault", in, err)
		}
	}

	sv2, err := a.Configure(ctx, sv.RollNo, ConfigureInput{HoursPerDay: 2, Weeks: 2})
	if err != nil {
		t.Fatal(err)
	}
	if sv2.CurrentStep != 6 || !sv2.Configured || sv2.Weeks != 2 {
		t.Errorf("view = %+v", sv2)
	}

	var state *fault.State
	if _, err := a.Configure(ctx, sv.RollNo, ConfigureInput{HoursPerDay: 2, Weeks: 2}); !errors.As(err, &state) {
		t.Errorf("reconfigure err = %v, want state fault", err)
	}
}

// completeToWeekly drives a learner to the weekly loop with a 2-week course.
func completeToWeekly(t *testing.T, a *App) *StudentView {
	t.Helper()
	ctx := context.Background()
	sv := intake(t, a)
	runLadder(t, a, sv.RollNo, "cognitive", []bool{true, true, true, true, true})
	runLadder(t, a, sv.RollNo, "domain", []bool{true, true, true, true, true})
	if _, err := a.SubmitViva(ctx, sv.RollNo, "a clear explanation of the topic"); err != nil {
		t.Fatal(err)
	}
	sv2, err := a.Configure(ctx, sv.RollNo, ConfigureInput{HoursPerDay: 2, Weeks: 2})
	if err != nil {
		t.Fatal(err)
	}
	return sv2
}

func TestWeeklyLoopToAnalysis(t *testing.T) {
	a, _ := newTestApp(t)
	sv := completeToWeekly(t, a)
	ctx := context.Background()

	wv, err := a.Week(ctx, sv.RollNo)
	if err != nil {
		t.Fatal(err)
	}
	if wv.WeekNo != 1 || wv.Content != "material for week 1" || wv.QuizTaken {
		t.Fatalf("week view = %+v", wv)
	}

	// Week 1: all three correct.
	if _, err := a.StartWeekQuiz(ctx, sv.RollNo); err != nil {
		t.Fatal(err)
	}
	var result *WeekResultView
	for i := 0; i < weekly.QuizLength; i++ {
		_, res, err := a.AnswerWeekQuiz(ctx, sv.RollNo, "right")
		if err != nil {
			t.Fatal(err)
		}
		result = res
	}
	if result == nil || result.Score != 100 || result.FinalWeek {
		t.Fatalf("week 1 result = %+v", result)
	}

	sv2, err := a.AdvanceWeek(ctx, sv.RollNo)
	if err != nil {
		t.Fatal(err)
	}
	if sv2.CurrentWeekNo != 2 {
		t.Errorf("week = %d, want 2", sv2.CurrentWeekNo)
	}

	// Week 2, the final week: all wrong.
	if _, err := a.StartWeekQuiz(ctx, sv.RollNo); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < weekly.QuizLength; i++ {
		_, res, err := a.AnswerWeekQuiz(ctx, sv.RollNo, "w1")
		if err != nil {
			t.Fatal(err)
		}
		result = res
	}
	if result == nil || !result.FinalWeek || result.Score != 0 {
		t.Fatalf("week 2 result = %+v", result)
	}

	sv3, err := a.AdvanceWeek(ctx, sv.RollNo)
	if err != nil {
		t.Fatal(err)
	}
	if sv3.CurrentStep != 7 {
		t.Errorf("step = %d, want 7 after final week", sv3.CurrentStep)
	}
}

func TestStartWeekQuizRejectsRetake(t *testing.T) {
	a, _ := newTestApp(t)
	sv := completeToWeekly(t, a)
	ctx := context.Background()

	if _, err := a.StartWeekQuiz(ctx, sv.RollNo); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < weekly.QuizLength; i++ {
		if _, _, err := a.AnswerWeekQuiz(ctx, sv.RollNo, "right"); err != nil {
			t.Fatal(err)
		}
	}
	var state *fault.State
	if _, err := a.StartWeekQuiz(ctx, sv.RollNo); !errors.As(err, &state) {
		t.Errorf("retake err = %v, want state fault", err)
	}
}

func TestDashboard(t *testing.T) {
	a, _ := newTestApp(t)
	sv := completeToWeekly(t, a)
	ctx := context.Background()

	if _, err := a.StartWeekQuiz(ctx, sv.RollNo); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < weekly.QuizLength; i++ {
		if _, _, err := a.AnswerWeekQuiz(ctx, sv.RollNo, "right"); err != nil {
			t.Fatal(err)
		}
	}

	dash, err := a.Dashboard(ctx, sv.RollNo)
	if err != nil {
		t.Fatal(err)
	}
	if dash.CognitiveScore != 100 || dash.DomainScore != 100 {
		t.Errorf("scores = %d/%d", dash.CognitiveScore, dash.DomainScore)
	}
	if len(dash.Weekly) != 1 || dash.Weekly[0].Score != 100 {
		t.Errorf("weekly = %+v", dash.Weekly)
	}
	// Viva scored 12 on a six word response, below mastery, so the
	// viva topics are absent while the MCQ and weekly topics show.
	want := "Logical Reasoning, Problem Solving, Python Fundamentals, Programming Logic, Week 1: Week 1 topics"
	if dash.TopicsExcellented != want {
		t.Errorf("topics = %q\nwant %q", dash.TopicsExcellented, want)
	}
}

func TestLogoutClearsInFlightOnly(t *testing.T) {
	a, _ := newTestApp(t)
	sv := intake(t, a)
	ctx := context.Background()

	if _, err := a.CurrentQuestion(ctx, sv.RollNo, "cognitive"); err != nil {
		t.Fatal(err)
	}
	sess := a.sessionFor(sv.RollNo)
	if sess.Pending[assessment.KindCognitive] == nil {
		t.Fatal("no pending question before logout")
	}

	a.Logout(sv.RollNo)

	fresh := a.sessionFor(sv.RollNo)
	if fresh.Pending[assessment.KindCognitive] != nil {
		t.Error("pending question survived logout")
	}
	// The persisted record is untouched.
	if _, err := a.Student(ctx, sv.RollNo); err != nil {
		t.Errorf("student lost after logout: %v", err)
	}
}
