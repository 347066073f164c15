package weekly

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/studyflow/internal/analysis"
	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/questiongen"
	"github.com/abhisek/studyflow/internal/store"
)

type memStudents struct {
	store.StudentRepo
	rows map[string]*store.Student
}

func (m *memStudents) Get(ctx context.Context, rollNo string) (*store.Student, error) {
	return m.rows[rollNo], nil
}

func (m *memStudents) SetCurrentWeek(ctx context.Context, rollNo string, week int) error {
	m.rows[rollNo].CurrentWeekNo = week
	return nil
}

type memQuizzes struct {
	store.QuizRepo
	rows map[string]*store.WeekQuiz
}

func quizKey(rollNo string, weekNo int) string { return fmt.Sprintf("%s/%d", rollNo, weekNo) }

func (m *memQuizzes) Upsert(ctx context.Context, q *store.WeekQuiz) error {
	cp := *q
	m.rows[quizKey(q.RollNo, q.WeekNo)] = &cp
	return nil
}

func (m *memQuizzes) Get(ctx context.Context, rollNo string, weekNo int) (*store.WeekQuiz, error) {
	return m.rows[quizKey(rollNo, weekNo)], nil
}

func (m *memQuizzes) ByStudent(ctx context.Context, rollNo string) ([]*store.WeekQuiz, error) {
	var out []*store.WeekQuiz
	for _, q := range m.rows {
		if q.RollNo == rollNo {
			out = append(out, q)
		}
	}
	return out, nil
}

type memContents struct {
	store.ContentRepo
	rows map[string]string
}

func (m *memContents) Get(ctx context.Context, rollNo string, weekNo int) (*store.CourseContent, error) {
	body, ok := m.rows[quizKey(rollNo, weekNo)]
	if !ok {
		return nil, nil
	}
	return &store.CourseContent{RollNo: rollNo, WeekNo: weekNo, Body: body}, nil
}

func (m *memContents) Save(ctx context.Context, rollNo string, weekNo int, body string) error {
	m.rows[quizKey(rollNo, weekNo)] = body
	return nil
}

type memPerformance struct {
	store.PerformanceRepo
	row *store.Performance
}

func (m *memPerformance) Overwrite(ctx context.Context, p *store.Performance) error {
	cp := *p
	m.row = &cp
	return nil
}

// fakeGen records inputs and optionally fails every call.
type fakeGen struct {
	questionInputs []questiongen.QuestionInput
	contentInputs  []questiongen.ContentInput
	fail           bool
}

func (f *fakeGen) Question(ctx context.Context, in questiongen.QuestionInput) (*questiongen.Question, error) {
	f.questionInputs = append(f.questionInputs, in)
	if f.fail {
		return nil, errors.New("provider down")
	}
	return &questiongen.Question{
		Text:          fmt.Sprintf("generated %d", len(f.questionInputs)),
		Options:       []string{"a", "b", "c", "d"},
		CorrectOption: "a",
	}, nil
}

func (f *fakeGen) OpenQuestion(ctx context.Context, domain, difficulty string) (*questiongen.OpenQuestion, error) {
	return nil, errors.New("not used")
}

func (f *fakeGen) CourseContent(ctx context.Context, in questiongen.ContentInput) (string, error) {
	f.contentInputs = append(f.contentInputs, in)
	if f.fail {
		return "", errors.New("provider down")
	}
	return fmt.Sprintf("week %d material", in.WeekNo), nil
}

func newTestService(st *store.Student) (*Service, *fakeGen, *memQuizzes, *memContents) {
	students := &memStudents{rows: map[string]*store.Student{st.RollNo: st}}
	quizzes := &memQuizzes{rows: map[string]*store.WeekQuiz{}}
	contents := &memContents{rows: map[string]string{}}
	perf := &memPerformance{}
	gen := &fakeGen{}
	svc := NewService(students, quizzes, contents, gen, analysis.NewService(students, quizzes, perf))
	return svc, gen, quizzes, contents
}

func testStudent() *store.Student {
	return &store.Student{
		RollNo: "25PY001CSE", Name: "Asha", Domain: "Python",
		HoursPerDay: 3, Weeks: 4, CurrentWeekNo: 1,
	}
}

func TestContentForCachesFirstGeneration(t *testing.T) {
	st := testStudent()
	svc, gen, _, _ := newTestService(st)
	ctx := context.Background()

	body, err := svc.ContentFor(ctx, st, 1)
	if err != nil {
		t.Fatal(err)
	}
	if body != "week 1 material" {
		t.Errorf("body = %q", body)
	}

	again, err := svc.ContentFor(ctx, st, 1)
	if err != nil {
		t.Fatal(err)
	}
	if again != body {
		t.Errorf("second read = %q, want cached %q", again, body)
	}
	if len(gen.contentInputs) != 1 {
		t.Errorf("generator called %d times, want 1", len(gen.contentInputs))
	}
}

func TestContentForCarriesPriorAnalysis(t *testing.T) {
	st := testStudent()
	svc, gen, quizzes, _ := newTestService(st)
	ctx := context.Background()

	quizzes.rows[quizKey(st.RollNo, 1)] = &store.WeekQuiz{
		RollNo: st.RollNo, WeekNo: 1, Score: 55, Analysis: "Needs more practice",
	}

	if _, err := svc.ContentFor(ctx, st, 2); err != nil {
		t.Fatal(err)
	}
	if got := gen.contentInputs[0].PriorAnalysis; got != "Needs more practice" {
		t.Errorf("prior analysis = %q", got)
	}
}

func TestContentForFallback(t *testing.T) {
	st := testStudent()
	svc, gen, _, contents := newTestService(st)
	gen.fail = true
	ctx := context.Background()

	body, err := svc.ContentFor(ctx, st, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := questiongen.FallbackContent(st.Domain, 1)
	if body != want {
		t.Errorf("body = %q, want fallback", body)
	}
	if contents.rows[quizKey(st.RollNo, 1)] != want {
		t.Error("fallback was not cached")
	}
}

func TestContentForWeekOutOfRange(t *testing.T) {
	st := testStudent()
	svc, _, _, _ := newTestService(st)

	for _, week := range []int{0, 5} {
		var v *fault.Validation
		if _, err := svc.ContentFor(context.Background(), st, week); !errors.As(err, &v) {
			t.Errorf("week %d: err = %v, want validation fault", week, err)
		}
	}
}

func TestQuizForDifficultyHint(t *testing.T) {
	tests := []struct {
		name      string
		prevScore int
		want      string
	}{
		{"low score eases", 33, "easier"},
		{"mid score neutral", 67, ""},
		{"boundary 60 neutral", 60, ""},
		{"boundary 80 neutral", 80, ""},
		{"high score hardens", 100, "harder"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testStudent()
			svc, gen, quizzes, _ := newTestService(st)
			quizzes.rows[quizKey(st.RollNo, 1)] = &store.WeekQuiz{
				RollNo: st.RollNo, WeekNo: 1, Score: tt.prevScore,
			}

			qs, err := svc.QuizFor(context.Background(), st, 2)
			if err != nil {
				t.Fatal(err)
			}
			if len(qs) != QuizLength {
				t.Fatalf("got %d questions, want %d", len(qs), QuizLength)
			}
			for _, in := range gen.questionInputs {
				if in.DifficultyHint != tt.want {
					t.Errorf("hint = %q, want %q", in.DifficultyHint, tt.want)
				}
				if in.Kind != questiongen.KindWeekly || in.WeekNo != 2 {
					t.Errorf("input = %+v", in)
				}
			}
		})
	}
}

func TestQuizForFirstWeekNoHint(t *testing.T) {
	st := testStudent()
	svc, gen, _, _ := newTestService(st)

	if _, err := svc.QuizFor(context.Background(), st, 1); err != nil {
		t.Fatal(err)
	}
	if gen.questionInputs[0].DifficultyHint != "" {
		t.Errorf("week 1 hint = %q, want none", gen.questionInputs[0].DifficultyHint)
	}
}

func TestQuizForFallbackFillsAllSlots(t *testing.T) {
	st := testStudent()
	svc, gen, _, _ := newTestService(st)
	gen.fail = true

	qs, err := svc.QuizFor(context.Background(), st, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != QuizLength {
		t.Fatalf("got %d questions, want %d", len(qs), QuizLength)
	}
	want := questiongen.FallbackQuestion(st.Domain)
	for i, q := range qs {
		if q.Text != want.Text {
			t.Errorf("question %d = %q, want fallback", i, q.Text)
		}
	}
}

func TestSubmitQuizBandsAndScores(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		wantScore int
		strong    string
		weak      string
		note      string
	}{
		{"all correct", 3, 100, "Week 1 topics", "None identified", "Excellent performance"},
		{"two correct", 2, 67, "Most Week 1 topics", "Minor gaps identified", "Good performance with room for improvement"},
		{"one correct", 1, 33, "Basic concepts", "Week 1 advanced topics", "Needs more practice"},
		{"none correct", 0, 0, "Basic concepts", "Week 1 advanced topics", "Needs more practice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testStudent()
			svc, _, _, _ := newTestService(st)

			q, err := svc.SubmitQuiz(context.Background(), st, 1, tt.correct, QuizLength)
			if err != nil {
				t.Fatal(err)
			}
			if q.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", q.Score, tt.wantScore)
			}
			if q.StrongAreas != tt.strong || q.WeakAreas != tt.weak || q.Analysis != tt.note {
				t.Errorf("bands = (%q, %q, %q)", q.StrongAreas, q.WeakAreas, q.Analysis)
			}
		})
	}
}

func TestSubmitQuizRejectsRepeat(t *testing.T) {
	st := testStudent()
	svc, _, quizzes, _ := newTestService(st)
	ctx := context.Background()

	first, err := svc.SubmitQuiz(ctx, st, 1, 3, QuizLength)
	if err != nil {
		t.Fatal(err)
	}

	var state *fault.State
	if _, err := svc.SubmitQuiz(ctx, st, 1, 0, QuizLength); !errors.As(err, &state) {
		t.Fatalf("err = %v, want state fault", err)
	}
	stored := quizzes.rows[quizKey(st.RollNo, 1)]
	if stored.Score != first.Score {
		t.Error("repeat submission overwrote the first result")
	}
}

func TestAdvanceWeek(t *testing.T) {
	st := testStudent()
	svc, _, _, _ := newTestService(st)
	ctx := context.Background()

	// No quiz yet: blocked.
	var state *fault.State
	if _, _, err := svc.AdvanceWeek(ctx, st); !errors.As(err, &state) {
		t.Fatalf("err = %v, want state fault", err)
	}

	if _, err := svc.SubmitQuiz(ctx, st, 1, 2, QuizLength); err != nil {
		t.Fatal(err)
	}
	next, finished, err := svc.AdvanceWeek(ctx, st)
	if err != nil {
		t.Fatal(err)
	}
	if finished || next != 2 || st.CurrentWeekNo != 2 {
		t.Errorf("next=%d finished=%v current=%d", next, finished, st.CurrentWeekNo)
	}
}

func TestAdvanceWeekFinalWeek(t *testing.T) {
	st := testStudent()
	st.CurrentWeekNo = st.Weeks
	svc, _, _, _ := newTestService(st)
	ctx := context.Background()

	if _, err := svc.SubmitQuiz(ctx, st, st.Weeks, 3, QuizLength); err != nil {
		t.Fatal(err)
	}
	next, finished, err := svc.AdvanceWeek(ctx, st)
	if err != nil {
		t.Fatal(err)
	}
	if !finished || next != st.Weeks {
		t.Errorf("next=%d finished=%v", next, finished)
	}
}
