// Package weekly runs the per-week learning loop: cached course
// content, a short quiz whose difficulty follows the previous week's
// result, and the week-to-week advance.
package weekly

import (
	"context"
	"fmt"
	"math"

	"github.com/abhisek/studyflow/internal/analysis"
	"github.com/abhisek/studyflow/internal/assessment"
	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/questiongen"
	"github.com/abhisek/studyflow/internal/store"
)

// QuizLength is the number of questions in every weekly quiz.
const QuizLength = 3

// Difficulty hint thresholds, applied to the previous week's score.
const (
	easierBelow = 60
	harderAbove = 80
)

// Service coordinates content, quizzes, and week advancement.
type Service struct {
	students store.StudentRepo
	quizzes  store.QuizRepo
	contents store.ContentRepo
	gen      questiongen.Generator
	analysis *analysis.Service
}

func NewService(students store.StudentRepo, quizzes store.QuizRepo, contents store.ContentRepo, gen questiongen.Generator, analysis *analysis.Service) *Service {
	return &Service{
		students: students,
		quizzes:  quizzes,
		contents: contents,
		gen:      gen,
		analysis: analysis,
	}
}

func (s *Service) checkWeek(st *store.Student, weekNo int) error {
	if weekNo < 1 || weekNo > st.Weeks {
		return &fault.Validation{
			Field: "week",
			Msg:   fmt.Sprintf("week %d outside course range 1-%d", weekNo, st.Weeks),
		}
	}
	return nil
}

// ContentFor returns the week's study material, generating and caching
// it on first access. Generation sees the previous week's quiz analysis
// so material adapts to the learner. A failed generation stores the
// fixed fallback; the learner is never blocked on the provider.
func (s *Service) ContentFor(ctx context.Context, st *store.Student, weekNo int) (string, error) {
	if err := s.checkWeek(st, weekNo); err != nil {
		return "", err
	}

	cached, err := s.contents.Get(ctx, st.RollNo, weekNo)
	if err != nil {
		return "", &fault.Persistence{Op: "load content", Err: err}
	}
	if cached != nil {
		return cached.Body, nil
	}

	var prior string
	if weekNo > 1 {
		prev, err := s.quizzes.Get(ctx, st.RollNo, weekNo-1)
		if err != nil {
			return "", &fault.Persistence{Op: "load previous quiz", Err: err}
		}
		if prev != nil {
			prior = prev.Analysis
		}
	}

	body, err := s.gen.CourseContent(ctx, questiongen.ContentInput{
		Domain:        st.Domain,
		WeekNo:        weekNo,
		HoursPerDay:   st.HoursPerDay,
		PriorAnalysis: prior,
	})
	if err != nil {
		body = questiongen.FallbackContent(st.Domain, weekNo)
	}

	if err := s.contents.Save(ctx, st.RollNo, weekNo, body); err != nil {
		return "", &fault.Persistence{Op: "save content", Err: err}
	}
	return body, nil
}

// DifficultyHint derives the weekly quiz difficulty nudge from the
// previous week's score: "easier" below 60, "harder" above 80,
// otherwise "". Week 1 has no previous score and gets "".
func (s *Service) DifficultyHint(ctx context.Context, rollNo string, weekNo int) (string, error) {
	if weekNo <= 1 {
		return "", nil
	}
	prev, err := s.quizzes.Get(ctx, rollNo, weekNo-1)
	if err != nil {
		return "", &fault.Persistence{Op: "load previous quiz", Err: err}
	}
	if prev == nil {
		return "", nil
	}
	switch {
	case prev.Score < easierBelow:
		return "easier", nil
	case prev.Score > harderAbove:
		return "harder", nil
	default:
		return "", nil
	}
}

// QuizFor generates the week's quiz questions. Rejected once the week
// has a recorded result. Individual generation failures substitute the
// fallback question so the quiz always has QuizLength entries.
func (s *Service) QuizFor(ctx context.Context, st *store.Student, weekNo int) ([]questiongen.Question, error) {
	if err := s.checkWeek(st, weekNo); err != nil {
		return nil, err
	}

	taken, err := s.quizzes.Get(ctx, st.RollNo, weekNo)
	if err != nil {
		return nil, &fault.Persistence{Op: "load quiz", Err: err}
	}
	if taken != nil {
		return nil, &fault.State{Msg: fmt.Sprintf("week %d quiz already taken", weekNo)}
	}

	hint, err := s.DifficultyHint(ctx, st.RollNo, weekNo)
	if err != nil {
		return nil, err
	}

	questions := make([]questiongen.Question, 0, QuizLength)
	for i := 0; i < QuizLength; i++ {
		q, err := s.gen.Question(ctx, questiongen.QuestionInput{
			Domain:         st.Domain,
			Kind:           questiongen.KindWeekly,
			WeekNo:         weekNo,
			DifficultyHint: hint,
		})
		if err != nil {
			q = questiongen.FallbackQuestion(st.Domain)
		}
		questions = append(questions, *q)
	}
	return questions, nil
}

// SubmitQuiz records the result for the week and refreshes the
// performance summary. A second submission for the same week is
// rejected; the first result stands.
func (s *Service) SubmitQuiz(ctx context.Context, st *store.Student, weekNo, correct, total int) (*store.WeekQuiz, error) {
	if err := s.checkWeek(st, weekNo); err != nil {
		return nil, err
	}
	if total <= 0 || correct < 0 || correct > total {
		return nil, &fault.Validation{
			Field: "answers",
			Msg:   fmt.Sprintf("%d correct of %d", correct, total),
		}
	}

	existing, err := s.quizzes.Get(ctx, st.RollNo, weekNo)
	if err != nil {
		return nil, &fault.Persistence{Op: "load quiz", Err: err}
	}
	if existing != nil {
		return nil, &fault.State{Msg: fmt.Sprintf("week %d quiz already taken", weekNo)}
	}

	score := int(math.Round(float64(correct) / float64(total) * 100))
	strong, weak, note := quizBand(score, weekNo)

	q := &store.WeekQuiz{
		RollNo:      st.RollNo,
		WeekNo:      weekNo,
		Score:       score,
		IQ:          assessment.IQScore(correct, total),
		StrongAreas: strong,
		WeakAreas:   weak,
		Analysis:    note,
	}
	if err := s.quizzes.Upsert(ctx, q); err != nil {
		return nil, &fault.Persistence{Op: "save quiz", Err: err}
	}

	if err := s.analysis.Refresh(ctx, st.RollNo); err != nil {
		return nil, err
	}
	return q, nil
}

// quizBand maps a weekly score to the strong/weak/analysis labels.
func quizBand(score, weekNo int) (strong, weak, note string) {
	switch {
	case score >= 80:
		return fmt.Sprintf("Week %d topics", weekNo),
			"None identified",
			"Excellent performance"
	case score >= 60:
		return fmt.Sprintf("Most Week %d topics", weekNo),
			"Minor gaps identified",
			"Good performance with room for improvement"
	default:
		return "Basic concepts",
			fmt.Sprintf("Week %d advanced topics", weekNo),
			"Needs more practice"
	}
}

// AdvanceWeek moves the learner to the next week once the current
// week's quiz is recorded. Returns finished=true at the final week
// instead of advancing; the caller transitions to analysis.
func (s *Service) AdvanceWeek(ctx context.Context, st *store.Student) (next int, finished bool, err error) {
	taken, err := s.quizzes.Get(ctx, st.RollNo, st.CurrentWeekNo)
	if err != nil {
		return 0, false, &fault.Persistence{Op: "load quiz", Err: err}
	}
	if taken == nil {
		return 0, false, &fault.State{
			Msg: fmt.Sprintf("week %d quiz not taken", st.CurrentWeekNo),
		}
	}

	if st.CurrentWeekNo >= st.Weeks {
		return st.CurrentWeekNo, true, nil
	}

	next = st.CurrentWeekNo + 1
	if err := s.students.SetCurrentWeek(ctx, st.RollNo, next); err != nil {
		return 0, false, &fault.Persistence{Op: "advance week", Err: err}
	}
	st.CurrentWeekNo = next
	return next, false, nil
}
