package app

import (
	"context"

	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/progression"
	"github.com/abhisek/studyflow/internal/session"
	"github.com/abhisek/studyflow/internal/weekly"
)

// Week returns the current week's material and quiz status.
func (a *App) Week(ctx context.Context, rollNo string) (*WeekView, error) {
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	if !st.CourseConfigured {
		return nil, &fault.State{Msg: "course not configured"}
	}

	content, err := a.weekly.ContentFor(ctx, st, st.CurrentWeekNo)
	if err != nil {
		return nil, err
	}

	view := &WeekView{
		WeekNo:  st.CurrentWeekNo,
		Weeks:   st.Weeks,
		Content: content,
	}
	taken, err := a.quizzes.Get(ctx, rollNo, st.CurrentWeekNo)
	if err != nil {
		return nil, &fault.Persistence{Op: "load quiz", Err: err}
	}
	if taken != nil {
		view.QuizTaken = true
		view.QuizScore = taken.Score
	}
	return view, nil
}

// StartWeekQuiz begins the current week's quiz, or returns the pending
// question when one is already in progress.
func (a *App) StartWeekQuiz(ctx context.Context, rollNo string) (*WeekQuizView, error) {
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	if !st.CourseConfigured {
		return nil, &fault.State{Msg: "course not configured"}
	}

	sess := a.sessions.Start(rollNo)
	sess.Lock()
	defer sess.Unlock()

	if sess.Quiz != nil && sess.Quiz.WeekNo == st.CurrentWeekNo && !sess.Quiz.Done() {
		return weekQuizView(sess.Quiz), nil
	}

	questions, err := a.weekly.QuizFor(ctx, st, st.CurrentWeekNo)
	if err != nil {
		return nil, err
	}
	sess.Quiz = &session.WeeklyQuiz{WeekNo: st.CurrentWeekNo, Questions: questions}
	return weekQuizView(sess.Quiz), nil
}

func weekQuizView(q *session.WeeklyQuiz) *WeekQuizView {
	cur := q.Questions[q.Answered]
	return &WeekQuizView{
		WeekNo:  q.WeekNo,
		Number:  q.Answered + 1,
		Total:   len(q.Questions),
		Text:    cur.Text,
		Options: cur.Options,
	}
}

// AnswerWeekQuiz grades one quiz answer. It returns the next question
// until the quiz is exhausted, then records the result and returns it.
func (a *App) AnswerWeekQuiz(ctx context.Context, rollNo, answer string) (*WeekQuizView, *WeekResultView, error) {
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, nil, err
	}

	sess := a.sessions.Start(rollNo)
	sess.Lock()
	defer sess.Unlock()

	quiz := sess.Quiz
	if quiz == nil || quiz.Done() {
		return nil, nil, &fault.State{Msg: "no quiz in progress"}
	}

	if answer == quiz.Questions[quiz.Answered].CorrectOption {
		quiz.Correct++
	}
	quiz.Answered++

	if !quiz.Done() {
		return weekQuizView(quiz), nil, nil
	}

	recorded, err := a.weekly.SubmitQuiz(ctx, st, quiz.WeekNo, quiz.Correct, len(quiz.Questions))
	if err != nil {
		return nil, nil, err
	}
	sess.Quiz = nil

	return nil, &WeekResultView{
		WeekNo:      recorded.WeekNo,
		Score:       recorded.Score,
		IQ:          recorded.IQ,
		StrongAreas: recorded.StrongAreas,
		WeakAreas:   recorded.WeakAreas,
		Analysis:    recorded.Analysis,
		FinalWeek:   recorded.WeekNo >= st.Weeks,
	}, nil
}

// AdvanceWeek moves to the next week, or into analysis after the final
// week's quiz.
func (a *App) AdvanceWeek(ctx context.Context, rollNo string) (*StudentView, error) {
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}

	_, finished, err := a.weekly.AdvanceWeek(ctx, st)
	if err != nil {
		return nil, err
	}
	if finished {
		if _, err := a.steps.JumpTo(ctx, st, progression.StepAnalysis); err != nil {
			return nil, err
		}
		if err := a.analysis.Refresh(ctx, rollNo); err != nil {
			return nil, err
		}
	}
	return studentView(st), nil
}

// QuizLength is re-exported for renderers that show progress bars.
const QuizLength = weekly.QuizLength
