package app

import (
	"context"

	"github.com/abhisek/studyflow/internal/fault"
)

// Dashboard assembles the analytics view: assessment scores, weekly
// history, and the derived performance summary.
func (a *App) Dashboard(ctx context.Context, rollNo string) (*DashboardView, error) {
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}

	quizzes, err := a.quizzes.ByStudent(ctx, rollNo)
	if err != nil {
		return nil, &fault.Persistence{Op: "load quizzes", Err: err}
	}
	weeklyRows := make([]QuizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		weeklyRows = append(weeklyRows, QuizSummary{WeekNo: q.WeekNo, Score: q.Score, IQ: q.IQ})
	}

	perf, err := a.performance.Get(ctx, rollNo)
	if err != nil {
		return nil, &fault.Persistence{Op: "load performance", Err: err}
	}

	view := &DashboardView{
		Student:        studentView(st),
		CognitiveScore: st.CognitiveScore,
		CognitiveIQ:    st.CognitiveIQ,
		DomainScore:    st.DomainScore,
		DomainIQ:       st.DomainIQ,
		VivaScore:      st.VivaScore,
		Weekly:         weeklyRows,
	}
	if perf != nil {
		view.TopicsExcellented = perf.TopicsExcellented
		view.OutcomeOfCourse = perf.OutcomeOfCourse
		view.StudentProgress = perf.StudentProgress
	}
	return view, nil
}
