package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyflow/internal/store"
)

type memStudents struct {
	store.StudentRepo
	rows map[string]*store.Student
}

func (m *memStudents) Get(ctx context.Context, rollNo string) (*store.Student, error) {
	return m.rows[rollNo], nil
}

func (m *memStudents) RollNumbers(ctx context.Context) ([]string, error) {
	var out []string
	for roll := range m.rows {
		out = append(out, roll)
	}
	return out, nil
}

type memQuizzes struct {
	store.QuizRepo
	rows map[string][]*store.WeekQuiz
}

func (m *memQuizzes) ByStudent(ctx context.Context, rollNo string) ([]*store.WeekQuiz, error) {
	return m.rows[rollNo], nil
}

type memPerformance struct {
	store.PerformanceRepo
	rows map[string]*store.Performance
}

func (m *memPerformance) Overwrite(ctx context.Context, p *store.Performance) error {
	cp := *p
	m.rows[p.RollNo] = &cp
	return nil
}

func TestServiceRefresh(t *testing.T) {
	students := &memStudents{rows: map[string]*store.Student{
		"25PY001CSE": {RollNo: "25PY001CSE", Domain: "Python", CognitiveScore: 90, DomainScore: 85, VivaScore: 80},
	}}
	quizzes := &memQuizzes{rows: map[string][]*store.WeekQuiz{
		"25PY001CSE": {{RollNo: "25PY001CSE", WeekNo: 1, Score: 85, StrongAreas: "Week 1 topics"}},
	}}
	perf := &memPerformance{rows: map[string]*store.Performance{}}
	svc := NewService(students, quizzes, perf)

	require.NoError(t, svc.Refresh(context.Background(), "25PY001CSE"))

	row := perf.rows["25PY001CSE"]
	require.NotNil(t, row)
	assert.Equal(t, "Excellent performance - Ready for advanced topics", row.OutcomeOfCourse)
	assert.Contains(t, row.TopicsExcellented, "Week 1: Week 1 topics")
}

func TestServiceRefreshUnknownRoll(t *testing.T) {
	svc := NewService(
		&memStudents{rows: map[string]*store.Student{}},
		&memQuizzes{rows: map[string][]*store.WeekQuiz{}},
		&memPerformance{rows: map[string]*store.Performance{}},
	)
	assert.Error(t, svc.Refresh(context.Background(), "25PY999CSE"))
}

func TestServiceRefreshAll(t *testing.T) {
	students := &memStudents{rows: map[string]*store.Student{
		"25PY001CSE": {RollNo: "25PY001CSE", Domain: "Python", CognitiveScore: 40, DomainScore: 40, VivaScore: 40},
		"25DS001CSE": {RollNo: "25DS001CSE", Domain: "Data Science", CognitiveScore: 90, DomainScore: 90, VivaScore: 90},
	}}
	quizzes := &memQuizzes{rows: map[string][]*store.WeekQuiz{}}
	perf := &memPerformance{rows: map[string]*store.Performance{}}
	svc := NewService(students, quizzes, perf)

	require.NoError(t, svc.RefreshAll(context.Background()))
	require.Len(t, perf.rows, 2)
	assert.Equal(t, NoTopicsSentinel, perf.rows["25PY001CSE"].TopicsExcellented)
	assert.Equal(t, "Struggling learner needing focused remediation", perf.rows["25PY001CSE"].StudentProgress)
	assert.NotEqual(t, NoTopicsSentinel, perf.rows["25DS001CSE"].TopicsExcellented)
}
