package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studyflow/ent"
	"github.com/abhisek/studyflow/ent/weekquiz"
)

// quizRepo implements QuizRepo using the ent client.
type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) Upsert(ctx context.Context, q *WeekQuiz) error {
	err := r.client.WeekQuiz.Create().
		SetRollNo(q.RollNo).
		SetWeekNo(q.WeekNo).
		SetScore(q.Score).
		SetIq(q.IQ).
		SetStrongAreas(q.StrongAreas).
		SetWeakAreas(q.WeakAreas).
		SetAnalysis(q.Analysis).
		SetTakenAt(time.Now()).
		OnConflictColumns(weekquiz.FieldRollNo, weekquiz.FieldWeekNo).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert week quiz %s/%d: %w", q.RollNo, q.WeekNo, err)
	}
	return nil
}

func (r *quizRepo) Get(ctx context.Context, roll string, week int) (*WeekQuiz, error) {
	q, err := r.client.WeekQuiz.Query().
		Where(weekquiz.RollNo(roll), weekquiz.WeekNo(week)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query week quiz %s/%d: %w", roll, week, err)
	}
	return entQuizToQuiz(q), nil
}

func (r *quizRepo) ByStudent(ctx context.Context, roll string) ([]*WeekQuiz, error) {
	rows, err := r.client.WeekQuiz.Query().
		Where(weekquiz.RollNo(roll)).
		Order(ent.Asc(weekquiz.FieldWeekNo)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query week quizzes for %s: %w", roll, err)
	}
	out := make([]*WeekQuiz, len(rows))
	for i, q := range rows {
		out[i] = entQuizToQuiz(q)
	}
	return out, nil
}

func entQuizToQuiz(q *ent.WeekQuiz) *WeekQuiz {
	return &WeekQuiz{
		RollNo:      q.RollNo,
		WeekNo:      q.WeekNo,
		Score:       q.Score,
		IQ:          q.Iq,
		StrongAreas: q.StrongAreas,
		WeakAreas:   q.WeakAreas,
		Analysis:    q.Analysis,
		TakenAt:     q.TakenAt,
	}
}
