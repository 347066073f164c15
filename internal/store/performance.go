package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studyflow/ent"
	"github.com/abhisek/studyflow/ent/performance"
)

// performanceRepo implements PerformanceRepo using the ent client.
type performanceRepo struct {
	client *ent.Client
}

// Overwrite replaces the whole summary row. The aggregator recomputes
// from scratch, so there is nothing to merge with.
func (r *performanceRepo) Overwrite(ctx context.Context, p *Performance) error {
	err := r.client.Performance.Create().
		SetRollNo(p.RollNo).
		SetTopicsExcellented(p.TopicsExcellented).
		SetOutcomeOfCourse(p.OutcomeOfCourse).
		SetStudentProgress(p.StudentProgress).
		SetLastUpdated(time.Now()).
		OnConflictColumns(performance.FieldRollNo).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("overwrite performance %s: %w", p.RollNo, err)
	}
	return nil
}

func (r *performanceRepo) Get(ctx context.Context, roll string) (*Performance, error) {
	p, err := r.client.Performance.Query().
		Where(performance.RollNo(roll)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query performance %s: %w", roll, err)
	}
	return &Performance{
		RollNo:            p.RollNo,
		TopicsExcellented: p.TopicsExcellented,
		OutcomeOfCourse:   p.OutcomeOfCourse,
		StudentProgress:   p.StudentProgress,
		LastUpdated:       p.LastUpdated,
	}, nil
}
