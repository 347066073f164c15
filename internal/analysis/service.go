package analysis

import (
	"context"
	"fmt"

	"github.com/abhisek/studyflow/internal/store"
)

// Service recomputes and persists performance summaries.
type Service struct {
	students    store.StudentRepo
	quizzes     store.QuizRepo
	performance store.PerformanceRepo
}

func NewService(students store.StudentRepo, quizzes store.QuizRepo, performance store.PerformanceRepo) *Service {
	return &Service{students: students, quizzes: quizzes, performance: performance}
}

// Refresh recomputes the summary for one student and overwrites the
// stored row. Missing students are an error; a summary row always
// exists for a known roll number.
func (s *Service) Refresh(ctx context.Context, rollNo string) error {
	st, err := s.students.Get(ctx, rollNo)
	if err != nil {
		return err
	}
	if st == nil {
		return fmt.Errorf("refresh performance: unknown roll number %s", rollNo)
	}

	quizzes, err := s.quizzes.ByStudent(ctx, rollNo)
	if err != nil {
		return err
	}

	sum := Aggregate(st, quizzes)
	return s.performance.Overwrite(ctx, &store.Performance{
		RollNo:            rollNo,
		TopicsExcellented: sum.TopicsExcellented,
		OutcomeOfCourse:   sum.OutcomeOfCourse,
		StudentProgress:   sum.StudentProgress,
	})
}

// RefreshAll recomputes every student's summary. Used after schema or
// banding changes to bring stored rows back in line with the records.
func (s *Service) RefreshAll(ctx context.Context) error {
	rolls, err := s.students.RollNumbers(ctx)
	if err != nil {
		return err
	}
	for _, roll := range rolls {
		if err := s.Refresh(ctx, roll); err != nil {
			return err
		}
	}
	return nil
}
