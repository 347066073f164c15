package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/studyflow/ent"
	"github.com/abhisek/studyflow/ent/coursecontent"
	"github.com/abhisek/studyflow/ent/performance"
	"github.com/abhisek/studyflow/ent/student"
	"github.com/abhisek/studyflow/ent/weekquiz"
	"github.com/abhisek/studyflow/internal/rollno"
)

// Initial performance row values, written alongside the student record.
const (
	initialOutcome  = "Course started"
	initialProgress = "Initial assessment completed"
)

// allocMu serializes roll-number allocation. Allocation and insert run
// in one transaction; the mutex keeps two in-flight creates for the
// same (year, domain, branch) from reading the same high-water mark.
var allocMu sync.Mutex

// studentRepo implements StudentRepo using the ent client.
type studentRepo struct {
	client *ent.Client
}

func (r *studentRepo) Create(ctx context.Context, ns NewStudent) (*Student, error) {
	allocMu.Lock()
	defer allocMu.Unlock()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	year := rollno.Year(time.Now())
	prefix := rollno.Prefix(ns.Domain, year)

	rolls, err := tx.Student.Query().
		Where(student.RollNoHasPrefix(prefix)).
		Select(student.FieldRollNo).
		Strings(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("query latest roll: %w", err))
	}

	// The high-water mark must come from this branch alone. A suffix
	// match would let branch CSE read ECSE rolls, so candidates are
	// filtered on the exact minted shape. Same shape means same
	// length, so string order is sequence order.
	last := ""
	for _, r := range rolls {
		if rollno.Matches(r, ns.Domain, ns.Branch, year) && r > last {
			last = r
		}
	}

	roll, err := rollno.Next(ns.Domain, ns.Branch, year, last)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("allocate roll: %w", err))
	}

	created, err := tx.Student.Create().
		SetRollNo(roll).
		SetName(ns.Name).
		SetDomain(ns.Domain).
		SetKnowledgeScale(ns.KnowledgeScale).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("insert student: %w", err))
	}

	// The initial summary row exists from day one so the dashboard
	// never reads a missing aggregate.
	_, err = tx.Performance.Create().
		SetRollNo(roll).
		SetTopicsExcellented("").
		SetOutcomeOfCourse(initialOutcome).
		SetStudentProgress(initialProgress).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("insert performance: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create student: %w", err)
	}
	return entStudentToStudent(created), nil
}

func (r *studentRepo) Get(ctx context.Context, roll string) (*Student, error) {
	s, err := r.client.Student.Query().
		Where(student.RollNo(roll)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query student %s: %w", roll, err)
	}
	return entStudentToStudent(s), nil
}

func (r *studentRepo) SetCognitive(ctx context.Context, roll string, score, iq int) error {
	return r.update(ctx, roll, func(u *ent.StudentUpdate) {
		u.SetCognitiveScore(score).SetCognitiveIq(iq)
	})
}

func (r *studentRepo) SetDomain(ctx context.Context, roll string, score, iq int) error {
	return r.update(ctx, roll, func(u *ent.StudentUpdate) {
		u.SetDomainScore(score).SetDomainIq(iq)
	})
}

func (r *studentRepo) SetViva(ctx context.Context, roll string, score int, response string) error {
	return r.update(ctx, roll, func(u *ent.StudentUpdate) {
		u.SetVivaScore(score).SetVivaResponse(response)
	})
}

func (r *studentRepo) Configure(ctx context.Context, roll string, hoursPerDay, weeks int) error {
	return r.update(ctx, roll, func(u *ent.StudentUpdate) {
		u.SetHoursPerDay(hoursPerDay).SetWeeks(weeks).SetCourseConfigured(true)
	})
}

func (r *studentRepo) SetCurrentWeek(ctx context.Context, roll string, week int) error {
	return r.update(ctx, roll, func(u *ent.StudentUpdate) {
		u.SetCurrentWeekNo(week)
	})
}

func (r *studentRepo) SetCurrentStep(ctx context.Context, roll string, step int) error {
	return r.update(ctx, roll, func(u *ent.StudentUpdate) {
		u.SetCurrentStep(step)
	})
}

func (r *studentRepo) Delete(ctx context.Context, roll string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.WeekQuiz.Delete().Where(weekquiz.RollNo(roll)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete quizzes: %w", err))
	}
	if _, err := tx.CourseContent.Delete().Where(coursecontent.RollNo(roll)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete contents: %w", err))
	}
	if _, err := tx.Performance.Delete().Where(performance.RollNo(roll)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete performance: %w", err))
	}
	if _, err := tx.Student.Delete().Where(student.RollNo(roll)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete student: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete student: %w", err)
	}
	return nil
}

func (r *studentRepo) RollNumbers(ctx context.Context) ([]string, error) {
	rolls, err := r.client.Student.Query().
		Order(ent.Asc(student.FieldRollNo)).
		Select(student.FieldRollNo).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roll numbers: %w", err)
	}
	return rolls, nil
}

func (r *studentRepo) update(ctx context.Context, roll string, apply func(*ent.StudentUpdate)) error {
	u := r.client.Student.Update().Where(student.RollNo(roll))
	apply(u)
	n, err := u.Save(ctx)
	if err != nil {
		return fmt.Errorf("update student %s: %w", roll, err)
	}
	if n == 0 {
		return fmt.Errorf("update student %s: no such roll number", roll)
	}
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}

func entStudentToStudent(s *ent.Student) *Student {
	return &Student{
		RollNo:           s.RollNo,
		Name:             s.Name,
		Domain:           s.Domain,
		HoursPerDay:      s.HoursPerDay,
		Weeks:            s.Weeks,
		KnowledgeScale:   s.KnowledgeScale,
		CurrentWeekNo:    s.CurrentWeekNo,
		CurrentStep:      s.CurrentStep,
		CognitiveScore:   s.CognitiveScore,
		CognitiveIQ:      s.CognitiveIq,
		DomainScore:      s.DomainScore,
		DomainIQ:         s.DomainIq,
		VivaScore:        s.VivaScore,
		VivaResponse:     s.VivaResponse,
		CourseConfigured: s.CourseConfigured,
		CreatedAt:        s.CreatedAt,
	}
}
