// Package app orchestrates the learning flow. Each operation loads the
// student, checks the step gate, runs the relevant service, and returns
// a rendering-agnostic view model. Nothing here knows about HTTP.
package app

import (
	"context"
	"fmt"

	"github.com/abhisek/studyflow/internal/analysis"
	"github.com/abhisek/studyflow/internal/assessment"
	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/progression"
	"github.com/abhisek/studyflow/internal/questiongen"
	"github.com/abhisek/studyflow/internal/session"
	"github.com/abhisek/studyflow/internal/store"
	"github.com/abhisek/studyflow/internal/weekly"
)

// App wires the services behind a single facade.
type App struct {
	students    store.StudentRepo
	quizzes     store.QuizRepo
	performance store.PerformanceRepo

	gen      questiongen.Generator
	viva     assessment.VivaScorer
	steps    *progression.Controller
	weekly   *weekly.Service
	analysis *analysis.Service
	sessions *session.Manager
}

func New(st *store.Store, gen questiongen.Generator) *App {
	an := analysis.NewService(st.Students(), st.Quizzes(), st.Performance())
	return &App{
		students:    st.Students(),
		quizzes:     st.Quizzes(),
		performance: st.Performance(),
		gen:         gen,
		viva:        assessment.LengthScorer{},
		steps:       progression.NewController(st.Students(), st.Quizzes()),
		weekly:      weekly.NewService(st.Students(), st.Quizzes(), st.Contents(), gen, an),
		analysis:    an,
		sessions:    session.NewManager(),
	}
}

// load fetches the student or returns a validation fault for unknown
// roll numbers.
func (a *App) load(ctx context.Context, rollNo string) (*store.Student, error) {
	st, err := a.students.Get(ctx, rollNo)
	if err != nil {
		return nil, &fault.Persistence{Op: "load student", Err: err}
	}
	if st == nil {
		return nil, &fault.Validation{Field: "roll_no", Msg: fmt.Sprintf("unknown roll number %s", rollNo)}
	}
	return st, nil
}

// requireReached verifies the learner has unlocked the given step
// before the operation does any work or writes anything durable.
func (a *App) requireReached(ctx context.Context, st *store.Student, step progression.Step) error {
	reached, err := a.steps.Reached(ctx, st)
	if err != nil {
		return err
	}
	if step > reached {
		return &fault.State{Msg: fmt.Sprintf("cannot enter %s: %s not completed", step, reached)}
	}
	return nil
}

// JumpTo moves the learner to a previously reached step.
func (a *App) JumpTo(ctx context.Context, rollNo string, step int) (*StudentView, error) {
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	target := progression.Step(step)
	if _, err := a.steps.JumpTo(ctx, st, target); err != nil {
		return nil, err
	}
	// Re-entering analysis recomputes the summary from current records.
	if target == progression.StepAnalysis {
		if err := a.analysis.Refresh(ctx, rollNo); err != nil {
			return nil, err
		}
	}
	return studentView(st), nil
}

// Logout drops the in-flight session. Persisted progress is unaffected.
func (a *App) Logout(rollNo string) {
	a.sessions.End(rollNo)
}
