// Package progression enforces the seven gated learning steps. A
// learner moves forward one step at a time and may revisit any step
// they have already completed, never one they haven't reached.
package progression

import (
	"context"
	"fmt"

	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/store"
)

// Step identifies one stage of the learning flow.
type Step int

const (
	StepBackground Step = iota + 1
	StepCognitive
	StepDomain
	StepViva
	StepConfigure
	StepWeekly
	StepAnalysis
)

var stepNames = map[Step]string{
	StepBackground: "background",
	StepCognitive:  "cognitive assessment",
	StepDomain:     "domain assessment",
	StepViva:       "viva",
	StepConfigure:  "course configuration",
	StepWeekly:     "weekly learning",
	StepAnalysis:   "analysis",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step %d", int(s))
}

// Valid reports whether s is one of the seven defined steps.
func (s Step) Valid() bool {
	return s >= StepBackground && s <= StepAnalysis
}

// Controller persists the current step and checks gate conditions
// against the records rather than trusting the stored pointer alone.
type Controller struct {
	students store.StudentRepo
	quizzes  store.QuizRepo
}

func NewController(students store.StudentRepo, quizzes store.QuizRepo) *Controller {
	return &Controller{students: students, quizzes: quizzes}
}

// Reached derives the highest step the student has legitimately
// completed the prerequisites for, reading only persisted records.
// The stored current_step can lag this but never exceed it.
func (c *Controller) Reached(ctx context.Context, s *store.Student) (Step, error) {
	// Record existence alone unlocks the cognitive assessment.
	reached := StepCognitive
	if s.CognitiveIQ == 0 {
		return reached, nil
	}
	reached = StepDomain
	if s.DomainIQ == 0 {
		return reached, nil
	}
	reached = StepViva
	if s.VivaResponse == "" {
		return reached, nil
	}
	reached = StepConfigure
	if !s.CourseConfigured {
		return reached, nil
	}
	reached = StepWeekly

	final, err := c.quizzes.Get(ctx, s.RollNo, s.Weeks)
	if err != nil {
		return 0, err
	}
	if final != nil {
		reached = StepAnalysis
	}
	return reached, nil
}

// Advance moves the student to the next step after verifying its
// prerequisite holds. Advancing past the final step is rejected.
func (c *Controller) Advance(ctx context.Context, s *store.Student) (Step, error) {
	cur := Step(s.CurrentStep)
	if cur >= StepAnalysis {
		return 0, &fault.State{Msg: "already at the final step"}
	}
	return c.JumpTo(ctx, s, cur+1)
}

// JumpTo moves the student to any step at or below their derived
// reach. Forward jumps past an incomplete gate are rejected with no
// state change.
func (c *Controller) JumpTo(ctx context.Context, s *store.Student, target Step) (Step, error) {
	if !target.Valid() {
		return 0, &fault.State{Msg: fmt.Sprintf("no such step %d", int(target))}
	}

	reached, err := c.Reached(ctx, s)
	if err != nil {
		return 0, err
	}
	if target > reached {
		return 0, &fault.State{
			Msg: fmt.Sprintf("cannot enter %s: %s not completed", target, reached),
		}
	}

	if err := c.students.SetCurrentStep(ctx, s.RollNo, int(target)); err != nil {
		return 0, &fault.Persistence{Op: "set current step", Err: err}
	}
	s.CurrentStep = int(target)
	return target, nil
}
