package app

import (
	"context"
	"fmt"

	"github.com/abhisek/studyflow/internal/assessment"
	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/progression"
	"github.com/abhisek/studyflow/internal/questiongen"
	"github.com/abhisek/studyflow/internal/session"
	"github.com/abhisek/studyflow/internal/store"
)

// parseKind maps the wire name to the assessment kind.
func parseKind(kind string) (assessment.Kind, error) {
	switch assessment.Kind(kind) {
	case assessment.KindCognitive:
		return assessment.KindCognitive, nil
	case assessment.KindDomain:
		return assessment.KindDomain, nil
	default:
		return "", &fault.Validation{Field: "kind", Msg: fmt.Sprintf("unknown assessment %q", kind)}
	}
}

// stepFor maps an assessment kind to its gated step.
func stepFor(kind assessment.Kind) progression.Step {
	if kind == assessment.KindCognitive {
		return progression.StepCognitive
	}
	return progression.StepDomain
}

// scored reports whether the assessment already has a persisted result.
func scored(st *store.Student, kind assessment.Kind) bool {
	if kind == assessment.KindCognitive {
		return st.CognitiveIQ != 0
	}
	return st.DomainIQ != 0
}

// CurrentQuestion returns the question for the learner's next ladder
// round, generating one at the ladder's current difficulty. Repeated
// calls without an answer return the same question.
func (a *App) CurrentQuestion(ctx context.Context, rollNo, kindName string) (*QuestionView, error) {
	kind, err := parseKind(kindName)
	if err != nil {
		return nil, err
	}
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	if err := a.requireReached(ctx, st, stepFor(kind)); err != nil {
		return nil, err
	}
	if scored(st, kind) {
		return nil, &fault.State{Msg: fmt.Sprintf("%s assessment already completed", kind)}
	}

	sess := a.sessions.Start(rollNo)
	sess.Lock()
	defer sess.Unlock()

	ladder := sess.Ladders[kind]
	if ladder == nil {
		ladder = assessment.NewLadder(kind)
		sess.Ladders[kind] = ladder
	}

	q := sess.Pending[kind]
	if q == nil {
		q, err = a.gen.Question(ctx, questiongen.QuestionInput{
			Domain: st.Domain,
			Kind:   questiongen.Kind(kind),
			Level:  ladder.Level,
		})
		if err != nil {
			q = questiongen.FallbackQuestion(st.Domain)
		}
		sess.Pending[kind] = q
	}

	return &QuestionView{
		Kind:    string(kind),
		Round:   ladder.Answered + 1,
		Rounds:  assessment.Rounds,
		Level:   ladder.Level,
		Text:    q.Text,
		Options: q.Options,
	}, nil
}

// SubmitAnswer grades the pending question and advances the ladder. On
// the final round the score is persisted, the summary refreshed, and
// the learner moved to the next step.
func (a *App) SubmitAnswer(ctx context.Context, rollNo, kindName, answer string) (*AnswerView, error) {
	kind, err := parseKind(kindName)
	if err != nil {
		return nil, err
	}
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	if err := a.requireReached(ctx, st, stepFor(kind)); err != nil {
		return nil, err
	}
	if scored(st, kind) {
		return nil, &fault.State{Msg: fmt.Sprintf("%s assessment already completed", kind)}
	}

	sess := a.sessions.Start(rollNo)
	sess.Lock()
	defer sess.Unlock()

	q := sess.Pending[kind]
	ladder := sess.Ladders[kind]
	if q == nil || ladder == nil {
		return nil, &fault.State{Msg: "no question pending"}
	}

	correct := answer == q.CorrectOption
	if err := ladder.Submit(correct); err != nil {
		return nil, err
	}
	sess.Pending[kind] = nil

	view := &AnswerView{Correct: correct, Explanation: q.Explanation}
	if !ladder.Done() {
		return view, nil
	}

	pct, iq := ladder.Score()
	if err := a.persistScore(ctx, st, kind, pct, iq); err != nil {
		return nil, err
	}
	delete(sess.Ladders, kind)
	delete(sess.Pending, kind)

	view.Done = true
	view.Score = pct
	view.IQ = iq
	return view, nil
}

func (a *App) persistScore(ctx context.Context, st *store.Student, kind assessment.Kind, pct, iq int) error {
	var err error
	var next progression.Step
	switch kind {
	case assessment.KindCognitive:
		err = a.students.SetCognitive(ctx, st.RollNo, pct, iq)
		st.CognitiveScore, st.CognitiveIQ = pct, iq
		next = progression.StepDomain
	case assessment.KindDomain:
		err = a.students.SetDomain(ctx, st.RollNo, pct, iq)
		st.DomainScore, st.DomainIQ = pct, iq
		next = progression.StepViva
	}
	if err != nil {
		return &fault.Persistence{Op: "save assessment score", Err: err}
	}
	if err := a.analysis.Refresh(ctx, st.RollNo); err != nil {
		return err
	}
	_, err = a.steps.JumpTo(ctx, st, next)
	return err
}

// sessionFor is a test hook exposing the in-flight session.
func (a *App) sessionFor(rollNo string) *session.Session {
	return a.sessions.Start(rollNo)
}
