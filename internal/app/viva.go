package app

import (
	"context"
	"strings"

	"github.com/abhisek/studyflow/internal/assessment"
	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/progression"
	"github.com/abhisek/studyflow/internal/questiongen"
)

// VivaQuestion returns the open question for the viva step. The
// difficulty follows the two MCQ scores; the generated question is
// cached in the session so reloads do not regenerate it.
func (a *App) VivaQuestion(ctx context.Context, rollNo string) (*VivaView, error) {
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	if err := a.requireReached(ctx, st, progression.StepViva); err != nil {
		return nil, err
	}
	if st.VivaResponse != "" {
		return nil, &fault.State{Msg: "viva already completed"}
	}

	difficulty := assessment.VivaDifficulty(st.CognitiveScore, st.DomainScore)

	sess := a.sessions.Start(rollNo)
	sess.Lock()
	defer sess.Unlock()

	if sess.Viva == nil {
		q, err := a.gen.OpenQuestion(ctx, st.Domain, difficulty)
		if err != nil {
			q = questiongen.FallbackOpenQuestion(st.Domain)
		}
		sess.Viva = q
	}

	return &VivaView{
		Text:           sess.Viva.Text,
		ExpectedPoints: sess.Viva.ExpectedPoints,
		Difficulty:     difficulty,
	}, nil
}

// SubmitViva scores the response, persists it, and moves the learner to
// course configuration. Blank responses are rejected without scoring.
func (a *App) SubmitViva(ctx context.Context, rollNo, response string) (*VivaResultView, error) {
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	if err := a.requireReached(ctx, st, progression.StepViva); err != nil {
		return nil, err
	}
	if st.VivaResponse != "" {
		return nil, &fault.State{Msg: "viva already completed"}
	}
	if strings.TrimSpace(response) == "" {
		return nil, &fault.Validation{Field: "response", Msg: "required"}
	}

	score := a.viva.Score(response)
	if err := a.students.SetViva(ctx, rollNo, score, response); err != nil {
		return nil, &fault.Persistence{Op: "save viva", Err: err}
	}
	st.VivaScore, st.VivaResponse = score, response

	if err := a.analysis.Refresh(ctx, rollNo); err != nil {
		return nil, err
	}

	sess := a.sessions.Start(rollNo)
	sess.Lock()
	sess.Viva = nil
	sess.Unlock()

	if _, err := a.steps.JumpTo(ctx, st, progression.StepConfigure); err != nil {
		return nil, err
	}
	return &VivaResultView{Score: score}, nil
}
