package app

import (
	"context"
	"strings"

	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/progression"
	"github.com/abhisek/studyflow/internal/store"
)

// knowledgeScales maps the self-reported level to the stored 1-4 scale.
var knowledgeScales = map[string]int{
	"Beginner":     1,
	"Intermediate": 2,
	"Advanced":     3,
	"Expert":       4,
}

// BackgroundInput is the intake form.
type BackgroundInput struct {
	Name           string `json:"name"`
	Domain         string `json:"domain"`
	Branch         string `json:"branch"`
	KnowledgeLevel string `json:"knowledge_level"`
}

// SubmitBackground validates the intake form, creates the learner
// record with an allocated roll number, and moves them to the
// cognitive assessment.
func (a *App) SubmitBackground(ctx context.Context, in BackgroundInput) (*StudentView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &fault.Validation{Field: "name", Msg: "required"}
	}
	domain := strings.TrimSpace(in.Domain)
	if domain == "" {
		return nil, &fault.Validation{Field: "domain", Msg: "required"}
	}
	scale, ok := knowledgeScales[in.KnowledgeLevel]
	if !ok {
		return nil, &fault.Validation{
			Field: "knowledge_level",
			Msg:   "must be one of Beginner, Intermediate, Advanced, Expert",
		}
	}
	branch := strings.ToUpper(strings.TrimSpace(in.Branch))
	if branch == "" {
		branch = "CSE"
	}

	st, err := a.students.Create(ctx, store.NewStudent{
		Name:           name,
		Domain:         domain,
		Branch:         branch,
		KnowledgeScale: scale,
	})
	if err != nil {
		return nil, &fault.Persistence{Op: "create student", Err: err}
	}

	a.sessions.Start(st.RollNo)
	if _, err := a.steps.JumpTo(ctx, st, progression.StepCognitive); err != nil {
		return nil, err
	}
	return studentView(st), nil
}

// Student returns the current view of a learner.
func (a *App) Student(ctx context.Context, rollNo string) (*StudentView, error) {
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	return studentView(st), nil
}
