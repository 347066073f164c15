package questiongen

import "context"

// Generator produces quiz questions, viva questions, and weekly course
// content using an LLM provider. Every method can fail; callers fall
// back to the deterministic values in fallback.go and proceed.
type Generator interface {
	// Question produces a single validated multiple-choice question.
	Question(ctx context.Context, input QuestionInput) (*Question, error)

	// OpenQuestion produces one viva voce question for the domain at
	// the given difficulty ("basic", "intermediate", "advanced").
	OpenQuestion(ctx context.Context, domain, difficulty string) (*OpenQuestion, error)

	// CourseContent produces one week's study material as markdown text.
	CourseContent(ctx context.Context, input ContentInput) (string, error)
}
