package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/abhisek/studyflow/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before conversion.
type questionOutput struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// vivaOutput is the raw viva response before conversion.
type vivaOutput struct {
	Question           string   `json:"question"`
	ExpectedPoints     []string `json:"expected_points"`
	EvaluationCriteria string   `json:"evaluation_criteria"`
}

func (g *LLMGenerator) Question(ctx context.Context, input QuestionInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionPrompt(input)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.QuestionMaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question response: %w", err)
	}

	// The schema pins the shape; the correct option still has to be
	// one of the choices or answer checking can never succeed.
	if !slices.Contains(raw.Options, raw.CorrectAnswer) {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("correct_answer %q not among options", raw.CorrectAnswer),
		}
	}

	return &Question{
		Text:          raw.QuestionText,
		Options:       raw.Options,
		CorrectOption: raw.CorrectAnswer,
		Explanation:   raw.Explanation,
	}, nil
}

func (g *LLMGenerator) OpenQuestion(ctx context.Context, domain, difficulty string) (*OpenQuestion, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeVivaGen)

	req := llm.Request{
		System: vivaSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildVivaPrompt(domain, difficulty)},
		},
		Schema:      VivaSchema,
		MaxTokens:   g.config.QuestionMaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("viva generation failed: %w", err)
	}

	var raw vivaOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse viva response: %w", err)
	}

	return &OpenQuestion{
		Text:           raw.Question,
		ExpectedPoints: raw.ExpectedPoints,
		Rubric:         raw.EvaluationCriteria,
	}, nil
}

func (g *LLMGenerator) CourseContent(ctx context.Context, input ContentInput) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeContentGen)

	req := llm.Request{
		System: contentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildContentPrompt(input)},
		},
		MaxTokens:   g.config.ContentMaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("content generation failed: %w", err)
	}

	// No schema here: the payload is markdown text. Unquote when the
	// provider wrapped it as a JSON string.
	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		text = string(resp.Content)
	}
	if text == "" {
		return "", fmt.Errorf("content generation returned empty body")
	}
	return text, nil
}
