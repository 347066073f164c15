package questiongen

import "github.com/abhisek/studyflow/internal/llm"

// QuestionSchema defines the JSON schema for MCQ generation responses.
// Decoding fails closed: a response that does not satisfy this schema
// never reaches the learner.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single-select multiple-choice quiz question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer choices",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The text of the correct option, matching one of options exactly",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Detailed explanation of the correct answer",
			},
		},
		"required":             []any{"question_text", "options", "correct_answer", "explanation"},
		"additionalProperties": false,
	},
}

// VivaSchema defines the JSON schema for viva question responses.
var VivaSchema = &llm.Schema{
	Name:        "viva-question",
	Description: "An open-ended oral examination question with evaluation guidance",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The open-ended viva question",
			},
			"expected_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "Points a good answer should cover",
			},
			"evaluation_criteria": map[string]any{
				"type":        "string",
				"description": "How to evaluate the answer",
			},
		},
		"required":             []any{"question", "expected_points", "evaluation_criteria"},
		"additionalProperties": false,
	},
}
