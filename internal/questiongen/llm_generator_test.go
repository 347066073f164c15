package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/studyflow/internal/llm"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "What does a Python list comprehension produce?",
		"options": ["A new list", "A tuple", "A dict", "Nothing"],
		"correct_answer": "A new list",
		"explanation": "Comprehensions build and return a new list."
	}`)
}

func TestQuestionParsesValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	g := New(mock, DefaultConfig())

	q, err := g.Question(context.Background(), QuestionInput{
		Domain: "Python",
		Kind:   KindDomain,
		Level:  3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Options) != 4 {
		t.Errorf("got %d options, want 4", len(q.Options))
	}
	if q.CorrectOption != "A new list" {
		t.Errorf("correct option = %q", q.CorrectOption)
	}
}

func TestQuestionRejectsAnswerOutsideOptions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question_text": "q",
		"options": ["a", "b", "c", "d"],
		"correct_answer": "e",
		"explanation": "x"
	}`)})
	g := New(mock, DefaultConfig())

	_, err := g.Question(context.Background(), QuestionInput{Domain: "Python", Kind: KindCognitive, Level: 1})
	if err == nil {
		t.Fatal("expected error for correct_answer not among options")
	}
}

func TestQuestionPromptCarriesLevelAndKind(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	g := New(mock, DefaultConfig())

	_, err := g.Question(context.Background(), QuestionInput{Domain: "Data Science", Kind: KindCognitive, Level: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, "Difficulty level: 5/5") {
		t.Errorf("prompt missing difficulty: %s", sent)
	}
	if !strings.Contains(sent, "cognitive reasoning") {
		t.Errorf("prompt missing cognitive framing: %s", sent)
	}
}

func TestWeeklyPromptCarriesDifficultyHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	g := New(mock, DefaultConfig())

	_, err := g.Question(context.Background(), QuestionInput{
		Domain:         "Python",
		Kind:           KindWeekly,
		WeekNo:         2,
		DifficultyHint: "harder",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, "Week 2") {
		t.Errorf("prompt missing week: %s", sent)
	}
	if !strings.Contains(sent, "more challenging") {
		t.Errorf("prompt missing difficulty hint: %s", sent)
	}
}

func TestOpenQuestionParsesValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question": "Explain decorators in Python.",
		"expected_points": ["closures", "wrapping", "use cases"],
		"evaluation_criteria": "Depth and clarity"
	}`)})
	g := New(mock, DefaultConfig())

	oq, err := g.OpenQuestion(context.Background(), "Python", "advanced")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(oq.ExpectedPoints) != 3 {
		t.Errorf("expected points = %v", oq.ExpectedPoints)
	}
	if oq.Rubric != "Depth and clarity" {
		t.Errorf("rubric = %q", oq.Rubric)
	}

	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, "advanced level") {
		t.Errorf("prompt missing difficulty: %s", sent)
	}
}

func TestCourseContentUnwrapsJSONString(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"# Week 1\nObjectives..."`)})
	g := New(mock, DefaultConfig())

	body, err := g.CourseContent(context.Background(), ContentInput{Domain: "Python", WeekNo: 1, HoursPerDay: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(body, "# Week 1") {
		t.Errorf("body = %q", body)
	}
}

func TestCourseContentErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable
	g := New(mock, DefaultConfig())

	_, err := g.CourseContent(context.Background(), ContentInput{Domain: "Python", WeekNo: 1, HoursPerDay: 3})
	if err == nil {
		t.Fatal("expected error from failed generation")
	}
}

func TestFallbacksAreDeterministic(t *testing.T) {
	q1 := FallbackQuestion("Python")
	q2 := FallbackQuestion("Python")
	if q1.Text != q2.Text || q1.CorrectOption != q2.CorrectOption {
		t.Error("fallback question not deterministic")
	}

	oq := FallbackOpenQuestion("Data Science")
	if !strings.Contains(oq.Text, "Data Science") {
		t.Errorf("fallback viva for wrong domain: %q", oq.Text)
	}

	if got := FallbackContent("Python", 3); got != "Week 3 content for Python - Basic curriculum outline" {
		t.Errorf("fallback content = %q", got)
	}
}
