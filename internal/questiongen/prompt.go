package questiongen

import (
	"fmt"
	"strings"
)

const questionSystemPrompt = `You are a quiz generator for an adaptive learning platform.

Rules:
- Generate a single-select multiple-choice question for the given course and difficulty.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect
  plausible misconceptions, not random values.
- correct_answer must match one of the options verbatim.
- The explanation should teach: say why the right answer is right and the common
  wrong answers are wrong.
- Keep the question self-contained and practical for the course.`

const contentSystemPrompt = `You are a curriculum writer for an adaptive learning platform.
Produce practical, hands-on weekly course material in markdown.`

const vivaSystemPrompt = `You are an oral examiner for an adaptive learning platform.
Generate one open-ended viva voce question suitable for spoken examination.`

// buildQuestionPrompt constructs the user message for MCQ generation.
func buildQuestionPrompt(input QuestionInput) string {
	var b strings.Builder

	switch input.Kind {
	case KindCognitive:
		fmt.Fprintf(&b, "Generate 1 cognitive reasoning question related to %s.\n", input.Domain)
		b.WriteString("Focus on logical thinking, problem-solving, and analytical skills applied to the course concepts.\n")
		fmt.Fprintf(&b, "Difficulty level: %d/5\n", input.Level)
	case KindDomain:
		fmt.Fprintf(&b, "Generate 1 technical knowledge question about %s.\n", input.Domain)
		b.WriteString("Focus on core concepts, principles, and practical applications.\n")
		fmt.Fprintf(&b, "Difficulty level: %d/5\n", input.Level)
	case KindWeekly:
		fmt.Fprintf(&b, "Generate 1 quiz question for Week %d of the %s course.\n", input.WeekNo, input.Domain)
		fmt.Fprintf(&b, "Focus on Week %d topics.\n", input.WeekNo)
		switch input.DifficultyHint {
		case "easier":
			b.WriteString("Make the question easier to build confidence.\n")
		case "harder":
			b.WriteString("Make the question more challenging.\n")
		}
	}

	return b.String()
}

// buildVivaPrompt constructs the user message for viva generation.
func buildVivaPrompt(domain, difficulty string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate 1 viva voce question for %s at %s level.\n", domain, difficulty)
	fmt.Fprintf(&b, "Make it open-ended and suitable for oral examination focusing on %s.\n", domain)
	return b.String()
}

// buildContentPrompt constructs the user message for weekly content.
func buildContentPrompt(input ContentInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate comprehensive course content for Week %d of the %s course.\n", input.WeekNo, input.Domain)
	fmt.Fprintf(&b, "Daily study time: %d hours\n\n", input.HoursPerDay)
	b.WriteString("Structure the content with:\n")
	fmt.Fprintf(&b, "1. Week %d Learning Objectives\n", input.WeekNo)
	b.WriteString("2. Topics to Cover This Week\n")
	fmt.Fprintf(&b, "3. Daily Study Plan (distribute across %d hours/day for 7 days)\n", input.HoursPerDay)
	b.WriteString("4. Key Concepts and Theory\n")
	b.WriteString("5. Practical Exercises\n")
	b.WriteString("6. Mini Projects (if applicable)\n")
	b.WriteString("7. Resources and References\n\n")
	fmt.Fprintf(&b, "Make it practical and hands-on for %s.", input.Domain)

	if input.PriorAnalysis != "" {
		fmt.Fprintf(&b, "\n\nAdjust difficulty based on previous performance: %s", input.PriorAnalysis)
	}

	return b.String()
}
