package questiongen

import "fmt"

// Deterministic fallbacks used when generation fails or returns
// unusable output. The learner always gets something to work with.

// FallbackQuestion returns a canned MCQ for the domain. The question is
// generic but answerable, so a ladder round is never left empty.
func FallbackQuestion(domain string) *Question {
	return &Question{
		Text: fmt.Sprintf("Which of the following best describes a primary goal of %s?", domain),
		Options: []string{
			"Solving practical problems with sound fundamentals",
			"Memorizing syntax without application",
			"Avoiding hands-on practice",
			"Working only with theoretical models",
		},
		CorrectOption: "Solving practical problems with sound fundamentals",
		Explanation:   fmt.Sprintf("%s is ultimately about applying fundamentals to practical problems.", domain),
	}
}

// FallbackOpenQuestion returns the canned viva question for the domain.
func FallbackOpenQuestion(domain string) *OpenQuestion {
	return &OpenQuestion{
		Text:           fmt.Sprintf("Explain the key concepts and applications of %s in real-world scenarios.", domain),
		ExpectedPoints: []string{"Fundamental concepts", "Practical applications", "Current trends"},
		Rubric:         "Clarity of explanation, depth of knowledge, practical understanding",
	}
}

// FallbackContent returns the canned weekly material stub.
func FallbackContent(domain string, weekNo int) string {
	return fmt.Sprintf("Week %d content for %s - Basic curriculum outline", weekNo, domain)
}
