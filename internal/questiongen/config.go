package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// QuestionMaxTokens is the token budget for a single MCQ.
	QuestionMaxTokens int

	// ContentMaxTokens is the token budget for a week's material.
	ContentMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		QuestionMaxTokens: 512,
		ContentMaxTokens:  4096,
		Temperature:       0.7,
	}
}
