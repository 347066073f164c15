package questiongen

// Kind selects the flavor of multiple-choice question being generated.
type Kind string

const (
	// KindCognitive asks for reasoning questions framed around the course.
	KindCognitive Kind = "cognitive"

	// KindDomain asks for technical knowledge questions about the course.
	KindDomain Kind = "domain"

	// KindWeekly asks for questions scoped to one week's topics.
	KindWeekly Kind = "weekly"
)

// Question is a single-select multiple-choice question ready for display.
type Question struct {
	// Text is the question prompt shown to the learner.
	Text string

	// Options holds exactly 4 choices, one of which is correct.
	Options []string

	// CorrectOption is the text of the correct choice. Answers are
	// checked by exact match against this value.
	CorrectOption string

	// Explanation is shown after the learner answers.
	Explanation string
}

// OpenQuestion is a viva voce question with grading guidance.
type OpenQuestion struct {
	Text           string
	ExpectedPoints []string
	Rubric         string
}

// QuestionInput holds the context for generating one MCQ.
type QuestionInput struct {
	// Domain is the course name, e.g. "Python".
	Domain string

	// Kind selects cognitive, domain, or weekly framing.
	Kind Kind

	// Level is the ladder difficulty 1-5. Used for cognitive and
	// domain assessments; ignored for weekly quizzes.
	Level int

	// WeekNo scopes weekly questions to that week's topics.
	WeekNo int

	// DifficultyHint nudges weekly quizzes: "easier", "harder", or "".
	DifficultyHint string
}

// ContentInput holds the context for generating one week's material.
type ContentInput struct {
	Domain      string
	WeekNo      int
	HoursPerDay int

	// PriorAnalysis is the previous week's quiz analysis text,
	// included so content adapts to how the learner is doing.
	PriorAnalysis string
}
