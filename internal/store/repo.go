package store

import (
	"context"
	"time"
)

// Student mirrors one learner record. Scores stay 0 until their
// assessment completes; each score pair is written exactly once.
type Student struct {
	RollNo           string
	Name             string
	Domain           string
	HoursPerDay      int
	Weeks            int
	KnowledgeScale   int
	CurrentWeekNo    int
	CurrentStep      int
	CognitiveScore   int
	CognitiveIQ      int
	DomainScore      int
	DomainIQ         int
	VivaScore        int
	VivaResponse     string
	CourseConfigured bool
	CreatedAt        time.Time
}

// NewStudent carries the background-intake fields for creation.
// HoursPerDay and Weeks take their defaults until configuration.
type NewStudent struct {
	Name           string
	Domain         string
	Branch         string
	KnowledgeScale int
}

// WeekQuiz is one week's quiz result.
type WeekQuiz struct {
	RollNo      string
	WeekNo      int
	Score       int
	IQ          int
	StrongAreas string
	WeakAreas   string
	Analysis    string
	TakenAt     time.Time
}

// CourseContent is one week's cached study material.
type CourseContent struct {
	RollNo    string
	WeekNo    int
	Body      string
	CreatedAt time.Time
}

// Performance is the derived overall summary for one learner.
type Performance struct {
	RollNo            string
	TopicsExcellented string
	OutcomeOfCourse   string
	StudentProgress   string
	LastUpdated       time.Time
}

// Account is an email/password login row.
type Account struct {
	Email       string
	TotalLogins int
	CreatedAt   time.Time
	LastLogin   *time.Time
}

// StudentRepo manages learner records. Create allocates the roll number
// and the initial performance row inside a single transaction.
type StudentRepo interface {
	Create(ctx context.Context, ns NewStudent) (*Student, error)

	// Get returns the student, or nil if no such roll number exists.
	Get(ctx context.Context, rollNo string) (*Student, error)

	SetCognitive(ctx context.Context, rollNo string, score, iq int) error
	SetDomain(ctx context.Context, rollNo string, score, iq int) error
	SetViva(ctx context.Context, rollNo string, score int, response string) error
	Configure(ctx context.Context, rollNo string, hoursPerDay, weeks int) error
	SetCurrentWeek(ctx context.Context, rollNo string, week int) error
	SetCurrentStep(ctx context.Context, rollNo string, step int) error

	// Delete removes the student and all owned rows (quizzes, contents,
	// performance) in one transaction.
	Delete(ctx context.Context, rollNo string) error

	// RollNumbers lists every known roll number.
	RollNumbers(ctx context.Context) ([]string, error)
}

// QuizRepo manages week-quiz rows keyed by (roll_no, week_no).
type QuizRepo interface {
	// Upsert inserts or overwrites the row for (q.RollNo, q.WeekNo).
	Upsert(ctx context.Context, q *WeekQuiz) error

	// Get returns the quiz for the week, or nil if not taken.
	Get(ctx context.Context, rollNo string, weekNo int) (*WeekQuiz, error)

	// ByStudent returns all quizzes for the student ordered by week.
	ByStudent(ctx context.Context, rollNo string) ([]*WeekQuiz, error)
}

// ContentRepo manages cached course content keyed by (roll_no, week_no).
type ContentRepo interface {
	// Get returns the cached content, or nil if not yet generated.
	Get(ctx context.Context, rollNo string, weekNo int) (*CourseContent, error)

	// Save inserts or overwrites the content for the week.
	Save(ctx context.Context, rollNo string, weekNo int, body string) error
}

// PerformanceRepo manages the derived summary row.
type PerformanceRepo interface {
	// Overwrite replaces the whole row for p.RollNo.
	Overwrite(ctx context.Context, p *Performance) error

	// Get returns the summary, or nil if none exists.
	Get(ctx context.Context, rollNo string) (*Performance, error)
}

// AccountRepo manages login accounts.
type AccountRepo interface {
	Create(ctx context.Context, email, passwordHash string) error

	// ByEmail returns the account and its password hash, or nil if unknown.
	ByEmail(ctx context.Context, email string) (*Account, string, error)

	// RecordLogin bumps total_logins and last_login.
	RecordLogin(ctx context.Context, email string) error
}

// LLMEventData captures one generation call for the audit log.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates audit rows per model.
type LLMUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to the LLM audit log.
type EventRepo interface {
	AppendLLMEvent(ctx context.Context, data LLMEventData) error

	// Usage returns per-model call and token totals.
	Usage(ctx context.Context) ([]LLMUsage, error)
}
