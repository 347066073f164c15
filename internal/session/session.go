// Package session holds per-learner in-flight state that never touches
// the store: active assessment ladders, the question awaiting an
// answer, and partially answered weekly quizzes. Losing a session loses
// only the attempt in progress, never a recorded score.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/studyflow/internal/assessment"
	"github.com/abhisek/studyflow/internal/questiongen"
)

// WeeklyQuiz tracks one partially answered week quiz.
type WeeklyQuiz struct {
	WeekNo    int
	Questions []questiongen.Question
	Answered  int
	Correct   int
}

// Done reports whether every question has been answered.
func (q *WeeklyQuiz) Done() bool {
	return q.Answered >= len(q.Questions)
}

// Session is the in-flight state for one learner. Callers hold the
// embedded mutex across any read-modify-write sequence.
type Session struct {
	sync.Mutex

	ID     string
	RollNo string

	// Ladders keeps the active adaptive assessment per kind. An entry
	// is removed once its score is persisted.
	Ladders map[assessment.Kind]*assessment.Ladder

	// Pending is the question currently shown per kind, needed to
	// grade the answer when it arrives.
	Pending map[assessment.Kind]*questiongen.Question

	// Viva caches the generated open question so a page reload does
	// not regenerate it.
	Viva *questiongen.OpenQuestion

	// Quiz is the weekly quiz in progress, if any.
	Quiz *WeeklyQuiz
}

// Manager maps roll numbers to sessions. One session per learner; a
// second Start for the same roll returns the existing session.
type Manager struct {
	mu     sync.Mutex
	byRoll map[string]*Session
}

func NewManager() *Manager {
	return &Manager{byRoll: make(map[string]*Session)}
}

// Start returns the session for the roll number, creating it on first
// use.
func (m *Manager) Start(rollNo string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.byRoll[rollNo]; ok {
		return s
	}
	s := &Session{
		ID:      uuid.NewString(),
		RollNo:  rollNo,
		Ladders: make(map[assessment.Kind]*assessment.Ladder),
		Pending: make(map[assessment.Kind]*questiongen.Question),
	}
	m.byRoll[rollNo] = s
	return s
}

// Get returns the session, or nil if none has been started.
func (m *Manager) Get(rollNo string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byRoll[rollNo]
}

// End drops the session and its in-flight state.
func (m *Manager) End(rollNo string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byRoll, rollNo)
}
