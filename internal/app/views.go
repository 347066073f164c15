package app

import "github.com/abhisek/studyflow/internal/store"

// View models carry everything a renderer needs and nothing it must
// not see. Notably QuestionView omits the correct option.

// StudentView is the learner's identity and position in the flow.
type StudentView struct {
	RollNo        string `json:"roll_no"`
	Name          string `json:"name"`
	Domain        string `json:"domain"`
	CurrentStep   int    `json:"current_step"`
	CurrentWeekNo int    `json:"current_week_no"`
	Weeks         int    `json:"weeks"`
	HoursPerDay   int    `json:"hours_per_day"`
	Configured    bool   `json:"configured"`
}

func studentView(s *store.Student) *StudentView {
	return &StudentView{
		RollNo:        s.RollNo,
		Name:          s.Name,
		Domain:        s.Domain,
		CurrentStep:   s.CurrentStep,
		CurrentWeekNo: s.CurrentWeekNo,
		Weeks:         s.Weeks,
		HoursPerDay:   s.HoursPerDay,
		Configured:    s.CourseConfigured,
	}
}

// QuestionView is one multiple-choice question as shown to the learner.
type QuestionView struct {
	Kind    string   `json:"kind"`
	Round   int      `json:"round"`
	Rounds  int      `json:"rounds"`
	Level   int      `json:"level"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// AnswerView is the feedback after grading one answer. Score and IQ are
// set only once Done is true.
type AnswerView struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
	Done        bool   `json:"done"`
	Score       int    `json:"score,omitempty"`
	IQ          int    `json:"iq,omitempty"`
}

// VivaView is the open question presented for the viva step.
type VivaView struct {
	Text           string   `json:"text"`
	ExpectedPoints []string `json:"expected_points"`
	Difficulty     string   `json:"difficulty"`
}

// VivaResultView is the outcome of a submitted viva response.
type VivaResultView struct {
	Score int `json:"score"`
}

// WeekView is one week's material and quiz status.
type WeekView struct {
	WeekNo    int    `json:"week_no"`
	Weeks     int    `json:"weeks"`
	Content   string `json:"content"`
	QuizTaken bool   `json:"quiz_taken"`
	QuizScore int    `json:"quiz_score,omitempty"`
}

// WeekQuizView is a weekly quiz question in progress.
type WeekQuizView struct {
	WeekNo  int      `json:"week_no"`
	Number  int      `json:"number"`
	Total   int      `json:"total"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// WeekResultView is the recorded result of a completed weekly quiz.
type WeekResultView struct {
	WeekNo      int    `json:"week_no"`
	Score       int    `json:"score"`
	IQ          int    `json:"iq"`
	StrongAreas string `json:"strong_areas"`
	WeakAreas   string `json:"weak_areas"`
	Analysis    string `json:"analysis"`
	FinalWeek   bool   `json:"final_week"`
}

// QuizSummary is one row of weekly history on the dashboard.
type QuizSummary struct {
	WeekNo int `json:"week_no"`
	Score  int `json:"score"`
	IQ     int `json:"iq"`
}

// DashboardView is the analytics summary.
type DashboardView struct {
	Student           *StudentView  `json:"student"`
	CognitiveScore    int           `json:"cognitive_score"`
	CognitiveIQ       int           `json:"cognitive_iq"`
	DomainScore       int           `json:"domain_score"`
	DomainIQ          int           `json:"domain_iq"`
	VivaScore         int           `json:"viva_score"`
	Weekly            []QuizSummary `json:"weekly"`
	TopicsExcellented string        `json:"topics_excellented"`
	OutcomeOfCourse   string        `json:"outcome_of_course"`
	StudentProgress   string        `json:"student_progress"`
}
