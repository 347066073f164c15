// Package analysis derives the overall performance summary from the
// score-bearing records. The summary is recomputed whole every time;
// nothing is merged with a previous value.
package analysis

import (
	"fmt"
	"strings"

	"github.com/abhisek/studyflow/internal/store"
)

// NoTopicsSentinel is stored when the learner has not mastered anything yet.
const NoTopicsSentinel = "No topics excellented yet"

// masteryThreshold is the score at or above which a topic counts as mastered.
const masteryThreshold = 80

// domainTopics maps each course to the topic pair credited when its
// assessment is mastered.
var domainTopics = map[string][]string{
	"Python":           {"Python Fundamentals", "Programming Logic"},
	"Data Science":     {"Data Analysis", "Statistical Concepts"},
	"Machine Learning": {"ML Algorithms", "Model Training"},
}

// defaultStrongAreas is the weekly label that means "nothing stood out".
const defaultStrongAreas = "None identified"

// Summary holds the derived fields. Deterministic for fixed inputs:
// repeated aggregation of unchanged records yields identical strings.
type Summary struct {
	TopicsExcellented string
	OutcomeOfCourse   string
	StudentProgress   string
}

// Aggregate computes the summary from the student record and all of
// their weekly quizzes. Pure; no store access.
func Aggregate(s *store.Student, quizzes []*store.WeekQuiz) Summary {
	var topics []string
	seen := make(map[string]bool)
	add := func(ts ...string) {
		for _, t := range ts {
			if !seen[t] {
				seen[t] = true
				topics = append(topics, t)
			}
		}
	}

	if s.CognitiveScore >= masteryThreshold {
		add("Logical Reasoning", "Problem Solving")
	}
	if s.DomainScore >= masteryThreshold {
		add(domainTopics[s.Domain]...)
	}
	if s.VivaScore >= masteryThreshold {
		add("Communication Skills", "Technical Explanation")
	}
	for _, q := range quizzes {
		if q.Score >= masteryThreshold && q.StrongAreas != "" && q.StrongAreas != defaultStrongAreas {
			add(fmt.Sprintf("Week %d: %s", q.WeekNo, q.StrongAreas))
		}
	}

	topicsStr := NoTopicsSentinel
	if len(topics) > 0 {
		topicsStr = strings.Join(topics, ", ")
	}

	outcome, progress := outcomeBand(s.CognitiveScore, s.DomainScore, s.VivaScore)

	return Summary{
		TopicsExcellented: topicsStr,
		OutcomeOfCourse:   outcome,
		StudentProgress:   progress,
	}
}

// outcomeBand maps the average of the three assessment scores to the
// fixed outcome/progress label pair.
func outcomeBand(cognitive, domain, viva int) (outcome, progress string) {
	avg := float64(cognitive+domain+viva) / 3

	switch {
	case avg >= 80:
		return "Excellent performance - Ready for advanced topics",
			"Outstanding learner with strong grasp of concepts"
	case avg >= 70:
		return "Good performance - Solid foundation established",
			"Good learner with areas for improvement identified"
	case avg >= 60:
		return "Satisfactory performance - Basic concepts understood",
			"Average learner requiring additional practice"
	default:
		return "Needs improvement - Requires additional support",
			"Struggling learner needing focused remediation"
	}
}
