// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// CourseContent is the predicate function for coursecontent builders.
type CourseContent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Performance is the predicate function for performance builders.
type Performance func(*sql.Selector)

// Student is the predicate function for student builders.
type Student func(*sql.Selector)

// WeekQuiz is the predicate function for weekquiz builders.
type WeekQuiz func(*sql.Selector)
