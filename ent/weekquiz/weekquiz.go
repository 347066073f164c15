// Code generated by ent, DO NOT EDIT.

package weekquiz

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the weekquiz type in the database.
	Label = "week_quiz"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRollNo holds the string denoting the roll_no field in the database.
	FieldRollNo = "roll_no"
	// FieldWeekNo holds the string denoting the week_no field in the database.
	FieldWeekNo = "week_no"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldIq holds the string denoting the iq field in the database.
	FieldIq = "iq"
	// FieldStrongAreas holds the string denoting the strong_areas field in the database.
	FieldStrongAreas = "strong_areas"
	// FieldWeakAreas holds the string denoting the weak_areas field in the database.
	FieldWeakAreas = "weak_areas"
	// FieldAnalysis holds the string denoting the analysis field in the database.
	FieldAnalysis = "analysis"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// Table holds the table name of the weekquiz in the database.
	Table = "week_quizs"
)

// Columns holds all SQL columns for weekquiz fields.
var Columns = []string{
	FieldID,
	FieldRollNo,
	FieldWeekNo,
	FieldScore,
	FieldIq,
	FieldStrongAreas,
	FieldWeakAreas,
	FieldAnalysis,
	FieldTakenAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RollNoValidator is a validator for the "roll_no" field. It is called by the builders before save.
	RollNoValidator func(string) error
	// WeekNoValidator is a validator for the "week_no" field. It is called by the builders before save.
	WeekNoValidator func(int) error
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultIq holds the default value on creation for the "iq" field.
	DefaultIq int
	// DefaultStrongAreas holds the default value on creation for the "strong_areas" field.
	DefaultStrongAreas string
	// DefaultWeakAreas holds the default value on creation for the "weak_areas" field.
	DefaultWeakAreas string
	// DefaultAnalysis holds the default value on creation for the "analysis" field.
	DefaultAnalysis string
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
	// UpdateDefaultTakenAt holds the default value on update for the "taken_at" field.
	UpdateDefaultTakenAt func() time.Time
)

// OrderOption defines the ordering options for the WeekQuiz queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRollNo orders the results by the roll_no field.
func ByRollNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRollNo, opts...).ToFunc()
}

// ByWeekNo orders the results by the week_no field.
func ByWeekNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekNo, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByIq orders the results by the iq field.
func ByIq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIq, opts...).ToFunc()
}

// ByStrongAreas orders the results by the strong_areas field.
func ByStrongAreas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrongAreas, opts...).ToFunc()
}

// ByWeakAreas orders the results by the weak_areas field.
func ByWeakAreas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeakAreas, opts...).ToFunc()
}

// ByAnalysis orders the results by the analysis field.
func ByAnalysis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysis, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}
