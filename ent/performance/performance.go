// Code generated by ent, DO NOT EDIT.

package performance

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the performance type in the database.
	Label = "performance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRollNo holds the string denoting the roll_no field in the database.
	FieldRollNo = "roll_no"
	// FieldTopicsExcellented holds the string denoting the topics_excellented field in the database.
	FieldTopicsExcellented = "topics_excellented"
	// FieldOutcomeOfCourse holds the string denoting the outcome_of_course field in the database.
	FieldOutcomeOfCourse = "outcome_of_course"
	// FieldStudentProgress holds the string denoting the student_progress field in the database.
	FieldStudentProgress = "student_progress"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the performance in the database.
	Table = "performances"
)

// Columns holds all SQL columns for performance fields.
var Columns = []string{
	FieldID,
	FieldRollNo,
	FieldTopicsExcellented,
	FieldOutcomeOfCourse,
	FieldStudentProgress,
	FieldLastUpdated,
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
	// DefaultTopicsExcellented holds the default value on creation for the "topics_excellented" field.
	DefaultTopicsExcellented string
	// DefaultOutcomeOfCourse holds the default value on creation for the "outcome_of_course" field.
	DefaultOutcomeOfCourse string
	// DefaultStudentProgress holds the default value on creation for the "student_progress" field.
	DefaultStudentProgress string
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the Performance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRollNo orders the results by the roll_no field.
func ByRollNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRollNo, opts...).ToFunc()
}

// ByTopicsExcellented orders the results by the topics_excellented field.
func ByTopicsExcellented(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicsExcellented, opts...).ToFunc()
}

// ByOutcomeOfCourse orders the results by the outcome_of_course field.
func ByOutcomeOfCourse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeOfCourse, opts...).ToFunc()
}

// ByStudentProgress orders the results by the student_progress field.
func ByStudentProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentProgress, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
