// Code generated by ent, DO NOT EDIT.

package coursecontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the coursecontent type in the database.
	Label = "course_content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRollNo holds the string denoting the roll_no field in the database.
	FieldRollNo = "roll_no"
	// FieldWeekNo holds the string denoting the week_no field in the database.
	FieldWeekNo = "week_no"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the coursecontent in the database.
	Table = "course_contents"
)

// Columns holds all SQL columns for coursecontent fields.
var Columns = []string{
	FieldID,
	FieldRollNo,
	FieldWeekNo,
	FieldBody,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the CourseContent queries.
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

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
