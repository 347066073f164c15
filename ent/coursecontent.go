// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyflow/ent/coursecontent"
)

// CourseContent is the model entity for the CourseContent schema.
type CourseContent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RollNo holds the value of the "roll_no" field.
	RollNo string `json:"roll_no,omitempty"`
	// WeekNo holds the value of the "week_no" field.
	WeekNo int `json:"week_no,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourseContent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case coursecontent.FieldID, coursecontent.FieldWeekNo:
			values[i] = new(sql.NullInt64)
		case coursecontent.FieldRollNo, coursecontent.FieldBody:
			values[i] = new(sql.NullString)
		case coursecontent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourseContent fields.
func (_m *CourseContent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case coursecontent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case coursecontent.FieldRollNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field roll_no", values[i])
			} else if value.Valid {
				_m.RollNo = value.String
			}
		case coursecontent.FieldWeekNo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week_no", values[i])
			} else if value.Valid {
				_m.WeekNo = int(value.Int64)
			}
		case coursecontent.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case coursecontent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourseContent.
// This includes values selected through modifiers, order, etc.
func (_m *CourseContent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CourseContent.
// Note that you need to call CourseContent.Unwrap() before calling this method if this CourseContent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourseContent) Update() *CourseContentUpdateOne {
	return NewCourseContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourseContent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourseContent) Unwrap() *CourseContent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourseContent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourseContent) String() string {
	var builder strings.Builder
	builder.WriteString("CourseContent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("roll_no=")
	builder.WriteString(_m.RollNo)
	builder.WriteString(", ")
	builder.WriteString("week_no=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeekNo))
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CourseContents is a parsable slice of CourseContent.
type CourseContents []*CourseContent
