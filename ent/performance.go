// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyflow/ent/performance"
)

// Performance is the model entity for the Performance schema.
type Performance struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RollNo holds the value of the "roll_no" field.
	RollNo string `json:"roll_no,omitempty"`
	// TopicsExcellented holds the value of the "topics_excellented" field.
	TopicsExcellented string `json:"topics_excellented,omitempty"`
	// OutcomeOfCourse holds the value of the "outcome_of_course" field.
	OutcomeOfCourse string `json:"outcome_of_course,omitempty"`
	// StudentProgress holds the value of the "student_progress" field.
	StudentProgress string `json:"student_progress,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Performance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case performance.FieldID:
			values[i] = new(sql.NullInt64)
		case performance.FieldRollNo, performance.FieldTopicsExcellented, performance.FieldOutcomeOfCourse, performance.FieldStudentProgress:
			values[i] = new(sql.NullString)
		case performance.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Performance fields.
func (_m *Performance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case performance.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case performance.FieldRollNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field roll_no", values[i])
			} else if value.Valid {
				_m.RollNo = value.String
			}
		case performance.FieldTopicsExcellented:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topics_excellented", values[i])
			} else if value.Valid {
				_m.TopicsExcellented = value.String
			}
		case performance.FieldOutcomeOfCourse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_of_course", values[i])
			} else if value.Valid {
				_m.OutcomeOfCourse = value.String
			}
		case performance.FieldStudentProgress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_progress", values[i])
			} else if value.Valid {
				_m.StudentProgress = value.String
			}
		case performance.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Performance.
// This includes values selected through modifiers, order, etc.
func (_m *Performance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Performance.
// Note that you need to call Performance.Unwrap() before calling this method if this Performance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Performance) Update() *PerformanceUpdateOne {
	return NewPerformanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Performance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Performance) Unwrap() *Performance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Performance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Performance) String() string {
	var builder strings.Builder
	builder.WriteString("Performance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("roll_no=")
	builder.WriteString(_m.RollNo)
	builder.WriteString(", ")
	builder.WriteString("topics_excellented=")
	builder.WriteString(_m.TopicsExcellented)
	builder.WriteString(", ")
	builder.WriteString("outcome_of_course=")
	builder.WriteString(_m.OutcomeOfCourse)
	builder.WriteString(", ")
	builder.WriteString("student_progress=")
	builder.WriteString(_m.StudentProgress)
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Performances is a parsable slice of Performance.
type Performances []*Performance
