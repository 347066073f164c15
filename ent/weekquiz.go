// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyflow/ent/weekquiz"
)

// WeekQuiz is the model entity for the WeekQuiz schema.
type WeekQuiz struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RollNo holds the value of the "roll_no" field.
	RollNo string `json:"roll_no,omitempty"`
	// WeekNo holds the value of the "week_no" field.
	WeekNo int `json:"week_no,omitempty"`
	// Percentage 0-100
	Score int `json:"score,omitempty"`
	// Iq holds the value of the "iq" field.
	Iq int `json:"iq,omitempty"`
	// StrongAreas holds the value of the "strong_areas" field.
	StrongAreas string `json:"strong_areas,omitempty"`
	// WeakAreas holds the value of the "weak_areas" field.
	WeakAreas string `json:"weak_areas,omitempty"`
	// Analysis holds the value of the "analysis" field.
	Analysis string `json:"analysis,omitempty"`
	// TakenAt holds the value of the "taken_at" field.
	TakenAt      time.Time `json:"taken_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeekQuiz) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weekquiz.FieldID, weekquiz.FieldWeekNo, weekquiz.FieldScore, weekquiz.FieldIq:
			values[i] = new(sql.NullInt64)
		case weekquiz.FieldRollNo, weekquiz.FieldStrongAreas, weekquiz.FieldWeakAreas, weekquiz.FieldAnalysis:
			values[i] = new(sql.NullString)
		case weekquiz.FieldTakenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeekQuiz fields.
func (_m *WeekQuiz) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weekquiz.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case weekquiz.FieldRollNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field roll_no", values[i])
			} else if value.Valid {
				_m.RollNo = value.String
			}
		case weekquiz.FieldWeekNo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week_no", values[i])
			} else if value.Valid {
				_m.WeekNo = int(value.Int64)
			}
		case weekquiz.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case weekquiz.FieldIq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iq", values[i])
			} else if value.Valid {
				_m.Iq = int(value.Int64)
			}
		case weekquiz.FieldStrongAreas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strong_areas", values[i])
			} else if value.Valid {
				_m.StrongAreas = value.String
			}
		case weekquiz.FieldWeakAreas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weak_areas", values[i])
			} else if value.Valid {
				_m.WeakAreas = value.String
			}
		case weekquiz.FieldAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis", values[i])
			} else if value.Valid {
				_m.Analysis = value.String
			}
		case weekquiz.FieldTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field taken_at", values[i])
			} else if value.Valid {
				_m.TakenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeekQuiz.
// This includes values selected through modifiers, order, etc.
func (_m *WeekQuiz) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WeekQuiz.
// Note that you need to call WeekQuiz.Unwrap() before calling this method if this WeekQuiz
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeekQuiz) Update() *WeekQuizUpdateOne {
	return NewWeekQuizClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeekQuiz entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeekQuiz) Unwrap() *WeekQuiz {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WeekQuiz is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeekQuiz) String() string {
	var builder strings.Builder
	builder.WriteString("WeekQuiz(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("roll_no=")
	builder.WriteString(_m.RollNo)
	builder.WriteString(", ")
	builder.WriteString("week_no=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeekNo))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("iq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iq))
	builder.WriteString(", ")
	builder.WriteString("strong_areas=")
	builder.WriteString(_m.StrongAreas)
	builder.WriteString(", ")
	builder.WriteString("weak_areas=")
	builder.WriteString(_m.WeakAreas)
	builder.WriteString(", ")
	builder.WriteString("analysis=")
	builder.WriteString(_m.Analysis)
	builder.WriteString(", ")
	builder.WriteString("taken_at=")
	builder.WriteString(_m.TakenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WeekQuizs is a parsable slice of WeekQuiz.
type WeekQuizs []*WeekQuiz
