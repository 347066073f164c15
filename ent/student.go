// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyflow/ent/student"
)

// Student is the model entity for the Student schema.
type Student struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Enrollment id: <YY><DOMAIN_CODE><SEQ:3><BRANCH>, e.g. 25PY007CSE
	RollNo string `json:"roll_no,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// One of the fixed course catalog entries
	Domain string `json:"domain,omitempty"`
	// HoursPerDay holds the value of the "hours_per_day" field.
	HoursPerDay int `json:"hours_per_day,omitempty"`
	// Weeks holds the value of the "weeks" field.
	Weeks int `json:"weeks,omitempty"`
	// Self-reported level: 1 beginner through 4 expert
	KnowledgeScale int `json:"knowledge_scale,omitempty"`
	// Monotone, bounded by weeks
	CurrentWeekNo int `json:"current_week_no,omitempty"`
	// Persisted progression step (1 Background .. 7 Analysis)
	CurrentStep int `json:"current_step,omitempty"`
	// CognitiveScore holds the value of the "cognitive_score" field.
	CognitiveScore int `json:"cognitive_score,omitempty"`
	// CognitiveIq holds the value of the "cognitive_iq" field.
	CognitiveIq int `json:"cognitive_iq,omitempty"`
	// DomainScore holds the value of the "domain_score" field.
	DomainScore int `json:"domain_score,omitempty"`
	// DomainIq holds the value of the "domain_iq" field.
	DomainIq int `json:"domain_iq,omitempty"`
	// VivaScore holds the value of the "viva_score" field.
	VivaScore int `json:"viva_score,omitempty"`
	// VivaResponse holds the value of the "viva_response" field.
	VivaResponse string `json:"viva_response,omitempty"`
	// CourseConfigured holds the value of the "course_configured" field.
	CourseConfigured bool `json:"course_configured,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Student) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case student.FieldCourseConfigured:
			values[i] = new(sql.NullBool)
		case student.FieldID, student.FieldHoursPerDay, student.FieldWeeks, student.FieldKnowledgeScale, student.FieldCurrentWeekNo, student.FieldCurrentStep, student.FieldCognitiveScore, student.FieldCognitiveIq, student.FieldDomainScore, student.FieldDomainIq, student.FieldVivaScore:
			values[i] = new(sql.NullInt64)
		case student.FieldRollNo, student.FieldName, student.FieldDomain, student.FieldVivaResponse:
			values[i] = new(sql.NullString)
		case student.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Student fields.
func (_m *Student) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case student.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case student.FieldRollNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field roll_no", values[i])
			} else if value.Valid {
				_m.RollNo = value.String
			}
		case student.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case student.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case student.FieldHoursPerDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hours_per_day", values[i])
			} else if value.Valid {
				_m.HoursPerDay = int(value.Int64)
			}
		case student.FieldWeeks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weeks", values[i])
			} else if value.Valid {
				_m.Weeks = int(value.Int64)
			}
		case student.FieldKnowledgeScale:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field knowledge_scale", values[i])
			} else if value.Valid {
				_m.KnowledgeScale = int(value.Int64)
			}
		case student.FieldCurrentWeekNo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_week_no", values[i])
			} else if value.Valid {
				_m.CurrentWeekNo = int(value.Int64)
			}
		case student.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = int(value.Int64)
			}
		case student.FieldCognitiveScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_score", values[i])
			} else if value.Valid {
				_m.CognitiveScore = int(value.Int64)
			}
		case student.FieldCognitiveIq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_iq", values[i])
			} else if value.Valid {
				_m.CognitiveIq = int(value.Int64)
			}
		case student.FieldDomainScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field domain_score", values[i])
			} else if value.Valid {
				_m.DomainScore = int(value.Int64)
			}
		case student.FieldDomainIq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field domain_iq", values[i])
			} else if value.Valid {
				_m.DomainIq = int(value.Int64)
			}
		case student.FieldVivaScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field viva_score", values[i])
			} else if value.Valid {
				_m.VivaScore = int(value.Int64)
			}
		case student.FieldVivaResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field viva_response", values[i])
			} else if value.Valid {
				_m.VivaResponse = value.String
			}
		case student.FieldCourseConfigured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field course_configured", values[i])
			} else if value.Valid {
				_m.CourseConfigured = value.Bool
			}
		case student.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Student.
// This includes values selected through modifiers, order, etc.
func (_m *Student) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Student.
// Note that you need to call Student.Unwrap() before calling this method if this Student
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Student) Update() *StudentUpdateOne {
	return NewStudentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Student entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Student) Unwrap() *Student {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Student is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Student) String() string {
	var builder strings.Builder
	builder.WriteString("Student(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("roll_no=")
	builder.WriteString(_m.RollNo)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("hours_per_day=")
	builder.WriteString(fmt.Sprintf("%v", _m.HoursPerDay))
	builder.WriteString(", ")
	builder.WriteString("weeks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weeks))
	builder.WriteString(", ")
	builder.WriteString("knowledge_scale=")
	builder.WriteString(fmt.Sprintf("%v", _m.KnowledgeScale))
	builder.WriteString(", ")
	builder.WriteString("current_week_no=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentWeekNo))
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStep))
	builder.WriteString(", ")
	builder.WriteString("cognitive_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CognitiveScore))
	builder.WriteString(", ")
	builder.WriteString("cognitive_iq=")
	builder.WriteString(fmt.Sprintf("%v", _m.CognitiveIq))
	builder.WriteString(", ")
	builder.WriteString("domain_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainScore))
	builder.WriteString(", ")
	builder.WriteString("domain_iq=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainIq))
	builder.WriteString(", ")
	builder.WriteString("viva_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.VivaScore))
	builder.WriteString(", ")
	builder.WriteString("viva_response=")
	builder.WriteString(_m.VivaResponse)
	builder.WriteString(", ")
	builder.WriteString("course_configured=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseConfigured))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Students is a parsable slice of Student.
type Students []*Student
