// Code generated by ent, DO NOT EDIT.

package student

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the student type in the database.
	Label = "student"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRollNo holds the string denoting the roll_no field in the database.
	FieldRollNo = "roll_no"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldHoursPerDay holds the string denoting the hours_per_day field in the database.
	FieldHoursPerDay = "hours_per_day"
	// FieldWeeks holds the string denoting the weeks field in the database.
	FieldWeeks = "weeks"
	// FieldKnowledgeScale holds the string denoting the knowledge_scale field in the database.
	FieldKnowledgeScale = "knowledge_scale"
	// FieldCurrentWeekNo holds the string denoting the current_week_no field in the database.
	FieldCurrentWeekNo = "current_week_no"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldCognitiveScore holds the string denoting the cognitive_score field in the database.
	FieldCognitiveScore = "cognitive_score"
	// FieldCognitiveIq holds the string denoting the cognitive_iq field in the database.
	FieldCognitiveIq = "cognitive_iq"
	// FieldDomainScore holds the string denoting the domain_score field in the database.
	FieldDomainScore = "domain_score"
	// FieldDomainIq holds the string denoting the domain_iq field in the database.
	FieldDomainIq = "domain_iq"
	// FieldVivaScore holds the string denoting the viva_score field in the database.
	FieldVivaScore = "viva_score"
	// FieldVivaResponse holds the string denoting the viva_response field in the database.
	FieldVivaResponse = "viva_response"
	// FieldCourseConfigured holds the string denoting the course_configured field in the database.
	FieldCourseConfigured = "course_configured"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the student in the database.
	Table = "students"
)

// Columns holds all SQL columns for student fields.
var Columns = []string{
	FieldID,
	FieldRollNo,
	FieldName,
	FieldDomain,
	FieldHoursPerDay,
	FieldWeeks,
	FieldKnowledgeScale,
	FieldCurrentWeekNo,
	FieldCurrentStep,
	FieldCognitiveScore,
	FieldCognitiveIq,
	FieldDomainScore,
	FieldDomainIq,
	FieldVivaScore,
	FieldVivaResponse,
	FieldCourseConfigured,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// DefaultHoursPerDay holds the default value on creation for the "hours_per_day" field.
	DefaultHoursPerDay int
	// DefaultWeeks holds the default value on creation for the "weeks" field.
	DefaultWeeks int
	// DefaultKnowledgeScale holds the default value on creation for the "knowledge_scale" field.
	DefaultKnowledgeScale int
	// KnowledgeScaleValidator is a validator for the "knowledge_scale" field. It is called by the builders before save.
	KnowledgeScaleValidator func(int) error
	// DefaultCurrentWeekNo holds the default value on creation for the "current_week_no" field.
	DefaultCurrentWeekNo int
	// DefaultCurrentStep holds the default value on creation for the "current_step" field.
	DefaultCurrentStep int
	// CurrentStepValidator is a validator for the "current_step" field. It is called by the builders before save.
	CurrentStepValidator func(int) error
	// DefaultCognitiveScore holds the default value on creation for the "cognitive_score" field.
	DefaultCognitiveScore int
	// DefaultCognitiveIq holds the default value on creation for the "cognitive_iq" field.
	DefaultCognitiveIq int
	// DefaultDomainScore holds the default value on creation for the "domain_score" field.
	DefaultDomainScore int
	// DefaultDomainIq holds the default value on creation for the "domain_iq" field.
	DefaultDomainIq int
	// DefaultVivaScore holds the default value on creation for the "viva_score" field.
	DefaultVivaScore int
	// DefaultVivaResponse holds the default value on creation for the "viva_response" field.
	DefaultVivaResponse string
	// DefaultCourseConfigured holds the default value on creation for the "course_configured" field.
	DefaultCourseConfigured bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Student queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRollNo orders the results by the roll_no field.
func ByRollNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRollNo, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByHoursPerDay orders the results by the hours_per_day field.
func ByHoursPerDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoursPerDay, opts...).ToFunc()
}

// ByWeeks orders the results by the weeks field.
func ByWeeks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeks, opts...).ToFunc()
}

// ByKnowledgeScale orders the results by the knowledge_scale field.
func ByKnowledgeScale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnowledgeScale, opts...).ToFunc()
}

// ByCurrentWeekNo orders the results by the current_week_no field.
func ByCurrentWeekNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentWeekNo, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByCognitiveScore orders the results by the cognitive_score field.
func ByCognitiveScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCognitiveScore, opts...).ToFunc()
}

// ByCognitiveIq orders the results by the cognitive_iq field.
func ByCognitiveIq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCognitiveIq, opts...).ToFunc()
}

// ByDomainScore orders the results by the domain_score field.
func ByDomainScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomainScore, opts...).ToFunc()
}

// ByDomainIq orders the results by the domain_iq field.
func ByDomainIq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomainIq, opts...).ToFunc()
}

// ByVivaScore orders the results by the viva_score field.
func ByVivaScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVivaScore, opts...).ToFunc()
}

// ByVivaResponse orders the results by the viva_response field.
func ByVivaResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVivaResponse, opts...).ToFunc()
}

// ByCourseConfigured orders the results by the course_configured field.
func ByCourseConfigured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseConfigured, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
