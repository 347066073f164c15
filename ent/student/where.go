// Code generated by ent, DO NOT EDIT.

package student

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldID, id))
}

// RollNo applies equality check predicate on the "roll_no" field. It's identical to RollNoEQ.
func RollNo(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldRollNo, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldName, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldDomain, v))
}

// HoursPerDay applies equality check predicate on the "hours_per_day" field. It's identical to HoursPerDayEQ.
func HoursPerDay(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldHoursPerDay, v))
}

// Weeks applies equality check predicate on the "weeks" field. It's identical to WeeksEQ.
func Weeks(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldWeeks, v))
}

// KnowledgeScale applies equality check predicate on the "knowledge_scale" field. It's identical to KnowledgeScaleEQ.
func KnowledgeScale(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldKnowledgeScale, v))
}

// CurrentWeekNo applies equality check predicate on the "current_week_no" field. It's identical to CurrentWeekNoEQ.
func CurrentWeekNo(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCurrentWeekNo, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCurrentStep, v))
}

// CognitiveScore applies equality check predicate on the "cognitive_score" field. It's identical to CognitiveScoreEQ.
func CognitiveScore(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCognitiveScore, v))
}

// CognitiveIq applies equality check predicate on the "cognitive_iq" field. It's identical to CognitiveIqEQ.
func CognitiveIq(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCognitiveIq, v))
}

// DomainScore applies equality check predicate on the "domain_score" field. It's identical to DomainScoreEQ.
func DomainScore(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldDomainScore, v))
}

// DomainIq applies equality check predicate on the "domain_iq" field. It's identical to DomainIqEQ.
func DomainIq(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldDomainIq, v))
}

// VivaScore applies equality check predicate on the "viva_score" field. It's identical to VivaScoreEQ.
func VivaScore(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldVivaScore, v))
}

// VivaResponse applies equality check predicate on the "viva_response" field. It's identical to VivaResponseEQ.
func VivaResponse(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldVivaResponse, v))
}

// CourseConfigured applies equality check predicate on the "course_configured" field. It's identical to CourseConfiguredEQ.
func CourseConfigured(v bool) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCourseConfigured, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCreatedAt, v))
}

// RollNoEQ applies the EQ predicate on the "roll_no" field.
func RollNoEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldRollNo, v))
}

// RollNoNEQ applies the NEQ predicate on the "roll_no" field.
func RollNoNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldRollNo, v))
}

// RollNoIn applies the In predicate on the "roll_no" field.
func RollNoIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldRollNo, vs...))
}

// RollNoNotIn applies the NotIn predicate on the "roll_no" field.
func RollNoNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldRollNo, vs...))
}

// RollNoGT applies the GT predicate on the "roll_no" field.
func RollNoGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldRollNo, v))
}

// RollNoGTE applies the GTE predicate on the "roll_no" field.
func RollNoGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldRollNo, v))
}

// RollNoLT applies the LT predicate on the "roll_no" field.
func RollNoLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldRollNo, v))
}

// RollNoLTE applies the LTE predicate on the "roll_no" field.
func RollNoLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldRollNo, v))
}

// RollNoContains applies the Contains predicate on the "roll_no" field.
func RollNoContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldRollNo, v))
}

// RollNoHasPrefix applies the HasPrefix predicate on the "roll_no" field.
func RollNoHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldRollNo, v))
}

// RollNoHasSuffix applies the HasSuffix predicate on the "roll_no" field.
func RollNoHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldRollNo, v))
}

// RollNoEqualFold applies the EqualFold predicate on the "roll_no" field.
func RollNoEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldRollNo, v))
}

// RollNoContainsFold applies the ContainsFold predicate on the "roll_no" field.
func RollNoContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldRollNo, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldName, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldDomain, v))
}

// HoursPerDayEQ applies the EQ predicate on the "hours_per_day" field.
func HoursPerDayEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldHoursPerDay, v))
}

// HoursPerDayNEQ applies the NEQ predicate on the "hours_per_day" field.
func HoursPerDayNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldHoursPerDay, v))
}

// HoursPerDayIn applies the In predicate on the "hours_per_day" field.
func HoursPerDayIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldHoursPerDay, vs...))
}

// HoursPerDayNotIn applies the NotIn predicate on the "hours_per_day" field.
func HoursPerDayNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldHoursPerDay, vs...))
}

// HoursPerDayGT applies the GT predicate on the "hours_per_day" field.
func HoursPerDayGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldHoursPerDay, v))
}

// HoursPerDayGTE applies the GTE predicate on the "hours_per_day" field.
func HoursPerDayGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldHoursPerDay, v))
}

// HoursPerDayLT applies the LT predicate on the "hours_per_day" field.
func HoursPerDayLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldHoursPerDay, v))
}

// HoursPerDayLTE applies the LTE predicate on the "hours_per_day" field.
func HoursPerDayLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldHoursPerDay, v))
}

// WeeksEQ applies the EQ predicate on the "weeks" field.
func WeeksEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldWeeks, v))
}

// WeeksNEQ applies the NEQ predicate on the "weeks" field.
func WeeksNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldWeeks, v))
}

// WeeksIn applies the In predicate on the "weeks" field.
func WeeksIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldWeeks, vs...))
}

// WeeksNotIn applies the NotIn predicate on the "weeks" field.
func WeeksNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldWeeks, vs...))
}

// WeeksGT applies the GT predicate on the "weeks" field.
func WeeksGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldWeeks, v))
}

// WeeksGTE applies the GTE predicate on the "weeks" field.
func WeeksGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldWeeks, v))
}

// WeeksLT applies the LT predicate on the "weeks" field.
func WeeksLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldWeeks, v))
}

// WeeksLTE applies the LTE predicate on the "weeks" field.
func WeeksLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldWeeks, v))
}

// KnowledgeScaleEQ applies the EQ predicate on the "knowledge_scale" field.
func KnowledgeScaleEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldKnowledgeScale, v))
}

// KnowledgeScaleNEQ applies the NEQ predicate on the "knowledge_scale" field.
func KnowledgeScaleNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldKnowledgeScale, v))
}

// KnowledgeScaleIn applies the In predicate on the "knowledge_scale" field.
func KnowledgeScaleIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldKnowledgeScale, vs...))
}

// KnowledgeScaleNotIn applies the NotIn predicate on the "knowledge_scale" field.
func KnowledgeScaleNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldKnowledgeScale, vs...))
}

// KnowledgeScaleGT applies the GT predicate on the "knowledge_scale" field.
func KnowledgeScaleGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldKnowledgeScale, v))
}

// KnowledgeScaleGTE applies the GTE predicate on the "knowledge_scale" field.
func KnowledgeScaleGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldKnowledgeScale, v))
}

// KnowledgeScaleLT applies the LT predicate on the "knowledge_scale" field.
func KnowledgeScaleLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldKnowledgeScale, v))
}

// KnowledgeScaleLTE applies the LTE predicate on the "knowledge_scale" field.
func KnowledgeScaleLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldKnowledgeScale, v))
}

// CurrentWeekNoEQ applies the EQ predicate on the "current_week_no" field.
func CurrentWeekNoEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCurrentWeekNo, v))
}

// CurrentWeekNoNEQ applies the NEQ predicate on the "current_week_no" field.
func CurrentWeekNoNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCurrentWeekNo, v))
}

// CurrentWeekNoIn applies the In predicate on the "current_week_no" field.
func CurrentWeekNoIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldCurrentWeekNo, vs...))
}

// CurrentWeekNoNotIn applies the NotIn predicate on the "current_week_no" field.
func CurrentWeekNoNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldCurrentWeekNo, vs...))
}

// CurrentWeekNoGT applies the GT predicate on the "current_week_no" field.
func CurrentWeekNoGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldCurrentWeekNo, v))
}

// CurrentWeekNoGTE applies the GTE predicate on the "current_week_no" field.
func CurrentWeekNoGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldCurrentWeekNo, v))
}

// CurrentWeekNoLT applies the LT predicate on the "current_week_no" field.
func CurrentWeekNoLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldCurrentWeekNo, v))
}

// CurrentWeekNoLTE applies the LTE predicate on the "current_week_no" field.
func CurrentWeekNoLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldCurrentWeekNo, v))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldCurrentStep, v))
}

// CognitiveScoreEQ applies the EQ predicate on the "cognitive_score" field.
func CognitiveScoreEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCognitiveScore, v))
}

// CognitiveScoreNEQ applies the NEQ predicate on the "cognitive_score" field.
func CognitiveScoreNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCognitiveScore, v))
}

// CognitiveScoreIn applies the In predicate on the "cognitive_score" field.
func CognitiveScoreIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldCognitiveScore, vs...))
}

// CognitiveScoreNotIn applies the NotIn predicate on the "cognitive_score" field.
func CognitiveScoreNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldCognitiveScore, vs...))
}

// CognitiveScoreGT applies the GT predicate on the "cognitive_score" field.
func CognitiveScoreGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldCognitiveScore, v))
}

// CognitiveScoreGTE applies the GTE predicate on the "cognitive_score" field.
func CognitiveScoreGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldCognitiveScore, v))
}

// CognitiveScoreLT applies the LT predicate on the "cognitive_score" field.
func CognitiveScoreLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldCognitiveScore, v))
}

// CognitiveScoreLTE applies the LTE predicate on the "cognitive_score" field.
func CognitiveScoreLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldCognitiveScore, v))
}

// CognitiveIqEQ applies the EQ predicate on the "cognitive_iq" field.
func CognitiveIqEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCognitiveIq, v))
}

// CognitiveIqNEQ applies the NEQ predicate on the "cognitive_iq" field.
func CognitiveIqNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCognitiveIq, v))
}

// CognitiveIqIn applies the In predicate on the "cognitive_iq" field.
func CognitiveIqIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldCognitiveIq, vs...))
}

// CognitiveIqNotIn applies the NotIn predicate on the "cognitive_iq" field.
func CognitiveIqNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldCognitiveIq, vs...))
}

// CognitiveIqGT applies the GT predicate on the "cognitive_iq" field.
func CognitiveIqGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldCognitiveIq, v))
}

// CognitiveIqGTE applies the GTE predicate on the "cognitive_iq" field.
func CognitiveIqGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldCognitiveIq, v))
}

// CognitiveIqLT applies the LT predicate on the "cognitive_iq" field.
func CognitiveIqLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldCognitiveIq, v))
}

// CognitiveIqLTE applies the LTE predicate on the "cognitive_iq" field.
func CognitiveIqLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldCognitiveIq, v))
}

// DomainScoreEQ applies the EQ predicate on the "domain_score" field.
func DomainScoreEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldDomainScore, v))
}

// DomainScoreNEQ applies the NEQ predicate on the "domain_score" field.
func DomainScoreNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldDomainScore, v))
}

// DomainScoreIn applies the In predicate on the "domain_score" field.
func DomainScoreIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldDomainScore, vs...))
}

// DomainScoreNotIn applies the NotIn predicate on the "domain_score" field.
func DomainScoreNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldDomainScore, vs...))
}

// DomainScoreGT applies the GT predicate on the "domain_score" field.
func DomainScoreGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldDomainScore, v))
}

// DomainScoreGTE applies the GTE predicate on the "domain_score" field.
func DomainScoreGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldDomainScore, v))
}

// DomainScoreLT applies the LT predicate on the "domain_score" field.
func DomainScoreLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldDomainScore, v))
}

// DomainScoreLTE applies the LTE predicate on the "domain_score" field.
func DomainScoreLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldDomainScore, v))
}

// DomainIqEQ applies the EQ predicate on the "domain_iq" field.
func DomainIqEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldDomainIq, v))
}

// DomainIqNEQ applies the NEQ predicate on the "domain_iq" field.
func DomainIqNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldDomainIq, v))
}

// DomainIqIn applies the In predicate on the "domain_iq" field.
func DomainIqIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldDomainIq, vs...))
}

// DomainIqNotIn applies the NotIn predicate on the "domain_iq" field.
func DomainIqNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldDomainIq, vs...))
}

// DomainIqGT applies the GT predicate on the "domain_iq" field.
func DomainIqGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldDomainIq, v))
}

// DomainIqGTE applies the GTE predicate on the "domain_iq" field.
func DomainIqGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldDomainIq, v))
}

// DomainIqLT applies the LT predicate on the "domain_iq" field.
func DomainIqLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldDomainIq, v))
}

// DomainIqLTE applies the LTE predicate on the "domain_iq" field.
func DomainIqLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldDomainIq, v))
}

// VivaScoreEQ applies the EQ predicate on the "viva_score" field.
func VivaScoreEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldVivaScore, v))
}

// VivaScoreNEQ applies the NEQ predicate on the "viva_score" field.
func VivaScoreNEQ(v int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldVivaScore, v))
}

// VivaScoreIn applies the In predicate on the "viva_score" field.
func VivaScoreIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldVivaScore, vs...))
}

// VivaScoreNotIn applies the NotIn predicate on the "viva_score" field.
func VivaScoreNotIn(vs ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldVivaScore, vs...))
}

// VivaScoreGT applies the GT predicate on the "viva_score" field.
func VivaScoreGT(v int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldVivaScore, v))
}

// VivaScoreGTE applies the GTE predicate on the "viva_score" field.
func VivaScoreGTE(v int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldVivaScore, v))
}

// VivaScoreLT applies the LT predicate on the "viva_score" field.
func VivaScoreLT(v int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldVivaScore, v))
}

// VivaScoreLTE applies the LTE predicate on the "viva_score" field.
func VivaScoreLTE(v int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldVivaScore, v))
}

// VivaResponseEQ applies the EQ predicate on the "viva_response" field.
func VivaResponseEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldVivaResponse, v))
}

// VivaResponseNEQ applies the NEQ predicate on the "viva_response" field.
func VivaResponseNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldVivaResponse, v))
}

// VivaResponseIn applies the In predicate on the "viva_response" field.
func VivaResponseIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldVivaResponse, vs...))
}

// VivaResponseNotIn applies the NotIn predicate on the "viva_response" field.
func VivaResponseNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldVivaResponse, vs...))
}

// VivaResponseGT applies the GT predicate on the "viva_response" field.
func VivaResponseGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldVivaResponse, v))
}

// VivaResponseGTE applies the GTE predicate on the "viva_response" field.
func VivaResponseGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldVivaResponse, v))
}

// VivaResponseLT applies the LT predicate on the "viva_response" field.
func VivaResponseLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldVivaResponse, v))
}

// VivaResponseLTE applies the LTE predicate on the "viva_response" field.
func VivaResponseLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldVivaResponse, v))
}

// VivaResponseContains applies the Contains predicate on the "viva_response" field.
func VivaResponseContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldVivaResponse, v))
}

// VivaResponseHasPrefix applies the HasPrefix predicate on the "viva_response" field.
func VivaResponseHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldVivaResponse, v))
}

// VivaResponseHasSuffix applies the HasSuffix predicate on the "viva_response" field.
func VivaResponseHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldVivaResponse, v))
}

// VivaResponseEqualFold applies the EqualFold predicate on the "viva_response" field.
func VivaResponseEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldVivaResponse, v))
}

// VivaResponseContainsFold applies the ContainsFold predicate on the "viva_response" field.
func VivaResponseContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldVivaResponse, v))
}

// CourseConfiguredEQ applies the EQ predicate on the "course_configured" field.
func CourseConfiguredEQ(v bool) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCourseConfigured, v))
}

// CourseConfiguredNEQ applies the NEQ predicate on the "course_configured" field.
func CourseConfiguredNEQ(v bool) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCourseConfigured, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Student) predicate.Student {
	return predicate.Student(sql.NotPredicates(p))
}
