// Code generated by ent, DO NOT EDIT.

package weekquiz

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLTE(FieldID, id))
}

// RollNo applies equality check predicate on the "roll_no" field. It's identical to RollNoEQ.
func RollNo(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldRollNo, v))
}

// WeekNo applies equality check predicate on the "week_no" field. It's identical to WeekNoEQ.
func WeekNo(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldWeekNo, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldScore, v))
}

// Iq applies equality check predicate on the "iq" field. It's identical to IqEQ.
func Iq(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldIq, v))
}

// StrongAreas applies equality check predicate on the "strong_areas" field. It's identical to StrongAreasEQ.
func StrongAreas(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldStrongAreas, v))
}

// WeakAreas applies equality check predicate on the "weak_areas" field. It's identical to WeakAreasEQ.
func WeakAreas(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldWeakAreas, v))
}

// Analysis applies equality check predicate on the "analysis" field. It's identical to AnalysisEQ.
func Analysis(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldAnalysis, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldTakenAt, v))
}

// RollNoEQ applies the EQ predicate on the "roll_no" field.
func RollNoEQ(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldRollNo, v))
}

// RollNoNEQ applies the NEQ predicate on the "roll_no" field.
func RollNoNEQ(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNEQ(FieldRollNo, v))
}

// RollNoIn applies the In predicate on the "roll_no" field.
func RollNoIn(vs ...string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldIn(FieldRollNo, vs...))
}

// RollNoNotIn applies the NotIn predicate on the "roll_no" field.
func RollNoNotIn(vs ...string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNotIn(FieldRollNo, vs...))
}

// RollNoGT applies the GT predicate on the "roll_no" field.
func RollNoGT(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGT(FieldRollNo, v))
}

// RollNoGTE applies the GTE predicate on the "roll_no" field.
func RollNoGTE(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGTE(FieldRollNo, v))
}

// RollNoLT applies the LT predicate on the "roll_no" field.
func RollNoLT(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLT(FieldRollNo, v))
}

// RollNoLTE applies the LTE predicate on the "roll_no" field.
func RollNoLTE(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLTE(FieldRollNo, v))
}

// RollNoContains applies the Contains predicate on the "roll_no" field.
func RollNoContains(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldContains(FieldRollNo, v))
}

// RollNoHasPrefix applies the HasPrefix predicate on the "roll_no" field.
func RollNoHasPrefix(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldHasPrefix(FieldRollNo, v))
}

// RollNoHasSuffix applies the HasSuffix predicate on the "roll_no" field.
func RollNoHasSuffix(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldHasSuffix(FieldRollNo, v))
}

// RollNoEqualFold applies the EqualFold predicate on the "roll_no" field.
func RollNoEqualFold(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEqualFold(FieldRollNo, v))
}

// RollNoContainsFold applies the ContainsFold predicate on the "roll_no" field.
func RollNoContainsFold(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldContainsFold(FieldRollNo, v))
}

// WeekNoEQ applies the EQ predicate on the "week_no" field.
func WeekNoEQ(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldWeekNo, v))
}

// WeekNoNEQ applies the NEQ predicate on the "week_no" field.
func WeekNoNEQ(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNEQ(FieldWeekNo, v))
}

// WeekNoIn applies the In predicate on the "week_no" field.
func WeekNoIn(vs ...int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldIn(FieldWeekNo, vs...))
}

// WeekNoNotIn applies the NotIn predicate on the "week_no" field.
func WeekNoNotIn(vs ...int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNotIn(FieldWeekNo, vs...))
}

// WeekNoGT applies the GT predicate on the "week_no" field.
func WeekNoGT(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGT(FieldWeekNo, v))
}

// WeekNoGTE applies the GTE predicate on the "week_no" field.
func WeekNoGTE(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGTE(FieldWeekNo, v))
}

// WeekNoLT applies the LT predicate on the "week_no" field.
func WeekNoLT(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLT(FieldWeekNo, v))
}

// WeekNoLTE applies the LTE predicate on the "week_no" field.
func WeekNoLTE(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLTE(FieldWeekNo, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLTE(FieldScore, v))
}

// IqEQ applies the EQ predicate on the "iq" field.
func IqEQ(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldIq, v))
}

// IqNEQ applies the NEQ predicate on the "iq" field.
func IqNEQ(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNEQ(FieldIq, v))
}

// IqIn applies the In predicate on the "iq" field.
func IqIn(vs ...int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldIn(FieldIq, vs...))
}

// IqNotIn applies the NotIn predicate on the "iq" field.
func IqNotIn(vs ...int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNotIn(FieldIq, vs...))
}

// IqGT applies the GT predicate on the "iq" field.
func IqGT(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGT(FieldIq, v))
}

// IqGTE applies the GTE predicate on the "iq" field.
func IqGTE(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGTE(FieldIq, v))
}

// IqLT applies the LT predicate on the "iq" field.
func IqLT(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLT(FieldIq, v))
}

// IqLTE applies the LTE predicate on the "iq" field.
func IqLTE(v int) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLTE(FieldIq, v))
}

// StrongAreasEQ applies the EQ predicate on the "strong_areas" field.
func StrongAreasEQ(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldStrongAreas, v))
}

// StrongAreasNEQ applies the NEQ predicate on the "strong_areas" field.
func StrongAreasNEQ(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNEQ(FieldStrongAreas, v))
}

// StrongAreasIn applies the In predicate on the "strong_areas" field.
func StrongAreasIn(vs ...string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldIn(FieldStrongAreas, vs...))
}

// StrongAreasNotIn applies the NotIn predicate on the "strong_areas" field.
func StrongAreasNotIn(vs ...string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNotIn(FieldStrongAreas, vs...))
}

// StrongAreasGT applies the GT predicate on the "strong_areas" field.
func StrongAreasGT(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGT(FieldStrongAreas, v))
}

// StrongAreasGTE applies the GTE predicate on the "strong_areas" field.
func StrongAreasGTE(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGTE(FieldStrongAreas, v))
}

// StrongAreasLT applies the LT predicate on the "strong_areas" field.
func StrongAreasLT(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLT(FieldStrongAreas, v))
}

// StrongAreasLTE applies the LTE predicate on the "strong_areas" field.
func StrongAreasLTE(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLTE(FieldStrongAreas, v))
}

// StrongAreasContains applies the Contains predicate on the "strong_areas" field.
func StrongAreasContains(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldContains(FieldStrongAreas, v))
}

// StrongAreasHasPrefix applies the HasPrefix predicate on the "strong_areas" field.
func StrongAreasHasPrefix(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldHasPrefix(FieldStrongAreas, v))
}

// StrongAreasHasSuffix applies the HasSuffix predicate on the "strong_areas" field.
func StrongAreasHasSuffix(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldHasSuffix(FieldStrongAreas, v))
}

// StrongAreasEqualFold applies the EqualFold predicate on the "strong_areas" field.
func StrongAreasEqualFold(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEqualFold(FieldStrongAreas, v))
}

// StrongAreasContainsFold applies the ContainsFold predicate on the "strong_areas" field.
func StrongAreasContainsFold(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldContainsFold(FieldStrongAreas, v))
}

// WeakAreasEQ applies the EQ predicate on the "weak_areas" field.
func WeakAreasEQ(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldWeakAreas, v))
}

// WeakAreasNEQ applies the NEQ predicate on the "weak_areas" field.
func WeakAreasNEQ(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNEQ(FieldWeakAreas, v))
}

// WeakAreasIn applies the In predicate on the "weak_areas" field.
func WeakAreasIn(vs ...string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldIn(FieldWeakAreas, vs...))
}

// WeakAreasNotIn applies the NotIn predicate on the "weak_areas" field.
func WeakAreasNotIn(vs ...string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNotIn(FieldWeakAreas, vs...))
}

// WeakAreasGT applies the GT predicate on the "weak_areas" field.
func WeakAreasGT(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGT(FieldWeakAreas, v))
}

// WeakAreasGTE applies the GTE predicate on the "weak_areas" field.
func WeakAreasGTE(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGTE(FieldWeakAreas, v))
}

// WeakAreasLT applies the LT predicate on the "weak_areas" field.
func WeakAreasLT(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLT(FieldWeakAreas, v))
}

// WeakAreasLTE applies the LTE predicate on the "weak_areas" field.
func WeakAreasLTE(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLTE(FieldWeakAreas, v))
}

// WeakAreasContains applies the Contains predicate on the "weak_areas" field.
func WeakAreasContains(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldContains(FieldWeakAreas, v))
}

// WeakAreasHasPrefix applies the HasPrefix predicate on the "weak_areas" field.
func WeakAreasHasPrefix(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldHasPrefix(FieldWeakAreas, v))
}

// WeakAreasHasSuffix applies the HasSuffix predicate on the "weak_areas" field.
func WeakAreasHasSuffix(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldHasSuffix(FieldWeakAreas, v))
}

// WeakAreasEqualFold applies the EqualFold predicate on the "weak_areas" field.
func WeakAreasEqualFold(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEqualFold(FieldWeakAreas, v))
}

// WeakAreasContainsFold applies the ContainsFold predicate on the "weak_areas" field.
func WeakAreasContainsFold(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldContainsFold(FieldWeakAreas, v))
}

// AnalysisEQ applies the EQ predicate on the "analysis" field.
func AnalysisEQ(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldAnalysis, v))
}

// AnalysisNEQ applies the NEQ predicate on the "analysis" field.
func AnalysisNEQ(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNEQ(FieldAnalysis, v))
}

// AnalysisIn applies the In predicate on the "analysis" field.
func AnalysisIn(vs ...string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldIn(FieldAnalysis, vs...))
}

// AnalysisNotIn applies the NotIn predicate on the "analysis" field.
func AnalysisNotIn(vs ...string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNotIn(FieldAnalysis, vs...))
}

// AnalysisGT applies the GT predicate on the "analysis" field.
func AnalysisGT(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGT(FieldAnalysis, v))
}

// AnalysisGTE applies the GTE predicate on the "analysis" field.
func AnalysisGTE(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGTE(FieldAnalysis, v))
}

// AnalysisLT applies the LT predicate on the "analysis" field.
func AnalysisLT(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLT(FieldAnalysis, v))
}

// AnalysisLTE applies the LTE predicate on the "analysis" field.
func AnalysisLTE(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLTE(FieldAnalysis, v))
}

// AnalysisContains applies the Contains predicate on the "analysis" field.
func AnalysisContains(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldContains(FieldAnalysis, v))
}

// AnalysisHasPrefix applies the HasPrefix predicate on the "analysis" field.
func AnalysisHasPrefix(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldHasPrefix(FieldAnalysis, v))
}

// AnalysisHasSuffix applies the HasSuffix predicate on the "analysis" field.
func AnalysisHasSuffix(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldHasSuffix(FieldAnalysis, v))
}

// AnalysisEqualFold applies the EqualFold predicate on the "analysis" field.
func AnalysisEqualFold(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEqualFold(FieldAnalysis, v))
}

// AnalysisContainsFold applies the ContainsFold predicate on the "analysis" field.
func AnalysisContainsFold(v string) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldContainsFold(FieldAnalysis, v))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.FieldLTE(FieldTakenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeekQuiz) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeekQuiz) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeekQuiz) predicate.WeekQuiz {
	return predicate.WeekQuiz(sql.NotPredicates(p))
}
