// Code generated by ent, DO NOT EDIT.

package performance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Performance {
	return predicate.Performance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Performance {
	return predicate.Performance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Performance {
	return predicate.Performance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Performance {
	return predicate.Performance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Performance {
	return predicate.Performance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Performance {
	return predicate.Performance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Performance {
	return predicate.Performance(sql.FieldLTE(FieldID, id))
}

// RollNo applies equality check predicate on the "roll_no" field. It's identical to RollNoEQ.
func RollNo(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldRollNo, v))
}

// TopicsExcellented applies equality check predicate on the "topics_excellented" field. It's identical to TopicsExcellentedEQ.
func TopicsExcellented(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldTopicsExcellented, v))
}

// OutcomeOfCourse applies equality check predicate on the "outcome_of_course" field. It's identical to OutcomeOfCourseEQ.
func OutcomeOfCourse(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldOutcomeOfCourse, v))
}

// StudentProgress applies equality check predicate on the "student_progress" field. It's identical to StudentProgressEQ.
func StudentProgress(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldStudentProgress, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldLastUpdated, v))
}

// RollNoEQ applies the EQ predicate on the "roll_no" field.
func RollNoEQ(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldRollNo, v))
}

// RollNoNEQ applies the NEQ predicate on the "roll_no" field.
func RollNoNEQ(v string) predicate.Performance {
	return predicate.Performance(sql.FieldNEQ(FieldRollNo, v))
}

// RollNoIn applies the In predicate on the "roll_no" field.
func RollNoIn(vs ...string) predicate.Performance {
	return predicate.Performance(sql.FieldIn(FieldRollNo, vs...))
}

// RollNoNotIn applies the NotIn predicate on the "roll_no" field.
func RollNoNotIn(vs ...string) predicate.Performance {
	return predicate.Performance(sql.FieldNotIn(FieldRollNo, vs...))
}

// RollNoGT applies the GT predicate on the "roll_no" field.
func RollNoGT(v string) predicate.Performance {
	return predicate.Performance(sql.FieldGT(FieldRollNo, v))
}

// RollNoGTE applies the GTE predicate on the "roll_no" field.
func RollNoGTE(v string) predicate.Performance {
	return predicate.Performance(sql.FieldGTE(FieldRollNo, v))
}

// RollNoLT applies the LT predicate on the "roll_no" field.
func RollNoLT(v string) predicate.Performance {
	return predicate.Performance(sql.FieldLT(FieldRollNo, v))
}

// RollNoLTE applies the LTE predicate on the "roll_no" field.
func RollNoLTE(v string) predicate.Performance {
	return predicate.Performance(sql.FieldLTE(FieldRollNo, v))
}

// RollNoContains applies the Contains predicate on the "roll_no" field.
func RollNoContains(v string) predicate.Performance {
	return predicate.Performance(sql.FieldContains(FieldRollNo, v))
}

// RollNoHasPrefix applies the HasPrefix predicate on the "roll_no" field.
func RollNoHasPrefix(v string) predicate.Performance {
	return predicate.Performance(sql.FieldHasPrefix(FieldRollNo, v))
}

// RollNoHasSuffix applies the HasSuffix predicate on the "roll_no" field.
func RollNoHasSuffix(v string) predicate.Performance {
	return predicate.Performance(sql.FieldHasSuffix(FieldRollNo, v))
}

// RollNoEqualFold applies the EqualFold predicate on the "roll_no" field.
func RollNoEqualFold(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEqualFold(FieldRollNo, v))
}

// RollNoContainsFold applies the ContainsFold predicate on the "roll_no" field.
func RollNoContainsFold(v string) predicate.Performance {
	return predicate.Performance(sql.FieldContainsFold(FieldRollNo, v))
}

// TopicsExcellentedEQ applies the EQ predicate on the "topics_excellented" field.
func TopicsExcellentedEQ(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldTopicsExcellented, v))
}

// TopicsExcellentedNEQ applies the NEQ predicate on the "topics_excellented" field.
func TopicsExcellentedNEQ(v string) predicate.Performance {
	return predicate.Performance(sql.FieldNEQ(FieldTopicsExcellented, v))
}

// TopicsExcellentedIn applies the In predicate on the "topics_excellented" field.
func TopicsExcellentedIn(vs ...string) predicate.Performance {
	return predicate.Performance(sql.FieldIn(FieldTopicsExcellented, vs...))
}

// TopicsExcellentedNotIn applies the NotIn predicate on the "topics_excellented" field.
func TopicsExcellentedNotIn(vs ...string) predicate.Performance {
	return predicate.Performance(sql.FieldNotIn(FieldTopicsExcellented, vs...))
}

// TopicsExcellentedGT applies the GT predicate on the "topics_excellented" field.
func TopicsExcellentedGT(v string) predicate.Performance {
	return predicate.Performance(sql.FieldGT(FieldTopicsExcellented, v))
}

// TopicsExcellentedGTE applies the GTE predicate on the "topics_excellented" field.
func TopicsExcellentedGTE(v string) predicate.Performance {
	return predicate.Performance(sql.FieldGTE(FieldTopicsExcellented, v))
}

// TopicsExcellentedLT applies the LT predicate on the "topics_excellented" field.
func TopicsExcellentedLT(v string) predicate.Performance {
	return predicate.Performance(sql.FieldLT(FieldTopicsExcellented, v))
}

// TopicsExcellentedLTE applies the LTE predicate on the "topics_excellented" field.
func TopicsExcellentedLTE(v string) predicate.Performance {
	return predicate.Performance(sql.FieldLTE(FieldTopicsExcellented, v))
}

// TopicsExcellentedContains applies the Contains predicate on the "topics_excellented" field.
func TopicsExcellentedContains(v string) predicate.Performance {
	return predicate.Performance(sql.FieldContains(FieldTopicsExcellented, v))
}

// TopicsExcellentedHasPrefix applies the HasPrefix predicate on the "topics_excellented" field.
func TopicsExcellentedHasPrefix(v string) predicate.Performance {
	return predicate.Performance(sql.FieldHasPrefix(FieldTopicsExcellented, v))
}

// TopicsExcellentedHasSuffix applies the HasSuffix predicate on the "topics_excellented" field.
func TopicsExcellentedHasSuffix(v string) predicate.Performance {
	return predicate.Performance(sql.FieldHasSuffix(FieldTopicsExcellented, v))
}

// TopicsExcellentedEqualFold applies the EqualFold predicate on the "topics_excellented" field.
func TopicsExcellentedEqualFold(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEqualFold(FieldTopicsExcellented, v))
}

// TopicsExcellentedContainsFold applies the ContainsFold predicate on the "topics_excellented" field.
func TopicsExcellentedContainsFold(v string) predicate.Performance {
	return predicate.Performance(sql.FieldContainsFold(FieldTopicsExcellented, v))
}

// OutcomeOfCourseEQ applies the EQ predicate on the "outcome_of_course" field.
func OutcomeOfCourseEQ(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldOutcomeOfCourse, v))
}

// OutcomeOfCourseNEQ applies the NEQ predicate on the "outcome_of_course" field.
func OutcomeOfCourseNEQ(v string) predicate.Performance {
	return predicate.Performance(sql.FieldNEQ(FieldOutcomeOfCourse, v))
}

// OutcomeOfCourseIn applies the In predicate on the "outcome_of_course" field.
func OutcomeOfCourseIn(vs ...string) predicate.Performance {
	return predicate.Performance(sql.FieldIn(FieldOutcomeOfCourse, vs...))
}

// OutcomeOfCourseNotIn applies the NotIn predicate on the "outcome_of_course" field.
func OutcomeOfCourseNotIn(vs ...string) predicate.Performance {
	return predicate.Performance(sql.FieldNotIn(FieldOutcomeOfCourse, vs...))
}

// OutcomeOfCourseGT applies the GT predicate on the "outcome_of_course" field.
func OutcomeOfCourseGT(v string) predicate.Performance {
	return predicate.Performance(sql.FieldGT(FieldOutcomeOfCourse, v))
}

// OutcomeOfCourseGTE applies the GTE predicate on the "outcome_of_course" field.
func OutcomeOfCourseGTE(v string) predicate.Performance {
	return predicate.Performance(sql.FieldGTE(FieldOutcomeOfCourse, v))
}

// OutcomeOfCourseLT applies the LT predicate on the "outcome_of_course" field.
func OutcomeOfCourseLT(v string) predicate.Performance {
	return predicate.Performance(sql.FieldLT(FieldOutcomeOfCourse, v))
}

// OutcomeOfCourseLTE applies the LTE predicate on the "outcome_of_course" field.
func OutcomeOfCourseLTE(v string) predicate.Performance {
	return predicate.Performance(sql.FieldLTE(FieldOutcomeOfCourse, v))
}

// OutcomeOfCourseContains applies the Contains predicate on the "outcome_of_course" field.
func OutcomeOfCourseContains(v string) predicate.Performance {
	return predicate.Performance(sql.FieldContains(FieldOutcomeOfCourse, v))
}

// OutcomeOfCourseHasPrefix applies the HasPrefix predicate on the "outcome_of_course" field.
func OutcomeOfCourseHasPrefix(v string) predicate.Performance {
	return predicate.Performance(sql.FieldHasPrefix(FieldOutcomeOfCourse, v))
}

// OutcomeOfCourseHasSuffix applies the HasSuffix predicate on the "outcome_of_course" field.
func OutcomeOfCourseHasSuffix(v string) predicate.Performance {
	return predicate.Performance(sql.FieldHasSuffix(FieldOutcomeOfCourse, v))
}

// OutcomeOfCourseEqualFold applies the EqualFold predicate on the "outcome_of_course" field.
func OutcomeOfCourseEqualFold(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEqualFold(FieldOutcomeOfCourse, v))
}

// OutcomeOfCourseContainsFold applies the ContainsFold predicate on the "outcome_of_course" field.
func OutcomeOfCourseContainsFold(v string) predicate.Performance {
	return predicate.Performance(sql.FieldContainsFold(FieldOutcomeOfCourse, v))
}

// StudentProgressEQ applies the EQ predicate on the "student_progress" field.
func StudentProgressEQ(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldStudentProgress, v))
}

// StudentProgressNEQ applies the NEQ predicate on the "student_progress" field.
func StudentProgressNEQ(v string) predicate.Performance {
	return predicate.Performance(sql.FieldNEQ(FieldStudentProgress, v))
}

// StudentProgressIn applies the In predicate on the "student_progress" field.
func StudentProgressIn(vs ...string) predicate.Performance {
	return predicate.Performance(sql.FieldIn(FieldStudentProgress, vs...))
}

// StudentProgressNotIn applies the NotIn predicate on the "student_progress" field.
func StudentProgressNotIn(vs ...string) predicate.Performance {
	return predicate.Performance(sql.FieldNotIn(FieldStudentProgress, vs...))
}

// StudentProgressGT applies the GT predicate on the "student_progress" field.
func StudentProgressGT(v string) predicate.Performance {
	return predicate.Performance(sql.FieldGT(FieldStudentProgress, v))
}

// StudentProgressGTE applies the GTE predicate on the "student_progress" field.
func StudentProgressGTE(v string) predicate.Performance {
	return predicate.Performance(sql.FieldGTE(FieldStudentProgress, v))
}

// StudentProgressLT applies the LT predicate on the "student_progress" field.
func StudentProgressLT(v string) predicate.Performance {
	return predicate.Performance(sql.FieldLT(FieldStudentProgress, v))
}

// StudentProgressLTE applies the LTE predicate on the "student_progress" field.
func StudentProgressLTE(v string) predicate.Performance {
	return predicate.Performance(sql.FieldLTE(FieldStudentProgress, v))
}

// StudentProgressContains applies the Contains predicate on the "student_progress" field.
func StudentProgressContains(v string) predicate.Performance {
	return predicate.Performance(sql.FieldContains(FieldStudentProgress, v))
}

// StudentProgressHasPrefix applies the HasPrefix predicate on the "student_progress" field.
func StudentProgressHasPrefix(v string) predicate.Performance {
	return predicate.Performance(sql.FieldHasPrefix(FieldStudentProgress, v))
}

// StudentProgressHasSuffix applies the HasSuffix predicate on the "student_progress" field.
func StudentProgressHasSuffix(v string) predicate.Performance {
	return predicate.Performance(sql.FieldHasSuffix(FieldStudentProgress, v))
}

// StudentProgressEqualFold applies the EqualFold predicate on the "student_progress" field.
func StudentProgressEqualFold(v string) predicate.Performance {
	return predicate.Performance(sql.FieldEqualFold(FieldStudentProgress, v))
}

// StudentProgressContainsFold applies the ContainsFold predicate on the "student_progress" field.
func StudentProgressContainsFold(v string) predicate.Performance {
	return predicate.Performance(sql.FieldContainsFold(FieldStudentProgress, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.Performance {
	return predicate.Performance(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.Performance {
	return predicate.Performance(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.Performance {
	return predicate.Performance(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.Performance {
	return predicate.Performance(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.Performance {
	return predicate.Performance(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.Performance {
	return predicate.Performance(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.Performance {
	return predicate.Performance(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.Performance {
	return predicate.Performance(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Performance) predicate.Performance {
	return predicate.Performance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Performance) predicate.Performance {
	return predicate.Performance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Performance) predicate.Performance {
	return predicate.Performance(sql.NotPredicates(p))
}
