// Code generated by ent, DO NOT EDIT.

package coursecontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldLTE(FieldID, id))
}

// RollNo applies equality check predicate on the "roll_no" field. It's identical to RollNoEQ.
func RollNo(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEQ(FieldRollNo, v))
}

// WeekNo applies equality check predicate on the "week_no" field. It's identical to WeekNoEQ.
func WeekNo(v int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEQ(FieldWeekNo, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEQ(FieldBody, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEQ(FieldCreatedAt, v))
}

// RollNoEQ applies the EQ predicate on the "roll_no" field.
func RollNoEQ(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEQ(FieldRollNo, v))
}

// RollNoNEQ applies the NEQ predicate on the "roll_no" field.
func RollNoNEQ(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldNEQ(FieldRollNo, v))
}

// RollNoIn applies the In predicate on the "roll_no" field.
func RollNoIn(vs ...string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldIn(FieldRollNo, vs...))
}

// RollNoNotIn applies the NotIn predicate on the "roll_no" field.
func RollNoNotIn(vs ...string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldNotIn(FieldRollNo, vs...))
}

// RollNoGT applies the GT predicate on the "roll_no" field.
func RollNoGT(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldGT(FieldRollNo, v))
}

// RollNoGTE applies the GTE predicate on the "roll_no" field.
func RollNoGTE(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldGTE(FieldRollNo, v))
}

// RollNoLT applies the LT predicate on the "roll_no" field.
func RollNoLT(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldLT(FieldRollNo, v))
}

// RollNoLTE applies the LTE predicate on the "roll_no" field.
func RollNoLTE(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldLTE(FieldRollNo, v))
}

// RollNoContains applies the Contains predicate on the "roll_no" field.
func RollNoContains(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldContains(FieldRollNo, v))
}

// RollNoHasPrefix applies the HasPrefix predicate on the "roll_no" field.
func RollNoHasPrefix(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldHasPrefix(FieldRollNo, v))
}

// RollNoHasSuffix applies the HasSuffix predicate on the "roll_no" field.
func RollNoHasSuffix(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldHasSuffix(FieldRollNo, v))
}

// RollNoEqualFold applies the EqualFold predicate on the "roll_no" field.
func RollNoEqualFold(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEqualFold(FieldRollNo, v))
}

// RollNoContainsFold applies the ContainsFold predicate on the "roll_no" field.
func RollNoContainsFold(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldContainsFold(FieldRollNo, v))
}

// WeekNoEQ applies the EQ predicate on the "week_no" field.
func WeekNoEQ(v int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEQ(FieldWeekNo, v))
}

// WeekNoNEQ applies the NEQ predicate on the "week_no" field.
func WeekNoNEQ(v int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldNEQ(FieldWeekNo, v))
}

// WeekNoIn applies the In predicate on the "week_no" field.
func WeekNoIn(vs ...int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldIn(FieldWeekNo, vs...))
}

// WeekNoNotIn applies the NotIn predicate on the "week_no" field.
func WeekNoNotIn(vs ...int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldNotIn(FieldWeekNo, vs...))
}

// WeekNoGT applies the GT predicate on the "week_no" field.
func WeekNoGT(v int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldGT(FieldWeekNo, v))
}

// WeekNoGTE applies the GTE predicate on the "week_no" field.
func WeekNoGTE(v int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldGTE(FieldWeekNo, v))
}

// WeekNoLT applies the LT predicate on the "week_no" field.
func WeekNoLT(v int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldLT(FieldWeekNo, v))
}

// WeekNoLTE applies the LTE predicate on the "week_no" field.
func WeekNoLTE(v int) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldLTE(FieldWeekNo, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldContainsFold(FieldBody, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CourseContent {
	return predicate.CourseContent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CourseContent) predicate.CourseContent {
	return predicate.CourseContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CourseContent) predicate.CourseContent {
	return predicate.CourseContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CourseContent) predicate.CourseContent {
	return predicate.CourseContent(sql.NotPredicates(p))
}
