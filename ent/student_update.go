// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyflow/ent/predicate"
	"github.com/abhisek/studyflow/ent/student"
)

// StudentUpdate is the builder for updating Student entities.
type StudentUpdate struct {
	config
	hooks    []Hook
	mutation *StudentMutation
}

// Where appends a list predicates to the StudentUpdate builder.
func (_u *StudentUpdate) Where(ps ...predicate.Student) *StudentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StudentUpdate) SetName(v string) *StudentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableName(v *string) *StudentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *StudentUpdate) SetDomain(v string) *StudentUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableDomain(v *string) *StudentUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetHoursPerDay sets the "hours_per_day" field.
func (_u *StudentUpdate) SetHoursPerDay(v int) *StudentUpdate {
	_u.mutation.ResetHoursPerDay()
	_u.mutation.SetHoursPerDay(v)
	return _u
}

// SetNillableHoursPerDay sets the "hours_per_day" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableHoursPerDay(v *int) *StudentUpdate {
	if v != nil {
		_u.SetHoursPerDay(*v)
	}
	return _u
}

// AddHoursPerDay adds value to the "hours_per_day" field.
func (_u *StudentUpdate) AddHoursPerDay(v int) *StudentUpdate {
	_u.mutation.AddHoursPerDay(v)
	return _u
}

// SetWeeks sets the "weeks" field.
func (_u *StudentUpdate) SetWeeks(v int) *StudentUpdate {
	_u.mutation.ResetWeeks()
	_u.mutation.SetWeeks(v)
	return _u
}

// SetNillableWeeks sets the "weeks" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableWeeks(v *int) *StudentUpdate {
	if v != nil {
		_u.SetWeeks(*v)
	}
	return _u
}

// AddWeeks adds value to the "weeks" field.
func (_u *StudentUpdate) AddWeeks(v int) *StudentUpdate {
	_u.mutation.AddWeeks(v)
	return _u
}

// SetKnowledgeScale sets the "knowledge_scale" field.
func (_u *StudentUpdate) SetKnowledgeScale(v int) *StudentUpdate {
	_u.mutation.ResetKnowledgeScale()
	_u.mutation.SetKnowledgeScale(v)
	return _u
}

// SetNillableKnowledgeScale sets the "knowledge_scale" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableKnowledgeScale(v *int) *StudentUpdate {
	if v != nil {
		_u.SetKnowledgeScale(*v)
	}
	return _u
}

// AddKnowledgeScale adds value to the "knowledge_scale" field.
func (_u *StudentUpdate) AddKnowledgeScale(v int) *StudentUpdate {
	_u.mutation.AddKnowledgeScale(v)
	return _u
}

// SetCurrentWeekNo sets the "current_week_no" field.
func (_u *StudentUpdate) SetCurrentWeekNo(v int) *StudentUpdate {
	_u.mutation.ResetCurrentWeekNo()
	_u.mutation.SetCurrentWeekNo(v)
	return _u
}

// SetNillableCurrentWeekNo sets the "current_week_no" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableCurrentWeekNo(v *int) *StudentUpdate {
	if v != nil {
		_u.SetCurrentWeekNo(*v)
	}
	return _u
}

// AddCurrentWeekNo adds value to the "current_week_no" field.
func (_u *StudentUpdate) AddCurrentWeekNo(v int) *StudentUpdate {
	_u.mutation.AddCurrentWeekNo(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *StudentUpdate) SetCurrentStep(v int) *StudentUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableCurrentStep(v *int) *StudentUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *StudentUpdate) AddCurrentStep(v int) *StudentUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetCognitiveScore sets the "cognitive_score" field.
func (_u *StudentUpdate) SetCognitiveScore(v int) *StudentUpdate {
	_u.mutation.ResetCognitiveScore()
	_u.mutation.SetCognitiveScore(v)
	return _u
}

// SetNillableCognitiveScore sets the "cognitive_score" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableCognitiveScore(v *int) *StudentUpdate {
	if v != nil {
		_u.SetCognitiveScore(*v)
	}
	return _u
}

// AddCognitiveScore adds value to the "cognitive_score" field.
func (_u *StudentUpdate) AddCognitiveScore(v int) *StudentUpdate {
	_u.mutation.AddCognitiveScore(v)
	return _u
}

// SetCognitiveIq sets the "cognitive_iq" field.
func (_u *StudentUpdate) SetCognitiveIq(v int) *StudentUpdate {
	_u.mutation.ResetCognitiveIq()
	_u.mutation.SetCognitiveIq(v)
	return _u
}

// SetNillableCognitiveIq sets the "cognitive_iq" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableCognitiveIq(v *int) *StudentUpdate {
	if v != nil {
		_u.SetCognitiveIq(*v)
	}
	return _u
}

// AddCognitiveIq adds value to the "cognitive_iq" field.
func (_u *StudentUpdate) AddCognitiveIq(v int) *StudentUpdate {
	_u.mutation.AddCognitiveIq(v)
	return _u
}

// SetDomainScore sets the "domain_score" field.
func (_u *StudentUpdate) SetDomainScore(v int) *StudentUpdate {
	_u.mutation.ResetDomainScore()
	_u.mutation.SetDomainScore(v)
	return _u
}

// SetNillableDomainScore sets the "domain_score" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableDomainScore(v *int) *StudentUpdate {
	if v != nil {
		_u.SetDomainScore(*v)
	}
	return _u
}

// AddDomainScore adds value to the "domain_score" field.
func (_u *StudentUpdate) AddDomainScore(v int) *StudentUpdate {
	_u.mutation.AddDomainScore(v)
	return _u
}

// SetDomainIq sets the "domain_iq" field.
func (_u *StudentUpdate) SetDomainIq(v int) *StudentUpdate {
	_u.mutation.ResetDomainIq()
	_u.mutation.SetDomainIq(v)
	return _u
}

// SetNillableDomainIq sets the "domain_iq" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableDomainIq(v *int) *StudentUpdate {
	if v != nil {
		_u.SetDomainIq(*v)
	}
	return _u
}

// AddDomainIq adds value to the "domain_iq" field.
func (_u *StudentUpdate) AddDomainIq(v int) *StudentUpdate {
	_u.mutation.AddDomainIq(v)
	return _u
}

// SetVivaScore sets the "viva_score" field.
func (_u *StudentUpdate) SetVivaScore(v int) *StudentUpdate {
	_u.mutation.ResetVivaScore()
	_u.mutation.SetVivaScore(v)
	return _u
}

// SetNillableVivaScore sets the "viva_score" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableVivaScore(v *int) *StudentUpdate {
	if v != nil {
		_u.SetVivaScore(*v)
	}
	return _u
}

// AddVivaScore adds value to the "viva_score" field.
func (_u *StudentUpdate) AddVivaScore(v int) *StudentUpdate {
	_u.mutation.AddVivaScore(v)
	return _u
}

// SetVivaResponse sets the "viva_response" field.
func (_u *StudentUpdate) SetVivaResponse(v string) *StudentUpdate {
	_u.mutation.SetVivaResponse(v)
	return _u
}

// SetNillableVivaResponse sets the "viva_response" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableVivaResponse(v *string) *StudentUpdate {
	if v != nil {
		_u.SetVivaResponse(*v)
	}
	return _u
}

// SetCourseConfigured sets the "course_configured" field.
func (_u *StudentUpdate) SetCourseConfigured(v bool) *StudentUpdate {
	_u.mutation.SetCourseConfigured(v)
	return _u
}

// SetNillableCourseConfigured sets the "course_configured" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableCourseConfigured(v *bool) *StudentUpdate {
	if v != nil {
		_u.SetCourseConfigured(*v)
	}
	return _u
}

// Mutation returns the StudentMutation object of the builder.
func (_u *StudentUpdate) Mutation() *StudentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := student.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Student.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := student.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Student.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KnowledgeScale(); ok {
		if err := student.KnowledgeScaleValidator(v); err != nil {
			return &ValidationError{Name: "knowledge_scale", err: fmt.Errorf(`ent: validator failed for field "Student.knowledge_scale": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStep(); ok {
		if err := student.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "Student.current_step": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(student.Table, student.Columns, sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(student.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.HoursPerDay(); ok {
		_spec.SetField(student.FieldHoursPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHoursPerDay(); ok {
		_spec.AddField(student.FieldHoursPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Weeks(); ok {
		_spec.SetField(student.FieldWeeks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeks(); ok {
		_spec.AddField(student.FieldWeeks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.KnowledgeScale(); ok {
		_spec.SetField(student.FieldKnowledgeScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKnowledgeScale(); ok {
		_spec.AddField(student.FieldKnowledgeScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentWeekNo(); ok {
		_spec.SetField(student.FieldCurrentWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentWeekNo(); ok {
		_spec.AddField(student.FieldCurrentWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(student.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(student.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CognitiveScore(); ok {
		_spec.SetField(student.FieldCognitiveScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCognitiveScore(); ok {
		_spec.AddField(student.FieldCognitiveScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CognitiveIq(); ok {
		_spec.SetField(student.FieldCognitiveIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCognitiveIq(); ok {
		_spec.AddField(student.FieldCognitiveIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DomainScore(); ok {
		_spec.SetField(student.FieldDomainScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDomainScore(); ok {
		_spec.AddField(student.FieldDomainScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DomainIq(); ok {
		_spec.SetField(student.FieldDomainIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDomainIq(); ok {
		_spec.AddField(student.FieldDomainIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VivaScore(); ok {
		_spec.SetField(student.FieldVivaScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVivaScore(); ok {
		_spec.AddField(student.FieldVivaScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VivaResponse(); ok {
		_spec.SetField(student.FieldVivaResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseConfigured(); ok {
		_spec.SetField(student.FieldCourseConfigured, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{student.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentUpdateOne is the builder for updating a single Student entity.
type StudentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentMutation
}

// SetName sets the "name" field.
func (_u *StudentUpdateOne) SetName(v string) *StudentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableName(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *StudentUpdateOne) SetDomain(v string) *StudentUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableDomain(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetHoursPerDay sets the "hours_per_day" field.
func (_u *StudentUpdateOne) SetHoursPerDay(v int) *StudentUpdateOne {
	_u.mutation.ResetHoursPerDay()
	_u.mutation.SetHoursPerDay(v)
	return _u
}

// SetNillableHoursPerDay sets the "hours_per_day" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableHoursPerDay(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetHoursPerDay(*v)
	}
	return _u
}

// AddHoursPerDay adds value to the "hours_per_day" field.
func (_u *StudentUpdateOne) AddHoursPerDay(v int) *StudentUpdateOne {
	_u.mutation.AddHoursPerDay(v)
	return _u
}

// SetWeeks sets the "weeks" field.
func (_u *StudentUpdateOne) SetWeeks(v int) *StudentUpdateOne {
	_u.mutation.ResetWeeks()
	_u.mutation.SetWeeks(v)
	return _u
}

// SetNillableWeeks sets the "weeks" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableWeeks(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetWeeks(*v)
	}
	return _u
}

// AddWeeks adds value to the "weeks" field.
func (_u *StudentUpdateOne) AddWeeks(v int) *StudentUpdateOne {
	_u.mutation.AddWeeks(v)
	return _u
}

// SetKnowledgeScale sets the "knowledge_scale" field.
func (_u *StudentUpdateOne) SetKnowledgeScale(v int) *StudentUpdateOne {
	_u.mutation.ResetKnowledgeScale()
	_u.mutation.SetKnowledgeScale(v)
	return _u
}

// SetNillableKnowledgeScale sets the "knowledge_scale" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableKnowledgeScale(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetKnowledgeScale(*v)
	}
	return _u
}

// AddKnowledgeScale adds value to the "knowledge_scale" field.
func (_u *StudentUpdateOne) AddKnowledgeScale(v int) *StudentUpdateOne {
	_u.mutation.AddKnowledgeScale(v)
	return _u
}

// SetCurrentWeekNo sets the "current_week_no" field.
func (_u *StudentUpdateOne) SetCurrentWeekNo(v int) *StudentUpdateOne {
	_u.mutation.ResetCurrentWeekNo()
	_u.mutation.SetCurrentWeekNo(v)
	return _u
}

// SetNillableCurrentWeekNo sets the "current_week_no" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableCurrentWeekNo(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetCurrentWeekNo(*v)
	}
	return _u
}

// AddCurrentWeekNo adds value to the "current_week_no" field.
func (_u *StudentUpdateOne) AddCurrentWeekNo(v int) *StudentUpdateOne {
	_u.mutation.AddCurrentWeekNo(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *StudentUpdateOne) SetCurrentStep(v int) *StudentUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableCurrentStep(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *StudentUpdateOne) AddCurrentStep(v int) *StudentUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetCognitiveScore sets the "cognitive_score" field.
func (_u *StudentUpdateOne) SetCognitiveScore(v int) *StudentUpdateOne {
	_u.mutation.ResetCognitiveScore()
	_u.mutation.SetCognitiveScore(v)
	return _u
}

// SetNillableCognitiveScore sets the "cognitive_score" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableCognitiveScore(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetCognitiveScore(*v)
	}
	return _u
}

// AddCognitiveScore adds value to the "cognitive_score" field.
func (_u *StudentUpdateOne) AddCognitiveScore(v int) *StudentUpdateOne {
	_u.mutation.AddCognitiveScore(v)
	return _u
}

// SetCognitiveIq sets the "cognitive_iq" field.
func (_u *StudentUpdateOne) SetCognitiveIq(v int) *StudentUpdateOne {
	_u.mutation.ResetCognitiveIq()
	_u.mutation.SetCognitiveIq(v)
	return _u
}

// SetNillableCognitiveIq sets the "cognitive_iq" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableCognitiveIq(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetCognitiveIq(*v)
	}
	return _u
}

// AddCognitiveIq adds value to the "cognitive_iq" field.
func (_u *StudentUpdateOne) AddCognitiveIq(v int) *StudentUpdateOne {
	_u.mutation.AddCognitiveIq(v)
	return _u
}

// SetDomainScore sets the "domain_score" field.
func (_u *StudentUpdateOne) SetDomainScore(v int) *StudentUpdateOne {
	_u.mutation.ResetDomainScore()
	_u.mutation.SetDomainScore(v)
	return _u
}

// SetNillableDomainScore sets the "domain_score" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableDomainScore(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetDomainScore(*v)
	}
	return _u
}

// AddDomainScore adds value to the "domain_score" field.
func (_u *StudentUpdateOne) AddDomainScore(v int) *StudentUpdateOne {
	_u.mutation.AddDomainScore(v)
	return _u
}

// SetDomainIq sets the "domain_iq" field.
func (_u *StudentUpdateOne) SetDomainIq(v int) *StudentUpdateOne {
	_u.mutation.ResetDomainIq()
	_u.mutation.SetDomainIq(v)
	return _u
}

// SetNillableDomainIq sets the "domain_iq" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableDomainIq(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetDomainIq(*v)
	}
	return _u
}

// AddDomainIq adds value to the "domain_iq" field.
func (_u *StudentUpdateOne) AddDomainIq(v int) *StudentUpdateOne {
	_u.mutation.AddDomainIq(v)
	return _u
}

// SetVivaScore sets the "viva_score" field.
func (_u *StudentUpdateOne) SetVivaScore(v int) *StudentUpdateOne {
	_u.mutation.ResetVivaScore()
	_u.mutation.SetVivaScore(v)
	return _u
}

// SetNillableVivaScore sets the "viva_score" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableVivaScore(v *int) *StudentUpdateOne {
	if v != nil {
		_u.SetVivaScore(*v)
	}
	return _u
}

// AddVivaScore adds value to the "viva_score" field.
func (_u *StudentUpdateOne) AddVivaScore(v int) *StudentUpdateOne {
	_u.mutation.AddVivaScore(v)
	return _u
}

// SetVivaResponse sets the "viva_response" field.
func (_u *StudentUpdateOne) SetVivaResponse(v string) *StudentUpdateOne {
	_u.mutation.SetVivaResponse(v)
	return _u
}

// SetNillableVivaResponse sets the "viva_response" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableVivaResponse(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetVivaResponse(*v)
	}
	return _u
}

// SetCourseConfigured sets the "course_configured" field.
func (_u *StudentUpdateOne) SetCourseConfigured(v bool) *StudentUpdateOne {
	_u.mutation.SetCourseConfigured(v)
	return _u
}

// SetNillableCourseConfigured sets the "course_configured" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableCourseConfigured(v *bool) *StudentUpdateOne {
	if v != nil {
		_u.SetCourseConfigured(*v)
	}
	return _u
}

// Mutation returns the StudentMutation object of the builder.
func (_u *StudentUpdateOne) Mutation() *StudentMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentUpdate builder.
func (_u *StudentUpdateOne) Where(ps ...predicate.Student) *StudentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentUpdateOne) Select(field string, fields ...string) *StudentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Student entity.
func (_u *StudentUpdateOne) Save(ctx context.Context) (*Student, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentUpdateOne) SaveX(ctx context.Context) *Student {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := student.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Student.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := student.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Student.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KnowledgeScale(); ok {
		if err := student.KnowledgeScaleValidator(v); err != nil {
			return &ValidationError{Name: "knowledge_scale", err: fmt.Errorf(`ent: validator failed for field "Student.knowledge_scale": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStep(); ok {
		if err := student.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "Student.current_step": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentUpdateOne) sqlSave(ctx context.Context) (_node *Student, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(student.Table, student.Columns, sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Student.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, student.FieldID)
		for _, f := range fields {
			if !student.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != student.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(student.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.HoursPerDay(); ok {
		_spec.SetField(student.FieldHoursPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHoursPerDay(); ok {
		_spec.AddField(student.FieldHoursPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Weeks(); ok {
		_spec.SetField(student.FieldWeeks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeks(); ok {
		_spec.AddField(student.FieldWeeks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.KnowledgeScale(); ok {
		_spec.SetField(student.FieldKnowledgeScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKnowledgeScale(); ok {
		_spec.AddField(student.FieldKnowledgeScale, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentWeekNo(); ok {
		_spec.SetField(student.FieldCurrentWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentWeekNo(); ok {
		_spec.AddField(student.FieldCurrentWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(student.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(student.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CognitiveScore(); ok {
		_spec.SetField(student.FieldCognitiveScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCognitiveScore(); ok {
		_spec.AddField(student.FieldCognitiveScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CognitiveIq(); ok {
		_spec.SetField(student.FieldCognitiveIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCognitiveIq(); ok {
		_spec.AddField(student.FieldCognitiveIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DomainScore(); ok {
		_spec.SetField(student.FieldDomainScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDomainScore(); ok {
		_spec.AddField(student.FieldDomainScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DomainIq(); ok {
		_spec.SetField(student.FieldDomainIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDomainIq(); ok {
		_spec.AddField(student.FieldDomainIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VivaScore(); ok {
		_spec.SetField(student.FieldVivaScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVivaScore(); ok {
		_spec.AddField(student.FieldVivaScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VivaResponse(); ok {
		_spec.SetField(student.FieldVivaResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseConfigured(); ok {
		_spec.SetField(student.FieldCourseConfigured, field.TypeBool, value)
	}
	_node = &Student{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{student.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
