// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyflow/ent/student"
)

// StudentCreate is the builder for creating a Student entity.
type StudentCreate struct {
	config
	mutation *StudentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRollNo sets the "roll_no" field.
func (_c *StudentCreate) SetRollNo(v string) *StudentCreate {
	_c.mutation.SetRollNo(v)
	return _c
}

// SetName sets the "name" field.
func (_c *StudentCreate) SetName(v string) *StudentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *StudentCreate) SetDomain(v string) *StudentCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetHoursPerDay sets the "hours_per_day" field.
func (_c *StudentCreate) SetHoursPerDay(v int) *StudentCreate {
	_c.mutation.SetHoursPerDay(v)
	return _c
}

// SetNillableHoursPerDay sets the "hours_per_day" field if the given value is not nil.
func (_c *StudentCreate) SetNillableHoursPerDay(v *int) *StudentCreate {
	if v != nil {
		_c.SetHoursPerDay(*v)
	}
	return _c
}

// SetWeeks sets the "weeks" field.
func (_c *StudentCreate) SetWeeks(v int) *StudentCreate {
	_c.mutation.SetWeeks(v)
	return _c
}

// SetNillableWeeks sets the "weeks" field if the given value is not nil.
func (_c *StudentCreate) SetNillableWeeks(v *int) *StudentCreate {
	if v != nil {
		_c.SetWeeks(*v)
	}
	return _c
}

// SetKnowledgeScale sets the "knowledge_scale" field.
func (_c *StudentCreate) SetKnowledgeScale(v int) *StudentCreate {
	_c.mutation.SetKnowledgeScale(v)
	return _c
}

// SetNillableKnowledgeScale sets the "knowledge_scale" field if the given value is not nil.
func (_c *StudentCreate) SetNillableKnowledgeScale(v *int) *StudentCreate {
	if v != nil {
		_c.SetKnowledgeScale(*v)
	}
	return _c
}

// SetCurrentWeekNo sets the "current_week_no" field.
func (_c *StudentCreate) SetCurrentWeekNo(v int) *StudentCreate {
	_c.mutation.SetCurrentWeekNo(v)
	return _c
}

// SetNillableCurrentWeekNo sets the "current_week_no" field if the given value is not nil.
func (_c *StudentCreate) SetNillableCurrentWeekNo(v *int) *StudentCreate {
	if v != nil {
		_c.SetCurrentWeekNo(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *StudentCreate) SetCurrentStep(v int) *StudentCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *StudentCreate) SetNillableCurrentStep(v *int) *StudentCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetCognitiveScore sets the "cognitive_score" field.
func (_c *StudentCreate) SetCognitiveScore(v int) *StudentCreate {
	_c.mutation.SetCognitiveScore(v)
	return _c
}

// SetNillableCognitiveScore sets the "cognitive_score" field if the given value is not nil.
func (_c *StudentCreate) SetNillableCognitiveScore(v *int) *StudentCreate {
	if v != nil {
		_c.SetCognitiveScore(*v)
	}
	return _c
}

// SetCognitiveIq sets the "cognitive_iq" field.
func (_c *StudentCreate) SetCognitiveIq(v int) *StudentCreate {
	_c.mutation.SetCognitiveIq(v)
	return _c
}

// SetNillableCognitiveIq sets the "cognitive_iq" field if the given value is not nil.
func (_c *StudentCreate) SetNillableCognitiveIq(v *int) *StudentCreate {
	if v != nil {
		_c.SetCognitiveIq(*v)
	}
	return _c
}

// SetDomainScore sets the "domain_score" field.
func (_c *StudentCreate) SetDomainScore(v int) *StudentCreate {
	_c.mutation.SetDomainScore(v)
	return _c
}

// SetNillableDomainScore sets the "domain_score" field if the given value is not nil.
func (_c *StudentCreate) SetNillableDomainScore(v *int) *StudentCreate {
	if v != nil {
		_c.SetDomainScore(*v)
	}
	return _c
}

// SetDomainIq sets the "domain_iq" field.
func (_c *StudentCreate) SetDomainIq(v int) *StudentCreate {
	_c.mutation.SetDomainIq(v)
	return _c
}

// SetNillableDomainIq sets the "domain_iq" field if the given value is not nil.
func (_c *StudentCreate) SetNillableDomainIq(v *int) *StudentCreate {
	if v != nil {
		_c.SetDomainIq(*v)
	}
	return _c
}

// SetVivaScore sets the "viva_score" field.
func (_c *StudentCreate) SetVivaScore(v int) *StudentCreate {
	_c.mutation.SetVivaScore(v)
	return _c
}

// SetNillableVivaScore sets the "viva_score" field if the given value is not nil.
func (_c *StudentCreate) SetNillableVivaScore(v *int) *StudentCreate {
	if v != nil {
		_c.SetVivaScore(*v)
	}
	return _c
}

// SetVivaResponse sets the "viva_response" field.
func (_c *StudentCreate) SetVivaResponse(v string) *StudentCreate {
	_c.mutation.SetVivaResponse(v)
	return _c
}

// SetNillableVivaResponse sets the "viva_response" field if the given value is not nil.
func (_c *StudentCreate) SetNillableVivaResponse(v *string) *StudentCreate {
	if v != nil {
		_c.SetVivaResponse(*v)
	}
	return _c
}

// SetCourseConfigured sets the "course_configured" field.
func (_c *StudentCreate) SetCourseConfigured(v bool) *StudentCreate {
	_c.mutation.SetCourseConfigured(v)
	return _c
}

// SetNillableCourseConfigured sets the "course_configured" field if the given value is not nil.
func (_c *StudentCreate) SetNillableCourseConfigured(v *bool) *StudentCreate {
	if v != nil {
		_c.SetCourseConfigured(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudentCreate) SetCreatedAt(v time.Time) *StudentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudentCreate) SetNillableCreatedAt(v *time.Time) *StudentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StudentMutation object of the builder.
func (_c *StudentCreate) Mutation() *StudentMutation {
	return _c.mutation
}

// Save creates the Student in the database.
func (_c *StudentCreate) Save(ctx context.Context) (*Student, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentCreate) SaveX(ctx context.Context) *Student {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentCreate) defaults() {
	if _, ok := _c.mutation.HoursPerDay(); !ok {
		v := student.DefaultHoursPerDay
		_c.mutation.SetHoursPerDay(v)
	}
	if _, ok := _c.mutation.Weeks(); !ok {
		v := student.DefaultWeeks
		_c.mutation.SetWeeks(v)
	}
	if _, ok := _c.mutation.KnowledgeScale(); !ok {
		v := student.DefaultKnowledgeScale
		_c.mutation.SetKnowledgeScale(v)
	}
	if _, ok := _c.mutation.CurrentWeekNo(); !ok {
		v := student.DefaultCurrentWeekNo
		_c.mutation.SetCurrentWeekNo(v)
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		v := student.DefaultCurrentStep
		_c.mutation.SetCurrentStep(v)
	}
	if _, ok := _c.mutation.CognitiveScore(); !ok {
		v := student.DefaultCognitiveScore
		_c.mutation.SetCognitiveScore(v)
	}
	if _, ok := _c.mutation.CognitiveIq(); !ok {
		v := student.DefaultCognitiveIq
		_c.mutation.SetCognitiveIq(v)
	}
	if _, ok := _c.mutation.DomainScore(); !ok {
		v := student.DefaultDomainScore
		_c.mutation.SetDomainScore(v)
	}
	if _, ok := _c.mutation.DomainIq(); !ok {
		v := student.DefaultDomainIq
		_c.mutation.SetDomainIq(v)
	}
	if _, ok := _c.mutation.VivaScore(); !ok {
		v := student.DefaultVivaScore
		_c.mutation.SetVivaScore(v)
	}
	if _, ok := _c.mutation.VivaResponse(); !ok {
		v := student.DefaultVivaResponse
		_c.mutation.SetVivaResponse(v)
	}
	if _, ok := _c.mutation.CourseConfigured(); !ok {
		v := student.DefaultCourseConfigured
		_c.mutation.SetCourseConfigured(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := student.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentCreate) check() error {
	if _, ok := _c.mutation.RollNo(); !ok {
		return &ValidationError{Name: "roll_no", err: errors.New(`ent: missing required field "Student.roll_no"`)}
	}
	if v, ok := _c.mutation.RollNo(); ok {
		if err := student.RollNoValidator(v); err != nil {
			return &ValidationError{Name: "roll_no", err: fmt.Errorf(`ent: validator failed for field "Student.roll_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Student.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := student.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Student.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Student.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := student.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Student.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HoursPerDay(); !ok {
		return &ValidationError{Name: "hours_per_day", err: errors.New(`ent: missing required field "Student.hours_per_day"`)}
	}
	if _, ok := _c.mutation.Weeks(); !ok {
		return &ValidationError{Name: "weeks", err: errors.New(`ent: missing required field "Student.weeks"`)}
	}
	if _, ok := _c.mutation.KnowledgeScale(); !ok {
		return &ValidationError{Name: "knowledge_scale", err: errors.New(`ent: missing required field "Student.knowledge_scale"`)}
	}
	if v, ok := _c.mutation.KnowledgeScale(); ok {
		if err := student.KnowledgeScaleValidator(v); err != nil {
			return &ValidationError{Name: "knowledge_scale", err: fmt.Errorf(`ent: validator failed for field "Student.knowledge_scale": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentWeekNo(); !ok {
		return &ValidationError{Name: "current_week_no", err: errors.New(`ent: missing required field "Student.current_week_no"`)}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "Student.current_step"`)}
	}
	if v, ok := _c.mutation.CurrentStep(); ok {
		if err := student.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "Student.current_step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CognitiveScore(); !ok {
		return &ValidationError{Name: "cognitive_score", err: errors.New(`ent: missing required field "Student.cognitive_score"`)}
	}
	if _, ok := _c.mutation.CognitiveIq(); !ok {
		return &ValidationError{Name: "cognitive_iq", err: errors.New(`ent: missing required field "Student.cognitive_iq"`)}
	}
	if _, ok := _c.mutation.DomainScore(); !ok {
		return &ValidationError{Name: "domain_score", err: errors.New(`ent: missing required field "Student.domain_score"`)}
	}
	if _, ok := _c.mutation.DomainIq(); !ok {
		return &ValidationError{Name: "domain_iq", err: errors.New(`ent: missing required field "Student.domain_iq"`)}
	}
	if _, ok := _c.mutation.VivaScore(); !ok {
		return &ValidationError{Name: "viva_score", err: errors.New(`ent: missing required field "Student.viva_score"`)}
	}
	if _, ok := _c.mutation.VivaResponse(); !ok {
		return &ValidationError{Name: "viva_response", err: errors.New(`ent: missing required field "Student.viva_response"`)}
	}
	if _, ok := _c.mutation.CourseConfigured(); !ok {
		return &ValidationError{Name: "course_configured", err: errors.New(`ent: missing required field "Student.course_configured"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Student.created_at"`)}
	}
	return nil
}

func (_c *StudentCreate) sqlSave(ctx context.Context) (*Student, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudentCreate) createSpec() (*Student, *sqlgraph.CreateSpec) {
	var (
		_node = &Student{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(student.Table, sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.RollNo(); ok {
		_spec.SetField(student.FieldRollNo, field.TypeString, value)
		_node.RollNo = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(student.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.HoursPerDay(); ok {
		_spec.SetField(student.FieldHoursPerDay, field.TypeInt, value)
		_node.HoursPerDay = value
	}
	if value, ok := _c.mutation.Weeks(); ok {
		_spec.SetField(student.FieldWeeks, field.TypeInt, value)
		_node.Weeks = value
	}
	if value, ok := _c.mutation.KnowledgeScale(); ok {
		_spec.SetField(student.FieldKnowledgeScale, field.TypeInt, value)
		_node.KnowledgeScale = value
	}
	if value, ok := _c.mutation.CurrentWeekNo(); ok {
		_spec.SetField(student.FieldCurrentWeekNo, field.TypeInt, value)
		_node.CurrentWeekNo = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(student.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.CognitiveScore(); ok {
		_spec.SetField(student.FieldCognitiveScore, field.TypeInt, value)
		_node.CognitiveScore = value
	}
	if value, ok := _c.mutation.CognitiveIq(); ok {
		_spec.SetField(student.FieldCognitiveIq, field.TypeInt, value)
		_node.CognitiveIq = value
	}
	if value, ok := _c.mutation.DomainScore(); ok {
		_spec.SetField(student.FieldDomainScore, field.TypeInt, value)
		_node.DomainScore = value
	}
	if value, ok := _c.mutation.DomainIq(); ok {
		_spec.SetField(student.FieldDomainIq, field.TypeInt, value)
		_node.DomainIq = value
	}
	if value, ok := _c.mutation.VivaScore(); ok {
		_spec.SetField(student.FieldVivaScore, field.TypeInt, value)
		_node.VivaScore = value
	}
	if value, ok := _c.mutation.VivaResponse(); ok {
		_spec.SetField(student.FieldVivaResponse, field.TypeString, value)
		_node.VivaResponse = value
	}
	if value, ok := _c.mutation.CourseConfigured(); ok {
		_spec.SetField(student.FieldCourseConfigured, field.TypeBool, value)
		_node.CourseConfigured = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(student.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Student.Create().
//		SetRollNo(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudentUpsert) {
//			SetRollNo(v+v).
//		}).
//		Exec(ctx)
func (_c *StudentCreate) OnConflict(opts ...sql.ConflictOption) *StudentUpsertOne {
	_c.conflict = opts
	return &StudentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Student.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudentCreate) OnConflictColumns(columns ...string) *StudentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudentUpsertOne{
		create: _c,
	}
}

type (
	// StudentUpsertOne is the builder for "upsert"-ing
	//  one Student node.
	StudentUpsertOne struct {
		create *StudentCreate
	}

	// StudentUpsert is the "OnConflict" setter.
	StudentUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *StudentUpsert) SetName(v string) *StudentUpsert {
	u.Set(student.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StudentUpsert) UpdateName() *StudentUpsert {
	u.SetExcluded(student.FieldName)
	return u
}

// SetDomain sets the "domain" field.
func (u *StudentUpsert) SetDomain(v string) *StudentUpsert {
	u.Set(student.FieldDomain, v)
	return u
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *StudentUpsert) UpdateDomain() *StudentUpsert {
	u.SetExcluded(student.FieldDomain)
	return u
}

// SetHoursPerDay sets the "hours_per_day" field.
func (u *StudentUpsert) SetHoursPerDay(v int) *StudentUpsert {
	u.Set(student.FieldHoursPerDay, v)
	return u
}

// UpdateHoursPerDay sets the "hours_per_day" field to the value that was provided on create.
func (u *StudentUpsert) UpdateHoursPerDay() *StudentUpsert {
	u.SetExcluded(student.FieldHoursPerDay)
	return u
}

// AddHoursPerDay adds v to the "hours_per_day" field.
func (u *StudentUpsert) AddHoursPerDay(v int) *StudentUpsert {
	u.Add(student.FieldHoursPerDay, v)
	return u
}

// SetWeeks sets the "weeks" field.
func (u *StudentUpsert) SetWeeks(v int) *StudentUpsert {
	u.Set(student.FieldWeeks, v)
	return u
}

// UpdateWeeks sets the "weeks" field to the value that was provided on create.
func (u *StudentUpsert) UpdateWeeks() *StudentUpsert {
	u.SetExcluded(student.FieldWeeks)
	return u
}

// AddWeeks adds v to the "weeks" field.
func (u *StudentUpsert) AddWeeks(v int) *StudentUpsert {
	u.Add(student.FieldWeeks, v)
	return u
}

// SetKnowledgeScale sets the "knowledge_scale" field.
func (u *StudentUpsert) SetKnowledgeScale(v int) *StudentUpsert {
	u.Set(student.FieldKnowledgeScale, v)
	return u
}

// UpdateKnowledgeScale sets the "knowledge_scale" field to the value that was provided on create.
func (u *StudentUpsert) UpdateKnowledgeScale() *StudentUpsert {
	u.SetExcluded(student.FieldKnowledgeScale)
	return u
}

// AddKnowledgeScale adds v to the "knowledge_scale" field.
func (u *StudentUpsert) AddKnowledgeScale(v int) *StudentUpsert {
	u.Add(student.FieldKnowledgeScale, v)
	return u
}

// SetCurrentWeekNo sets the "current_week_no" field.
func (u *StudentUpsert) SetCurrentWeekNo(v int) *StudentUpsert {
	u.Set(student.FieldCurrentWeekNo, v)
	return u
}

// UpdateCurrentWeekNo sets the "current_week_no" field to the value that was provided on create.
func (u *StudentUpsert) UpdateCurrentWeekNo() *StudentUpsert {
	u.SetExcluded(student.FieldCurrentWeekNo)
	return u
}

// AddCurrentWeekNo adds v to the "current_week_no" field.
func (u *StudentUpsert) AddCurrentWeekNo(v int) *StudentUpsert {
	u.Add(student.FieldCurrentWeekNo, v)
	return u
}

// SetCurrentStep sets the "current_step" field.
func (u *StudentUpsert) SetCurrentStep(v int) *StudentUpsert {
	u.Set(student.FieldCurrentStep, v)
	return u
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *StudentUpsert) UpdateCurrentStep() *StudentUpsert {
	u.SetExcluded(student.FieldCurrentStep)
	return u
}

// AddCurrentStep adds v to the "current_step" field.
func (u *StudentUpsert) AddCurrentStep(v int) *StudentUpsert {
	u.Add(student.FieldCurrentStep, v)
	return u
}

// SetCognitiveScore sets the "cognitive_score" field.
func (u *StudentUpsert) SetCognitiveScore(v int) *StudentUpsert {
	u.Set(student.FieldCognitiveScore, v)
	return u
}

// UpdateCognitiveScore sets the "cognitive_score" field to the value that was provided on create.
func (u *StudentUpsert) UpdateCognitiveScore() *StudentUpsert {
	u.SetExcluded(student.FieldCognitiveScore)
	return u
}

// AddCognitiveScore adds v to the "cognitive_score" field.
func (u *StudentUpsert) AddCognitiveScore(v int) *StudentUpsert {
	u.Add(student.FieldCognitiveScore, v)
	return u
}

// SetCognitiveIq sets the "cognitive_iq" field.
func (u *StudentUpsert) SetCognitiveIq(v int) *StudentUpsert {
	u.Set(student.FieldCognitiveIq, v)
	return u
}

// UpdateCognitiveIq sets the "cognitive_iq" field to the value that was provided on create.
func (u *StudentUpsert) UpdateCognitiveIq() *StudentUpsert {
	u.SetExcluded(student.FieldCognitiveIq)
	return u
}

// AddCognitiveIq adds v to the "cognitive_iq" field.
func (u *StudentUpsert) AddCognitiveIq(v int) *StudentUpsert {
	u.Add(student.FieldCognitiveIq, v)
	return u
}

// SetDomainScore sets the "domain_score" field.
func (u *StudentUpsert) SetDomainScore(v int) *StudentUpsert {
	u.Set(student.FieldDomainScore, v)
	return u
}

// UpdateDomainScore sets the "domain_score" field to the value that was provided on create.
func (u *StudentUpsert) UpdateDomainScore() *StudentUpsert {
	u.SetExcluded(student.FieldDomainScore)
	return u
}

// AddDomainScore adds v to the "domain_score" field.
func (u *StudentUpsert) AddDomainScore(v int) *StudentUpsert {
	u.Add(student.FieldDomainScore, v)
	return u
}

// SetDomainIq sets the "domain_iq" field.
func (u *StudentUpsert) SetDomainIq(v int) *StudentUpsert {
	u.Set(student.FieldDomainIq, v)
	return u
}

// UpdateDomainIq sets the "domain_iq" field to the value that was provided on create.
func (u *StudentUpsert) UpdateDomainIq() *StudentUpsert {
	u.SetExcluded(student.FieldDomainIq)
	return u
}

// AddDomainIq adds v to the "domain_iq" field.
func (u *StudentUpsert) AddDomainIq(v int) *StudentUpsert {
	u.Add(student.FieldDomainIq, v)
	return u
}

// SetVivaScore sets the "viva_score" field.
func (u *StudentUpsert) SetVivaScore(v int) *StudentUpsert {
	u.Set(student.FieldVivaScore, v)
	return u
}

// UpdateVivaScore sets the "viva_score" field to the value that was provided on create.
func (u *StudentUpsert) UpdateVivaScore() *StudentUpsert {
	u.SetExcluded(student.FieldVivaScore)
	return u
}

// AddVivaScore adds v to the "viva_score" field.
func (u *StudentUpsert) AddVivaScore(v int) *StudentUpsert {
	u.Add(student.FieldVivaScore, v)
	return u
}

// SetVivaResponse sets the "viva_response" field.
func (u *StudentUpsert) SetVivaResponse(v string) *StudentUpsert {
	u.Set(student.FieldVivaResponse, v)
	return u
}

// UpdateVivaResponse sets the "viva_response" field to the value that was provided on create.
func (u *StudentUpsert) UpdateVivaResponse() *StudentUpsert {
	u.SetExcluded(student.FieldVivaResponse)
	return u
}

// SetCourseConfigured sets the "course_configured" field.
func (u *StudentUpsert) SetCourseConfigured(v bool) *StudentUpsert {
	u.Set(student.FieldCourseConfigured, v)
	return u
}

// UpdateCourseConfigured sets the "course_configured" field to the value that was provided on create.
func (u *StudentUpsert) UpdateCourseConfigured() *StudentUpsert {
	u.SetExcluded(student.FieldCourseConfigured)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Student.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StudentUpsertOne) UpdateNewValues() *StudentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.RollNo(); exists {
			s.SetIgnore(student.FieldRollNo)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(student.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Student.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudentUpsertOne) Ignore() *StudentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudentUpsertOne) DoNothing() *StudentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudentCreate.OnConflict
// documentation for more info.
func (u *StudentUpsertOne) Update(set func(*StudentUpsert)) *StudentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *StudentUpsertOne) SetName(v string) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateName() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateName()
	})
}

// SetDomain sets the "domain" field.
func (u *StudentUpsertOne) SetDomain(v string) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateDomain() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateDomain()
	})
}

// SetHoursPerDay sets the "hours_per_day" field.
func (u *StudentUpsertOne) SetHoursPerDay(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetHoursPerDay(v)
	})
}

// AddHoursPerDay adds v to the "hours_per_day" field.
func (u *StudentUpsertOne) AddHoursPerDay(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.AddHoursPerDay(v)
	})
}

// UpdateHoursPerDay sets the "hours_per_day" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateHoursPerDay() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateHoursPerDay()
	})
}

// SetWeeks sets the "weeks" field.
func (u *StudentUpsertOne) SetWeeks(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetWeeks(v)
	})
}

// AddWeeks adds v to the "weeks" field.
func (u *StudentUpsertOne) AddWeeks(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.AddWeeks(v)
	})
}

// UpdateWeeks sets the "weeks" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateWeeks() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateWeeks()
	})
}

// SetKnowledgeScale sets the "knowledge_scale" field.
func (u *StudentUpsertOne) SetKnowledgeScale(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetKnowledgeScale(v)
	})
}

// AddKnowledgeScale adds v to the "knowledge_scale" field.
func (u *StudentUpsertOne) AddKnowledgeScale(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.AddKnowledgeScale(v)
	})
}

// UpdateKnowledgeScale sets the "knowledge_scale" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateKnowledgeScale() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateKnowledgeScale()
	})
}

// SetCurrentWeekNo sets the "current_week_no" field.
func (u *StudentUpsertOne) SetCurrentWeekNo(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetCurrentWeekNo(v)
	})
}

// AddCurrentWeekNo adds v to the "current_week_no" field.
func (u *StudentUpsertOne) AddCurrentWeekNo(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.AddCurrentWeekNo(v)
	})
}

// UpdateCurrentWeekNo sets the "current_week_no" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateCurrentWeekNo() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateCurrentWeekNo()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *StudentUpsertOne) SetCurrentStep(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetCurrentStep(v)
	})
}

// AddCurrentStep adds v to the "current_step" field.
func (u *StudentUpsertOne) AddCurrentStep(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.AddCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateCurrentStep() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateCurrentStep()
	})
}

// SetCognitiveScore sets the "cognitive_score" field.
func (u *StudentUpsertOne) SetCognitiveScore(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetCognitiveScore(v)
	})
}

// AddCognitiveScore adds v to the "cognitive_score" field.
func (u *StudentUpsertOne) AddCognitiveScore(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.AddCognitiveScore(v)
	})
}

// UpdateCognitiveScore sets the "cognitive_score" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateCognitiveScore() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateCognitiveScore()
	})
}

// SetCognitiveIq sets the "cognitive_iq" field.
func (u *StudentUpsertOne) SetCognitiveIq(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetCognitiveIq(v)
	})
}

// AddCognitiveIq adds v to the "cognitive_iq" field.
func (u *StudentUpsertOne) AddCognitiveIq(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.AddCognitiveIq(v)
	})
}

// UpdateCognitiveIq sets the "cognitive_iq" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateCognitiveIq() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateCognitiveIq()
	})
}

// SetDomainScore sets the "domain_score" field.
func (u *StudentUpsertOne) SetDomainScore(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetDomainScore(v)
	})
}

// AddDomainScore adds v to the "domain_score" field.
func (u *StudentUpsertOne) AddDomainScore(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.AddDomainScore(v)
	})
}

// UpdateDomainScore sets the "domain_score" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateDomainScore() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateDomainScore()
	})
}

// SetDomainIq sets the "domain_iq" field.
func (u *StudentUpsertOne) SetDomainIq(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetDomainIq(v)
	})
}

// AddDomainIq adds v to the "domain_iq" field.
func (u *StudentUpsertOne) AddDomainIq(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.AddDomainIq(v)
	})
}

// UpdateDomainIq sets the "domain_iq" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateDomainIq() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateDomainIq()
	})
}

// SetVivaScore sets the "viva_score" field.
func (u *StudentUpsertOne) SetVivaScore(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetVivaScore(v)
	})
}

// AddVivaScore adds v to the "viva_score" field.
func (u *StudentUpsertOne) AddVivaScore(v int) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.AddVivaScore(v)
	})
}

// UpdateVivaScore sets the "viva_score" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateVivaScore() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateVivaScore()
	})
}

// SetVivaResponse sets the "viva_response" field.
func (u *StudentUpsertOne) SetVivaResponse(v string) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetVivaResponse(v)
	})
}

// UpdateVivaResponse sets the "viva_response" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateVivaResponse() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateVivaResponse()
	})
}

// SetCourseConfigured sets the "course_configured" field.
func (u *StudentUpsertOne) SetCourseConfigured(v bool) *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.SetCourseConfigured(v)
	})
}

// UpdateCourseConfigured sets the "course_configured" field to the value that was provided on create.
func (u *StudentUpsertOne) UpdateCourseConfigured() *StudentUpsertOne {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateCourseConfigured()
	})
}

// Exec executes the query.
func (u *StudentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudentCreateBulk is the builder for creating many Student entities in bulk.
type StudentCreateBulk struct {
	config
	err      error
	builders []*StudentCreate
	conflict []sql.ConflictOption
}

// Save creates the Student entities in the database.
func (_c *StudentCreateBulk) Save(ctx context.Context) ([]*Student, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Student, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StudentCreateBulk) SaveX(ctx context.Context) []*Student {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Student.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudentUpsert) {
//			SetRollNo(v+v).
//		}).
//		Exec(ctx)
func (_c *StudentCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudentUpsertBulk {
	_c.conflict = opts
	return &StudentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Student.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudentCreateBulk) OnConflictColumns(columns ...string) *StudentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudentUpsertBulk{
		create: _c,
	}
}

// StudentUpsertBulk is the builder for "upsert"-ing
// a bulk of Student nodes.
type StudentUpsertBulk struct {
	create *StudentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Student.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StudentUpsertBulk) UpdateNewValues() *StudentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.RollNo(); exists {
				s.SetIgnore(student.FieldRollNo)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(student.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Student.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudentUpsertBulk) Ignore() *StudentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudentUpsertBulk) DoNothing() *StudentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudentCreateBulk.OnConflict
// documentation for more info.
func (u *StudentUpsertBulk) Update(set func(*StudentUpsert)) *StudentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *StudentUpsertBulk) SetName(v string) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateName() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateName()
	})
}

// SetDomain sets the "domain" field.
func (u *StudentUpsertBulk) SetDomain(v string) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateDomain() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateDomain()
	})
}

// SetHoursPerDay sets the "hours_per_day" field.
func (u *StudentUpsertBulk) SetHoursPerDay(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetHoursPerDay(v)
	})
}

// AddHoursPerDay adds v to the "hours_per_day" field.
func (u *StudentUpsertBulk) AddHoursPerDay(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.AddHoursPerDay(v)
	})
}

// UpdateHoursPerDay sets the "hours_per_day" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateHoursPerDay() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateHoursPerDay()
	})
}

// SetWeeks sets the "weeks" field.
func (u *StudentUpsertBulk) SetWeeks(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetWeeks(v)
	})
}

// AddWeeks adds v to the "weeks" field.
func (u *StudentUpsertBulk) AddWeeks(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.AddWeeks(v)
	})
}

// UpdateWeeks sets the "weeks" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateWeeks() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateWeeks()
	})
}

// SetKnowledgeScale sets the "knowledge_scale" field.
func (u *StudentUpsertBulk) SetKnowledgeScale(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetKnowledgeScale(v)
	})
}

// AddKnowledgeScale adds v to the "knowledge_scale" field.
func (u *StudentUpsertBulk) AddKnowledgeScale(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.AddKnowledgeScale(v)
	})
}

// UpdateKnowledgeScale sets the "knowledge_scale" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateKnowledgeScale() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateKnowledgeScale()
	})
}

// SetCurrentWeekNo sets the "current_week_no" field.
func (u *StudentUpsertBulk) SetCurrentWeekNo(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetCurrentWeekNo(v)
	})
}

// AddCurrentWeekNo adds v to the "current_week_no" field.
func (u *StudentUpsertBulk) AddCurrentWeekNo(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.AddCurrentWeekNo(v)
	})
}

// UpdateCurrentWeekNo sets the "current_week_no" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateCurrentWeekNo() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateCurrentWeekNo()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *StudentUpsertBulk) SetCurrentStep(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetCurrentStep(v)
	})
}

// AddCurrentStep adds v to the "current_step" field.
func (u *StudentUpsertBulk) AddCurrentStep(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.AddCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateCurrentStep() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateCurrentStep()
	})
}

// SetCognitiveScore sets the "cognitive_score" field.
func (u *StudentUpsertBulk) SetCognitiveScore(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetCognitiveScore(v)
	})
}

// AddCognitiveScore adds v to the "cognitive_score" field.
func (u *StudentUpsertBulk) AddCognitiveScore(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.AddCognitiveScore(v)
	})
}

// UpdateCognitiveScore sets the "cognitive_score" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateCognitiveScore() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateCognitiveScore()
	})
}

// SetCognitiveIq sets the "cognitive_iq" field.
func (u *StudentUpsertBulk) SetCognitiveIq(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetCognitiveIq(v)
	})
}

// AddCognitiveIq adds v to the "cognitive_iq" field.
func (u *StudentUpsertBulk) AddCognitiveIq(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.AddCognitiveIq(v)
	})
}

// UpdateCognitiveIq sets the "cognitive_iq" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateCognitiveIq() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateCognitiveIq()
	})
}

// SetDomainScore sets the "domain_score" field.
func (u *StudentUpsertBulk) SetDomainScore(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetDomainScore(v)
	})
}

// AddDomainScore adds v to the "domain_score" field.
func (u *StudentUpsertBulk) AddDomainScore(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.AddDomainScore(v)
	})
}

// UpdateDomainScore sets the "domain_score" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateDomainScore() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateDomainScore()
	})
}

// SetDomainIq sets the "domain_iq" field.
func (u *StudentUpsertBulk) SetDomainIq(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetDomainIq(v)
	})
}

// AddDomainIq adds v to the "domain_iq" field.
func (u *StudentUpsertBulk) AddDomainIq(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.AddDomainIq(v)
	})
}

// UpdateDomainIq sets the "domain_iq" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateDomainIq() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateDomainIq()
	})
}

// SetVivaScore sets the "viva_score" field.
func (u *StudentUpsertBulk) SetVivaScore(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetVivaScore(v)
	})
}

// AddVivaScore adds v to the "viva_score" field.
func (u *StudentUpsertBulk) AddVivaScore(v int) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.AddVivaScore(v)
	})
}

// UpdateVivaScore sets the "viva_score" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateVivaScore() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateVivaScore()
	})
}

// SetVivaResponse sets the "viva_response" field.
func (u *StudentUpsertBulk) SetVivaResponse(v string) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetVivaResponse(v)
	})
}

// UpdateVivaResponse sets the "viva_response" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateVivaResponse() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateVivaResponse()
	})
}

// SetCourseConfigured sets the "course_configured" field.
func (u *StudentUpsertBulk) SetCourseConfigured(v bool) *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.SetCourseConfigured(v)
	})
}

// UpdateCourseConfigured sets the "course_configured" field to the value that was provided on create.
func (u *StudentUpsertBulk) UpdateCourseConfigured() *StudentUpsertBulk {
	return u.Update(func(s *StudentUpsert) {
		s.UpdateCourseConfigured()
	})
}

// Exec executes the query.
func (u *StudentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
