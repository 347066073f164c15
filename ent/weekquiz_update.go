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
	"github.com/abhisek/studyflow/ent/predicate"
	"github.com/abhisek/studyflow/ent/weekquiz"
)

// WeekQuizUpdate is the builder for updating WeekQuiz entities.
type WeekQuizUpdate struct {
	config
	hooks    []Hook
	mutation *WeekQuizMutation
}

// Where appends a list predicates to the WeekQuizUpdate builder.
func (_u *WeekQuizUpdate) Where(ps ...predicate.WeekQuiz) *WeekQuizUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRollNo sets the "roll_no" field.
func (_u *WeekQuizUpdate) SetRollNo(v string) *WeekQuizUpdate {
	_u.mutation.SetRollNo(v)
	return _u
}

// SetNillableRollNo sets the "roll_no" field if the given value is not nil.
func (_u *WeekQuizUpdate) SetNillableRollNo(v *string) *WeekQuizUpdate {
	if v != nil {
		_u.SetRollNo(*v)
	}
	return _u
}

// SetWeekNo sets the "week_no" field.
func (_u *WeekQuizUpdate) SetWeekNo(v int) *WeekQuizUpdate {
	_u.mutation.ResetWeekNo()
	_u.mutation.SetWeekNo(v)
	return _u
}

// SetNillableWeekNo sets the "week_no" field if the given value is not nil.
func (_u *WeekQuizUpdate) SetNillableWeekNo(v *int) *WeekQuizUpdate {
	if v != nil {
		_u.SetWeekNo(*v)
	}
	return _u
}

// AddWeekNo adds value to the "week_no" field.
func (_u *WeekQuizUpdate) AddWeekNo(v int) *WeekQuizUpdate {
	_u.mutation.AddWeekNo(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *WeekQuizUpdate) SetScore(v int) *WeekQuizUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *WeekQuizUpdate) SetNillableScore(v *int) *WeekQuizUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *WeekQuizUpdate) AddScore(v int) *WeekQuizUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetIq sets the "iq" field.
func (_u *WeekQuizUpdate) SetIq(v int) *WeekQuizUpdate {
	_u.mutation.ResetIq()
	_u.mutation.SetIq(v)
	return _u
}

// SetNillableIq sets the "iq" field if the given value is not nil.
func (_u *WeekQuizUpdate) SetNillableIq(v *int) *WeekQuizUpdate {
	if v != nil {
		_u.SetIq(*v)
	}
	return _u
}

// AddIq adds value to the "iq" field.
func (_u *WeekQuizUpdate) AddIq(v int) *WeekQuizUpdate {
	_u.mutation.AddIq(v)
	return _u
}

// SetStrongAreas sets the "strong_areas" field.
func (_u *WeekQuizUpdate) SetStrongAreas(v string) *WeekQuizUpdate {
	_u.mutation.SetStrongAreas(v)
	return _u
}

// SetNillableStrongAreas sets the "strong_areas" field if the given value is not nil.
func (_u *WeekQuizUpdate) SetNillableStrongAreas(v *string) *WeekQuizUpdate {
	if v != nil {
		_u.SetStrongAreas(*v)
	}
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *WeekQuizUpdate) SetWeakAreas(v string) *WeekQuizUpdate {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// SetNillableWeakAreas sets the "weak_areas" field if the given value is not nil.
func (_u *WeekQuizUpdate) SetNillableWeakAreas(v *string) *WeekQuizUpdate {
	if v != nil {
		_u.SetWeakAreas(*v)
	}
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *WeekQuizUpdate) SetAnalysis(v string) *WeekQuizUpdate {
	_u.mutation.SetAnalysis(v)
	return _u
}

// SetNillableAnalysis sets the "analysis" field if the given value is not nil.
func (_u *WeekQuizUpdate) SetNillableAnalysis(v *string) *WeekQuizUpdate {
	if v != nil {
		_u.SetAnalysis(*v)
	}
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *WeekQuizUpdate) SetTakenAt(v time.Time) *WeekQuizUpdate {
	_u.mutation.SetTakenAt(v)
	return _u
}

// Mutation returns the WeekQuizMutation object of the builder.
func (_u *WeekQuizUpdate) Mutation() *WeekQuizMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeekQuizUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeekQuizUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeekQuizUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeekQuizUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WeekQuizUpdate) defaults() {
	if _, ok := _u.mutation.TakenAt(); !ok {
		v := weekquiz.UpdateDefaultTakenAt()
		_u.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeekQuizUpdate) check() error {
	if v, ok := _u.mutation.RollNo(); ok {
		if err := weekquiz.RollNoValidator(v); err != nil {
			return &ValidationError{Name: "roll_no", err: fmt.Errorf(`ent: validator failed for field "WeekQuiz.roll_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeekNo(); ok {
		if err := weekquiz.WeekNoValidator(v); err != nil {
			return &ValidationError{Name: "week_no", err: fmt.Errorf(`ent: validator failed for field "WeekQuiz.week_no": %w`, err)}
		}
	}
	return nil
}

func (_u *WeekQuizUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weekquiz.Table, weekquiz.Columns, sqlgraph.NewFieldSpec(weekquiz.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RollNo(); ok {
		_spec.SetField(weekquiz.FieldRollNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekNo(); ok {
		_spec.SetField(weekquiz.FieldWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNo(); ok {
		_spec.AddField(weekquiz.FieldWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(weekquiz.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(weekquiz.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Iq(); ok {
		_spec.SetField(weekquiz.FieldIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIq(); ok {
		_spec.AddField(weekquiz.FieldIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrongAreas(); ok {
		_spec.SetField(weekquiz.FieldStrongAreas, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(weekquiz.FieldWeakAreas, field.TypeString, value)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(weekquiz.FieldAnalysis, field.TypeString, value)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(weekquiz.FieldTakenAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weekquiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeekQuizUpdateOne is the builder for updating a single WeekQuiz entity.
type WeekQuizUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeekQuizMutation
}

// SetRollNo sets the "roll_no" field.
func (_u *WeekQuizUpdateOne) SetRollNo(v string) *WeekQuizUpdateOne {
	_u.mutation.SetRollNo(v)
	return _u
}

// SetNillableRollNo sets the "roll_no" field if the given value is not nil.
func (_u *WeekQuizUpdateOne) SetNillableRollNo(v *string) *WeekQuizUpdateOne {
	if v != nil {
		_u.SetRollNo(*v)
	}
	return _u
}

// SetWeekNo sets the "week_no" field.
func (_u *WeekQuizUpdateOne) SetWeekNo(v int) *WeekQuizUpdateOne {
	_u.mutation.ResetWeekNo()
	_u.mutation.SetWeekNo(v)
	return _u
}

// SetNillableWeekNo sets the "week_no" field if the given value is not nil.
func (_u *WeekQuizUpdateOne) SetNillableWeekNo(v *int) *WeekQuizUpdateOne {
	if v != nil {
		_u.SetWeekNo(*v)
	}
	return _u
}

// AddWeekNo adds value to the "week_no" field.
func (_u *WeekQuizUpdateOne) AddWeekNo(v int) *WeekQuizUpdateOne {
	_u.mutation.AddWeekNo(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *WeekQuizUpdateOne) SetScore(v int) *WeekQuizUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *WeekQuizUpdateOne) SetNillableScore(v *int) *WeekQuizUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *WeekQuizUpdateOne) AddScore(v int) *WeekQuizUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetIq sets the "iq" field.
func (_u *WeekQuizUpdateOne) SetIq(v int) *WeekQuizUpdateOne {
	_u.mutation.ResetIq()
	_u.mutation.SetIq(v)
	return _u
}

// SetNillableIq sets the "iq" field if the given value is not nil.
func (_u *WeekQuizUpdateOne) SetNillableIq(v *int) *WeekQuizUpdateOne {
	if v != nil {
		_u.SetIq(*v)
	}
	return _u
}

// AddIq adds value to the "iq" field.
func (_u *WeekQuizUpdateOne) AddIq(v int) *WeekQuizUpdateOne {
	_u.mutation.AddIq(v)
	return _u
}

// SetStrongAreas sets the "strong_areas" field.
func (_u *WeekQuizUpdateOne) SetStrongAreas(v string) *WeekQuizUpdateOne {
	_u.mutation.SetStrongAreas(v)
	return _u
}

// SetNillableStrongAreas sets the "strong_areas" field if the given value is not nil.
func (_u *WeekQuizUpdateOne) SetNillableStrongAreas(v *string) *WeekQuizUpdateOne {
	if v != nil {
		_u.SetStrongAreas(*v)
	}
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *WeekQuizUpdateOne) SetWeakAreas(v string) *WeekQuizUpdateOne {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// SetNillableWeakAreas sets the "weak_areas" field if the given value is not nil.
func (_u *WeekQuizUpdateOne) SetNillableWeakAreas(v *string) *WeekQuizUpdateOne {
	if v != nil {
		_u.SetWeakAreas(*v)
	}
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *WeekQuizUpdateOne) SetAnalysis(v string) *WeekQuizUpdateOne {
	_u.mutation.SetAnalysis(v)
	return _u
}

// SetNillableAnalysis sets the "analysis" field if the given value is not nil.
func (_u *WeekQuizUpdateOne) SetNillableAnalysis(v *string) *WeekQuizUpdateOne {
	if v != nil {
		_u.SetAnalysis(*v)
	}
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *WeekQuizUpdateOne) SetTakenAt(v time.Time) *WeekQuizUpdateOne {
	_u.mutation.SetTakenAt(v)
	return _u
}

// Mutation returns the WeekQuizMutation object of the builder.
func (_u *WeekQuizUpdateOne) Mutation() *WeekQuizMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeekQuizUpdate builder.
func (_u *WeekQuizUpdateOne) Where(ps ...predicate.WeekQuiz) *WeekQuizUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeekQuizUpdateOne) Select(field string, fields ...string) *WeekQuizUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeekQuiz entity.
func (_u *WeekQuizUpdateOne) Save(ctx context.Context) (*WeekQuiz, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeekQuizUpdateOne) SaveX(ctx context.Context) *WeekQuiz {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeekQuizUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeekQuizUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WeekQuizUpdateOne) defaults() {
	if _, ok := _u.mutation.TakenAt(); !ok {
		v := weekquiz.UpdateDefaultTakenAt()
		_u.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeekQuizUpdateOne) check() error {
	if v, ok := _u.mutation.RollNo(); ok {
		if err := weekquiz.RollNoValidator(v); err != nil {
			return &ValidationError{Name: "roll_no", err: fmt.Errorf(`ent: validator failed for field "WeekQuiz.roll_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeekNo(); ok {
		if err := weekquiz.WeekNoValidator(v); err != nil {
			return &ValidationError{Name: "week_no", err: fmt.Errorf(`ent: validator failed for field "WeekQuiz.week_no": %w`, err)}
		}
	}
	return nil
}

func (_u *WeekQuizUpdateOne) sqlSave(ctx context.Context) (_node *WeekQuiz, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weekquiz.Table, weekquiz.Columns, sqlgraph.NewFieldSpec(weekquiz.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeekQuiz.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weekquiz.FieldID)
		for _, f := range fields {
			if !weekquiz.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weekquiz.FieldID {
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
	if value, ok := _u.mutation.RollNo(); ok {
		_spec.SetField(weekquiz.FieldRollNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekNo(); ok {
		_spec.SetField(weekquiz.FieldWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNo(); ok {
		_spec.AddField(weekquiz.FieldWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(weekquiz.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(weekquiz.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Iq(); ok {
		_spec.SetField(weekquiz.FieldIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIq(); ok {
		_spec.AddField(weekquiz.FieldIq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrongAreas(); ok {
		_spec.SetField(weekquiz.FieldStrongAreas, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(weekquiz.FieldWeakAreas, field.TypeString, value)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(weekquiz.FieldAnalysis, field.TypeString, value)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(weekquiz.FieldTakenAt, field.TypeTime, value)
	}
	_node = &WeekQuiz{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weekquiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
