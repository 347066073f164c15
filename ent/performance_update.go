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
	"github.com/abhisek/studyflow/ent/performance"
	"github.com/abhisek/studyflow/ent/predicate"
)

// PerformanceUpdate is the builder for updating Performance entities.
type PerformanceUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceMutation
}

// Where appends a list predicates to the PerformanceUpdate builder.
func (_u *PerformanceUpdate) Where(ps ...predicate.Performance) *PerformanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRollNo sets the "roll_no" field.
func (_u *PerformanceUpdate) SetRollNo(v string) *PerformanceUpdate {
	_u.mutation.SetRollNo(v)
	return _u
}

// SetNillableRollNo sets the "roll_no" field if the given value is not nil.
func (_u *PerformanceUpdate) SetNillableRollNo(v *string) *PerformanceUpdate {
	if v != nil {
		_u.SetRollNo(*v)
	}
	return _u
}

// SetTopicsExcellented sets the "topics_excellented" field.
func (_u *PerformanceUpdate) SetTopicsExcellented(v string) *PerformanceUpdate {
	_u.mutation.SetTopicsExcellented(v)
	return _u
}

// SetNillableTopicsExcellented sets the "topics_excellented" field if the given value is not nil.
func (_u *PerformanceUpdate) SetNillableTopicsExcellented(v *string) *PerformanceUpdate {
	if v != nil {
		_u.SetTopicsExcellented(*v)
	}
	return _u
}

// SetOutcomeOfCourse sets the "outcome_of_course" field.
func (_u *PerformanceUpdate) SetOutcomeOfCourse(v string) *PerformanceUpdate {
	_u.mutation.SetOutcomeOfCourse(v)
	return _u
}

// SetNillableOutcomeOfCourse sets the "outcome_of_course" field if the given value is not nil.
func (_u *PerformanceUpdate) SetNillableOutcomeOfCourse(v *string) *PerformanceUpdate {
	if v != nil {
		_u.SetOutcomeOfCourse(*v)
	}
	return _u
}

// SetStudentProgress sets the "student_progress" field.
func (_u *PerformanceUpdate) SetStudentProgress(v string) *PerformanceUpdate {
	_u.mutation.SetStudentProgress(v)
	return _u
}

// SetNillableStudentProgress sets the "student_progress" field if the given value is not nil.
func (_u *PerformanceUpdate) SetNillableStudentProgress(v *string) *PerformanceUpdate {
	if v != nil {
		_u.SetStudentProgress(*v)
	}
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *PerformanceUpdate) SetLastUpdated(v time.Time) *PerformanceUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the PerformanceMutation object of the builder.
func (_u *PerformanceUpdate) Mutation() *PerformanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PerformanceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PerformanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PerformanceUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := performance.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceUpdate) check() error {
	if v, ok := _u.mutation.RollNo(); ok {
		if err := performance.RollNoValidator(v); err != nil {
			return &ValidationError{Name: "roll_no", err: fmt.Errorf(`ent: validator failed for field "Performance.roll_no": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performance.Table, performance.Columns, sqlgraph.NewFieldSpec(performance.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RollNo(); ok {
		_spec.SetField(performance.FieldRollNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicsExcellented(); ok {
		_spec.SetField(performance.FieldTopicsExcellented, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutcomeOfCourse(); ok {
		_spec.SetField(performance.FieldOutcomeOfCourse, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentProgress(); ok {
		_spec.SetField(performance.FieldStudentProgress, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(performance.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PerformanceUpdateOne is the builder for updating a single Performance entity.
type PerformanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceMutation
}

// SetRollNo sets the "roll_no" field.
func (_u *PerformanceUpdateOne) SetRollNo(v string) *PerformanceUpdateOne {
	_u.mutation.SetRollNo(v)
	return _u
}

// SetNillableRollNo sets the "roll_no" field if the given value is not nil.
func (_u *PerformanceUpdateOne) SetNillableRollNo(v *string) *PerformanceUpdateOne {
	if v != nil {
		_u.SetRollNo(*v)
	}
	return _u
}

// SetTopicsExcellented sets the "topics_excellented" field.
func (_u *PerformanceUpdateOne) SetTopicsExcellented(v string) *PerformanceUpdateOne {
	_u.mutation.SetTopicsExcellented(v)
	return _u
}

// SetNillableTopicsExcellented sets the "topics_excellented" field if the given value is not nil.
func (_u *PerformanceUpdateOne) SetNillableTopicsExcellented(v *string) *PerformanceUpdateOne {
	if v != nil {
		_u.SetTopicsExcellented(*v)
	}
	return _u
}

// SetOutcomeOfCourse sets the "outcome_of_course" field.
func (_u *PerformanceUpdateOne) SetOutcomeOfCourse(v string) *PerformanceUpdateOne {
	_u.mutation.SetOutcomeOfCourse(v)
	return _u
}

// SetNillableOutcomeOfCourse sets the "outcome_of_course" field if the given value is not nil.
func (_u *PerformanceUpdateOne) SetNillableOutcomeOfCourse(v *string) *PerformanceUpdateOne {
	if v != nil {
		_u.SetOutcomeOfCourse(*v)
	}
	return _u
}

// SetStudentProgress sets the "student_progress" field.
func (_u *PerformanceUpdateOne) SetStudentProgress(v string) *PerformanceUpdateOne {
	_u.mutation.SetStudentProgress(v)
	return _u
}

// SetNillableStudentProgress sets the "student_progress" field if the given value is not nil.
func (_u *PerformanceUpdateOne) SetNillableStudentProgress(v *string) *PerformanceUpdateOne {
	if v != nil {
		_u.SetStudentProgress(*v)
	}
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *PerformanceUpdateOne) SetLastUpdated(v time.Time) *PerformanceUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the PerformanceMutation object of the builder.
func (_u *PerformanceUpdateOne) Mutation() *PerformanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the PerformanceUpdate builder.
func (_u *PerformanceUpdateOne) Where(ps ...predicate.Performance) *PerformanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PerformanceUpdateOne) Select(field string, fields ...string) *PerformanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Performance entity.
func (_u *PerformanceUpdateOne) Save(ctx context.Context) (*Performance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceUpdateOne) SaveX(ctx context.Context) *Performance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PerformanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PerformanceUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := performance.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceUpdateOne) check() error {
	if v, ok := _u.mutation.RollNo(); ok {
		if err := performance.RollNoValidator(v); err != nil {
			return &ValidationError{Name: "roll_no", err: fmt.Errorf(`ent: validator failed for field "Performance.roll_no": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceUpdateOne) sqlSave(ctx context.Context) (_node *Performance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performance.Table, performance.Columns, sqlgraph.NewFieldSpec(performance.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Performance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performance.FieldID)
		for _, f := range fields {
			if !performance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performance.FieldID {
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
		_spec.SetField(performance.FieldRollNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicsExcellented(); ok {
		_spec.SetField(performance.FieldTopicsExcellented, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutcomeOfCourse(); ok {
		_spec.SetField(performance.FieldOutcomeOfCourse, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentProgress(); ok {
		_spec.SetField(performance.FieldStudentProgress, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(performance.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &Performance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
