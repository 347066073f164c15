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
	"github.com/abhisek/studyflow/ent/coursecontent"
	"github.com/abhisek/studyflow/ent/predicate"
)

// CourseContentUpdate is the builder for updating CourseContent entities.
type CourseContentUpdate struct {
	config
	hooks    []Hook
	mutation *CourseContentMutation
}

// Where appends a list predicates to the CourseContentUpdate builder.
func (_u *CourseContentUpdate) Where(ps ...predicate.CourseContent) *CourseContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRollNo sets the "roll_no" field.
func (_u *CourseContentUpdate) SetRollNo(v string) *CourseContentUpdate {
	_u.mutation.SetRollNo(v)
	return _u
}

// SetNillableRollNo sets the "roll_no" field if the given value is not nil.
func (_u *CourseContentUpdate) SetNillableRollNo(v *string) *CourseContentUpdate {
	if v != nil {
		_u.SetRollNo(*v)
	}
	return _u
}

// SetWeekNo sets the "week_no" field.
func (_u *CourseContentUpdate) SetWeekNo(v int) *CourseContentUpdate {
	_u.mutation.ResetWeekNo()
	_u.mutation.SetWeekNo(v)
	return _u
}

// SetNillableWeekNo sets the "week_no" field if the given value is not nil.
func (_u *CourseContentUpdate) SetNillableWeekNo(v *int) *CourseContentUpdate {
	if v != nil {
		_u.SetWeekNo(*v)
	}
	return _u
}

// AddWeekNo adds value to the "week_no" field.
func (_u *CourseContentUpdate) AddWeekNo(v int) *CourseContentUpdate {
	_u.mutation.AddWeekNo(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *CourseContentUpdate) SetBody(v string) *CourseContentUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CourseContentUpdate) SetNillableBody(v *string) *CourseContentUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CourseContentUpdate) SetCreatedAt(v time.Time) *CourseContentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CourseContentUpdate) SetNillableCreatedAt(v *time.Time) *CourseContentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the CourseContentMutation object of the builder.
func (_u *CourseContentUpdate) Mutation() *CourseContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseContentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseContentUpdate) check() error {
	if v, ok := _u.mutation.RollNo(); ok {
		if err := coursecontent.RollNoValidator(v); err != nil {
			return &ValidationError{Name: "roll_no", err: fmt.Errorf(`ent: validator failed for field "CourseContent.roll_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeekNo(); ok {
		if err := coursecontent.WeekNoValidator(v); err != nil {
			return &ValidationError{Name: "week_no", err: fmt.Errorf(`ent: validator failed for field "CourseContent.week_no": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coursecontent.Table, coursecontent.Columns, sqlgraph.NewFieldSpec(coursecontent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RollNo(); ok {
		_spec.SetField(coursecontent.FieldRollNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekNo(); ok {
		_spec.SetField(coursecontent.FieldWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNo(); ok {
		_spec.AddField(coursecontent.FieldWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(coursecontent.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(coursecontent.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coursecontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseContentUpdateOne is the builder for updating a single CourseContent entity.
type CourseContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseContentMutation
}

// SetRollNo sets the "roll_no" field.
func (_u *CourseContentUpdateOne) SetRollNo(v string) *CourseContentUpdateOne {
	_u.mutation.SetRollNo(v)
	return _u
}

// SetNillableRollNo sets the "roll_no" field if the given value is not nil.
func (_u *CourseContentUpdateOne) SetNillableRollNo(v *string) *CourseContentUpdateOne {
	if v != nil {
		_u.SetRollNo(*v)
	}
	return _u
}

// SetWeekNo sets the "week_no" field.
func (_u *CourseContentUpdateOne) SetWeekNo(v int) *CourseContentUpdateOne {
	_u.mutation.ResetWeekNo()
	_u.mutation.SetWeekNo(v)
	return _u
}

// SetNillableWeekNo sets the "week_no" field if the given value is not nil.
func (_u *CourseContentUpdateOne) SetNillableWeekNo(v *int) *CourseContentUpdateOne {
	if v != nil {
		_u.SetWeekNo(*v)
	}
	return _u
}

// AddWeekNo adds value to the "week_no" field.
func (_u *CourseContentUpdateOne) AddWeekNo(v int) *CourseContentUpdateOne {
	_u.mutation.AddWeekNo(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *CourseContentUpdateOne) SetBody(v string) *CourseContentUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CourseContentUpdateOne) SetNillableBody(v *string) *CourseContentUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CourseContentUpdateOne) SetCreatedAt(v time.Time) *CourseContentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CourseContentUpdateOne) SetNillableCreatedAt(v *time.Time) *CourseContentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the CourseContentMutation object of the builder.
func (_u *CourseContentUpdateOne) Mutation() *CourseContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseContentUpdate builder.
func (_u *CourseContentUpdateOne) Where(ps ...predicate.CourseContent) *CourseContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseContentUpdateOne) Select(field string, fields ...string) *CourseContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseContent entity.
func (_u *CourseContentUpdateOne) Save(ctx context.Context) (*CourseContent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseContentUpdateOne) SaveX(ctx context.Context) *CourseContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseContentUpdateOne) check() error {
	if v, ok := _u.mutation.RollNo(); ok {
		if err := coursecontent.RollNoValidator(v); err != nil {
			return &ValidationError{Name: "roll_no", err: fmt.Errorf(`ent: validator failed for field "CourseContent.roll_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeekNo(); ok {
		if err := coursecontent.WeekNoValidator(v); err != nil {
			return &ValidationError{Name: "week_no", err: fmt.Errorf(`ent: validator failed for field "CourseContent.week_no": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseContentUpdateOne) sqlSave(ctx context.Context) (_node *CourseContent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coursecontent.Table, coursecontent.Columns, sqlgraph.NewFieldSpec(coursecontent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coursecontent.FieldID)
		for _, f := range fields {
			if !coursecontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coursecontent.FieldID {
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
		_spec.SetField(coursecontent.FieldRollNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekNo(); ok {
		_spec.SetField(coursecontent.FieldWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNo(); ok {
		_spec.AddField(coursecontent.FieldWeekNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(coursecontent.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(coursecontent.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &CourseContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coursecontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
