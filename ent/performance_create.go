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
)

// PerformanceCreate is the builder for creating a Performance entity.
type PerformanceCreate struct {
	config
	mutation *PerformanceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRollNo sets the "roll_no" field.
func (_c *PerformanceCreate) SetRollNo(v string) *PerformanceCreate {
	_c.mutation.SetRollNo(v)
	return _c
}

// SetTopicsExcellented sets the "topics_excellented" field.
func (_c *PerformanceCreate) SetTopicsExcellented(v string) *PerformanceCreate {
	_c.mutation.SetTopicsExcellented(v)
	return _c
}

// SetNillableTopicsExcellented sets the "topics_excellented" field if the given value is not nil.
func (_c *PerformanceCreate) SetNillableTopicsExcellented(v *string) *PerformanceCreate {
	if v != nil {
		_c.SetTopicsExcellented(*v)
	}
	return _c
}

// SetOutcomeOfCourse sets the "outcome_of_course" field.
func (_c *PerformanceCreate) SetOutcomeOfCourse(v string) *PerformanceCreate {
	_c.mutation.SetOutcomeOfCourse(v)
	return _c
}

// SetNillableOutcomeOfCourse sets the "outcome_of_course" field if the given value is not nil.
func (_c *PerformanceCreate) SetNillableOutcomeOfCourse(v *string) *PerformanceCreate {
	if v != nil {
		_c.SetOutcomeOfCourse(*v)
	}
	return _c
}

// SetStudentProgress sets the "student_progress" field.
func (_c *PerformanceCreate) SetStudentProgress(v string) *PerformanceCreate {
	_c.mutation.SetStudentProgress(v)
	return _c
}

// SetNillableStudentProgress sets the "student_progress" field if the given value is not nil.
func (_c *PerformanceCreate) SetNillableStudentProgress(v *string) *PerformanceCreate {
	if v != nil {
		_c.SetStudentProgress(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *PerformanceCreate) SetLastUpdated(v time.Time) *PerformanceCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *PerformanceCreate) SetNillableLastUpdated(v *time.Time) *PerformanceCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the PerformanceMutation object of the builder.
func (_c *PerformanceCreate) Mutation() *PerformanceMutation {
	return _c.mutation
}

// Save creates the Performance in the database.
func (_c *PerformanceCreate) Save(ctx context.Context) (*Performance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PerformanceCreate) SaveX(ctx context.Context) *Performance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PerformanceCreate) defaults() {
	if _, ok := _c.mutation.TopicsExcellented(); !ok {
		v := performance.DefaultTopicsExcellented
		_c.mutation.SetTopicsExcellented(v)
	}
	if _, ok := _c.mutation.OutcomeOfCourse(); !ok {
		v := performance.DefaultOutcomeOfCourse
		_c.mutation.SetOutcomeOfCourse(v)
	}
	if _, ok := _c.mutation.StudentProgress(); !ok {
		v := performance.DefaultStudentProgress
		_c.mutation.SetStudentProgress(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := performance.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PerformanceCreate) check() error {
	if _, ok := _c.mutation.RollNo(); !ok {
		return &ValidationError{Name: "roll_no", err: errors.New(`ent: missing required field "Performance.roll_no"`)}
	}
	if v, ok := _c.mutation.RollNo(); ok {
		if err := performance.RollNoValidator(v); err != nil {
			return &ValidationError{Name: "roll_no", err: fmt.Errorf(`ent: validator failed for field "Performance.roll_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicsExcellented(); !ok {
		return &ValidationError{Name: "topics_excellented", err: errors.New(`ent: missing required field "Performance.topics_excellented"`)}
	}
	if _, ok := _c.mutation.OutcomeOfCourse(); !ok {
		return &ValidationError{Name: "outcome_of_course", err: errors.New(`ent: missing required field "Performance.outcome_of_course"`)}
	}
	if _, ok := _c.mutation.StudentProgress(); !ok {
		return &ValidationError{Name: "student_progress", err: errors.New(`ent: missing required field "Performance.student_progress"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "Performance.last_updated"`)}
	}
	return nil
}

func (_c *PerformanceCreate) sqlSave(ctx context.Context) (*Performance, error) {
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

func (_c *PerformanceCreate) createSpec() (*Performance, *sqlgraph.CreateSpec) {
	var (
		_node = &Performance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(performance.Table, sqlgraph.NewFieldSpec(performance.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.RollNo(); ok {
		_spec.SetField(performance.FieldRollNo, field.TypeString, value)
		_node.RollNo = value
	}
	if value, ok := _c.mutation.TopicsExcellented(); ok {
		_spec.SetField(performance.FieldTopicsExcellented, field.TypeString, value)
		_node.TopicsExcellented = value
	}
	if value, ok := _c.mutation.OutcomeOfCourse(); ok {
		_spec.SetField(performance.FieldOutcomeOfCourse, field.TypeString, value)
		_node.OutcomeOfCourse = value
	}
	if value, ok := _c.mutation.StudentProgress(); ok {
		_spec.SetField(performance.FieldStudentProgress, field.TypeString, value)
		_node.StudentProgress = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(performance.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Performance.Create().
//		SetRollNo(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PerformanceUpsert) {
//			SetRollNo(v+v).
//		}).
//		Exec(ctx)
func (_c *PerformanceCreate) OnConflict(opts ...sql.ConflictOption) *PerformanceUpsertOne {
	_c.conflict = opts
	return &PerformanceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Performance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PerformanceCreate) OnConflictColumns(columns ...string) *PerformanceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PerformanceUpsertOne{
		create: _c,
	}
}

type (
	// PerformanceUpsertOne is the builder for "upsert"-ing
	//  one Performance node.
	PerformanceUpsertOne struct {
		create *PerformanceCreate
	}

	// PerformanceUpsert is the "OnConflict" setter.
	PerformanceUpsert struct {
		*sql.UpdateSet
	}
)

// SetRollNo sets the "roll_no" field.
func (u *PerformanceUpsert) SetRollNo(v string) *PerformanceUpsert {
	u.Set(performance.FieldRollNo, v)
	return u
}

// UpdateRollNo sets the "roll_no" field to the value that was provided on create.
func (u *PerformanceUpsert) UpdateRollNo() *PerformanceUpsert {
	u.SetExcluded(performance.FieldRollNo)
	return u
}

// SetTopicsExcellented sets the "topics_excellented" field.
func (u *PerformanceUpsert) SetTopicsExcellented(v string) *PerformanceUpsert {
	u.Set(performance.FieldTopicsExcellented, v)
	return u
}

// UpdateTopicsExcellented sets the "topics_excellented" field to the value that was provided on create.
func (u *PerformanceUpsert) UpdateTopicsExcellented() *PerformanceUpsert {
	u.SetExcluded(performance.FieldTopicsExcellented)
	return u
}

// SetOutcomeOfCourse sets the "outcome_of_course" field.
func (u *PerformanceUpsert) SetOutcomeOfCourse(v string) *PerformanceUpsert {
	u.Set(performance.FieldOutcomeOfCourse, v)
	return u
}

// UpdateOutcomeOfCourse sets the "outcome_of_course" field to the value that was provided on create.
func (u *PerformanceUpsert) UpdateOutcomeOfCourse() *PerformanceUpsert {
	u.SetExcluded(performance.FieldOutcomeOfCourse)
	return u
}

// SetStudentProgress sets the "student_progress" field.
func (u *PerformanceUpsert) SetStudentProgress(v string) *PerformanceUpsert {
	u.Set(performance.FieldStudentProgress, v)
	return u
}

// UpdateStudentProgress sets the "student_progress" field to the value that was provided on create.
func (u *PerformanceUpsert) UpdateStudentProgress() *PerformanceUpsert {
	u.SetExcluded(performance.FieldStudentProgress)
	return u
}

// SetLastUpdated sets the "last_updated" field.
func (u *PerformanceUpsert) SetLastUpdated(v time.Time) *PerformanceUpsert {
	u.Set(performance.FieldLastUpdated, v)
	return u
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *PerformanceUpsert) UpdateLastUpdated() *PerformanceUpsert {
	u.SetExcluded(performance.FieldLastUpdated)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Performance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PerformanceUpsertOne) UpdateNewValues() *PerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Performance.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PerformanceUpsertOne) Ignore() *PerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PerformanceUpsertOne) DoNothing() *PerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PerformanceCreate.OnConflict
// documentation for more info.
func (u *PerformanceUpsertOne) Update(set func(*PerformanceUpsert)) *PerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PerformanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetRollNo sets the "roll_no" field.
func (u *PerformanceUpsertOne) SetRollNo(v string) *PerformanceUpsertOne {
	return u.Update(func(s *PerformanceUpsert) {
		s.SetRollNo(v)
	})
}

// UpdateRollNo sets the "roll_no" field to the value that was provided on create.
func (u *PerformanceUpsertOne) UpdateRollNo() *PerformanceUpsertOne {
	return u.Update(func(s *PerformanceUpsert) {
		s.UpdateRollNo()
	})
}

// SetTopicsExcellented sets the "topics_excellented" field.
func (u *PerformanceUpsertOne) SetTopicsExcellented(v string) *PerformanceUpsertOne {
	return u.Update(func(s *PerformanceUpsert) {
		s.SetTopicsExcellented(v)
	})
}

// UpdateTopicsExcellented sets the "topics_excellented" field to the value that was provided on create.
func (u *PerformanceUpsertOne) UpdateTopicsExcellented() *PerformanceUpsertOne {
	return u.Update(func(s *PerformanceUpsert) {
		s.UpdateTopicsExcellented()
	})
}

// SetOutcomeOfCourse sets the "outcome_of_course" field.
func (u *PerformanceUpsertOne) SetOutcomeOfCourse(v string) *PerformanceUpsertOne {
	return u.Update(func(s *PerformanceUpsert) {
		s.SetOutcomeOfCourse(v)
	})
}

// UpdateOutcomeOfCourse sets the "outcome_of_course" field to the value that was provided on create.
func (u *PerformanceUpsertOne) UpdateOutcomeOfCourse() *PerformanceUpsertOne {
	return u.Update(func(s *PerformanceUpsert) {
		s.UpdateOutcomeOfCourse()
	})
}

// SetStudentProgress sets the "student_progress" field.
func (u *PerformanceUpsertOne) SetStudentProgress(v string) *PerformanceUpsertOne {
	return u.Update(func(s *PerformanceUpsert) {
		s.SetStudentProgress(v)
	})
}

// UpdateStudentProgress sets the "student_progress" field to the value that was provided on create.
func (u *PerformanceUpsertOne) UpdateStudentProgress() *PerformanceUpsertOne {
	return u.Update(func(s *PerformanceUpsert) {
		s.UpdateStudentProgress()
	})
}

// SetLastUpdated sets the "last_updated" field.
func (u *PerformanceUpsertOne) SetLastUpdated(v time.Time) *PerformanceUpsertOne {
	return u.Update(func(s *PerformanceUpsert) {
		s.SetLastUpdated(v)
	})
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *PerformanceUpsertOne) UpdateLastUpdated() *PerformanceUpsertOne {
	return u.Update(func(s *PerformanceUpsert) {
		s.UpdateLastUpdated()
	})
}

// Exec executes the query.
func (u *PerformanceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PerformanceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PerformanceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PerformanceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PerformanceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PerformanceCreateBulk is the builder for creating many Performance entities in bulk.
type PerformanceCreateBulk struct {
	config
	err      error
	builders []*PerformanceCreate
	conflict []sql.ConflictOption
}

// Save creates the Performance entities in the database.
func (_c *PerformanceCreateBulk) Save(ctx context.Context) ([]*Performance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Performance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PerformanceMutation)
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
func (_c *PerformanceCreateBulk) SaveX(ctx context.Context) []*Performance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Performance.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PerformanceUpsert) {
//			SetRollNo(v+v).
//		}).
//		Exec(ctx)
func (_c *PerformanceCreateBulk) OnConflict(opts ...sql.ConflictOption) *PerformanceUpsertBulk {
	_c.conflict = opts
	return &PerformanceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Performance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PerformanceCreateBulk) OnConflictColumns(columns ...string) *PerformanceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PerformanceUpsertBulk{
		create: _c,
	}
}

// PerformanceUpsertBulk is the builder for "upsert"-ing
// a bulk of Performance nodes.
type PerformanceUpsertBulk struct {
	create *PerformanceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Performance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PerformanceUpsertBulk) UpdateNewValues() *PerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Performance.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PerformanceUpsertBulk) Ignore() *PerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PerformanceUpsertBulk) DoNothing() *PerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PerformanceCreateBulk.OnConflict
// documentation for more info.
func (u *PerformanceUpsertBulk) Update(set func(*PerformanceUpsert)) *PerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PerformanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetRollNo sets the "roll_no" field.
func (u *PerformanceUpsertBulk) SetRollNo(v string) *PerformanceUpsertBulk {
	return u.Update(func(s *PerformanceUpsert) {
		s.SetRollNo(v)
	})
}

// UpdateRollNo sets the "roll_no" field to the value that was provided on create.
func (u *PerformanceUpsertBulk) UpdateRollNo() *PerformanceUpsertBulk {
	return u.Update(func(s *PerformanceUpsert) {
		s.UpdateRollNo()
	})
}

// SetTopicsExcellented sets the "topics_excellented" field.
func (u *PerformanceUpsertBulk) SetTopicsExcellented(v string) *PerformanceUpsertBulk {
	return u.Update(func(s *PerformanceUpsert) {
		s.SetTopicsExcellented(v)
	})
}

// UpdateTopicsExcellented sets the "topics_excellented" field to the value that was provided on create.
func (u *PerformanceUpsertBulk) UpdateTopicsExcellented() *PerformanceUpsertBulk {
	return u.Update(func(s *PerformanceUpsert) {
		s.UpdateTopicsExcellented()
	})
}

// SetOutcomeOfCourse sets the "outcome_of_course" field.
func (u *PerformanceUpsertBulk) SetOutcomeOfCourse(v string) *PerformanceUpsertBulk {
	return u.Update(func(s *PerformanceUpsert) {
		s.SetOutcomeOfCourse(v)
	})
}

// UpdateOutcomeOfCourse sets the "outcome_of_course" field to the value that was provided on create.
func (u *PerformanceUpsertBulk) UpdateOutcomeOfCourse() *PerformanceUpsertBulk {
	return u.Update(func(s *PerformanceUpsert) {
		s.UpdateOutcomeOfCourse()
	})
}

// SetStudentProgress sets the "student_progress" field.
func (u *PerformanceUpsertBulk) SetStudentProgress(v string) *PerformanceUpsertBulk {
	return u.Update(func(s *PerformanceUpsert) {
		s.SetStudentProgress(v)
	})
}

// UpdateStudentProgress sets the "student_progress" field to the value that was provided on create.
func (u *PerformanceUpsertBulk) UpdateStudentProgress() *PerformanceUpsertBulk {
	return u.Update(func(s *PerformanceUpsert) {
		s.UpdateStudentProgress()
	})
}

// SetLastUpdated sets the "last_updated" field.
func (u *PerformanceUpsertBulk) SetLastUpdated(v time.Time) *PerformanceUpsertBulk {
	return u.Update(func(s *PerformanceUpsert) {
		s.SetLastUpdated(v)
	})
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *PerformanceUpsertBulk) UpdateLastUpdated() *PerformanceUpsertBulk {
	return u.Update(func(s *PerformanceUpsert) {
		s.UpdateLastUpdated()
	})
}

// Exec executes the query.
func (u *PerformanceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PerformanceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PerformanceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PerformanceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
