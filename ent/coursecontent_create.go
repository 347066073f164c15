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
)

// CourseContentCreate is the builder for creating a CourseContent entity.
type CourseContentCreate struct {
	config
	mutation *CourseContentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRollNo sets the "roll_no" field.
func (_c *CourseContentCreate) SetRollNo(v string) *CourseContentCreate {
	_c.mutation.SetRollNo(v)
	return _c
}

// SetWeekNo sets the "week_no" field.
func (_c *CourseContentCreate) SetWeekNo(v int) *CourseContentCreate {
	_c.mutation.SetWeekNo(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *CourseContentCreate) SetBody(v string) *CourseContentCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CourseContentCreate) SetCreatedAt(v time.Time) *CourseContentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CourseContentCreate) SetNillableCreatedAt(v *time.Time) *CourseContentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CourseContentMutation object of the builder.
func (_c *CourseContentCreate) Mutation() *CourseContentMutation {
	return _c.mutation
}

// Save creates the CourseContent in the database.
func (_c *CourseContentCreate) Save(ctx context.Context) (*CourseContent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseContentCreate) SaveX(ctx context.Context) *CourseContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseContentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := coursecontent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseContentCreate) check() error {
	if _, ok := _c.mutation.RollNo(); !ok {
		return &ValidationError{Name: "roll_no", err: errors.New(`ent: missing required field "CourseContent.roll_no"`)}
	}
	if v, ok := _c.mutation.RollNo(); ok {
		if err := coursecontent.RollNoValidator(v); err != nil {
			return &ValidationError{Name: "roll_no", err: fmt.Errorf(`ent: validator failed for field "CourseContent.roll_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeekNo(); !ok {
		return &ValidationError{Name: "week_no", err: errors.New(`ent: missing required field "CourseContent.week_no"`)}
	}
	if v, ok := _c.mutation.WeekNo(); ok {
		if err := coursecontent.WeekNoValidator(v); err != nil {
			return &ValidationError{Name: "week_no", err: fmt.Errorf(`ent: validator failed for field "CourseContent.week_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "CourseContent.body"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CourseContent.created_at"`)}
	}
	return nil
}

func (_c *CourseContentCreate) sqlSave(ctx context.Context) (*CourseContent, error) {
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

func (_c *CourseContentCreate) createSpec() (*CourseContent, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coursecontent.Table, sqlgraph.NewFieldSpec(coursecontent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.RollNo(); ok {
		_spec.SetField(coursecontent.FieldRollNo, field.TypeString, value)
		_node.RollNo = value
	}
	if value, ok := _c.mutation.WeekNo(); ok {
		_spec.SetField(coursecontent.FieldWeekNo, field.TypeInt, value)
		_node.WeekNo = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(coursecontent.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(coursecontent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CourseContent.Create().
//		SetRollNo(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseContentUpsert) {
//			SetRollNo(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseContentCreate) OnConflict(opts ...sql.ConflictOption) *CourseContentUpsertOne {
	_c.conflict = opts
	return &CourseContentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CourseContent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseContentCreate) OnConflictColumns(columns ...string) *CourseContentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseContentUpsertOne{
		create: _c,
	}
}

type (
	// CourseContentUpsertOne is the builder for "upsert"-ing
	//  one CourseContent node.
	CourseContentUpsertOne struct {
		create *CourseContentCreate
	}

	// CourseContentUpsert is the "OnConflict" setter.
	CourseContentUpsert struct {
		*sql.UpdateSet
	}
)

// SetRollNo sets the "roll_no" field.
func (u *CourseContentUpsert) SetRollNo(v string) *CourseContentUpsert {
	u.Set(coursecontent.FieldRollNo, v)
	return u
}

// UpdateRollNo sets the "roll_no" field to the value that was provided on create.
func (u *CourseContentUpsert) UpdateRollNo() *CourseContentUpsert {
	u.SetExcluded(coursecontent.FieldRollNo)
	return u
}

// SetWeekNo sets the "week_no" field.
func (u *CourseContentUpsert) SetWeekNo(v int) *CourseContentUpsert {
	u.Set(coursecontent.FieldWeekNo, v)
	return u
}

// UpdateWeekNo sets the "week_no" field to the value that was provided on create.
func (u *CourseContentUpsert) UpdateWeekNo() *CourseContentUpsert {
	u.SetExcluded(coursecontent.FieldWeekNo)
	return u
}

// AddWeekNo adds v to the "week_no" field.
func (u *CourseContentUpsert) AddWeekNo(v int) *CourseContentUpsert {
	u.Add(coursecontent.FieldWeekNo, v)
	return u
}

// SetBody sets the "body" field.
func (u *CourseContentUpsert) SetBody(v string) *CourseContentUpsert {
	u.Set(coursecontent.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *CourseContentUpsert) UpdateBody() *CourseContentUpsert {
	u.SetExcluded(coursecontent.FieldBody)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *CourseContentUpsert) SetCreatedAt(v time.Time) *CourseContentUpsert {
	u.Set(coursecontent.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CourseContentUpsert) UpdateCreatedAt() *CourseContentUpsert {
	u.SetExcluded(coursecontent.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CourseContent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CourseContentUpsertOne) UpdateNewValues() *CourseContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CourseContent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CourseContentUpsertOne) Ignore() *CourseContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseContentUpsertOne) DoNothing() *CourseContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseContentCreate.OnConflict
// documentation for more info.
func (u *CourseContentUpsertOne) Update(set func(*CourseContentUpsert)) *CourseContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseContentUpsert{UpdateSet: update})
	}))
	return u
}

// SetRollNo sets the "roll_no" field.
func (u *CourseContentUpsertOne) SetRollNo(v string) *CourseContentUpsertOne {
	return u.Update(func(s *CourseContentUpsert) {
		s.SetRollNo(v)
	})
}

// UpdateRollNo sets the "roll_no" field to the value that was provided on create.
func (u *CourseContentUpsertOne) UpdateRollNo() *CourseContentUpsertOne {
	return u.Update(func(s *CourseContentUpsert) {
		s.UpdateRollNo()
	})
}

// SetWeekNo sets the "week_no" field.
func (u *CourseContentUpsertOne) SetWeekNo(v int) *CourseContentUpsertOne {
	return u.Update(func(s *CourseContentUpsert) {
		s.SetWeekNo(v)
	})
}

// AddWeekNo adds v to the "week_no" field.
func (u *CourseContentUpsertOne) AddWeekNo(v int) *CourseContentUpsertOne {
	return u.Update(func(s *CourseContentUpsert) {
		s.AddWeekNo(v)
	})
}

// UpdateWeekNo sets the "week_no" field to the value that was provided on create.
func (u *CourseContentUpsertOne) UpdateWeekNo() *CourseContentUpsertOne {
	return u.Update(func(s *CourseContentUpsert) {
		s.UpdateWeekNo()
	})
}

// SetBody sets the "body" field.
func (u *CourseContentUpsertOne) SetBody(v string) *CourseContentUpsertOne {
	return u.Update(func(s *CourseContentUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *CourseContentUpsertOne) UpdateBody() *CourseContentUpsertOne {
	return u.Update(func(s *CourseContentUpsert) {
		s.UpdateBody()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CourseContentUpsertOne) SetCreatedAt(v time.Time) *CourseContentUpsertOne {
	return u.Update(func(s *CourseContentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CourseContentUpsertOne) UpdateCreatedAt() *CourseContentUpsertOne {
	return u.Update(func(s *CourseContentUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *CourseContentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseContentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseContentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CourseContentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CourseContentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CourseContentCreateBulk is the builder for creating many CourseContent entities in bulk.
type CourseContentCreateBulk struct {
	config
	err      error
	builders []*CourseContentCreate
	conflict []sql.ConflictOption
}

// Save creates the CourseContent entities in the database.
func (_c *CourseContentCreateBulk) Save(ctx context.Context) ([]*CourseContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseContentMutation)
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
func (_c *CourseContentCreateBulk) SaveX(ctx context.Context) []*CourseContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CourseContent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CourseContentUpsert) {
//			SetRollNo(v+v).
//		}).
//		Exec(ctx)
func (_c *CourseContentCreateBulk) OnConflict(opts ...sql.ConflictOption) *CourseContentUpsertBulk {
	_c.conflict = opts
	return &CourseContentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CourseContent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CourseContentCreateBulk) OnConflictColumns(columns ...string) *CourseContentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CourseContentUpsertBulk{
		create: _c,
	}
}

// CourseContentUpsertBulk is the builder for "upsert"-ing
// a bulk of CourseContent nodes.
type CourseContentUpsertBulk struct {
	create *CourseContentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CourseContent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CourseContentUpsertBulk) UpdateNewValues() *CourseContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CourseContent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CourseContentUpsertBulk) Ignore() *CourseContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CourseContentUpsertBulk) DoNothing() *CourseContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CourseContentCreateBulk.OnConflict
// documentation for more info.
func (u *CourseContentUpsertBulk) Update(set func(*CourseContentUpsert)) *CourseContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CourseContentUpsert{UpdateSet: update})
	}))
	return u
}

// SetRollNo sets the "roll_no" field.
func (u *CourseContentUpsertBulk) SetRollNo(v string) *CourseContentUpsertBulk {
	return u.Update(func(s *CourseContentUpsert) {
		s.SetRollNo(v)
	})
}

// UpdateRollNo sets the "roll_no" field to the value that was provided on create.
func (u *CourseContentUpsertBulk) UpdateRollNo() *CourseContentUpsertBulk {
	return u.Update(func(s *CourseContentUpsert) {
		s.UpdateRollNo()
	})
}

// SetWeekNo sets the "week_no" field.
func (u *CourseContentUpsertBulk) SetWeekNo(v int) *CourseContentUpsertBulk {
	return u.Update(func(s *CourseContentUpsert) {
		s.SetWeekNo(v)
	})
}

// AddWeekNo adds v to the "week_no" field.
func (u *CourseContentUpsertBulk) AddWeekNo(v int) *CourseContentUpsertBulk {
	return u.Update(func(s *CourseContentUpsert) {
		s.AddWeekNo(v)
	})
}

// UpdateWeekNo sets the "week_no" field to the value that was provided on create.
func (u *CourseContentUpsertBulk) UpdateWeekNo() *CourseContentUpsertBulk {
	return u.Update(func(s *CourseContentUpsert) {
		s.UpdateWeekNo()
	})
}

// SetBody sets the "body" field.
func (u *CourseContentUpsertBulk) SetBody(v string) *CourseContentUpsertBulk {
	return u.Update(func(s *CourseContentUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *CourseContentUpsertBulk) UpdateBody() *CourseContentUpsertBulk {
	return u.Update(func(s *CourseContentUpsert) {
		s.UpdateBody()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CourseContentUpsertBulk) SetCreatedAt(v time.Time) *CourseContentUpsertBulk {
	return u.Update(func(s *CourseContentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CourseContentUpsertBulk) UpdateCreatedAt() *CourseContentUpsertBulk {
	return u.Update(func(s *CourseContentUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *CourseContentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CourseContentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CourseContentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CourseContentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
