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
	"github.com/abhisek/studyflow/ent/weekquiz"
)

// WeekQuizCreate is the builder for creating a WeekQuiz entity.
type WeekQuizCreate struct {
	config
	mutation *WeekQuizMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRollNo sets the "roll_no" field.
func (_c *WeekQuizCreate) SetRollNo(v string) *WeekQuizCreate {
	_c.mutation.SetRollNo(v)
	return _c
}

// SetWeekNo sets the "week_no" field.
func (_c *WeekQuizCreate) SetWeekNo(v int) *WeekQuizCreate {
	_c.mutation.SetWeekNo(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *WeekQuizCreate) SetScore(v int) *WeekQuizCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *WeekQuizCreate) SetNillableScore(v *int) *WeekQuizCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetIq sets the "iq" field.
func (_c *WeekQuizCreate) SetIq(v int) *WeekQuizCreate {
	_c.mutation.SetIq(v)
	return _c
}

// SetNillableIq sets the "iq" field if the given value is not nil.
func (_c *WeekQuizCreate) SetNillableIq(v *int) *WeekQuizCreate {
	if v != nil {
		_c.SetIq(*v)
	}
	return _c
}

// SetStrongAreas sets the "strong_areas" field.
func (_c *WeekQuizCreate) SetStrongAreas(v string) *WeekQuizCreate {
	_c.mutation.SetStrongAreas(v)
	return _c
}

// SetNillableStrongAreas sets the "strong_areas" field if the given value is not nil.
func (_c *WeekQuizCreate) SetNillableStrongAreas(v *string) *WeekQuizCreate {
	if v != nil {
		_c.SetStrongAreas(*v)
	}
	return _c
}

// SetWeakAreas sets the "weak_areas" field.
func (_c *WeekQuizCreate) SetWeakAreas(v string) *WeekQuizCreate {
	_c.mutation.SetWeakAreas(v)
	return _c
}

// SetNillableWeakAreas sets the "weak_areas" field if the given value is not nil.
func (_c *WeekQuizCreate) SetNillableWeakAreas(v *string) *WeekQuizCreate {
	if v != nil {
		_c.SetWeakAreas(*v)
	}
	return _c
}

// SetAnalysis sets the "analysis" field.
func (_c *WeekQuizCreate) SetAnalysis(v string) *WeekQuizCreate {
	_c.mutation.SetAnalysis(v)
	return _c
}

// SetNillableAnalysis sets the "analysis" field if the given value is not nil.
func (_c *WeekQuizCreate) SetNillableAnalysis(v *string) *WeekQuizCreate {
	if v != nil {
		_c.SetAnalysis(*v)
	}
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *WeekQuizCreate) SetTakenAt(v time.Time) *WeekQuizCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *WeekQuizCreate) SetNillableTakenAt(v *time.Time) *WeekQuizCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// Mutation returns the WeekQuizMutation object of the builder.
func (_c *WeekQuizCreate) Mutation() *WeekQuizMutation {
	return _c.mutation
}

// Save creates the WeekQuiz in the database.
func (_c *WeekQuizCreate) Save(ctx context.Context) (*WeekQuiz, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeekQuizCreate) SaveX(ctx context.Context) *WeekQuiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeekQuizCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeekQuizCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeekQuizCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := weekquiz.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Iq(); !ok {
		v := weekquiz.DefaultIq
		_c.mutation.SetIq(v)
	}
	if _, ok := _c.mutation.StrongAreas(); !ok {
		v := weekquiz.DefaultStrongAreas
		_c.mutation.SetStrongAreas(v)
	}
	if _, ok := _c.mutation.WeakAreas(); !ok {
		v := weekquiz.DefaultWeakAreas
		_c.mutation.SetWeakAreas(v)
	}
	if _, ok := _c.mutation.Analysis(); !ok {
		v := weekquiz.DefaultAnalysis
		_c.mutation.SetAnalysis(v)
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := weekquiz.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeekQuizCreate) check() error {
	if _, ok := _c.mutation.RollNo(); !ok {
		return &ValidationError{Name: "roll_no", err: errors.New(`ent: missing required field "WeekQuiz.roll_no"`)}
	}
	if v, ok := _c.mutation.RollNo(); ok {
		if err := weekquiz.RollNoValidator(v); err != nil {
			return &ValidationError{Name: "roll_no", err: fmt.Errorf(`ent: validator failed for field "WeekQuiz.roll_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeekNo(); !ok {
		return &ValidationError{Name: "week_no", err: errors.New(`ent: missing required field "WeekQuiz.week_no"`)}
	}
	if v, ok := _c.mutation.WeekNo(); ok {
		if err := weekquiz.WeekNoValidator(v); err != nil {
			return &ValidationError{Name: "week_no", err: fmt.Errorf(`ent: validator failed for field "WeekQuiz.week_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "WeekQuiz.score"`)}
	}
	if _, ok := _c.mutation.Iq(); !ok {
		return &ValidationError{Name: "iq", err: errors.New(`ent: missing required field "WeekQuiz.iq"`)}
	}
	if _, ok := _c.mutation.StrongAreas(); !ok {
		return &ValidationError{Name: "strong_areas", err: errors.New(`ent: missing required field "WeekQuiz.strong_areas"`)}
	}
	if _, ok := _c.mutation.WeakAreas(); !ok {
		return &ValidationError{Name: "weak_areas", err: errors.New(`ent: missing required field "WeekQuiz.weak_areas"`)}
	}
	if _, ok := _c.mutation.Analysis(); !ok {
		return &ValidationError{Name: "analysis", err: errors.New(`ent: missing required field "WeekQuiz.analysis"`)}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "WeekQuiz.taken_at"`)}
	}
	return nil
}

func (_c *WeekQuizCreate) sqlSave(ctx context.Context) (*WeekQuiz, error) {
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

func (_c *WeekQuizCreate) createSpec() (*WeekQuiz, *sqlgraph.CreateSpec) {
	var (
		_node = &WeekQuiz{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weekquiz.Table, sqlgraph.NewFieldSpec(weekquiz.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.RollNo(); ok {
		_spec.SetField(weekquiz.FieldRollNo, field.TypeString, value)
		_node.RollNo = value
	}
	if value, ok := _c.mutation.WeekNo(); ok {
		_spec.SetField(weekquiz.FieldWeekNo, field.TypeInt, value)
		_node.WeekNo = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(weekquiz.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Iq(); ok {
		_spec.SetField(weekquiz.FieldIq, field.TypeInt, value)
		_node.Iq = value
	}
	if value, ok := _c.mutation.StrongAreas(); ok {
		_spec.SetField(weekquiz.FieldStrongAreas, field.TypeString, value)
		_node.StrongAreas = value
	}
	if value, ok := _c.mutation.WeakAreas(); ok {
		_spec.SetField(weekquiz.FieldWeakAreas, field.TypeString, value)
		_node.WeakAreas = value
	}
	if value, ok := _c.mutation.Analysis(); ok {
		_spec.SetField(weekquiz.FieldAnalysis, field.TypeString, value)
		_node.Analysis = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(weekquiz.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WeekQuiz.Create().
//		SetRollNo(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WeekQuizUpsert) {
//			SetRollNo(v+v).
//		}).
//		Exec(ctx)
func (_c *WeekQuizCreate) OnConflict(opts ...sql.ConflictOption) *WeekQuizUpsertOne {
	_c.conflict = opts
	return &WeekQuizUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WeekQuiz.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WeekQuizCreate) OnConflictColumns(columns ...string) *WeekQuizUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WeekQuizUpsertOne{
		create: _c,
	}
}

type (
	// WeekQuizUpsertOne is the builder for "upsert"-ing
	//  one WeekQuiz node.
	WeekQuizUpsertOne struct {
		create *WeekQuizCreate
	}

	// WeekQuizUpsert is the "OnConflict" setter.
	WeekQuizUpsert struct {
		*sql.UpdateSet
	}
)

// SetRollNo sets the "roll_no" field.
func (u *WeekQuizUpsert) SetRollNo(v string) *WeekQuizUpsert {
	u.Set(weekquiz.FieldRollNo, v)
	return u
}

// UpdateRollNo sets the "roll_no" field to the value that was provided on create.
func (u *WeekQuizUpsert) UpdateRollNo() *WeekQuizUpsert {
	u.SetExcluded(weekquiz.FieldRollNo)
	return u
}

// SetWeekNo sets the "week_no" field.
func (u *WeekQuizUpsert) SetWeekNo(v int) *WeekQuizUpsert {
	u.Set(weekquiz.FieldWeekNo, v)
	return u
}

// UpdateWeekNo sets the "week_no" field to the value that was provided on create.
func (u *WeekQuizUpsert) UpdateWeekNo() *WeekQuizUpsert {
	u.SetExcluded(weekquiz.FieldWeekNo)
	return u
}

// AddWeekNo adds v to the "week_no" field.
func (u *WeekQuizUpsert) AddWeekNo(v int) *WeekQuizUpsert {
	u.Add(weekquiz.FieldWeekNo, v)
	return u
}

// SetScore sets the "score" field.
func (u *WeekQuizUpsert) SetScore(v int) *WeekQuizUpsert {
	u.Set(weekquiz.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *WeekQuizUpsert) UpdateScore() *WeekQuizUpsert {
	u.SetExcluded(weekquiz.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *WeekQuizUpsert) AddScore(v int) *WeekQuizUpsert {
	u.Add(weekquiz.FieldScore, v)
	return u
}

// SetIq sets the "iq" field.
func (u *WeekQuizUpsert) SetIq(v int) *WeekQuizUpsert {
	u.Set(weekquiz.FieldIq, v)
	return u
}

// UpdateIq sets the "iq" field to the value that was provided on create.
func (u *WeekQuizUpsert) UpdateIq() *WeekQuizUpsert {
	u.SetExcluded(weekquiz.FieldIq)
	return u
}

// AddIq adds v to the "iq" field.
func (u *WeekQuizUpsert) AddIq(v int) *WeekQuizUpsert {
	u.Add(weekquiz.FieldIq, v)
	return u
}

// SetStrongAreas sets the "strong_areas" field.
func (u *WeekQuizUpsert) SetStrongAreas(v string) *WeekQuizUpsert {
	u.Set(weekquiz.FieldStrongAreas, v)
	return u
}

// UpdateStrongAreas sets the "strong_areas" field to the value that was provided on create.
func (u *WeekQuizUpsert) UpdateStrongAreas() *WeekQuizUpsert {
	u.SetExcluded(weekquiz.FieldStrongAreas)
	return u
}

// SetWeakAreas sets the "weak_areas" field.
func (u *WeekQuizUpsert) SetWeakAreas(v string) *WeekQuizUpsert {
	u.Set(weekquiz.FieldWeakAreas, v)
	return u
}

// UpdateWeakAreas sets the "weak_areas" field to the value that was provided on create.
func (u *WeekQuizUpsert) UpdateWeakAreas() *WeekQuizUpsert {
	u.SetExcluded(weekquiz.FieldWeakAreas)
	return u
}

// SetAnalysis sets the "analysis" field.
func (u *WeekQuizUpsert) SetAnalysis(v string) *WeekQuizUpsert {
	u.Set(weekquiz.FieldAnalysis, v)
	return u
}

// UpdateAnalysis sets the "analysis" field to the value that was provided on create.
func (u *WeekQuizUpsert) UpdateAnalysis() *WeekQuizUpsert {
	u.SetExcluded(weekquiz.FieldAnalysis)
	return u
}

// SetTakenAt sets the "taken_at" field.
func (u *WeekQuizUpsert) SetTakenAt(v time.Time) *WeekQuizUpsert {
	u.Set(weekquiz.FieldTakenAt, v)
	return u
}

// UpdateTakenAt sets the "taken_at" field to the value that was provided on create.
func (u *WeekQuizUpsert) UpdateTakenAt() *WeekQuizUpsert {
	u.SetExcluded(weekquiz.FieldTakenAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.WeekQuiz.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WeekQuizUpsertOne) UpdateNewValues() *WeekQuizUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WeekQuiz.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WeekQuizUpsertOne) Ignore() *WeekQuizUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WeekQuizUpsertOne) DoNothing() *WeekQuizUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WeekQuizCreate.OnConflict
// documentation for more info.
func (u *WeekQuizUpsertOne) Update(set func(*WeekQuizUpsert)) *WeekQuizUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WeekQuizUpsert{UpdateSet: update})
	}))
	return u
}

// SetRollNo sets the "roll_no" field.
func (u *WeekQuizUpsertOne) SetRollNo(v string) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetRollNo(v)
	})
}

// UpdateRollNo sets the "roll_no" field to the value that was provided on create.
func (u *WeekQuizUpsertOne) UpdateRollNo() *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateRollNo()
	})
}

// SetWeekNo sets the "week_no" field.
func (u *WeekQuizUpsertOne) SetWeekNo(v int) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetWeekNo(v)
	})
}

// AddWeekNo adds v to the "week_no" field.
func (u *WeekQuizUpsertOne) AddWeekNo(v int) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.AddWeekNo(v)
	})
}

// UpdateWeekNo sets the "week_no" field to the value that was provided on create.
func (u *WeekQuizUpsertOne) UpdateWeekNo() *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateWeekNo()
	})
}

// SetScore sets the "score" field.
func (u *WeekQuizUpsertOne) SetScore(v int) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *WeekQuizUpsertOne) AddScore(v int) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *WeekQuizUpsertOne) UpdateScore() *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateScore()
	})
}

// SetIq sets the "iq" field.
func (u *WeekQuizUpsertOne) SetIq(v int) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetIq(v)
	})
}

// AddIq adds v to the "iq" field.
func (u *WeekQuizUpsertOne) AddIq(v int) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.AddIq(v)
	})
}

// UpdateIq sets the "iq" field to the value that was provided on create.
func (u *WeekQuizUpsertOne) UpdateIq() *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateIq()
	})
}

// SetStrongAreas sets the "strong_areas" field.
func (u *WeekQuizUpsertOne) SetStrongAreas(v string) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetStrongAreas(v)
	})
}

// UpdateStrongAreas sets the "strong_areas" field to the value that was provided on create.
func (u *WeekQuizUpsertOne) UpdateStrongAreas() *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateStrongAreas()
	})
}

// SetWeakAreas sets the "weak_areas" field.
func (u *WeekQuizUpsertOne) SetWeakAreas(v string) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetWeakAreas(v)
	})
}

// UpdateWeakAreas sets the "weak_areas" field to the value that was provided on create.
func (u *WeekQuizUpsertOne) UpdateWeakAreas() *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateWeakAreas()
	})
}

// SetAnalysis sets the "analysis" field.
func (u *WeekQuizUpsertOne) SetAnalysis(v string) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetAnalysis(v)
	})
}

// UpdateAnalysis sets the "analysis" field to the value that was provided on create.
func (u *WeekQuizUpsertOne) UpdateAnalysis() *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateAnalysis()
	})
}

// SetTakenAt sets the "taken_at" field.
func (u *WeekQuizUpsertOne) SetTakenAt(v time.Time) *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetTakenAt(v)
	})
}

// UpdateTakenAt sets the "taken_at" field to the value that was provided on create.
func (u *WeekQuizUpsertOne) UpdateTakenAt() *WeekQuizUpsertOne {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateTakenAt()
	})
}

// Exec executes the query.
func (u *WeekQuizUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WeekQuizCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WeekQuizUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WeekQuizUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WeekQuizUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WeekQuizCreateBulk is the builder for creating many WeekQuiz entities in bulk.
type WeekQuizCreateBulk struct {
	config
	err      error
	builders []*WeekQuizCreate
	conflict []sql.ConflictOption
}

// Save creates the WeekQuiz entities in the database.
func (_c *WeekQuizCreateBulk) Save(ctx context.Context) ([]*WeekQuiz, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeekQuiz, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeekQuizMutation)
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
func (_c *WeekQuizCreateBulk) SaveX(ctx context.Context) []*WeekQuiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeekQuizCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeekQuizCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WeekQuiz.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WeekQuizUpsert) {
//			SetRollNo(v+v).
//		}).
//		Exec(ctx)
func (_c *WeekQuizCreateBulk) OnConflict(opts ...sql.ConflictOption) *WeekQuizUpsertBulk {
	_c.conflict = opts
	return &WeekQuizUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WeekQuiz.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WeekQuizCreateBulk) OnConflictColumns(columns ...string) *WeekQuizUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WeekQuizUpsertBulk{
		create: _c,
	}
}

// WeekQuizUpsertBulk is the builder for "upsert"-ing
// a bulk of WeekQuiz nodes.
type WeekQuizUpsertBulk struct {
	create *WeekQuizCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WeekQuiz.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WeekQuizUpsertBulk) UpdateNewValues() *WeekQuizUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WeekQuiz.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WeekQuizUpsertBulk) Ignore() *WeekQuizUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WeekQuizUpsertBulk) DoNothing() *WeekQuizUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WeekQuizCreateBulk.OnConflict
// documentation for more info.
func (u *WeekQuizUpsertBulk) Update(set func(*WeekQuizUpsert)) *WeekQuizUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WeekQuizUpsert{UpdateSet: update})
	}))
	return u
}

// SetRollNo sets the "roll_no" field.
func (u *WeekQuizUpsertBulk) SetRollNo(v string) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetRollNo(v)
	})
}

// UpdateRollNo sets the "roll_no" field to the value that was provided on create.
func (u *WeekQuizUpsertBulk) UpdateRollNo() *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateRollNo()
	})
}

// SetWeekNo sets the "week_no" field.
func (u *WeekQuizUpsertBulk) SetWeekNo(v int) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetWeekNo(v)
	})
}

// AddWeekNo adds v to the "week_no" field.
func (u *WeekQuizUpsertBulk) AddWeekNo(v int) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.AddWeekNo(v)
	})
}

// UpdateWeekNo sets the "week_no" field to the value that was provided on create.
func (u *WeekQuizUpsertBulk) UpdateWeekNo() *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateWeekNo()
	})
}

// SetScore sets the "score" field.
func (u *WeekQuizUpsertBulk) SetScore(v int) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *WeekQuizUpsertBulk) AddScore(v int) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *WeekQuizUpsertBulk) UpdateScore() *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateScore()
	})
}

// SetIq sets the "iq" field.
func (u *WeekQuizUpsertBulk) SetIq(v int) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetIq(v)
	})
}

// AddIq adds v to the "iq" field.
func (u *WeekQuizUpsertBulk) AddIq(v int) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.AddIq(v)
	})
}

// UpdateIq sets the "iq" field to the value that was provided on create.
func (u *WeekQuizUpsertBulk) UpdateIq() *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateIq()
	})
}

// SetStrongAreas sets the "strong_areas" field.
func (u *WeekQuizUpsertBulk) SetStrongAreas(v string) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetStrongAreas(v)
	})
}

// UpdateStrongAreas sets the "strong_areas" field to the value that was provided on create.
func (u *WeekQuizUpsertBulk) UpdateStrongAreas() *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateStrongAreas()
	})
}

// SetWeakAreas sets the "weak_areas" field.
func (u *WeekQuizUpsertBulk) SetWeakAreas(v string) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetWeakAreas(v)
	})
}

// UpdateWeakAreas sets the "weak_areas" field to the value that was provided on create.
func (u *WeekQuizUpsertBulk) UpdateWeakAreas() *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateWeakAreas()
	})
}

// SetAnalysis sets the "analysis" field.
func (u *WeekQuizUpsertBulk) SetAnalysis(v string) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetAnalysis(v)
	})
}

// UpdateAnalysis sets the "analysis" field to the value that was provided on create.
func (u *WeekQuizUpsertBulk) UpdateAnalysis() *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateAnalysis()
	})
}

// SetTakenAt sets the "taken_at" field.
func (u *WeekQuizUpsertBulk) SetTakenAt(v time.Time) *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.SetTakenAt(v)
	})
}

// UpdateTakenAt sets the "taken_at" field to the value that was provided on create.
func (u *WeekQuizUpsertBulk) UpdateTakenAt() *WeekQuizUpsertBulk {
	return u.Update(func(s *WeekQuizUpsert) {
		s.UpdateTakenAt()
	})
}

// Exec executes the query.
func (u *WeekQuizUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WeekQuizCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WeekQuizCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WeekQuizUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
