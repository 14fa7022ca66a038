// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/lessoncompletion"
)

// LessonCompletionCreate is the builder for creating a LessonCompletion entity.
type LessonCompletionCreate struct {
	config
	mutation *LessonCompletionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *LessonCompletionCreate) SetUserID(v string) *LessonCompletionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonCompletionCreate) SetLessonID(v string) *LessonCompletionCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *LessonCompletionCreate) SetTimeSpentSecs(v int) *LessonCompletionCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *LessonCompletionCreate) SetNillableTimeSpentSecs(v *int) *LessonCompletionCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// SetComprehensionScore sets the "comprehension_score" field.
func (_c *LessonCompletionCreate) SetComprehensionScore(v int) *LessonCompletionCreate {
	_c.mutation.SetComprehensionScore(v)
	return _c
}

// SetNillableComprehensionScore sets the "comprehension_score" field if the given value is not nil.
func (_c *LessonCompletionCreate) SetNillableComprehensionScore(v *int) *LessonCompletionCreate {
	if v != nil {
		_c.SetComprehensionScore(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LessonCompletionCreate) SetCompletedAt(v time.Time) *LessonCompletionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LessonCompletionCreate) SetNillableCompletedAt(v *time.Time) *LessonCompletionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LessonCompletionCreate) SetID(v string) *LessonCompletionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LessonCompletionMutation object of the builder.
func (_c *LessonCompletionCreate) Mutation() *LessonCompletionMutation {
	return _c.mutation
}

// Save creates the LessonCompletion in the database.
func (_c *LessonCompletionCreate) Save(ctx context.Context) (*LessonCompletion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCompletionCreate) SaveX(ctx context.Context) *LessonCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCompletionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCompletionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCompletionCreate) defaults() {
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := lessoncompletion.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := _c.mutation.ComprehensionScore(); !ok {
		v := lessoncompletion.DefaultComprehensionScore
		_c.mutation.SetComprehensionScore(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := lessoncompletion.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCompletionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LessonCompletion.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := lessoncompletion.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletion.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonCompletion.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := lessoncompletion.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletion.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "LessonCompletion.time_spent_secs"`)}
	}
	if _, ok := _c.mutation.ComprehensionScore(); !ok {
		return &ValidationError{Name: "comprehension_score", err: errors.New(`ent: missing required field "LessonCompletion.comprehension_score"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "LessonCompletion.completed_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := lessoncompletion.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletion.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LessonCompletionCreate) sqlSave(ctx context.Context) (*LessonCompletion, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LessonCompletion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonCompletionCreate) createSpec() (*LessonCompletion, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonCompletion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessoncompletion.Table, sqlgraph.NewFieldSpec(lessoncompletion.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(lessoncompletion.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessoncompletion.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(lessoncompletion.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.ComprehensionScore(); ok {
		_spec.SetField(lessoncompletion.FieldComprehensionScore, field.TypeInt, value)
		_node.ComprehensionScore = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(lessoncompletion.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonCompletion.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonCompletionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonCompletionCreate) OnConflict(opts ...sql.ConflictOption) *LessonCompletionUpsertOne {
	_c.conflict = opts
	return &LessonCompletionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonCompletion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonCompletionCreate) OnConflictColumns(columns ...string) *LessonCompletionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonCompletionUpsertOne{
		create: _c,
	}
}

type (
	// LessonCompletionUpsertOne is the builder for "upsert"-ing
	//  one LessonCompletion node.
	LessonCompletionUpsertOne struct {
		create *LessonCompletionCreate
	}

	// LessonCompletionUpsert is the "OnConflict" setter.
	LessonCompletionUpsert struct {
		*sql.UpdateSet
	}
)

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (u *LessonCompletionUpsert) SetTimeSpentSecs(v int) *LessonCompletionUpsert {
	u.Set(lessoncompletion.FieldTimeSpentSecs, v)
	return u
}

// UpdateTimeSpentSecs sets the "time_spent_secs" field to the value that was provided on create.
func (u *LessonCompletionUpsert) UpdateTimeSpentSecs() *LessonCompletionUpsert {
	u.SetExcluded(lessoncompletion.FieldTimeSpentSecs)
	return u
}

// AddTimeSpentSecs adds v to the "time_spent_secs" field.
func (u *LessonCompletionUpsert) AddTimeSpentSecs(v int) *LessonCompletionUpsert {
	u.Add(lessoncompletion.FieldTimeSpentSecs, v)
	return u
}

// SetComprehensionScore sets the "comprehension_score" field.
func (u *LessonCompletionUpsert) SetComprehensionScore(v int) *LessonCompletionUpsert {
	u.Set(lessoncompletion.FieldComprehensionScore, v)
	return u
}

// UpdateComprehensionScore sets the "comprehension_score" field to the value that was provided on create.
func (u *LessonCompletionUpsert) UpdateComprehensionScore() *LessonCompletionUpsert {
	u.SetExcluded(lessoncompletion.FieldComprehensionScore)
	return u
}

// AddComprehensionScore adds v to the "comprehension_score" field.
func (u *LessonCompletionUpsert) AddComprehensionScore(v int) *LessonCompletionUpsert {
	u.Add(lessoncompletion.FieldComprehensionScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LessonCompletion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lessoncompletion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LessonCompletionUpsertOne) UpdateNewValues() *LessonCompletionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lessoncompletion.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(lessoncompletion.FieldUserID)
		}
		if _, exists := u.create.mutation.LessonID(); exists {
			s.SetIgnore(lessoncompletion.FieldLessonID)
		}
		if _, exists := u.create.mutation.CompletedAt(); exists {
			s.SetIgnore(lessoncompletion.FieldCompletedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonCompletion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonCompletionUpsertOne) Ignore() *LessonCompletionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonCompletionUpsertOne) DoNothing() *LessonCompletionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonCompletionCreate.OnConflict
// documentation for more info.
func (u *LessonCompletionUpsertOne) Update(set func(*LessonCompletionUpsert)) *LessonCompletionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonCompletionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (u *LessonCompletionUpsertOne) SetTimeSpentSecs(v int) *LessonCompletionUpsertOne {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.SetTimeSpentSecs(v)
	})
}

// AddTimeSpentSecs adds v to the "time_spent_secs" field.
func (u *LessonCompletionUpsertOne) AddTimeSpentSecs(v int) *LessonCompletionUpsertOne {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.AddTimeSpentSecs(v)
	})
}

// UpdateTimeSpentSecs sets the "time_spent_secs" field to the value that was provided on create.
func (u *LessonCompletionUpsertOne) UpdateTimeSpentSecs() *LessonCompletionUpsertOne {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.UpdateTimeSpentSecs()
	})
}

// SetComprehensionScore sets the "comprehension_score" field.
func (u *LessonCompletionUpsertOne) SetComprehensionScore(v int) *LessonCompletionUpsertOne {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.SetComprehensionScore(v)
	})
}

// AddComprehensionScore adds v to the "comprehension_score" field.
func (u *LessonCompletionUpsertOne) AddComprehensionScore(v int) *LessonCompletionUpsertOne {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.AddComprehensionScore(v)
	})
}

// UpdateComprehensionScore sets the "comprehension_score" field to the value that was provided on create.
func (u *LessonCompletionUpsertOne) UpdateComprehensionScore() *LessonCompletionUpsertOne {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.UpdateComprehensionScore()
	})
}

// Exec executes the query.
func (u *LessonCompletionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonCompletionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonCompletionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonCompletionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LessonCompletionUpsertOne.ID is not supported by MySQL driver. Use LessonCompletionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonCompletionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonCompletionCreateBulk is the builder for creating many LessonCompletion entities in bulk.
type LessonCompletionCreateBulk struct {
	config
	err      error
	builders []*LessonCompletionCreate
	conflict []sql.ConflictOption
}

// Save creates the LessonCompletion entities in the database.
func (_c *LessonCompletionCreateBulk) Save(ctx context.Context) ([]*LessonCompletion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonCompletion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonCompletionMutation)
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
func (_c *LessonCompletionCreateBulk) SaveX(ctx context.Context) []*LessonCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCompletionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCompletionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonCompletion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonCompletionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonCompletionCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonCompletionUpsertBulk {
	_c.conflict = opts
	return &LessonCompletionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonCompletion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonCompletionCreateBulk) OnConflictColumns(columns ...string) *LessonCompletionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonCompletionUpsertBulk{
		create: _c,
	}
}

// LessonCompletionUpsertBulk is the builder for "upsert"-ing
// a bulk of LessonCompletion nodes.
type LessonCompletionUpsertBulk struct {
	create *LessonCompletionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LessonCompletion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lessoncompletion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LessonCompletionUpsertBulk) UpdateNewValues() *LessonCompletionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lessoncompletion.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(lessoncompletion.FieldUserID)
			}
			if _, exists := b.mutation.LessonID(); exists {
				s.SetIgnore(lessoncompletion.FieldLessonID)
			}
			if _, exists := b.mutation.CompletedAt(); exists {
				s.SetIgnore(lessoncompletion.FieldCompletedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonCompletion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonCompletionUpsertBulk) Ignore() *LessonCompletionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonCompletionUpsertBulk) DoNothing() *LessonCompletionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonCompletionCreateBulk.OnConflict
// documentation for more info.
func (u *LessonCompletionUpsertBulk) Update(set func(*LessonCompletionUpsert)) *LessonCompletionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonCompletionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (u *LessonCompletionUpsertBulk) SetTimeSpentSecs(v int) *LessonCompletionUpsertBulk {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.SetTimeSpentSecs(v)
	})
}

// AddTimeSpentSecs adds v to the "time_spent_secs" field.
func (u *LessonCompletionUpsertBulk) AddTimeSpentSecs(v int) *LessonCompletionUpsertBulk {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.AddTimeSpentSecs(v)
	})
}

// UpdateTimeSpentSecs sets the "time_spent_secs" field to the value that was provided on create.
func (u *LessonCompletionUpsertBulk) UpdateTimeSpentSecs() *LessonCompletionUpsertBulk {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.UpdateTimeSpentSecs()
	})
}

// SetComprehensionScore sets the "comprehension_score" field.
func (u *LessonCompletionUpsertBulk) SetComprehensionScore(v int) *LessonCompletionUpsertBulk {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.SetComprehensionScore(v)
	})
}

// AddComprehensionScore adds v to the "comprehension_score" field.
func (u *LessonCompletionUpsertBulk) AddComprehensionScore(v int) *LessonCompletionUpsertBulk {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.AddComprehensionScore(v)
	})
}

// UpdateComprehensionScore sets the "comprehension_score" field to the value that was provided on create.
func (u *LessonCompletionUpsertBulk) UpdateComprehensionScore() *LessonCompletionUpsertBulk {
	return u.Update(func(s *LessonCompletionUpsert) {
		s.UpdateComprehensionScore()
	})
}

// Exec executes the query.
func (u *LessonCompletionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonCompletionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonCompletionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonCompletionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
