// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/exerciseattempt"
)

// ExerciseAttemptCreate is the builder for creating a ExerciseAttempt entity.
type ExerciseAttemptCreate struct {
	config
	mutation *ExerciseAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ExerciseAttemptCreate) SetUserID(v string) *ExerciseAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExerciseID sets the "exercise_id" field.
func (_c *ExerciseAttemptCreate) SetExerciseID(v string) *ExerciseAttemptCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *ExerciseAttemptCreate) SetAttemptNumber(v int) *ExerciseAttemptCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ExerciseAttemptCreate) SetAnswer(v string) *ExerciseAttemptCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ExerciseAttemptCreate) SetScore(v int) *ExerciseAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ExerciseAttemptCreate) SetCorrect(v bool) *ExerciseAttemptCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *ExerciseAttemptCreate) SetFeedback(v json.RawMessage) *ExerciseAttemptCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *ExerciseAttemptCreate) SetTimeSpentSecs(v int) *ExerciseAttemptCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *ExerciseAttemptCreate) SetNillableTimeSpentSecs(v *int) *ExerciseAttemptCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *ExerciseAttemptCreate) SetSubmittedAt(v time.Time) *ExerciseAttemptCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *ExerciseAttemptCreate) SetNillableSubmittedAt(v *time.Time) *ExerciseAttemptCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExerciseAttemptCreate) SetID(v string) *ExerciseAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExerciseAttemptMutation object of the builder.
func (_c *ExerciseAttemptCreate) Mutation() *ExerciseAttemptMutation {
	return _c.mutation
}

// Save creates the ExerciseAttempt in the database.
func (_c *ExerciseAttemptCreate) Save(ctx context.Context) (*ExerciseAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExerciseAttemptCreate) SaveX(ctx context.Context) *ExerciseAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExerciseAttemptCreate) defaults() {
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := exerciseattempt.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := exerciseattempt.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExerciseAttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExerciseAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := exerciseattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "ExerciseAttempt.exercise_id"`)}
	}
	if v, ok := _c.mutation.ExerciseID(); ok {
		if err := exerciseattempt.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseAttempt.exercise_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "ExerciseAttempt.attempt_number"`)}
	}
	if v, ok := _c.mutation.AttemptNumber(); ok {
		if err := exerciseattempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ExerciseAttempt.attempt_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "ExerciseAttempt.answer"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ExerciseAttempt.score"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ExerciseAttempt.correct"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "ExerciseAttempt.time_spent_secs"`)}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "ExerciseAttempt.submitted_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := exerciseattempt.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ExerciseAttempt.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ExerciseAttemptCreate) sqlSave(ctx context.Context) (*ExerciseAttempt, error) {
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
			return nil, fmt.Errorf("unexpected ExerciseAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExerciseAttemptCreate) createSpec() (*ExerciseAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &ExerciseAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exerciseattempt.Table, sqlgraph.NewFieldSpec(exerciseattempt.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(exerciseattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(exerciseattempt.FieldExerciseID, field.TypeString, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(exerciseattempt.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(exerciseattempt.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(exerciseattempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(exerciseattempt.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(exerciseattempt.FieldFeedback, field.TypeJSON, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(exerciseattempt.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(exerciseattempt.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExerciseAttempt.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExerciseAttemptUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExerciseAttemptCreate) OnConflict(opts ...sql.ConflictOption) *ExerciseAttemptUpsertOne {
	_c.conflict = opts
	return &ExerciseAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExerciseAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExerciseAttemptCreate) OnConflictColumns(columns ...string) *ExerciseAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExerciseAttemptUpsertOne{
		create: _c,
	}
}

type (
	// ExerciseAttemptUpsertOne is the builder for "upsert"-ing
	//  one ExerciseAttempt node.
	ExerciseAttemptUpsertOne struct {
		create *ExerciseAttemptCreate
	}

	// ExerciseAttemptUpsert is the "OnConflict" setter.
	ExerciseAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExerciseAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(exerciseattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExerciseAttemptUpsertOne) UpdateNewValues() *ExerciseAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(exerciseattempt.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(exerciseattempt.FieldUserID)
		}
		if _, exists := u.create.mutation.ExerciseID(); exists {
			s.SetIgnore(exerciseattempt.FieldExerciseID)
		}
		if _, exists := u.create.mutation.AttemptNumber(); exists {
			s.SetIgnore(exerciseattempt.FieldAttemptNumber)
		}
		if _, exists := u.create.mutation.Answer(); exists {
			s.SetIgnore(exerciseattempt.FieldAnswer)
		}
		if _, exists := u.create.mutation.Score(); exists {
			s.SetIgnore(exerciseattempt.FieldScore)
		}
		if _, exists := u.create.mutation.Correct(); exists {
			s.SetIgnore(exerciseattempt.FieldCorrect)
		}
		if _, exists := u.create.mutation.Feedback(); exists {
			s.SetIgnore(exerciseattempt.FieldFeedback)
		}
		if _, exists := u.create.mutation.TimeSpentSecs(); exists {
			s.SetIgnore(exerciseattempt.FieldTimeSpentSecs)
		}
		if _, exists := u.create.mutation.SubmittedAt(); exists {
			s.SetIgnore(exerciseattempt.FieldSubmittedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExerciseAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExerciseAttemptUpsertOne) Ignore() *ExerciseAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExerciseAttemptUpsertOne) DoNothing() *ExerciseAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExerciseAttemptCreate.OnConflict
// documentation for more info.
func (u *ExerciseAttemptUpsertOne) Update(set func(*ExerciseAttemptUpsert)) *ExerciseAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExerciseAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ExerciseAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExerciseAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExerciseAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExerciseAttemptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExerciseAttemptUpsertOne.ID is not supported by MySQL driver. Use ExerciseAttemptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExerciseAttemptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExerciseAttemptCreateBulk is the builder for creating many ExerciseAttempt entities in bulk.
type ExerciseAttemptCreateBulk struct {
	config
	err      error
	builders []*ExerciseAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the ExerciseAttempt entities in the database.
func (_c *ExerciseAttemptCreateBulk) Save(ctx context.Context) ([]*ExerciseAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExerciseAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExerciseAttemptMutation)
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
func (_c *ExerciseAttemptCreateBulk) SaveX(ctx context.Context) []*ExerciseAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExerciseAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExerciseAttemptUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExerciseAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExerciseAttemptUpsertBulk {
	_c.conflict = opts
	return &ExerciseAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExerciseAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExerciseAttemptCreateBulk) OnConflictColumns(columns ...string) *ExerciseAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExerciseAttemptUpsertBulk{
		create: _c,
	}
}

// ExerciseAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of ExerciseAttempt nodes.
type ExerciseAttemptUpsertBulk struct {
	create *ExerciseAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExerciseAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(exerciseattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExerciseAttemptUpsertBulk) UpdateNewValues() *ExerciseAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(exerciseattempt.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(exerciseattempt.FieldUserID)
			}
			if _, exists := b.mutation.ExerciseID(); exists {
				s.SetIgnore(exerciseattempt.FieldExerciseID)
			}
			if _, exists := b.mutation.AttemptNumber(); exists {
				s.SetIgnore(exerciseattempt.FieldAttemptNumber)
			}
			if _, exists := b.mutation.Answer(); exists {
				s.SetIgnore(exerciseattempt.FieldAnswer)
			}
			if _, exists := b.mutation.Score(); exists {
				s.SetIgnore(exerciseattempt.FieldScore)
			}
			if _, exists := b.mutation.Correct(); exists {
				s.SetIgnore(exerciseattempt.FieldCorrect)
			}
			if _, exists := b.mutation.Feedback(); exists {
				s.SetIgnore(exerciseattempt.FieldFeedback)
			}
			if _, exists := b.mutation.TimeSpentSecs(); exists {
				s.SetIgnore(exerciseattempt.FieldTimeSpentSecs)
			}
			if _, exists := b.mutation.SubmittedAt(); exists {
				s.SetIgnore(exerciseattempt.FieldSubmittedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExerciseAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExerciseAttemptUpsertBulk) Ignore() *ExerciseAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExerciseAttemptUpsertBulk) DoNothing() *ExerciseAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExerciseAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *ExerciseAttemptUpsertBulk) Update(set func(*ExerciseAttemptUpsert)) *ExerciseAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExerciseAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ExerciseAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExerciseAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExerciseAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExerciseAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
