// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/exercise"
)

// ExerciseCreate is the builder for creating a Exercise entity.
type ExerciseCreate struct {
	config
	mutation *ExerciseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSkillID sets the "skill_id" field.
func (_c *ExerciseCreate) SetSkillID(v string) *ExerciseCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ExerciseCreate) SetType(v exercise.Type) *ExerciseCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ExerciseCreate) SetQuestion(v string) *ExerciseCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *ExerciseCreate) SetOptions(v []string) *ExerciseCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *ExerciseCreate) SetCorrectAnswer(v string) *ExerciseCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableCorrectAnswer(v *string) *ExerciseCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetRubric sets the "rubric" field.
func (_c *ExerciseCreate) SetRubric(v string) *ExerciseCreate {
	_c.mutation.SetRubric(v)
	return _c
}

// SetNillableRubric sets the "rubric" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableRubric(v *string) *ExerciseCreate {
	if v != nil {
		_c.SetRubric(*v)
	}
	return _c
}

// SetPassingScore sets the "passing_score" field.
func (_c *ExerciseCreate) SetPassingScore(v int) *ExerciseCreate {
	_c.mutation.SetPassingScore(v)
	return _c
}

// SetNillablePassingScore sets the "passing_score" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillablePassingScore(v *int) *ExerciseCreate {
	if v != nil {
		_c.SetPassingScore(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *ExerciseCreate) SetMaxAttempts(v int) *ExerciseCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableMaxAttempts(v *int) *ExerciseCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExerciseCreate) SetID(v string) *ExerciseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExerciseMutation object of the builder.
func (_c *ExerciseCreate) Mutation() *ExerciseMutation {
	return _c.mutation
}

// Save creates the Exercise in the database.
func (_c *ExerciseCreate) Save(ctx context.Context) (*Exercise, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExerciseCreate) SaveX(ctx context.Context) *Exercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExerciseCreate) defaults() {
	if _, ok := _c.mutation.PassingScore(); !ok {
		v := exercise.DefaultPassingScore
		_c.mutation.SetPassingScore(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := exercise.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExerciseCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "Exercise.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := exercise.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Exercise.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Exercise.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := exercise.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Exercise.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Exercise.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := exercise.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Exercise.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PassingScore(); !ok {
		return &ValidationError{Name: "passing_score", err: errors.New(`ent: missing required field "Exercise.passing_score"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Exercise.max_attempts"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := exercise.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Exercise.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ExerciseCreate) sqlSave(ctx context.Context) (*Exercise, error) {
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
			return nil, fmt.Errorf("unexpected Exercise.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExerciseCreate) createSpec() (*Exercise, *sqlgraph.CreateSpec) {
	var (
		_node = &Exercise{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exercise.Table, sqlgraph.NewFieldSpec(exercise.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(exercise.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(exercise.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(exercise.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(exercise.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(exercise.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Rubric(); ok {
		_spec.SetField(exercise.FieldRubric, field.TypeString, value)
		_node.Rubric = value
	}
	if value, ok := _c.mutation.PassingScore(); ok {
		_spec.SetField(exercise.FieldPassingScore, field.TypeInt, value)
		_node.PassingScore = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(exercise.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Exercise.Create().
//		SetSkillID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExerciseUpsert) {
//			SetSkillID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExerciseCreate) OnConflict(opts ...sql.ConflictOption) *ExerciseUpsertOne {
	_c.conflict = opts
	return &ExerciseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExerciseCreate) OnConflictColumns(columns ...string) *ExerciseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExerciseUpsertOne{
		create: _c,
	}
}

type (
	// ExerciseUpsertOne is the builder for "upsert"-ing
	//  one Exercise node.
	ExerciseUpsertOne struct {
		create *ExerciseCreate
	}

	// ExerciseUpsert is the "OnConflict" setter.
	ExerciseUpsert struct {
		*sql.UpdateSet
	}
)

// SetSkillID sets the "skill_id" field.
func (u *ExerciseUpsert) SetSkillID(v string) *ExerciseUpsert {
	u.Set(exercise.FieldSkillID, v)
	return u
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateSkillID() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldSkillID)
	return u
}

// SetType sets the "type" field.
func (u *ExerciseUpsert) SetType(v exercise.Type) *ExerciseUpsert {
	u.Set(exercise.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateType() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldType)
	return u
}

// SetQuestion sets the "question" field.
func (u *ExerciseUpsert) SetQuestion(v string) *ExerciseUpsert {
	u.Set(exercise.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateQuestion() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldQuestion)
	return u
}

// SetOptions sets the "options" field.
func (u *ExerciseUpsert) SetOptions(v []string) *ExerciseUpsert {
	u.Set(exercise.FieldOptions, v)
	return u
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateOptions() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldOptions)
	return u
}

// ClearOptions clears the value of the "options" field.
func (u *ExerciseUpsert) ClearOptions() *ExerciseUpsert {
	u.SetNull(exercise.FieldOptions)
	return u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *ExerciseUpsert) SetCorrectAnswer(v string) *ExerciseUpsert {
	u.Set(exercise.FieldCorrectAnswer, v)
	return u
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateCorrectAnswer() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldCorrectAnswer)
	return u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (u *ExerciseUpsert) ClearCorrectAnswer() *ExerciseUpsert {
	u.SetNull(exercise.FieldCorrectAnswer)
	return u
}

// SetRubric sets the "rubric" field.
func (u *ExerciseUpsert) SetRubric(v string) *ExerciseUpsert {
	u.Set(exercise.FieldRubric, v)
	return u
}

// UpdateRubric sets the "rubric" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateRubric() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldRubric)
	return u
}

// ClearRubric clears the value of the "rubric" field.
func (u *ExerciseUpsert) ClearRubric() *ExerciseUpsert {
	u.SetNull(exercise.FieldRubric)
	return u
}

// SetPassingScore sets the "passing_score" field.
func (u *ExerciseUpsert) SetPassingScore(v int) *ExerciseUpsert {
	u.Set(exercise.FieldPassingScore, v)
	return u
}

// UpdatePassingScore sets the "passing_score" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdatePassingScore() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldPassingScore)
	return u
}

// AddPassingScore adds v to the "passing_score" field.
func (u *ExerciseUpsert) AddPassingScore(v int) *ExerciseUpsert {
	u.Add(exercise.FieldPassingScore, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *ExerciseUpsert) SetMaxAttempts(v int) *ExerciseUpsert {
	u.Set(exercise.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *ExerciseUpsert) UpdateMaxAttempts() *ExerciseUpsert {
	u.SetExcluded(exercise.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *ExerciseUpsert) AddMaxAttempts(v int) *ExerciseUpsert {
	u.Add(exercise.FieldMaxAttempts, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(exercise.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExerciseUpsertOne) UpdateNewValues() *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(exercise.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Exercise.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExerciseUpsertOne) Ignore() *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExerciseUpsertOne) DoNothing() *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExerciseCreate.OnConflict
// documentation for more info.
func (u *ExerciseUpsertOne) Update(set func(*ExerciseUpsert)) *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExerciseUpsert{UpdateSet: update})
	}))
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *ExerciseUpsertOne) SetSkillID(v string) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateSkillID() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateSkillID()
	})
}

// SetType sets the "type" field.
func (u *ExerciseUpsertOne) SetType(v exercise.Type) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateType() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateType()
	})
}

// SetQuestion sets the "question" field.
func (u *ExerciseUpsertOne) SetQuestion(v string) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateQuestion() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateQuestion()
	})
}

// SetOptions sets the "options" field.
func (u *ExerciseUpsertOne) SetOptions(v []string) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateOptions() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateOptions()
	})
}

// ClearOptions clears the value of the "options" field.
func (u *ExerciseUpsertOne) ClearOptions() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.ClearOptions()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *ExerciseUpsertOne) SetCorrectAnswer(v string) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateCorrectAnswer() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (u *ExerciseUpsertOne) ClearCorrectAnswer() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.ClearCorrectAnswer()
	})
}

// SetRubric sets the "rubric" field.
func (u *ExerciseUpsertOne) SetRubric(v string) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetRubric(v)
	})
}

// UpdateRubric sets the "rubric" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateRubric() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateRubric()
	})
}

// ClearRubric clears the value of the "rubric" field.
func (u *ExerciseUpsertOne) ClearRubric() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.ClearRubric()
	})
}

// SetPassingScore sets the "passing_score" field.
func (u *ExerciseUpsertOne) SetPassingScore(v int) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetPassingScore(v)
	})
}

// AddPassingScore adds v to the "passing_score" field.
func (u *ExerciseUpsertOne) AddPassingScore(v int) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.AddPassingScore(v)
	})
}

// UpdatePassingScore sets the "passing_score" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdatePassingScore() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdatePassingScore()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *ExerciseUpsertOne) SetMaxAttempts(v int) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *ExerciseUpsertOne) AddMaxAttempts(v int) *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *ExerciseUpsertOne) UpdateMaxAttempts() *ExerciseUpsertOne {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateMaxAttempts()
	})
}

// Exec executes the query.
func (u *ExerciseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExerciseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExerciseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExerciseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExerciseUpsertOne.ID is not supported by MySQL driver. Use ExerciseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExerciseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExerciseCreateBulk is the builder for creating many Exercise entities in bulk.
type ExerciseCreateBulk struct {
	config
	err      error
	builders []*ExerciseCreate
	conflict []sql.ConflictOption
}

// Save creates the Exercise entities in the database.
func (_c *ExerciseCreateBulk) Save(ctx context.Context) ([]*Exercise, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Exercise, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExerciseMutation)
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
func (_c *ExerciseCreateBulk) SaveX(ctx context.Context) []*Exercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Exercise.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExerciseUpsert) {
//			SetSkillID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExerciseCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExerciseUpsertBulk {
	_c.conflict = opts
	return &ExerciseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExerciseCreateBulk) OnConflictColumns(columns ...string) *ExerciseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExerciseUpsertBulk{
		create: _c,
	}
}

// ExerciseUpsertBulk is the builder for "upsert"-ing
// a bulk of Exercise nodes.
type ExerciseUpsertBulk struct {
	create *ExerciseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(exercise.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExerciseUpsertBulk) UpdateNewValues() *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(exercise.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExerciseUpsertBulk) Ignore() *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExerciseUpsertBulk) DoNothing() *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExerciseCreateBulk.OnConflict
// documentation for more info.
func (u *ExerciseUpsertBulk) Update(set func(*ExerciseUpsert)) *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExerciseUpsert{UpdateSet: update})
	}))
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *ExerciseUpsertBulk) SetSkillID(v string) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateSkillID() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateSkillID()
	})
}

// SetType sets the "type" field.
func (u *ExerciseUpsertBulk) SetType(v exercise.Type) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateType() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateType()
	})
}

// SetQuestion sets the "question" field.
func (u *ExerciseUpsertBulk) SetQuestion(v string) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateQuestion() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateQuestion()
	})
}

// SetOptions sets the "options" field.
func (u *ExerciseUpsertBulk) SetOptions(v []string) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateOptions() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateOptions()
	})
}

// ClearOptions clears the value of the "options" field.
func (u *ExerciseUpsertBulk) ClearOptions() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.ClearOptions()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *ExerciseUpsertBulk) SetCorrectAnswer(v string) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateCorrectAnswer() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (u *ExerciseUpsertBulk) ClearCorrectAnswer() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.ClearCorrectAnswer()
	})
}

// SetRubric sets the "rubric" field.
func (u *ExerciseUpsertBulk) SetRubric(v string) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetRubric(v)
	})
}

// UpdateRubric sets the "rubric" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateRubric() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateRubric()
	})
}

// ClearRubric clears the value of the "rubric" field.
func (u *ExerciseUpsertBulk) ClearRubric() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.ClearRubric()
	})
}

// SetPassingScore sets the "passing_score" field.
func (u *ExerciseUpsertBulk) SetPassingScore(v int) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetPassingScore(v)
	})
}

// AddPassingScore adds v to the "passing_score" field.
func (u *ExerciseUpsertBulk) AddPassingScore(v int) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.AddPassingScore(v)
	})
}

// UpdatePassingScore sets the "passing_score" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdatePassingScore() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdatePassingScore()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *ExerciseUpsertBulk) SetMaxAttempts(v int) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *ExerciseUpsertBulk) AddMaxAttempts(v int) *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *ExerciseUpsertBulk) UpdateMaxAttempts() *ExerciseUpsertBulk {
	return u.Update(func(s *ExerciseUpsert) {
		s.UpdateMaxAttempts()
	})
}

// Exec executes the query.
func (u *ExerciseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExerciseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExerciseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExerciseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
