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
	"github.com/abhisek/skillforge/ent/skill"
)

// SkillCreate is the builder for creating a Skill entity.
type SkillCreate struct {
	config
	mutation *SkillMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCategoryID sets the "category_id" field.
func (_c *SkillCreate) SetCategoryID(v string) *SkillCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SkillCreate) SetName(v string) *SkillCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *SkillCreate) SetDifficulty(v skill.Difficulty) *SkillCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *SkillCreate) SetNillableDifficulty(v *skill.Difficulty) *SkillCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetXpReward sets the "xp_reward" field.
func (_c *SkillCreate) SetXpReward(v int) *SkillCreate {
	_c.mutation.SetXpReward(v)
	return _c
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_c *SkillCreate) SetNillableXpReward(v *int) *SkillCreate {
	if v != nil {
		_c.SetXpReward(*v)
	}
	return _c
}

// SetMasteryThreshold sets the "mastery_threshold" field.
func (_c *SkillCreate) SetMasteryThreshold(v int) *SkillCreate {
	_c.mutation.SetMasteryThreshold(v)
	return _c
}

// SetNillableMasteryThreshold sets the "mastery_threshold" field if the given value is not nil.
func (_c *SkillCreate) SetNillableMasteryThreshold(v *int) *SkillCreate {
	if v != nil {
		_c.SetMasteryThreshold(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *SkillCreate) SetActive(v bool) *SkillCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *SkillCreate) SetNillableActive(v *bool) *SkillCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetPrerequisites sets the "prerequisites" field.
func (_c *SkillCreate) SetPrerequisites(v []string) *SkillCreate {
	_c.mutation.SetPrerequisites(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SkillCreate) SetID(v string) *SkillCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SkillMutation object of the builder.
func (_c *SkillCreate) Mutation() *SkillMutation {
	return _c.mutation
}

// Save creates the Skill in the database.
func (_c *SkillCreate) Save(ctx context.Context) (*Skill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillCreate) SaveX(ctx context.Context) *Skill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := skill.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.XpReward(); !ok {
		v := skill.DefaultXpReward
		_c.mutation.SetXpReward(v)
	}
	if _, ok := _c.mutation.MasteryThreshold(); !ok {
		v := skill.DefaultMasteryThreshold
		_c.mutation.SetMasteryThreshold(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := skill.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillCreate) check() error {
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "Skill.category_id"`)}
	}
	if v, ok := _c.mutation.CategoryID(); ok {
		if err := skill.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "Skill.category_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Skill.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := skill.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Skill.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Skill.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := skill.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Skill.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpReward(); !ok {
		return &ValidationError{Name: "xp_reward", err: errors.New(`ent: missing required field "Skill.xp_reward"`)}
	}
	if _, ok := _c.mutation.MasteryThreshold(); !ok {
		return &ValidationError{Name: "mastery_threshold", err: errors.New(`ent: missing required field "Skill.mastery_threshold"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Skill.active"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := skill.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Skill.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SkillCreate) sqlSave(ctx context.Context) (*Skill, error) {
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
			return nil, fmt.Errorf("unexpected Skill.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillCreate) createSpec() (*Skill, *sqlgraph.CreateSpec) {
	var (
		_node = &Skill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skill.Table, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(skill.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(skill.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(skill.FieldDifficulty, field.TypeEnum, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.XpReward(); ok {
		_spec.SetField(skill.FieldXpReward, field.TypeInt, value)
		_node.XpReward = value
	}
	if value, ok := _c.mutation.MasteryThreshold(); ok {
		_spec.SetField(skill.FieldMasteryThreshold, field.TypeInt, value)
		_node.MasteryThreshold = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(skill.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Prerequisites(); ok {
		_spec.SetField(skill.FieldPrerequisites, field.TypeJSON, value)
		_node.Prerequisites = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Skill.Create().
//		SetCategoryID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillUpsert) {
//			SetCategoryID(v+v).
//		}).
//		Exec(ctx)
func (_c *SkillCreate) OnConflict(opts ...sql.ConflictOption) *SkillUpsertOne {
	_c.conflict = opts
	return &SkillUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SkillCreate) OnConflictColumns(columns ...string) *SkillUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SkillUpsertOne{
		create: _c,
	}
}

type (
	// SkillUpsertOne is the builder for "upsert"-ing
	//  one Skill node.
	SkillUpsertOne struct {
		create *SkillCreate
	}

	// SkillUpsert is the "OnConflict" setter.
	SkillUpsert struct {
		*sql.UpdateSet
	}
)

// SetCategoryID sets the "category_id" field.
func (u *SkillUpsert) SetCategoryID(v string) *SkillUpsert {
	u.Set(skill.FieldCategoryID, v)
	return u
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *SkillUpsert) UpdateCategoryID() *SkillUpsert {
	u.SetExcluded(skill.FieldCategoryID)
	return u
}

// SetName sets the "name" field.
func (u *SkillUpsert) SetName(v string) *SkillUpsert {
	u.Set(skill.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SkillUpsert) UpdateName() *SkillUpsert {
	u.SetExcluded(skill.FieldName)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *SkillUpsert) SetDifficulty(v skill.Difficulty) *SkillUpsert {
	u.Set(skill.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *SkillUpsert) UpdateDifficulty() *SkillUpsert {
	u.SetExcluded(skill.FieldDifficulty)
	return u
}

// SetXpReward sets the "xp_reward" field.
func (u *SkillUpsert) SetXpReward(v int) *SkillUpsert {
	u.Set(skill.FieldXpReward, v)
	return u
}

// UpdateXpReward sets the "xp_reward" field to the value that was provided on create.
func (u *SkillUpsert) UpdateXpReward() *SkillUpsert {
	u.SetExcluded(skill.FieldXpReward)
	return u
}

// AddXpReward adds v to the "xp_reward" field.
func (u *SkillUpsert) AddXpReward(v int) *SkillUpsert {
	u.Add(skill.FieldXpReward, v)
	return u
}

// SetMasteryThreshold sets the "mastery_threshold" field.
func (u *SkillUpsert) SetMasteryThreshold(v int) *SkillUpsert {
	u.Set(skill.FieldMasteryThreshold, v)
	return u
}

// UpdateMasteryThreshold sets the "mastery_threshold" field to the value that was provided on create.
func (u *SkillUpsert) UpdateMasteryThreshold() *SkillUpsert {
	u.SetExcluded(skill.FieldMasteryThreshold)
	return u
}

// AddMasteryThreshold adds v to the "mastery_threshold" field.
func (u *SkillUpsert) AddMasteryThreshold(v int) *SkillUpsert {
	u.Add(skill.FieldMasteryThreshold, v)
	return u
}

// SetActive sets the "active" field.
func (u *SkillUpsert) SetActive(v bool) *SkillUpsert {
	u.Set(skill.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SkillUpsert) UpdateActive() *SkillUpsert {
	u.SetExcluded(skill.FieldActive)
	return u
}

// SetPrerequisites sets the "prerequisites" field.
func (u *SkillUpsert) SetPrerequisites(v []string) *SkillUpsert {
	u.Set(skill.FieldPrerequisites, v)
	return u
}

// UpdatePrerequisites sets the "prerequisites" field to the value that was provided on create.
func (u *SkillUpsert) UpdatePrerequisites() *SkillUpsert {
	u.SetExcluded(skill.FieldPrerequisites)
	return u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (u *SkillUpsert) ClearPrerequisites() *SkillUpsert {
	u.SetNull(skill.FieldPrerequisites)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(skill.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SkillUpsertOne) UpdateNewValues() *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(skill.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Skill.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SkillUpsertOne) Ignore() *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillUpsertOne) DoNothing() *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillCreate.OnConflict
// documentation for more info.
func (u *SkillUpsertOne) Update(set func(*SkillUpsert)) *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *SkillUpsertOne) SetCategoryID(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateCategoryID() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateCategoryID()
	})
}

// SetName sets the "name" field.
func (u *SkillUpsertOne) SetName(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateName() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateName()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *SkillUpsertOne) SetDifficulty(v skill.Difficulty) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateDifficulty() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateDifficulty()
	})
}

// SetXpReward sets the "xp_reward" field.
func (u *SkillUpsertOne) SetXpReward(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetXpReward(v)
	})
}

// AddXpReward adds v to the "xp_reward" field.
func (u *SkillUpsertOne) AddXpReward(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddXpReward(v)
	})
}

// UpdateXpReward sets the "xp_reward" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateXpReward() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateXpReward()
	})
}

// SetMasteryThreshold sets the "mastery_threshold" field.
func (u *SkillUpsertOne) SetMasteryThreshold(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetMasteryThreshold(v)
	})
}

// AddMasteryThreshold adds v to the "mastery_threshold" field.
func (u *SkillUpsertOne) AddMasteryThreshold(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddMasteryThreshold(v)
	})
}

// UpdateMasteryThreshold sets the "mastery_threshold" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateMasteryThreshold() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateMasteryThreshold()
	})
}

// SetActive sets the "active" field.
func (u *SkillUpsertOne) SetActive(v bool) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateActive() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateActive()
	})
}

// SetPrerequisites sets the "prerequisites" field.
func (u *SkillUpsertOne) SetPrerequisites(v []string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetPrerequisites(v)
	})
}

// UpdatePrerequisites sets the "prerequisites" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdatePrerequisites() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdatePrerequisites()
	})
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (u *SkillUpsertOne) ClearPrerequisites() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.ClearPrerequisites()
	})
}

// Exec executes the query.
func (u *SkillUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SkillUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SkillUpsertOne.ID is not supported by MySQL driver. Use SkillUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SkillUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SkillCreateBulk is the builder for creating many Skill entities in bulk.
type SkillCreateBulk struct {
	config
	err      error
	builders []*SkillCreate
	conflict []sql.ConflictOption
}

// Save creates the Skill entities in the database.
func (_c *SkillCreateBulk) Save(ctx context.Context) ([]*Skill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Skill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillMutation)
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
func (_c *SkillCreateBulk) SaveX(ctx context.Context) []*Skill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Skill.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillUpsert) {
//			SetCategoryID(v+v).
//		}).
//		Exec(ctx)
func (_c *SkillCreateBulk) OnConflict(opts ...sql.ConflictOption) *SkillUpsertBulk {
	_c.conflict = opts
	return &SkillUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SkillCreateBulk) OnConflictColumns(columns ...string) *SkillUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SkillUpsertBulk{
		create: _c,
	}
}

// SkillUpsertBulk is the builder for "upsert"-ing
// a bulk of Skill nodes.
type SkillUpsertBulk struct {
	create *SkillCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(skill.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SkillUpsertBulk) UpdateNewValues() *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(skill.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SkillUpsertBulk) Ignore() *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillUpsertBulk) DoNothing() *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillCreateBulk.OnConflict
// documentation for more info.
func (u *SkillUpsertBulk) Update(set func(*SkillUpsert)) *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *SkillUpsertBulk) SetCategoryID(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateCategoryID() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateCategoryID()
	})
}

// SetName sets the "name" field.
func (u *SkillUpsertBulk) SetName(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateName() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateName()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *SkillUpsertBulk) SetDifficulty(v skill.Difficulty) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateDifficulty() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateDifficulty()
	})
}

// SetXpReward sets the "xp_reward" field.
func (u *SkillUpsertBulk) SetXpReward(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetXpReward(v)
	})
}

// AddXpReward adds v to the "xp_reward" field.
func (u *SkillUpsertBulk) AddXpReward(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddXpReward(v)
	})
}

// UpdateXpReward sets the "xp_reward" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateXpReward() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateXpReward()
	})
}

// SetMasteryThreshold sets the "mastery_threshold" field.
func (u *SkillUpsertBulk) SetMasteryThreshold(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetMasteryThreshold(v)
	})
}

// AddMasteryThreshold adds v to the "mastery_threshold" field.
func (u *SkillUpsertBulk) AddMasteryThreshold(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddMasteryThreshold(v)
	})
}

// UpdateMasteryThreshold sets the "mastery_threshold" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateMasteryThreshold() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateMasteryThreshold()
	})
}

// SetActive sets the "active" field.
func (u *SkillUpsertBulk) SetActive(v bool) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateActive() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateActive()
	})
}

// SetPrerequisites sets the "prerequisites" field.
func (u *SkillUpsertBulk) SetPrerequisites(v []string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetPrerequisites(v)
	})
}

// UpdatePrerequisites sets the "prerequisites" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdatePrerequisites() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdatePrerequisites()
	})
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (u *SkillUpsertBulk) ClearPrerequisites() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.ClearPrerequisites()
	})
}

// Exec executes the query.
func (u *SkillUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SkillCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
