// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/predicate"
	"github.com/abhisek/skillforge/ent/skill"
)

// SkillUpdate is the builder for updating Skill entities.
type SkillUpdate struct {
	config
	hooks    []Hook
	mutation *SkillMutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (_u *SkillUpdate) Where(ps ...predicate.Skill) *SkillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *SkillUpdate) SetCategoryID(v string) *SkillUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableCategoryID(v *string) *SkillUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SkillUpdate) SetName(v string) *SkillUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableName(v *string) *SkillUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SkillUpdate) SetDifficulty(v skill.Difficulty) *SkillUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableDifficulty(v *skill.Difficulty) *SkillUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *SkillUpdate) SetXpReward(v int) *SkillUpdate {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableXpReward(v *int) *SkillUpdate {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *SkillUpdate) AddXpReward(v int) *SkillUpdate {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetMasteryThreshold sets the "mastery_threshold" field.
func (_u *SkillUpdate) SetMasteryThreshold(v int) *SkillUpdate {
	_u.mutation.ResetMasteryThreshold()
	_u.mutation.SetMasteryThreshold(v)
	return _u
}

// SetNillableMasteryThreshold sets the "mastery_threshold" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableMasteryThreshold(v *int) *SkillUpdate {
	if v != nil {
		_u.SetMasteryThreshold(*v)
	}
	return _u
}

// AddMasteryThreshold adds value to the "mastery_threshold" field.
func (_u *SkillUpdate) AddMasteryThreshold(v int) *SkillUpdate {
	_u.mutation.AddMasteryThreshold(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *SkillUpdate) SetActive(v bool) *SkillUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SkillUpdate) SetNillableActive(v *bool) *SkillUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *SkillUpdate) SetPrerequisites(v []string) *SkillUpdate {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *SkillUpdate) AppendPrerequisites(v []string) *SkillUpdate {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *SkillUpdate) ClearPrerequisites() *SkillUpdate {
	_u.mutation.ClearPrerequisites()
	return _u
}

// Mutation returns the SkillMutation object of the builder.
func (_u *SkillUpdate) Mutation() *SkillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillUpdate) check() error {
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := skill.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "Skill.category_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := skill.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Skill.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := skill.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Skill.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(skill.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(skill.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(skill.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(skill.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(skill.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryThreshold(); ok {
		_spec.SetField(skill.FieldMasteryThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryThreshold(); ok {
		_spec.AddField(skill.FieldMasteryThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(skill.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(skill.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(skill.FieldPrerequisites, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillUpdateOne is the builder for updating a single Skill entity.
type SkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillMutation
}

// SetCategoryID sets the "category_id" field.
func (_u *SkillUpdateOne) SetCategoryID(v string) *SkillUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableCategoryID(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SkillUpdateOne) SetName(v string) *SkillUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableName(v *string) *SkillUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SkillUpdateOne) SetDifficulty(v skill.Difficulty) *SkillUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableDifficulty(v *skill.Difficulty) *SkillUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *SkillUpdateOne) SetXpReward(v int) *SkillUpdateOne {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableXpReward(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *SkillUpdateOne) AddXpReward(v int) *SkillUpdateOne {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetMasteryThreshold sets the "mastery_threshold" field.
func (_u *SkillUpdateOne) SetMasteryThreshold(v int) *SkillUpdateOne {
	_u.mutation.ResetMasteryThreshold()
	_u.mutation.SetMasteryThreshold(v)
	return _u
}

// SetNillableMasteryThreshold sets the "mastery_threshold" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableMasteryThreshold(v *int) *SkillUpdateOne {
	if v != nil {
		_u.SetMasteryThreshold(*v)
	}
	return _u
}

// AddMasteryThreshold adds value to the "mastery_threshold" field.
func (_u *SkillUpdateOne) AddMasteryThreshold(v int) *SkillUpdateOne {
	_u.mutation.AddMasteryThreshold(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *SkillUpdateOne) SetActive(v bool) *SkillUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SkillUpdateOne) SetNillableActive(v *bool) *SkillUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *SkillUpdateOne) SetPrerequisites(v []string) *SkillUpdateOne {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *SkillUpdateOne) AppendPrerequisites(v []string) *SkillUpdateOne {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *SkillUpdateOne) ClearPrerequisites() *SkillUpdateOne {
	_u.mutation.ClearPrerequisites()
	return _u
}

// Mutation returns the SkillMutation object of the builder.
func (_u *SkillUpdateOne) Mutation() *SkillMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (_u *SkillUpdateOne) Where(ps ...predicate.Skill) *SkillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillUpdateOne) Select(field string, fields ...string) *SkillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Skill entity.
func (_u *SkillUpdateOne) Save(ctx context.Context) (*Skill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillUpdateOne) SaveX(ctx context.Context) *Skill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillUpdateOne) check() error {
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := skill.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "Skill.category_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := skill.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Skill.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := skill.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Skill.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillUpdateOne) sqlSave(ctx context.Context) (_node *Skill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Skill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skill.FieldID)
		for _, f := range fields {
			if !skill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skill.FieldID {
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
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(skill.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(skill.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(skill.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(skill.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(skill.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryThreshold(); ok {
		_spec.SetField(skill.FieldMasteryThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryThreshold(); ok {
		_spec.AddField(skill.FieldMasteryThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(skill.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(skill.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, skill.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(skill.FieldPrerequisites, field.TypeJSON)
	}
	_node = &Skill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
