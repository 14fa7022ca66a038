// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/predicate"
	"github.com/abhisek/skillforge/ent/skillcategory"
)

// SkillCategoryUpdate is the builder for updating SkillCategory entities.
type SkillCategoryUpdate struct {
	config
	hooks    []Hook
	mutation *SkillCategoryMutation
}

// Where appends a list predicates to the SkillCategoryUpdate builder.
func (_u *SkillCategoryUpdate) Where(ps ...predicate.SkillCategory) *SkillCategoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SkillCategoryUpdate) SetName(v string) *SkillCategoryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SkillCategoryUpdate) SetNillableName(v *string) *SkillCategoryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *SkillCategoryUpdate) SetDisplayOrder(v int) *SkillCategoryUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *SkillCategoryUpdate) SetNillableDisplayOrder(v *int) *SkillCategoryUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *SkillCategoryUpdate) AddDisplayOrder(v int) *SkillCategoryUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *SkillCategoryUpdate) SetActive(v bool) *SkillCategoryUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SkillCategoryUpdate) SetNillableActive(v *bool) *SkillCategoryUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the SkillCategoryMutation object of the builder.
func (_u *SkillCategoryUpdate) Mutation() *SkillCategoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillCategoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillCategoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillCategoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillCategoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillCategoryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := skillcategory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SkillCategory.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillCategoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillcategory.Table, skillcategory.Columns, sqlgraph.NewFieldSpec(skillcategory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(skillcategory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(skillcategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(skillcategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(skillcategory.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillcategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillCategoryUpdateOne is the builder for updating a single SkillCategory entity.
type SkillCategoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillCategoryMutation
}

// SetName sets the "name" field.
func (_u *SkillCategoryUpdateOne) SetName(v string) *SkillCategoryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SkillCategoryUpdateOne) SetNillableName(v *string) *SkillCategoryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *SkillCategoryUpdateOne) SetDisplayOrder(v int) *SkillCategoryUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *SkillCategoryUpdateOne) SetNillableDisplayOrder(v *int) *SkillCategoryUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *SkillCategoryUpdateOne) AddDisplayOrder(v int) *SkillCategoryUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *SkillCategoryUpdateOne) SetActive(v bool) *SkillCategoryUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SkillCategoryUpdateOne) SetNillableActive(v *bool) *SkillCategoryUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the SkillCategoryMutation object of the builder.
func (_u *SkillCategoryUpdateOne) Mutation() *SkillCategoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillCategoryUpdate builder.
func (_u *SkillCategoryUpdateOne) Where(ps ...predicate.SkillCategory) *SkillCategoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillCategoryUpdateOne) Select(field string, fields ...string) *SkillCategoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillCategory entity.
func (_u *SkillCategoryUpdateOne) Save(ctx context.Context) (*SkillCategory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillCategoryUpdateOne) SaveX(ctx context.Context) *SkillCategory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillCategoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillCategoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillCategoryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := skillcategory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SkillCategory.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillCategoryUpdateOne) sqlSave(ctx context.Context) (_node *SkillCategory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillcategory.Table, skillcategory.Columns, sqlgraph.NewFieldSpec(skillcategory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillCategory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillcategory.FieldID)
		for _, f := range fields {
			if !skillcategory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillcategory.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(skillcategory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(skillcategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(skillcategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(skillcategory.FieldActive, field.TypeBool, value)
	}
	_node = &SkillCategory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillcategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
