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
	"github.com/abhisek/skillforge/ent/skillcategory"
)

// SkillCategoryCreate is the builder for creating a SkillCategory entity.
type SkillCategoryCreate struct {
	config
	mutation *SkillCategoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *SkillCategoryCreate) SetName(v string) *SkillCategoryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *SkillCategoryCreate) SetDisplayOrder(v int) *SkillCategoryCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *SkillCategoryCreate) SetNillableDisplayOrder(v *int) *SkillCategoryCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *SkillCategoryCreate) SetActive(v bool) *SkillCategoryCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *SkillCategoryCreate) SetNillableActive(v *bool) *SkillCategoryCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SkillCategoryCreate) SetID(v string) *SkillCategoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SkillCategoryMutation object of the builder.
func (_c *SkillCategoryCreate) Mutation() *SkillCategoryMutation {
	return _c.mutation
}

// Save creates the SkillCategory in the database.
func (_c *SkillCategoryCreate) Save(ctx context.Context) (*SkillCategory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillCategoryCreate) SaveX(ctx context.Context) *SkillCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCategoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCategoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillCategoryCreate) defaults() {
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := skillcategory.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := skillcategory.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillCategoryCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SkillCategory.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := skillcategory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SkillCategory.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "SkillCategory.display_order"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "SkillCategory.active"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := skillcategory.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "SkillCategory.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SkillCategoryCreate) sqlSave(ctx context.Context) (*SkillCategory, error) {
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
			return nil, fmt.Errorf("unexpected SkillCategory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillCategoryCreate) createSpec() (*SkillCategory, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillCategory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillcategory.Table, sqlgraph.NewFieldSpec(skillcategory.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(skillcategory.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(skillcategory.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(skillcategory.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SkillCategory.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillCategoryUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *SkillCategoryCreate) OnConflict(opts ...sql.ConflictOption) *SkillCategoryUpsertOne {
	_c.conflict = opts
	return &SkillCategoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SkillCategory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SkillCategoryCreate) OnConflictColumns(columns ...string) *SkillCategoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SkillCategoryUpsertOne{
		create: _c,
	}
}

type (
	// SkillCategoryUpsertOne is the builder for "upsert"-ing
	//  one SkillCategory node.
	SkillCategoryUpsertOne struct {
		create *SkillCategoryCreate
	}

	// SkillCategoryUpsert is the "OnConflict" setter.
	SkillCategoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *SkillCategoryUpsert) SetName(v string) *SkillCategoryUpsert {
	u.Set(skillcategory.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SkillCategoryUpsert) UpdateName() *SkillCategoryUpsert {
	u.SetExcluded(skillcategory.FieldName)
	return u
}

// SetDisplayOrder sets the "display_order" field.
func (u *SkillCategoryUpsert) SetDisplayOrder(v int) *SkillCategoryUpsert {
	u.Set(skillcategory.FieldDisplayOrder, v)
	return u
}

// UpdateDisplayOrder sets the "display_order" field to the value that was provided on create.
func (u *SkillCategoryUpsert) UpdateDisplayOrder() *SkillCategoryUpsert {
	u.SetExcluded(skillcategory.FieldDisplayOrder)
	return u
}

// AddDisplayOrder adds v to the "display_order" field.
func (u *SkillCategoryUpsert) AddDisplayOrder(v int) *SkillCategoryUpsert {
	u.Add(skillcategory.FieldDisplayOrder, v)
	return u
}

// SetActive sets the "active" field.
func (u *SkillCategoryUpsert) SetActive(v bool) *SkillCategoryUpsert {
	u.Set(skillcategory.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SkillCategoryUpsert) UpdateActive() *SkillCategoryUpsert {
	u.SetExcluded(skillcategory.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SkillCategory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(skillcategory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SkillCategoryUpsertOne) UpdateNewValues() *SkillCategoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(skillcategory.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SkillCategory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SkillCategoryUpsertOne) Ignore() *SkillCategoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillCategoryUpsertOne) DoNothing() *SkillCategoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillCategoryCreate.OnConflict
// documentation for more info.
func (u *SkillCategoryUpsertOne) Update(set func(*SkillCategoryUpsert)) *SkillCategoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillCategoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *SkillCategoryUpsertOne) SetName(v string) *SkillCategoryUpsertOne {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SkillCategoryUpsertOne) UpdateName() *SkillCategoryUpsertOne {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.UpdateName()
	})
}

// SetDisplayOrder sets the "display_order" field.
func (u *SkillCategoryUpsertOne) SetDisplayOrder(v int) *SkillCategoryUpsertOne {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.SetDisplayOrder(v)
	})
}

// AddDisplayOrder adds v to the "display_order" field.
func (u *SkillCategoryUpsertOne) AddDisplayOrder(v int) *SkillCategoryUpsertOne {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.AddDisplayOrder(v)
	})
}

// UpdateDisplayOrder sets the "display_order" field to the value that was provided on create.
func (u *SkillCategoryUpsertOne) UpdateDisplayOrder() *SkillCategoryUpsertOne {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.UpdateDisplayOrder()
	})
}

// SetActive sets the "active" field.
func (u *SkillCategoryUpsertOne) SetActive(v bool) *SkillCategoryUpsertOne {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SkillCategoryUpsertOne) UpdateActive() *SkillCategoryUpsertOne {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *SkillCategoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillCategoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillCategoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SkillCategoryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SkillCategoryUpsertOne.ID is not supported by MySQL driver. Use SkillCategoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SkillCategoryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SkillCategoryCreateBulk is the builder for creating many SkillCategory entities in bulk.
type SkillCategoryCreateBulk struct {
	config
	err      error
	builders []*SkillCategoryCreate
	conflict []sql.ConflictOption
}

// Save creates the SkillCategory entities in the database.
func (_c *SkillCategoryCreateBulk) Save(ctx context.Context) ([]*SkillCategory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillCategory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillCategoryMutation)
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
func (_c *SkillCategoryCreateBulk) SaveX(ctx context.Context) []*SkillCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillCategoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillCategoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SkillCategory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillCategoryUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *SkillCategoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SkillCategoryUpsertBulk {
	_c.conflict = opts
	return &SkillCategoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SkillCategory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SkillCategoryCreateBulk) OnConflictColumns(columns ...string) *SkillCategoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SkillCategoryUpsertBulk{
		create: _c,
	}
}

// SkillCategoryUpsertBulk is the builder for "upsert"-ing
// a bulk of SkillCategory nodes.
type SkillCategoryUpsertBulk struct {
	create *SkillCategoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SkillCategory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(skillcategory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SkillCategoryUpsertBulk) UpdateNewValues() *SkillCategoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(skillcategory.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SkillCategory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SkillCategoryUpsertBulk) Ignore() *SkillCategoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillCategoryUpsertBulk) DoNothing() *SkillCategoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillCategoryCreateBulk.OnConflict
// documentation for more info.
func (u *SkillCategoryUpsertBulk) Update(set func(*SkillCategoryUpsert)) *SkillCategoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillCategoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *SkillCategoryUpsertBulk) SetName(v string) *SkillCategoryUpsertBulk {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SkillCategoryUpsertBulk) UpdateName() *SkillCategoryUpsertBulk {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.UpdateName()
	})
}

// SetDisplayOrder sets the "display_order" field.
func (u *SkillCategoryUpsertBulk) SetDisplayOrder(v int) *SkillCategoryUpsertBulk {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.SetDisplayOrder(v)
	})
}

// AddDisplayOrder adds v to the "display_order" field.
func (u *SkillCategoryUpsertBulk) AddDisplayOrder(v int) *SkillCategoryUpsertBulk {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.AddDisplayOrder(v)
	})
}

// UpdateDisplayOrder sets the "display_order" field to the value that was provided on create.
func (u *SkillCategoryUpsertBulk) UpdateDisplayOrder() *SkillCategoryUpsertBulk {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.UpdateDisplayOrder()
	})
}

// SetActive sets the "active" field.
func (u *SkillCategoryUpsertBulk) SetActive(v bool) *SkillCategoryUpsertBulk {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SkillCategoryUpsertBulk) UpdateActive() *SkillCategoryUpsertBulk {
	return u.Update(func(s *SkillCategoryUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *SkillCategoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SkillCategoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillCategoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillCategoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
