// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/lesson"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSkillID sets the "skill_id" field.
func (_c *LessonCreate) SetSkillID(v string) *LessonCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonCreate) SetTitle(v string) *LessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *LessonCreate) SetPosition(v int) *LessonCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *LessonCreate) SetNillablePosition(v *int) *LessonCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *LessonCreate) SetContent(v json.RawMessage) *LessonCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LessonCreate) SetID(v string) *LessonCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := lesson.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "Lesson.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := lesson.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lesson.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Lesson.position"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := lesson.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Lesson.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
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
			return nil, fmt.Errorf("unexpected Lesson.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(lesson.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(lesson.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lesson.Create().
//		SetSkillID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonUpsert) {
//			SetSkillID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonCreate) OnConflict(opts ...sql.ConflictOption) *LessonUpsertOne {
	_c.conflict = opts
	return &LessonUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonCreate) OnConflictColumns(columns ...string) *LessonUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonUpsertOne{
		create: _c,
	}
}

type (
	// LessonUpsertOne is the builder for "upsert"-ing
	//  one Lesson node.
	LessonUpsertOne struct {
		create *LessonCreate
	}

	// LessonUpsert is the "OnConflict" setter.
	LessonUpsert struct {
		*sql.UpdateSet
	}
)

// SetSkillID sets the "skill_id" field.
func (u *LessonUpsert) SetSkillID(v string) *LessonUpsert {
	u.Set(lesson.FieldSkillID, v)
	return u
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *LessonUpsert) UpdateSkillID() *LessonUpsert {
	u.SetExcluded(lesson.FieldSkillID)
	return u
}

// SetTitle sets the "title" field.
func (u *LessonUpsert) SetTitle(v string) *LessonUpsert {
	u.Set(lesson.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsert) UpdateTitle() *LessonUpsert {
	u.SetExcluded(lesson.FieldTitle)
	return u
}

// SetPosition sets the "position" field.
func (u *LessonUpsert) SetPosition(v int) *LessonUpsert {
	u.Set(lesson.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *LessonUpsert) UpdatePosition() *LessonUpsert {
	u.SetExcluded(lesson.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *LessonUpsert) AddPosition(v int) *LessonUpsert {
	u.Add(lesson.FieldPosition, v)
	return u
}

// SetContent sets the "content" field.
func (u *LessonUpsert) SetContent(v json.RawMessage) *LessonUpsert {
	u.Set(lesson.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *LessonUpsert) UpdateContent() *LessonUpsert {
	u.SetExcluded(lesson.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *LessonUpsert) ClearContent() *LessonUpsert {
	u.SetNull(lesson.FieldContent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lesson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LessonUpsertOne) UpdateNewValues() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lesson.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonUpsertOne) Ignore() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonUpsertOne) DoNothing() *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonCreate.OnConflict
// documentation for more info.
func (u *LessonUpsertOne) Update(set func(*LessonUpsert)) *LessonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonUpsert{UpdateSet: update})
	}))
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *LessonUpsertOne) SetSkillID(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateSkillID() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateSkillID()
	})
}

// SetTitle sets the "title" field.
func (u *LessonUpsertOne) SetTitle(v string) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateTitle() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTitle()
	})
}

// SetPosition sets the "position" field.
func (u *LessonUpsertOne) SetPosition(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *LessonUpsertOne) AddPosition(v int) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdatePosition() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdatePosition()
	})
}

// SetContent sets the "content" field.
func (u *LessonUpsertOne) SetContent(v json.RawMessage) *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *LessonUpsertOne) UpdateContent() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *LessonUpsertOne) ClearContent() *LessonUpsertOne {
	return u.Update(func(s *LessonUpsert) {
		s.ClearContent()
	})
}

// Exec executes the query.
func (u *LessonUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LessonUpsertOne.ID is not supported by MySQL driver. Use LessonUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
	conflict []sql.ConflictOption
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
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
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lesson.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonUpsert) {
//			SetSkillID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonUpsertBulk {
	_c.conflict = opts
	return &LessonUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonCreateBulk) OnConflictColumns(columns ...string) *LessonUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonUpsertBulk{
		create: _c,
	}
}

// LessonUpsertBulk is the builder for "upsert"-ing
// a bulk of Lesson nodes.
type LessonUpsertBulk struct {
	create *LessonCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lesson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LessonUpsertBulk) UpdateNewValues() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lesson.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lesson.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonUpsertBulk) Ignore() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonUpsertBulk) DoNothing() *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonCreateBulk.OnConflict
// documentation for more info.
func (u *LessonUpsertBulk) Update(set func(*LessonUpsert)) *LessonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonUpsert{UpdateSet: update})
	}))
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *LessonUpsertBulk) SetSkillID(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateSkillID() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateSkillID()
	})
}

// SetTitle sets the "title" field.
func (u *LessonUpsertBulk) SetTitle(v string) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateTitle() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateTitle()
	})
}

// SetPosition sets the "position" field.
func (u *LessonUpsertBulk) SetPosition(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *LessonUpsertBulk) AddPosition(v int) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdatePosition() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdatePosition()
	})
}

// SetContent sets the "content" field.
func (u *LessonUpsertBulk) SetContent(v json.RawMessage) *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *LessonUpsertBulk) UpdateContent() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *LessonUpsertBulk) ClearContent() *LessonUpsertBulk {
	return u.Update(func(s *LessonUpsert) {
		s.ClearContent()
	})
}

// Exec executes the query.
func (u *LessonUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
