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
	"github.com/abhisek/skillforge/ent/reviewschedule"
)

// ReviewScheduleCreate is the builder for creating a ReviewSchedule entity.
type ReviewScheduleCreate struct {
	config
	mutation *ReviewScheduleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ReviewScheduleCreate) SetUserID(v string) *ReviewScheduleCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReviewScheduleCreate) SetItemID(v string) *ReviewScheduleCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *ReviewScheduleCreate) SetItemType(v reviewschedule.ItemType) *ReviewScheduleCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetReviewAt sets the "review_at" field.
func (_c *ReviewScheduleCreate) SetReviewAt(v time.Time) *ReviewScheduleCreate {
	_c.mutation.SetReviewAt(v)
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewScheduleCreate) SetEaseFactor(v float64) *ReviewScheduleCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableEaseFactor(v *float64) *ReviewScheduleCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewScheduleCreate) SetIntervalDays(v int) *ReviewScheduleCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableIntervalDays(v *int) *ReviewScheduleCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *ReviewScheduleCreate) SetRepetitions(v int) *ReviewScheduleCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableRepetitions(v *int) *ReviewScheduleCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *ReviewScheduleCreate) SetLastReviewedAt(v time.Time) *ReviewScheduleCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *ReviewScheduleCreate) SetNillableLastReviewedAt(v *time.Time) *ReviewScheduleCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReviewScheduleCreate) SetID(v string) *ReviewScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReviewScheduleMutation object of the builder.
func (_c *ReviewScheduleCreate) Mutation() *ReviewScheduleMutation {
	return _c.mutation
}

// Save creates the ReviewSchedule in the database.
func (_c *ReviewScheduleCreate) Save(ctx context.Context) (*ReviewSchedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewScheduleCreate) SaveX(ctx context.Context) *ReviewSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewScheduleCreate) defaults() {
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := reviewschedule.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewschedule.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := reviewschedule.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewScheduleCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewSchedule.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := reviewschedule.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewSchedule.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := reviewschedule.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "ReviewSchedule.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := reviewschedule.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewAt(); !ok {
		return &ValidationError{Name: "review_at", err: errors.New(`ent: missing required field "ReviewSchedule.review_at"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewSchedule.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewSchedule.interval_days"`)}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "ReviewSchedule.repetitions"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := reviewschedule.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ReviewSchedule.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ReviewScheduleCreate) sqlSave(ctx context.Context) (*ReviewSchedule, error) {
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
			return nil, fmt.Errorf("unexpected ReviewSchedule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewScheduleCreate) createSpec() (*ReviewSchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewSchedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewschedule.Table, sqlgraph.NewFieldSpec(reviewschedule.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewschedule.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reviewschedule.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(reviewschedule.FieldItemType, field.TypeEnum, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.ReviewAt(); ok {
		_spec.SetField(reviewschedule.FieldReviewAt, field.TypeTime, value)
		_node.ReviewAt = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewschedule.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewschedule.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(reviewschedule.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewschedule.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewSchedule.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewScheduleUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewScheduleCreate) OnConflict(opts ...sql.ConflictOption) *ReviewScheduleUpsertOne {
	_c.conflict = opts
	return &ReviewScheduleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewScheduleCreate) OnConflictColumns(columns ...string) *ReviewScheduleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewScheduleUpsertOne{
		create: _c,
	}
}

type (
	// ReviewScheduleUpsertOne is the builder for "upsert"-ing
	//  one ReviewSchedule node.
	ReviewScheduleUpsertOne struct {
		create *ReviewScheduleCreate
	}

	// ReviewScheduleUpsert is the "OnConflict" setter.
	ReviewScheduleUpsert struct {
		*sql.UpdateSet
	}
)

// SetReviewAt sets the "review_at" field.
func (u *ReviewScheduleUpsert) SetReviewAt(v time.Time) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldReviewAt, v)
	return u
}

// UpdateReviewAt sets the "review_at" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateReviewAt() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldReviewAt)
	return u
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewScheduleUpsert) SetEaseFactor(v float64) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldEaseFactor, v)
	return u
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateEaseFactor() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldEaseFactor)
	return u
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewScheduleUpsert) AddEaseFactor(v float64) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldEaseFactor, v)
	return u
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewScheduleUpsert) SetIntervalDays(v int) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldIntervalDays, v)
	return u
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateIntervalDays() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldIntervalDays)
	return u
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewScheduleUpsert) AddIntervalDays(v int) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldIntervalDays, v)
	return u
}

// SetRepetitions sets the "repetitions" field.
func (u *ReviewScheduleUpsert) SetRepetitions(v int) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldRepetitions, v)
	return u
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateRepetitions() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldRepetitions)
	return u
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ReviewScheduleUpsert) AddRepetitions(v int) *ReviewScheduleUpsert {
	u.Add(reviewschedule.FieldRepetitions, v)
	return u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (u *ReviewScheduleUpsert) SetLastReviewedAt(v time.Time) *ReviewScheduleUpsert {
	u.Set(reviewschedule.FieldLastReviewedAt, v)
	return u
}

// UpdateLastReviewedAt sets the "last_reviewed_at" field to the value that was provided on create.
func (u *ReviewScheduleUpsert) UpdateLastReviewedAt() *ReviewScheduleUpsert {
	u.SetExcluded(reviewschedule.FieldLastReviewedAt)
	return u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (u *ReviewScheduleUpsert) ClearLastReviewedAt() *ReviewScheduleUpsert {
	u.SetNull(reviewschedule.FieldLastReviewedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reviewschedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReviewScheduleUpsertOne) UpdateNewValues() *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reviewschedule.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(reviewschedule.FieldUserID)
		}
		if _, exists := u.create.mutation.ItemID(); exists {
			s.SetIgnore(reviewschedule.FieldItemID)
		}
		if _, exists := u.create.mutation.ItemType(); exists {
			s.SetIgnore(reviewschedule.FieldItemType)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReviewScheduleUpsertOne) Ignore() *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewScheduleUpsertOne) DoNothing() *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewScheduleCreate.OnConflict
// documentation for more info.
func (u *ReviewScheduleUpsertOne) Update(set func(*ReviewScheduleUpsert)) *ReviewScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetReviewAt sets the "review_at" field.
func (u *ReviewScheduleUpsertOne) SetReviewAt(v time.Time) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetReviewAt(v)
	})
}

// UpdateReviewAt sets the "review_at" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateReviewAt() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateReviewAt()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewScheduleUpsertOne) SetEaseFactor(v float64) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewScheduleUpsertOne) AddEaseFactor(v float64) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateEaseFactor() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewScheduleUpsertOne) SetIntervalDays(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewScheduleUpsertOne) AddIntervalDays(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateIntervalDays() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetRepetitions sets the "repetitions" field.
func (u *ReviewScheduleUpsertOne) SetRepetitions(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetRepetitions(v)
	})
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ReviewScheduleUpsertOne) AddRepetitions(v int) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddRepetitions(v)
	})
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateRepetitions() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateRepetitions()
	})
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (u *ReviewScheduleUpsertOne) SetLastReviewedAt(v time.Time) *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetLastReviewedAt(v)
	})
}

// UpdateLastReviewedAt sets the "last_reviewed_at" field to the value that was provided on create.
func (u *ReviewScheduleUpsertOne) UpdateLastReviewedAt() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateLastReviewedAt()
	})
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (u *ReviewScheduleUpsertOne) ClearLastReviewedAt() *ReviewScheduleUpsertOne {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.ClearLastReviewedAt()
	})
}

// Exec executes the query.
func (u *ReviewScheduleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewScheduleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewScheduleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReviewScheduleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReviewScheduleUpsertOne.ID is not supported by MySQL driver. Use ReviewScheduleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReviewScheduleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReviewScheduleCreateBulk is the builder for creating many ReviewSchedule entities in bulk.
type ReviewScheduleCreateBulk struct {
	config
	err      error
	builders []*ReviewScheduleCreate
	conflict []sql.ConflictOption
}

// Save creates the ReviewSchedule entities in the database.
func (_c *ReviewScheduleCreateBulk) Save(ctx context.Context) ([]*ReviewSchedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewSchedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewScheduleMutation)
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
func (_c *ReviewScheduleCreateBulk) SaveX(ctx context.Context) []*ReviewSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewSchedule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewScheduleUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewScheduleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReviewScheduleUpsertBulk {
	_c.conflict = opts
	return &ReviewScheduleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewScheduleCreateBulk) OnConflictColumns(columns ...string) *ReviewScheduleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewScheduleUpsertBulk{
		create: _c,
	}
}

// ReviewScheduleUpsertBulk is the builder for "upsert"-ing
// a bulk of ReviewSchedule nodes.
type ReviewScheduleUpsertBulk struct {
	create *ReviewScheduleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reviewschedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReviewScheduleUpsertBulk) UpdateNewValues() *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reviewschedule.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(reviewschedule.FieldUserID)
			}
			if _, exists := b.mutation.ItemID(); exists {
				s.SetIgnore(reviewschedule.FieldItemID)
			}
			if _, exists := b.mutation.ItemType(); exists {
				s.SetIgnore(reviewschedule.FieldItemType)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewSchedule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReviewScheduleUpsertBulk) Ignore() *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewScheduleUpsertBulk) DoNothing() *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewScheduleCreateBulk.OnConflict
// documentation for more info.
func (u *ReviewScheduleUpsertBulk) Update(set func(*ReviewScheduleUpsert)) *ReviewScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetReviewAt sets the "review_at" field.
func (u *ReviewScheduleUpsertBulk) SetReviewAt(v time.Time) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetReviewAt(v)
	})
}

// UpdateReviewAt sets the "review_at" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateReviewAt() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateReviewAt()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ReviewScheduleUpsertBulk) SetEaseFactor(v float64) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ReviewScheduleUpsertBulk) AddEaseFactor(v float64) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateEaseFactor() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ReviewScheduleUpsertBulk) SetIntervalDays(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ReviewScheduleUpsertBulk) AddIntervalDays(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateIntervalDays() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetRepetitions sets the "repetitions" field.
func (u *ReviewScheduleUpsertBulk) SetRepetitions(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetRepetitions(v)
	})
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ReviewScheduleUpsertBulk) AddRepetitions(v int) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.AddRepetitions(v)
	})
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateRepetitions() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateRepetitions()
	})
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (u *ReviewScheduleUpsertBulk) SetLastReviewedAt(v time.Time) *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.SetLastReviewedAt(v)
	})
}

// UpdateLastReviewedAt sets the "last_reviewed_at" field to the value that was provided on create.
func (u *ReviewScheduleUpsertBulk) UpdateLastReviewedAt() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.UpdateLastReviewedAt()
	})
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (u *ReviewScheduleUpsertBulk) ClearLastReviewedAt() *ReviewScheduleUpsertBulk {
	return u.Update(func(s *ReviewScheduleUpsert) {
		s.ClearLastReviewedAt()
	})
}

// Exec executes the query.
func (u *ReviewScheduleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReviewScheduleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewScheduleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewScheduleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
