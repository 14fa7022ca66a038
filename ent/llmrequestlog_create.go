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
	"github.com/abhisek/skillforge/ent/llmrequestlog"
)

// LLMRequestLogCreate is the builder for creating a LLMRequestLog entity.
type LLMRequestLogCreate struct {
	config
	mutation *LLMRequestLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProvider sets the "provider" field.
func (_c *LLMRequestLogCreate) SetProvider(v string) *LLMRequestLogCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMRequestLogCreate) SetModel(v string) *LLMRequestLogCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *LLMRequestLogCreate) SetPurpose(v string) *LLMRequestLogCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_c *LLMRequestLogCreate) SetNillablePurpose(v *string) *LLMRequestLogCreate {
	if v != nil {
		_c.SetPurpose(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *LLMRequestLogCreate) SetInputTokens(v int) *LLMRequestLogCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *LLMRequestLogCreate) SetNillableInputTokens(v *int) *LLMRequestLogCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *LLMRequestLogCreate) SetOutputTokens(v int) *LLMRequestLogCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *LLMRequestLogCreate) SetNillableOutputTokens(v *int) *LLMRequestLogCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *LLMRequestLogCreate) SetLatencyMs(v int64) *LLMRequestLogCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *LLMRequestLogCreate) SetNillableLatencyMs(v *int64) *LLMRequestLogCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *LLMRequestLogCreate) SetSuccess(v bool) *LLMRequestLogCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMRequestLogCreate) SetErrorMessage(v string) *LLMRequestLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMRequestLogCreate) SetNillableErrorMessage(v *string) *LLMRequestLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMRequestLogCreate) SetCreatedAt(v time.Time) *LLMRequestLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMRequestLogCreate) SetNillableCreatedAt(v *time.Time) *LLMRequestLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LLMRequestLogMutation object of the builder.
func (_c *LLMRequestLogCreate) Mutation() *LLMRequestLogMutation {
	return _c.mutation
}

// Save creates the LLMRequestLog in the database.
func (_c *LLMRequestLogCreate) Save(ctx context.Context) (*LLMRequestLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMRequestLogCreate) SaveX(ctx context.Context) *LLMRequestLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRequestLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRequestLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMRequestLogCreate) defaults() {
	if _, ok := _c.mutation.Purpose(); !ok {
		v := llmrequestlog.DefaultPurpose
		_c.mutation.SetPurpose(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := llmrequestlog.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := llmrequestlog.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := llmrequestlog.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmrequestlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMRequestLogCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMRequestLog.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := llmrequestlog.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "LLMRequestLog.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMRequestLog.model"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "LLMRequestLog.purpose"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "LLMRequestLog.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "LLMRequestLog.output_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "LLMRequestLog.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "LLMRequestLog.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMRequestLog.created_at"`)}
	}
	return nil
}

func (_c *LLMRequestLogCreate) sqlSave(ctx context.Context) (*LLMRequestLog, error) {
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

func (_c *LLMRequestLogCreate) createSpec() (*LLMRequestLog, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMRequestLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmrequestlog.Table, sqlgraph.NewFieldSpec(llmrequestlog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmrequestlog.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmrequestlog.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(llmrequestlog.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(llmrequestlog.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(llmrequestlog.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(llmrequestlog.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(llmrequestlog.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrequestlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmrequestlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMRequestLog.Create().
//		SetProvider(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMRequestLogUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMRequestLogCreate) OnConflict(opts ...sql.ConflictOption) *LLMRequestLogUpsertOne {
	_c.conflict = opts
	return &LLMRequestLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMRequestLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMRequestLogCreate) OnConflictColumns(columns ...string) *LLMRequestLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMRequestLogUpsertOne{
		create: _c,
	}
}

type (
	// LLMRequestLogUpsertOne is the builder for "upsert"-ing
	//  one LLMRequestLog node.
	LLMRequestLogUpsertOne struct {
		create *LLMRequestLogCreate
	}

	// LLMRequestLogUpsert is the "OnConflict" setter.
	LLMRequestLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *LLMRequestLogUpsert) SetProvider(v string) *LLMRequestLogUpsert {
	u.Set(llmrequestlog.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMRequestLogUpsert) UpdateProvider() *LLMRequestLogUpsert {
	u.SetExcluded(llmrequestlog.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *LLMRequestLogUpsert) SetModel(v string) *LLMRequestLogUpsert {
	u.Set(llmrequestlog.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMRequestLogUpsert) UpdateModel() *LLMRequestLogUpsert {
	u.SetExcluded(llmrequestlog.FieldModel)
	return u
}

// SetPurpose sets the "purpose" field.
func (u *LLMRequestLogUpsert) SetPurpose(v string) *LLMRequestLogUpsert {
	u.Set(llmrequestlog.FieldPurpose, v)
	return u
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMRequestLogUpsert) UpdatePurpose() *LLMRequestLogUpsert {
	u.SetExcluded(llmrequestlog.FieldPurpose)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMRequestLogUpsert) SetInputTokens(v int) *LLMRequestLogUpsert {
	u.Set(llmrequestlog.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMRequestLogUpsert) UpdateInputTokens() *LLMRequestLogUpsert {
	u.SetExcluded(llmrequestlog.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMRequestLogUpsert) AddInputTokens(v int) *LLMRequestLogUpsert {
	u.Add(llmrequestlog.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMRequestLogUpsert) SetOutputTokens(v int) *LLMRequestLogUpsert {
	u.Set(llmrequestlog.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMRequestLogUpsert) UpdateOutputTokens() *LLMRequestLogUpsert {
	u.SetExcluded(llmrequestlog.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMRequestLogUpsert) AddOutputTokens(v int) *LLMRequestLogUpsert {
	u.Add(llmrequestlog.FieldOutputTokens, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMRequestLogUpsert) SetLatencyMs(v int64) *LLMRequestLogUpsert {
	u.Set(llmrequestlog.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMRequestLogUpsert) UpdateLatencyMs() *LLMRequestLogUpsert {
	u.SetExcluded(llmrequestlog.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMRequestLogUpsert) AddLatencyMs(v int64) *LLMRequestLogUpsert {
	u.Add(llmrequestlog.FieldLatencyMs, v)
	return u
}

// SetSuccess sets the "success" field.
func (u *LLMRequestLogUpsert) SetSuccess(v bool) *LLMRequestLogUpsert {
	u.Set(llmrequestlog.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMRequestLogUpsert) UpdateSuccess() *LLMRequestLogUpsert {
	u.SetExcluded(llmrequestlog.FieldSuccess)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMRequestLogUpsert) SetErrorMessage(v string) *LLMRequestLogUpsert {
	u.Set(llmrequestlog.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMRequestLogUpsert) UpdateErrorMessage() *LLMRequestLogUpsert {
	u.SetExcluded(llmrequestlog.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMRequestLogUpsert) ClearErrorMessage() *LLMRequestLogUpsert {
	u.SetNull(llmrequestlog.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LLMRequestLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMRequestLogUpsertOne) UpdateNewValues() *LLMRequestLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(llmrequestlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMRequestLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMRequestLogUpsertOne) Ignore() *LLMRequestLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMRequestLogUpsertOne) DoNothing() *LLMRequestLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMRequestLogCreate.OnConflict
// documentation for more info.
func (u *LLMRequestLogUpsertOne) Update(set func(*LLMRequestLogUpsert)) *LLMRequestLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMRequestLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMRequestLogUpsertOne) SetProvider(v string) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMRequestLogUpsertOne) UpdateProvider() *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMRequestLogUpsertOne) SetModel(v string) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMRequestLogUpsertOne) UpdateModel() *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateModel()
	})
}

// SetPurpose sets the "purpose" field.
func (u *LLMRequestLogUpsertOne) SetPurpose(v string) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMRequestLogUpsertOne) UpdatePurpose() *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdatePurpose()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMRequestLogUpsertOne) SetInputTokens(v int) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMRequestLogUpsertOne) AddInputTokens(v int) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMRequestLogUpsertOne) UpdateInputTokens() *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMRequestLogUpsertOne) SetOutputTokens(v int) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMRequestLogUpsertOne) AddOutputTokens(v int) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMRequestLogUpsertOne) UpdateOutputTokens() *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMRequestLogUpsertOne) SetLatencyMs(v int64) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMRequestLogUpsertOne) AddLatencyMs(v int64) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMRequestLogUpsertOne) UpdateLatencyMs() *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *LLMRequestLogUpsertOne) SetSuccess(v bool) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMRequestLogUpsertOne) UpdateSuccess() *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMRequestLogUpsertOne) SetErrorMessage(v string) *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMRequestLogUpsertOne) UpdateErrorMessage() *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMRequestLogUpsertOne) ClearErrorMessage() *LLMRequestLogUpsertOne {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMRequestLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMRequestLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMRequestLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMRequestLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMRequestLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMRequestLogCreateBulk is the builder for creating many LLMRequestLog entities in bulk.
type LLMRequestLogCreateBulk struct {
	config
	err      error
	builders []*LLMRequestLogCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMRequestLog entities in the database.
func (_c *LLMRequestLogCreateBulk) Save(ctx context.Context) ([]*LLMRequestLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMRequestLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMRequestLogMutation)
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
func (_c *LLMRequestLogCreateBulk) SaveX(ctx context.Context) []*LLMRequestLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRequestLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRequestLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMRequestLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMRequestLogUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMRequestLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMRequestLogUpsertBulk {
	_c.conflict = opts
	return &LLMRequestLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMRequestLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMRequestLogCreateBulk) OnConflictColumns(columns ...string) *LLMRequestLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMRequestLogUpsertBulk{
		create: _c,
	}
}

// LLMRequestLogUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMRequestLog nodes.
type LLMRequestLogUpsertBulk struct {
	create *LLMRequestLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMRequestLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LLMRequestLogUpsertBulk) UpdateNewValues() *LLMRequestLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(llmrequestlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMRequestLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMRequestLogUpsertBulk) Ignore() *LLMRequestLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMRequestLogUpsertBulk) DoNothing() *LLMRequestLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMRequestLogCreateBulk.OnConflict
// documentation for more info.
func (u *LLMRequestLogUpsertBulk) Update(set func(*LLMRequestLogUpsert)) *LLMRequestLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMRequestLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMRequestLogUpsertBulk) SetProvider(v string) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMRequestLogUpsertBulk) UpdateProvider() *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMRequestLogUpsertBulk) SetModel(v string) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMRequestLogUpsertBulk) UpdateModel() *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateModel()
	})
}

// SetPurpose sets the "purpose" field.
func (u *LLMRequestLogUpsertBulk) SetPurpose(v string) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMRequestLogUpsertBulk) UpdatePurpose() *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdatePurpose()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMRequestLogUpsertBulk) SetInputTokens(v int) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMRequestLogUpsertBulk) AddInputTokens(v int) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMRequestLogUpsertBulk) UpdateInputTokens() *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMRequestLogUpsertBulk) SetOutputTokens(v int) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMRequestLogUpsertBulk) AddOutputTokens(v int) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMRequestLogUpsertBulk) UpdateOutputTokens() *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMRequestLogUpsertBulk) SetLatencyMs(v int64) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMRequestLogUpsertBulk) AddLatencyMs(v int64) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMRequestLogUpsertBulk) UpdateLatencyMs() *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *LLMRequestLogUpsertBulk) SetSuccess(v bool) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LLMRequestLogUpsertBulk) UpdateSuccess() *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMRequestLogUpsertBulk) SetErrorMessage(v string) *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMRequestLogUpsertBulk) UpdateErrorMessage() *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMRequestLogUpsertBulk) ClearErrorMessage() *LLMRequestLogUpsertBulk {
	return u.Update(func(s *LLMRequestLogUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMRequestLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMRequestLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMRequestLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMRequestLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
