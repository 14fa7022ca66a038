// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/exerciseattempt"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ExerciseAttemptUpdate is the builder for updating ExerciseAttempt entities.
type ExerciseAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *ExerciseAttemptMutation
}

// Where appends a list predicates to the ExerciseAttemptUpdate builder.
func (_u *ExerciseAttemptUpdate) Where(ps ...predicate.ExerciseAttempt) *ExerciseAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ExerciseAttemptMutation object of the builder.
func (_u *ExerciseAttemptUpdate) Mutation() *ExerciseAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExerciseAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExerciseAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExerciseAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(exerciseattempt.Table, exerciseattempt.Columns, sqlgraph.NewFieldSpec(exerciseattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(exerciseattempt.FieldFeedback, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exerciseattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExerciseAttemptUpdateOne is the builder for updating a single ExerciseAttempt entity.
type ExerciseAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExerciseAttemptMutation
}

// Mutation returns the ExerciseAttemptMutation object of the builder.
func (_u *ExerciseAttemptUpdateOne) Mutation() *ExerciseAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExerciseAttemptUpdate builder.
func (_u *ExerciseAttemptUpdateOne) Where(ps ...predicate.ExerciseAttempt) *ExerciseAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExerciseAttemptUpdateOne) Select(field string, fields ...string) *ExerciseAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExerciseAttempt entity.
func (_u *ExerciseAttemptUpdateOne) Save(ctx context.Context) (*ExerciseAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseAttemptUpdateOne) SaveX(ctx context.Context) *ExerciseAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExerciseAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExerciseAttemptUpdateOne) sqlSave(ctx context.Context) (_node *ExerciseAttempt, err error) {
	_spec := sqlgraph.NewUpdateSpec(exerciseattempt.Table, exerciseattempt.Columns, sqlgraph.NewFieldSpec(exerciseattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExerciseAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exerciseattempt.FieldID)
		for _, f := range fields {
			if !exerciseattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exerciseattempt.FieldID {
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
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(exerciseattempt.FieldFeedback, field.TypeJSON)
	}
	_node = &ExerciseAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exerciseattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
