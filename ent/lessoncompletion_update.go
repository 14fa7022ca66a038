// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillforge/ent/lessoncompletion"
	"github.com/abhisek/skillforge/ent/predicate"
)

// LessonCompletionUpdate is the builder for updating LessonCompletion entities.
type LessonCompletionUpdate struct {
	config
	hooks    []Hook
	mutation *LessonCompletionMutation
}

// Where appends a list predicates to the LessonCompletionUpdate builder.
func (_u *LessonCompletionUpdate) Where(ps ...predicate.LessonCompletion) *LessonCompletionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *LessonCompletionUpdate) SetTimeSpentSecs(v int) *LessonCompletionUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *LessonCompletionUpdate) SetNillableTimeSpentSecs(v *int) *LessonCompletionUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *LessonCompletionUpdate) AddTimeSpentSecs(v int) *LessonCompletionUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetComprehensionScore sets the "comprehension_score" field.
func (_u *LessonCompletionUpdate) SetComprehensionScore(v int) *LessonCompletionUpdate {
	_u.mutation.ResetComprehensionScore()
	_u.mutation.SetComprehensionScore(v)
	return _u
}

// SetNillableComprehensionScore sets the "comprehension_score" field if the given value is not nil.
func (_u *LessonCompletionUpdate) SetNillableComprehensionScore(v *int) *LessonCompletionUpdate {
	if v != nil {
		_u.SetComprehensionScore(*v)
	}
	return _u
}

// AddComprehensionScore adds value to the "comprehension_score" field.
func (_u *LessonCompletionUpdate) AddComprehensionScore(v int) *LessonCompletionUpdate {
	_u.mutation.AddComprehensionScore(v)
	return _u
}

// Mutation returns the LessonCompletionMutation object of the builder.
func (_u *LessonCompletionUpdate) Mutation() *LessonCompletionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonCompletionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonCompletionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonCompletionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonCompletionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LessonCompletionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessoncompletion.Table, lessoncompletion.Columns, sqlgraph.NewFieldSpec(lessoncompletion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(lessoncompletion.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(lessoncompletion.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ComprehensionScore(); ok {
		_spec.SetField(lessoncompletion.FieldComprehensionScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComprehensionScore(); ok {
		_spec.AddField(lessoncompletion.FieldComprehensionScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessoncompletion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonCompletionUpdateOne is the builder for updating a single LessonCompletion entity.
type LessonCompletionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonCompletionMutation
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *LessonCompletionUpdateOne) SetTimeSpentSecs(v int) *LessonCompletionUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *LessonCompletionUpdateOne) SetNillableTimeSpentSecs(v *int) *LessonCompletionUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *LessonCompletionUpdateOne) AddTimeSpentSecs(v int) *LessonCompletionUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetComprehensionScore sets the "comprehension_score" field.
func (_u *LessonCompletionUpdateOne) SetComprehensionScore(v int) *LessonCompletionUpdateOne {
	_u.mutation.ResetComprehensionScore()
	_u.mutation.SetComprehensionScore(v)
	return _u
}

// SetNillableComprehensionScore sets the "comprehension_score" field if the given value is not nil.
func (_u *LessonCompletionUpdateOne) SetNillableComprehensionScore(v *int) *LessonCompletionUpdateOne {
	if v != nil {
		_u.SetComprehensionScore(*v)
	}
	return _u
}

// AddComprehensionScore adds value to the "comprehension_score" field.
func (_u *LessonCompletionUpdateOne) AddComprehensionScore(v int) *LessonCompletionUpdateOne {
	_u.mutation.AddComprehensionScore(v)
	return _u
}

// Mutation returns the LessonCompletionMutation object of the builder.
func (_u *LessonCompletionUpdateOne) Mutation() *LessonCompletionMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonCompletionUpdate builder.
func (_u *LessonCompletionUpdateOne) Where(ps ...predicate.LessonCompletion) *LessonCompletionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonCompletionUpdateOne) Select(field string, fields ...string) *LessonCompletionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonCompletion entity.
func (_u *LessonCompletionUpdateOne) Save(ctx context.Context) (*LessonCompletion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonCompletionUpdateOne) SaveX(ctx context.Context) *LessonCompletion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonCompletionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonCompletionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LessonCompletionUpdateOne) sqlSave(ctx context.Context) (_node *LessonCompletion, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessoncompletion.Table, lessoncompletion.Columns, sqlgraph.NewFieldSpec(lessoncompletion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonCompletion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessoncompletion.FieldID)
		for _, f := range fields {
			if !lessoncompletion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessoncompletion.FieldID {
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
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(lessoncompletion.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(lessoncompletion.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ComprehensionScore(); ok {
		_spec.SetField(lessoncompletion.FieldComprehensionScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComprehensionScore(); ok {
		_spec.AddField(lessoncompletion.FieldComprehensionScore, field.TypeInt, value)
	}
	_node = &LessonCompletion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessoncompletion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
