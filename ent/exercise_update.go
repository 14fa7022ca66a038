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
	"github.com/abhisek/skillforge/ent/exercise"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ExerciseUpdate is the builder for updating Exercise entities.
type ExerciseUpdate struct {
	config
	hooks    []Hook
	mutation *ExerciseMutation
}

// Where appends a list predicates to the ExerciseUpdate builder.
func (_u *ExerciseUpdate) Where(ps ...predicate.Exercise) *ExerciseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *ExerciseUpdate) SetSkillID(v string) *ExerciseUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableSkillID(v *string) *ExerciseUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ExerciseUpdate) SetType(v exercise.Type) *ExerciseUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableType(v *exercise.Type) *ExerciseUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ExerciseUpdate) SetQuestion(v string) *ExerciseUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableQuestion(v *string) *ExerciseUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ExerciseUpdate) SetOptions(v []string) *ExerciseUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ExerciseUpdate) AppendOptions(v []string) *ExerciseUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ExerciseUpdate) ClearOptions() *ExerciseUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ExerciseUpdate) SetCorrectAnswer(v string) *ExerciseUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableCorrectAnswer(v *string) *ExerciseUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *ExerciseUpdate) ClearCorrectAnswer() *ExerciseUpdate {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetRubric sets the "rubric" field.
func (_u *ExerciseUpdate) SetRubric(v string) *ExerciseUpdate {
	_u.mutation.SetRubric(v)
	return _u
}

// SetNillableRubric sets the "rubric" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableRubric(v *string) *ExerciseUpdate {
	if v != nil {
		_u.SetRubric(*v)
	}
	return _u
}

// ClearRubric clears the value of the "rubric" field.
func (_u *ExerciseUpdate) ClearRubric() *ExerciseUpdate {
	_u.mutation.ClearRubric()
	return _u
}

// SetPassingScore sets the "passing_score" field.
func (_u *ExerciseUpdate) SetPassingScore(v int) *ExerciseUpdate {
	_u.mutation.ResetPassingScore()
	_u.mutation.SetPassingScore(v)
	return _u
}

// SetNillablePassingScore sets the "passing_score" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillablePassingScore(v *int) *ExerciseUpdate {
	if v != nil {
		_u.SetPassingScore(*v)
	}
	return _u
}

// AddPassingScore adds value to the "passing_score" field.
func (_u *ExerciseUpdate) AddPassingScore(v int) *ExerciseUpdate {
	_u.mutation.AddPassingScore(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *ExerciseUpdate) SetMaxAttempts(v int) *ExerciseUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *ExerciseUpdate) SetNillableMaxAttempts(v *int) *ExerciseUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *ExerciseUpdate) AddMaxAttempts(v int) *ExerciseUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// Mutation returns the ExerciseMutation object of the builder.
func (_u *ExerciseUpdate) Mutation() *ExerciseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExerciseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExerciseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := exercise.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Exercise.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := exercise.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Exercise.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := exercise.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Exercise.question": %w`, err)}
		}
	}
	return nil
}

func (_u *ExerciseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exercise.Table, exercise.Columns, sqlgraph.NewFieldSpec(exercise.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(exercise.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(exercise.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(exercise.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(exercise.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exercise.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(exercise.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(exercise.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(exercise.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Rubric(); ok {
		_spec.SetField(exercise.FieldRubric, field.TypeString, value)
	}
	if _u.mutation.RubricCleared() {
		_spec.ClearField(exercise.FieldRubric, field.TypeString)
	}
	if value, ok := _u.mutation.PassingScore(); ok {
		_spec.SetField(exercise.FieldPassingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassingScore(); ok {
		_spec.AddField(exercise.FieldPassingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(exercise.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(exercise.FieldMaxAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exercise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExerciseUpdateOne is the builder for updating a single Exercise entity.
type ExerciseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExerciseMutation
}

// SetSkillID sets the "skill_id" field.
func (_u *ExerciseUpdateOne) SetSkillID(v string) *ExerciseUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableSkillID(v *string) *ExerciseUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ExerciseUpdateOne) SetType(v exercise.Type) *ExerciseUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableType(v *exercise.Type) *ExerciseUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ExerciseUpdateOne) SetQuestion(v string) *ExerciseUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableQuestion(v *string) *ExerciseUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ExerciseUpdateOne) SetOptions(v []string) *ExerciseUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ExerciseUpdateOne) AppendOptions(v []string) *ExerciseUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ExerciseUpdateOne) ClearOptions() *ExerciseUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ExerciseUpdateOne) SetCorrectAnswer(v string) *ExerciseUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableCorrectAnswer(v *string) *ExerciseUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *ExerciseUpdateOne) ClearCorrectAnswer() *ExerciseUpdateOne {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetRubric sets the "rubric" field.
func (_u *ExerciseUpdateOne) SetRubric(v string) *ExerciseUpdateOne {
	_u.mutation.SetRubric(v)
	return _u
}

// SetNillableRubric sets the "rubric" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableRubric(v *string) *ExerciseUpdateOne {
	if v != nil {
		_u.SetRubric(*v)
	}
	return _u
}

// ClearRubric clears the value of the "rubric" field.
func (_u *ExerciseUpdateOne) ClearRubric() *ExerciseUpdateOne {
	_u.mutation.ClearRubric()
	return _u
}

// SetPassingScore sets the "passing_score" field.
func (_u *ExerciseUpdateOne) SetPassingScore(v int) *ExerciseUpdateOne {
	_u.mutation.ResetPassingScore()
	_u.mutation.SetPassingScore(v)
	return _u
}

// SetNillablePassingScore sets the "passing_score" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillablePassingScore(v *int) *ExerciseUpdateOne {
	if v != nil {
		_u.SetPassingScore(*v)
	}
	return _u
}

// AddPassingScore adds value to the "passing_score" field.
func (_u *ExerciseUpdateOne) AddPassingScore(v int) *ExerciseUpdateOne {
	_u.mutation.AddPassingScore(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *ExerciseUpdateOne) SetMaxAttempts(v int) *ExerciseUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *ExerciseUpdateOne) SetNillableMaxAttempts(v *int) *ExerciseUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *ExerciseUpdateOne) AddMaxAttempts(v int) *ExerciseUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// Mutation returns the ExerciseMutation object of the builder.
func (_u *ExerciseUpdateOne) Mutation() *ExerciseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExerciseUpdate builder.
func (_u *ExerciseUpdateOne) Where(ps ...predicate.Exercise) *ExerciseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExerciseUpdateOne) Select(field string, fields ...string) *ExerciseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Exercise entity.
func (_u *ExerciseUpdateOne) Save(ctx context.Context) (*Exercise, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseUpdateOne) SaveX(ctx context.Context) *Exercise {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExerciseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := exercise.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "Exercise.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := exercise.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Exercise.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := exercise.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Exercise.question": %w`, err)}
		}
	}
	return nil
}

func (_u *ExerciseUpdateOne) sqlSave(ctx context.Context) (_node *Exercise, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exercise.Table, exercise.Columns, sqlgraph.NewFieldSpec(exercise.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Exercise.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exercise.FieldID)
		for _, f := range fields {
			if !exercise.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exercise.FieldID {
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
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(exercise.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(exercise.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(exercise.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(exercise.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exercise.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(exercise.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(exercise.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(exercise.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Rubric(); ok {
		_spec.SetField(exercise.FieldRubric, field.TypeString, value)
	}
	if _u.mutation.RubricCleared() {
		_spec.ClearField(exercise.FieldRubric, field.TypeString)
	}
	if value, ok := _u.mutation.PassingScore(); ok {
		_spec.SetField(exercise.FieldPassingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassingScore(); ok {
		_spec.AddField(exercise.FieldPassingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(exercise.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(exercise.FieldMaxAttempts, field.TypeInt, value)
	}
	_node = &Exercise{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exercise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
