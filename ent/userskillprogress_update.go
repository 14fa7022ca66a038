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
	"github.com/abhisek/skillforge/ent/predicate"
	"github.com/abhisek/skillforge/ent/userskillprogress"
)

// UserSkillProgressUpdate is the builder for updating UserSkillProgress entities.
type UserSkillProgressUpdate struct {
	config
	hooks    []Hook
	mutation *UserSkillProgressMutation
}

// Where appends a list predicates to the UserSkillProgressUpdate builder.
func (_u *UserSkillProgressUpdate) Where(ps ...predicate.UserSkillProgress) *UserSkillProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserSkillProgressUpdate) SetUserID(v string) *UserSkillProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableUserID(v *string) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *UserSkillProgressUpdate) SetSkillID(v string) *UserSkillProgressUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableSkillID(v *string) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *UserSkillProgressUpdate) SetMasteryLevel(v int) *UserSkillProgressUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableMasteryLevel(v *int) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *UserSkillProgressUpdate) AddMasteryLevel(v int) *UserSkillProgressUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetIsUnlocked sets the "is_unlocked" field.
func (_u *UserSkillProgressUpdate) SetIsUnlocked(v bool) *UserSkillProgressUpdate {
	_u.mutation.SetIsUnlocked(v)
	return _u
}

// SetNillableIsUnlocked sets the "is_unlocked" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableIsUnlocked(v *bool) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetIsUnlocked(*v)
	}
	return _u
}

// SetIsMastered sets the "is_mastered" field.
func (_u *UserSkillProgressUpdate) SetIsMastered(v bool) *UserSkillProgressUpdate {
	_u.mutation.SetIsMastered(v)
	return _u
}

// SetNillableIsMastered sets the "is_mastered" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableIsMastered(v *bool) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetIsMastered(*v)
	}
	return _u
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (_u *UserSkillProgressUpdate) SetTotalXpEarned(v int) *UserSkillProgressUpdate {
	_u.mutation.ResetTotalXpEarned()
	_u.mutation.SetTotalXpEarned(v)
	return _u
}

// SetNillableTotalXpEarned sets the "total_xp_earned" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableTotalXpEarned(v *int) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetTotalXpEarned(*v)
	}
	return _u
}

// AddTotalXpEarned adds value to the "total_xp_earned" field.
func (_u *UserSkillProgressUpdate) AddTotalXpEarned(v int) *UserSkillProgressUpdate {
	_u.mutation.AddTotalXpEarned(v)
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *UserSkillProgressUpdate) SetLessonsCompleted(v int) *UserSkillProgressUpdate {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableLessonsCompleted(v *int) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *UserSkillProgressUpdate) AddLessonsCompleted(v int) *UserSkillProgressUpdate {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_u *UserSkillProgressUpdate) SetExercisesCompleted(v int) *UserSkillProgressUpdate {
	_u.mutation.ResetExercisesCompleted()
	_u.mutation.SetExercisesCompleted(v)
	return _u
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableExercisesCompleted(v *int) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetExercisesCompleted(*v)
	}
	return _u
}

// AddExercisesCompleted adds value to the "exercises_completed" field.
func (_u *UserSkillProgressUpdate) AddExercisesCompleted(v int) *UserSkillProgressUpdate {
	_u.mutation.AddExercisesCompleted(v)
	return _u
}

// SetFirstUnlockedAt sets the "first_unlocked_at" field.
func (_u *UserSkillProgressUpdate) SetFirstUnlockedAt(v time.Time) *UserSkillProgressUpdate {
	_u.mutation.SetFirstUnlockedAt(v)
	return _u
}

// SetNillableFirstUnlockedAt sets the "first_unlocked_at" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableFirstUnlockedAt(v *time.Time) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetFirstUnlockedAt(*v)
	}
	return _u
}

// ClearFirstUnlockedAt clears the value of the "first_unlocked_at" field.
func (_u *UserSkillProgressUpdate) ClearFirstUnlockedAt() *UserSkillProgressUpdate {
	_u.mutation.ClearFirstUnlockedAt()
	return _u
}

// SetMasteredAt sets the "mastered_at" field.
func (_u *UserSkillProgressUpdate) SetMasteredAt(v time.Time) *UserSkillProgressUpdate {
	_u.mutation.SetMasteredAt(v)
	return _u
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableMasteredAt(v *time.Time) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetMasteredAt(*v)
	}
	return _u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (_u *UserSkillProgressUpdate) ClearMasteredAt() *UserSkillProgressUpdate {
	_u.mutation.ClearMasteredAt()
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *UserSkillProgressUpdate) SetLastPracticedAt(v time.Time) *UserSkillProgressUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *UserSkillProgressUpdate) SetNillableLastPracticedAt(v *time.Time) *UserSkillProgressUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *UserSkillProgressUpdate) ClearLastPracticedAt() *UserSkillProgressUpdate {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// Mutation returns the UserSkillProgressMutation object of the builder.
func (_u *UserSkillProgressUpdate) Mutation() *UserSkillProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserSkillProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSkillProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserSkillProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSkillProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserSkillProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userskillprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := userskillprogress.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserSkillProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userskillprogress.Table, userskillprogress.Columns, sqlgraph.NewFieldSpec(userskillprogress.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userskillprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(userskillprogress.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(userskillprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(userskillprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsUnlocked(); ok {
		_spec.SetField(userskillprogress.FieldIsUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsMastered(); ok {
		_spec.SetField(userskillprogress.FieldIsMastered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalXpEarned(); ok {
		_spec.SetField(userskillprogress.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXpEarned(); ok {
		_spec.AddField(userskillprogress.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(userskillprogress.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(userskillprogress.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExercisesCompleted(); ok {
		_spec.SetField(userskillprogress.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesCompleted(); ok {
		_spec.AddField(userskillprogress.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstUnlockedAt(); ok {
		_spec.SetField(userskillprogress.FieldFirstUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.FirstUnlockedAtCleared() {
		_spec.ClearField(userskillprogress.FieldFirstUnlockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MasteredAt(); ok {
		_spec.SetField(userskillprogress.FieldMasteredAt, field.TypeTime, value)
	}
	if _u.mutation.MasteredAtCleared() {
		_spec.ClearField(userskillprogress.FieldMasteredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(userskillprogress.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(userskillprogress.FieldLastPracticedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userskillprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserSkillProgressUpdateOne is the builder for updating a single UserSkillProgress entity.
type UserSkillProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserSkillProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserSkillProgressUpdateOne) SetUserID(v string) *UserSkillProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableUserID(v *string) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *UserSkillProgressUpdateOne) SetSkillID(v string) *UserSkillProgressUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableSkillID(v *string) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *UserSkillProgressUpdateOne) SetMasteryLevel(v int) *UserSkillProgressUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableMasteryLevel(v *int) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *UserSkillProgressUpdateOne) AddMasteryLevel(v int) *UserSkillProgressUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetIsUnlocked sets the "is_unlocked" field.
func (_u *UserSkillProgressUpdateOne) SetIsUnlocked(v bool) *UserSkillProgressUpdateOne {
	_u.mutation.SetIsUnlocked(v)
	return _u
}

// SetNillableIsUnlocked sets the "is_unlocked" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableIsUnlocked(v *bool) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetIsUnlocked(*v)
	}
	return _u
}

// SetIsMastered sets the "is_mastered" field.
func (_u *UserSkillProgressUpdateOne) SetIsMastered(v bool) *UserSkillProgressUpdateOne {
	_u.mutation.SetIsMastered(v)
	return _u
}

// SetNillableIsMastered sets the "is_mastered" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableIsMastered(v *bool) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetIsMastered(*v)
	}
	return _u
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (_u *UserSkillProgressUpdateOne) SetTotalXpEarned(v int) *UserSkillProgressUpdateOne {
	_u.mutation.ResetTotalXpEarned()
	_u.mutation.SetTotalXpEarned(v)
	return _u
}

// SetNillableTotalXpEarned sets the "total_xp_earned" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableTotalXpEarned(v *int) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetTotalXpEarned(*v)
	}
	return _u
}

// AddTotalXpEarned adds value to the "total_xp_earned" field.
func (_u *UserSkillProgressUpdateOne) AddTotalXpEarned(v int) *UserSkillProgressUpdateOne {
	_u.mutation.AddTotalXpEarned(v)
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *UserSkillProgressUpdateOne) SetLessonsCompleted(v int) *UserSkillProgressUpdateOne {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableLessonsCompleted(v *int) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *UserSkillProgressUpdateOne) AddLessonsCompleted(v int) *UserSkillProgressUpdateOne {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_u *UserSkillProgressUpdateOne) SetExercisesCompleted(v int) *UserSkillProgressUpdateOne {
	_u.mutation.ResetExercisesCompleted()
	_u.mutation.SetExercisesCompleted(v)
	return _u
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableExercisesCompleted(v *int) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetExercisesCompleted(*v)
	}
	return _u
}

// AddExercisesCompleted adds value to the "exercises_completed" field.
func (_u *UserSkillProgressUpdateOne) AddExercisesCompleted(v int) *UserSkillProgressUpdateOne {
	_u.mutation.AddExercisesCompleted(v)
	return _u
}

// SetFirstUnlockedAt sets the "first_unlocked_at" field.
func (_u *UserSkillProgressUpdateOne) SetFirstUnlockedAt(v time.Time) *UserSkillProgressUpdateOne {
	_u.mutation.SetFirstUnlockedAt(v)
	return _u
}

// SetNillableFirstUnlockedAt sets the "first_unlocked_at" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableFirstUnlockedAt(v *time.Time) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetFirstUnlockedAt(*v)
	}
	return _u
}

// ClearFirstUnlockedAt clears the value of the "first_unlocked_at" field.
func (_u *UserSkillProgressUpdateOne) ClearFirstUnlockedAt() *UserSkillProgressUpdateOne {
	_u.mutation.ClearFirstUnlockedAt()
	return _u
}

// SetMasteredAt sets the "mastered_at" field.
func (_u *UserSkillProgressUpdateOne) SetMasteredAt(v time.Time) *UserSkillProgressUpdateOne {
	_u.mutation.SetMasteredAt(v)
	return _u
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableMasteredAt(v *time.Time) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetMasteredAt(*v)
	}
	return _u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (_u *UserSkillProgressUpdateOne) ClearMasteredAt() *UserSkillProgressUpdateOne {
	_u.mutation.ClearMasteredAt()
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *UserSkillProgressUpdateOne) SetLastPracticedAt(v time.Time) *UserSkillProgressUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *UserSkillProgressUpdateOne) SetNillableLastPracticedAt(v *time.Time) *UserSkillProgressUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *UserSkillProgressUpdateOne) ClearLastPracticedAt() *UserSkillProgressUpdateOne {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// Mutation returns the UserSkillProgressMutation object of the builder.
func (_u *UserSkillProgressUpdateOne) Mutation() *UserSkillProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserSkillProgressUpdate builder.
func (_u *UserSkillProgressUpdateOne) Where(ps ...predicate.UserSkillProgress) *UserSkillProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserSkillProgressUpdateOne) Select(field string, fields ...string) *UserSkillProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserSkillProgress entity.
func (_u *UserSkillProgressUpdateOne) Save(ctx context.Context) (*UserSkillProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSkillProgressUpdateOne) SaveX(ctx context.Context) *UserSkillProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserSkillProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSkillProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserSkillProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userskillprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := userskillprogress.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserSkillProgressUpdateOne) sqlSave(ctx context.Context) (_node *UserSkillProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userskillprogress.Table, userskillprogress.Columns, sqlgraph.NewFieldSpec(userskillprogress.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserSkillProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userskillprogress.FieldID)
		for _, f := range fields {
			if !userskillprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userskillprogress.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userskillprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(userskillprogress.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(userskillprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(userskillprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsUnlocked(); ok {
		_spec.SetField(userskillprogress.FieldIsUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsMastered(); ok {
		_spec.SetField(userskillprogress.FieldIsMastered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalXpEarned(); ok {
		_spec.SetField(userskillprogress.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXpEarned(); ok {
		_spec.AddField(userskillprogress.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(userskillprogress.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(userskillprogress.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExercisesCompleted(); ok {
		_spec.SetField(userskillprogress.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesCompleted(); ok {
		_spec.AddField(userskillprogress.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstUnlockedAt(); ok {
		_spec.SetField(userskillprogress.FieldFirstUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.FirstUnlockedAtCleared() {
		_spec.ClearField(userskillprogress.FieldFirstUnlockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MasteredAt(); ok {
		_spec.SetField(userskillprogress.FieldMasteredAt, field.TypeTime, value)
	}
	if _u.mutation.MasteredAtCleared() {
		_spec.ClearField(userskillprogress.FieldMasteredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(userskillprogress.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(userskillprogress.FieldLastPracticedAt, field.TypeTime)
	}
	_node = &UserSkillProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userskillprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
