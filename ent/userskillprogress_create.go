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
	"github.com/abhisek/skillforge/ent/userskillprogress"
)

// UserSkillProgressCreate is the builder for creating a UserSkillProgress entity.
type UserSkillProgressCreate struct {
	config
	mutation *UserSkillProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserSkillProgressCreate) SetUserID(v string) *UserSkillProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *UserSkillProgressCreate) SetSkillID(v string) *UserSkillProgressCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *UserSkillProgressCreate) SetMasteryLevel(v int) *UserSkillProgressCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableMasteryLevel(v *int) *UserSkillProgressCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetIsUnlocked sets the "is_unlocked" field.
func (_c *UserSkillProgressCreate) SetIsUnlocked(v bool) *UserSkillProgressCreate {
	_c.mutation.SetIsUnlocked(v)
	return _c
}

// SetNillableIsUnlocked sets the "is_unlocked" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableIsUnlocked(v *bool) *UserSkillProgressCreate {
	if v != nil {
		_c.SetIsUnlocked(*v)
	}
	return _c
}

// SetIsMastered sets the "is_mastered" field.
func (_c *UserSkillProgressCreate) SetIsMastered(v bool) *UserSkillProgressCreate {
	_c.mutation.SetIsMastered(v)
	return _c
}

// SetNillableIsMastered sets the "is_mastered" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableIsMastered(v *bool) *UserSkillProgressCreate {
	if v != nil {
		_c.SetIsMastered(*v)
	}
	return _c
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (_c *UserSkillProgressCreate) SetTotalXpEarned(v int) *UserSkillProgressCreate {
	_c.mutation.SetTotalXpEarned(v)
	return _c
}

// SetNillableTotalXpEarned sets the "total_xp_earned" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableTotalXpEarned(v *int) *UserSkillProgressCreate {
	if v != nil {
		_c.SetTotalXpEarned(*v)
	}
	return _c
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_c *UserSkillProgressCreate) SetLessonsCompleted(v int) *UserSkillProgressCreate {
	_c.mutation.SetLessonsCompleted(v)
	return _c
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableLessonsCompleted(v *int) *UserSkillProgressCreate {
	if v != nil {
		_c.SetLessonsCompleted(*v)
	}
	return _c
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_c *UserSkillProgressCreate) SetExercisesCompleted(v int) *UserSkillProgressCreate {
	_c.mutation.SetExercisesCompleted(v)
	return _c
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableExercisesCompleted(v *int) *UserSkillProgressCreate {
	if v != nil {
		_c.SetExercisesCompleted(*v)
	}
	return _c
}

// SetFirstUnlockedAt sets the "first_unlocked_at" field.
func (_c *UserSkillProgressCreate) SetFirstUnlockedAt(v time.Time) *UserSkillProgressCreate {
	_c.mutation.SetFirstUnlockedAt(v)
	return _c
}

// SetNillableFirstUnlockedAt sets the "first_unlocked_at" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableFirstUnlockedAt(v *time.Time) *UserSkillProgressCreate {
	if v != nil {
		_c.SetFirstUnlockedAt(*v)
	}
	return _c
}

// SetMasteredAt sets the "mastered_at" field.
func (_c *UserSkillProgressCreate) SetMasteredAt(v time.Time) *UserSkillProgressCreate {
	_c.mutation.SetMasteredAt(v)
	return _c
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableMasteredAt(v *time.Time) *UserSkillProgressCreate {
	if v != nil {
		_c.SetMasteredAt(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *UserSkillProgressCreate) SetLastPracticedAt(v time.Time) *UserSkillProgressCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableLastPracticedAt(v *time.Time) *UserSkillProgressCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserSkillProgressCreate) SetID(v string) *UserSkillProgressCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserSkillProgressMutation object of the builder.
func (_c *UserSkillProgressCreate) Mutation() *UserSkillProgressMutation {
	return _c.mutation
}

// Save creates the UserSkillProgress in the database.
func (_c *UserSkillProgressCreate) Save(ctx context.Context) (*UserSkillProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserSkillProgressCreate) SaveX(ctx context.Context) *UserSkillProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSkillProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSkillProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserSkillProgressCreate) defaults() {
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := userskillprogress.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.IsUnlocked(); !ok {
		v := userskillprogress.DefaultIsUnlocked
		_c.mutation.SetIsUnlocked(v)
	}
	if _, ok := _c.mutation.IsMastered(); !ok {
		v := userskillprogress.DefaultIsMastered
		_c.mutation.SetIsMastered(v)
	}
	if _, ok := _c.mutation.TotalXpEarned(); !ok {
		v := userskillprogress.DefaultTotalXpEarned
		_c.mutation.SetTotalXpEarned(v)
	}
	if _, ok := _c.mutation.LessonsCompleted(); !ok {
		v := userskillprogress.DefaultLessonsCompleted
		_c.mutation.SetLessonsCompleted(v)
	}
	if _, ok := _c.mutation.ExercisesCompleted(); !ok {
		v := userskillprogress.DefaultExercisesCompleted
		_c.mutation.SetExercisesCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserSkillProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserSkillProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userskillprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "UserSkillProgress.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := userskillprogress.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "UserSkillProgress.mastery_level"`)}
	}
	if _, ok := _c.mutation.IsUnlocked(); !ok {
		return &ValidationError{Name: "is_unlocked", err: errors.New(`ent: missing required field "UserSkillProgress.is_unlocked"`)}
	}
	if _, ok := _c.mutation.IsMastered(); !ok {
		return &ValidationError{Name: "is_mastered", err: errors.New(`ent: missing required field "UserSkillProgress.is_mastered"`)}
	}
	if _, ok := _c.mutation.TotalXpEarned(); !ok {
		return &ValidationError{Name: "total_xp_earned", err: errors.New(`ent: missing required field "UserSkillProgress.total_xp_earned"`)}
	}
	if _, ok := _c.mutation.LessonsCompleted(); !ok {
		return &ValidationError{Name: "lessons_completed", err: errors.New(`ent: missing required field "UserSkillProgress.lessons_completed"`)}
	}
	if _, ok := _c.mutation.ExercisesCompleted(); !ok {
		return &ValidationError{Name: "exercises_completed", err: errors.New(`ent: missing required field "UserSkillProgress.exercises_completed"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := userskillprogress.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.id": %w`, err)}
		}
	}
	return nil
}

func (_c *UserSkillProgressCreate) sqlSave(ctx context.Context) (*UserSkillProgress, error) {
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
			return nil, fmt.Errorf("unexpected UserSkillProgress.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserSkillProgressCreate) createSpec() (*UserSkillProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &UserSkillProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userskillprogress.Table, sqlgraph.NewFieldSpec(userskillprogress.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userskillprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(userskillprogress.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(userskillprogress.FieldMasteryLevel, field.TypeInt, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.IsUnlocked(); ok {
		_spec.SetField(userskillprogress.FieldIsUnlocked, field.TypeBool, value)
		_node.IsUnlocked = value
	}
	if value, ok := _c.mutation.IsMastered(); ok {
		_spec.SetField(userskillprogress.FieldIsMastered, field.TypeBool, value)
		_node.IsMastered = value
	}
	if value, ok := _c.mutation.TotalXpEarned(); ok {
		_spec.SetField(userskillprogress.FieldTotalXpEarned, field.TypeInt, value)
		_node.TotalXpEarned = value
	}
	if value, ok := _c.mutation.LessonsCompleted(); ok {
		_spec.SetField(userskillprogress.FieldLessonsCompleted, field.TypeInt, value)
		_node.LessonsCompleted = value
	}
	if value, ok := _c.mutation.ExercisesCompleted(); ok {
		_spec.SetField(userskillprogress.FieldExercisesCompleted, field.TypeInt, value)
		_node.ExercisesCompleted = value
	}
	if value, ok := _c.mutation.FirstUnlockedAt(); ok {
		_spec.SetField(userskillprogress.FieldFirstUnlockedAt, field.TypeTime, value)
		_node.FirstUnlockedAt = &value
	}
	if value, ok := _c.mutation.MasteredAt(); ok {
		_spec.SetField(userskillprogress.FieldMasteredAt, field.TypeTime, value)
		_node.MasteredAt = &value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(userskillprogress.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserSkillProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserSkillProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserSkillProgressCreate) OnConflict(opts ...sql.ConflictOption) *UserSkillProgressUpsertOne {
	_c.conflict = opts
	return &UserSkillProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserSkillProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserSkillProgressCreate) OnConflictColumns(columns ...string) *UserSkillProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserSkillProgressUpsertOne{
		create: _c,
	}
}

type (
	// UserSkillProgressUpsertOne is the builder for "upsert"-ing
	//  one UserSkillProgress node.
	UserSkillProgressUpsertOne struct {
		create *UserSkillProgressCreate
	}

	// UserSkillProgressUpsert is the "OnConflict" setter.
	UserSkillProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserSkillProgressUpsert) SetUserID(v string) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateUserID() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldUserID)
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *UserSkillProgressUpsert) SetSkillID(v string) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldSkillID, v)
	return u
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateSkillID() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldSkillID)
	return u
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *UserSkillProgressUpsert) SetMasteryLevel(v int) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldMasteryLevel, v)
	return u
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateMasteryLevel() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldMasteryLevel)
	return u
}

// AddMasteryLevel adds v to the "mastery_level" field.
func (u *UserSkillProgressUpsert) AddMasteryLevel(v int) *UserSkillProgressUpsert {
	u.Add(userskillprogress.FieldMasteryLevel, v)
	return u
}

// SetIsUnlocked sets the "is_unlocked" field.
func (u *UserSkillProgressUpsert) SetIsUnlocked(v bool) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldIsUnlocked, v)
	return u
}

// UpdateIsUnlocked sets the "is_unlocked" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateIsUnlocked() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldIsUnlocked)
	return u
}

// SetIsMastered sets the "is_mastered" field.
func (u *UserSkillProgressUpsert) SetIsMastered(v bool) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldIsMastered, v)
	return u
}

// UpdateIsMastered sets the "is_mastered" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateIsMastered() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldIsMastered)
	return u
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (u *UserSkillProgressUpsert) SetTotalXpEarned(v int) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldTotalXpEarned, v)
	return u
}

// UpdateTotalXpEarned sets the "total_xp_earned" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateTotalXpEarned() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldTotalXpEarned)
	return u
}

// AddTotalXpEarned adds v to the "total_xp_earned" field.
func (u *UserSkillProgressUpsert) AddTotalXpEarned(v int) *UserSkillProgressUpsert {
	u.Add(userskillprogress.FieldTotalXpEarned, v)
	return u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (u *UserSkillProgressUpsert) SetLessonsCompleted(v int) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldLessonsCompleted, v)
	return u
}

// UpdateLessonsCompleted sets the "lessons_completed" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateLessonsCompleted() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldLessonsCompleted)
	return u
}

// AddLessonsCompleted adds v to the "lessons_completed" field.
func (u *UserSkillProgressUpsert) AddLessonsCompleted(v int) *UserSkillProgressUpsert {
	u.Add(userskillprogress.FieldLessonsCompleted, v)
	return u
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (u *UserSkillProgressUpsert) SetExercisesCompleted(v int) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldExercisesCompleted, v)
	return u
}

// UpdateExercisesCompleted sets the "exercises_completed" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateExercisesCompleted() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldExercisesCompleted)
	return u
}

// AddExercisesCompleted adds v to the "exercises_completed" field.
func (u *UserSkillProgressUpsert) AddExercisesCompleted(v int) *UserSkillProgressUpsert {
	u.Add(userskillprogress.FieldExercisesCompleted, v)
	return u
}

// SetFirstUnlockedAt sets the "first_unlocked_at" field.
func (u *UserSkillProgressUpsert) SetFirstUnlockedAt(v time.Time) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldFirstUnlockedAt, v)
	return u
}

// UpdateFirstUnlockedAt sets the "first_unlocked_at" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateFirstUnlockedAt() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldFirstUnlockedAt)
	return u
}

// ClearFirstUnlockedAt clears the value of the "first_unlocked_at" field.
func (u *UserSkillProgressUpsert) ClearFirstUnlockedAt() *UserSkillProgressUpsert {
	u.SetNull(userskillprogress.FieldFirstUnlockedAt)
	return u
}

// SetMasteredAt sets the "mastered_at" field.
func (u *UserSkillProgressUpsert) SetMasteredAt(v time.Time) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldMasteredAt, v)
	return u
}

// UpdateMasteredAt sets the "mastered_at" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateMasteredAt() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldMasteredAt)
	return u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (u *UserSkillProgressUpsert) ClearMasteredAt() *UserSkillProgressUpsert {
	u.SetNull(userskillprogress.FieldMasteredAt)
	return u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *UserSkillProgressUpsert) SetLastPracticedAt(v time.Time) *UserSkillProgressUpsert {
	u.Set(userskillprogress.FieldLastPracticedAt, v)
	return u
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *UserSkillProgressUpsert) UpdateLastPracticedAt() *UserSkillProgressUpsert {
	u.SetExcluded(userskillprogress.FieldLastPracticedAt)
	return u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (u *UserSkillProgressUpsert) ClearLastPracticedAt() *UserSkillProgressUpsert {
	u.SetNull(userskillprogress.FieldLastPracticedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserSkillProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userskillprogress.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserSkillProgressUpsertOne) UpdateNewValues() *UserSkillProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(userskillprogress.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserSkillProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserSkillProgressUpsertOne) Ignore() *UserSkillProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserSkillProgressUpsertOne) DoNothing() *UserSkillProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserSkillProgressCreate.OnConflict
// documentation for more info.
func (u *UserSkillProgressUpsertOne) Update(set func(*UserSkillProgressUpsert)) *UserSkillProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserSkillProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserSkillProgressUpsertOne) SetUserID(v string) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateUserID() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *UserSkillProgressUpsertOne) SetSkillID(v string) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateSkillID() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateSkillID()
	})
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *UserSkillProgressUpsertOne) SetMasteryLevel(v int) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetMasteryLevel(v)
	})
}

// AddMasteryLevel adds v to the "mastery_level" field.
func (u *UserSkillProgressUpsertOne) AddMasteryLevel(v int) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.AddMasteryLevel(v)
	})
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateMasteryLevel() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateMasteryLevel()
	})
}

// SetIsUnlocked sets the "is_unlocked" field.
func (u *UserSkillProgressUpsertOne) SetIsUnlocked(v bool) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetIsUnlocked(v)
	})
}

// UpdateIsUnlocked sets the "is_unlocked" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateIsUnlocked() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateIsUnlocked()
	})
}

// SetIsMastered sets the "is_mastered" field.
func (u *UserSkillProgressUpsertOne) SetIsMastered(v bool) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetIsMastered(v)
	})
}

// UpdateIsMastered sets the "is_mastered" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateIsMastered() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateIsMastered()
	})
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (u *UserSkillProgressUpsertOne) SetTotalXpEarned(v int) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetTotalXpEarned(v)
	})
}

// AddTotalXpEarned adds v to the "total_xp_earned" field.
func (u *UserSkillProgressUpsertOne) AddTotalXpEarned(v int) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.AddTotalXpEarned(v)
	})
}

// UpdateTotalXpEarned sets the "total_xp_earned" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateTotalXpEarned() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateTotalXpEarned()
	})
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (u *UserSkillProgressUpsertOne) SetLessonsCompleted(v int) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetLessonsCompleted(v)
	})
}

// AddLessonsCompleted adds v to the "lessons_completed" field.
func (u *UserSkillProgressUpsertOne) AddLessonsCompleted(v int) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.AddLessonsCompleted(v)
	})
}

// UpdateLessonsCompleted sets the "lessons_completed" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateLessonsCompleted() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateLessonsCompleted()
	})
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (u *UserSkillProgressUpsertOne) SetExercisesCompleted(v int) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetExercisesCompleted(v)
	})
}

// AddExercisesCompleted adds v to the "exercises_completed" field.
func (u *UserSkillProgressUpsertOne) AddExercisesCompleted(v int) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.AddExercisesCompleted(v)
	})
}

// UpdateExercisesCompleted sets the "exercises_completed" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateExercisesCompleted() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateExercisesCompleted()
	})
}

// SetFirstUnlockedAt sets the "first_unlocked_at" field.
func (u *UserSkillProgressUpsertOne) SetFirstUnlockedAt(v time.Time) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetFirstUnlockedAt(v)
	})
}

// UpdateFirstUnlockedAt sets the "first_unlocked_at" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateFirstUnlockedAt() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateFirstUnlockedAt()
	})
}

// ClearFirstUnlockedAt clears the value of the "first_unlocked_at" field.
func (u *UserSkillProgressUpsertOne) ClearFirstUnlockedAt() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.ClearFirstUnlockedAt()
	})
}

// SetMasteredAt sets the "mastered_at" field.
func (u *UserSkillProgressUpsertOne) SetMasteredAt(v time.Time) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetMasteredAt(v)
	})
}

// UpdateMasteredAt sets the "mastered_at" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateMasteredAt() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateMasteredAt()
	})
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (u *UserSkillProgressUpsertOne) ClearMasteredAt() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.ClearMasteredAt()
	})
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *UserSkillProgressUpsertOne) SetLastPracticedAt(v time.Time) *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetLastPracticedAt(v)
	})
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *UserSkillProgressUpsertOne) UpdateLastPracticedAt() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateLastPracticedAt()
	})
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (u *UserSkillProgressUpsertOne) ClearLastPracticedAt() *UserSkillProgressUpsertOne {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.ClearLastPracticedAt()
	})
}

// Exec executes the query.
func (u *UserSkillProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserSkillProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserSkillProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserSkillProgressUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserSkillProgressUpsertOne.ID is not supported by MySQL driver. Use UserSkillProgressUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserSkillProgressUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserSkillProgressCreateBulk is the builder for creating many UserSkillProgress entities in bulk.
type UserSkillProgressCreateBulk struct {
	config
	err      error
	builders []*UserSkillProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the UserSkillProgress entities in the database.
func (_c *UserSkillProgressCreateBulk) Save(ctx context.Context) ([]*UserSkillProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserSkillProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserSkillProgressMutation)
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
func (_c *UserSkillProgressCreateBulk) SaveX(ctx context.Context) []*UserSkillProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSkillProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSkillProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserSkillProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserSkillProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserSkillProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserSkillProgressUpsertBulk {
	_c.conflict = opts
	return &UserSkillProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserSkillProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserSkillProgressCreateBulk) OnConflictColumns(columns ...string) *UserSkillProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserSkillProgressUpsertBulk{
		create: _c,
	}
}

// UserSkillProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of UserSkillProgress nodes.
type UserSkillProgressUpsertBulk struct {
	create *UserSkillProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserSkillProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userskillprogress.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserSkillProgressUpsertBulk) UpdateNewValues() *UserSkillProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(userskillprogress.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserSkillProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserSkillProgressUpsertBulk) Ignore() *UserSkillProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserSkillProgressUpsertBulk) DoNothing() *UserSkillProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserSkillProgressCreateBulk.OnConflict
// documentation for more info.
func (u *UserSkillProgressUpsertBulk) Update(set func(*UserSkillProgressUpsert)) *UserSkillProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserSkillProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserSkillProgressUpsertBulk) SetUserID(v string) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateUserID() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *UserSkillProgressUpsertBulk) SetSkillID(v string) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateSkillID() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateSkillID()
	})
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *UserSkillProgressUpsertBulk) SetMasteryLevel(v int) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetMasteryLevel(v)
	})
}

// AddMasteryLevel adds v to the "mastery_level" field.
func (u *UserSkillProgressUpsertBulk) AddMasteryLevel(v int) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.AddMasteryLevel(v)
	})
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateMasteryLevel() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateMasteryLevel()
	})
}

// SetIsUnlocked sets the "is_unlocked" field.
func (u *UserSkillProgressUpsertBulk) SetIsUnlocked(v bool) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetIsUnlocked(v)
	})
}

// UpdateIsUnlocked sets the "is_unlocked" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateIsUnlocked() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateIsUnlocked()
	})
}

// SetIsMastered sets the "is_mastered" field.
func (u *UserSkillProgressUpsertBulk) SetIsMastered(v bool) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetIsMastered(v)
	})
}

// UpdateIsMastered sets the "is_mastered" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateIsMastered() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateIsMastered()
	})
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (u *UserSkillProgressUpsertBulk) SetTotalXpEarned(v int) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetTotalXpEarned(v)
	})
}

// AddTotalXpEarned adds v to the "total_xp_earned" field.
func (u *UserSkillProgressUpsertBulk) AddTotalXpEarned(v int) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.AddTotalXpEarned(v)
	})
}

// UpdateTotalXpEarned sets the "total_xp_earned" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateTotalXpEarned() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateTotalXpEarned()
	})
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (u *UserSkillProgressUpsertBulk) SetLessonsCompleted(v int) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetLessonsCompleted(v)
	})
}

// AddLessonsCompleted adds v to the "lessons_completed" field.
func (u *UserSkillProgressUpsertBulk) AddLessonsCompleted(v int) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.AddLessonsCompleted(v)
	})
}

// UpdateLessonsCompleted sets the "lessons_completed" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateLessonsCompleted() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateLessonsCompleted()
	})
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (u *UserSkillProgressUpsertBulk) SetExercisesCompleted(v int) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetExercisesCompleted(v)
	})
}

// AddExercisesCompleted adds v to the "exercises_completed" field.
func (u *UserSkillProgressUpsertBulk) AddExercisesCompleted(v int) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.AddExercisesCompleted(v)
	})
}

// UpdateExercisesCompleted sets the "exercises_completed" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateExercisesCompleted() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateExercisesCompleted()
	})
}

// SetFirstUnlockedAt sets the "first_unlocked_at" field.
func (u *UserSkillProgressUpsertBulk) SetFirstUnlockedAt(v time.Time) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetFirstUnlockedAt(v)
	})
}

// UpdateFirstUnlockedAt sets the "first_unlocked_at" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateFirstUnlockedAt() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateFirstUnlockedAt()
	})
}

// ClearFirstUnlockedAt clears the value of the "first_unlocked_at" field.
func (u *UserSkillProgressUpsertBulk) ClearFirstUnlockedAt() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.ClearFirstUnlockedAt()
	})
}

// SetMasteredAt sets the "mastered_at" field.
func (u *UserSkillProgressUpsertBulk) SetMasteredAt(v time.Time) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetMasteredAt(v)
	})
}

// UpdateMasteredAt sets the "mastered_at" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateMasteredAt() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateMasteredAt()
	})
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (u *UserSkillProgressUpsertBulk) ClearMasteredAt() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.ClearMasteredAt()
	})
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *UserSkillProgressUpsertBulk) SetLastPracticedAt(v time.Time) *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.SetLastPracticedAt(v)
	})
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *UserSkillProgressUpsertBulk) UpdateLastPracticedAt() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.UpdateLastPracticedAt()
	})
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (u *UserSkillProgressUpsertBulk) ClearLastPracticedAt() *UserSkillProgressUpsertBulk {
	return u.Update(func(s *UserSkillProgressUpsert) {
		s.ClearLastPracticedAt()
	})
}

// Exec executes the query.
func (u *UserSkillProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserSkillProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserSkillProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserSkillProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
