// Code generated by ent, DO NOT EDIT.

package userskillprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldSkillID, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldMasteryLevel, v))
}

// IsUnlocked applies equality check predicate on the "is_unlocked" field. It's identical to IsUnlockedEQ.
func IsUnlocked(v bool) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldIsUnlocked, v))
}

// IsMastered applies equality check predicate on the "is_mastered" field. It's identical to IsMasteredEQ.
func IsMastered(v bool) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldIsMastered, v))
}

// TotalXpEarned applies equality check predicate on the "total_xp_earned" field. It's identical to TotalXpEarnedEQ.
func TotalXpEarned(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldTotalXpEarned, v))
}

// LessonsCompleted applies equality check predicate on the "lessons_completed" field. It's identical to LessonsCompletedEQ.
func LessonsCompleted(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldLessonsCompleted, v))
}

// ExercisesCompleted applies equality check predicate on the "exercises_completed" field. It's identical to ExercisesCompletedEQ.
func ExercisesCompleted(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldExercisesCompleted, v))
}

// FirstUnlockedAt applies equality check predicate on the "first_unlocked_at" field. It's identical to FirstUnlockedAtEQ.
func FirstUnlockedAt(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldFirstUnlockedAt, v))
}

// MasteredAt applies equality check predicate on the "mastered_at" field. It's identical to MasteredAtEQ.
func MasteredAt(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldMasteredAt, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldLastPracticedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldContainsFold(FieldSkillID, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldMasteryLevel, v))
}

// IsUnlockedEQ applies the EQ predicate on the "is_unlocked" field.
func IsUnlockedEQ(v bool) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldIsUnlocked, v))
}

// IsUnlockedNEQ applies the NEQ predicate on the "is_unlocked" field.
func IsUnlockedNEQ(v bool) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldIsUnlocked, v))
}

// IsMasteredEQ applies the EQ predicate on the "is_mastered" field.
func IsMasteredEQ(v bool) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldIsMastered, v))
}

// IsMasteredNEQ applies the NEQ predicate on the "is_mastered" field.
func IsMasteredNEQ(v bool) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldIsMastered, v))
}

// TotalXpEarnedEQ applies the EQ predicate on the "total_xp_earned" field.
func TotalXpEarnedEQ(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldTotalXpEarned, v))
}

// TotalXpEarnedNEQ applies the NEQ predicate on the "total_xp_earned" field.
func TotalXpEarnedNEQ(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldTotalXpEarned, v))
}

// TotalXpEarnedIn applies the In predicate on the "total_xp_earned" field.
func TotalXpEarnedIn(vs ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldTotalXpEarned, vs...))
}

// TotalXpEarnedNotIn applies the NotIn predicate on the "total_xp_earned" field.
func TotalXpEarnedNotIn(vs ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldTotalXpEarned, vs...))
}

// TotalXpEarnedGT applies the GT predicate on the "total_xp_earned" field.
func TotalXpEarnedGT(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldTotalXpEarned, v))
}

// TotalXpEarnedGTE applies the GTE predicate on the "total_xp_earned" field.
func TotalXpEarnedGTE(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldTotalXpEarned, v))
}

// TotalXpEarnedLT applies the LT predicate on the "total_xp_earned" field.
func TotalXpEarnedLT(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldTotalXpEarned, v))
}

// TotalXpEarnedLTE applies the LTE predicate on the "total_xp_earned" field.
func TotalXpEarnedLTE(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldTotalXpEarned, v))
}

// LessonsCompletedEQ applies the EQ predicate on the "lessons_completed" field.
func LessonsCompletedEQ(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedNEQ applies the NEQ predicate on the "lessons_completed" field.
func LessonsCompletedNEQ(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedIn applies the In predicate on the "lessons_completed" field.
func LessonsCompletedIn(vs ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedNotIn applies the NotIn predicate on the "lessons_completed" field.
func LessonsCompletedNotIn(vs ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedGT applies the GT predicate on the "lessons_completed" field.
func LessonsCompletedGT(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldLessonsCompleted, v))
}

// LessonsCompletedGTE applies the GTE predicate on the "lessons_completed" field.
func LessonsCompletedGTE(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldLessonsCompleted, v))
}

// LessonsCompletedLT applies the LT predicate on the "lessons_completed" field.
func LessonsCompletedLT(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldLessonsCompleted, v))
}

// LessonsCompletedLTE applies the LTE predicate on the "lessons_completed" field.
func LessonsCompletedLTE(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldLessonsCompleted, v))
}

// ExercisesCompletedEQ applies the EQ predicate on the "exercises_completed" field.
func ExercisesCompletedEQ(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldExercisesCompleted, v))
}

// ExercisesCompletedNEQ applies the NEQ predicate on the "exercises_completed" field.
func ExercisesCompletedNEQ(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldExercisesCompleted, v))
}

// ExercisesCompletedIn applies the In predicate on the "exercises_completed" field.
func ExercisesCompletedIn(vs ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldExercisesCompleted, vs...))
}

// ExercisesCompletedNotIn applies the NotIn predicate on the "exercises_completed" field.
func ExercisesCompletedNotIn(vs ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldExercisesCompleted, vs...))
}

// ExercisesCompletedGT applies the GT predicate on the "exercises_completed" field.
func ExercisesCompletedGT(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldExercisesCompleted, v))
}

// ExercisesCompletedGTE applies the GTE predicate on the "exercises_completed" field.
func ExercisesCompletedGTE(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldExercisesCompleted, v))
}

// ExercisesCompletedLT applies the LT predicate on the "exercises_completed" field.
func ExercisesCompletedLT(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldExercisesCompleted, v))
}

// ExercisesCompletedLTE applies the LTE predicate on the "exercises_completed" field.
func ExercisesCompletedLTE(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldExercisesCompleted, v))
}

// FirstUnlockedAtEQ applies the EQ predicate on the "first_unlocked_at" field.
func FirstUnlockedAtEQ(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldFirstUnlockedAt, v))
}

// FirstUnlockedAtNEQ applies the NEQ predicate on the "first_unlocked_at" field.
func FirstUnlockedAtNEQ(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldFirstUnlockedAt, v))
}

// FirstUnlockedAtIn applies the In predicate on the "first_unlocked_at" field.
func FirstUnlockedAtIn(vs ...time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldFirstUnlockedAt, vs...))
}

// FirstUnlockedAtNotIn applies the NotIn predicate on the "first_unlocked_at" field.
func FirstUnlockedAtNotIn(vs ...time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldFirstUnlockedAt, vs...))
}

// FirstUnlockedAtGT applies the GT predicate on the "first_unlocked_at" field.
func FirstUnlockedAtGT(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldFirstUnlockedAt, v))
}

// FirstUnlockedAtGTE applies the GTE predicate on the "first_unlocked_at" field.
func FirstUnlockedAtGTE(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldFirstUnlockedAt, v))
}

// FirstUnlockedAtLT applies the LT predicate on the "first_unlocked_at" field.
func FirstUnlockedAtLT(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldFirstUnlockedAt, v))
}

// FirstUnlockedAtLTE applies the LTE predicate on the "first_unlocked_at" field.
func FirstUnlockedAtLTE(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldFirstUnlockedAt, v))
}

// FirstUnlockedAtIsNil applies the IsNil predicate on the "first_unlocked_at" field.
func FirstUnlockedAtIsNil() predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIsNull(FieldFirstUnlockedAt))
}

// FirstUnlockedAtNotNil applies the NotNil predicate on the "first_unlocked_at" field.
func FirstUnlockedAtNotNil() predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotNull(FieldFirstUnlockedAt))
}

// MasteredAtEQ applies the EQ predicate on the "mastered_at" field.
func MasteredAtEQ(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldMasteredAt, v))
}

// MasteredAtNEQ applies the NEQ predicate on the "mastered_at" field.
func MasteredAtNEQ(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldMasteredAt, v))
}

// MasteredAtIn applies the In predicate on the "mastered_at" field.
func MasteredAtIn(vs ...time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldMasteredAt, vs...))
}

// MasteredAtNotIn applies the NotIn predicate on the "mastered_at" field.
func MasteredAtNotIn(vs ...time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldMasteredAt, vs...))
}

// MasteredAtGT applies the GT predicate on the "mastered_at" field.
func MasteredAtGT(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldMasteredAt, v))
}

// MasteredAtGTE applies the GTE predicate on the "mastered_at" field.
func MasteredAtGTE(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldMasteredAt, v))
}

// MasteredAtLT applies the LT predicate on the "mastered_at" field.
func MasteredAtLT(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldMasteredAt, v))
}

// MasteredAtLTE applies the LTE predicate on the "mastered_at" field.
func MasteredAtLTE(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldMasteredAt, v))
}

// MasteredAtIsNil applies the IsNil predicate on the "mastered_at" field.
func MasteredAtIsNil() predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIsNull(FieldMasteredAt))
}

// MasteredAtNotNil applies the NotNil predicate on the "mastered_at" field.
func MasteredAtNotNil() predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotNull(FieldMasteredAt))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldLastPracticedAt, v))
}

// LastPracticedAtIsNil applies the IsNil predicate on the "last_practiced_at" field.
func LastPracticedAtIsNil() predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIsNull(FieldLastPracticedAt))
}

// LastPracticedAtNotNil applies the NotNil predicate on the "last_practiced_at" field.
func LastPracticedAtNotNil() predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotNull(FieldLastPracticedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserSkillProgress) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserSkillProgress) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserSkillProgress) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.NotPredicates(p))
}
