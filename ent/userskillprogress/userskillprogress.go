// Code generated by ent, DO NOT EDIT.

package userskillprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userskillprogress type in the database.
	Label = "user_skill_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldIsUnlocked holds the string denoting the is_unlocked field in the database.
	FieldIsUnlocked = "is_unlocked"
	// FieldIsMastered holds the string denoting the is_mastered field in the database.
	FieldIsMastered = "is_mastered"
	// FieldTotalXpEarned holds the string denoting the total_xp_earned field in the database.
	FieldTotalXpEarned = "total_xp_earned"
	// FieldLessonsCompleted holds the string denoting the lessons_completed field in the database.
	FieldLessonsCompleted = "lessons_completed"
	// FieldExercisesCompleted holds the string denoting the exercises_completed field in the database.
	FieldExercisesCompleted = "exercises_completed"
	// FieldFirstUnlockedAt holds the string denoting the first_unlocked_at field in the database.
	FieldFirstUnlockedAt = "first_unlocked_at"
	// FieldMasteredAt holds the string denoting the mastered_at field in the database.
	FieldMasteredAt = "mastered_at"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// Table holds the table name of the userskillprogress in the database.
	Table = "user_skill_progresses"
)

// Columns holds all SQL columns for userskillprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSkillID,
	FieldMasteryLevel,
	FieldIsUnlocked,
	FieldIsMastered,
	FieldTotalXpEarned,
	FieldLessonsCompleted,
	FieldExercisesCompleted,
	FieldFirstUnlockedAt,
	FieldMasteredAt,
	FieldLastPracticedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel int
	// DefaultIsUnlocked holds the default value on creation for the "is_unlocked" field.
	DefaultIsUnlocked bool
	// DefaultIsMastered holds the default value on creation for the "is_mastered" field.
	DefaultIsMastered bool
	// DefaultTotalXpEarned holds the default value on creation for the "total_xp_earned" field.
	DefaultTotalXpEarned int
	// DefaultLessonsCompleted holds the default value on creation for the "lessons_completed" field.
	DefaultLessonsCompleted int
	// DefaultExercisesCompleted holds the default value on creation for the "exercises_completed" field.
	DefaultExercisesCompleted int
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the UserSkillProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByIsUnlocked orders the results by the is_unlocked field.
func ByIsUnlocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsUnlocked, opts...).ToFunc()
}

// ByIsMastered orders the results by the is_mastered field.
func ByIsMastered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsMastered, opts...).ToFunc()
}

// ByTotalXpEarned orders the results by the total_xp_earned field.
func ByTotalXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalXpEarned, opts...).ToFunc()
}

// ByLessonsCompleted orders the results by the lessons_completed field.
func ByLessonsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonsCompleted, opts...).ToFunc()
}

// ByExercisesCompleted orders the results by the exercises_completed field.
func ByExercisesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExercisesCompleted, opts...).ToFunc()
}

// ByFirstUnlockedAt orders the results by the first_unlocked_at field.
func ByFirstUnlockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstUnlockedAt, opts...).ToFunc()
}

// ByMasteredAt orders the results by the mastered_at field.
func ByMasteredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteredAt, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}
