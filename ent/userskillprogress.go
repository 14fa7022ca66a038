// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/userskillprogress"
)

// UserSkillProgress is the model entity for the UserSkillProgress schema.
type UserSkillProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// MasteryLevel holds the value of the "mastery_level" field.
	MasteryLevel int `json:"mastery_level,omitempty"`
	// IsUnlocked holds the value of the "is_unlocked" field.
	IsUnlocked bool `json:"is_unlocked,omitempty"`
	// IsMastered holds the value of the "is_mastered" field.
	IsMastered bool `json:"is_mastered,omitempty"`
	// TotalXpEarned holds the value of the "total_xp_earned" field.
	TotalXpEarned int `json:"total_xp_earned,omitempty"`
	// LessonsCompleted holds the value of the "lessons_completed" field.
	LessonsCompleted int `json:"lessons_completed,omitempty"`
	// ExercisesCompleted holds the value of the "exercises_completed" field.
	ExercisesCompleted int `json:"exercises_completed,omitempty"`
	// FirstUnlockedAt holds the value of the "first_unlocked_at" field.
	FirstUnlockedAt *time.Time `json:"first_unlocked_at,omitempty"`
	// MasteredAt holds the value of the "mastered_at" field.
	MasteredAt *time.Time `json:"mastered_at,omitempty"`
	// LastPracticedAt holds the value of the "last_practiced_at" field.
	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserSkillProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userskillprogress.FieldIsUnlocked, userskillprogress.FieldIsMastered:
			values[i] = new(sql.NullBool)
		case userskillprogress.FieldMasteryLevel, userskillprogress.FieldTotalXpEarned, userskillprogress.FieldLessonsCompleted, userskillprogress.FieldExercisesCompleted:
			values[i] = new(sql.NullInt64)
		case userskillprogress.FieldID, userskillprogress.FieldUserID, userskillprogress.FieldSkillID:
			values[i] = new(sql.NullString)
		case userskillprogress.FieldFirstUnlockedAt, userskillprogress.FieldMasteredAt, userskillprogress.FieldLastPracticedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserSkillProgress fields.
func (_m *UserSkillProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userskillprogress.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case userskillprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userskillprogress.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case userskillprogress.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = int(value.Int64)
			}
		case userskillprogress.FieldIsUnlocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_unlocked", values[i])
			} else if value.Valid {
				_m.IsUnlocked = value.Bool
			}
		case userskillprogress.FieldIsMastered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_mastered", values[i])
			} else if value.Valid {
				_m.IsMastered = value.Bool
			}
		case userskillprogress.FieldTotalXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_xp_earned", values[i])
			} else if value.Valid {
				_m.TotalXpEarned = int(value.Int64)
			}
		case userskillprogress.FieldLessonsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lessons_completed", values[i])
			} else if value.Valid {
				_m.LessonsCompleted = int(value.Int64)
			}
		case userskillprogress.FieldExercisesCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exercises_completed", values[i])
			} else if value.Valid {
				_m.ExercisesCompleted = int(value.Int64)
			}
		case userskillprogress.FieldFirstUnlockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_unlocked_at", values[i])
			} else if value.Valid {
				_m.FirstUnlockedAt = new(time.Time)
				*_m.FirstUnlockedAt = value.Time
			}
		case userskillprogress.FieldMasteredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field mastered_at", values[i])
			} else if value.Valid {
				_m.MasteredAt = new(time.Time)
				*_m.MasteredAt = value.Time
			}
		case userskillprogress.FieldLastPracticedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced_at", values[i])
			} else if value.Valid {
				_m.LastPracticedAt = new(time.Time)
				*_m.LastPracticedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserSkillProgress.
// This includes values selected through modifiers, order, etc.
func (_m *UserSkillProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserSkillProgress.
// Note that you need to call UserSkillProgress.Unwrap() before calling this method if this UserSkillProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserSkillProgress) Update() *UserSkillProgressUpdateOne {
	return NewUserSkillProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserSkillProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserSkillProgress) Unwrap() *UserSkillProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserSkillProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserSkillProgress) String() string {
	var builder strings.Builder
	builder.WriteString("UserSkillProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryLevel))
	builder.WriteString(", ")
	builder.WriteString("is_unlocked=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsUnlocked))
	builder.WriteString(", ")
	builder.WriteString("is_mastered=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsMastered))
	builder.WriteString(", ")
	builder.WriteString("total_xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalXpEarned))
	builder.WriteString(", ")
	builder.WriteString("lessons_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonsCompleted))
	builder.WriteString(", ")
	builder.WriteString("exercises_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExercisesCompleted))
	builder.WriteString(", ")
	if v := _m.FirstUnlockedAt; v != nil {
		builder.WriteString("first_unlocked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MasteredAt; v != nil {
		builder.WriteString("mastered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastPracticedAt; v != nil {
		builder.WriteString("last_practiced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UserSkillProgresses is a parsable slice of UserSkillProgress.
type UserSkillProgresses []*UserSkillProgress
