package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExerciseAttempt is an append-only grading record. attempt_number is
// 1-based and strictly increasing per (user, exercise). Rows are
// immutable once written.
type ExerciseAttempt struct {
	ent.Schema
}

func (ExerciseAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("exercise_id").NotEmpty().Immutable(),
		field.Int("attempt_number").Min(1).Immutable(),
		field.Text("answer").Immutable(),
		field.Int("score").Immutable(),
		field.Bool("correct").Immutable(),
		field.JSON("feedback", json.RawMessage{}).Optional().Immutable(),
		field.Int("time_spent_secs").Default(0).Immutable(),
		field.Time("submitted_at").Default(time.Now).Immutable(),
	}
}

func (ExerciseAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "exercise_id"),
		index.Fields("user_id", "exercise_id", "attempt_number").Unique(),
	}
}
