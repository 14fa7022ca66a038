package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonCompletion records that a user finished a lesson. At most one
// row per (user, lesson); the unique index makes repeated completion
// calls no-op writes so XP is never double-awarded.
type LessonCompletion struct {
	ent.Schema
}

func (LessonCompletion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("lesson_id").NotEmpty().Immutable(),
		field.Int("time_spent_secs").Default(0),
		field.Int("comprehension_score").Default(0),
		field.Time("completed_at").Default(time.Now).Immutable(),
	}
}

func (LessonCompletion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id").Unique(),
		index.Fields("user_id"),
	}
}
