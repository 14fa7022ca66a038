package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserSkillProgress is the per-user, per-skill derived progress record.
// mastery_level is always recomputed from the completed-item set, never
// incremented in place. is_unlocked and is_mastered are monotonic.
// Rows are created lazily on first unlock and never deleted.
type UserSkillProgress struct {
	ent.Schema
}

func (UserSkillProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("user_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.Int("mastery_level").Default(0),
		field.Bool("is_unlocked").Default(false),
		field.Bool("is_mastered").Default(false),
		field.Int("total_xp_earned").Default(0),
		field.Int("lessons_completed").Default(0),
		field.Int("exercises_completed").Default(0),
		field.Time("first_unlocked_at").Optional().Nillable(),
		field.Time("mastered_at").Optional().Nillable(),
		field.Time("last_practiced_at").Optional().Nillable(),
	}
}

func (UserSkillProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
		index.Fields("user_id"),
	}
}
