package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Skill is a node in the prerequisite DAG. Prerequisite edges are stored
// inline as a JSON array of skill IDs pointing at this skill.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("category_id").NotEmpty(),
		field.String("name").NotEmpty(),
		field.Enum("difficulty").
			Values("beginner", "intermediate", "advanced").
			Default("beginner"),
		field.Int("xp_reward").Default(50),
		field.Int("mastery_threshold").
			Default(80).
			Comment("Percentage of completed items required for mastery (0-100)"),
		field.Bool("active").Default(true),
		field.JSON("prerequisites", []string{}).
			Optional().
			Comment("IDs of skills that must be mastered before this one unlocks"),
	}
}

func (Skill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
	}
}
