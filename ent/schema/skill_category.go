package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SkillCategory groups skills for display. Categories are authored by
// content administrators; the engine only reads them.
type SkillCategory struct {
	ent.Schema
}

func (SkillCategory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("name").NotEmpty(),
		field.Int("display_order").Default(0),
		field.Bool("active").Default(true),
	}
}
