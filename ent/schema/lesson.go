package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson belongs to exactly one skill and counts one unit toward that
// skill's completion denominator. Content is a JSON document written
// through by the ingestion layer after generation and validation.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("skill_id").NotEmpty(),
		field.String("title").NotEmpty(),
		field.Int("position").Default(0),
		field.JSON("content", json.RawMessage{}).
			Optional().
			Comment("Validated lesson sections, or a legacy plain string"),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
	}
}
