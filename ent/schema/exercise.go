package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Exercise belongs to exactly one skill. Closed-form types are graded
// deterministically against correct_answer; open-form types carry a
// rubric for AI grading.
type Exercise struct {
	ent.Schema
}

func (Exercise) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("skill_id").NotEmpty(),
		field.Enum("type").
			Values("multiple_choice", "true_false", "short_answer", "code"),
		field.Text("question").NotEmpty(),
		field.JSON("options", []string{}).Optional(),
		field.String("correct_answer").Optional(),
		field.Text("rubric").Optional(),
		field.Int("passing_score").Default(70),
		field.Int("max_attempts").Default(3),
	}
}

func (Exercise) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
	}
}
