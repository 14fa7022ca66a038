package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewSchedule holds the spaced-review state for one mastered item.
// One row per (user, item, item_type); updated on every review, never
// deleted while the parent skill remains mastered.
type ReviewSchedule struct {
	ent.Schema
}

func (ReviewSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable(),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("item_id").NotEmpty().Immutable(),
		field.Enum("item_type").Values("lesson", "exercise").Immutable(),
		field.Time("review_at"),
		field.Float("ease_factor").Default(2.5),
		field.Int("interval_days").Default(1),
		field.Int("repetitions").Default(0),
		field.Time("last_reviewed_at").Optional().Nillable(),
	}
}

func (ReviewSchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "item_id", "item_type").Unique(),
		index.Fields("user_id", "review_at"),
	}
}
