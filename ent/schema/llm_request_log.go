package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestLog records every call to the text-generation collaborator:
// latency, token usage, and outcome. Append-only diagnostics.
type LLMRequestLog struct {
	ent.Schema
}

func (LLMRequestLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").NotEmpty(),
		field.String("model"),
		field.String("purpose").Default("unknown"),
		field.Int("input_tokens").Default(0),
		field.Int("output_tokens").Default(0),
		field.Int64("latency_ms").Default(0),
		field.Bool("success"),
		field.Text("error_message").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (LLMRequestLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("created_at"),
	}
}
