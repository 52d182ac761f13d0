package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records an exam session lifecycle action for audit and stats.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the exam session"),
		field.String("action").
			NotEmpty().
			Comment("started, paused, resumed, submitted, or abandoned"),
		field.Int("question_count").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Float("raw_score").
			Default(0).
			Comment("Percent correct, 0-100; only set on submit"),
		field.Int("scaled_score").
			Default(0).
			Comment("Scaled score on the profile's scale; only set on submit"),
		field.Bool("passed").
			Default(false),
		field.Int("duration_sec").
			Default(0).
			Comment("Active (unpaused) session time in seconds"),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
