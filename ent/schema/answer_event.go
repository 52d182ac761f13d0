package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single practice or exam answer.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Comment("Question item this answer was for"),
		field.String("topic_id").
			NotEmpty().
			Comment("Exam domain the item belongs to"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("source").
			NotEmpty().
			Comment("practice or exam"),
		field.String("exam_session_id").
			Optional().
			Comment("Links to ExamEvent when source is exam"),
		field.Int("time_spent_sec").
			Default(0).
			Comment("Seconds spent on the item"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("topic_id"),
		index.Fields("correct"),
	}
}
