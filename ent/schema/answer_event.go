package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("mode").
			NotEmpty().
			Comment("standard or time_attack"),
		field.String("operation").
			NotEmpty().
			Comment("add, sub, mul or div (concrete, never mixed)"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium or hard"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown, e.g. \"7 + 5 = ?\""),
		field.Int("correct_answer"),
		field.Int("player_answer"),
		field.Bool("correct").
			Comment("Whether the chosen option was the answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("operation"),
		index.Fields("correct"),
	}
}
