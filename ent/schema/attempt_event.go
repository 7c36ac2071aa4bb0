package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answered question.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner").
			NotEmpty().
			Comment("Learner identifier"),
		field.String("bank").
			NotEmpty().
			Comment("Question bank identifier"),
		field.String("session_id").
			Optional().
			Comment("Practice session this attempt belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Question answered"),
		field.String("domain").
			NotEmpty().
			Comment("Normalized domain of the question"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer, 0 when unknown"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner", "bank"),
		index.Fields("question_id"),
		index.Fields("domain"),
		index.Fields("correct"),
	}
}
