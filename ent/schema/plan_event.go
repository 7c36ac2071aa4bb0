package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanEvent records a generated daily plan, keeping a history of how the
// budget shifted as the exam approached.
type PlanEvent struct {
	ent.Schema
}

func (PlanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner").
			NotEmpty().
			Comment("Learner identifier"),
		field.String("bank").
			NotEmpty().
			Comment("Question bank identifier"),
		field.String("phase").
			NotEmpty().
			Comment("coverage, pressure or exam_readiness"),
		field.Int("total_daily").
			Comment("Questions budgeted for the day"),
		field.JSON("plan", map[string]any{}).
			Comment("Full daily plan as JSON"),
	}
}

func (PlanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner", "bank"),
		index.Fields("phase"),
	}
}
