package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssistEvent records one assistance state transition for later review.
// The in-session machine keeps its own capped log; this table is the
// durable trail a teacher can inspect after the fact.
type AssistEvent struct {
	ent.Schema
}

func (AssistEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssistEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("slot_id").
			NotEmpty().
			Comment("Slot on screen when the transition fired"),
		field.String("from_state").
			NotEmpty().
			Comment("Assistance state before the event"),
		field.String("to_state").
			NotEmpty().
			Comment("Assistance state after the event"),
		field.String("trigger").
			NotEmpty().
			Comment("Event kind that caused the transition"),
	}
}

func (AssistEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("to_state"),
	}
}
