package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle moments: start, pause, resume,
// early end, completion.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// PartHealth is the serialized per-part tally stored on end events.
type PartHealth struct {
	Part     int `json:"part"`
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("player_id").
			NotEmpty().
			Comment("Who was practicing"),
		field.String("action").
			NotEmpty().
			Comment("start, pause, resume, end_early, or complete"),
		field.String("reason").
			Optional().
			Comment("Pause reason or end cause"),
		field.String("message").
			Optional().
			Comment("Teacher message accompanying a pause"),
		field.Int("answered").
			Default(0).
			Comment("Problems answered (on end events only)"),
		field.Int("correct").
			Default(0).
			Comment("Problems correct (on end events only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Active practice seconds (on end events only)"),
		field.JSON("part_health", []PartHealth{}).
			Optional().
			Comment("Per-part tallies (on end events only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
	}
}
