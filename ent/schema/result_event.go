package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent records one answered problem, canonical or redo.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("player_id").
			NotEmpty().
			Comment("Who answered"),
		field.String("slot_id").
			NotEmpty().
			Comment("Plan slot this problem occupies"),
		field.Int("part_index").
			Comment("Part position within the plan"),
		field.Int("slot_index").
			Comment("Slot position within the part"),
		field.Int("epoch").
			Default(0).
			Comment("0 = original pass, >0 = retry pass"),
		field.String("problem_text").
			NotEmpty().
			Comment("The problem as shown, e.g. \"3 + 5 - 2\""),
		field.Int("expected_answer").
			Comment("The canonical correct answer"),
		field.Int("given_answer").
			Comment("What the learner entered"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int64("response_ms").
			Comment("Milliseconds to answer, pauses excluded"),
		field.Int("wrong_attempts").
			Default(0).
			Comment("Incorrect submissions before this one"),
		field.Bool("used_help").
			Default(false).
			Comment("Whether help mode was entered for this attempt"),
		field.Bool("is_retry").
			Default(false).
			Comment("True for redo results, which never move the cursor"),
		field.Int("original_slot").
			Default(0).
			Comment("For redos, the slot index of the original result"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slot_id"),
		index.Fields("correct"),
	}
}
