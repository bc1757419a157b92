package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a mastery update for a skill, for audit and analytics.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.Float("mastery_before"),
		field.Float("mastery_after"),
		field.Float("confidence"),
		field.Float("half_life_days").
			Comment("Retention half-life after the update"),
		field.Int("streak").
			Default(0).
			Comment("Consecutive correct answers for the skill"),
		field.String("trigger").
			NotEmpty().
			Comment("answer, placement, or decay"),
		field.String("session_id").Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id"),
		index.Fields("skill_id"),
	}
}
