package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlacementEvent records the outcome of a cold-start placement run.
type PlacementEvent struct {
	ent.Schema
}

func (PlacementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlacementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("session_id").NotEmpty(),
		field.Int("level").
			Comment("Placed level on the 1-10 ladder"),
		field.Float("mastery").
			Comment("Seeded mastery derived from the level"),
		field.Float("confidence"),
		field.Int("questions_asked"),
		field.JSON("probed_skills", []string{}).
			Comment("Skills the probes touched, all seeded at the placed level"),
	}
}

func (PlacementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
	}
}
