package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemFlagEvent records a quality flag raised against a catalogue item.
type ItemFlagEvent struct {
	ent.Schema
}

func (ItemFlagEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ItemFlagEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").NotEmpty(),
		field.String("reason").
			NotEmpty().
			Comment("slow-answer or low-success-rate"),
		field.Int("flag_count").
			Comment("Total flags on the item after this one"),
		field.Bool("archived").
			Default(false).
			Comment("Whether this flag pushed the item over the archive threshold"),
		field.String("session_id").Optional(),
	}
}

func (ItemFlagEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("reason"),
	}
}
