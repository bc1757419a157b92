package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("phase").
			Default("").
			Comment("cold-start, active, or blocked at the time of the event"),
		field.Int("questions_served").
			Default(0).
			Comment("Total questions (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("hearts_remaining").
			Default(0).
			Comment("Hearts left (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("action"),
	}
}
