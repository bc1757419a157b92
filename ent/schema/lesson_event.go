package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records that a micro-lesson was composed and shown.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("user_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.String("lesson_title").NotEmpty(),
		field.String("source").
			NotEmpty().
			Comment("template or llm"),
		field.String("error_type").
			Default("").
			Comment("Classification that triggered the lesson"),
		field.Bool("practice_attempted"),
		field.Bool("practice_correct"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill_id"),
	}
}
