package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single multiple-choice answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner the answer belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Catalogue item answered"),
		field.String("objective_id").
			Default("").
			Comment("Syllabus objective, e.g. POB-00301"),
		field.JSON("skill_ids", []string{}).
			Comment("Skills the question exercises"),
		field.Int("selected_index").
			Comment("Option the learner chose"),
		field.Int("correct_index").
			Comment("Option keyed as correct"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.Float("difficulty").
			Comment("Item difficulty on the 0-10 scale"),
		field.String("error_type").
			Default("").
			Comment("Classified error: conceptual, careless, misread, or empty when correct"),
		field.String("error_rule").
			Default("").
			Comment("Classifier rule that fired"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
