// Code generated by ent, DO NOT EDIT.

package itemflagevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brighted/nable/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldReason, v))
}

// FlagCount applies equality check predicate on the "flag_count" field. It's identical to FlagCountEQ.
func FlagCount(v int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldFlagCount, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldArchived, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldContainsFold(FieldReason, v))
}

// FlagCountEQ applies the EQ predicate on the "flag_count" field.
func FlagCountEQ(v int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldFlagCount, v))
}

// FlagCountNEQ applies the NEQ predicate on the "flag_count" field.
func FlagCountNEQ(v int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNEQ(FieldFlagCount, v))
}

// FlagCountIn applies the In predicate on the "flag_count" field.
func FlagCountIn(vs ...int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldIn(FieldFlagCount, vs...))
}

// FlagCountNotIn applies the NotIn predicate on the "flag_count" field.
func FlagCountNotIn(vs ...int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNotIn(FieldFlagCount, vs...))
}

// FlagCountGT applies the GT predicate on the "flag_count" field.
func FlagCountGT(v int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGT(FieldFlagCount, v))
}

// FlagCountGTE applies the GTE predicate on the "flag_count" field.
func FlagCountGTE(v int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGTE(FieldFlagCount, v))
}

// FlagCountLT applies the LT predicate on the "flag_count" field.
func FlagCountLT(v int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLT(FieldFlagCount, v))
}

// FlagCountLTE applies the LTE predicate on the "flag_count" field.
func FlagCountLTE(v int) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLTE(FieldFlagCount, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNEQ(FieldArchived, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ItemFlagEvent) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ItemFlagEvent) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ItemFlagEvent) predicate.ItemFlagEvent {
	return predicate.ItemFlagEvent(sql.NotPredicates(p))
}
