// Code generated by ent, DO NOT EDIT.

package placementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brighted/nable/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSessionID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldLevel, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldMastery, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldConfidence, v))
}

// QuestionsAsked applies equality check predicate on the "questions_asked" field. It's identical to QuestionsAskedEQ.
func QuestionsAsked(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldQuestionsAsked, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldLevel, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldMastery, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldConfidence, v))
}

// QuestionsAskedEQ applies the EQ predicate on the "questions_asked" field.
func QuestionsAskedEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedNEQ applies the NEQ predicate on the "questions_asked" field.
func QuestionsAskedNEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedIn applies the In predicate on the "questions_asked" field.
func QuestionsAskedIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedNotIn applies the NotIn predicate on the "questions_asked" field.
func QuestionsAskedNotIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedGT applies the GT predicate on the "questions_asked" field.
func QuestionsAskedGT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldQuestionsAsked, v))
}

// QuestionsAskedGTE applies the GTE predicate on the "questions_asked" field.
func QuestionsAskedGTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldQuestionsAsked, v))
}

// QuestionsAskedLT applies the LT predicate on the "questions_asked" field.
func QuestionsAskedLT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldQuestionsAsked, v))
}

// QuestionsAskedLTE applies the LTE predicate on the "questions_asked" field.
func QuestionsAskedLTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldQuestionsAsked, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.NotPredicates(p))
}
