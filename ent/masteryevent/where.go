// Code generated by ent, DO NOT EDIT.

package masteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brighted/nable/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSkillID, v))
}

// MasteryBefore applies equality check predicate on the "mastery_before" field. It's identical to MasteryBeforeEQ.
func MasteryBefore(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldMasteryBefore, v))
}

// MasteryAfter applies equality check predicate on the "mastery_after" field. It's identical to MasteryAfterEQ.
func MasteryAfter(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldMasteryAfter, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldConfidence, v))
}

// HalfLifeDays applies equality check predicate on the "half_life_days" field. It's identical to HalfLifeDaysEQ.
func HalfLifeDays(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldHalfLifeDays, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldStreak, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTrigger, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// MasteryBeforeEQ applies the EQ predicate on the "mastery_before" field.
func MasteryBeforeEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldMasteryBefore, v))
}

// MasteryBeforeNEQ applies the NEQ predicate on the "mastery_before" field.
func MasteryBeforeNEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldMasteryBefore, v))
}

// MasteryBeforeIn applies the In predicate on the "mastery_before" field.
func MasteryBeforeIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldMasteryBefore, vs...))
}

// MasteryBeforeNotIn applies the NotIn predicate on the "mastery_before" field.
func MasteryBeforeNotIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldMasteryBefore, vs...))
}

// MasteryBeforeGT applies the GT predicate on the "mastery_before" field.
func MasteryBeforeGT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldMasteryBefore, v))
}

// MasteryBeforeGTE applies the GTE predicate on the "mastery_before" field.
func MasteryBeforeGTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldMasteryBefore, v))
}

// MasteryBeforeLT applies the LT predicate on the "mastery_before" field.
func MasteryBeforeLT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldMasteryBefore, v))
}

// MasteryBeforeLTE applies the LTE predicate on the "mastery_before" field.
func MasteryBeforeLTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldMasteryBefore, v))
}

// MasteryAfterEQ applies the EQ predicate on the "mastery_after" field.
func MasteryAfterEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldMasteryAfter, v))
}

// MasteryAfterNEQ applies the NEQ predicate on the "mastery_after" field.
func MasteryAfterNEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldMasteryAfter, v))
}

// MasteryAfterIn applies the In predicate on the "mastery_after" field.
func MasteryAfterIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldMasteryAfter, vs...))
}

// MasteryAfterNotIn applies the NotIn predicate on the "mastery_after" field.
func MasteryAfterNotIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldMasteryAfter, vs...))
}

// MasteryAfterGT applies the GT predicate on the "mastery_after" field.
func MasteryAfterGT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldMasteryAfter, v))
}

// MasteryAfterGTE applies the GTE predicate on the "mastery_after" field.
func MasteryAfterGTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldMasteryAfter, v))
}

// MasteryAfterLT applies the LT predicate on the "mastery_after" field.
func MasteryAfterLT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldMasteryAfter, v))
}

// MasteryAfterLTE applies the LTE predicate on the "mastery_after" field.
func MasteryAfterLTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldMasteryAfter, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldConfidence, v))
}

// HalfLifeDaysEQ applies the EQ predicate on the "half_life_days" field.
func HalfLifeDaysEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldHalfLifeDays, v))
}

// HalfLifeDaysNEQ applies the NEQ predicate on the "half_life_days" field.
func HalfLifeDaysNEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldHalfLifeDays, v))
}

// HalfLifeDaysIn applies the In predicate on the "half_life_days" field.
func HalfLifeDaysIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldHalfLifeDays, vs...))
}

// HalfLifeDaysNotIn applies the NotIn predicate on the "half_life_days" field.
func HalfLifeDaysNotIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldHalfLifeDays, vs...))
}

// HalfLifeDaysGT applies the GT predicate on the "half_life_days" field.
func HalfLifeDaysGT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldHalfLifeDays, v))
}

// HalfLifeDaysGTE applies the GTE predicate on the "half_life_days" field.
func HalfLifeDaysGTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldHalfLifeDays, v))
}

// HalfLifeDaysLT applies the LT predicate on the "half_life_days" field.
func HalfLifeDaysLT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldHalfLifeDays, v))
}

// HalfLifeDaysLTE applies the LTE predicate on the "half_life_days" field.
func HalfLifeDaysLTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldHalfLifeDays, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldStreak, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.NotPredicates(p))
}
