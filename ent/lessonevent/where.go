// Code generated by ent, DO NOT EDIT.

package lessonevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brighted/nable/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSkillID, v))
}

// LessonTitle applies equality check predicate on the "lesson_title" field. It's identical to LessonTitleEQ.
func LessonTitle(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldLessonTitle, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSource, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldErrorType, v))
}

// PracticeAttempted applies equality check predicate on the "practice_attempted" field. It's identical to PracticeAttemptedEQ.
func PracticeAttempted(v bool) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldPracticeAttempted, v))
}

// PracticeCorrect applies equality check predicate on the "practice_correct" field. It's identical to PracticeCorrectEQ.
func PracticeCorrect(v bool) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldPracticeCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// LessonTitleEQ applies the EQ predicate on the "lesson_title" field.
func LessonTitleEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldLessonTitle, v))
}

// LessonTitleNEQ applies the NEQ predicate on the "lesson_title" field.
func LessonTitleNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldLessonTitle, v))
}

// LessonTitleIn applies the In predicate on the "lesson_title" field.
func LessonTitleIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldLessonTitle, vs...))
}

// LessonTitleNotIn applies the NotIn predicate on the "lesson_title" field.
func LessonTitleNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldLessonTitle, vs...))
}

// LessonTitleGT applies the GT predicate on the "lesson_title" field.
func LessonTitleGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldLessonTitle, v))
}

// LessonTitleGTE applies the GTE predicate on the "lesson_title" field.
func LessonTitleGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldLessonTitle, v))
}

// LessonTitleLT applies the LT predicate on the "lesson_title" field.
func LessonTitleLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldLessonTitle, v))
}

// LessonTitleLTE applies the LTE predicate on the "lesson_title" field.
func LessonTitleLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldLessonTitle, v))
}

// LessonTitleContains applies the Contains predicate on the "lesson_title" field.
func LessonTitleContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldLessonTitle, v))
}

// LessonTitleHasPrefix applies the HasPrefix predicate on the "lesson_title" field.
func LessonTitleHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldLessonTitle, v))
}

// LessonTitleHasSuffix applies the HasSuffix predicate on the "lesson_title" field.
func LessonTitleHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldLessonTitle, v))
}

// LessonTitleEqualFold applies the EqualFold predicate on the "lesson_title" field.
func LessonTitleEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldLessonTitle, v))
}

// LessonTitleContainsFold applies the ContainsFold predicate on the "lesson_title" field.
func LessonTitleContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldLessonTitle, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldSource, v))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldErrorType, v))
}

// PracticeAttemptedEQ applies the EQ predicate on the "practice_attempted" field.
func PracticeAttemptedEQ(v bool) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldPracticeAttempted, v))
}

// PracticeAttemptedNEQ applies the NEQ predicate on the "practice_attempted" field.
func PracticeAttemptedNEQ(v bool) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldPracticeAttempted, v))
}

// PracticeCorrectEQ applies the EQ predicate on the "practice_correct" field.
func PracticeCorrectEQ(v bool) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldPracticeCorrect, v))
}

// PracticeCorrectNEQ applies the NEQ predicate on the "practice_correct" field.
func PracticeCorrectNEQ(v bool) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldPracticeCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonEvent) predicate.LessonEvent {
	return predicate.LessonEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonEvent) predicate.LessonEvent {
	return predicate.LessonEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonEvent) predicate.LessonEvent {
	return predicate.LessonEvent(sql.NotPredicates(p))
}
