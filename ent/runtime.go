// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/brighted/nable/ent/answerevent"
	"github.com/brighted/nable/ent/itemflagevent"
	"github.com/brighted/nable/ent/lessonevent"
	"github.com/brighted/nable/ent/llmrequestevent"
	"github.com/brighted/nable/ent/masteryevent"
	"github.com/brighted/nable/ent/placementevent"
	"github.com/brighted/nable/ent/schema"
	"github.com/brighted/nable/ent/sessionevent"
	"github.com/brighted/nable/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[1].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescObjectiveID is the schema descriptor for objective_id field.
	answereventDescObjectiveID := answereventFields[3].Descriptor()
	// answerevent.DefaultObjectiveID holds the default value on creation for the objective_id field.
	answerevent.DefaultObjectiveID = answereventDescObjectiveID.Default.(string)
	// answereventDescErrorType is the schema descriptor for error_type field.
	answereventDescErrorType := answereventFields[10].Descriptor()
	// answerevent.DefaultErrorType holds the default value on creation for the error_type field.
	answerevent.DefaultErrorType = answereventDescErrorType.Default.(string)
	// answereventDescErrorRule is the schema descriptor for error_rule field.
	answereventDescErrorRule := answereventFields[11].Descriptor()
	// answerevent.DefaultErrorRule holds the default value on creation for the error_rule field.
	answerevent.DefaultErrorRule = answereventDescErrorRule.Default.(string)
	itemflageventMixin := schema.ItemFlagEvent{}.Mixin()
	itemflageventMixinFields0 := itemflageventMixin[0].Fields()
	_ = itemflageventMixinFields0
	itemflageventFields := schema.ItemFlagEvent{}.Fields()
	_ = itemflageventFields
	// itemflageventDescTimestamp is the schema descriptor for timestamp field.
	itemflageventDescTimestamp := itemflageventMixinFields0[1].Descriptor()
	// itemflagevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	itemflagevent.DefaultTimestamp = itemflageventDescTimestamp.Default.(func() time.Time)
	// itemflageventDescQuestionID is the schema descriptor for question_id field.
	itemflageventDescQuestionID := itemflageventFields[0].Descriptor()
	// itemflagevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	itemflagevent.QuestionIDValidator = itemflageventDescQuestionID.Validators[0].(func(string) error)
	// itemflageventDescReason is the schema descriptor for reason field.
	itemflageventDescReason := itemflageventFields[1].Descriptor()
	// itemflagevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	itemflagevent.ReasonValidator = itemflageventDescReason.Validators[0].(func(string) error)
	// itemflageventDescArchived is the schema descriptor for archived field.
	itemflageventDescArchived := itemflageventFields[3].Descriptor()
	// itemflagevent.DefaultArchived holds the default value on creation for the archived field.
	itemflagevent.DefaultArchived = itemflageventDescArchived.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescUserID is the schema descriptor for user_id field.
	lessoneventDescUserID := lessoneventFields[1].Descriptor()
	// lessonevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	lessonevent.UserIDValidator = lessoneventDescUserID.Validators[0].(func(string) error)
	// lessoneventDescSkillID is the schema descriptor for skill_id field.
	lessoneventDescSkillID := lessoneventFields[2].Descriptor()
	// lessonevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	lessonevent.SkillIDValidator = lessoneventDescSkillID.Validators[0].(func(string) error)
	// lessoneventDescLessonTitle is the schema descriptor for lesson_title field.
	lessoneventDescLessonTitle := lessoneventFields[3].Descriptor()
	// lessonevent.LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	lessonevent.LessonTitleValidator = lessoneventDescLessonTitle.Validators[0].(func(string) error)
	// lessoneventDescSource is the schema descriptor for source field.
	lessoneventDescSource := lessoneventFields[4].Descriptor()
	// lessonevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	lessonevent.SourceValidator = lessoneventDescSource.Validators[0].(func(string) error)
	// lessoneventDescErrorType is the schema descriptor for error_type field.
	lessoneventDescErrorType := lessoneventFields[5].Descriptor()
	// lessonevent.DefaultErrorType holds the default value on creation for the error_type field.
	lessonevent.DefaultErrorType = lessoneventDescErrorType.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescUserID is the schema descriptor for user_id field.
	masteryeventDescUserID := masteryeventFields[0].Descriptor()
	// masteryevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryevent.UserIDValidator = masteryeventDescUserID.Validators[0].(func(string) error)
	// masteryeventDescSkillID is the schema descriptor for skill_id field.
	masteryeventDescSkillID := masteryeventFields[1].Descriptor()
	// masteryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryevent.SkillIDValidator = masteryeventDescSkillID.Validators[0].(func(string) error)
	// masteryeventDescStreak is the schema descriptor for streak field.
	masteryeventDescStreak := masteryeventFields[6].Descriptor()
	// masteryevent.DefaultStreak holds the default value on creation for the streak field.
	masteryevent.DefaultStreak = masteryeventDescStreak.Default.(int)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[7].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	placementeventMixin := schema.PlacementEvent{}.Mixin()
	placementeventMixinFields0 := placementeventMixin[0].Fields()
	_ = placementeventMixinFields0
	placementeventFields := schema.PlacementEvent{}.Fields()
	_ = placementeventFields
	// placementeventDescTimestamp is the schema descriptor for timestamp field.
	placementeventDescTimestamp := placementeventMixinFields0[1].Descriptor()
	// placementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	placementevent.DefaultTimestamp = placementeventDescTimestamp.Default.(func() time.Time)
	// placementeventDescUserID is the schema descriptor for user_id field.
	placementeventDescUserID := placementeventFields[0].Descriptor()
	// placementevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	placementevent.UserIDValidator = placementeventDescUserID.Validators[0].(func(string) error)
	// placementeventDescSessionID is the schema descriptor for session_id field.
	placementeventDescSessionID := placementeventFields[1].Descriptor()
	// placementevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	placementevent.SessionIDValidator = placementeventDescSessionID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescPhase is the schema descriptor for phase field.
	sessioneventDescPhase := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultPhase holds the default value on creation for the phase field.
	sessionevent.DefaultPhase = sessioneventDescPhase.Default.(string)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescHeartsRemaining is the schema descriptor for hearts_remaining field.
	sessioneventDescHeartsRemaining := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultHeartsRemaining holds the default value on creation for the hearts_remaining field.
	sessionevent.DefaultHeartsRemaining = sessioneventDescHeartsRemaining.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescUserID is the schema descriptor for user_id field.
	snapshotDescUserID := snapshotFields[0].Descriptor()
	// snapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	snapshot.UserIDValidator = snapshotDescUserID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
