// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldObjectiveID holds the string denoting the objective_id field in the database.
	FieldObjectiveID = "objective_id"
	// FieldSkillIds holds the string denoting the skill_ids field in the database.
	FieldSkillIds = "skill_ids"
	// FieldSelectedIndex holds the string denoting the selected_index field in the database.
	FieldSelectedIndex = "selected_index"
	// FieldCorrectIndex holds the string denoting the correct_index field in the database.
	FieldCorrectIndex = "correct_index"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldErrorRule holds the string denoting the error_rule field in the database.
	FieldErrorRule = "error_rule"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserID,
	FieldQuestionID,
	FieldObjectiveID,
	FieldSkillIds,
	FieldSelectedIndex,
	FieldCorrectIndex,
	FieldCorrect,
	FieldTimeMs,
	FieldDifficulty,
	FieldErrorType,
	FieldErrorRule,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultObjectiveID holds the default value on creation for the "objective_id" field.
	DefaultObjectiveID string
	// DefaultErrorType holds the default value on creation for the "error_type" field.
	DefaultErrorType string
	// DefaultErrorRule holds the default value on creation for the "error_rule" field.
	DefaultErrorRule string
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByObjectiveID orders the results by the objective_id field.
func ByObjectiveID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectiveID, opts...).ToFunc()
}

// BySelectedIndex orders the results by the selected_index field.
func BySelectedIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedIndex, opts...).ToFunc()
}

// ByCorrectIndex orders the results by the correct_index field.
func ByCorrectIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectIndex, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByErrorRule orders the results by the error_rule field.
func ByErrorRule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorRule, opts...).ToFunc()
}
