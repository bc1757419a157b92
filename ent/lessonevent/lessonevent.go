// Code generated by ent, DO NOT EDIT.

package lessonevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonevent type in the database.
	Label = "lesson_event"
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
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldLessonTitle holds the string denoting the lesson_title field in the database.
	FieldLessonTitle = "lesson_title"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldPracticeAttempted holds the string denoting the practice_attempted field in the database.
	FieldPracticeAttempted = "practice_attempted"
	// FieldPracticeCorrect holds the string denoting the practice_correct field in the database.
	FieldPracticeCorrect = "practice_correct"
	// Table holds the table name of the lessonevent in the database.
	Table = "lesson_events"
)

// Columns holds all SQL columns for lessonevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserID,
	FieldSkillID,
	FieldLessonTitle,
	FieldSource,
	FieldErrorType,
	FieldPracticeAttempted,
	FieldPracticeCorrect,
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
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	LessonTitleValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultErrorType holds the default value on creation for the "error_type" field.
	DefaultErrorType string
)

// OrderOption defines the ordering options for the LessonEvent queries.
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

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByLessonTitle orders the results by the lesson_title field.
func ByLessonTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonTitle, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByPracticeAttempted orders the results by the practice_attempted field.
func ByPracticeAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeAttempted, opts...).ToFunc()
}

// ByPracticeCorrect orders the results by the practice_correct field.
func ByPracticeCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCorrect, opts...).ToFunc()
}
