// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
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
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldQuestionsServed holds the string denoting the questions_served field in the database.
	FieldQuestionsServed = "questions_served"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldHeartsRemaining holds the string denoting the hearts_remaining field in the database.
	FieldHeartsRemaining = "hearts_remaining"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserID,
	FieldAction,
	FieldPhase,
	FieldQuestionsServed,
	FieldCorrectAnswers,
	FieldHeartsRemaining,
	FieldDurationSecs,
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
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultPhase holds the default value on creation for the "phase" field.
	DefaultPhase string
	// DefaultQuestionsServed holds the default value on creation for the "questions_served" field.
	DefaultQuestionsServed int
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// DefaultHeartsRemaining holds the default value on creation for the "hearts_remaining" field.
	DefaultHeartsRemaining int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByQuestionsServed orders the results by the questions_served field.
func ByQuestionsServed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsServed, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByHeartsRemaining orders the results by the hearts_remaining field.
func ByHeartsRemaining(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartsRemaining, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
