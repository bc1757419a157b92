// Code generated by ent, DO NOT EDIT.

package masteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryevent type in the database.
	Label = "mastery_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldMasteryBefore holds the string denoting the mastery_before field in the database.
	FieldMasteryBefore = "mastery_before"
	// FieldMasteryAfter holds the string denoting the mastery_after field in the database.
	FieldMasteryAfter = "mastery_after"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldHalfLifeDays holds the string denoting the half_life_days field in the database.
	FieldHalfLifeDays = "half_life_days"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the masteryevent in the database.
	Table = "mastery_events"
)

// Columns holds all SQL columns for masteryevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldSkillID,
	FieldMasteryBefore,
	FieldMasteryAfter,
	FieldConfidence,
	FieldHalfLifeDays,
	FieldStreak,
	FieldTrigger,
	FieldSessionID,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	TriggerValidator func(string) error
)

// OrderOption defines the ordering options for the MasteryEvent queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByMasteryBefore orders the results by the mastery_before field.
func ByMasteryBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryBefore, opts...).ToFunc()
}

// ByMasteryAfter orders the results by the mastery_after field.
func ByMasteryAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryAfter, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByHalfLifeDays orders the results by the half_life_days field.
func ByHalfLifeDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHalfLifeDays, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
