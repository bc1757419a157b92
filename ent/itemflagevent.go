// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brighted/nable/ent/itemflagevent"
)

// ItemFlagEvent is the model entity for the ItemFlagEvent schema.
type ItemFlagEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// slow-answer or low-success-rate
	Reason string `json:"reason,omitempty"`
	// Total flags on the item after this one
	FlagCount int `json:"flag_count,omitempty"`
	// Whether this flag pushed the item over the archive threshold
	Archived bool `json:"archived,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItemFlagEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itemflagevent.FieldArchived:
			values[i] = new(sql.NullBool)
		case itemflagevent.FieldID, itemflagevent.FieldSequence, itemflagevent.FieldFlagCount:
			values[i] = new(sql.NullInt64)
		case itemflagevent.FieldQuestionID, itemflagevent.FieldReason, itemflagevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case itemflagevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItemFlagEvent fields.
func (_m *ItemFlagEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itemflagevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case itemflagevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case itemflagevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case itemflagevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case itemflagevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case itemflagevent.FieldFlagCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field flag_count", values[i])
			} else if value.Valid {
				_m.FlagCount = int(value.Int64)
			}
		case itemflagevent.FieldArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field archived", values[i])
			} else if value.Valid {
				_m.Archived = value.Bool
			}
		case itemflagevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ItemFlagEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ItemFlagEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ItemFlagEvent.
// Note that you need to call ItemFlagEvent.Unwrap() before calling this method if this ItemFlagEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ItemFlagEvent) Update() *ItemFlagEventUpdateOne {
	return NewItemFlagEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ItemFlagEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ItemFlagEvent) Unwrap() *ItemFlagEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItemFlagEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ItemFlagEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ItemFlagEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("flag_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlagCount))
	builder.WriteString(", ")
	builder.WriteString("archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.Archived))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// ItemFlagEvents is a parsable slice of ItemFlagEvent.
type ItemFlagEvents []*ItemFlagEvent
