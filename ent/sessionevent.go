// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brighted/nable/ent/sessionevent"
)

// SessionEvent is the model entity for the SessionEvent schema.
type SessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// cold-start, active, or blocked at the time of the event
	Phase string `json:"phase,omitempty"`
	// Total questions (on end only)
	QuestionsServed int `json:"questions_served,omitempty"`
	// Total correct (on end only)
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// Hearts left (on end only)
	HeartsRemaining int `json:"hearts_remaining,omitempty"`
	// Actual duration in seconds (on end only)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID, sessionevent.FieldSequence, sessionevent.FieldQuestionsServed, sessionevent.FieldCorrectAnswers, sessionevent.FieldHeartsRemaining, sessionevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case sessionevent.FieldSessionID, sessionevent.FieldUserID, sessionevent.FieldAction, sessionevent.FieldPhase:
			values[i] = new(sql.NullString)
		case sessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionEvent fields.
func (_m *SessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case sessionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case sessionevent.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case sessionevent.FieldQuestionsServed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_served", values[i])
			} else if value.Valid {
				_m.QuestionsServed = int(value.Int64)
			}
		case sessionevent.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case sessionevent.FieldHeartsRemaining:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hearts_remaining", values[i])
			} else if value.Valid {
				_m.HeartsRemaining = int(value.Int64)
			}
		case sessionevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionEvent.
// Note that you need to call SessionEvent.Unwrap() before calling this method if this SessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionEvent) Update() *SessionEventUpdateOne {
	return NewSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionEvent) Unwrap() *SessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("questions_served=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsServed))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("hearts_remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.HeartsRemaining))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// SessionEvents is a parsable slice of SessionEvent.
type SessionEvents []*SessionEvent
