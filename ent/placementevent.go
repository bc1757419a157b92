// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brighted/nable/ent/placementevent"
)

// PlacementEvent is the model entity for the PlacementEvent schema.
type PlacementEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Placed level on the 1-10 ladder
	Level int `json:"level,omitempty"`
	// Seeded mastery derived from the level
	Mastery float64 `json:"mastery,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// QuestionsAsked holds the value of the "questions_asked" field.
	QuestionsAsked int `json:"questions_asked,omitempty"`
	// Skills the probes touched, all seeded at the placed level
	ProbedSkills []string `json:"probed_skills,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlacementEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case placementevent.FieldProbedSkills:
			values[i] = new([]byte)
		case placementevent.FieldMastery, placementevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case placementevent.FieldID, placementevent.FieldSequence, placementevent.FieldLevel, placementevent.FieldQuestionsAsked:
			values[i] = new(sql.NullInt64)
		case placementevent.FieldUserID, placementevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case placementevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlacementEvent fields.
func (_m *PlacementEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case placementevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case placementevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case placementevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case placementevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case placementevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case placementevent.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case placementevent.FieldMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.Float64
			}
		case placementevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case placementevent.FieldQuestionsAsked:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_asked", values[i])
			} else if value.Valid {
				_m.QuestionsAsked = int(value.Int64)
			}
		case placementevent.FieldProbedSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field probed_skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProbedSkills); err != nil {
					return fmt.Errorf("unmarshal field probed_skills: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlacementEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PlacementEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlacementEvent.
// Note that you need to call PlacementEvent.Unwrap() before calling this method if this PlacementEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlacementEvent) Update() *PlacementEventUpdateOne {
	return NewPlacementEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlacementEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlacementEvent) Unwrap() *PlacementEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlacementEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlacementEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PlacementEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastery))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("questions_asked=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAsked))
	builder.WriteString(", ")
	builder.WriteString("probed_skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProbedSkills))
	builder.WriteByte(')')
	return builder.String()
}

// PlacementEvents is a parsable slice of PlacementEvent.
type PlacementEvents []*PlacementEvent
