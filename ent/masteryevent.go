// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brighted/nable/ent/masteryevent"
)

// MasteryEvent is the model entity for the MasteryEvent schema.
type MasteryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// MasteryBefore holds the value of the "mastery_before" field.
	MasteryBefore float64 `json:"mastery_before,omitempty"`
	// MasteryAfter holds the value of the "mastery_after" field.
	MasteryAfter float64 `json:"mastery_after,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Retention half-life after the update
	HalfLifeDays float64 `json:"half_life_days,omitempty"`
	// Consecutive correct answers for the skill
	Streak int `json:"streak,omitempty"`
	// answer, placement, or decay
	Trigger string `json:"trigger,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MasteryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case masteryevent.FieldMasteryBefore, masteryevent.FieldMasteryAfter, masteryevent.FieldConfidence, masteryevent.FieldHalfLifeDays:
			values[i] = new(sql.NullFloat64)
		case masteryevent.FieldID, masteryevent.FieldSequence, masteryevent.FieldStreak:
			values[i] = new(sql.NullInt64)
		case masteryevent.FieldUserID, masteryevent.FieldSkillID, masteryevent.FieldTrigger, masteryevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case masteryevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MasteryEvent fields.
func (_m *MasteryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case masteryevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case masteryevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case masteryevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case masteryevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case masteryevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case masteryevent.FieldMasteryBefore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_before", values[i])
			} else if value.Valid {
				_m.MasteryBefore = value.Float64
			}
		case masteryevent.FieldMasteryAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_after", values[i])
			} else if value.Valid {
				_m.MasteryAfter = value.Float64
			}
		case masteryevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case masteryevent.FieldHalfLifeDays:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field half_life_days", values[i])
			} else if value.Valid {
				_m.HalfLifeDays = value.Float64
			}
		case masteryevent.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case masteryevent.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = value.String
			}
		case masteryevent.FieldSessionID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MasteryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MasteryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MasteryEvent.
// Note that you need to call MasteryEvent.Unwrap() before calling this method if this MasteryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MasteryEvent) Update() *MasteryEventUpdateOne {
	return NewMasteryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MasteryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MasteryEvent) Unwrap() *MasteryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MasteryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MasteryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MasteryEvent(")
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
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("mastery_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryBefore))
	builder.WriteString(", ")
	builder.WriteString("mastery_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryAfter))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("half_life_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.HalfLifeDays))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(_m.Trigger)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// MasteryEvents is a parsable slice of MasteryEvent.
type MasteryEvents []*MasteryEvent
