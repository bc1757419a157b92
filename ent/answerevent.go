// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brighted/nable/ent/answerevent"
)

// AnswerEvent is the model entity for the AnswerEvent schema.
type AnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Learner the answer belongs to
	UserID string `json:"user_id,omitempty"`
	// Catalogue item answered
	QuestionID string `json:"question_id,omitempty"`
	// Syllabus objective, e.g. POB-00301
	ObjectiveID string `json:"objective_id,omitempty"`
	// Skills the question exercises
	SkillIds []string `json:"skill_ids,omitempty"`
	// Option the learner chose
	SelectedIndex int `json:"selected_index,omitempty"`
	// Option keyed as correct
	CorrectIndex int `json:"correct_index,omitempty"`
	// Whether the answer was correct
	Correct bool `json:"correct,omitempty"`
	// Milliseconds to answer
	TimeMs int `json:"time_ms,omitempty"`
	// Item difficulty on the 0-10 scale
	Difficulty float64 `json:"difficulty,omitempty"`
	// Classified error: conceptual, careless, misread, or empty when correct
	ErrorType string `json:"error_type,omitempty"`
	// Classifier rule that fired
	ErrorRule    string `json:"error_rule,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldSkillIds:
			values[i] = new([]byte)
		case answerevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case answerevent.FieldDifficulty:
			values[i] = new(sql.NullFloat64)
		case answerevent.FieldID, answerevent.FieldSequence, answerevent.FieldSelectedIndex, answerevent.FieldCorrectIndex, answerevent.FieldTimeMs:
			values[i] = new(sql.NullInt64)
		case answerevent.FieldSessionID, answerevent.FieldUserID, answerevent.FieldQuestionID, answerevent.FieldObjectiveID, answerevent.FieldErrorType, answerevent.FieldErrorRule:
			values[i] = new(sql.NullString)
		case answerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerEvent fields.
func (_m *AnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case answerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case answerevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case answerevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case answerevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case answerevent.FieldObjectiveID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective_id", values[i])
			} else if value.Valid {
				_m.ObjectiveID = value.String
			}
		case answerevent.FieldSkillIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skill_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkillIds); err != nil {
					return fmt.Errorf("unmarshal field skill_ids: %w", err)
				}
			}
		case answerevent.FieldSelectedIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field selected_index", values[i])
			} else if value.Valid {
				_m.SelectedIndex = int(value.Int64)
			}
		case answerevent.FieldCorrectIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_index", values[i])
			} else if value.Valid {
				_m.CorrectIndex = int(value.Int64)
			}
		case answerevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case answerevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = int(value.Int64)
			}
		case answerevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case answerevent.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = value.String
			}
		case answerevent.FieldErrorRule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_rule", values[i])
			} else if value.Valid {
				_m.ErrorRule = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnswerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnswerEvent.
// Note that you need to call AnswerEvent.Unwrap() before calling this method if this AnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnswerEvent) Update() *AnswerEventUpdateOne {
	return NewAnswerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnswerEvent) Unwrap() *AnswerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerEvent(")
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
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("objective_id=")
	builder.WriteString(_m.ObjectiveID)
	builder.WriteString(", ")
	builder.WriteString("skill_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillIds))
	builder.WriteString(", ")
	builder.WriteString("selected_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelectedIndex))
	builder.WriteString(", ")
	builder.WriteString("correct_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectIndex))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("error_type=")
	builder.WriteString(_m.ErrorType)
	builder.WriteString(", ")
	builder.WriteString("error_rule=")
	builder.WriteString(_m.ErrorRule)
	builder.WriteByte(')')
	return builder.String()
}

// AnswerEvents is a parsable slice of AnswerEvent.
type AnswerEvents []*AnswerEvent
