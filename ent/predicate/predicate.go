// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// ItemFlagEvent is the predicate function for itemflagevent builders.
type ItemFlagEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LessonEvent is the predicate function for lessonevent builders.
type LessonEvent func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// PlacementEvent is the predicate function for placementevent builders.
type PlacementEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
