// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString, Default: ""},
		{Name: "skill_ids", Type: field.TypeJSON},
		{Name: "selected_index", Type: field.TypeInt},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "error_type", Type: field.TypeString, Default: ""},
		{Name: "error_rule", Type: field.TypeString, Default: ""},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[10]},
			},
		},
	}
	// ItemFlagEventsColumns holds the columns for the "item_flag_events" table.
	ItemFlagEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "flag_count", Type: field.TypeInt},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// ItemFlagEventsTable holds the schema information for the "item_flag_events" table.
	ItemFlagEventsTable = &schema.Table{
		Name:       "item_flag_events",
		Columns:    ItemFlagEventsColumns,
		PrimaryKey: []*schema.Column{ItemFlagEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itemflagevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ItemFlagEventsColumns[1]},
			},
			{
				Name:    "itemflagevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ItemFlagEventsColumns[2]},
			},
			{
				Name:    "itemflagevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{ItemFlagEventsColumns[3]},
			},
			{
				Name:    "itemflagevent_reason",
				Unique:  false,
				Columns: []*schema.Column{ItemFlagEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "lesson_title", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "error_type", Type: field.TypeString, Default: ""},
		{Name: "practice_attempted", Type: field.TypeBool},
		{Name: "practice_correct", Type: field.TypeBool},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2]},
			},
			{
				Name:    "lessonevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[3]},
			},
			{
				Name:    "lessonevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[5]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "mastery_before", Type: field.TypeFloat64},
		{Name: "mastery_after", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "half_life_days", Type: field.TypeFloat64},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "trigger", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_user_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3], MasteryEventsColumns[4]},
			},
			{
				Name:    "masteryevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[4]},
			},
		},
	}
	// PlacementEventsColumns holds the columns for the "placement_events" table.
	PlacementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "mastery", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "questions_asked", Type: field.TypeInt},
		{Name: "probed_skills", Type: field.TypeJSON},
	}
	// PlacementEventsTable holds the schema information for the "placement_events" table.
	PlacementEventsTable = &schema.Table{
		Name:       "placement_events",
		Columns:    PlacementEventsColumns,
		PrimaryKey: []*schema.Column{PlacementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "placementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[1]},
			},
			{
				Name:    "placementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[2]},
			},
			{
				Name:    "placementevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[3]},
			},
			{
				Name:    "placementevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString, Default: ""},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "hearts_remaining", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_user_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		ItemFlagEventsTable,
		LlmRequestEventsTable,
		LessonEventsTable,
		MasteryEventsTable,
		PlacementEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
