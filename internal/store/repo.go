package store

import (
	"context"
	"time"

	"github.com/brighted/nable/internal/mastery"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures a learner's full knowledge state at a point in time.
type SnapshotData struct {
	Version      int                              `json:"version"`
	UserID       string                           `json:"user_id"`
	Phase        string                           `json:"phase"`
	Graph        map[string]mastery.SubSkillScore `json:"graph"`
	Completed    map[string]bool                  `json:"completed"`
	RecentTopics []string                         `json:"recent_topics"`
	Streak       int                              `json:"streak"`
	Hearts       int                              `json:"hearts"`
	Stability    float64                          `json:"stability"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	UserID    string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the learner's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// Prune deletes all but the learner's N most recent snapshots.
	Prune(ctx context.Context, userID string, keep int) error

	// Reset deletes every snapshot the learner owns. The event log is
	// append-only and survives; the learner simply restarts from cold start.
	Reset(ctx context.Context, userID string) error
}

// AnswerEventData captures a single multiple-choice answer.
type AnswerEventData struct {
	SessionID     string
	UserID        string
	QuestionID    string
	ObjectiveID   string
	SkillIDs      []string
	SelectedIndex int
	CorrectIndex  int
	Correct       bool
	TimeMs        int
	Difficulty    float64
	ErrorType     string
	ErrorRule     string
}

// MasteryEventData captures a mastery update for one skill.
type MasteryEventData struct {
	UserID        string
	SkillID       string
	MasteryBefore float64
	MasteryAfter  float64
	Confidence    float64
	HalfLifeDays  float64
	Streak        int
	Trigger       string
	SessionID     string
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	UserID          string
	Action          string
	Phase           string
	QuestionsServed int
	CorrectAnswers  int
	HeartsRemaining int
	DurationSecs    int
}

// PlacementEventData captures the outcome of a cold-start placement run.
type PlacementEventData struct {
	UserID         string
	SessionID      string
	Level          int
	Mastery        float64
	Confidence     float64
	QuestionsAsked int
	ProbedSkills   []string
}

// ItemFlagEventData captures a quality flag raised against a catalogue item.
type ItemFlagEventData struct {
	QuestionID string
	Reason     string
	FlagCount  int
	Archived   bool
	SessionID  string
}

// LessonEventData captures a micro-lesson being composed and shown.
type LessonEventData struct {
	SessionID         string
	UserID            string
	SkillID           string
	LessonTitle       string
	Source            string
	ErrorType         string
	PracticeAttempted bool
	PracticeCorrect   bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a stored LLM request event, as read back for
// inspection commands.
type LLMRequestEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token counts and call outcomes for one purpose or model.
type LLMUsage struct {
	Key          string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ItemStats aggregates answer history and quality flags for one catalogue item.
type ItemStats struct {
	Attempts  int
	Correct   int
	FlagCount int
	Archived  bool
}

// SkillResult aggregates one learner's attempts on a skill.
type SkillResult struct {
	Attempted int
	Correct   int
}

// EventRepo provides append and aggregate query access to domain events.
type EventRepo interface {
	// AppendAnswer records a graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendMastery records a mastery update.
	AppendMastery(ctx context.Context, data MasteryEventData) error

	// AppendSession records a session lifecycle event.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendPlacement records a completed placement run.
	AppendPlacement(ctx context.Context, data PlacementEventData) error

	// AppendItemFlag records a quality flag against an item.
	AppendItemFlag(ctx context.Context, data ItemFlagEventData) error

	// AppendLesson records a micro-lesson being shown.
	AppendLesson(ctx context.Context, data LessonEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SkillPriors returns the mean latest mastery per skill across all
	// learners, for seeding cold-start placement.
	SkillPriors(ctx context.Context) (map[string]float64, error)

	// ItemStats returns per-item answer and flag aggregates across all
	// learners, for hydrating catalogue quality state.
	ItemStats(ctx context.Context) (map[string]ItemStats, error)

	// UserSkillResults folds one learner's answer log into per-skill
	// attempt totals, for learner profile generation.
	UserSkillResults(ctx context.Context, userID string) (map[string]SkillResult, error)

	// QueryLLMEvents returns stored LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
