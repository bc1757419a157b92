// Package engine composes the scoring components into the two
// operations callers see: evaluate one answer, recommend the next item.
// Every operation takes a state snapshot and returns a new one; nothing
// here performs I/O or mutates its inputs.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/brighted/nable/internal/mastery"
	"github.com/brighted/nable/internal/placement"
)

// Phase is the learner's position in the session lifecycle.
type Phase int

const (
	// PhaseColdStart serves diagnostic probes until placement converges.
	PhaseColdStart Phase = iota
	// PhaseActive is normal adaptive play.
	PhaseActive
	// PhaseBlocked withholds forward progression while confidence is
	// too low to build on; refresh and easier items still flow.
	PhaseBlocked
)

func (p Phase) String() string {
	switch p {
	case PhaseColdStart:
		return "cold-start"
	case PhaseActive:
		return "active"
	default:
		return "blocked"
	}
}

const (
	// MaxHearts is the session life counter; an incorrect answer costs
	// one heart.
	MaxHearts = 5

	// RecentTopicWindow bounds the topic ring buffer used to rotate
	// objectives in recommendation.
	RecentTopicWindow = 5

	// DefaultStability is the personal stability multiplier for a
	// learner with no retention history.
	DefaultStability = 1.0
)

// State is one learner's session snapshot. It is a value type: Evaluate
// and Recommend never mutate a State they receive, they return a rebuilt
// copy.
type State struct {
	UserID    string
	SessionID string
	Phase     Phase

	Graph mastery.KnowledgeGraph

	Streak            int
	ConsecutiveErrors int

	// Seen holds question ids already served this session.
	Seen []string
	// Completed holds question ids ever answered correctly.
	Completed map[string]bool

	LastDifficulty float64
	LastSimilarity float64
	// RecentTopics is a ring of the objectives behind the last few
	// served questions.
	RecentTopics []string

	// Stability scales half-life growth for learners who retain well.
	Stability float64

	Hearts         int
	QuestionsAsked int

	// LastErrorConceptual records whether the most recent error was
	// conceptual, which forces the next item into a micro-lesson.
	LastErrorConceptual bool

	// Diagnostic is non-nil only during cold start; ProbedSkills are the
	// skills its probes touched, seeded with the placement result when
	// the diagnostic completes.
	Diagnostic   *placement.Diagnostic
	ProbedSkills []string

	SessionStart time.Time
}

// NewState opens a session over a persisted knowledge graph. An empty
// graph means a brand-new learner, who starts in cold start behind a
// placement diagnostic.
func NewState(userID string, graph mastery.KnowledgeGraph, now time.Time) State {
	if graph == nil {
		graph = make(mastery.KnowledgeGraph)
	}
	s := State{
		UserID:         userID,
		SessionID:      uuid.NewString(),
		Phase:          PhaseActive,
		Graph:          graph,
		Completed:      make(map[string]bool),
		LastDifficulty: float64(placement.StartLevel),
		LastSimilarity: 0.3,
		Stability:      DefaultStability,
		Hearts:         MaxHearts,
		SessionStart:   now,
	}
	if len(graph) == 0 {
		s.Phase = PhaseColdStart
		s.Diagnostic = placement.NewDiagnostic("")
	}
	return s
}

// Clone deep-copies the state so the caller's snapshot stays intact.
func (s State) Clone() State {
	out := s
	out.Graph = s.Graph.Clone()
	out.Seen = append([]string(nil), s.Seen...)
	out.RecentTopics = append([]string(nil), s.RecentTopics...)
	out.Completed = make(map[string]bool, len(s.Completed))
	for id := range s.Completed {
		out.Completed[id] = true
	}
	out.Diagnostic = s.Diagnostic.Clone()
	out.ProbedSkills = append([]string(nil), s.ProbedSkills...)
	return out
}

// RequiresRefill reports whether the learner has run out of hearts.
func (s State) RequiresRefill() bool { return s.Hearts <= 0 }

func (s *State) pushTopic(objectiveID string) {
	if objectiveID == "" {
		return
	}
	s.RecentTopics = append(s.RecentTopics, objectiveID)
	if len(s.RecentTopics) > RecentTopicWindow {
		s.RecentTopics = s.RecentTopics[len(s.RecentTopics)-RecentTopicWindow:]
	}
}
