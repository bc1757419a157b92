// Package app wires the scoring engine to the event store and the
// question bank. The engine stays pure; every read and write funnels
// through the Service here.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/engine"
	"github.com/brighted/nable/internal/lessons"
	"github.com/brighted/nable/internal/mastery"
	"github.com/brighted/nable/internal/quality"
	"github.com/brighted/nable/internal/spacedrep"
	"github.com/brighted/nable/internal/store"
)

const snapshotVersion = 1

// snapshotKeep bounds per-learner snapshot history.
const snapshotKeep = 10

// Service is the stateful shell around the pure engine: it loads and
// persists learner state, hydrates catalogue quality counters, and
// appends the event log.
type Service struct {
	eng       *engine.Engine
	events    store.EventRepo
	snapshots store.SnapshotRepo
	log       *zap.Logger

	// mu guards stored. Snapshots hold raw mastery; decay is recomputed
	// on every load and never written back, so the stored graph here is
	// the load-time graph plus the sparse deltas from each evaluation.
	mu     sync.Mutex
	stored map[string]mastery.KnowledgeGraph
}

// Config wires a Service. Store repos are required; Logger and Lessons
// are optional.
type Config struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Logger    *zap.Logger
	Lessons   engine.LessonComposer
}

func New(cfg Config) *Service {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	composer := cfg.Lessons
	if composer == nil {
		composer = lessons.TemplateComposer{}
	}

	priors := engine.NewPriorsCache(func() (map[string]float64, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return cfg.Events.SkillPriors(ctx)
	}, 0, nil)

	return &Service{
		eng: engine.New(engine.Config{
			Logger:  log,
			Priors:  priors,
			Lessons: composer,
		}),
		events:    cfg.Events,
		snapshots: cfg.Snapshots,
		log:       log,
		stored:    make(map[string]mastery.KnowledgeGraph),
	}
}

// Engine exposes the wrapped engine for callers that drive it directly.
func (s *Service) Engine() *engine.Engine { return s.eng }

// LoadState restores the learner's latest snapshot and opens a session
// over it. Retention decay is recomputed on every load, so mastery read
// after a long gap already reflects the forgetting curve. The stored
// graph itself stays raw; only answer deltas are ever persisted, so an
// untouched skill reads the same no matter how many sessions pass
// between answers.
func (s *Service) LoadState(ctx context.Context, userID string, now time.Time) (engine.State, error) {
	snap, err := s.snapshots.Latest(ctx, userID)
	if err != nil {
		return engine.State{}, fmt.Errorf("load snapshot: %w", err)
	}

	var graph mastery.KnowledgeGraph
	raw := make(mastery.KnowledgeGraph)
	if snap != nil {
		raw = mastery.KnowledgeGraph(snap.Data.Graph).Clone()
		graph = spacedrep.ApplyDecay(snap.Data.Graph, now)
	}
	s.mu.Lock()
	s.stored[userID] = raw
	s.mu.Unlock()

	state := s.eng.NewSession(userID, graph, now)
	if snap != nil {
		state.Stability = snap.Data.Stability
		if state.Stability == 0 {
			state.Stability = engine.DefaultStability
		}
		for id := range snap.Data.Completed {
			state.Completed[id] = true
		}
	}
	return state, nil
}

// mergeDeltas folds answered-skill scores into the learner's raw graph.
// Everything else in the stored graph keeps its persisted values.
func (s *Service) mergeDeltas(userID string, changed map[string]mastery.SubSkillScore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.stored[userID]
	if !ok {
		raw = make(mastery.KnowledgeGraph)
		s.stored[userID] = raw
	}
	for id, score := range changed {
		raw[id] = score
	}
}

// persistGraph returns the graph to write: the raw load-time graph with
// merged deltas when the state came through LoadState, the session graph
// otherwise.
func (s *Service) persistGraph(state engine.State) mastery.KnowledgeGraph {
	s.mu.Lock()
	defer s.mu.Unlock()
	if raw, ok := s.stored[state.UserID]; ok {
		return raw.Clone()
	}
	return state.Graph
}

// SaveState snapshots the session's durable parts and prunes history.
// Mastery is written undecayed; LoadState reapplies the forgetting curve.
func (s *Service) SaveState(ctx context.Context, state engine.State) error {
	err := s.snapshots.Save(ctx, &store.Snapshot{
		UserID:    state.UserID,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:      snapshotVersion,
			UserID:       state.UserID,
			Phase:        state.Phase.String(),
			Graph:        s.persistGraph(state),
			Completed:    state.Completed,
			RecentTopics: state.RecentTopics,
			Streak:       state.Streak,
			Hearts:       state.Hearts,
			Stability:    state.Stability,
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return s.snapshots.Prune(ctx, state.UserID, snapshotKeep)
}

// Evaluate folds one answer into the learner's state, appends the event
// log, and persists the new snapshot.
func (s *Service) Evaluate(ctx context.Context, state engine.State, req engine.Request, now time.Time) (engine.Response, engine.State, error) {
	resp, next := s.eng.Evaluate(state, req, now)
	s.mergeDeltas(next.UserID, resp.ChangedSkills)

	if err := s.appendAnswerEvents(ctx, next, req, resp, now); err != nil {
		return resp, next, err
	}
	if err := s.SaveState(ctx, next); err != nil {
		return resp, next, err
	}
	return resp, next, nil
}

func (s *Service) appendAnswerEvents(ctx context.Context, state engine.State, req engine.Request, resp engine.Response, now time.Time) error {
	errType, errRule := "", ""
	if resp.Classification != nil {
		errType = string(resp.Classification.Type)
		errRule = resp.Classification.Rule
	}

	err := s.events.AppendAnswer(ctx, store.AnswerEventData{
		SessionID:     state.SessionID,
		UserID:        state.UserID,
		QuestionID:    req.QuestionID,
		ObjectiveID:   req.ObjectiveID,
		SkillIDs:      req.SkillIDs,
		SelectedIndex: req.SelectedIndex,
		CorrectIndex:  req.CorrectIndex,
		Correct:       resp.Correct,
		TimeMs:        int(req.TimeToAnswerSecs * 1000),
		Difficulty:    req.Difficulty,
		ErrorType:     errType,
		ErrorRule:     errRule,
	})
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}

	trigger := "answer"
	if resp.Placement != nil {
		trigger = "placement"
	}
	for skillID, score := range resp.ChangedSkills {
		err := s.events.AppendMastery(ctx, store.MasteryEventData{
			UserID:        state.UserID,
			SkillID:       skillID,
			MasteryBefore: score.Mastery - resp.MasteryDeltas[skillID],
			MasteryAfter:  score.Mastery,
			Confidence:    score.Confidence,
			HalfLifeDays:  score.HalfLife,
			Streak:        score.StreakCount,
			Trigger:       trigger,
			SessionID:     state.SessionID,
		})
		if err != nil {
			return fmt.Errorf("append mastery event: %w", err)
		}
	}

	if resp.Placement != nil {
		err := s.events.AppendPlacement(ctx, store.PlacementEventData{
			UserID:         state.UserID,
			SessionID:      state.SessionID,
			Level:          resp.Placement.Level,
			Mastery:        resp.Placement.Mastery,
			Confidence:     resp.Placement.Confidence,
			QuestionsAsked: resp.Placement.QuestionsAnswered,
			ProbedSkills:   state.ProbedSkills,
		})
		if err != nil {
			return fmt.Errorf("append placement event: %w", err)
		}
	}

	if resp.MicroLesson != nil {
		err := s.events.AppendLesson(ctx, store.LessonEventData{
			SessionID:   state.SessionID,
			UserID:      state.UserID,
			SkillID:     resp.MicroLesson.SkillID,
			LessonTitle: resp.MicroLesson.Title,
			Source:      "template",
			ErrorType:   errType,
		})
		if err != nil {
			return fmt.Errorf("append lesson event: %w", err)
		}
	}

	return nil
}

// FlagItem runs the per-answer quality check and logs a flag when one
// fires. The updated flag count comes from the hydrated catalogue item.
func (s *Service) FlagItem(ctx context.Context, it content.Item, timeToAnswerSecs float64, sessionID string) (quality.FlagReason, bool, error) {
	reason, flagged := quality.CheckAnswer(it, timeToAnswerSecs)
	if !flagged {
		return "", false, nil
	}

	count := it.FlagCount + 1
	err := s.events.AppendItemFlag(ctx, store.ItemFlagEventData{
		QuestionID: it.ID,
		Reason:     string(reason),
		FlagCount:  count,
		Archived:   quality.ShouldArchive(count),
		SessionID:  sessionID,
	})
	if err != nil {
		return reason, true, fmt.Errorf("append item flag event: %w", err)
	}
	return reason, true, nil
}

// HydrateCatalogue overlays stored population aggregates onto bank items.
func (s *Service) HydrateCatalogue(ctx context.Context, items []content.Item) ([]content.Item, error) {
	stats, err := s.events.ItemStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load item stats: %w", err)
	}

	out := make([]content.Item, len(items))
	copy(out, items)
	for i := range out {
		st, ok := stats[out[i].ID]
		if !ok {
			continue
		}
		out[i].Attempts = st.Attempts
		out[i].CorrectCount = st.Correct
		out[i].FlagCount = st.FlagCount
		out[i].Archived = out[i].Archived || st.Archived
	}
	return out, nil
}

// ResetLearner drops the learner's snapshots so the next session starts
// from the cold-start diagnostic. Events stay in the log.
func (s *Service) ResetLearner(ctx context.Context, userID string) error {
	if err := s.snapshots.Reset(ctx, userID); err != nil {
		return fmt.Errorf("reset learner %s: %w", userID, err)
	}
	s.mu.Lock()
	delete(s.stored, userID)
	s.mu.Unlock()
	s.log.Info("learner reset", zap.String("user_id", userID))
	return nil
}

// StartSession appends the session-start event.
func (s *Service) StartSession(ctx context.Context, state engine.State) error {
	return s.events.AppendSession(ctx, store.SessionEventData{
		SessionID: state.SessionID,
		UserID:    state.UserID,
		Action:    "start",
		Phase:     state.Phase.String(),
	})
}

// EndSession appends the session-end event with final counters.
func (s *Service) EndSession(ctx context.Context, state engine.State, correctAnswers int, now time.Time) error {
	return s.events.AppendSession(ctx, store.SessionEventData{
		SessionID:       state.SessionID,
		UserID:          state.UserID,
		Action:          "end",
		Phase:           state.Phase.String(),
		QuestionsServed: state.QuestionsAsked,
		CorrectAnswers:  correctAnswers,
		HeartsRemaining: state.Hearts,
		DurationSecs:    int(now.Sub(state.SessionStart).Seconds()),
	})
}
