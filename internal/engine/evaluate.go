package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/diagnosis"
	"github.com/brighted/nable/internal/difficulty"
	"github.com/brighted/nable/internal/lessons"
	"github.com/brighted/nable/internal/mastery"
	"github.com/brighted/nable/internal/placement"
	"github.com/brighted/nable/internal/question"
	"github.com/brighted/nable/internal/spacedrep"
)

// LessonComposer synthesizes a micro-lesson for a skill after a
// conceptual error. The score carries the learner's standing on the
// skill so lessons can pitch to it. Implementations must not block;
// LLM-backed composers should serve pre-generated or template content
// here.
type LessonComposer interface {
	Compose(skillID string, score mastery.SubSkillScore, cls *diagnosis.Classification) (lessons.Lesson, bool)
}

// Config wires the engine's optional collaborators.
type Config struct {
	Logger  *zap.Logger
	Priors  *PriorsCache
	Lessons LessonComposer
}

// Engine evaluates answers and recommends items. It holds only injected
// collaborators, never learner state; all state travels through State
// values.
type Engine struct {
	log      *zap.Logger
	priors   *PriorsCache
	composer LessonComposer
}

// New builds an engine. All Config fields are optional.
func New(cfg Config) *Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log, priors: cfg.Priors, composer: cfg.Lessons}
}

// NewSession opens a session over a persisted graph. A brand-new
// learner's diagnostic starts from the platform-wide prior when the
// cache has one, instead of the hardcoded middle of the scale.
func (e *Engine) NewSession(userID string, graph mastery.KnowledgeGraph, now time.Time) State {
	s := NewState(userID, graph, now)
	if s.Phase == PhaseColdStart {
		if prior, ok := e.priors.Mean(); ok {
			s.Diagnostic = placement.NewDiagnosticWithPrior("", prior)
			s.LastDifficulty = float64(s.Diagnostic.CurrentLevel())
		}
	}
	return s
}

// Request is one answer event.
type Request struct {
	UserID           string
	QuestionID       string
	ObjectiveID      string
	SelectedIndex    int
	CorrectIndex     int
	Options          []string
	TimeToAnswerSecs float64
	ExpectedTimeSecs float64
	SkillIDs         []string
	Difficulty       float64
	// Applied marks a contextual or word-problem check, as opposed to a
	// drill; failing one while mastery is high marks the skill
	// theoretical-only.
	Applied bool
}

// Response is everything the caller needs to react to one answer.
type Response struct {
	// NextQuestionID is always nil here; the caller sets it after a
	// Recommend call.
	NextQuestionID *string

	Correct              bool
	DifficultyAdjustment float64
	MasteryDeltas        map[string]float64
	Mood                 difficulty.Mood
	Confidence           float64
	BlockedProgression   bool

	MicroLessonRequired bool
	MicroLesson         *lessons.Lesson

	Classification            *diagnosis.Classification
	ShouldSwitchToVisualAided bool

	CurrentStreak   int
	HeartsRemaining int
	RequiresRefill  bool

	Phase    Phase
	Warnings []string

	// ChangedSkills is the sparse state delta: only the skills touched
	// by this answer, for efficient persistence.
	ChangedSkills map[string]mastery.SubSkillScore

	// Placement is set on the answer that completes a cold-start
	// diagnostic.
	Placement *PlacementSummary
}

// PlacementSummary reports a completed diagnostic to the caller.
type PlacementSummary struct {
	Level             int
	Mastery           float64
	Confidence        float64
	QuestionsAnswered int
}

// Evaluate folds one answer event into the session. The input state is
// left untouched; the returned state is the new snapshot to persist.
func (e *Engine) Evaluate(state State, req Request, now time.Time) (Response, State) {
	next := state.Clone()
	next.QuestionsAsked++
	next.Seen = append(next.Seen, req.QuestionID)
	next.pushTopic(req.ObjectiveID)

	norm := question.Normalize(req.Options)
	correct := req.SelectedIndex == req.CorrectIndex

	var cls *diagnosis.Classification
	if !correct {
		if c, err := diagnosis.ClassifyWithQuestion(req.SelectedIndex, req.CorrectIndex, &norm); err == nil {
			cls = &c
		}
	}

	if correct {
		next.Streak++
		next.ConsecutiveErrors = 0
		next.LastErrorConceptual = false
		next.Completed[req.QuestionID] = true
	} else {
		next.Streak = 0
		next.ConsecutiveErrors++
		next.LastErrorConceptual = cls != nil && cls.Type == diagnosis.ErrorConceptual
		if next.Hearts > 0 {
			next.Hearts--
		}
	}

	resp := Response{
		Correct:         correct,
		Classification:  cls,
		CurrentStreak:   next.Streak,
		HeartsRemaining: next.Hearts,
		Warnings:        norm.Warnings,
		MasteryDeltas:   make(map[string]float64),
		ChangedSkills:   make(map[string]mastery.SubSkillScore),
	}

	if next.Phase == PhaseColdStart && next.Diagnostic != nil {
		e.evaluateColdStart(&next, &resp, req, correct, now)
	} else {
		e.evaluateActive(&next, &resp, req, correct, cls, now)
	}

	resp.RequiresRefill = next.RequiresRefill()
	resp.Phase = next.Phase

	e.log.Debug("answer evaluated",
		zap.String("user", req.UserID),
		zap.String("question", req.QuestionID),
		zap.Bool("correct", correct),
		zap.Int("streak", next.Streak),
		zap.Int("hearts", next.Hearts),
		zap.Stringer("phase", next.Phase))

	return resp, next
}

func (e *Engine) evaluateColdStart(next *State, resp *Response, req Request, correct bool, now time.Time) {
	d := next.Diagnostic
	d.Record(correct, req.TimeToAnswerSecs, now)
	for _, id := range req.SkillIDs {
		if !contains(next.ProbedSkills, id) {
			next.ProbedSkills = append(next.ProbedSkills, id)
		}
	}

	resp.Mood = difficulty.MoodEncouraging
	resp.DifficultyAdjustment = float64(d.CurrentLevel()) - next.LastDifficulty
	next.LastDifficulty = float64(d.CurrentLevel())

	if !d.Done() {
		return
	}

	res := d.Result()
	for _, id := range next.ProbedSkills {
		score := mastery.DefaultScore(now)
		score.Mastery = res.Mastery
		score.Confidence = res.Confidence
		score.Clamp()
		next.Graph[id] = score
		resp.MasteryDeltas[id] = score.Mastery
		resp.ChangedSkills[id] = score
	}
	next.Phase = PhaseActive
	next.Diagnostic = nil
	next.LastDifficulty = float64(res.Level)
	resp.Confidence = res.Confidence
	resp.Placement = &PlacementSummary{
		Level:             res.Level,
		Mastery:           res.Mastery,
		Confidence:        res.Confidence,
		QuestionsAnswered: res.QuestionsAnswered,
	}

	e.log.Info("placement complete",
		zap.String("user", req.UserID),
		zap.Int("level", res.Level),
		zap.Float64("mastery", res.Mastery),
		zap.Int("questions", res.QuestionsAnswered))
}

func (e *Engine) evaluateActive(next *State, resp *Response, req Request, correct bool, cls *diagnosis.Classification, now time.Time) {
	label := ""
	if cls != nil {
		label = string(cls.Type)
	}
	ansCtx := mastery.AnswerContext{
		Correct:          correct,
		TimeToAnswerSecs: req.TimeToAnswerSecs,
		ExpectedTimeSecs: req.ExpectedTimeSecs,
		Difficulty:       req.Difficulty,
		ErrorLabel:       label,
		Applied:          req.Applied,
	}

	for _, skillID := range req.SkillIDs {
		score := next.Graph.Get(skillID, now)
		upd := mastery.ApplyAnswer(score, ansCtx, now)
		s := upd.Score
		s.HalfLife = spacedrep.UpdateHalfLife(s.HalfLife, correct, req.Difficulty, next.Stability)
		next.Graph[skillID] = s
		resp.MasteryDeltas[skillID] = upd.MasteryDelta
		resp.ChangedSkills[skillID] = s
	}

	primary := next.Graph.Get(primarySkill(req.SkillIDs), now)
	declining := resp.MasteryDeltas[primarySkill(req.SkillIDs)] < 0

	target := difficulty.Target(primary.Mastery, primary.Confidence, next.Streak)
	resp.DifficultyAdjustment = target - next.LastDifficulty
	next.LastDifficulty = target
	next.LastSimilarity = difficulty.NextSimilarity(next.LastSimilarity, next.Streak, next.ConsecutiveErrors)

	conceptual := cls != nil && cls.Type == diagnosis.ErrorConceptual
	nextType := difficulty.NextContentType(conceptual, next.ConsecutiveErrors)
	resp.MicroLessonRequired = nextType == content.TypeMicroLesson

	// The trailing error history can demand remediation even when the
	// current slip looks careless: a window dominated by conceptual
	// errors means more drilling won't fix the misunderstanding.
	patterns := diagnosis.AnalyzeErrorPatterns(primary.ErrorHistory)
	if !correct && patterns.RecommendRemediation {
		resp.MicroLessonRequired = true
	}
	resp.ShouldSwitchToVisualAided = nextType == content.TypeVisualAided
	if resp.MicroLessonRequired && e.composer != nil {
		if lesson, ok := e.composer.Compose(primarySkill(req.SkillIDs), primary, cls); ok {
			resp.MicroLesson = &lesson
		}
	}

	resp.Mood = difficulty.MoodFor(primary.Confidence, next.Streak, next.ConsecutiveErrors, declining)
	resp.Confidence = primary.Confidence
	resp.BlockedProgression = difficulty.Blocked(primary.Confidence)
	if resp.BlockedProgression {
		next.Phase = PhaseBlocked
	} else {
		next.Phase = PhaseActive
	}
}

func primarySkill(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
