// Package placement estimates a new learner's starting mastery with a
// short binary-search diagnostic instead of assuming flat priors.
package placement

import (
	"math"
	"time"
)

const (
	MinLevel   = 1
	MaxLevel   = 10
	StartLevel = 5

	// A diagnostic asks at least MinQuestions probes before it may
	// converge and never asks more than MaxQuestions.
	MinQuestions = 3
	MaxQuestions = 6

	firstCorrectJump   = 3
	firstIncorrectDrop = 2
)

// Confidence from a diagnostic is deliberately bounded below full
// confidence; a handful of probes is evidence, not proof.
const (
	baseConfidence   = 0.3
	maxConfidence    = 0.8
	correctRateBonus = 0.2
	coverageBonus    = 0.1
	narrowBandBonus  = 0.1
)

const fallbackMastery = 0.3

// Probe is one asked question in a diagnostic session.
type Probe struct {
	Level            int
	Correct          bool
	TimeToAnswerSecs float64
	AskedAt          time.Time
}

// Diagnostic tracks one cold-start placement session. The zero value is
// not usable; construct with NewDiagnostic.
type Diagnostic struct {
	skillID string
	current int
	// low..high is the band of levels not yet resolved by an answer.
	// A correct answer at L resolves everything at or below L, an
	// incorrect answer resolves everything at or above L.
	low, high int
	history   []Probe
	done      bool
}

// NewDiagnostic starts a session probing at the middle of the scale.
func NewDiagnostic(skillID string) *Diagnostic {
	return &Diagnostic{
		skillID: skillID,
		current: StartLevel,
		low:     MinLevel,
		high:    MaxLevel,
	}
}

// NewDiagnosticWithPrior seeds the first probe level from a prior
// mastery estimate, typically a platform-wide aggregate for the skill.
func NewDiagnosticWithPrior(skillID string, priorMastery float64) *Diagnostic {
	d := NewDiagnostic(skillID)
	level := int(math.Round(priorMastery * MaxLevel))
	if level < MinLevel {
		level = MinLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	d.current = level
	return d
}

// Clone deep-copies the session, history included.
func (d *Diagnostic) Clone() *Diagnostic {
	if d == nil {
		return nil
	}
	out := *d
	out.history = append([]Probe(nil), d.history...)
	return &out
}

// SkillID returns the skill this session is probing.
func (d *Diagnostic) SkillID() string { return d.skillID }

// CurrentLevel returns the difficulty of the probe to serve next.
func (d *Diagnostic) CurrentLevel() int { return d.current }

// QuestionsAnswered returns how many probes have been recorded.
func (d *Diagnostic) QuestionsAnswered() int { return len(d.history) }

// Done reports whether the session has converged or hit the probe cap.
func (d *Diagnostic) Done() bool { return d.done }

// History returns the ordered probes recorded so far.
func (d *Diagnostic) History() []Probe {
	out := make([]Probe, len(d.history))
	copy(out, d.history)
	return out
}

// Record folds one answer into the session and moves the probe level.
// The first answer makes a coarse jump; later answers bisect the
// unresolved band. Recording after Done is a no-op.
func (d *Diagnostic) Record(correct bool, timeToAnswerSecs float64, now time.Time) {
	if d.done {
		return
	}
	d.history = append(d.history, Probe{
		Level:            d.current,
		Correct:          correct,
		TimeToAnswerSecs: timeToAnswerSecs,
		AskedAt:          now,
	})

	if correct {
		if d.current+1 > d.low {
			d.low = d.current + 1
		}
	} else {
		if d.current-1 < d.high {
			d.high = d.current - 1
		}
	}

	n := len(d.history)
	if n >= MaxQuestions || (n >= MinQuestions && d.converged()) {
		d.done = true
		return
	}

	if n == 1 {
		if correct {
			d.current = min(d.current+firstCorrectJump, MaxLevel)
		} else {
			d.current = max(d.current-firstIncorrectDrop, MinLevel)
		}
		return
	}

	d.current = clampLevel((d.low + d.high) / 2)
}

func (d *Diagnostic) converged() bool {
	if d.high-d.low < 2 {
		return true
	}
	return d.lastThreeSpan() <= 1
}

func (d *Diagnostic) lastThreeLevels() []int {
	n := len(d.history)
	if n < 3 {
		return nil
	}
	levels := make([]int, 0, 3)
	for _, p := range d.history[n-3:] {
		levels = append(levels, p.Level)
	}
	return levels
}

func (d *Diagnostic) lastThreeSpan() int {
	levels := d.lastThreeLevels()
	if levels == nil {
		return MaxLevel
	}
	lo, hi := levels[0], levels[0]
	for _, l := range levels[1:] {
		lo = min(lo, l)
		hi = max(hi, l)
	}
	return hi - lo
}

// Result is the placement produced by a diagnostic session.
type Result struct {
	SkillID           string
	Level             int
	Mastery           float64
	Confidence        float64
	QuestionsAnswered int
	HighestPassed     int // 0 when nothing was answered correctly
	LowestFailed      int // 0 when nothing was answered incorrectly
}

// Result derives the placement from the probes recorded so far. A
// learner who never failed saturates at the ceiling, one who never
// passed lands at the floor; otherwise the level is the midpoint of the
// highest level passed and the lowest level failed.
func (d *Diagnostic) Result() Result {
	if len(d.history) == 0 {
		return Result{
			SkillID:    d.skillID,
			Level:      StartLevel,
			Mastery:    fallbackMastery,
			Confidence: baseConfidence,
		}
	}

	hp, lf, correct := 0, 0, 0
	for _, p := range d.history {
		if p.Correct {
			correct++
			hp = max(hp, p.Level)
		} else if lf == 0 || p.Level < lf {
			lf = p.Level
		}
	}

	var level int
	switch {
	case lf == 0:
		level = MaxLevel
	case hp == 0:
		level = MinLevel
	default:
		level = (hp + lf) / 2
	}

	rate := float64(correct) / float64(len(d.history))
	conf := baseConfidence + correctRateBonus*rate
	if len(d.history) >= 4 {
		conf += coverageBonus
	}
	if d.high-d.low <= 1 {
		conf += narrowBandBonus
	}
	conf = math.Min(conf, maxConfidence)

	return Result{
		SkillID:           d.skillID,
		Level:             level,
		Mastery:           float64(level) / float64(MaxLevel),
		Confidence:        conf,
		QuestionsAnswered: len(d.history),
		HighestPassed:     hp,
		LowestFailed:      lf,
	}
}

func clampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
