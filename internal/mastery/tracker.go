package mastery

import "time"

// AnswerContext carries the per-event inputs for a mastery update.
type AnswerContext struct {
	Correct          bool
	TimeToAnswerSecs float64
	ExpectedTimeSecs float64
	// Difficulty is the question's difficulty weight on the 0-10 scale.
	Difficulty float64
	// ErrorLabel is the classifier's label for an incorrect answer
	// ("conceptual"/"careless"); empty for correct answers.
	ErrorLabel string
	// Applied marks a contextual/applied check rather than a drill.
	Applied bool
}

// Update is the result of applying one answer event to a skill score.
type Update struct {
	Score        SubSkillScore
	MasteryDelta float64
	Fluency      float64
	Expected     float64
}

// ApplyAnswer returns the updated score for one answer event. The input
// score is taken by value and never mutated; callers store the returned
// copy. Testing a skill resets its memory decay (LastTested = now).
func ApplyAnswer(s SubSkillScore, ev AnswerContext, now time.Time) Update {
	normDiff := clamp(ev.Difficulty/10.0, 0, 1)
	fluency := Fluency(ev.Correct, ev.TimeToAnswerSecs, ev.ExpectedTimeSecs)
	expected := ExpectedScore(s.Mastery, normDiff)
	delta := MasteryDelta(s.Mastery, normDiff, ev.Correct, fluency)

	preMastery := s.Mastery
	s.Mastery += delta
	s.Confidence += ConfidenceDelta(preMastery, normDiff, ev.Correct)

	if ev.Correct {
		s.StreakCount++
	} else {
		s.StreakCount = 0
		s.RecordError(ev.ErrorLabel)
	}

	// Applied checks govern the theoretical-only flag: a drilled skill
	// that fails in context is book-knowledge, not working knowledge.
	if ev.Applied {
		if ev.Correct {
			s.TheoreticalOnly = false
		} else if s.Mastery >= 0.6 {
			s.TheoreticalOnly = true
		}
	}

	s.LastTested = now
	s.Clamp()

	return Update{
		Score:        s,
		MasteryDelta: s.Mastery - preMastery,
		Fluency:      fluency,
		Expected:     expected,
	}
}
