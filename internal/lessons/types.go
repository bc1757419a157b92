package lessons

import (
	"time"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/diagnosis"
)

// Lesson is a micro-lesson for one skill, served after a conceptual
// error before the learner sees another question on it.
type Lesson struct {
	SkillID          string
	Title            string
	Explanation      string
	WorkedExample    string
	PracticeQuestion PracticeQuestion
}

// PracticeQuestion is a mini multiple-choice check embedded in a lesson.
type PracticeQuestion struct {
	Text         string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// LessonInput holds all context needed to generate a micro-lesson.
type LessonInput struct {
	Skill          content.Skill
	Mastery        float64
	RecentErrors   []string
	Classification *diagnosis.Classification
}

// LearnerProfile is a holistic summary of the learner's patterns,
// regenerated across sessions and fed back into lesson prompts.
type LearnerProfile struct {
	Summary     string
	Strengths   []string
	Weaknesses  []string
	Patterns    []string
	GeneratedAt time.Time
}

// ProfileInput holds all context for profile generation.
type ProfileInput struct {
	PerSkillResults map[string]SkillResultSummary
	MasteryData     map[string]MasteryDataSummary
	ErrorHistory    map[string][]string
	PreviousProfile *LearnerProfile
	SessionCount    int
}

// SkillResultSummary is a simplified per-skill result for profile
// generation.
type SkillResultSummary struct {
	Attempted int
	Correct   int
}

// MasteryDataSummary is a simplified mastery state for profile
// generation.
type MasteryDataSummary struct {
	Mastery    float64
	Confidence float64
}
