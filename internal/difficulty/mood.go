package difficulty

// Mood is the presentation register the UI should adopt for the next
// interaction.
type Mood string

const (
	MoodCelebratory Mood = "celebratory"
	MoodChallenging Mood = "challenging"
	MoodSupportive  Mood = "supportive"
	MoodEncouraging Mood = "encouraging"
)

const (
	celebrateStreak  = 5
	challengeStreak  = 2
	supportErrorRun  = 2
	supportConfFloor = 0.4
)

// MoodFor picks the register from the learner's current run. Celebration
// beats challenge, and any sign of struggle drops straight to support.
func MoodFor(confidence float64, streak, consecutiveErrors int, masteryDeclining bool) Mood {
	switch {
	case streak >= celebrateStreak:
		return MoodCelebratory
	case consecutiveErrors >= supportErrorRun || confidence < supportConfFloor:
		return MoodSupportive
	case confidence > AdvanceConfidence && streak >= challengeStreak && !masteryDeclining:
		return MoodChallenging
	default:
		return MoodEncouraging
	}
}
