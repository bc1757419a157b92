package content

// ContentType describes the presentation form of a catalogue item.
type ContentType string

const (
	TypeStandard    ContentType = "standard"
	TypeVisualAided ContentType = "visual-aided"
	TypeMicroLesson ContentType = "micro-lesson"
)

// Item is an immutable catalogue record supplied by the question bank.
// The engine never mutates items; quality-control counters are population
// aggregates maintained by the catalogue owner.
type Item struct {
	ID          string
	ObjectiveID string
	Text        string
	Options     []string
	// CorrectIndex is the index into Options of the correct answer.
	CorrectIndex int
	// Difficulty is the item's difficulty weight on the 0-10 scale.
	Difficulty float64
	// SkillIDs are the fine-grained skills this item exercises.
	// The first entry is the primary skill.
	SkillIDs []string
	Type     ContentType
	// DistractorSimilarity (0-1) measures how close the wrong options
	// are to the correct one. A hardness knob independent of Difficulty.
	DistractorSimilarity float64
	// ExpectedTimeSecs is the authored expected answer time.
	// Zero means unknown; quality control derives a fallback from text length.
	ExpectedTimeSecs float64
	// Prerequisites lists skill IDs the learner should hold before
	// this item is served.
	Prerequisites []string
	Verified      bool

	// Population counters. Optional; zero Attempts means no data.
	Attempts     int
	CorrectCount int
	FlagCount    int
	Archived     bool
}

// PrimarySkill returns the first tagged skill, or "" if none.
func (it *Item) PrimarySkill() string {
	if len(it.SkillIDs) == 0 {
		return ""
	}
	return it.SkillIDs[0]
}

// SuccessRate returns the observed population success rate and whether
// any population data exists.
func (it *Item) SuccessRate() (float64, bool) {
	if it.Attempts == 0 {
		return 0, false
	}
	return float64(it.CorrectCount) / float64(it.Attempts), true
}

// Catalogue supplies content items to the engine. Implementations live
// outside the core; SliceCatalogue covers tests and the CLI.
type Catalogue interface {
	// Items returns all catalogue items in stable order.
	Items() []Item
	// Item returns the item with the given ID.
	Item(id string) (Item, bool)
}

// SliceCatalogue is an in-memory Catalogue backed by a slice.
type SliceCatalogue []Item

func (c SliceCatalogue) Items() []Item {
	out := make([]Item, len(c))
	copy(out, c)
	return out
}

func (c SliceCatalogue) Item(id string) (Item, bool) {
	for _, it := range c {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
