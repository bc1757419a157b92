package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// bankItem is the wire form of an Item in a question bank file.
type bankItem struct {
	ID                   string   `json:"id"`
	ObjectiveID          string   `json:"objective_id"`
	Text                 string   `json:"text"`
	Options              []string `json:"options"`
	CorrectIndex         int      `json:"correct_index"`
	Difficulty           float64  `json:"difficulty"`
	SkillIDs             []string `json:"skill_ids"`
	Type                 string   `json:"type,omitempty"`
	DistractorSimilarity float64  `json:"distractor_similarity,omitempty"`
	ExpectedTimeSecs     float64  `json:"expected_time_secs,omitempty"`
	Prerequisites        []string `json:"prerequisites,omitempty"`
	Verified             bool     `json:"verified,omitempty"`
}

// ReadBank decodes a question bank from r and validates every item.
func ReadBank(r io.Reader) ([]Item, error) {
	var raw []bankItem
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	items := make([]Item, 0, len(raw))
	for i, b := range raw {
		it, err := b.toItem()
		if err != nil {
			return nil, fmt.Errorf("bank item %d (%s): %w", i, b.ID, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// LoadBank reads a question bank file.
func LoadBank(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank: %w", err)
	}
	defer f.Close()
	return ReadBank(f)
}

func (b bankItem) toItem() (Item, error) {
	if b.ID == "" {
		return Item{}, fmt.Errorf("missing id")
	}
	if len(b.Options) < 2 {
		return Item{}, fmt.Errorf("needs at least 2 options, got %d", len(b.Options))
	}
	if b.CorrectIndex < 0 || b.CorrectIndex >= len(b.Options) {
		return Item{}, fmt.Errorf("correct_index %d out of range", b.CorrectIndex)
	}
	if len(b.SkillIDs) == 0 {
		return Item{}, fmt.Errorf("missing skill_ids")
	}
	for _, id := range b.SkillIDs {
		if !KnownSkill(id) {
			return Item{}, fmt.Errorf("unknown skill %q", id)
		}
	}

	ct := ContentType(b.Type)
	switch ct {
	case "":
		ct = TypeStandard
	case TypeStandard, TypeVisualAided, TypeMicroLesson:
	default:
		return Item{}, fmt.Errorf("unknown type %q", b.Type)
	}

	return Item{
		ID:                   b.ID,
		ObjectiveID:          b.ObjectiveID,
		Text:                 b.Text,
		Options:              b.Options,
		CorrectIndex:         b.CorrectIndex,
		Difficulty:           b.Difficulty,
		SkillIDs:             b.SkillIDs,
		Type:                 ct,
		DistractorSimilarity: b.DistractorSimilarity,
		ExpectedTimeSecs:     b.ExpectedTimeSecs,
		Prerequisites:        b.Prerequisites,
		Verified:             b.Verified,
	}, nil
}

//go:embed bank.json
var sampleBankJSON []byte

// SampleBank returns the embedded starter bank, used when no bank file
// is configured.
func SampleBank() []Item {
	items, err := ReadBank(bytes.NewReader(sampleBankJSON))
	if err != nil {
		// The embedded bank is validated by tests; a decode failure here
		// is a build defect.
		panic(fmt.Sprintf("content: embedded bank invalid: %v", err))
	}
	return items
}
