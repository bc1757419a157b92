package lessons

import (
	"context"
	"fmt"
	"sync"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/diagnosis"
	"github.com/brighted/nable/internal/mastery"
)

// AsyncComposer serves model-generated lessons without ever blocking an
// answer evaluation. Compose hands back a generated lesson when one is
// ready; otherwise it kicks off generation in the background and serves
// the template lesson this time. Error notes accumulate per skill and
// feed the generation prompt; once they outgrow the compression
// threshold the compressor folds them into a single summary.
type AsyncComposer struct {
	svc      *Service
	comp     *Compressor
	fallback TemplateComposer

	mu    sync.Mutex
	notes map[string][]string
}

// NewAsyncComposer wraps a generation service. The compressor is
// optional; without one, error notes are passed to prompts uncompressed.
func NewAsyncComposer(svc *Service, comp *Compressor) *AsyncComposer {
	return &AsyncComposer{svc: svc, comp: comp, notes: make(map[string][]string)}
}

func (c *AsyncComposer) Compose(skillID string, score mastery.SubSkillScore, cls *diagnosis.Classification) (Lesson, bool) {
	recent := c.recordError(skillID, cls)
	if len(recent) == 0 {
		recent = score.ErrorHistory
	}

	if lesson, ok := c.svc.ConsumeLesson(); ok && lesson.SkillID == skillID {
		return *lesson, true
	}

	if skill, err := content.GetSkill(skillID); err == nil {
		c.svc.RequestLesson(context.Background(), LessonInput{
			Skill:          skill,
			Mastery:        score.Mastery,
			RecentErrors:   recent,
			Classification: cls,
		})
	}

	return c.fallback.Compose(skillID, score, cls)
}

// recordError turns a classification into a prompt-ready note and
// returns the skill's notes including it. When the notes exceed
// SessionCompressionThreshold characters they are handed to the
// compressor; the summary replaces them once it lands.
func (c *AsyncComposer) recordError(skillID string, cls *diagnosis.Classification) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cls != nil {
		note := fmt.Sprintf("%s error (%s rule)", cls.Type, cls.Rule)
		if cls.ConceptualHint != "" {
			note += ": " + cls.ConceptualHint
		}
		c.notes[skillID] = append(c.notes[skillID], note)
	}

	recent := append([]string(nil), c.notes[skillID]...)

	if c.comp != nil && notesLength(recent) > SessionCompressionThreshold {
		// Clear the raw notes now so a slow compression cannot be
		// kicked off twice for the same batch.
		c.notes[skillID] = nil
		c.comp.CompressErrors(context.Background(), skillID, recent, func(id, summary string) {
			c.mu.Lock()
			c.notes[id] = append([]string{summary}, c.notes[id]...)
			c.mu.Unlock()
		})
	}

	return recent
}

func notesLength(notes []string) int {
	n := 0
	for _, s := range notes {
		n += len(s) + 1
	}
	return n
}
