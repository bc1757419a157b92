package lessons

import (
	"fmt"
	"strings"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/diagnosis"
	"github.com/brighted/nable/internal/mastery"
)

// TemplateComposer builds a micro-lesson from the skill registry without
// calling a model. The engine uses it inline after a conceptual error;
// LLM-generated lessons replace the template when one is ready.
type TemplateComposer struct{}

// Compose returns a template lesson for the skill, or false when the
// skill is unknown to the registry. The score is unused; the template
// reads the same at every mastery level.
func (TemplateComposer) Compose(skillID string, _ mastery.SubSkillScore, cls *diagnosis.Classification) (Lesson, bool) {
	skill, err := content.GetSkill(skillID)
	if err != nil {
		return Lesson{}, false
	}

	var b strings.Builder
	b.WriteString(skill.Description)
	if cls != nil && cls.ConceptualHint != "" {
		b.WriteString("\n\nWatch out: ")
		b.WriteString(cls.ConceptualHint)
	}
	if len(skill.Keywords) > 0 {
		b.WriteString("\n\nKey terms: ")
		b.WriteString(strings.Join(skill.Keywords, ", "))
	}

	return Lesson{
		SkillID:     skill.ID,
		Title:       fmt.Sprintf("Revisiting %s", skill.Name),
		Explanation: b.String(),
		WorkedExample: fmt.Sprintf(
			"Re-read the definition above, then restate %s in your own words before answering the check question.",
			strings.ToLower(skill.Name)),
		PracticeQuestion: PracticeQuestion{
			Text: fmt.Sprintf("Which strand of the syllabus does %s belong to?", skill.Name),
			Options: []string{
				content.StrandDisplayName(skill.Strand),
				"None of the above",
			},
			CorrectIndex: 0,
			Explanation: fmt.Sprintf("%s is part of %s.",
				skill.Name, content.StrandDisplayName(skill.Strand)),
		},
	}, true
}
