package lessons

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are a patient, encouraging Principles of Business tutor for CSEC students. A student has just shown a misconception about a business concept and needs a short, clear lesson before their next question.`

func buildLessonUserMessage(input LessonInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Skill: %s\n", input.Skill.Name))
	b.WriteString(fmt.Sprintf("Description: %s\n", input.Skill.Description))
	b.WriteString(fmt.Sprintf("Syllabus objective: %s\n", input.Skill.ObjectiveID))
	b.WriteString(fmt.Sprintf("Student mastery estimate: %.0f%%\n", input.Mastery*100))

	b.WriteString("\nRecent errors:\n")
	if len(input.RecentErrors) == 0 {
		b.WriteString("None\n")
	} else {
		for _, e := range input.RecentErrors {
			b.WriteString(fmt.Sprintf("- %s\n", e))
		}
	}

	if input.Classification != nil {
		b.WriteString(fmt.Sprintf("\nDiagnosed issue:\nError type: %s\n", input.Classification.Type))
		if input.Classification.ConceptualHint != "" {
			b.WriteString(fmt.Sprintf("Hint shown to student: %s\n", input.Classification.ConceptualHint))
		}
	}

	b.WriteString(`
Instructions:
Create a micro-lesson that:
1. Explains the concept clearly in 3-5 sentences, in plain language a secondary-school student would understand. Address the specific misconception shown above.
2. Shows a complete worked example grounded in a small Caribbean business scenario, with numbered steps. Pick a scenario similar to (but different from) the questions the student got wrong.
3. Creates one multiple-choice practice question with exactly four options that is EASIER than the questions the student got wrong. The student should be able to answer it using the explanation and worked example above.
4. Exactly one option must be correct. Distractors must be plausible but clearly wrong once the concept is understood. Provide a brief explanation for the correct answer.
5. Use plain ASCII text. Express money as whole-dollar figures, e.g. $1,200.`)

	return b.String()
}

const compressionSystemPrompt = `You are summarizing a business-studies student's error patterns on a specific skill. Create a concise summary that captures the key patterns without losing important details.`

func buildCompressionUserMessage(errors []string) string {
	var b strings.Builder

	b.WriteString("Errors:\n")
	for _, e := range errors {
		b.WriteString(fmt.Sprintf("- %s\n", e))
	}

	b.WriteString(`
Instructions:
Summarize these errors in 2-3 sentences. Focus on:
- Which concepts the student confuses (e.g., revenue vs profit, fixed vs variable costs)
- Any patterns across multiple errors (e.g., always choosing the superficially similar option)
- What the student seems to understand vs. what they are struggling with

Keep the summary concise and factual. Do not include encouragement or advice; this summary is used internally for generating better lessons.`)

	return b.String()
}

const profileSystemPrompt = `You are creating a learner profile for an adaptive business-studies tutoring system. This profile helps personalize future practice sessions for a CSEC Principles of Business student.`

func buildProfileUserMessage(input ProfileInput) string {
	var b strings.Builder

	b.WriteString("Session results:\n")
	for skillID, result := range input.PerSkillResults {
		var pct float64
		if result.Attempted > 0 {
			pct = float64(result.Correct) / float64(result.Attempted) * 100
		}
		b.WriteString(fmt.Sprintf("- %s: %d attempted, %d correct (%.0f%%)\n", skillID, result.Attempted, result.Correct, pct))
	}

	b.WriteString("\nMastery state:\n")
	for skillID, data := range input.MasteryData {
		b.WriteString(fmt.Sprintf("- %s: mastery=%.2f, confidence=%.2f\n", skillID, data.Mastery, data.Confidence))
	}

	if len(input.ErrorHistory) > 0 {
		b.WriteString("\nError history:\n")
		for skillID, errs := range input.ErrorHistory {
			b.WriteString(fmt.Sprintf("### %s\n", skillID))
			for _, e := range errs {
				b.WriteString(fmt.Sprintf("- %s\n", e))
			}
		}
	}

	if input.PreviousProfile != nil {
		b.WriteString(fmt.Sprintf("\nPrevious profile:\n%s\n", input.PreviousProfile.Summary))
		b.WriteString(fmt.Sprintf("Strengths: %s\n", strings.Join(input.PreviousProfile.Strengths, ", ")))
		b.WriteString(fmt.Sprintf("Weaknesses: %s\n", strings.Join(input.PreviousProfile.Weaknesses, ", ")))
	}

	b.WriteString(`
Instructions:
Create a concise learner profile:
1. Write a 3-5 sentence summary of the student's current abilities, focusing on what they know well and where they need work.
2. List 2-4 specific strengths (e.g., "solid on forms of business organisation", "reads balance-sheet items accurately").
3. List 2-4 specific weaknesses (e.g., "confuses gross and net profit", "mixes up demand and supply shifts").
4. List 1-3 error patterns observed (e.g., "rushes and picks the first plausible option", "consistently misses all-of-the-above questions").

If a previous profile exists, update it with new evidence rather than starting fresh. Keep all entries concise (5-10 words each for strengths/weaknesses/patterns).`)

	return b.String()
}
