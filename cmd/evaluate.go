package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brighted/nable/internal/engine"
)

// answerInput is the wire form of one answer event on stdin.
type answerInput struct {
	QuestionID       string   `json:"question_id"`
	ObjectiveID      string   `json:"objective_id,omitempty"`
	SelectedIndex    int      `json:"selected_index"`
	CorrectIndex     int      `json:"correct_index"`
	Options          []string `json:"options"`
	TimeToAnswerSecs float64  `json:"time_to_answer_secs"`
	ExpectedTimeSecs float64  `json:"expected_time_secs,omitempty"`
	SkillIDs         []string `json:"skill_ids"`
	Difficulty       float64  `json:"difficulty"`
	Applied          bool     `json:"applied,omitempty"`
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score one answer event (JSON on stdin) and persist the result",
	Long: "Reads a single answer event as JSON from stdin (or --file), folds it " +
		"into the learner's state, appends the event log, and prints the " +
		"engine response as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(cmd)
		if err != nil {
			return err
		}
		defer in.Close()

		var ans answerInput
		if err := json.NewDecoder(in).Decode(&ans); err != nil {
			return fmt.Errorf("decode answer event: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc, log, err := newService(s)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx := context.Background()
		now := time.Now().UTC()
		user := userID(cmd)

		state, err := svc.LoadState(ctx, user, now)
		if err != nil {
			return err
		}

		// The bank item backs the quality check; evaluate itself runs off
		// the request alone so ad-hoc questions still score.
		req := engine.Request{
			UserID:           user,
			QuestionID:       ans.QuestionID,
			ObjectiveID:      ans.ObjectiveID,
			SelectedIndex:    ans.SelectedIndex,
			CorrectIndex:     ans.CorrectIndex,
			Options:          ans.Options,
			TimeToAnswerSecs: ans.TimeToAnswerSecs,
			ExpectedTimeSecs: ans.ExpectedTimeSecs,
			SkillIDs:         ans.SkillIDs,
			Difficulty:       ans.Difficulty,
			Applied:          ans.Applied,
		}

		resp, next, err := svc.Evaluate(ctx, state, req, now)
		if err != nil {
			return err
		}

		if bank, bankErr := loadBank(cmd); bankErr == nil {
			if hydrated, hErr := svc.HydrateCatalogue(ctx, bank); hErr == nil {
				for _, it := range hydrated {
					if it.ID == ans.QuestionID {
						if _, _, fErr := svc.FlagItem(ctx, it, ans.TimeToAnswerSecs, next.SessionID); fErr != nil {
							log.Warn("item flag not recorded", zap.Error(fErr))
						}
						break
					}
				}
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(evaluateOutput(resp, next))
	},
}

// evaluateOutput shapes the engine response for JSON consumers.
func evaluateOutput(resp engine.Response, state engine.State) map[string]any {
	out := map[string]any{
		"correct":               resp.Correct,
		"difficulty_adjustment": resp.DifficultyAdjustment,
		"mastery_deltas":        resp.MasteryDeltas,
		"mood":                  string(resp.Mood),
		"confidence":            resp.Confidence,
		"blocked_progression":   resp.BlockedProgression,
		"micro_lesson_required": resp.MicroLessonRequired,
		"visual_aided_next":     resp.ShouldSwitchToVisualAided,
		"current_streak":        resp.CurrentStreak,
		"hearts_remaining":      resp.HeartsRemaining,
		"requires_refill":       resp.RequiresRefill,
		"phase":                 resp.Phase.String(),
		"session_id":            state.SessionID,
	}
	if resp.Classification != nil {
		out["classification"] = map[string]any{
			"type":                 string(resp.Classification.Type),
			"rule":                 resp.Classification.Rule,
			"is_partially_correct": resp.Classification.IsPartiallyCorrect,
			"conceptual_hint":      resp.Classification.ConceptualHint,
		}
	}
	if resp.MicroLesson != nil {
		out["micro_lesson"] = resp.MicroLesson
	}
	if resp.Placement != nil {
		out["placement"] = map[string]any{
			"level":              resp.Placement.Level,
			"mastery":            resp.Placement.Mastery,
			"confidence":         resp.Placement.Confidence,
			"questions_answered": resp.Placement.QuestionsAnswered,
		}
	}
	if len(resp.Warnings) > 0 {
		out["warnings"] = resp.Warnings
	}
	return out
}

func openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func init() {
	evaluateCmd.Flags().StringP("file", "f", "", "Read the answer event from a file instead of stdin")
}
