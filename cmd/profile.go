package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brighted/nable/internal/lessons"
	"github.com/brighted/nable/internal/llm"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Generate a learner profile with the configured model",
	Long: "Folds the learner's answer log and mastery state into a model-written " +
		"profile: a summary plus concrete strengths, weaknesses, and error " +
		"patterns. Requires an LLM API key in the environment.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no model API key configured; set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, or OPENROUTER_API_KEY")
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
		user := userID(cmd)

		state, err := svc.LoadState(ctx, user, time.Now().UTC())
		if err != nil {
			return err
		}
		if len(state.Graph) == 0 {
			fmt.Println(styleDim.Render("No answers recorded yet. Run `nable place` first."))
			return nil
		}

		results, err := s.EventRepo().UserSkillResults(ctx, user)
		if err != nil {
			return fmt.Errorf("load skill results: %w", err)
		}

		input := lessons.ProfileInput{
			PerSkillResults: make(map[string]lessons.SkillResultSummary, len(results)),
			MasteryData:     make(map[string]lessons.MasteryDataSummary, len(state.Graph)),
			ErrorHistory:    make(map[string][]string),
		}
		for id, res := range results {
			input.PerSkillResults[id] = lessons.SkillResultSummary{
				Attempted: res.Attempted,
				Correct:   res.Correct,
			}
		}
		for id, score := range state.Graph {
			input.MasteryData[id] = lessons.MasteryDataSummary{
				Mastery:    score.Mastery,
				Confidence: score.Confidence,
			}
			if len(score.ErrorHistory) > 0 {
				input.ErrorHistory[id] = score.ErrorHistory
			}
		}

		provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}
		comp := lessons.NewCompressor(provider, lessons.DefaultCompressorConfig())

		genCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		defer cancel()
		profile, err := comp.GenerateProfile(genCtx, input)
		if err != nil {
			return fmt.Errorf("generate profile: %w", err)
		}

		printProfile(user, profile)
		return nil
	},
}

func printProfile(user string, p *lessons.LearnerProfile) {
	fmt.Println(styleTitle.Render("Learner " + user))
	fmt.Println(p.Summary)

	sections := []struct {
		title string
		items []string
	}{
		{"Strengths", p.Strengths},
		{"Weaknesses", p.Weaknesses},
		{"Error patterns", p.Patterns},
	}
	for _, sec := range sections {
		if len(sec.items) == 0 {
			continue
		}
		fmt.Println()
		fmt.Println(styleTitle.Render(sec.title))
		for _, it := range sec.items {
			fmt.Println("  · " + it)
		}
	}
}
