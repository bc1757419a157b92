package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/brighted/nable/internal/engine"
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Run the interactive placement diagnostic for a new learner",
	Long: "Walks a new learner through the cold-start diagnostic: a short run of " +
		"placement probes that binary-searches the right difficulty and seeds " +
		"the skill graph before normal practice begins.",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		now := time.Now().UTC()
		user := userID(cmd)

		catalogue, err := svc.HydrateCatalogue(ctx, bank)
		if err != nil {
			return err
		}

		state, err := svc.LoadState(ctx, user, now)
		if err != nil {
			return err
		}
		if state.Phase != engine.PhaseColdStart {
			fmt.Printf("Learner %q is already placed (phase: %s). Use `nable reset` to start over.\n",
				user, state.Phase)
			return nil
		}

		if err := svc.StartSession(ctx, state); err != nil {
			return err
		}

		fmt.Println(styleTitle.Render("Placement diagnostic"))
		fmt.Println(styleDim.Render("Answer a few questions so we can find your level. Ctrl+C to quit."))
		fmt.Println()

		in := bufio.NewReader(os.Stdin)
		correct := 0

		for {
			now = time.Now().UTC()
			rec := svc.Engine().Recommend(state, catalogue, state.Seen, now)
			if rec.Question == nil {
				fmt.Println("The question bank ran out before placement finished.")
				break
			}
			it := *rec.Question

			printQuestionCard(it, state, false)

			choice, elapsed, err := promptChoice(in, len(it.Options))
			if err != nil {
				return err
			}

			resp, next, err := svc.Evaluate(ctx, state, engine.Request{
				UserID:           user,
				QuestionID:       it.ID,
				ObjectiveID:      it.ObjectiveID,
				SelectedIndex:    choice,
				CorrectIndex:     it.CorrectIndex,
				Options:          it.Options,
				TimeToAnswerSecs: elapsed.Seconds(),
				ExpectedTimeSecs: it.ExpectedTimeSecs,
				SkillIDs:         it.SkillIDs,
				Difficulty:       it.Difficulty,
			}, time.Now().UTC())
			if err != nil {
				return err
			}
			state = next

			if resp.Correct {
				correct++
				fmt.Println(styleGood.Render("Correct."))
			} else {
				fmt.Println(styleBad.Render(fmt.Sprintf("Not quite. The answer was %c).", 'A'+it.CorrectIndex)))
			}
			fmt.Println()

			if resp.Placement != nil {
				printPlacementSummary(*resp.Placement, state)
				break
			}
		}

		return svc.EndSession(ctx, state, correct, time.Now().UTC())
	},
}

// promptChoice reads one answer letter from the reader and times how long
// the learner took. It re-prompts on anything outside A..<n>.
func promptChoice(in *bufio.Reader, numOptions int) (int, time.Duration, error) {
	start := time.Now()
	for {
		fmt.Printf("Your answer (A-%c): ", 'A'+numOptions-1)
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, 0, fmt.Errorf("read answer: %w", err)
		}
		line = strings.ToUpper(strings.TrimSpace(line))
		if len(line) == 1 && line[0] >= 'A' && int(line[0]-'A') < numOptions {
			return int(line[0] - 'A'), time.Since(start), nil
		}
		fmt.Println(styleDim.Render("Type a single letter for your answer."))
	}
}

func printPlacementSummary(p engine.PlacementSummary, state engine.State) {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Placement complete") + "\n\n")
	b.WriteString(fmt.Sprintf("Level       %d of 10\n", p.Level))
	b.WriteString(fmt.Sprintf("Mastery     %s %s\n", masteryBar(p.Mastery), percent(p.Mastery)))
	b.WriteString(fmt.Sprintf("Confidence  %s\n", percent(p.Confidence)))
	b.WriteString(fmt.Sprintf("Questions   %d\n", p.QuestionsAnswered))
	if len(state.ProbedSkills) > 0 {
		b.WriteString("\n" + styleDim.Render("Probed: "+strings.Join(state.ProbedSkills, ", ")))
	}
	fmt.Println(styleCard.Render(b.String()))
}
