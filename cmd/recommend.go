package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/engine"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Pick the next best question for the learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")

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

		catalogue, err := svc.HydrateCatalogue(ctx, bank)
		if err != nil {
			return err
		}

		state, err := svc.LoadState(ctx, userID(cmd), now)
		if err != nil {
			return err
		}

		rec := svc.Engine().Recommend(state, catalogue, exclude, now)

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		}

		if rec.Question == nil {
			fmt.Println("No eligible questions left in the bank.")
			return nil
		}

		printQuestionCard(*rec.Question, state, rec.RefreshFirst)

		if len(rec.RefreshQueue) > 0 {
			fmt.Println()
			fmt.Println(styleTitle.Render("Due for review"))
			for _, c := range rec.RefreshQueue {
				fmt.Printf("  %-28s  recall %s  %s\n",
					c.SkillID, percent(c.Recall), styleDim.Render(c.Urgency.String()))
			}
		}
		return nil
	},
}

func printQuestionCard(it content.Item, state engine.State, refresh bool) {
	var b strings.Builder

	header := it.ID
	if refresh {
		header += "  " + styleWarn.Render("(review)")
	}
	if state.Phase == engine.PhaseColdStart {
		header += "  " + styleDim.Render("(placement probe)")
	}
	b.WriteString(styleTitle.Render(header) + "\n\n")
	b.WriteString(it.Text + "\n\n")

	for i, opt := range it.Options {
		b.WriteString(fmt.Sprintf("  %c) %s\n", 'A'+i, opt))
	}

	b.WriteString("\n" + styleDim.Render(fmt.Sprintf(
		"difficulty %.1f · %s · %s", it.Difficulty, it.Type, it.ObjectiveID)))

	fmt.Println(styleCard.Render(b.String()))
}

func init() {
	recommendCmd.Flags().Bool("json", false, "Print the recommendation as JSON")
	recommendCmd.Flags().StringSlice("exclude", nil, "Question IDs to exclude")
}
