package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/diagnosis"
	"github.com/brighted/nable/internal/mastery"
	"github.com/brighted/nable/internal/quality"
	"github.com/brighted/nable/internal/spacedrep"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the learner's mastery profile and question bank health",
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

		ctx := context.Background()
		now := time.Now().UTC()
		user := userID(cmd)

		state, err := svc.LoadState(ctx, user, now)
		if err != nil {
			return err
		}

		fmt.Println(styleTitle.Render("Learner " + user))
		fmt.Printf("Phase %s  ·  streak %d  ·  hearts %d\n\n",
			state.Phase, state.Streak, state.Hearts)

		if len(state.Graph) == 0 {
			fmt.Println(styleDim.Render("No skills tracked yet. Run `nable place` to get started."))
		} else {
			printMasteryTable(state.Graph, now)
		}

		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}
		catalogue, err := svc.HydrateCatalogue(ctx, bank)
		if err != nil {
			return err
		}

		fmt.Println()
		printBankHealth(catalogue)
		return nil
	},
}

func printMasteryTable(graph mastery.KnowledgeGraph, now time.Time) {
	ids := make([]string, 0, len(graph))
	for id := range graph {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println(styleTitle.Render("Mastery"))
	for _, id := range ids {
		score := graph[id]

		name := id
		if sk, err := content.GetSkill(id); err == nil {
			name = sk.Name
		}

		var notes []string
		if score.TheoreticalOnly {
			notes = append(notes, styleWarn.Render("theory only"))
		}
		if pa := diagnosis.AnalyzeErrorPatterns(score.ErrorHistory); pa.RecommendRemediation {
			notes = append(notes, styleBad.Render("needs reteaching"))
		} else if pa.Trend == diagnosis.TrendDeclining {
			notes = append(notes, styleWarn.Render("errors worsening"))
		}
		elapsed := now.Sub(score.LastTested).Hours() / 24
		if !score.LastTested.IsZero() && spacedrep.NeedsRefresh(elapsed, score.HalfLife) {
			notes = append(notes, styleDim.Render("due for review"))
		}

		line := fmt.Sprintf("  %-28s %s %s", name, masteryBar(score.Mastery), percent(score.Mastery))
		for _, n := range notes {
			line += "  " + n
		}
		fmt.Println(line)
	}
}

func printBankHealth(items []content.Item) {
	var flagged, archived int
	var lines []string
	for _, it := range items {
		if it.Archived {
			archived++
			continue
		}
		reason, bad := quality.CheckPopulation(it)
		if !bad && it.FlagCount == 0 {
			continue
		}
		flagged++
		note := fmt.Sprintf("%d flags", it.FlagCount)
		if bad {
			note = string(reason) + ", " + note
		}
		lines = append(lines, fmt.Sprintf("  %-12s %s", it.ID, styleWarn.Render(note)))
	}

	fmt.Println(styleTitle.Render("Question bank"))
	fmt.Printf("%d items  ·  %d flagged  ·  %d archived\n", len(items), flagged, archived)
	for _, l := range lines {
		fmt.Println(l)
	}
	if flagged == 0 && archived == 0 {
		fmt.Println(styleDim.Render("All items healthy."))
	}
}
