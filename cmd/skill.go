package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brighted/nable/internal/content"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the syllabus skill graph",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by strand)",
	RunE: func(cmd *cobra.Command, args []string) error {
		strand, _ := cmd.Flags().GetString("strand")

		var skills []content.Skill
		if strand != "" {
			skills = content.SkillsByStrand(content.Strand(strand))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for strand %q", strand)
			}
		} else {
			skills = content.AllSkills()
		}

		// Header.
		fmt.Printf("%-28s  %-36s  %-22s  %s\n",
			"ID", "Name", "Strand", "Objective")
		fmt.Println(strings.Repeat("─", 100))

		for _, s := range skills {
			name := s.Name
			if len(name) > 36 {
				name = name[:33] + "..."
			}
			fmt.Printf("%-28s  %-36s  %-22s  %s\n",
				s.ID, name, content.StrandDisplayName(s.Strand), s.ObjectiveID)
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show one skill with its prerequisites and dependents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := content.GetSkill(args[0])
		if err != nil {
			return err
		}

		fmt.Println(styleTitle.Render(s.Name))
		fmt.Printf("ID          %s\n", s.ID)
		fmt.Printf("Strand      %s\n", content.StrandDisplayName(s.Strand))
		fmt.Printf("Objective   %s\n", s.ObjectiveID)
		if s.Description != "" {
			fmt.Printf("\n%s\n", s.Description)
		}
		if len(s.Prerequisites) > 0 {
			fmt.Printf("\nRequires    %s\n", strings.Join(s.Prerequisites, ", "))
		}
		if deps := content.Dependents(s.ID); len(deps) > 0 {
			fmt.Printf("Unlocks     %s\n", strings.Join(deps, ", "))
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("strand", "", "Filter by strand (e.g. business-finance)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}
