package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a learner back to the placement diagnostic",
	Long: "Deletes the learner's state snapshots so the next session starts from " +
		"the cold-start diagnostic. The event history is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := userID(cmd)
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Printf("Reset learner %q back to placement? [y/N] ", user)
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read confirmation: %w", err)
			}
			if !strings.EqualFold(strings.TrimSpace(line), "y") {
				fmt.Println("Aborted.")
				return nil
			}
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

		if err := svc.ResetLearner(context.Background(), user); err != nil {
			return err
		}
		fmt.Printf("Learner %q reset. Run `nable place` to start over.\n", user)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
