package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brighted/nable/internal/app"
	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/engine"
	"github.com/brighted/nable/internal/lessons"
	"github.com/brighted/nable/internal/llm"
	"github.com/brighted/nable/internal/logging"
	"github.com/brighted/nable/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "nable",
	Short: "Adaptive learning engine for CSEC Principles of Business",
	Long: "Nable scores multiple-choice answers, tracks per-skill mastery with " +
		"spaced repetition, and recommends the next best question for each learner.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NABLE_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "Learner ID the command acts on")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON file (default: embedded sample bank)")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NABLE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database behind the command's flags.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newService builds the app service over an open store. When an LLM API
// key is discoverable, micro-lessons come from the model with the
// template composer as the synchronous fallback.
func newService(s *store.Store) (*app.Service, *zap.Logger, error) {
	log, err := logging.New()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	var composer engine.LessonComposer
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, pErr := llm.NewProvider(context.Background(), cfg, s.EventRepo())
		if pErr != nil {
			log.Warn("llm provider unavailable, using template lessons", zap.Error(pErr))
		} else {
			composer = lessons.NewAsyncComposer(
				lessons.NewService(provider, lessons.DefaultConfig()),
				lessons.NewCompressor(provider, lessons.DefaultCompressorConfig()),
			)
		}
	}

	svc := app.New(app.Config{
		Events:    s.EventRepo(),
		Snapshots: s.SnapshotRepo(),
		Logger:    log,
		Lessons:   composer,
	})
	return svc, log, nil
}

// loadBank reads the --bank file, falling back to the embedded sample bank.
func loadBank(cmd *cobra.Command) ([]content.Item, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return content.SampleBank(), nil
	}
	return content.LoadBank(path)
}

func userID(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		return "default"
	}
	return u
}
