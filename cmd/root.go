package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "assurit",
	Short: "Adaptive certification exam trainer",
	Long:  "Assurit — terminal trainer that schedules, prioritizes and paces multiple-choice exam prep from a question bank.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func Execute() error {
	// Optional .env for ASSURIT_DB / ASSURIT_BANK overrides.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ASSURIT_DB env var)")
	rootCmd.PersistentFlags().String("learner", "default", "Learner identifier")
	rootCmd.PersistentFlags().String("bank", "default", "Question bank identifier")
	rootCmd.PersistentFlags().String("bank-file", "", "Question bank JSON file (overrides the imported bank)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ASSURIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
