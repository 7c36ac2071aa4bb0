package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/screens/practice"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func init() {
	practiceCmd.Flags().IntP("count", "n", 10, "Questions per session")
}

// runPractice opens the store, launches the TUI and persists the outcome.
// The root command defaults here too.
func runPractice(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	count, err := cmd.Flags().GetInt("count")
	if err != nil || count <= 0 {
		count = 10
	}

	events := s.st.EventRepo()
	sink := func(a practice.Attempt) {
		err := events.AppendAttempt(ctx, store.AttemptEventData{
			Learner:    s.learner,
			Bank:       s.bank,
			SessionID:  a.SessionID,
			QuestionID: a.QuestionID,
			Domain:     a.Domain,
			Correct:    a.Correct,
			TimeMs:     int(a.Elapsed.Milliseconds()),
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "log attempt:", err)
		}
	}

	final, err := practice.Run(practice.New(s.eng, count, sink))
	if err != nil {
		return err
	}

	if final.Answered() == 0 {
		return nil
	}
	return s.Save(ctx)
}
