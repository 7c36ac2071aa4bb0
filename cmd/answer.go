package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/store"
)

var answerCmd = &cobra.Command{
	Use:   "answer <question-id>",
	Short: "Record an answer without the TUI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		correct, _ := cmd.Flags().GetBool("correct")
		wrong, _ := cmd.Flags().GetBool("wrong")
		if correct == wrong {
			return fmt.Errorf("pass exactly one of --correct or --wrong")
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		result, err := s.eng.RecordAttempt(args[0], correct)
		if err != nil {
			return err
		}

		timeMs, _ := cmd.Flags().GetInt("time-ms")
		err = s.st.EventRepo().AppendAttempt(ctx, store.AttemptEventData{
			Learner:    s.learner,
			Bank:       s.bank,
			QuestionID: args[0],
			Domain:     result.Domain,
			Correct:    correct,
			TimeMs:     timeMs,
		})
		if err != nil {
			return fmt.Errorf("log attempt: %w", err)
		}

		if err := s.Save(ctx); err != nil {
			return err
		}

		outcome := "wrong"
		if correct {
			outcome = "correct"
		}
		fmt.Printf("Recorded %s for %s (%s)\n", outcome, args[0], result.Domain)
		fmt.Printf("  mastery %.2f · difficulty %.1f · streak %d\n",
			result.DomainMastery.MasteryLevel, result.DifficultyLevel, result.CurrentStreak)
		if result.EnqueuedReview {
			fmt.Println("  queued for review")
		}
		if result.GraduatedReview {
			fmt.Println("  review item retired")
		}
		return nil
	},
}

func init() {
	answerCmd.Flags().Bool("correct", false, "The answer was correct")
	answerCmd.Flags().Bool("wrong", false, "The answer was wrong")
	answerCmd.Flags().Int("time-ms", 0, "Time taken in milliseconds")
}
