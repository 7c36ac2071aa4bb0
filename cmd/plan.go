package cmd

import (
	"fmt"
	"sort"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/plan"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/store"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/ui/theme"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate today's study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		cfg := plan.Config{}
		cfg.MinutesPerDay, _ = cmd.Flags().GetInt("minutes")
		cfg.SecondsPerQuestion, _ = cmd.Flags().GetInt("seconds-per-question")

		if d, _ := cmd.Flags().GetString("test-date"); d != "" {
			testDate, err := time.ParseInLocation("2006-01-02", d, time.Local)
			if err != nil {
				return fmt.Errorf("parse --test-date: %w", err)
			}
			cfg.TestDate = &testDate
		}

		daily := s.eng.DailyPlan(cfg)

		err = s.st.EventRepo().AppendPlan(ctx, store.PlanEventData{
			Learner: s.learner,
			Bank:    s.bank,
			Daily:   daily,
		})
		if err != nil {
			return fmt.Errorf("log plan: %w", err)
		}
		if err := s.Save(ctx); err != nil {
			return err
		}

		title := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)

		fmt.Println(title.Render(fmt.Sprintf("Today's plan — %s phase", daily.Phase)))
		if daily.HasTestDate {
			fmt.Println(dim.Render(fmt.Sprintf("%d days until the exam", daily.DaysRemaining)))
		}
		fmt.Printf("%d questions total\n\n", daily.TotalDaily)

		for _, block := range daily.Blocks {
			fmt.Printf("  %-14s %d\n", block.Type, block.Count)
			if len(block.Allocation) > 0 {
				domains := make([]string, 0, len(block.Allocation))
				for d := range block.Allocation {
					domains = append(domains, d)
				}
				sort.Strings(domains)
				for _, d := range domains {
					fmt.Printf("    %-20s %d\n", d, block.Allocation[d])
				}
			}
		}
		return nil
	},
}

func init() {
	planCmd.Flags().String("test-date", "", "Exam date (YYYY-MM-DD)")
	planCmd.Flags().Int("minutes", plan.DefaultMinutesPerDay, "Study minutes per day")
	planCmd.Flags().Int("seconds-per-question", plan.DefaultSecondsPerQuestion, "Seconds budgeted per question")
}
