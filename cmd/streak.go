package cmd

import (
	"fmt"
	"sort"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/ui/theme"
)

// recentDays bounds the calendar listing.
const recentDays = 14

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the study streak and recent calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		sum := s.eng.Summarize()
		state := s.eng.Export().Streak

		title := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)

		fmt.Println(title.Render(fmt.Sprintf("Streak: %d days (best %d)", sum.CurrentStreak, sum.BestStreak)))
		if state.LastStudyDate != "" {
			fmt.Println(dim.Render("Last qualifying day: " + state.LastStudyDate))
		}

		if len(state.StudyCalendar) == 0 {
			return nil
		}

		days := make([]string, 0, len(state.StudyCalendar))
		for day := range state.StudyCalendar {
			days = append(days, day)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(days)))
		if len(days) > recentDays {
			days = days[:recentDays]
		}

		fmt.Println()
		for _, day := range days {
			entry := state.StudyCalendar[day]
			fmt.Printf("  %s  %3d answered · %3d correct · %.0f%%\n",
				day, entry.QuestionsAnswered, entry.CorrectAnswered, entry.AccuracyPercent)
		}
		return nil
	},
}
