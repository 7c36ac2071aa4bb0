package cmd

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/ui/components"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery and difficulty statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		sum := s.eng.Summarize()
		title := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)

		fmt.Println(title.Render(fmt.Sprintf("Stats — %s / %s", s.learner, s.bank)))
		fmt.Println(components.NewProgressBar("Overall mastery", sum.OverallMastery, true, 50).View())
		fmt.Println()

		domains := make([]string, 0, len(sum.DomainMastery))
		for d := range sum.DomainMastery {
			domains = append(domains, d)
		}
		sort.Strings(domains)
		for _, d := range domains {
			rec := sum.DomainMastery[d]
			bar := components.NewProgressBar(fmt.Sprintf("%-22s", d), rec.MasteryLevel, true, 60)
			fmt.Printf("%s %s\n", bar.View(), dim.Render(fmt.Sprintf("(%d attempts)", rec.Attempts)))
		}

		fmt.Println()
		if len(sum.WeakDomains) > 0 {
			fmt.Println(theme.Incorrect.Render("Weak: ") + strings.Join(sum.WeakDomains, ", "))
		}
		if len(sum.StrongDomains) > 0 {
			fmt.Println(theme.Correct.Render("Strong: ") + strings.Join(sum.StrongDomains, ", "))
		}
		fmt.Printf("Difficulty level %.1f · %d reviews due · today %d/%d\n",
			sum.DifficultyLevel, sum.DueReviews, sum.CompletedToday, sum.DailyGoal)
		return nil
	},
}
