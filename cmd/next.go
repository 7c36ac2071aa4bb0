package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/ui/theme"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next prioritized questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := cmd.Flags().GetInt("count")
		if err != nil || n <= 0 {
			n = 5
		}

		questions := s.eng.NextQuestions(n)
		if len(questions) == 0 {
			fmt.Println("No questions in bank.")
			return nil
		}

		dim := lipgloss.NewStyle().Foreground(theme.TextDim)
		for i, q := range questions {
			s.eng.MarkShown(q.ID)
			fmt.Printf("%d. [%s] %s\n", i+1, q.ID,
				dim.Render(fmt.Sprintf("%s · tier %d", q.Domain, s.eng.TierFor(q.Domain))))
			fmt.Printf("   %s\n", q.Text)
			for c, choice := range q.Choices {
				fmt.Printf("     %c) %s\n", 'A'+c, choice)
			}
		}

		return s.Save(cmd.Context())
	},
}

func init() {
	nextCmd.Flags().IntP("count", "n", 5, "Number of questions")
}
