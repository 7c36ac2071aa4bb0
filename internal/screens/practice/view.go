package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/ui/components"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.quitting {
		return v
	}
	if m.done {
		v.SetContent(m.summaryView())
		return v
	}
	v.SetContent(m.questionView())
	return v
}

func (m Model) questionView() string {
	q := m.queue[m.index]

	var b strings.Builder
	header := fmt.Sprintf("Question %d of %d", m.index+1, len(m.queue))
	b.WriteString(theme.Title.Render(header) + "\n")

	meta := fmt.Sprintf("%s · tier %d · %s", q.Domain, m.eng.TierFor(q.Domain), m.watch.View())
	b.WriteString(theme.Subtitle.Render(meta) + "\n\n")

	b.WriteString(m.mc.View())

	if m.feedback != "" {
		b.WriteString("\n")
		if m.mc.IsCorrect() {
			b.WriteString(theme.Correct.Render(m.feedback))
		} else {
			b.WriteString(theme.Incorrect.Render(m.feedback))
		}
		b.WriteString("\n" + theme.Hint.Render("Enter to continue"))
	} else {
		b.WriteString("\n" + theme.Hint.Render("↑↓ select · Enter answer · q quit"))
	}

	return theme.Card.Render(b.String())
}

func (m Model) summaryView() string {
	sum := m.eng.Summarize()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete") + "\n\n")

	accuracy := 0.0
	if m.answered > 0 {
		accuracy = float64(m.correct) / float64(m.answered)
	}
	b.WriteString(fmt.Sprintf("Answered %d · Correct %d\n\n", m.answered, m.correct))

	width := m.width
	if width <= 0 || width > 60 {
		width = 60
	}
	b.WriteString(components.NewProgressBar("Accuracy", accuracy, true, width).View() + "\n")
	b.WriteString(components.NewProgressBar("Mastery ", sum.OverallMastery, true, width).View() + "\n\n")

	streakLine := fmt.Sprintf("Streak %d (best %d) · Today %d/%d · Reviews due %d",
		sum.CurrentStreak, sum.BestStreak, sum.CompletedToday, sum.DailyGoal, sum.DueReviews)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(streakLine) + "\n\n")

	b.WriteString(theme.Hint.Render("Enter to exit"))
	return theme.Card.Render(b.String())
}
