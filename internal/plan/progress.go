package plan

import "time"

// Progress is the persisted study-plan record: the target date, the daily
// goal derived from it, and running completion counters.
type Progress struct {
	TestDate              *time.Time `json:"test_date,omitempty"`
	DailyGoal             int        `json:"daily_goal"`
	TargetQuestionsPerDay int        `json:"target_questions_per_day"`
	CompletedToday        int        `json:"completed_today"`
	TotalQuestionsNeeded  int        `json:"total_questions_needed"`
	QuestionsCompleted    int        `json:"questions_completed"`

	// LastActivityDay is the calendar day CompletedToday refers to.
	LastActivityDay string `json:"last_activity_day,omitempty"`
}

// RecordCompleted counts one answered question toward the running totals,
// rolling CompletedToday over when the calendar day changes.
func (p Progress) RecordCompleted(dayKey string) Progress {
	if p.LastActivityDay != dayKey {
		p.CompletedToday = 0
		p.LastActivityDay = dayKey
	}
	p.CompletedToday++
	p.QuestionsCompleted++
	return p
}

// ApplyDaily refreshes goal fields from a generated daily plan.
func (p Progress) ApplyDaily(d Daily) Progress {
	p.DailyGoal = d.TotalDaily
	p.TargetQuestionsPerDay = d.TotalDaily
	if d.HasTestDate {
		p.TotalQuestionsNeeded = d.TotalDaily * maxInt(d.DaysRemaining, 1)
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
