// Package streak keeps calendar-based consecutive-study-day accounting.
// Day identity is a local year-month-day key, never a timestamp, so every
// update within one calendar day lands in the same bucket.
package streak

import "time"

// QualifyThreshold is how many questions a day needs before it counts
// toward the streak.
const QualifyThreshold = 10

// DayEntry accumulates one calendar day of study.
type DayEntry struct {
	QuestionsAnswered int     `json:"questions_answered"`
	CorrectAnswered   int     `json:"correct_answered"`
	AccuracyPercent   float64 `json:"accuracy_percent"`
}

// State is the persisted streak record.
type State struct {
	CurrentStreak int `json:"current_streak"`
	BestStreak    int `json:"best_streak"`

	// LastStudyDate is the day key of the most recent qualifying day.
	LastStudyDate string              `json:"last_study_date,omitempty"`
	StudyCalendar map[string]DayEntry `json:"study_calendar,omitempty"`
}

// DayKey returns the stable local calendar key for t.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Record accumulates answered questions into today's calendar entry and
// applies the streak transition rules. The streak moves only at the moment
// today first crosses the qualification threshold; recording more work on
// an already-qualified day changes the calendar but never the streak.
// Returns the new state; the input is not mutated.
func Record(s State, now time.Time, questionsAnswered, correctAnswered int) State {
	if questionsAnswered <= 0 {
		return s
	}

	today := DayKey(now)

	calendar := make(map[string]DayEntry, len(s.StudyCalendar)+1)
	for k, v := range s.StudyCalendar {
		calendar[k] = v
	}
	entry := calendar[today]
	qualifiedBefore := entry.QuestionsAnswered >= QualifyThreshold

	entry.QuestionsAnswered += questionsAnswered
	entry.CorrectAnswered += correctAnswered
	entry.AccuracyPercent = float64(entry.CorrectAnswered) / float64(entry.QuestionsAnswered) * 100
	calendar[today] = entry
	s.StudyCalendar = calendar

	if qualifiedBefore || entry.QuestionsAnswered < QualifyThreshold {
		return s
	}

	// Today just qualified.
	switch {
	case s.LastStudyDate == today:
		// Already counted (defensive: calendar says otherwise).
	case s.LastStudyDate == DayKey(now.AddDate(0, 0, -1)):
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}
	s.LastStudyDate = today
	if s.CurrentStreak > s.BestStreak {
		s.BestStreak = s.CurrentStreak
	}
	return s
}

// Current returns the streak as of now: the stored value while the chain is
// alive (last qualifying day is today or yesterday), 0 once a day has been
// skipped.
func Current(s State, now time.Time) int {
	if s.LastStudyDate == "" {
		return 0
	}
	if s.LastStudyDate == DayKey(now) || s.LastStudyDate == DayKey(now.AddDate(0, 0, -1)) {
		return s.CurrentStreak
	}
	return 0
}
