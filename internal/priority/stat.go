package priority

import "time"

// QuestionStat is the per-question attempt history. Created on first
// attempt, updated on every attempt, removed only by a bulk reset.
type QuestionStat struct {
	Attempts    int        `json:"attempts"`
	Correct     int        `json:"correct"`
	LastSeenAt  *time.Time `json:"last_seen_at,omitempty"`
	LastWrongAt *time.Time `json:"last_wrong_at,omitempty"`
}

// Accuracy returns correct/attempts, 0 when never attempted.
func (s QuestionStat) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// RecordSeen returns the stat with the last-seen time updated.
func (s QuestionStat) RecordSeen(now time.Time) QuestionStat {
	t := now
	s.LastSeenAt = &t
	return s
}

// RecordAttempt returns the stat updated with one answer.
func (s QuestionStat) RecordAttempt(isCorrect bool, now time.Time) QuestionStat {
	s.Attempts++
	if isCorrect {
		s.Correct++
	} else {
		t := now
		s.LastWrongAt = &t
	}
	t := now
	s.LastSeenAt = &t
	return s
}
