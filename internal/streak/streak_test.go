package streak

import (
	"testing"
	"time"
)

var day1 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func qualify(s State, at time.Time) State {
	return Record(s, at, QualifyThreshold, QualifyThreshold/2)
}

func TestRecord_FirstQualifyingDay(t *testing.T) {
	s := qualify(State{}, day1)
	if s.CurrentStreak != 1 || s.BestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", s.CurrentStreak, s.BestStreak)
	}
	if s.LastStudyDate != "2026-03-01" {
		t.Errorf("LastStudyDate = %q", s.LastStudyDate)
	}
}

func TestRecord_BelowThresholdDoesNotCount(t *testing.T) {
	s := Record(State{}, day1, 4, 2)
	if s.CurrentStreak != 0 {
		t.Errorf("streak = %d, want 0 below threshold", s.CurrentStreak)
	}
	if s.StudyCalendar["2026-03-01"].QuestionsAnswered != 4 {
		t.Error("calendar entry missing")
	}
}

func TestRecord_SameDayIdempotent(t *testing.T) {
	// Recording a qualifying batch twice on the same day increments the
	// streak exactly once.
	s := qualify(State{}, day1)
	s = qualify(s, day1.Add(2*time.Hour))
	if s.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 after double qualify", s.CurrentStreak)
	}
	if got := s.StudyCalendar["2026-03-01"].QuestionsAnswered; got != 2*QualifyThreshold {
		t.Errorf("calendar questions = %d, want %d", got, 2*QualifyThreshold)
	}
}

func TestRecord_CrossingThresholdMidDay(t *testing.T) {
	s := Record(State{}, day1, 6, 5)
	if s.CurrentStreak != 0 {
		t.Fatalf("streak = %d before threshold", s.CurrentStreak)
	}
	s = Record(s, day1.Add(time.Hour), 6, 4)
	if s.CurrentStreak != 1 {
		t.Errorf("streak = %d after crossing threshold, want 1", s.CurrentStreak)
	}
	// More answers after qualifying leave the streak alone.
	s = Record(s, day1.Add(2*time.Hour), 20, 10)
	if s.CurrentStreak != 1 {
		t.Errorf("streak = %d after extra work, want 1", s.CurrentStreak)
	}
}

func TestRecord_ConsecutiveDaysExtend(t *testing.T) {
	s := qualify(State{}, day1)
	s = qualify(s, day1.AddDate(0, 0, 1))
	s = qualify(s, day1.AddDate(0, 0, 2))
	if s.CurrentStreak != 3 || s.BestStreak != 3 {
		t.Errorf("streak = %d/%d, want 3/3", s.CurrentStreak, s.BestStreak)
	}
}

func TestRecord_GapResetsToOne(t *testing.T) {
	s := qualify(State{}, day1)
	s = qualify(s, day1.AddDate(0, 0, 1))
	s = qualify(s, day1.AddDate(0, 0, 5))
	if s.CurrentStreak != 1 {
		t.Errorf("streak = %d after gap, want 1", s.CurrentStreak)
	}
	if s.BestStreak != 2 {
		t.Errorf("best = %d, want 2 (never decreases)", s.BestStreak)
	}
}

func TestRecord_AccuracyPercent(t *testing.T) {
	s := Record(State{}, day1, 8, 6)
	s = Record(s, day1, 2, 2)
	entry := s.StudyCalendar["2026-03-01"]
	if entry.AccuracyPercent != 80 {
		t.Errorf("accuracy = %.1f, want 80", entry.AccuracyPercent)
	}
}

func TestRecord_DoesNotMutateInput(t *testing.T) {
	s := Record(State{}, day1, 4, 2)
	_ = Record(s, day1, 4, 2)
	if s.StudyCalendar["2026-03-01"].QuestionsAnswered != 4 {
		t.Error("Record mutated its input calendar")
	}
}

func TestCurrent_ChainLiveness(t *testing.T) {
	s := qualify(State{}, day1)
	if Current(s, day1) != 1 {
		t.Error("same day should report the stored streak")
	}
	if Current(s, day1.AddDate(0, 0, 1)) != 1 {
		t.Error("next day should still report the streak (pending)")
	}
	if Current(s, day1.AddDate(0, 0, 2)) != 0 {
		t.Error("a skipped day breaks the visible streak")
	}
	if Current(State{}, day1) != 0 {
		t.Error("empty state should report 0")
	}
}
