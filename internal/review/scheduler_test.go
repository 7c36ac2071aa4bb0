package review

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestSchedule_CorrectLadder(t *testing.T) {
	item := NewItem("q1", t0)

	item = Schedule(item, true, t0)
	if item.Repetitions != 1 || item.IntervalDays != 1 {
		t.Fatalf("after rep 1: reps=%d interval=%d", item.Repetitions, item.IntervalDays)
	}

	item = Schedule(item, true, t0)
	if item.Repetitions != 2 || item.IntervalDays != 6 {
		t.Fatalf("after rep 2: reps=%d interval=%d", item.Repetitions, item.IntervalDays)
	}

	prev := item.IntervalDays
	item = Schedule(item, true, t0)
	if item.IntervalDays < prev {
		t.Errorf("interval shrank: %d -> %d", prev, item.IntervalDays)
	}
	want := t0.AddDate(0, 0, item.IntervalDays)
	if !item.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", item.NextReviewAt, want)
	}
}

func TestSchedule_IncorrectResets(t *testing.T) {
	item := NewItem("q1", t0)
	item = Schedule(item, true, t0)
	item = Schedule(item, true, t0)
	item = Schedule(item, false, t0)

	if item.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", item.Repetitions)
	}
	if item.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", item.IntervalDays)
	}
}

func TestSchedule_IntervalMonotonicOnceRepeating(t *testing.T) {
	item := NewItem("q1", t0)
	item = Schedule(item, true, t0)
	item = Schedule(item, true, t0)
	for i := 0; i < 10; i++ {
		prev := item.IntervalDays
		item = Schedule(item, true, t0)
		if item.IntervalDays < prev {
			t.Fatalf("step %d: interval %d < previous %d", i, item.IntervalDays, prev)
		}
	}
}

func TestSchedule_EaseFactorBounds(t *testing.T) {
	// All-wrong drives ease toward the floor, all-right toward the ceiling.
	item := NewItem("q1", t0)
	for i := 0; i < 50; i++ {
		item = Schedule(item, false, t0)
		if item.EaseFactor < MinEase || item.EaseFactor > MaxEase {
			t.Fatalf("ease %.3f out of bounds after %d misses", item.EaseFactor, i+1)
		}
	}
	if item.EaseFactor != MinEase {
		t.Errorf("ease after many misses = %.3f, want floor %.1f", item.EaseFactor, MinEase)
	}

	item = NewItem("q2", t0)
	for i := 0; i < 50; i++ {
		item = Schedule(item, true, t0)
		if item.EaseFactor < MinEase || item.EaseFactor > MaxEase {
			t.Fatalf("ease %.3f out of bounds after %d hits", item.EaseFactor, i+1)
		}
	}
}

func TestEnqueueIfMissed_NoDuplicates(t *testing.T) {
	s := NewScheduler(nil)
	if !s.EnqueueIfMissed("q1", t0) {
		t.Fatal("first enqueue should create an item")
	}
	if s.EnqueueIfMissed("q1", t0) {
		t.Error("second enqueue should be a no-op")
	}
	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	item := items["q1"]
	if item.EaseFactor != InitialEase || item.IntervalDays != 1 || item.Repetitions != 0 {
		t.Errorf("fresh item = %+v", item)
	}
	if !item.NextReviewAt.Equal(t0.AddDate(0, 0, 1)) {
		t.Errorf("NextReviewAt = %v, want tomorrow", item.NextReviewAt)
	}
}

func TestDueItems_MostOverdueFirst(t *testing.T) {
	s := NewScheduler(nil)
	s.EnqueueIfMissed("old", t0.AddDate(0, 0, -5))
	s.EnqueueIfMissed("recent", t0.AddDate(0, 0, -2))
	s.EnqueueIfMissed("future", t0)

	due := s.DueItems(t0)
	if len(due) != 2 {
		t.Fatalf("due = %d, want 2", len(due))
	}
	if due[0].QuestionID != "old" || due[1].QuestionID != "recent" {
		t.Errorf("order = %s, %s", due[0].QuestionID, due[1].QuestionID)
	}
	if s.DueCount(t0) != 2 {
		t.Errorf("DueCount = %d, want 2", s.DueCount(t0))
	}
}

func TestRecord_GraduatesExactlyOnce(t *testing.T) {
	s := NewScheduler(nil)
	s.EnqueueIfMissed("q1", t0)

	graduated := 0
	for i := 0; i < 12; i++ {
		if s.Record("q1", true, t0) {
			graduated++
		}
	}
	if graduated != 1 {
		t.Fatalf("graduated %d times, want 1", graduated)
	}
	if s.Tracked("q1") {
		t.Error("graduated item should leave the queue")
	}

	// A later miss re-enqueues fresh.
	if !s.EnqueueIfMissed("q1", t0) {
		t.Error("re-enqueue after graduation should create a new item")
	}
}

func TestRecord_UntrackedIgnored(t *testing.T) {
	s := NewScheduler(nil)
	if s.Record("q1", true, t0) {
		t.Error("recording an untracked question should be a no-op")
	}
	if len(s.Items()) != 0 {
		t.Error("no items expected")
	}
}
