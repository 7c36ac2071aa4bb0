package review

import (
	"sort"
	"time"
)

// Scheduler manages the review queue for one (learner, bank) pair.
type Scheduler struct {
	items map[string]Item
}

// NewScheduler creates a scheduler from persisted items. A nil map starts
// an empty queue.
func NewScheduler(items map[string]Item) *Scheduler {
	s := &Scheduler{items: make(map[string]Item, len(items))}
	for id, item := range items {
		if item.QuestionID == "" {
			item.QuestionID = id
		}
		s.items[id] = item
	}
	return s
}

// EnqueueIfMissed inserts review state for a missed question unless it is
// already queued. Returns true if a new item was created.
func (s *Scheduler) EnqueueIfMissed(questionID string, now time.Time) bool {
	if _, ok := s.items[questionID]; ok {
		return false
	}
	s.items[questionID] = NewItem(questionID, now)
	return true
}

// Record applies a review answer for a queued question. Questions that are
// not queued are ignored: a correct answer on a never-missed question has
// nothing to reschedule. Returns true if the item graduated and was retired.
func (s *Scheduler) Record(questionID string, wasCorrect bool, now time.Time) bool {
	item, ok := s.items[questionID]
	if !ok {
		return false
	}
	item = Schedule(item, wasCorrect, now)
	if wasCorrect && Graduated(item) {
		delete(s.items, questionID)
		return true
	}
	s.items[questionID] = item
	return false
}

// Tracked reports whether the question is in the review queue.
func (s *Scheduler) Tracked(questionID string) bool {
	_, ok := s.items[questionID]
	return ok
}

// DueItems returns every item due at now, most overdue first.
func (s *Scheduler) DueItems(now time.Time) []Item {
	var due []Item
	for _, item := range s.items {
		if item.Due(now) {
			due = append(due, item)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		oi, oj := due[i].OverdueDays(now), due[j].OverdueDays(now)
		if oi != oj {
			return oi > oj
		}
		return due[i].QuestionID < due[j].QuestionID
	})
	return due
}

// DueCount returns the number of items due at now.
func (s *Scheduler) DueCount(now time.Time) int {
	n := 0
	for _, item := range s.items {
		if item.Due(now) {
			n++
		}
	}
	return n
}

// Items exports the queue for persistence.
func (s *Scheduler) Items() map[string]Item {
	out := make(map[string]Item, len(s.items))
	for id, item := range s.items {
		out[id] = item
	}
	return out
}
