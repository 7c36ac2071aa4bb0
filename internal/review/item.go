package review

import (
	"math"
	"time"
)

const (
	// MinEase and MaxEase bound the ease factor after every update.
	MinEase = 1.3
	MaxEase = 2.8

	// InitialEase is the ease factor assigned to a freshly missed question.
	InitialEase = 2.5

	// Quality scores for the coarse two-bucket mapping. Answers are either
	// right or wrong here; the full 0-5 SM-2 scale has no home in a
	// multiple-choice bank.
	QualityCorrect   = 4
	QualityIncorrect = 2

	// Graduation thresholds. A question leaves the review queue once it has
	// been recalled this many times in a row at a healthy ease factor.
	GraduationReps = 6
	GraduationEase = 2.5
)

// Item is the spaced-repetition state for a single missed question.
type Item struct {
	QuestionID   string    `json:"question_id"`
	NextReviewAt time.Time `json:"next_review_at"`
	IntervalDays int       `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
	EaseFactor   float64   `json:"ease_factor"`
}

// NewItem creates the review state for a question missed at now.
// First review lands tomorrow.
func NewItem(questionID string, now time.Time) Item {
	return Item{
		QuestionID:   questionID,
		NextReviewAt: now.AddDate(0, 0, 1),
		IntervalDays: 1,
		Repetitions:  0,
		EaseFactor:   InitialEase,
	}
}

// Schedule applies one SM-2 update and returns the new item state.
// It never mutates its input.
func Schedule(item Item, wasCorrect bool, now time.Time) Item {
	quality := QualityIncorrect
	if wasCorrect {
		quality = QualityCorrect
	}

	q := float64(quality)
	ease := item.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	item.EaseFactor = clampEase(ease)

	if quality < 3 {
		// Treat as a fresh miss.
		item.Repetitions = 0
		item.IntervalDays = 1
	} else {
		item.Repetitions++
		switch item.Repetitions {
		case 1:
			item.IntervalDays = 1
		case 2:
			item.IntervalDays = 6
		default:
			item.IntervalDays = int(math.Round(float64(item.IntervalDays) * item.EaseFactor))
		}
	}

	item.NextReviewAt = now.AddDate(0, 0, item.IntervalDays)
	return item
}

// Graduated reports whether the item has earned its way out of the queue.
func Graduated(item Item) bool {
	return item.Repetitions >= GraduationReps && item.EaseFactor >= GraduationEase
}

// Due reports whether the item is due at now.
func (i Item) Due(now time.Time) bool {
	return !i.NextReviewAt.After(now)
}

// OverdueDays returns how many days past due the item is, 0 if not yet due.
func (i Item) OverdueDays(now time.Time) float64 {
	if !i.Due(now) {
		return 0
	}
	return now.Sub(i.NextReviewAt).Hours() / 24.0
}

func clampEase(ease float64) float64 {
	if ease < MinEase {
		return MinEase
	}
	if ease > MaxEase {
		return MaxEase
	}
	return ease
}
