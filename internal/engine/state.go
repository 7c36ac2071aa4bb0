package engine

import (
	"fmt"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/difficulty"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/mastery"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/plan"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/priority"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/review"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/streak"
)

// StateVersion is the current persisted state format version.
const StateVersion = 1

// State is the JSON-serializable union of every record the engine owns for
// one (learner, bank) pair. The host supplies it on every call and persists
// whatever comes back; the engine itself performs no I/O.
type State struct {
	Version    int                               `json:"version"`
	Stats      map[string]*priority.QuestionStat `json:"stats,omitempty"`
	Mastery    map[string]mastery.Domain         `json:"mastery,omitempty"`
	Review     map[string]review.Item            `json:"review,omitempty"`
	Difficulty difficulty.State                  `json:"difficulty"`
	Streak     streak.State                      `json:"streak"`
	Plan       plan.Progress                     `json:"plan"`
}

// NewState returns empty engine state at the current version.
func NewState() State {
	return State{
		Version:    StateVersion,
		Difficulty: difficulty.NewState(),
	}
}

// InvalidStateError reports a state record that fails its invariants. The
// host should refuse to persist such a record and fall back to the last
// known-good state.
type InvalidStateError struct {
	Field  string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s: %s", e.Field, e.Reason)
}

// Validate checks every record's invariants.
func Validate(s State) error {
	for id, stat := range s.Stats {
		if stat == nil {
			continue
		}
		if stat.Attempts < 0 || stat.Correct < 0 || stat.Correct > stat.Attempts {
			return &InvalidStateError{
				Field:  "stats." + id,
				Reason: fmt.Sprintf("correct %d out of range for %d attempts", stat.Correct, stat.Attempts),
			}
		}
	}
	for domain, d := range s.Mastery {
		if d.MasteryLevel < 0 || d.MasteryLevel > 1 {
			return &InvalidStateError{
				Field:  "mastery." + domain,
				Reason: fmt.Sprintf("mastery level %.4f outside [0,1]", d.MasteryLevel),
			}
		}
		if d.Attempts < 0 || d.Correct < 0 || d.Correct > d.Attempts {
			return &InvalidStateError{
				Field:  "mastery." + domain,
				Reason: "attempt counters out of range",
			}
		}
	}
	for id, item := range s.Review {
		if item.EaseFactor != 0 && (item.EaseFactor < review.MinEase || item.EaseFactor > review.MaxEase) {
			return &InvalidStateError{
				Field:  "review." + id,
				Reason: fmt.Sprintf("ease factor %.2f outside [%.1f, %.1f]", item.EaseFactor, review.MinEase, review.MaxEase),
			}
		}
		if item.IntervalDays < 0 || item.Repetitions < 0 {
			return &InvalidStateError{Field: "review." + id, Reason: "negative interval or repetitions"}
		}
	}
	if lvl := s.Difficulty.CurrentLevel; lvl != 0 && (lvl < difficulty.MinLevel || lvl > difficulty.MaxLevel) {
		return &InvalidStateError{
			Field:  "difficulty",
			Reason: fmt.Sprintf("level %.1f outside [%.0f, %.0f]", lvl, difficulty.MinLevel, difficulty.MaxLevel),
		}
	}
	if s.Streak.CurrentStreak < 0 || s.Streak.BestStreak < 0 {
		return &InvalidStateError{Field: "streak", Reason: "negative streak"}
	}
	return nil
}
