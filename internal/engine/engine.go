// Package engine coordinates the adaptive components behind one learner's
// progress through one question bank. An answer fans out into the review
// queue, mastery tracker, difficulty controller and streak calendar; batch
// and plan queries read those components back. Every operation is a
// synchronous state transform: the host loads state, calls in, and persists
// the export.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/catalog"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/difficulty"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/mastery"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/plan"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/priority"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/review"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/streak"
)

// ErrUnknownQuestion is returned when an attempt references a question id
// absent from the catalog.
var ErrUnknownQuestion = errors.New("question not in catalog")

// Engine drives the adaptive loop for one (learner, bank) pair. It assumes
// it is the sole mutator of the state it was given; the host serializes
// calls per pair.
type Engine struct {
	cat        *catalog.Catalog
	stats      map[string]*priority.QuestionStat
	mastery    *mastery.Tracker
	reviews    *review.Scheduler
	difficulty difficulty.State
	streak     streak.State
	progress   plan.Progress

	prioritizer *priority.Engine
	session     map[string]bool
	now         func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand sets a seedable random source for the prioritizer.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.prioritizer = priority.NewEngine(rng) }
}

// New builds an engine over a catalog and persisted state. The state is
// validated first; mastery records are initialized for every catalog domain
// so untouched domains read as weak rather than absent.
func New(cat *catalog.Catalog, state State, opts ...Option) (*Engine, error) {
	if err := Validate(state); err != nil {
		return nil, fmt.Errorf("load engine state: %w", err)
	}

	stats := make(map[string]*priority.QuestionStat, len(state.Stats))
	for id, s := range state.Stats {
		if s == nil {
			continue
		}
		copied := *s
		stats[id] = &copied
	}

	e := &Engine{
		cat:         cat,
		stats:       stats,
		mastery:     mastery.NewTracker(state.Mastery),
		reviews:     review.NewScheduler(state.Review),
		difficulty:  state.Difficulty,
		streak:      state.Streak,
		progress:    state.Plan,
		prioritizer: priority.NewEngine(nil),
		session:     make(map[string]bool),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.mastery.InitializeDomains(cat.Domains())
	return e, nil
}

// AttemptResult summarizes the fan-out of one recorded answer.
type AttemptResult struct {
	Domain          string
	DomainMastery   mastery.Domain
	Correct         bool
	EnqueuedReview  bool
	GraduatedReview bool
	DifficultyLevel float64
	CurrentStreak   int
}

// RecordAttempt applies one answer: per-question stats, mastery, difficulty,
// streak and the review queue all move in a single transaction's worth of
// state. The question joins the session-seen set.
func (e *Engine) RecordAttempt(questionID string, isCorrect bool) (AttemptResult, error) {
	q, ok := e.cat.Get(questionID)
	if !ok {
		return AttemptResult{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	now := e.now()

	stat := priority.QuestionStat{}
	if s, ok := e.stats[questionID]; ok && s != nil {
		stat = *s
	}
	stat = stat.RecordAttempt(isCorrect, now)
	e.stats[questionID] = &stat

	domainRecord := e.mastery.RecordAttempt(q.Domain, isCorrect, now)
	e.difficulty = difficulty.Record(e.difficulty, q.Domain, isCorrect)

	correctN := 0
	if isCorrect {
		correctN = 1
	}
	e.streak = streak.Record(e.streak, now, 1, correctN)
	e.progress = e.progress.RecordCompleted(streak.DayKey(now))

	result := AttemptResult{
		Domain:          q.Domain,
		DomainMastery:   domainRecord,
		Correct:         isCorrect,
		DifficultyLevel: e.difficulty.CurrentLevel,
		CurrentStreak:   streak.Current(e.streak, now),
	}

	if e.reviews.Tracked(questionID) {
		result.GraduatedReview = e.reviews.Record(questionID, isCorrect, now)
	} else if !isCorrect {
		result.EnqueuedReview = e.reviews.EnqueueIfMissed(questionID, now)
	}

	e.session[questionID] = true
	return result, nil
}

// MarkShown records that a question was displayed without being answered.
func (e *Engine) MarkShown(questionID string) {
	stat := priority.QuestionStat{}
	if s, ok := e.stats[questionID]; ok && s != nil {
		stat = *s
	}
	stat = stat.RecordSeen(e.now())
	e.stats[questionID] = &stat
	e.session[questionID] = true
}

// NextQuestions returns up to count questions, hardest-working candidates
// first within a shuffled top pool.
func (e *Engine) NextQuestions(count int) []catalog.Question {
	return e.prioritizer.Prioritize(e.cat.Questions, count, priority.Inputs{
		Stats:     e.stats,
		MasteryOf: e.mastery.Level,
		Session:   e.session,
		Now:       e.now(),
	})
}

// DueReviews returns the review items due now, most overdue first.
func (e *Engine) DueReviews() []review.Item {
	return e.reviews.DueItems(e.now())
}

// DailyPlan generates today's plan from current mastery and the due-review
// backlog, and refreshes the persisted plan progress.
func (e *Engine) DailyPlan(cfg plan.Config) plan.Daily {
	now := e.now()
	daily := plan.GenerateDaily(cfg, e.mastery.Levels(), e.reviews.DueCount(now), now)
	e.progress = e.progress.ApplyDaily(daily)
	if cfg.TestDate != nil {
		t := *cfg.TestDate
		e.progress.TestDate = &t
	}
	return daily
}

// TierFor returns the difficulty tier hint for a domain.
func (e *Engine) TierFor(domain string) int {
	return difficulty.TierFor(e.difficulty, domain)
}

// Summary is the display-oriented digest of the whole state.
type Summary struct {
	OverallMastery  float64
	DomainMastery   map[string]mastery.Domain
	WeakDomains     []string
	StrongDomains   []string
	DifficultyLevel float64
	DueReviews      int
	CurrentStreak   int
	BestStreak      int
	CompletedToday  int
	DailyGoal       int
}

// Summarize collects streak, mastery and difficulty figures for display.
func (e *Engine) Summarize() Summary {
	now := e.now()
	return Summary{
		OverallMastery:  e.mastery.Overall(),
		DomainMastery:   e.mastery.Domains(),
		WeakDomains:     e.mastery.WeakDomains(),
		StrongDomains:   e.mastery.StrongDomains(),
		DifficultyLevel: e.difficulty.CurrentLevel,
		DueReviews:      e.reviews.DueCount(now),
		CurrentStreak:   streak.Current(e.streak, now),
		BestStreak:      e.streak.BestStreak,
		CompletedToday:  e.progress.CompletedToday,
		DailyGoal:       e.progress.DailyGoal,
	}
}

// Export returns the full state for persistence.
func (e *Engine) Export() State {
	stats := make(map[string]*priority.QuestionStat, len(e.stats))
	for id, s := range e.stats {
		copied := *s
		stats[id] = &copied
	}
	return State{
		Version:    StateVersion,
		Stats:      stats,
		Mastery:    e.mastery.Domains(),
		Review:     e.reviews.Items(),
		Difficulty: e.difficulty,
		Streak:     e.streak,
		Plan:       e.progress,
	}
}
