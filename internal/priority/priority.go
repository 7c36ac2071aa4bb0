// Package priority scores and ranks the question catalog to decide what a
// learner should see next. Scores reward weak domains, past misses and
// novelty, and brake hard on questions shown minutes ago. Ties among
// high-priority questions are broken by shuffling an oversized pool so the
// same ordering never repeats run after run.
package priority

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/catalog"
)

// Score component weights.
const (
	domainWeightFactor = 2.0
	missinessFactor    = 1.5
	noveltyFactor      = 1.0
	spacingFactor      = 0.8
	wrongBoostFactor   = 1.4

	// Flat miss-rate prior for questions never attempted.
	unattemptedMissiness = 0.35

	// Bonus for never-attempted questions.
	noveltyBonus = 1.15

	// spacingWindowMins is the horizon after which not having seen a
	// question stops earning extra credit (six hours).
	spacingWindowMins = 360.0

	// Wrong-boost shape: dead for 20 minutes after a miss, peaks at 2
	// hours, then decays with a 4 hour half-life. A miss resurfaces
	// same-day but never immediately.
	wrongDeadMins     = 20.0
	wrongPeakMins     = 120.0
	wrongHalfLifeMins = 240.0

	// Near-term anti-repeat brake, independent of the additive score.
	repeatPenaltyUnder20 = 0.03
	repeatPenaltyUnder60 = 0.35

	// In-session multipliers: a genuine re-test of a recent miss keeps
	// most of its score, anything else is suppressed.
	sessionRevisit  = 0.55
	sessionSuppress = 0.05

	// revisitAfterMins is the minimum age before a same-session miss is
	// eligible to come back.
	revisitAfterMins = 45.0
)

// Engine ranks catalog questions. The rand source must be seedable for
// deterministic tests; production wiring seeds it from the clock.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine with the given rand source. A nil rng gets a
// clock-seeded source.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Inputs carries the state slices scoring reads.
type Inputs struct {
	// Stats maps question id to attempt history. Missing ids are
	// unattempted.
	Stats map[string]*QuestionStat
	// MasteryOf returns the mastery level for a normalized domain.
	MasteryOf func(domain string) float64
	// Session is the set of question ids already shown this session.
	Session map[string]bool
	Now     time.Time
}

// Prioritize returns up to count questions, best candidates first within a
// shuffled top pool. Catalog entries without an id or domain are skipped; an
// empty catalog yields an empty list.
func (e *Engine) Prioritize(questions []catalog.Question, count int, in Inputs) []catalog.Question {
	if count <= 0 || len(questions) == 0 {
		return nil
	}

	type scored struct {
		q     catalog.Question
		score float64
	}
	candidates := make([]scored, 0, len(questions))
	for _, q := range questions {
		if !q.Valid() {
			continue
		}
		candidates = append(candidates, scored{q: q, score: e.score(q, in)})
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].q.ID < candidates[j].q.ID
	})

	poolSize := count * 4
	if poolSize < 50 {
		poolSize = 50
	}
	if poolSize > len(candidates) {
		poolSize = len(candidates)
	}
	pool := candidates[:poolSize]

	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count > len(pool) {
		count = len(pool)
	}
	out := make([]catalog.Question, count)
	for i := 0; i < count; i++ {
		out[i] = pool[i].q
	}
	return out
}

// score computes the final priority for one question.
func (e *Engine) score(q catalog.Question, in Inputs) float64 {
	var stat QuestionStat
	if s, ok := in.Stats[q.ID]; ok && s != nil {
		stat = *s
	}

	masteryLevel := 0.0
	if in.MasteryOf != nil {
		masteryLevel = in.MasteryOf(q.Domain)
	}
	domainWeight := math.Pow(1-clamp01(masteryLevel), 1.5)

	missiness := unattemptedMissiness
	novelty := noveltyBonus
	if stat.Attempts > 0 {
		missiness = 1 - stat.Accuracy()
		novelty = 0
	}

	minsSinceSeen := math.Inf(1)
	if stat.LastSeenAt != nil {
		minsSinceSeen = in.Now.Sub(*stat.LastSeenAt).Minutes()
	}
	spacingBoost := clamp01(minsSinceSeen / spacingWindowMins)

	minsSinceWrong := math.Inf(1)
	if stat.LastWrongAt != nil {
		minsSinceWrong = in.Now.Sub(*stat.LastWrongAt).Minutes()
	}
	wrongBoost := wrongBoostAt(stat.LastWrongAt != nil, minsSinceWrong)

	raw := domainWeightFactor*domainWeight +
		missinessFactor*missiness +
		noveltyFactor*novelty +
		spacingFactor*spacingBoost +
		wrongBoostFactor*wrongBoost

	if in.Session[q.ID] {
		wasMissed := stat.LastWrongAt != nil
		if wasMissed && minsSinceSeen >= revisitAfterMins && minsSinceWrong >= revisitAfterMins {
			raw *= sessionRevisit
		} else {
			raw *= sessionSuppress
		}
	}

	repeatPenalty := 1.0
	switch {
	case minsSinceSeen < wrongDeadMins:
		repeatPenalty = repeatPenaltyUnder20
	case minsSinceSeen < 60:
		repeatPenalty = repeatPenaltyUnder60
	}

	attemptsDampener := 1 / math.Sqrt(float64(stat.Attempts)+1)

	return raw * repeatPenalty * (0.75 + 0.25*attemptsDampener)
}

// wrongBoostAt shapes the miss-resurfacing curve over minutes since the miss.
func wrongBoostAt(wasMissed bool, minsSinceWrong float64) float64 {
	if !wasMissed || minsSinceWrong < wrongDeadMins {
		return 0
	}
	if minsSinceWrong <= wrongPeakMins {
		return (minsSinceWrong - wrongDeadMins) / (wrongPeakMins - wrongDeadMins)
	}
	return math.Exp(-math.Ln2 * (minsSinceWrong - wrongPeakMins) / wrongHalfLifeMins)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
