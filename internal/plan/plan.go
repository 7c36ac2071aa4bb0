// Package plan turns a target exam date and current mastery into a daily
// question budget split across review, weak-domain and mixed buckets.
package plan

import (
	"math"
	"sort"
	"time"
)

// Phase is the study-plan time horizon bucket. The phase shifts the
// weak/mixed/review mix as the exam approaches.
type Phase string

const (
	PhaseCoverage      Phase = "coverage"
	PhasePressure      Phase = "pressure"
	PhaseExamReadiness Phase = "exam_readiness"
)

// Block types in the ordered execution plan.
const (
	BlockReview = "review"
	BlockWeak   = "weak_domains"
	BlockMixed  = "mixed"
)

const (
	// MinDailyQuestions is the floor for any daily budget.
	MinDailyQuestions = 5

	// Defaults used when the host supplies no study-time configuration.
	DefaultMinutesPerDay      = 20
	DefaultSecondsPerQuestion = 90

	// weakExponent steepens the pull toward the weakest domains.
	weakExponent = 1.6

	// maxDomainShare caps any single domain at half the daily budget.
	maxDomainShare = 0.5
)

// Mix is the fraction of the daily budget per bucket. Fractions sum to 1.
type Mix struct {
	Weak   float64
	Mixed  float64
	Review float64
}

// Block is one step of the ordered execution plan.
type Block struct {
	Type       string         `json:"type"`
	Count      int            `json:"count"`
	Allocation map[string]int `json:"allocation,omitempty"`
}

// Daily is a generated plan for one study day.
type Daily struct {
	Phase         Phase   `json:"phase"`
	DaysRemaining int     `json:"days_remaining"`
	HasTestDate   bool    `json:"has_test_date"`
	TotalDaily    int     `json:"total_daily"`
	Blocks        []Block `json:"blocks"`
}

// Config is the host-supplied study-time configuration.
type Config struct {
	TestDate           *time.Time
	MinutesPerDay      int
	SecondsPerQuestion int
}

// DaysUntil returns the whole days between now and the test date, floored
// at 0. Both ends are taken at local midnight so partial days don't wobble
// the phase.
func DaysUntil(testDate, now time.Time) int {
	days := int(midnight(testDate).Sub(midnight(now)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// PhaseFor maps days remaining to a study phase.
func PhaseFor(daysRemaining int) Phase {
	switch {
	case daysRemaining <= 7:
		return PhaseExamReadiness
	case daysRemaining <= 21:
		return PhasePressure
	default:
		return PhaseCoverage
	}
}

// MixFor returns the fixed bucket mix for a phase.
func MixFor(phase Phase) Mix {
	switch phase {
	case PhaseExamReadiness:
		return Mix{Weak: 0.35, Mixed: 0.45, Review: 0.20}
	case PhasePressure:
		return Mix{Weak: 0.45, Mixed: 0.35, Review: 0.20}
	default:
		return Mix{Weak: 0.50, Mixed: 0.30, Review: 0.20}
	}
}

// GenerateDaily builds today's plan. The returned block counts always sum
// to TotalDaily: review shortfall and integer-rounding remainders are
// redistributed into mixed during exam readiness and into weak otherwise.
func GenerateDaily(cfg Config, masteryLevels map[string]float64, dueReviews int, now time.Time) Daily {
	minutes := cfg.MinutesPerDay
	if minutes <= 0 {
		minutes = DefaultMinutesPerDay
	}
	secsPerQ := cfg.SecondsPerQuestion
	if secsPerQ <= 0 {
		secsPerQ = DefaultSecondsPerQuestion
	}

	totalDaily := minutes * 60 / secsPerQ
	if totalDaily < MinDailyQuestions {
		totalDaily = MinDailyQuestions
	}

	daily := Daily{
		Phase:      PhaseCoverage,
		TotalDaily: totalDaily,
	}
	if cfg.TestDate != nil {
		daily.HasTestDate = true
		daily.DaysRemaining = DaysUntil(*cfg.TestDate, now)
		daily.Phase = PhaseFor(daily.DaysRemaining)
	}

	mix := MixFor(daily.Phase)
	targetReview := int(float64(totalDaily) * mix.Review)
	targetWeak := int(float64(totalDaily) * mix.Weak)
	targetMixed := int(float64(totalDaily) * mix.Mixed)

	// Integer floors leave a remainder; it follows the shortfall rule.
	spill := totalDaily - targetReview - targetWeak - targetMixed

	reviewCount := dueReviews
	if reviewCount > targetReview {
		reviewCount = targetReview
	}
	spill += targetReview - reviewCount

	if daily.Phase == PhaseExamReadiness {
		targetMixed += spill
	} else {
		targetWeak += spill
	}

	allocation := allocateWeak(targetWeak, totalDaily, masteryLevels)

	daily.Blocks = []Block{
		{Type: BlockReview, Count: reviewCount},
		{Type: BlockWeak, Count: targetWeak, Allocation: allocation},
		{Type: BlockMixed, Count: targetMixed},
	}
	return daily
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weightedDomain pairs a domain with its weak-allocation weight.
type weightedDomain struct {
	name   string
	level  float64
	weight float64
}

// allocateWeak splits target slots across domains proportionally to
// (1-mastery)^1.6, guarantees a slot to clearly weak domains when capacity
// allows, and caps any single domain at half the daily budget.
func allocateWeak(target, totalDaily int, masteryLevels map[string]float64) map[string]int {
	if target <= 0 || len(masteryLevels) == 0 {
		return nil
	}

	domains := make([]weightedDomain, 0, len(masteryLevels))
	totalWeight := 0.0
	for name, level := range masteryLevels {
		w := math.Pow(1-clamp01(level), weakExponent)
		domains = append(domains, weightedDomain{name: name, level: level, weight: w})
		totalWeight += w
	}
	if totalWeight == 0 {
		// Everything fully mastered: split evenly.
		for i := range domains {
			domains[i].weight = 1
		}
		totalWeight = float64(len(domains))
	}
	sortByWeight(domains)

	alloc := make(map[string]int, len(domains))
	used := 0
	for _, d := range domains {
		n := int(float64(target) * d.weight / totalWeight)
		alloc[d.name] = n
		used += n
	}

	// Guarantee at least one slot to clearly weak domains if capacity allows.
	for _, d := range domains {
		if used >= target {
			break
		}
		if d.level < 0.65 && alloc[d.name] == 0 {
			alloc[d.name]++
			used++
		}
	}

	// Top up the remainder, highest weight first.
	for used < target {
		progressed := false
		for _, d := range domains {
			if used >= target {
				break
			}
			alloc[d.name]++
			used++
			progressed = true
		}
		if !progressed {
			break
		}
	}

	// Cap any single domain at half the daily budget, pushing overflow to
	// the next-weakest domain with spare capacity. If nothing has room the
	// overflow stays put: the budget must still add up.
	capPer := int(float64(totalDaily) * maxDomainShare)
	if capPer < 1 {
		capPer = 1
	}
	for _, d := range domains {
		over := alloc[d.name] - capPer
		if over <= 0 {
			continue
		}
		moved := 0
		for _, other := range domains {
			if other.name == d.name {
				continue
			}
			for moved < over && alloc[other.name] < capPer {
				alloc[other.name]++
				moved++
			}
			if moved >= over {
				break
			}
		}
		alloc[d.name] -= moved
	}

	for name, n := range alloc {
		if n == 0 {
			delete(alloc, name)
		}
	}
	return alloc
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

func sortByWeight(domains []weightedDomain) {
	sort.Slice(domains, func(i, j int) bool {
		if domains[i].weight != domains[j].weight {
			return domains[i].weight > domains[j].weight
		}
		return domains[i].name < domains[j].name
	})
}
