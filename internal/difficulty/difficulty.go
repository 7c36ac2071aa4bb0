package difficulty

import "math"

const (
	// MinLevel and MaxLevel bound the global difficulty level.
	MinLevel = 1.0
	MaxLevel = 5.0

	// DefaultAdjustment is the step size applied per qualifying attempt.
	DefaultAdjustment = 0.1

	// GlobalWindow and DomainWindow cap the rolling performance buffers.
	GlobalWindow = 10
	DomainWindow = 5

	// MinSamples is how many global results are needed before the level moves.
	MinSamples = 5

	raiseAbove = 0.8
	lowerBelow = 0.6
)

// State is the rolling difficulty state for one (learner, bank) pair.
type State struct {
	CurrentLevel      float64           `json:"current_level"`
	RecentPerformance []bool            `json:"recent_performance"`
	DomainPerformance map[string][]bool `json:"domain_performance"`
	AdjustmentFactor  float64           `json:"adjustment_factor"`
}

// NewState returns difficulty state at the easiest level with empty buffers.
func NewState() State {
	return State{
		CurrentLevel:      MinLevel,
		DomainPerformance: make(map[string][]bool),
		AdjustmentFactor:  DefaultAdjustment,
	}
}

// normalized fills in zero values left behind by older persisted state.
func normalized(s State) State {
	if s.CurrentLevel == 0 {
		s.CurrentLevel = MinLevel
	}
	if s.AdjustmentFactor == 0 {
		s.AdjustmentFactor = DefaultAdjustment
	}
	if s.DomainPerformance == nil {
		s.DomainPerformance = make(map[string][]bool)
	}
	return s
}

// Record appends one result to the global and per-domain buffers and nudges
// the level once enough samples have accumulated. Returns the new state; the
// input is not mutated.
func Record(s State, domain string, isCorrect bool) State {
	s = normalized(s)

	s.RecentPerformance = push(s.RecentPerformance, isCorrect, GlobalWindow)

	perDomain := make(map[string][]bool, len(s.DomainPerformance)+1)
	for d, buf := range s.DomainPerformance {
		perDomain[d] = buf
	}
	perDomain[domain] = push(perDomain[domain], isCorrect, DomainWindow)
	s.DomainPerformance = perDomain

	if len(s.RecentPerformance) >= MinSamples {
		acc := accuracy(s.RecentPerformance)
		switch {
		case acc > raiseAbove:
			s.CurrentLevel = roundTenth(math.Min(MaxLevel, s.CurrentLevel+s.AdjustmentFactor))
		case acc < lowerBelow:
			s.CurrentLevel = roundTenth(math.Max(MinLevel, s.CurrentLevel-s.AdjustmentFactor))
		}
	}
	return s
}

// TierFor maps a domain's rolling accuracy to a discrete 1-5 tier. It is a
// selection filter hint only and is independent of CurrentLevel.
func TierFor(s State, domain string) int {
	buf := s.DomainPerformance[domain]
	if len(buf) == 0 {
		return 1
	}
	acc := accuracy(buf)
	switch {
	case acc > 0.9:
		return 5
	case acc > 0.8:
		return 4
	case acc > 0.6:
		return 3
	case acc > 0.4:
		return 2
	default:
		return 1
	}
}

func push(buf []bool, v bool, limit int) []bool {
	next := make([]bool, 0, limit)
	next = append(next, buf...)
	next = append(next, v)
	if len(next) > limit {
		next = next[len(next)-limit:]
	}
	return next
}

func accuracy(buf []bool) float64 {
	if len(buf) == 0 {
		return 0
	}
	hits := 0
	for _, ok := range buf {
		if ok {
			hits++
		}
	}
	return float64(hits) / float64(len(buf))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
