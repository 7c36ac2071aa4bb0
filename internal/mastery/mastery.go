package mastery

import (
	"math"
	"time"
)

const (
	// Alpha is the EWMA weight given to the newest outcome.
	Alpha = 0.2

	// ConfidenceK controls how fast confidence saturates with attempts:
	// ~63% at 12 attempts, ~95% around 36.
	ConfidenceK = 12.0

	// WeakThreshold and StrongThreshold classify domains for planning.
	WeakThreshold   = 0.65
	StrongThreshold = 0.85
)

// Domain is the confidence-weighted skill estimate for one domain.
type Domain struct {
	MasteryLevel float64   `json:"mastery_level"`
	Attempts     int       `json:"attempts"`
	Correct      int       `json:"correct"`
	Total        int       `json:"total"`
	LastUpdated  time.Time `json:"last_updated"`
}

// Update applies one answer to a domain record and returns the new record.
// The mastery level is a convex blend of an EWMA accuracy estimate and the
// pre-update level scaled by confidence: a domain with few attempts stays
// close to its prior instead of jumping to raw accuracy.
func Update(d Domain, isCorrect bool, now time.Time) Domain {
	outcome := 0.0
	if isCorrect {
		outcome = 1.0
		d.Correct++
	}
	prior := d.MasteryLevel

	d.Attempts++
	d.Total++

	ewma := prior*(1-Alpha) + outcome*Alpha
	confidence := 1 - math.Exp(-float64(d.Attempts)/ConfidenceK)

	d.MasteryLevel = clamp01(ewma*confidence + prior*(1-confidence))
	d.LastUpdated = now
	return d
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
