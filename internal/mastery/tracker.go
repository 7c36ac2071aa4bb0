package mastery

import (
	"sort"
	"time"
)

// Tracker maintains per-domain mastery for one (learner, bank) pair.
type Tracker struct {
	domains map[string]Domain
}

// NewTracker creates a tracker from persisted domain records. A nil map
// starts empty.
func NewTracker(domains map[string]Domain) *Tracker {
	t := &Tracker{domains: make(map[string]Domain, len(domains))}
	for name, d := range domains {
		t.domains[name] = d
	}
	return t
}

// InitializeDomains inserts a zero-mastery record for every catalog domain
// not yet tracked. Idempotent: existing records are never overwritten.
func (t *Tracker) InitializeDomains(catalogDomains []string) {
	for _, name := range catalogDomains {
		if name == "" {
			continue
		}
		if _, ok := t.domains[name]; !ok {
			t.domains[name] = Domain{}
		}
	}
}

// RecordAttempt applies one answer to the named domain, creating the record
// lazily on first encounter.
func (t *Tracker) RecordAttempt(domain string, isCorrect bool, now time.Time) Domain {
	d := t.domains[domain]
	d = Update(d, isCorrect, now)
	t.domains[domain] = d
	return d
}

// Level returns the mastery level for a domain, 0 for unknown domains.
func (t *Tracker) Level(domain string) float64 {
	return t.domains[domain].MasteryLevel
}

// Get returns the record for a domain and whether it is tracked.
func (t *Tracker) Get(domain string) (Domain, bool) {
	d, ok := t.domains[domain]
	return d, ok
}

// Overall returns the unweighted mean mastery across all tracked domains.
func (t *Tracker) Overall() float64 {
	if len(t.domains) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range t.domains {
		sum += d.MasteryLevel
	}
	return sum / float64(len(t.domains))
}

// WeakDomains returns the sorted domains below the weak threshold.
func (t *Tracker) WeakDomains() []string {
	return t.filter(func(d Domain) bool { return d.MasteryLevel < WeakThreshold })
}

// StrongDomains returns the sorted domains above the strong threshold.
func (t *Tracker) StrongDomains() []string {
	return t.filter(func(d Domain) bool { return d.MasteryLevel > StrongThreshold })
}

// Levels returns a copy of the domain -> mastery level map.
func (t *Tracker) Levels() map[string]float64 {
	out := make(map[string]float64, len(t.domains))
	for name, d := range t.domains {
		out[name] = d.MasteryLevel
	}
	return out
}

// Domains exports all records for persistence.
func (t *Tracker) Domains() map[string]Domain {
	out := make(map[string]Domain, len(t.domains))
	for name, d := range t.domains {
		out[name] = d
	}
	return out
}

func (t *Tracker) filter(keep func(Domain) bool) []string {
	var names []string
	for name, d := range t.domains {
		if keep(d) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
