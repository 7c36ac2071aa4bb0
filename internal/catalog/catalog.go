package catalog

import (
	"sort"
	"strings"
)

// Question is a single entry in the question bank. The bank is authored
// externally and read-only from the engine's perspective.
type Question struct {
	ID            string   `json:"id"`
	Domain        string   `json:"domain"`
	DifficultyTag string   `json:"difficulty,omitempty"`
	Text          string   `json:"text"`
	Choices       []string `json:"choices"`
	AnswerIndex   int      `json:"answer_index"`
}

// Valid reports whether the question carries the minimum fields the engine
// needs. Invalid entries are skipped, not raised: partial banks are expected.
func (q Question) Valid() bool {
	return q.ID != "" && q.Domain != ""
}

// Catalog is an immutable question bank scoped to a single bank identifier.
type Catalog struct {
	Bank      string
	Questions []Question

	byID map[string]Question
}

// New builds a catalog from a bank id and its questions. Domain keys are
// normalized here, at the host boundary, so whitespace and case variants of
// the same domain never fragment downstream state. Entries without an id or
// domain are dropped.
func New(bank string, questions []Question) *Catalog {
	c := &Catalog{
		Bank: bank,
		byID: make(map[string]Question),
	}
	for _, q := range questions {
		q.Domain = NormalizeDomain(q.Domain)
		if !q.Valid() {
			continue
		}
		if _, dup := c.byID[q.ID]; dup {
			continue
		}
		c.byID[q.ID] = q
		c.Questions = append(c.Questions, q)
	}
	return c
}

// Get returns the question with the given id.
func (c *Catalog) Get(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Len returns the number of valid questions in the bank.
func (c *Catalog) Len() int {
	return len(c.Questions)
}

// Domains returns the sorted set of normalized domain labels in the bank.
func (c *Catalog) Domains() []string {
	seen := make(map[string]bool)
	var domains []string
	for _, q := range c.Questions {
		if !seen[q.Domain] {
			seen[q.Domain] = true
			domains = append(domains, q.Domain)
		}
	}
	sort.Strings(domains)
	return domains
}

// NormalizeDomain canonicalizes a free-text domain label: trims, lower-cases
// and collapses inner whitespace. "Access  Control " and "access control"
// map to the same key.
func NormalizeDomain(domain string) string {
	return strings.Join(strings.Fields(strings.ToLower(domain)), " ")
}
