package catalog

import "testing"

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Access Control", "access control"},
		{"  Access   Control ", "access control"},
		{"RISK MANAGEMENT", "risk management"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeDomain(c.in); got != c.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNew_DropsInvalidAndDuplicates(t *testing.T) {
	cat := New("cmmc", []Question{
		{ID: "q1", Domain: "Access Control"},
		{ID: "", Domain: "Access Control"},
		{ID: "q2", Domain: ""},
		{ID: "q1", Domain: "Risk Management"},
		{ID: "q3", Domain: " access  control "},
	})
	if cat.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cat.Len())
	}
	q, ok := cat.Get("q1")
	if !ok || q.Domain != "access control" {
		t.Errorf("q1 = %+v, ok=%v, want normalized access control", q, ok)
	}
}

func TestDomains_MergesVariants(t *testing.T) {
	cat := New("cmmc", []Question{
		{ID: "q1", Domain: "Access Control"},
		{ID: "q2", Domain: "access  control"},
		{ID: "q3", Domain: "Audit"},
	})
	domains := cat.Domains()
	if len(domains) != 2 {
		t.Fatalf("Domains = %v, want 2 entries", domains)
	}
	if domains[0] != "access control" || domains[1] != "audit" {
		t.Errorf("Domains = %v", domains)
	}
}

func TestLoad_ValidBank(t *testing.T) {
	data := []byte(`{
		"bank": "cmmc-l2",
		"questions": [
			{"id": "q1", "domain": "Access Control", "text": "Which control?", "choices": ["a", "b", "c", "d"], "answer_index": 2}
		]
	}`)
	cat, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Bank != "cmmc-l2" || cat.Len() != 1 {
		t.Errorf("bank=%q len=%d", cat.Bank, cat.Len())
	}
}

func TestLoad_SchemaRejection(t *testing.T) {
	if _, err := Load([]byte(`{"bank": "x"}`)); err == nil {
		t.Error("expected error for bank without questions")
	}
	if _, err := Load([]byte(`{"questions": "nope"}`)); err == nil {
		t.Error("expected error for non-array questions")
	}
}
