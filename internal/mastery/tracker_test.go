package mastery

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestUpdate_BoundsHold(t *testing.T) {
	d := Domain{}
	for i := 0; i < 100; i++ {
		d = Update(d, i%3 != 0, t0)
		if d.MasteryLevel < 0 || d.MasteryLevel > 1 {
			t.Fatalf("mastery %.4f out of [0,1] after %d attempts", d.MasteryLevel, i+1)
		}
	}
	if d.Attempts != 100 {
		t.Errorf("Attempts = %d, want 100", d.Attempts)
	}
}

func TestUpdate_ColdStartStaysLow(t *testing.T) {
	// A single early correct answer must not read as mid-mastery.
	d := Update(Domain{}, true, t0)
	if d.MasteryLevel > 0.1 {
		t.Errorf("one attempt produced mastery %.4f, want near prior", d.MasteryLevel)
	}
}

func TestUpdate_ConfidenceBlending(t *testing.T) {
	// Same raw accuracy (all correct), different attempt counts:
	// fewer attempts must sit closer to the zero prior.
	few := Domain{}
	for i := 0; i < 3; i++ {
		few = Update(few, true, t0)
	}
	many := Domain{}
	for i := 0; i < 30; i++ {
		many = Update(many, true, t0)
	}
	if few.MasteryLevel >= many.MasteryLevel {
		t.Errorf("few=%.4f, many=%.4f; expected fewer attempts closer to prior",
			few.MasteryLevel, many.MasteryLevel)
	}
}

func TestScenario_TwelveCorrectFromZero(t *testing.T) {
	tr := NewTracker(nil)
	tr.InitializeDomains([]string{"access control"})
	if tr.Level("access control") != 0 {
		t.Fatalf("initialized domain level = %.4f, want 0", tr.Level("access control"))
	}

	for i := 0; i < 12; i++ {
		tr.RecordAttempt("access control", true, t0)
	}
	if lvl := tr.Level("access control"); lvl <= 0.5 {
		t.Errorf("after 12 correct, level = %.4f, want > 0.5", lvl)
	}
}

func TestInitializeDomains_Idempotent(t *testing.T) {
	tr := NewTracker(nil)
	tr.RecordAttempt("audit", true, t0)
	before := tr.Level("audit")

	tr.InitializeDomains([]string{"audit", "risk management", ""})
	if tr.Level("audit") != before {
		t.Error("InitializeDomains overwrote an existing record")
	}
	if _, ok := tr.Get("risk management"); !ok {
		t.Error("new catalog domain not inserted")
	}
	if _, ok := tr.Get(""); ok {
		t.Error("empty domain name must not be inserted")
	}
}

func TestWeakAndStrongDomains(t *testing.T) {
	tr := NewTracker(map[string]Domain{
		"audit":  {MasteryLevel: 0.9, Attempts: 40},
		"risk":   {MasteryLevel: 0.5, Attempts: 10},
		"untouched": {},
	})

	weak := tr.WeakDomains()
	if len(weak) != 2 || weak[0] != "risk" || weak[1] != "untouched" {
		t.Errorf("WeakDomains = %v", weak)
	}
	strong := tr.StrongDomains()
	if len(strong) != 1 || strong[0] != "audit" {
		t.Errorf("StrongDomains = %v", strong)
	}
}

func TestZeroAttemptDomainExcludedFromStrong(t *testing.T) {
	tr := NewTracker(nil)
	tr.InitializeDomains([]string{"audit"})
	if len(tr.StrongDomains()) != 0 {
		t.Errorf("StrongDomains = %v, want empty", tr.StrongDomains())
	}
}

func TestOverall_UnweightedMean(t *testing.T) {
	tr := NewTracker(map[string]Domain{
		"a": {MasteryLevel: 0.2},
		"b": {MasteryLevel: 0.8},
	})
	if got := tr.Overall(); got != 0.5 {
		t.Errorf("Overall = %.4f, want 0.5", got)
	}
	if NewTracker(nil).Overall() != 0 {
		t.Error("empty tracker Overall should be 0")
	}
}
