package difficulty

import "testing"

func recordN(s State, domain string, results ...bool) State {
	for _, r := range results {
		s = Record(s, domain, r)
	}
	return s
}

func TestRecord_NoMovementBeforeMinSamples(t *testing.T) {
	s := recordN(NewState(), "audit", true, true, true, true)
	if s.CurrentLevel != MinLevel {
		t.Errorf("level moved to %.1f with only 4 samples", s.CurrentLevel)
	}
}

func TestRecord_RaisesOnHighAccuracy(t *testing.T) {
	s := recordN(NewState(), "audit", true, true, true, true, true)
	if s.CurrentLevel != 1.1 {
		t.Errorf("level = %.1f, want 1.1 after 5/5 correct", s.CurrentLevel)
	}
}

func TestRecord_LowersOnLowAccuracy(t *testing.T) {
	s := NewState()
	s.CurrentLevel = 3.0
	s = recordN(s, "audit", false, false, false, true, false)
	if s.CurrentLevel != 2.9 {
		t.Errorf("level = %.1f, want 2.9 after 1/5 correct", s.CurrentLevel)
	}
}

func TestRecord_LevelBounds(t *testing.T) {
	s := NewState()
	for i := 0; i < 100; i++ {
		s = Record(s, "audit", true)
	}
	if s.CurrentLevel != MaxLevel {
		t.Errorf("level = %.1f, want capped at %.1f", s.CurrentLevel, MaxLevel)
	}
	for i := 0; i < 100; i++ {
		s = Record(s, "audit", false)
	}
	if s.CurrentLevel != MinLevel {
		t.Errorf("level = %.1f, want floored at %.1f", s.CurrentLevel, MinLevel)
	}
}

func TestRecord_BufferCaps(t *testing.T) {
	s := NewState()
	for i := 0; i < 25; i++ {
		s = Record(s, "audit", i%2 == 0)
	}
	if len(s.RecentPerformance) != GlobalWindow {
		t.Errorf("global buffer = %d, want %d", len(s.RecentPerformance), GlobalWindow)
	}
	if len(s.DomainPerformance["audit"]) != DomainWindow {
		t.Errorf("domain buffer = %d, want %d", len(s.DomainPerformance["audit"]), DomainWindow)
	}
}

func TestRecord_DoesNotMutateInput(t *testing.T) {
	s := recordN(NewState(), "audit", true, true)
	before := len(s.RecentPerformance)
	_ = Record(s, "audit", true)
	if len(s.RecentPerformance) != before {
		t.Error("Record mutated its input state")
	}
	if len(s.DomainPerformance["audit"]) != 2 {
		t.Error("Record mutated the input domain buffer map")
	}
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		results []bool
		want    int
	}{
		{nil, 1},
		{[]bool{false, false, true}, 1},
		{[]bool{true, false, false, true}, 2},
		{[]bool{true, true, false, true}, 3},
		{[]bool{true, true, true, true, false}, 3},
		{[]bool{true, true, true, true}, 5},
	}
	for i, c := range cases {
		s := NewState()
		for _, r := range c.results {
			s = Record(s, "audit", r)
		}
		if got := TierFor(s, "audit"); got != c.want {
			t.Errorf("case %d: TierFor = %d, want %d", i, got, c.want)
		}
	}
}
