package priority

import (
	"math/rand"
	"testing"
	"time"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/catalog"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedEngine() *Engine {
	return NewEngine(rand.New(rand.NewSource(42)))
}

func minutesAgo(m int) *time.Time {
	t := now.Add(-time.Duration(m) * time.Minute)
	return &t
}

func flatMastery(level float64) func(string) float64 {
	return func(string) float64 { return level }
}

func TestPrioritize_EmptyCatalog(t *testing.T) {
	got := fixedEngine().Prioritize(nil, 5, Inputs{Now: now})
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}

func TestPrioritize_SkipsInvalidEntries(t *testing.T) {
	qs := []catalog.Question{
		{ID: "", Domain: "audit"},
		{ID: "q2", Domain: ""},
		{ID: "q3", Domain: "audit"},
	}
	got := fixedEngine().Prioritize(qs, 10, Inputs{Now: now, MasteryOf: flatMastery(0.5)})
	if len(got) != 1 || got[0].ID != "q3" {
		t.Errorf("got %v, want only q3", got)
	}
}

func TestScore_UnseenQuestionNeverPenalized(t *testing.T) {
	e := fixedEngine()
	q := catalog.Question{ID: "q1", Domain: "audit"}
	in := Inputs{Now: now, MasteryOf: flatMastery(0.5)}

	// Same question, artificially seen 5 minutes ago.
	seen := Inputs{
		Now:       now,
		MasteryOf: flatMastery(0.5),
		Stats:     map[string]*QuestionStat{"q1": {Attempts: 1, Correct: 1, LastSeenAt: minutesAgo(5)}},
	}

	unseenScore := e.score(q, in)
	seenScore := e.score(q, seen)
	if seenScore >= unseenScore {
		t.Errorf("recently seen question outranked unseen one: %.4f >= %.4f", seenScore, unseenScore)
	}
}

func TestScore_WeakDomainOutranksStrong(t *testing.T) {
	e := fixedEngine()
	weak := e.score(catalog.Question{ID: "q1", Domain: "weak"}, Inputs{
		Now:       now,
		MasteryOf: func(d string) float64 { return 0.2 },
	})
	strong := e.score(catalog.Question{ID: "q1", Domain: "strong"}, Inputs{
		Now:       now,
		MasteryOf: func(d string) float64 { return 0.9 },
	})
	if weak <= strong {
		t.Errorf("weak domain %.4f <= strong domain %.4f", weak, strong)
	}
}

func TestWrongBoost_Shape(t *testing.T) {
	if got := wrongBoostAt(false, 90); got != 0 {
		t.Errorf("never missed: boost = %.4f, want 0", got)
	}
	if got := wrongBoostAt(true, 10); got != 0 {
		t.Errorf("10 min after miss: boost = %.4f, want 0 (dead zone)", got)
	}
	rising := wrongBoostAt(true, 60)
	peak := wrongBoostAt(true, 120)
	decayed := wrongBoostAt(true, 360)
	if !(rising > 0 && rising < peak) {
		t.Errorf("rise: 60min=%.4f, peak=%.4f", rising, peak)
	}
	if peak != 1.0 {
		t.Errorf("peak = %.4f, want 1.0", peak)
	}
	if !(decayed > 0 && decayed < peak) {
		t.Errorf("decay: 360min=%.4f", decayed)
	}
	// Half-life of 4 hours: at peak+240min the boost is half the peak.
	half := wrongBoostAt(true, 360)
	if diff := half - 0.5; diff > 0.001 || diff < -0.001 {
		t.Errorf("half-life point = %.4f, want 0.5", half)
	}
}

func TestScore_SessionRevisitOfRecentMiss(t *testing.T) {
	// Scenario: missed at t=0, re-scored at t=90min within the same session.
	// The miss is old enough to be an eligible revisit (0.55 branch), and
	// the wrong boost contributes positively.
	e := fixedEngine()
	q := catalog.Question{ID: "q1", Domain: "audit"}
	stat := &QuestionStat{Attempts: 1, Correct: 0, LastSeenAt: minutesAgo(90), LastWrongAt: minutesAgo(90)}

	inSession := e.score(q, Inputs{
		Now:       now,
		MasteryOf: flatMastery(0.5),
		Stats:     map[string]*QuestionStat{"q1": stat},
		Session:   map[string]bool{"q1": true},
	})
	outOfSession := e.score(q, Inputs{
		Now:       now,
		MasteryOf: flatMastery(0.5),
		Stats:     map[string]*QuestionStat{"q1": stat},
	})

	ratio := inSession / outOfSession
	if diff := ratio - sessionRevisit; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("session multiplier = %.4f, want %.2f (eligible revisit)", ratio, sessionRevisit)
	}
}

func TestScore_SessionSuppressionOfFreshQuestion(t *testing.T) {
	e := fixedEngine()
	q := catalog.Question{ID: "q1", Domain: "audit"}
	stat := &QuestionStat{Attempts: 1, Correct: 1, LastSeenAt: minutesAgo(90)}

	inSession := e.score(q, Inputs{
		Now:       now,
		MasteryOf: flatMastery(0.5),
		Stats:     map[string]*QuestionStat{"q1": stat},
		Session:   map[string]bool{"q1": true},
	})
	outOfSession := e.score(q, Inputs{
		Now:       now,
		MasteryOf: flatMastery(0.5),
		Stats:     map[string]*QuestionStat{"q1": stat},
	})

	ratio := inSession / outOfSession
	if diff := ratio - sessionSuppress; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("session multiplier = %.4f, want %.2f (never missed)", ratio, sessionSuppress)
	}
}

func TestPrioritize_CountBounded(t *testing.T) {
	var qs []catalog.Question
	for i := 0; i < 120; i++ {
		qs = append(qs, catalog.Question{ID: string(rune('a'+i%26)) + string(rune('0'+i/26)), Domain: "audit"})
	}
	got := fixedEngine().Prioritize(qs, 7, Inputs{Now: now, MasteryOf: flatMastery(0.3)})
	if len(got) != 7 {
		t.Errorf("len = %d, want 7", len(got))
	}
	got = fixedEngine().Prioritize(qs[:3], 7, Inputs{Now: now, MasteryOf: flatMastery(0.3)})
	if len(got) != 3 {
		t.Errorf("len = %d, want all 3 when catalog is small", len(got))
	}
}

func TestPrioritize_SeededDeterminism(t *testing.T) {
	var qs []catalog.Question
	for i := 0; i < 80; i++ {
		qs = append(qs, catalog.Question{ID: string(rune('a'+i%26)) + string(rune('0'+i/26)), Domain: "audit"})
	}
	in := Inputs{Now: now, MasteryOf: flatMastery(0.3)}

	a := NewEngine(rand.New(rand.NewSource(7))).Prioritize(qs, 10, in)
	b := NewEngine(rand.New(rand.NewSource(7))).Prioritize(qs, 10, in)
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed diverged at %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}

	c := NewEngine(rand.New(rand.NewSource(8))).Prioritize(qs, 10, in)
	same := true
	for i := range a {
		if a[i].ID != c[i].ID {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical orderings; shuffle not applied")
	}
}
