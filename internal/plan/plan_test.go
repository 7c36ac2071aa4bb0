package plan

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func dateIn(days int) *time.Time {
	t := now.AddDate(0, 0, days)
	return &t
}

func blockCounts(d Daily) (review, weak, mixed int) {
	for _, b := range d.Blocks {
		switch b.Type {
		case BlockReview:
			review = b.Count
		case BlockWeak:
			weak = b.Count
		case BlockMixed:
			mixed = b.Count
		}
	}
	return
}

func TestDaysUntil(t *testing.T) {
	if got := DaysUntil(*dateIn(5), now); got != 5 {
		t.Errorf("DaysUntil(+5d) = %d, want 5", got)
	}
	if got := DaysUntil(*dateIn(-3), now); got != 0 {
		t.Errorf("DaysUntil(past) = %d, want 0", got)
	}
	// Partial days round down to the calendar distance.
	late := now.AddDate(0, 0, 2).Add(13 * time.Hour)
	if got := DaysUntil(late, now); got != 2 {
		t.Errorf("DaysUntil(+2d13h) = %d, want 2", got)
	}
}

func TestPhaseFor(t *testing.T) {
	cases := []struct {
		days int
		want Phase
	}{
		{0, PhaseExamReadiness},
		{7, PhaseExamReadiness},
		{8, PhasePressure},
		{21, PhasePressure},
		{22, PhaseCoverage},
		{120, PhaseCoverage},
	}
	for _, c := range cases {
		if got := PhaseFor(c.days); got != c.want {
			t.Errorf("PhaseFor(%d) = %s, want %s", c.days, got, c.want)
		}
	}
}

func TestGenerateDaily_ExamReadinessScenario(t *testing.T) {
	// 5 days out, 20 min/day at 120s per question: 10 questions, phase
	// exam_readiness, floors weak=3 review=2 mixed=4 plus remainder into
	// mixed.
	cfg := Config{TestDate: dateIn(5), MinutesPerDay: 20, SecondsPerQuestion: 120}
	d := GenerateDaily(cfg, map[string]float64{"audit": 0.4}, 10, now)

	if d.Phase != PhaseExamReadiness {
		t.Fatalf("phase = %s, want exam_readiness", d.Phase)
	}
	if d.TotalDaily != 10 {
		t.Fatalf("TotalDaily = %d, want 10", d.TotalDaily)
	}
	review, weak, mixed := blockCounts(d)
	if review != 2 || weak != 3 || mixed != 5 {
		t.Errorf("split = review %d / weak %d / mixed %d, want 2/3/5", review, weak, mixed)
	}
}

func TestGenerateDaily_BudgetConservation(t *testing.T) {
	levels := map[string]float64{"audit": 0.3, "risk": 0.7, "ir": 0.5}
	for _, days := range []int{0, 3, 10, 40} {
		for _, due := range []int{0, 1, 5, 50} {
			for _, minutes := range []int{5, 20, 60} {
				cfg := Config{TestDate: dateIn(days), MinutesPerDay: minutes, SecondsPerQuestion: 90}
				d := GenerateDaily(cfg, levels, due, now)
				review, weak, mixed := blockCounts(d)
				if review+weak+mixed != d.TotalDaily {
					t.Errorf("days=%d due=%d min=%d: %d+%d+%d != %d",
						days, due, minutes, review, weak, mixed, d.TotalDaily)
				}
			}
		}
	}
}

func TestGenerateDaily_ReviewShortfallRedistribution(t *testing.T) {
	// No reviews due: the review bucket collapses and its slots move to
	// weak outside exam readiness.
	cfg := Config{TestDate: dateIn(40), MinutesPerDay: 30, SecondsPerQuestion: 60}
	d := GenerateDaily(cfg, map[string]float64{"audit": 0.2, "risk": 0.4}, 0, now)

	review, weak, mixed := blockCounts(d)
	if review != 0 {
		t.Errorf("review = %d, want 0 with nothing due", review)
	}
	// total 30: floors weak 15 / mixed 9 / review 6, spill 0, shortfall 6 -> weak.
	if weak != 21 || mixed != 9 {
		t.Errorf("weak/mixed = %d/%d, want 21/9", weak, mixed)
	}
}

func TestGenerateDaily_MinimumFloor(t *testing.T) {
	d := GenerateDaily(Config{MinutesPerDay: 1, SecondsPerQuestion: 120}, nil, 0, now)
	if d.TotalDaily != MinDailyQuestions {
		t.Errorf("TotalDaily = %d, want floor %d", d.TotalDaily, MinDailyQuestions)
	}
	if d.HasTestDate || d.Phase != PhaseCoverage {
		t.Errorf("no test date should mean coverage, got %s", d.Phase)
	}
}

func TestAllocateWeak_WeakestGetsMost(t *testing.T) {
	alloc := allocateWeak(10, 20, map[string]float64{
		"weakest":  0.1,
		"middling": 0.5,
		"strong":   0.9,
	})
	total := 0
	for _, n := range alloc {
		total += n
	}
	if total != 10 {
		t.Fatalf("allocated %d, want 10 (alloc=%v)", total, alloc)
	}
	if alloc["weakest"] <= alloc["middling"] || alloc["middling"] < alloc["strong"] {
		t.Errorf("allocation not weight-ordered: %v", alloc)
	}
}

func TestAllocateWeak_GuaranteesSlotBelowThreshold(t *testing.T) {
	// "barely" is weak (<0.65) but its proportional share floors to zero.
	alloc := allocateWeak(3, 20, map[string]float64{
		"desperate": 0.05,
		"barely":    0.6,
	})
	if alloc["barely"] < 1 {
		t.Errorf("weak domain got no slot: %v", alloc)
	}
}

func TestAllocateWeak_DomainCap(t *testing.T) {
	// Single weak domain among mastered ones: cap at 50% of the daily
	// budget, overflow pushed to domains with spare capacity.
	alloc := allocateWeak(10, 10, map[string]float64{
		"weak":     0.0,
		"mastered": 0.99,
	})
	if alloc["weak"] > 5 {
		t.Errorf("domain exceeded 50%% cap: %v", alloc)
	}
	total := 0
	for _, n := range alloc {
		total += n
	}
	if total != 10 {
		t.Errorf("allocated %d, want 10: %v", total, alloc)
	}
}

func TestProgress_RecordCompletedRollsOver(t *testing.T) {
	p := Progress{}
	p = p.RecordCompleted("2026-03-01")
	p = p.RecordCompleted("2026-03-01")
	if p.CompletedToday != 2 || p.QuestionsCompleted != 2 {
		t.Errorf("same-day: %+v", p)
	}
	p = p.RecordCompleted("2026-03-02")
	if p.CompletedToday != 1 {
		t.Errorf("CompletedToday = %d after day change, want 1", p.CompletedToday)
	}
	if p.QuestionsCompleted != 3 {
		t.Errorf("QuestionsCompleted = %d, want 3", p.QuestionsCompleted)
	}
}
