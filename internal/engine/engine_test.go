package engine

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/catalog"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/mastery"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/plan"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/review"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/streak"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testCatalog() *catalog.Catalog {
	var qs []catalog.Question
	ids := []string{"q1", "q2", "q3", "q4", "q5", "q6"}
	domains := []string{"access control", "access control", "audit", "audit", "risk management", "risk management"}
	for i, id := range ids {
		qs = append(qs, catalog.Question{ID: id, Domain: domains[i], Text: "?", Choices: []string{"a", "b"}})
	}
	return catalog.New("test-bank", qs)
}

func testEngine(t *testing.T, state State) (*Engine, *time.Time) {
	t.Helper()
	now := t0
	e, err := New(testCatalog(), state,
		WithClock(func() time.Time { return now }),
		WithRand(rand.New(rand.NewSource(1))),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, &now
}

func TestNew_InitializesCatalogDomains(t *testing.T) {
	e, _ := testEngine(t, NewState())
	sum := e.Summarize()
	if len(sum.DomainMastery) != 3 {
		t.Errorf("domains = %d, want 3", len(sum.DomainMastery))
	}
	if len(sum.WeakDomains) != 3 {
		t.Errorf("all untouched domains should be weak, got %v", sum.WeakDomains)
	}
	if len(sum.StrongDomains) != 0 {
		t.Errorf("StrongDomains = %v, want empty", sum.StrongDomains)
	}
}

func TestNew_RejectsInvalidState(t *testing.T) {
	state := NewState()
	state.Mastery = map[string]mastery.Domain{"audit": {MasteryLevel: 1.7}}
	_, err := New(testCatalog(), state)
	if err == nil {
		t.Fatal("expected invalid state error")
	}
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Errorf("error type = %T, want *InvalidStateError", err)
	}
}

func TestRecordAttempt_FanOut(t *testing.T) {
	e, _ := testEngine(t, NewState())

	res, err := e.RecordAttempt("q1", false)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if res.Domain != "access control" {
		t.Errorf("domain = %q", res.Domain)
	}
	if !res.EnqueuedReview {
		t.Error("a miss should enqueue a review item")
	}

	state := e.Export()
	if state.Stats["q1"].Attempts != 1 || state.Stats["q1"].LastWrongAt == nil {
		t.Errorf("stat = %+v", state.Stats["q1"])
	}
	if _, ok := state.Review["q1"]; !ok {
		t.Error("review item missing from export")
	}
	if state.Mastery["access control"].Attempts != 1 {
		t.Error("mastery record not updated")
	}
	if len(state.Difficulty.RecentPerformance) != 1 {
		t.Error("difficulty buffer not updated")
	}
	if state.Streak.StudyCalendar[streak.DayKey(t0)].QuestionsAnswered != 1 {
		t.Error("streak calendar not updated")
	}
	if state.Plan.CompletedToday != 1 {
		t.Error("plan progress not updated")
	}
}

func TestRecordAttempt_UnknownQuestion(t *testing.T) {
	e, _ := testEngine(t, NewState())
	_, err := e.RecordAttempt("nope", true)
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestRecordAttempt_CorrectFirstTryNotQueued(t *testing.T) {
	e, _ := testEngine(t, NewState())
	res, err := e.RecordAttempt("q1", true)
	if err != nil {
		t.Fatal(err)
	}
	if res.EnqueuedReview {
		t.Error("a correct first attempt must not enter the review queue")
	}
	if len(e.Export().Review) != 0 {
		t.Error("review queue should be empty")
	}
}

func TestDueReviews_AfterMissAndDayElapsed(t *testing.T) {
	e, now := testEngine(t, NewState())
	if _, err := e.RecordAttempt("q1", false); err != nil {
		t.Fatal(err)
	}
	if len(e.DueReviews()) != 0 {
		t.Error("nothing should be due immediately after a miss")
	}
	*now = t0.AddDate(0, 0, 1)
	due := e.DueReviews()
	if len(due) != 1 || due[0].QuestionID != "q1" {
		t.Errorf("due = %+v, want q1", due)
	}
}

func TestNextQuestions_BatchFromCatalog(t *testing.T) {
	e, _ := testEngine(t, NewState())

	batch := e.NextQuestions(3)
	if len(batch) != 3 {
		t.Fatalf("batch = %d, want 3", len(batch))
	}
	seen := make(map[string]bool)
	for _, q := range batch {
		if seen[q.ID] {
			t.Errorf("duplicate question %s in batch", q.ID)
		}
		seen[q.ID] = true
		if _, ok := testCatalog().Get(q.ID); !ok {
			t.Errorf("question %s not in catalog", q.ID)
		}
	}

	// More than the catalog holds: the batch is bounded by catalog size.
	if got := e.NextQuestions(50); len(got) != testCatalog().Len() {
		t.Errorf("oversized request returned %d, want %d", len(got), testCatalog().Len())
	}
}

func TestNextQuestions_EmptyCatalog(t *testing.T) {
	e, err := New(catalog.New("empty", nil), NewState())
	if err != nil {
		t.Fatal(err)
	}
	if got := e.NextQuestions(5); len(got) != 0 {
		t.Errorf("got %d questions from empty catalog", len(got))
	}
}

func TestDailyPlan_UsesDueBacklogAndUpdatesProgress(t *testing.T) {
	e, now := testEngine(t, NewState())
	for _, id := range []string{"q1", "q2", "q3"} {
		if _, err := e.RecordAttempt(id, false); err != nil {
			t.Fatal(err)
		}
	}
	*now = t0.AddDate(0, 0, 2)

	testDate := t0.AddDate(0, 0, 7)
	daily := e.DailyPlan(plan.Config{TestDate: &testDate, MinutesPerDay: 20, SecondsPerQuestion: 120})
	if daily.Phase != plan.PhaseExamReadiness {
		t.Errorf("phase = %s", daily.Phase)
	}
	if daily.Blocks[0].Type != plan.BlockReview || daily.Blocks[0].Count != 2 {
		t.Errorf("review block = %+v, want 2 of 3 due (capped by target)", daily.Blocks[0])
	}

	state := e.Export()
	if state.Plan.DailyGoal != daily.TotalDaily {
		t.Error("plan progress not refreshed")
	}
	if state.Plan.TestDate == nil {
		t.Error("test date not persisted")
	}
}

func TestState_JSONRoundTrip(t *testing.T) {
	e, _ := testEngine(t, NewState())
	for _, id := range []string{"q1", "q2", "q3"} {
		if _, err := e.RecordAttempt(id, id != "q2"); err != nil {
			t.Fatal(err)
		}
	}
	exported := e.Export()

	raw, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored State
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.Stats["q2"].Attempts != 1 || restored.Stats["q2"].LastWrongAt == nil {
		t.Errorf("stats lost in round trip: %+v", restored.Stats["q2"])
	}
	if restored.Review["q2"].EaseFactor != review.InitialEase {
		t.Errorf("review lost in round trip: %+v", restored.Review["q2"])
	}
	if restored.Streak.StudyCalendar[streak.DayKey(t0)].QuestionsAnswered != 3 {
		t.Error("streak calendar lost in round trip")
	}
	if restored.Difficulty.AdjustmentFactor == 0 {
		t.Error("difficulty adjustment factor lost in round trip")
	}
}

func TestMarkShown_SuppressesImmediateRepeat(t *testing.T) {
	e, _ := testEngine(t, NewState())
	e.MarkShown("q5")

	state := e.Export()
	if state.Stats["q5"].LastSeenAt == nil {
		t.Fatal("MarkShown did not record a seen time")
	}
	if state.Stats["q5"].Attempts != 0 {
		t.Error("MarkShown must not count an attempt")
	}
}
