package practice

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/catalog"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/engine"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []catalog.Question {
	return []catalog.Question{
		{ID: "q1", Domain: "access control", Text: "Pick A", Choices: []string{"a", "b", "c", "d"}, AnswerIndex: 0},
		{ID: "q2", Domain: "access control", Text: "Pick A", Choices: []string{"a", "b", "c", "d"}, AnswerIndex: 0},
		{ID: "q3", Domain: "audit", Text: "Pick A", Choices: []string{"a", "b", "c", "d"}, AnswerIndex: 0},
	}
}

func testModel(t *testing.T, sink AttemptSink) Model {
	t.Helper()
	cat := catalog.New("test", testQuestions())
	eng, err := engine.New(cat, engine.NewState())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return New(eng, 3, sink)
}

func TestNew_EmptyCatalog(t *testing.T) {
	cat := catalog.New("test", nil)
	eng, err := engine.New(cat, engine.NewState())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}

	m := New(eng, 5, nil)
	if !m.done {
		t.Error("expected session over empty bank to start done")
	}
}

func TestNew_AssignsSessionID(t *testing.T) {
	m := testModel(t, nil)
	if m.SessionID() == "" {
		t.Error("expected non-empty session id")
	}
}

func TestCorrectAnswer(t *testing.T) {
	var attempts []Attempt
	m := testModel(t, func(a Attempt) { attempts = append(attempts, a) })

	// Selection starts on choice 0, which is correct for every test question.
	next, _ := m.Update(specialKey(tea.KeyEnter))
	mm := next.(Model)

	if mm.Answered() != 1 || mm.Correct() != 1 {
		t.Errorf("answered=%d correct=%d, want 1/1", mm.Answered(), mm.Correct())
	}
	if !strings.Contains(mm.feedback, "Correct") {
		t.Errorf("feedback = %q, want correct message", mm.feedback)
	}
	if len(attempts) != 1 {
		t.Fatalf("sink got %d attempts, want 1", len(attempts))
	}
	if !attempts[0].Correct {
		t.Error("sink attempt should be correct")
	}
	if attempts[0].SessionID != mm.SessionID() {
		t.Error("attempt must carry the session id")
	}
}

func TestIncorrectAnswer(t *testing.T) {
	m := testModel(t, nil)

	next, _ := m.Update(specialKey(tea.KeyDown))
	next, _ = next.(Model).Update(specialKey(tea.KeyEnter))
	mm := next.(Model)

	if mm.Correct() != 0 {
		t.Errorf("correct = %d, want 0", mm.Correct())
	}
	if !strings.Contains(mm.feedback, "Incorrect") {
		t.Errorf("feedback = %q, want incorrect message", mm.feedback)
	}
	if !strings.Contains(mm.feedback, "A") {
		t.Errorf("feedback = %q, want revealed answer label", mm.feedback)
	}
}

func TestAdvanceAndFinish(t *testing.T) {
	m := testModel(t, nil)

	var model tea.Model = m
	for i := 0; i < 3; i++ {
		model, _ = model.Update(specialKey(tea.KeyEnter)) // answer
		model, _ = model.Update(specialKey(tea.KeyEnter)) // next
	}
	mm := model.(Model)

	if !mm.done {
		t.Error("expected session to be done after answering every question")
	}
	if mm.Answered() != 3 {
		t.Errorf("answered = %d, want 3", mm.Answered())
	}

	if !strings.Contains(mm.summaryView(), "Session complete") {
		t.Error("expected summary view when done")
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t, nil)

	next, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	mm := next.(Model)

	if !mm.quitting {
		t.Error("expected quitting after q")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestQuestionView_ShowsMeta(t *testing.T) {
	m := testModel(t, nil)
	m.width, m.height = 80, 24

	view := m.questionView()
	if !strings.Contains(view, "Question 1 of 3") {
		t.Errorf("view missing question counter:\n%s", view)
	}
	if !strings.Contains(view, "tier") {
		t.Error("view missing difficulty tier hint")
	}
}
