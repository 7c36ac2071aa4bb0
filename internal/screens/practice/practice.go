package practice

import (
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/stopwatch"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/catalog"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/engine"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/ui/components"
)

// Attempt is one answered question, reported to the host after each submit.
type Attempt struct {
	SessionID  string
	QuestionID string
	Domain     string
	Correct    bool
	Elapsed    time.Duration
}

// AttemptSink receives attempts as they happen, typically for event logging.
// Errors are the sink's problem; the session keeps going.
type AttemptSink func(Attempt)

// Model is the Bubble Tea model for one practice session.
type Model struct {
	eng       *engine.Engine
	sessionID string
	sink      AttemptSink

	queue    []catalog.Question
	index    int
	mc       components.MultiChoice
	watch    stopwatch.Model
	answered int
	correct  int
	feedback string
	done     bool
	quitting bool

	width  int
	height int
}

// New builds a session over the next count questions the engine picks.
func New(eng *engine.Engine, count int, sink AttemptSink) Model {
	m := Model{
		eng:       eng,
		sessionID: uuid.New().String(),
		sink:      sink,
		queue:     eng.NextQuestions(count),
		watch:     stopwatch.New(stopwatch.WithInterval(time.Second)),
	}
	if len(m.queue) == 0 {
		m.done = true
		return m
	}
	m.mc = newChoice(m.queue[0])
	eng.MarkShown(m.queue[0].ID)
	return m
}

// SessionID returns the id stamped on every attempt from this session.
func (m Model) SessionID() string {
	return m.sessionID
}

// Answered returns how many questions were answered.
func (m Model) Answered() int {
	return m.answered
}

// Correct returns how many answers were correct.
func (m Model) Correct() int {
	return m.correct
}

func newChoice(q catalog.Question) components.MultiChoice {
	return components.NewMultiChoice(q.Text, q.Choices, q.AnswerIndex)
}

func (m Model) Init() tea.Cmd {
	if m.done {
		return nil
	}
	return m.watch.Start()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}
		if m.done {
			if msg.String() == "enter" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		if m.mc.Submitted {
			if msg.String() == "enter" || msg.String() == " " {
				return m.advance()
			}
			return m, nil
		}
		wasSubmitted := m.mc.Submitted
		m.mc, _ = m.mc.Update(msg)
		if !wasSubmitted && m.mc.Submitted {
			return m.recordAnswer()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.watch, cmd = m.watch.Update(msg)
	return m, cmd
}

// recordAnswer applies the just-submitted answer to the engine and reports
// it to the sink.
func (m Model) recordAnswer() (tea.Model, tea.Cmd) {
	q := m.queue[m.index]
	isCorrect := m.mc.IsCorrect()

	result, err := m.eng.RecordAttempt(q.ID, isCorrect)
	if err != nil {
		m.feedback = fmt.Sprintf("could not record answer: %v", err)
		return m, m.watch.Stop()
	}

	m.answered++
	if isCorrect {
		m.correct++
		m.feedback = "Correct!"
	} else {
		m.feedback = fmt.Sprintf("Incorrect — the answer was %s.",
			answerLabel(q))
	}
	if result.EnqueuedReview {
		m.feedback += " Queued for review."
	}
	if result.GraduatedReview {
		m.feedback += " Review item retired."
	}

	if m.sink != nil {
		m.sink(Attempt{
			SessionID:  m.sessionID,
			QuestionID: q.ID,
			Domain:     q.Domain,
			Correct:    isCorrect,
			Elapsed:    m.watch.Elapsed(),
		})
	}
	return m, m.watch.Stop()
}

// advance moves to the next question or ends the session.
func (m Model) advance() (tea.Model, tea.Cmd) {
	m.index++
	m.feedback = ""
	if m.index >= len(m.queue) {
		m.done = true
		return m, nil
	}
	q := m.queue[m.index]
	m.mc = newChoice(q)
	m.eng.MarkShown(q.ID)
	return m, tea.Batch(m.watch.Reset(), m.watch.Start())
}

func answerLabel(q catalog.Question) string {
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
		return "?"
	}
	return string(rune('A' + q.AnswerIndex))
}

// Run starts the Bubble Tea program for a session and returns the final
// model so the host can persist what happened.
func Run(m Model) (Model, error) {
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return m, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}
