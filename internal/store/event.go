package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/GRCJP/assurit-test-simulator-sub000/ent"
	"github.com/GRCJP/assurit-test-simulator-sub000/ent/attemptevent"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Attempt and plan events live in separate ent-managed
// tables, so per-table auto-increment IDs can't establish cross-type
// ordering; this shared counter assigns a single increasing sequence to
// every event. Uses raw SQL because ent doesn't expose database-level
// atomic counters. The mutex serializes within the process; the RETURNING
// clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetLearner(data.Learner).
		SetBank(data.Bank).
		SetQuestionID(data.QuestionID).
		SetDomain(data.Domain).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendPlan(ctx context.Context, data PlanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	planMap, err := dailyToMap(data.Daily)
	if err != nil {
		return fmt.Errorf("marshal daily plan: %w", err)
	}

	_, err = r.client.PlanEvent.Create().
		SetSequence(seqNum).
		SetLearner(data.Learner).
		SetBank(data.Bank).
		SetPhase(string(data.Daily.Phase)).
		SetTotalDaily(data.Daily.TotalDaily).
		SetPlan(planMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}

func (r *eventRepo) DomainAccuracy(ctx context.Context, learner, bank, domain string, lastN int) (float64, int, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.Learner(learner),
			attemptevent.Bank(bank),
			attemptevent.Domain(domain),
		).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query domain attempts: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(count), count, nil
}

func (r *eventRepo) LatestAttemptTime(ctx context.Context, learner, bank string) (time.Time, error) {
	e, err := r.client.AttemptEvent.Query().
		Where(attemptevent.Learner(learner), attemptevent.Bank(bank)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest attempt: %w", err)
	}
	return e.Timestamp, nil
}

func (r *eventRepo) DeleteAttempts(ctx context.Context, learner, bank string) error {
	_, err := r.client.AttemptEvent.Delete().
		Where(attemptevent.Learner(learner), attemptevent.Bank(bank)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete attempt events: %w", err)
	}
	return nil
}

// dailyToMap converts a daily plan to map[string]any for ent JSON storage.
func dailyToMap(d any) (map[string]any, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
