package store

import (
	"context"
	"time"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/engine"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/plan"
)

// Snapshot is a persisted copy of the engine state for one (learner, bank)
// pair.
type Snapshot struct {
	ID        int
	Learner   string
	Bank      string
	Sequence  int64
	Timestamp time.Time
	State     engine.State
}

// SnapshotRepo stores and restores engine state snapshots.
type SnapshotRepo interface {
	// Save persists a snapshot.
	Save(ctx context.Context, snap *Snapshot) error
	// Latest returns the most recent snapshot for the pair, or nil when
	// the pair has no history yet.
	Latest(ctx context.Context, learner, bank string) (*Snapshot, error)
	// Prune keeps the most recent keep snapshots for the pair and deletes
	// the rest.
	Prune(ctx context.Context, learner, bank string, keep int) error
	// Delete removes every snapshot for the pair.
	Delete(ctx context.Context, learner, bank string) error
}

// AttemptEventData is one answered question for the append-only log.
type AttemptEventData struct {
	Learner    string
	Bank       string
	SessionID  string
	QuestionID string
	Domain     string
	Correct    bool
	TimeMs     int
}

// PlanEventData is one generated daily plan for the history log.
type PlanEventData struct {
	Learner string
	Bank    string
	Daily   plan.Daily
}

// EventRepo appends to and queries the event log.
type EventRepo interface {
	AppendAttempt(ctx context.Context, data AttemptEventData) error
	AppendPlan(ctx context.Context, data PlanEventData) error
	// DomainAccuracy returns the accuracy over the last n attempts in a
	// domain and how many attempts were found.
	DomainAccuracy(ctx context.Context, learner, bank, domain string, lastN int) (float64, int, error)
	// LatestAttemptTime returns the time of the most recent attempt for
	// the pair, zero when none exist.
	LatestAttemptTime(ctx context.Context, learner, bank string) (time.Time, error)
	// DeleteAttempts removes every attempt event for the pair.
	DeleteAttempts(ctx context.Context, learner, bank string) error
}
