package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/engine"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/plan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestSequenceCounter_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prev := int64(-1)
	for i := 0; i < 10; i++ {
		seq, err := s.seq.Next(ctx)
		require.NoError(t, err)
		require.Greater(t, seq, prev, "sequence must strictly increase")
		prev = seq
	}
}

func TestSnapshotRepo_SaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SnapshotRepo()

	state := engine.NewState()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.Save(ctx, &Snapshot{
		Learner:   "alice",
		Bank:      "cmmc-l2",
		Sequence:  1,
		Timestamp: now,
		State:     state,
	}))
	require.NoError(t, repo.Save(ctx, &Snapshot{
		Learner:   "alice",
		Bank:      "cmmc-l2",
		Sequence:  2,
		Timestamp: now.Add(time.Minute),
		State:     state,
	}))

	got, err := repo.Latest(ctx, "alice", "cmmc-l2")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, int64(2), got.Sequence)
	require.Equal(t, engine.StateVersion, got.State.Version)
}

func TestSnapshotRepo_PairIsolation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SnapshotRepo()

	require.NoError(t, repo.Save(ctx, &Snapshot{
		Learner:   "alice",
		Bank:      "cmmc-l2",
		Sequence:  1,
		Timestamp: time.Now(),
		State:     engine.NewState(),
	}))

	got, err := repo.Latest(ctx, "alice", "other-bank")
	require.NoError(t, err)
	require.Nil(t, got, "state must never cross banks")

	got, err = repo.Latest(ctx, "bob", "cmmc-l2")
	require.NoError(t, err)
	require.Nil(t, got, "state must never cross learners")
}

func TestSnapshotRepo_Delete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SnapshotRepo()

	require.NoError(t, repo.Save(ctx, &Snapshot{
		Learner:   "alice",
		Bank:      "cmmc-l2",
		Sequence:  1,
		Timestamp: time.Now(),
		State:     engine.NewState(),
	}))
	require.NoError(t, repo.Delete(ctx, "alice", "cmmc-l2"))

	got, err := repo.Latest(ctx, "alice", "cmmc-l2")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestEventRepo_AttemptsAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	results := []bool{true, true, false, true}
	for _, correct := range results {
		require.NoError(t, repo.AppendAttempt(ctx, AttemptEventData{
			Learner:    "alice",
			Bank:       "cmmc-l2",
			SessionID:  "s1",
			QuestionID: "q1",
			Domain:     "access control",
			Correct:    correct,
			TimeMs:     4200,
		}))
	}

	acc, count, err := repo.DomainAccuracy(ctx, "alice", "cmmc-l2", "access control", 10)
	require.NoError(t, err)
	require.Equal(t, 4, count)
	require.InDelta(t, 0.75, acc, 0.0001)

	latest, err := repo.LatestAttemptTime(ctx, "alice", "cmmc-l2")
	require.NoError(t, err)
	require.False(t, latest.IsZero())

	_, count, err = repo.DomainAccuracy(ctx, "bob", "cmmc-l2", "access control", 10)
	require.NoError(t, err)
	require.Zero(t, count, "events must not cross learners")
}

func TestEventRepo_AppendPlan(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	daily := plan.GenerateDaily(plan.Config{MinutesPerDay: 20, SecondsPerQuestion: 120},
		map[string]float64{"audit": 0.4}, 0, time.Now())

	require.NoError(t, repo.AppendPlan(ctx, PlanEventData{
		Learner: "alice",
		Bank:    "cmmc-l2",
		Daily:   daily,
	}))
}
