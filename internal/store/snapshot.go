package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GRCJP/assurit-test-simulator-sub000/ent"
	"github.com/GRCJP/assurit-test-simulator-sub000/ent/snapshot"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/engine"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	dataMap, err := stateToMap(snap.State)
	if err != nil {
		return fmt.Errorf("marshal snapshot state: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetLearner(snap.Learner).
		SetBank(snap.Bank).
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, learner, bank string) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.Learner(learner), snapshot.Bank(bank)).
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToSnapshot(s)
}

func (r *snapshotRepo) Prune(ctx context.Context, learner, bank string, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot.
	snapshots, err := r.client.Snapshot.Query().
		Where(snapshot.Learner(learner), snapshot.Bank(bank)).
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(
			snapshot.Learner(learner),
			snapshot.Bank(bank),
			snapshot.TimestampLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Delete(ctx context.Context, learner, bank string) error {
	_, err := r.client.Snapshot.Delete().
		Where(snapshot.Learner(learner), snapshot.Bank(bank)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	return nil
}

// stateToMap converts engine state to map[string]any for ent JSON storage.
func stateToMap(state engine.State) (map[string]any, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToSnapshot converts an ent Snapshot to a store Snapshot.
func entSnapshotToSnapshot(s *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var state engine.State
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot state: %w", err)
	}
	if err := engine.Validate(state); err != nil {
		return nil, fmt.Errorf("stored snapshot fails validation: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Learner:   s.Learner,
		Bank:      s.Bank,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		State:     state,
	}, nil
}
