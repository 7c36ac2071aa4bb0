package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/catalog"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/engine"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/store"
)

// snapshotKeep bounds snapshot history per (learner, bank) pair.
const snapshotKeep = 20

// appSession bundles the open store, loaded bank and hydrated engine for
// one command invocation.
type appSession struct {
	st      *store.Store
	cat     *catalog.Catalog
	eng     *engine.Engine
	learner string
	bank    string
	nextSeq int64
}

func learnerBank(cmd *cobra.Command) (string, string) {
	learner, _ := cmd.Flags().GetString("learner")
	bank, _ := cmd.Flags().GetString("bank")
	if learner == "" {
		learner = "default"
	}
	if bank == "" {
		bank = "default"
	}
	return learner, bank
}

// bankPath is where an imported bank lives, next to the database.
func bankPath(dbPath, bank string) string {
	return filepath.Join(filepath.Dir(dbPath), "banks", bank+".json")
}

// loadBank resolves the question bank: --bank-file flag, then ASSURIT_BANK,
// then the copy stored by a previous import.
func loadBank(cmd *cobra.Command, dbPath, bank string) (*catalog.Catalog, error) {
	if p, _ := cmd.Flags().GetString("bank-file"); p != "" {
		return catalog.LoadFile(p)
	}
	if p := os.Getenv("ASSURIT_BANK"); p != "" {
		return catalog.LoadFile(p)
	}

	p := bankPath(dbPath, bank)
	if _, err := os.Stat(p); err != nil {
		return nil, fmt.Errorf("no bank %q imported yet; run: assurit import <bank.json>", bank)
	}
	return catalog.LoadFile(p)
}

// openSession opens the store, loads the bank and hydrates the engine from
// the latest snapshot for the (learner, bank) pair.
func openSession(cmd *cobra.Command) (*appSession, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	learner, bank := learnerBank(cmd)

	cat, err := loadBank(cmd, dbPath, bank)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	snap, err := st.SnapshotRepo().Latest(cmd.Context(), learner, bank)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	state := engine.NewState()
	nextSeq := int64(1)
	if snap != nil {
		state = snap.State
		nextSeq = snap.Sequence + 1
	}

	eng, err := engine.New(cat, state)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("hydrate engine: %w", err)
	}

	return &appSession{
		st:      st,
		cat:     cat,
		eng:     eng,
		learner: learner,
		bank:    bank,
		nextSeq: nextSeq,
	}, nil
}

func (s *appSession) Close() {
	s.st.Close()
}

// Save persists the engine state as a new snapshot and prunes old ones.
func (s *appSession) Save(ctx context.Context) error {
	err := s.st.SnapshotRepo().Save(ctx, &store.Snapshot{
		Learner:   s.learner,
		Bank:      s.bank,
		Sequence:  s.nextSeq,
		Timestamp: time.Now().UTC(),
		State:     s.eng.Export(),
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	s.nextSeq++
	if err := s.st.SnapshotRepo().Prune(ctx, s.learner, s.bank, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
