package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/catalog"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/engine"
	"github.com/GRCJP/assurit-test-simulator-sub000/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <bank.json>",
	Short: "Validate and import a question bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read bank file: %w", err)
		}
		cat, err := catalog.Load(data)
		if err != nil {
			return err
		}
		if cat.Len() == 0 {
			return fmt.Errorf("bank %q has no valid questions", cat.Bank)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		// Keep a copy next to the database so later commands find it by
		// bank id alone.
		dest := bankPath(dbPath, cat.Bank)
		if err := store.EnsureDir(dest); err != nil {
			return fmt.Errorf("create bank dir: %w", err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("store bank copy: %w", err)
		}

		learner, _ := learnerBank(cmd)

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(ctx, learner, cat.Bank)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		state := engine.NewState()
		nextSeq := int64(1)
		if snap != nil {
			state = snap.State
			nextSeq = snap.Sequence + 1
		}

		// Hydrating seeds mastery records for any new domains.
		eng, err := engine.New(cat, state)
		if err != nil {
			return fmt.Errorf("hydrate engine: %w", err)
		}
		err = st.SnapshotRepo().Save(ctx, &store.Snapshot{
			Learner:   learner,
			Bank:      cat.Bank,
			Sequence:  nextSeq,
			Timestamp: time.Now().UTC(),
			State:     eng.Export(),
		})
		if err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}

		fmt.Printf("Imported bank %q: %d questions across %d domains\n",
			cat.Bank, cat.Len(), len(cat.Domains()))
		for _, d := range cat.Domains() {
			fmt.Printf("  - %s\n", d)
		}
		return nil
	},
}
