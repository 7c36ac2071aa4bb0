package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GRCJP/assurit-test-simulator-sub000/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all progress for a learner and bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		learner, bank := learnerBank(cmd)

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("This deletes all progress for learner %q on bank %q. Type 'yes' to continue: ", learner, bank)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.SnapshotRepo().Delete(ctx, learner, bank); err != nil {
			return err
		}
		if err := st.EventRepo().DeleteAttempts(ctx, learner, bank); err != nil {
			return err
		}

		fmt.Println("Progress wiped.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
