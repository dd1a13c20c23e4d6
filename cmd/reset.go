package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all local progress and sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "This erases all local progress. Re-run with --yes to confirm.")
			return nil
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

		repo := st.SlotRepo()
		ctx := cmd.Context()
		if err := repo.Clear(ctx, session.UserSlot); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		if err := repo.Clear(ctx, session.AuthSlot); err != nil {
			return fmt.Errorf("clear auth: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Local progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
