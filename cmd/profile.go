package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepnova/prepnova/internal/progress"
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current pilot profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sess := session.New(store.NewAdapter(st.SlotRepo(), nil), nil)
		cur := sess.Initialize(cmd.Context())
		p := cur.Profile
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s %s — %s\n", p.AvatarGlyph, p.DisplayName, p.Title)
		fmt.Fprintf(out, "Level %d  (%d/%d XP)\n",
			p.Level, progress.XPIntoLevel(p.XP), progress.XPToNextLevel(p.XP))
		fmt.Fprintf(out, "Trials: %d   Zones: %d   Trophies: %d\n",
			len(p.History), p.ZonesExplored, len(p.Achievements))
		fmt.Fprintf(out, "Signed in: %v\n", cur.Authenticated)

		if len(p.Achievements) > 0 {
			fmt.Fprintln(out, "\nTrophies:")
			for _, a := range p.Achievements {
				fmt.Fprintf(out, "  %s %s (%s)\n", a.Icon, a.Name, a.GrantedAt)
			}
		}
		return nil
	},
}
