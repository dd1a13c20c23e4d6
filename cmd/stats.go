package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepnova/prepnova/internal/gateway"
	"github.com/prepnova/prepnova/internal/logging"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate performance analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := gateway.ConfigFromEnv()
		if err != nil {
			return fmt.Errorf("gateway config: %w", err)
		}
		debug, _ := cmd.Flags().GetBool("debug")
		gw := gateway.NewClient(cfg, logging.New(debug))

		r := gw.Analytics(cmd.Context())
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Trials completed: %d\n", r.TrialsCompleted)
		fmt.Fprintf(out, "Average score:    %.0f%%\n", r.AverageScore*100)
		fmt.Fprintf(out, "XP earned:        %d\n", r.XPEarned)
		fmt.Fprintf(out, "Streak:           %d days\n", r.StreakDays)

		if len(r.Topics) > 0 {
			fmt.Fprintln(out, "\nBy topic:")
			for _, t := range r.Topics {
				fmt.Fprintf(out, "  %-24s %3.0f%%  (%d attempts)\n", t.Topic, t.Accuracy*100, t.Attempts)
			}
		}
		return nil
	},
}
