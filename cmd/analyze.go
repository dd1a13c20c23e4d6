package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepnova/prepnova/internal/gateway"
	"github.com/prepnova/prepnova/internal/logging"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume against a job description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobDesc, _ := cmd.Flags().GetString("job")
		if jobFile, _ := cmd.Flags().GetString("job-file"); jobFile != "" {
			raw, err := os.ReadFile(jobFile)
			if err != nil {
				return fmt.Errorf("read job description: %w", err)
			}
			jobDesc = string(raw)
		}
		if strings.TrimSpace(jobDesc) == "" {
			return fmt.Errorf("a job description is required (--job or --job-file)")
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open resume: %w", err)
		}
		defer f.Close()

		cfg, err := gateway.ConfigFromEnv()
		if err != nil {
			return fmt.Errorf("gateway config: %w", err)
		}
		debug, _ := cmd.Flags().GetBool("debug")
		gw := gateway.NewClient(cfg, logging.New(debug))

		report := gw.AnalyzeResume(cmd.Context(), f, filepath.Base(args[0]), jobDesc)
		printAnalysis(cmd, report)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("job", "", "Job description text")
	analyzeCmd.Flags().String("job-file", "", "Path to a file containing the job description")
}

func printAnalysis(cmd *cobra.Command, r gateway.AnalysisReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Match score: %d%%\n\n", r.MatchScore)
	fmt.Fprintln(out, r.Summary)

	if len(r.MatchedSkills) > 0 {
		fmt.Fprintf(out, "\nMatched skills:\n")
		for _, s := range r.MatchedSkills {
			fmt.Fprintf(out, "  + %s\n", s)
		}
	}
	if len(r.MissingSkills) > 0 {
		fmt.Fprintf(out, "\nMissing skills:\n")
		for _, s := range r.MissingSkills {
			fmt.Fprintf(out, "  - %s\n", s)
		}
	}
	if len(r.Recommendations) > 0 {
		fmt.Fprintf(out, "\nRecommendations:\n")
		for _, s := range r.Recommendations {
			fmt.Fprintf(out, "  • %s\n", s)
		}
	}
}
