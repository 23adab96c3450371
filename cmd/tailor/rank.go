package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/tailor-engine/internal/fit"
	"github.com/jonathan/tailor-engine/internal/ingestion"
	"github.com/jonathan/tailor-engine/internal/observability"
	"github.com/jonathan/tailor-engine/internal/pipeline"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank job postings by fit for one profile",
	Long:  "Analyzes the profile against every job concurrently and lists the jobs best fit first.",
	RunE:  runRank,
}

var (
	rankProfile string
	rankJobs    []string
	rankWorkers int
	rankOut     string
)

// rankEntry is one row of the ranking output
type rankEntry struct {
	Rank         int      `json:"rank"`
	JobID        string   `json:"job_id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	OverallScore int      `json:"overall_score"`
	SkillsScore  int      `json:"skills_score"`
	Missing      []string `json:"missing"`
}

func init() {
	rankCmd.Flags().StringVarP(&rankProfile, "profile", "p", "", "Path to candidate profile JSON file")
	rankCmd.Flags().StringSliceVarP(&rankJobs, "jobs", "j", nil, "Paths to job posting JSON files (repeatable or comma-separated)")
	rankCmd.Flags().IntVarP(&rankWorkers, "workers", "w", 0, "Concurrent analyses (default: 4)")
	rankCmd.Flags().StringVarP(&rankOut, "out", "o", "", "Path to output ranking JSON file (default: stdout)")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = rankProfile
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = rankJobs
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = rankWorkers
	}
	if cfg, err = finalizeSettings(cfg); err != nil {
		return err
	}
	if err := requireInput(cfg.Profile, "profile"); err != nil {
		return err
	}
	if len(cfg.Jobs) == 0 {
		return fmt.Errorf("--jobs must list at least one job posting (flag or config file)")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	profile, err := ingestion.LoadProfile(cfg.Profile)
	if err != nil {
		return err
	}
	jobs, err := ingestion.LoadJobs(cfg.Jobs)
	if err != nil {
		return err
	}

	log.Debug("ranking jobs", zap.Int("jobs", len(jobs)), zap.Int("workers", cfg.Workers))
	ranked, err := pipeline.RunBatch(cmd.Context(), profile, jobs, cfg.Workers, pipeline.RunOptions{
		Analyzer: fit.NewAnalyzer(cfg.FacetDefaults()),
	})
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRanking(ranked)
	}

	entries := make([]rankEntry, len(ranked))
	for i, r := range ranked {
		entries[i] = rankEntry{
			Rank:         i + 1,
			JobID:        r.Job.ID,
			Title:        r.Job.Title,
			Company:      r.Job.Company,
			OverallScore: r.Analysis.OverallScore,
			SkillsScore:  r.Analysis.Breakdown.Skills.Score,
			Missing:      r.Analysis.Breakdown.Skills.Missing,
		}
	}
	return writeJSON(cmd.OutOrStdout(), rankOut, entries)
}
