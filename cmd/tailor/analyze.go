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

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a candidate profile against a job posting",
	Long:  "Computes the FitAnalysis of a profile against a job: facet scores, strengths, weaknesses, recommendations, bias indicators and an audit trail.",
	RunE:  runAnalyze,
}

var (
	analyzeProfile string
	analyzeJob     string
	analyzeOut     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "Path to candidate profile JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to output FitAnalysis JSON file (default: stdout)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = analyzeProfile
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cfg, err = finalizeSettings(cfg); err != nil {
		return err
	}
	if err := requireInput(cfg.Profile, "profile"); err != nil {
		return err
	}
	if err := requireInput(cfg.Job, "job"); err != nil {
		return err
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
	job, err := ingestion.LoadJob(cfg.Job)
	if err != nil {
		return err
	}
	log.Debug("inputs loaded", zap.String("profile", cfg.Profile), zap.String("job", cfg.Job))

	analysis := pipeline.Analyze(profile, job, pipeline.RunOptions{Analyzer: fit.NewAnalyzer(cfg.FacetDefaults())})

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintFitAnalysis(analysis)
	}

	if err := writeJSON(cmd.OutOrStdout(), analyzeOut, analysis); err != nil {
		return err
	}
	if analyzeOut != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Fit score %d/100 written to %s\n", analysis.OverallScore, analyzeOut)
	}
	return nil
}
