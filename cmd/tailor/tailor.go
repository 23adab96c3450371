package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/tailor-engine/internal/export"
	"github.com/jonathan/tailor-engine/internal/fit"
	"github.com/jonathan/tailor-engine/internal/ingestion"
	"github.com/jonathan/tailor-engine/internal/logger"
	"github.com/jonathan/tailor-engine/internal/observability"
	"github.com/jonathan/tailor-engine/internal/pipeline"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Generate the tailored documents for a job",
	Long: `Scores the profile against the job and writes the resume, cover letter, statement of purpose and
interview guide as text files, plus the fit analysis as analysis.json.`,
	RunE: runTailor,
}

var (
	tailorProfile string
	tailorJob     string
	tailorOutDir  string
	tailorFormat  string
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorProfile, "profile", "p", "", "Path to candidate profile JSON file")
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job posting JSON file")
	tailorCmd.Flags().StringVarP(&tailorOutDir, "out-dir", "o", "", "Directory for exported documents (default: out)")
	tailorCmd.Flags().StringVar(&tailorFormat, "format", "", "Export file extension (default: txt)")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = tailorProfile
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = tailorJob
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = tailorOutDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = tailorFormat
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

	opts := pipeline.RunOptions{
		Analyzer: fit.NewAnalyzer(cfg.FacetDefaults()),
		OnProgress: func(e pipeline.ProgressEvent) {
			log.Debug(e.Message, zap.String("step", e.Step), zap.String(logger.FieldJobID, e.JobID))
		},
	}
	result := pipeline.Run(profile, job, opts)

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintFitAnalysis(result.Analysis)
		printer.PrintDocuments(result.Documents)
	}

	if err := writeJSON(cmd.OutOrStdout(), filepath.Join(cfg.OutDir, "analysis.json"), result.Analysis); err != nil {
		return err
	}
	for i := range result.Documents {
		doc := &result.Documents[i]
		path := filepath.Join(cfg.OutDir, export.FileName(doc, cfg.Format))
		if err := export.WriteFile(path, doc, export.Options{}); err != nil {
			return err
		}
		log.Debug("document exported", zap.String("type", string(doc.Type)), zap.String("path", path))
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Fit score %d/100; wrote %d documents to %s\n",
		result.Analysis.OverallScore, len(result.Documents), cfg.OutDir)
	return nil
}
