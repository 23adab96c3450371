package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/tailor-engine/internal/audit"
	"github.com/jonathan/tailor-engine/internal/fit"
	"github.com/jonathan/tailor-engine/internal/ingestion"
	"github.com/jonathan/tailor-engine/internal/pipeline"
	"github.com/jonathan/tailor-engine/internal/suggestions"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Sign and submit the tailored cover letter",
	Long: `Generates the cover letter for the job, optionally splices suggestions into it, appends the signature
and records the submission in the configured audit sink (noop, sqlite or postgres).`,
	RunE: runSubmit,
}

var (
	submitProfile        string
	submitJob            string
	submitSignature      string
	submitSuggestions    []string
	submitAllSuggestions bool
	submitActor          string
)

func init() {
	submitCmd.Flags().StringVarP(&submitProfile, "profile", "p", "", "Path to candidate profile JSON file")
	submitCmd.Flags().StringVarP(&submitJob, "job", "j", "", "Path to job posting JSON file")
	submitCmd.Flags().StringVarP(&submitSignature, "signature", "s", "", "Signature appended to the letter (default: config signature)")
	submitCmd.Flags().StringArrayVar(&submitSuggestions, "suggestion", nil, "Suggestion text to apply (repeatable)")
	submitCmd.Flags().BoolVar(&submitAllSuggestions, "all-suggestions", false, "Apply every offered suggestion")
	submitCmd.Flags().StringVar(&submitActor, "actor", "", "Actor recorded on the submission (default: TAILOR_ACTOR_ID or config)")

	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = submitProfile
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = submitJob
	}
	if cmd.Flags().Changed("signature") {
		cfg.Signature = submitSignature
	}
	if cmd.Flags().Changed("actor") {
		cfg.ActorID = submitActor
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
	if submitAllSuggestions && len(submitSuggestions) > 0 {
		return fmt.Errorf("--suggestion and --all-suggestions are mutually exclusive")
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

	result := pipeline.Run(profile, job, pipeline.RunOptions{Analyzer: fit.NewAnalyzer(cfg.FacetDefaults())})
	letter := result.CoverLetter()
	if letter == nil {
		return fmt.Errorf("no cover letter was generated")
	}

	session := suggestions.NewSession(letter, log)
	switch {
	case submitAllSuggestions:
		if _, err := session.ApplyAll(nil); err != nil {
			return err
		}
	case len(submitSuggestions) > 0:
		if _, err := session.ApplyAll(submitSuggestions); err != nil {
			return err
		}
	}
	session.SetSignature(cfg.Signature)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sink, closeSink, err := audit.Open(ctx, cfg.AuditOptions())
	if err != nil {
		return fmt.Errorf("failed to open audit sink: %w", err)
	}
	defer func() {
		if err := closeSink(); err != nil {
			log.Warn("failed to close audit sink", zap.Error(err))
		}
	}()

	snap, err := session.Submit(ctx, sink, suggestions.SubmitRequest{
		TenantID: cfg.TenantID,
		ActorID:  cfg.ActorID,
		JobID:    job.ID,
		JobTitle: job.Title,
		Company:  job.Company,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), snap.State.CurrentDraft)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Submitted cover letter %s for %s at %s (%d suggestions integrated, sink: %s)\n",
		snap.DocumentID, job.Title, job.Company, len(snap.State.AppliedSuggestions), cfg.AuditSink)
	return nil
}
