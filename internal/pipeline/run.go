// Package pipeline provides the high-level orchestration for fit analysis and document tailoring.
package pipeline

import (
	"github.com/jonathan/tailor-engine/internal/fit"
	"github.com/jonathan/tailor-engine/internal/synthesis"
	"github.com/jonathan/tailor-engine/internal/types"
)

// Step names reported through progress events
const (
	StepAnalyze    = "analyze"
	StepSynthesize = "synthesize"
	StepRank       = "rank"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	JobID   string `json:"job_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Analyzer   *fit.Analyzer // nil uses fit.NewAnalyzer with default facets
	OnProgress ProgressCallback
}

// Result is the output of one profile/job run
type Result struct {
	Analysis  *types.FitAnalysis       `json:"analysis"`
	Documents []types.TailoredDocument `json:"documents"`
}

// CoverLetter returns the cover letter document, or nil if absent.
func (r *Result) CoverLetter() *types.TailoredDocument {
	for i := range r.Documents {
		if r.Documents[i].Type == types.DocumentCoverLetter {
			return &r.Documents[i]
		}
	}
	return nil
}

func emitProgress(opts *RunOptions, step, jobID, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			JobID:   jobID,
			Content: content,
		})
	}
}

func (o *RunOptions) analyzer() *fit.Analyzer {
	if o.Analyzer != nil {
		return o.Analyzer
	}
	return fit.NewAnalyzer(fit.DefaultFacetDefaults())
}

// Analyze scores one profile against one job.
func Analyze(profile *types.CandidateProfile, job *types.JobPosting, opts RunOptions) *types.FitAnalysis {
	analysis := opts.analyzer().Analyze(profile, job)
	emitProgress(&opts, StepAnalyze, jobID(job), "fit analysis complete", analysis)
	return analysis
}

// Run scores the profile against the job and synthesizes the four tailored documents.
func Run(profile *types.CandidateProfile, job *types.JobPosting, opts RunOptions) *Result {
	analysis := Analyze(profile, job, opts)
	docs := synthesis.Synthesize(profile, job, analysis)
	emitProgress(&opts, StepSynthesize, jobID(job), "documents synthesized", docs)
	return &Result{Analysis: analysis, Documents: docs}
}

func jobID(job *types.JobPosting) string {
	if job == nil {
		return ""
	}
	return job.ID
}
