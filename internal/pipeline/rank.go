package pipeline

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/tailor-engine/internal/types"
)

// DefaultWorkers is the batch concurrency used when none is given
const DefaultWorkers = 4

// Ranked pairs a job with its fit analysis. Index is the job's position in the input.
type Ranked struct {
	Index    int                `json:"index"`
	Job      *types.JobPosting  `json:"job"`
	Analysis *types.FitAnalysis `json:"analysis"`
}

// RunBatch analyzes one profile against many jobs concurrently and returns them
// best fit first. Ties break on skills score, then title, then input order.
func RunBatch(ctx context.Context, profile *types.CandidateProfile, jobs []*types.JobPosting, workers int, opts RunOptions) ([]Ranked, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]Ranked, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("failed to analyze job %d: %w", i, err)
			}
			// each goroutine owns its slot
			results[i] = Ranked{Index: i, Job: job, Analysis: Analyze(profile, job, opts)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	SortRanked(results)
	emitProgress(&opts, StepRank, "", fmt.Sprintf("ranked %d jobs", len(results)), nil)
	return results, nil
}

// SortRanked orders results by overall score desc, skills score desc, title asc, then index.
func SortRanked(results []Ranked) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Analysis.OverallScore != b.Analysis.OverallScore {
			return a.Analysis.OverallScore > b.Analysis.OverallScore
		}
		if a.Analysis.Breakdown.Skills.Score != b.Analysis.Breakdown.Skills.Score {
			return a.Analysis.Breakdown.Skills.Score > b.Analysis.Breakdown.Skills.Score
		}
		if at, bt := title(a.Job), title(b.Job); at != bt {
			return at < bt
		}
		return a.Index < b.Index
	})
}

func title(job *types.JobPosting) string {
	if job == nil {
		return ""
	}
	return job.Title
}
