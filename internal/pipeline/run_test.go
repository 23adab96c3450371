package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/tailor-engine/internal/types"
)

func sampleProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Skills: []string{"Python", "React", "Cloud", "Docker"},
		Experience: []types.ExperienceEntry{
			{Title: "Software Engineer", Company: "Acme", Description: "Built Python APIs serving 2 million users"},
		},
		Education: []types.EducationEntry{
			{Degree: "B.S. Computer Science", Institution: "State University"},
		},
	}
}

func job(id, title string, reqs ...string) *types.JobPosting {
	return &types.JobPosting{ID: id, Title: title, Company: "Initech", Requirements: reqs}
}

func TestRun_ProducesAnalysisAndDocuments(t *testing.T) {
	var steps []string
	opts := RunOptions{OnProgress: func(e ProgressEvent) { steps = append(steps, e.Step) }}

	result := Run(sampleProfile(), job("j1", "Software Engineer", "Python", "React"), opts)

	require.NotNil(t, result.Analysis)
	assert.Equal(t, 100, result.Analysis.Breakdown.Skills.Score)
	require.Len(t, result.Documents, len(types.DocumentTypes))
	assert.Equal(t, []string{StepAnalyze, StepSynthesize}, steps)

	cl := result.CoverLetter()
	require.NotNil(t, cl)
	assert.Equal(t, types.DocumentCoverLetter, cl.Type)
}

func TestResult_CoverLetterMissing(t *testing.T) {
	r := &Result{}
	assert.Nil(t, r.CoverLetter())
}

func TestRunBatch_OrdersByFit(t *testing.T) {
	jobs := []*types.JobPosting{
		job("none", "Zookeeper"),
		job("partial", "Platform Engineer", "Python", "Kubernetes", "Terraform", "Go"),
		job("perfect", "Backend Engineer", "Python", "React"),
	}

	ranked, err := RunBatch(context.Background(), sampleProfile(), jobs, 2, RunOptions{})
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "perfect", ranked[0].Job.ID)
	assert.Equal(t, "partial", ranked[1].Job.ID)
	assert.Equal(t, "none", ranked[2].Job.ID)
	assert.Equal(t, 2, ranked[0].Index)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Analysis.OverallScore, ranked[i].Analysis.OverallScore)
	}
}

func TestRunBatch_Empty(t *testing.T) {
	ranked, err := RunBatch(context.Background(), sampleProfile(), nil, 0, RunOptions{})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRunBatch_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatch(ctx, sampleProfile(), []*types.JobPosting{job("a", "A", "Python")}, 1, RunOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSortRanked_TieBreaks(t *testing.T) {
	a := func(overall, skills int) *types.FitAnalysis {
		return &types.FitAnalysis{OverallScore: overall, Breakdown: types.FitBreakdown{Skills: types.SkillsFacet{Score: skills}}}
	}
	results := []Ranked{
		{Index: 0, Job: job("1", "Beta"), Analysis: a(70, 50)},
		{Index: 1, Job: job("2", "Alpha"), Analysis: a(70, 50)},
		{Index: 2, Job: job("3", "Gamma"), Analysis: a(70, 80)},
		{Index: 3, Job: job("4", "Alpha"), Analysis: a(70, 50)},
		{Index: 4, Job: job("5", "Delta"), Analysis: a(90, 10)},
	}

	SortRanked(results)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Job.ID
	}
	assert.Equal(t, []string{"5", "3", "2", "4", "1"}, ids)
}
