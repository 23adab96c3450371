package fit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/tailor-engine/internal/types"
)

// hashInput is the canonical content that the audit hash covers
type hashInput struct {
	Profile      *types.CandidateProfile `json:"profile"`
	Job          *types.JobPosting       `json:"job"`
	OverallScore int                     `json:"overall_score"`
	Breakdown    types.FitBreakdown      `json:"breakdown"`
}

// auditTrail builds a fresh audit record. The id and timestamp differ per call; the hash depends only on content.
func (a *Analyzer) auditTrail(profile *types.CandidateProfile, job *types.JobPosting, analysis *types.FitAnalysis) types.AuditTrail {
	now := a.Now
	if now == nil {
		now = time.Now
	}
	newID := a.NewID
	if newID == nil {
		newID = uuid.New
	}

	return types.AuditTrail{
		ID:        newID().String(),
		Timestamp: now().UTC(),
		Version:   AuditVersion,
		Hash:      ContentHash(profile, job, analysis),
		Immutable: true,
	}
}

// ContentHash returns the hex SHA-256 of the profile, job and scores of an analysis.
func ContentHash(profile *types.CandidateProfile, job *types.JobPosting, analysis *types.FitAnalysis) string {
	// only strings, ints and bools: marshaling cannot fail
	data, _ := json.Marshal(hashInput{
		Profile:      profile,
		Job:          job,
		OverallScore: analysis.OverallScore,
		Breakdown:    analysis.Breakdown,
	})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
