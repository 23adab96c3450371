// Package types provides type definitions for structured data used throughout the tailoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// FitAnalysis is the explained fit score of one candidate against one job posting.
// It is never mutated after creation; re-analysis produces a new value with a new audit id.
type FitAnalysis struct {
	OverallScore    int            `json:"overall_score"`
	Breakdown       FitBreakdown   `json:"breakdown"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []string       `json:"recommendations"`
	BiasIndicators  BiasIndicators `json:"bias_indicators"`
	AuditTrail      AuditTrail     `json:"audit_trail"`
}

// FitBreakdown holds the per-facet scores and evidence
type FitBreakdown struct {
	Skills     SkillsFacet     `json:"skills"`
	Experience ExperienceFacet `json:"experience"`
	Education  EducationFacet  `json:"education"`
	Location   LocationFacet   `json:"location"`
	Salary     SalaryFacet     `json:"salary"`
}

// SkillsFacet is the skills sub-score with matched and missing evidence
type SkillsFacet struct {
	Score        int      `json:"score"`
	Matched      []string `json:"matched"`
	Missing      []string `json:"missing"`       // top 3, in requirement order
	MissingTotal int      `json:"missing_total"` // before truncation
	NiceToHave   []string `json:"nice_to_have"`
}

// ExperienceFacet is the experience sub-score
type ExperienceFacet struct {
	Score          int      `json:"score"`
	EntryCount     int      `json:"entry_count"`
	Relevant       bool     `json:"relevant"`
	RelevantTitles []string `json:"relevant_titles"`
}

// EducationFacet is the education sub-score
type EducationFacet struct {
	Score    int      `json:"score"`
	Relevant bool     `json:"relevant"`
	Degrees  []string `json:"degrees"`
}

// LocationFacet is the location sub-score
type LocationFacet struct {
	Score    int    `json:"score"`
	Location string `json:"location,omitempty"`
	Remote   bool   `json:"remote"`
	Note     string `json:"note"`
}

// SalaryFacet is the compensation sub-score
type SalaryFacet struct {
	Score int          `json:"score"`
	Range *SalaryRange `json:"range,omitempty"`
	Note  string       `json:"note"`
}

// BiasIndicators flags potentially exclusionary language in the job posting
type BiasIndicators struct {
	Detected   bool     `json:"detected"`
	Factors    []string `json:"factors"`
	Mitigation string   `json:"mitigation"`
}

// AuditTrail identifies one analysis. Hash is a content hash of the inputs and scores.
type AuditTrail struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Hash      string    `json:"hash"`
	Immutable bool      `json:"immutable"`
}
