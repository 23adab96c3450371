// Package types provides type definitions for structured data used throughout the tailoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// DocumentType identifies one of the four synthesized artifact kinds
type DocumentType string

// Document types
const (
	DocumentResume             DocumentType = "resume"
	DocumentCoverLetter        DocumentType = "cover_letter"
	DocumentStatementOfPurpose DocumentType = "statement_of_purpose"
	DocumentInterviewGuide     DocumentType = "interview_guide"
)

// DocumentTypes lists all document types in synthesis order
var DocumentTypes = []DocumentType{
	DocumentResume,
	DocumentCoverLetter,
	DocumentStatementOfPurpose,
	DocumentInterviewGuide,
}

// DisplayName returns a human-readable label for the document type
func (t DocumentType) DisplayName() string {
	switch t {
	case DocumentResume:
		return "Resume"
	case DocumentCoverLetter:
		return "Cover Letter"
	case DocumentStatementOfPurpose:
		return "Statement of Purpose"
	case DocumentInterviewGuide:
		return "Interview Guide"
	default:
		return string(t)
	}
}

// ParseDocumentType parses a document type string
func ParseDocumentType(s string) (DocumentType, error) {
	for _, t := range DocumentTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown document type: %q", s)
}

// TailoredDocument is one synthesized application artifact
type TailoredDocument struct {
	ID                string          `json:"id"`
	Type              DocumentType    `json:"type"`
	Title             string          `json:"title"`
	Content           string          `json:"content"`
	Highlights        []string        `json:"highlights"`
	Keywords          []string        `json:"keywords"`
	ATSScore          int             `json:"ats_score"`
	Template          string          `json:"template"`
	Metrics           DocumentMetrics `json:"metrics"`
	AISuggestions     []string        `json:"ai_suggestions"`
	AllowSubmission   bool            `json:"allow_submission,omitempty"`
	IndustryOptimized bool            `json:"industry_optimized"`
	GeneratedAt       time.Time       `json:"generated_at"`
}

// DocumentMetrics holds the computed quality metrics of a document
type DocumentMetrics struct {
	ReadabilityScore       int     `json:"readability_score"`
	KeywordDensity         float64 `json:"keyword_density"`
	ActionVerbCount        int     `json:"action_verb_count"`
	QuantifiedAchievements int     `json:"quantified_achievements"`
}
