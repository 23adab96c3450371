// Package types provides type definitions for structured data used throughout the tailoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Placeholder identity values used when the imported profile is incomplete
const (
	PlaceholderName  = "Your Name"
	PlaceholderEmail = "your.email@example.com"
)

// CandidateProfile represents a parsed candidate profile. It is read-only for the engine.
type CandidateProfile struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications []string          `json:"certifications,omitempty"`
}

// ExperienceEntry represents a single role in the candidate's work history
type ExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// EducationEntry represents a degree or program
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
}

// WithDefaults returns a copy of the profile with placeholder identity fields filled in
// and skill/certification sets deduplicated. The receiver is not modified.
func (p CandidateProfile) WithDefaults() CandidateProfile {
	out := p
	if strings.TrimSpace(out.Name) == "" {
		out.Name = PlaceholderName
	}
	if strings.TrimSpace(out.Email) == "" {
		out.Email = PlaceholderEmail
	}
	out.Skills = UniqueTerms(p.Skills)
	out.Certifications = UniqueTerms(p.Certifications)

	out.Experience = make([]ExperienceEntry, len(p.Experience))
	for i, e := range p.Experience {
		e.Skills = UniqueTerms(e.Skills)
		out.Experience[i] = e
	}
	out.Education = append([]EducationEntry(nil), p.Education...)
	return out
}

// UniqueTerms trims terms and removes blanks and case-insensitive duplicates, keeping first occurrences in order.
// It never returns nil.
func UniqueTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
