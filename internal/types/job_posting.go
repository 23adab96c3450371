// Package types provides type definitions for structured data used throughout the tailoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// JobPosting represents a job posting supplied by the job source
type JobPosting struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Company         string       `json:"company"`
	Location        string       `json:"location,omitempty"`
	EmploymentType  string       `json:"employment_type,omitempty"`
	Remote          bool         `json:"remote,omitempty"`
	Salary          *SalaryRange `json:"salary,omitempty"`
	Description     string       `json:"description,omitempty"`
	Requirements    []string     `json:"requirements"`
	NiceToHaves     []string     `json:"nice_to_haves,omitempty"`
	Benefits        []string     `json:"benefits,omitempty"`
	Industry        string       `json:"industry,omitempty"`
	CompanySize     string       `json:"company_size,omitempty"`
	ExperienceLevel string       `json:"experience_level,omitempty"`
}

// SalaryRange represents an optional compensation band
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency,omitempty"`
}

// FullText returns the title, description, requirements and nice-to-haves joined as one block of text.
func (j *JobPosting) FullText() string {
	parts := make([]string, 0, 2+len(j.Requirements)+len(j.NiceToHaves))
	parts = append(parts, j.Title, j.Description)
	parts = append(parts, j.Requirements...)
	parts = append(parts, j.NiceToHaves...)
	return strings.Join(parts, "\n")
}
