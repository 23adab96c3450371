// Package fit scores how well a candidate profile fits a job posting and explains the score.
package fit

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/tailor-engine/internal/matching"
	"github.com/jonathan/tailor-engine/internal/types"
)

// Facet weights for the overall score
const (
	skillsWeight     = 0.4
	experienceWeight = 0.3
	educationWeight  = 0.2
	// baseBonus is added to every overall score
	baseBonus = 10.0
)

const (
	experiencePerEntry      = 15
	relevantExperienceBonus = 20
	relevantEducation       = 90
	otherEducation          = 70
	maxMissingShown         = 3

	// AuditVersion is the version stamped on every audit trail
	AuditVersion = "1.0.0"
)

// FacetDefaults are the static location and salary facet values
type FacetDefaults struct {
	LocationScore int
	LocationNote  string
	SalaryScore   int
	SalaryNote    string
}

// DefaultFacetDefaults returns full location and salary scores with neutral notes
func DefaultFacetDefaults() FacetDefaults {
	return FacetDefaults{
		LocationScore: 100,
		LocationNote:  "Location assumed compatible",
		SalaryScore:   100,
		SalaryNote:    "Compensation assumed within expectations",
	}
}

// Analyzer computes FitAnalysis values
type Analyzer struct {
	Defaults FacetDefaults
	// Now returns the audit timestamp; defaults to time.Now
	Now func() time.Time
	// NewID returns the audit id; defaults to uuid.New
	NewID func() uuid.UUID
}

// NewAnalyzer creates an analyzer with the given facet defaults
func NewAnalyzer(defaults FacetDefaults) *Analyzer {
	return &Analyzer{
		Defaults: defaults,
		Now:      time.Now,
		NewID:    uuid.New,
	}
}

// Analyze scores a profile against a job. It never fails: missing optional data degrades to empty sets.
func (a *Analyzer) Analyze(profile *types.CandidateProfile, job *types.JobPosting) *types.FitAnalysis {
	if profile == nil {
		profile = &types.CandidateProfile{}
	}
	if job == nil {
		job = &types.JobPosting{}
	}

	skills := scoreSkills(profile, job)
	experience := scoreExperience(profile, job)
	education := scoreEducation(profile, job)

	breakdown := types.FitBreakdown{
		Skills:     skills,
		Experience: experience,
		Education:  education,
		Location: types.LocationFacet{
			Score:    clampScore(a.Defaults.LocationScore),
			Location: job.Location,
			Remote:   job.Remote,
			Note:     a.Defaults.LocationNote,
		},
		Salary: types.SalaryFacet{
			Score: clampScore(a.Defaults.SalaryScore),
			Range: job.Salary,
			Note:  a.Defaults.SalaryNote,
		},
	}

	overall := float64(skills.Score)*skillsWeight +
		float64(experience.Score)*experienceWeight +
		float64(education.Score)*educationWeight +
		baseBonus

	analysis := &types.FitAnalysis{
		OverallScore:    clampScore(int(math.Round(overall))),
		Breakdown:       breakdown,
		Strengths:       buildStrengths(profile, breakdown),
		Weaknesses:      buildWeaknesses(breakdown),
		Recommendations: buildRecommendations(job, breakdown),
		BiasIndicators:  detectBias(job),
	}
	analysis.AuditTrail = a.auditTrail(profile, job, analysis)

	return analysis
}

// scoreSkills computes the skills facet
func scoreSkills(profile *types.CandidateProfile, job *types.JobPosting) types.SkillsFacet {
	matched := matching.FindMatches(profile.Skills, job.Requirements)
	missing := matching.FindGaps(job.Requirements, profile.Skills)
	niceToHave := matching.FindMatches(profile.Skills, job.NiceToHaves)

	denominator := len(job.Requirements)
	if denominator < 1 {
		denominator = 1
	}
	score := clampScore(int(math.Round(100 * float64(len(matched)) / float64(denominator))))

	shown := missing
	if len(shown) > maxMissingShown {
		shown = shown[:maxMissingShown]
	}

	return types.SkillsFacet{
		Score:        score,
		Matched:      matched,
		Missing:      append([]string{}, shown...),
		MissingTotal: len(missing),
		NiceToHave:   niceToHave,
	}
}

// scoreExperience computes the experience facet
func scoreExperience(profile *types.CandidateProfile, job *types.JobPosting) types.ExperienceFacet {
	relevantTitles := make([]string, 0)
	for _, entry := range profile.Experience {
		if experienceOverlaps(entry, job.Requirements) {
			relevantTitles = append(relevantTitles, entry.Title)
		}
	}
	relevant := len(relevantTitles) > 0

	score := len(profile.Experience) * experiencePerEntry
	if relevant {
		score += relevantExperienceBonus
	}

	return types.ExperienceFacet{
		Score:          clampScore(score),
		EntryCount:     len(profile.Experience),
		Relevant:       relevant,
		RelevantTitles: relevantTitles,
	}
}

// experienceOverlaps reports whether an entry's title or description overlaps any requirement
func experienceOverlaps(entry types.ExperienceEntry, requirements []string) bool {
	for _, req := range requirements {
		if matching.Overlaps(entry.Title, req) || matching.Mentions(entry.Description, req) {
			return true
		}
	}
	return false
}

// scoreEducation computes the education facet. The score is two-valued, not a gradient.
func scoreEducation(profile *types.CandidateProfile, job *types.JobPosting) types.EducationFacet {
	degrees := make([]string, 0, len(profile.Education))
	relevant := false
	for _, edu := range profile.Education {
		if edu.Degree != "" {
			degrees = append(degrees, edu.Degree)
		}
		if educationRelevant(edu, job.Requirements) {
			relevant = true
		}
	}

	score := otherEducation
	if relevant {
		score = relevantEducation
	}

	return types.EducationFacet{
		Score:    score,
		Relevant: relevant,
		Degrees:  degrees,
	}
}

var academicInstitutions = []string{"university", "college"}

func educationRelevant(edu types.EducationEntry, requirements []string) bool {
	for _, req := range requirements {
		if matching.Overlaps(edu.Degree, req) {
			return true
		}
	}
	return matching.MentionsAny(edu.Institution, academicInstitutions)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
