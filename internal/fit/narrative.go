package fit

import (
	"fmt"
	"strings"

	"github.com/jonathan/tailor-engine/internal/types"
)

const (
	maxStrengths       = 4
	maxWeaknesses      = 3
	maxRecommendations = 4
	topSkillsShown     = 3
)

// buildStrengths formats the strongest evidence into bullets
func buildStrengths(profile *types.CandidateProfile, b types.FitBreakdown) []string {
	items := []string{
		skillStrength(b.Skills),
		experienceStrength(b.Experience),
		educationStrength(b.Education),
	}
	if len(b.Skills.NiceToHave) > 0 {
		items = append(items, "Brings nice-to-have skills: "+joinTop(b.Skills.NiceToHave, topSkillsShown))
	}
	if len(profile.Certifications) > 0 {
		items = append(items, "Holds certifications: "+joinTop(profile.Certifications, 2))
	}
	return capList(items, maxStrengths)
}

func skillStrength(s types.SkillsFacet) string {
	if len(s.Matched) == 0 {
		return ""
	}
	if s.Score >= 75 {
		return "Strong match on required skills: " + joinTop(s.Matched, topSkillsShown)
	}
	return "Matches required skills: " + joinTop(s.Matched, topSkillsShown)
}

func experienceStrength(e types.ExperienceFacet) string {
	switch {
	case e.Relevant:
		return "Directly relevant experience as " + e.RelevantTitles[0]
	case e.EntryCount > 1:
		return fmt.Sprintf("%d roles of professional experience", e.EntryCount)
	default:
		return ""
	}
}

func educationStrength(e types.EducationFacet) string {
	if !e.Relevant {
		return ""
	}
	if len(e.Degrees) > 0 {
		return "Relevant educational background (" + e.Degrees[0] + ")"
	}
	return "Relevant educational background"
}

// buildWeaknesses formats the gaps into bullets
func buildWeaknesses(b types.FitBreakdown) []string {
	items := make([]string, 0, 4)
	if len(b.Skills.Missing) > 0 {
		items = append(items, "Missing required skills: "+strings.Join(b.Skills.Missing, ", "))
	}
	if !b.Experience.Relevant {
		items = append(items, "Limited directly relevant experience")
	}
	if !b.Education.Relevant {
		items = append(items, "Education not directly aligned with the role")
	}
	if b.Skills.Score < 50 {
		items = append(items, "Covers less than half of the listed requirements")
	}
	return capList(items, maxWeaknesses)
}

// buildRecommendations turns gaps and strengths into next steps
func buildRecommendations(job *types.JobPosting, b types.FitBreakdown) []string {
	items := make([]string, 0, 5)
	for i, gap := range b.Skills.Missing {
		if i == 2 {
			break
		}
		items = append(items, fmt.Sprintf("Highlight any exposure to %s, or plan how you will build it", gap))
	}
	if len(b.Skills.Matched) > 0 {
		items = append(items, fmt.Sprintf("Lead your application with your %s experience", b.Skills.Matched[0]))
	}
	if !b.Experience.Relevant && strings.TrimSpace(job.Title) != "" {
		items = append(items, fmt.Sprintf("Reframe past roles around %s responsibilities", job.Title))
	}
	items = append(items, "Quantify achievements with concrete metrics")
	return capList(items, maxRecommendations)
}

// capList drops blank placeholders and truncates to max items
func capList(items []string, max int) []string {
	out := make([]string, 0, max)
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, item)
		if len(out) == max {
			break
		}
	}
	return out
}

func joinTop(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
