package synthesis

import (
	"strings"

	"github.com/jonathan/tailor-engine/internal/matching"
	"github.com/jonathan/tailor-engine/internal/templates"
	"github.com/jonathan/tailor-engine/internal/types"
)

const (
	maxSkillsCollected = 15
	maxSkillsDisplayed = 12
	topSkillCount      = 3
	maxKeywords        = 10
)

// facts is the extraction shared by every document type
type facts struct {
	profile  types.CandidateProfile
	job      *types.JobPosting
	analysis *types.FitAnalysis
	role     Role
	prose    prose

	matched    []string
	niceToHave []string
	missing    []string
	topSkills  []string
	relevant   *types.ExperienceEntry
	skills     []string
	keywords   []string
}

func extract(profile *types.CandidateProfile, job *types.JobPosting, analysis *types.FitAnalysis) *facts {
	f := &facts{
		profile:  profile.WithDefaults(),
		job:      job,
		analysis: analysis,
		role:     ClassifyRole(job.Title),
	}
	f.prose = proseFor(f.role)

	f.matched = types.UniqueTerms(analysis.Breakdown.Skills.Matched)
	f.niceToHave = types.UniqueTerms(analysis.Breakdown.Skills.NiceToHave)
	f.missing = types.UniqueTerms(analysis.Breakdown.Skills.Missing)

	f.topSkills = firstN(types.UniqueTerms(concat(f.matched, f.niceToHave, f.profile.Skills)), topSkillCount)
	f.relevant = mostRelevantExperience(f.profile.Experience, f.matched)
	f.skills = prioritizeSkills(f.profile.Skills, f.matched, f.niceToHave, job.Requirements)
	f.keywords = firstN(types.UniqueTerms(concat(f.matched, f.niceToHave, job.Requirements)), maxKeywords)
	return f
}

// mostRelevantExperience returns the first entry whose title, description or skills overlap a matched skill,
// falling back to the first entry. It returns nil for an empty history.
func mostRelevantExperience(entries []types.ExperienceEntry, matched []string) *types.ExperienceEntry {
	if len(entries) == 0 {
		return nil
	}
	for i := range entries {
		e := &entries[i]
		for _, skill := range matched {
			if matching.Overlaps(e.Title, skill) || matching.Mentions(e.Description, skill) ||
				overlapsAny(skill, e.Skills) {
				return e
			}
		}
	}
	return &entries[0]
}

// prioritizeSkills orders skills for the resume: matched, nice-to-have, profile skills overlapping a requirement,
// then everything else. Each group is deduplicated against the earlier ones and the result is capped.
func prioritizeSkills(profileSkills, matched, niceToHave, requirements []string) []string {
	overlapping := make([]string, 0)
	rest := make([]string, 0)
	for _, s := range profileSkills {
		if overlapsAny(s, requirements) {
			overlapping = append(overlapping, s)
		} else {
			rest = append(rest, s)
		}
	}
	return firstN(types.UniqueTerms(concat(matched, niceToHave, overlapping, rest)), maxSkillsCollected)
}

func overlapsAny(term string, others []string) bool {
	for _, o := range others {
		if matching.Overlaps(term, o) {
			return true
		}
	}
	return false
}

// data returns the placeholder values for the role templates
func (f *facts) data() map[string]string {
	company := strings.TrimSpace(f.job.Company)
	if company == "" {
		company = "your organization"
	}
	role := strings.TrimSpace(f.job.Title)
	if role == "" {
		role = "this role"
	}
	skill := "my core skills"
	skillList := "a broad range of professional skills"
	if len(f.topSkills) > 0 {
		skill = f.topSkills[0]
		skillList = joinNatural(f.topSkills)
	}
	industry := strings.TrimSpace(f.job.Industry)
	if industry == "" {
		industry = "your industry"
	}
	return map[string]string{
		"Company":  company,
		"Role":     role,
		"Skill":    skill,
		"Skills":   skillList,
		"Industry": industry,
	}
}

func (f *facts) fill(tmpl string) string {
	return templates.Format(tmpl, f.data())
}

// companyName returns the job's company or a generic stand-in
func (f *facts) companyName() string {
	return f.data()["Company"]
}

// roleTitle returns the job title or a generic stand-in
func (f *facts) roleTitle() string {
	return f.data()["Role"]
}

func concat(groups ...[]string) []string {
	out := make([]string, 0)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return append([]string{}, items[:n]...)
	}
	return append([]string{}, items...)
}

// joinNatural joins items as "a", "a and b" or "a, b and c"
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
