// Package synthesis assembles the tailored application documents for a candidate and job.
// Synthesis is pure: the same profile, job and analysis always produce byte-identical documents.
package synthesis

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/tailor-engine/internal/metrics"
	"github.com/jonathan/tailor-engine/internal/types"
)

const (
	maxHighlights      = 4
	lowReadability     = 70
	fewActionVerbs     = 5
	fewQuantifications = 3
)

// documentNamespace scopes document ids derived from analysis hashes
var documentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("tailor-engine/documents"))

// Synthesize builds the resume, cover letter, statement of purpose and interview guide, in that order.
// Nil inputs are treated as empty.
func Synthesize(profile *types.CandidateProfile, job *types.JobPosting, analysis *types.FitAnalysis) []types.TailoredDocument {
	if profile == nil {
		profile = &types.CandidateProfile{}
	}
	if job == nil {
		job = &types.JobPosting{}
	}
	if analysis == nil {
		analysis = &types.FitAnalysis{}
	}

	f := extract(profile, job, analysis)

	docs := make([]types.TailoredDocument, 0, len(types.DocumentTypes))
	for _, t := range types.DocumentTypes {
		docs = append(docs, f.document(t))
	}
	return docs
}

func (f *facts) document(t types.DocumentType) types.TailoredDocument {
	var content string
	switch t {
	case types.DocumentResume:
		content = buildResume(f)
	case types.DocumentCoverLetter:
		content = buildCoverLetter(f)
	case types.DocumentStatementOfPurpose:
		content = buildStatement(f)
	case types.DocumentInterviewGuide:
		content = buildInterviewGuide(f)
	}

	m := metrics.Compute(content, f.job.Requirements)
	doc := types.TailoredDocument{
		ID:                DocumentID(f.analysis.AuditTrail.Hash, t),
		Type:              t,
		Title:             documentTitle(t, f),
		Content:           content,
		Keywords:          append([]string{}, f.keywords...),
		ATSScore:          metrics.ATSScore(content, f.job.Requirements),
		Template:          string(f.role) + "-" + string(t),
		Metrics:           m,
		AllowSubmission:   t == types.DocumentCoverLetter,
		IndustryOptimized: f.job.Industry != "",
		GeneratedAt:       f.analysis.AuditTrail.Timestamp,
	}
	doc.Highlights = f.highlights(t, doc.ATSScore)
	if t == types.DocumentCoverLetter {
		doc.AISuggestions = types.UniqueTerms(coverLetterSuggestions(f))
	} else {
		doc.AISuggestions = types.UniqueTerms(f.advisorySuggestions(t, m))
	}
	return doc
}

// DocumentID derives a stable document id from an analysis hash and document type
func DocumentID(analysisHash string, t types.DocumentType) string {
	return uuid.NewSHA1(documentNamespace, []byte(analysisHash+":"+string(t))).String()
}

func documentTitle(t types.DocumentType, f *facts) string {
	return fmt.Sprintf("%s - %s at %s", t.DisplayName(), f.roleTitle(), f.companyName())
}

func (f *facts) highlights(t types.DocumentType, atsScore int) []string {
	items := make([]string, 0, maxHighlights+2)
	if n := len(f.job.Requirements); n > 0 {
		items = append(items, fmt.Sprintf("Matches %d of %d requirements", len(f.analysis.Breakdown.Skills.Matched), n))
	}
	items = append(items, fmt.Sprintf("Overall fit score %d", f.analysis.OverallScore))
	if t == types.DocumentResume {
		items = append(items, fmt.Sprintf("ATS compatibility %d", atsScore))
	}
	items = append(items, f.analysis.Strengths...)
	return firstN(types.UniqueTerms(items), maxHighlights)
}

// advisorySuggestions returns improvement advice for documents that are not edited as drafts
func (f *facts) advisorySuggestions(t types.DocumentType, m types.DocumentMetrics) []string {
	out := make([]string, 0, 6)
	for i, gap := range f.missing {
		if i == 2 {
			break
		}
		out = append(out, fmt.Sprintf("Address the requirement %q with related experience or training", gap))
	}
	switch t {
	case types.DocumentResume:
		if m.QuantifiedAchievements < fewQuantifications {
			out = append(out, "Quantify more achievements with numbers, percentages or dollar amounts")
		}
		if m.ActionVerbCount < fewActionVerbs {
			out = append(out, "Start experience bullets with strong action verbs such as led, built or delivered")
		}
		if len(f.niceToHave) > 0 {
			out = append(out, "Mention nice-to-have skills near the top: "+joinNatural(firstN(f.niceToHave, topSkillCount)))
		}
	case types.DocumentStatementOfPurpose:
		out = append(out, fmt.Sprintf("Add a specific example of why %s in particular interests you", f.companyName()))
	case types.DocumentInterviewGuide:
		out = append(out, "Rehearse each answer aloud and keep it under two minutes")
		out = append(out, fmt.Sprintf("Research recent news about %s before the interview", f.companyName()))
	}
	if m.ReadabilityScore < lowReadability {
		out = append(out, "Shorten long sentences to improve readability")
	}
	return out
}
