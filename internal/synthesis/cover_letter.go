package synthesis

import (
	"fmt"
	"strings"
)

const maxGapParagraphs = 2

// buildCoverLetter assembles salutation and narrative paragraphs. The letter ends at the closing
// paragraph; the signature is added at submission so applied suggestions stay in the body.
func buildCoverLetter(f *facts) string {
	paragraphs := []string{
		fmt.Sprintf("Dear %s Hiring Team,", f.companyName()),
		fmt.Sprintf("I am excited to apply for the %s position at %s. %s",
			f.roleTitle(), f.companyName(), f.fill(f.prose.Summary)),
		experienceParagraph(f),
		skillsParagraph(f),
		f.fill(f.prose.Closing),
	}
	return joinParagraphs(paragraphs)
}

func experienceParagraph(f *facts) string {
	achievements := []string{f.fill(f.prose.KeyAchievements[0]), f.fill(f.prose.KeyAchievements[1])}
	if f.relevant == nil {
		return fmt.Sprintf("Throughout my career I have %s.", joinNatural(achievements))
	}
	at := ""
	if f.relevant.Company != "" {
		at = " at " + f.relevant.Company
	}
	return fmt.Sprintf("In my role as %s%s, I %s.", f.relevant.Title, at, joinNatural(achievements))
}

func skillsParagraph(f *facts) string {
	var b strings.Builder
	if len(f.matched) > 0 {
		fmt.Fprintf(&b, "My experience with %s aligns closely with what your team is looking for.",
			joinNatural(firstN(f.matched, topSkillCount)))
	} else {
		fmt.Fprintf(&b, "My background in %s gives me a solid foundation for this role.", f.data()["Skills"])
	}
	if len(f.analysis.Strengths) > 0 {
		b.WriteString(" In particular, I offer: " + lowerFirst(f.analysis.Strengths[0]) + ".")
	}
	return b.String()
}

// coverLetterSuggestions returns paragraphs that can be spliced into the cover letter draft
func coverLetterSuggestions(f *facts) []string {
	out := make([]string, 0, 5)
	out = append(out, fmt.Sprintf("I have followed %s's work closely, and I am particularly drawn to how the team approaches %s.",
		f.companyName(), f.data()["Industry"]))
	for i, gap := range f.missing {
		if i == maxGapParagraphs {
			break
		}
		out = append(out, fmt.Sprintf("While my direct experience with %s is still growing, I learn new tools quickly and am already building hands-on familiarity with it.", gap))
	}
	if len(f.niceToHave) > 0 {
		out = append(out, fmt.Sprintf("I also bring experience with %s, which I understand is valued by your team.",
			joinNatural(firstN(f.niceToHave, topSkillCount))))
	}
	out = append(out, "Beyond the day-to-day work, I "+f.fill(f.prose.KeyAchievements[2])+".")
	out = append(out, fmt.Sprintf("I would welcome the opportunity to discuss how my background can contribute to %s's goals.", f.companyName()))
	return out
}

func joinParagraphs(paragraphs []string) string {
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
