package synthesis

import (
	"fmt"
	"strings"
)

// Statement of purpose section labels, in order
var statementSections = []string{
	"Introduction",
	"Professional Background",
	"Relevant Expertise",
	"Motivation",
	"Future Goals",
}

// buildStatement assembles the five labeled statement of purpose sections
func buildStatement(f *facts) string {
	bodies := []string{
		statementIntroduction(f),
		statementBackground(f),
		statementExpertise(f),
		f.fill(f.prose.Motivation),
		fmt.Sprintf("In the years ahead I aim to deepen my expertise in %s and grow into greater responsibility. "+
			"Joining %s as %s is the next step toward that goal.", f.data()["Skills"], f.companyName(), f.roleTitle()),
	}

	parts := make([]string, len(statementSections))
	for i, label := range statementSections {
		parts[i] = label + ":\n" + bodies[i]
	}
	return "Statement of Purpose\n" + f.profile.Name + "\n\n" + strings.Join(parts, "\n\n")
}

func statementIntroduction(f *facts) string {
	return fmt.Sprintf("I am applying for the %s position at %s. %s",
		f.roleTitle(), f.companyName(), f.fill(f.prose.Summary))
}

func statementBackground(f *facts) string {
	if len(f.profile.Experience) == 0 {
		return "My background combines formal study with hands-on projects where I " + f.fill(f.prose.KeyAchievements[0]) + "."
	}
	roles := make([]string, 0, len(f.profile.Experience))
	for _, e := range f.profile.Experience {
		roles = append(roles, joinNonEmpty(" at ", e.Title, e.Company))
	}
	text := fmt.Sprintf("My experience includes %s.", joinNatural(firstN(roles, topSkillCount)))
	if f.relevant != nil {
		text += fmt.Sprintf(" As %s, I %s.", f.relevant.Title, f.fill(f.prose.KeyAchievements[0]))
	}
	return text
}

func statementExpertise(f *facts) string {
	text := fmt.Sprintf("My core expertise spans %s.", f.data()["Skills"])
	if len(f.analysis.Strengths) > 0 {
		text += " " + strings.Join(firstN(f.analysis.Strengths, 2), ". ") + "."
	}
	return text
}
