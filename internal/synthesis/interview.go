package synthesis

import (
	"fmt"
	"strings"
)

const maxTechnicalQuestions = 3

type question struct {
	Q    string
	Prep string
}

// buildInterviewGuide assembles question and answer-preparation sections
func buildInterviewGuide(f *facts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Interview Guide: %s at %s\n", f.roleTitle(), f.companyName())

	writeQuestions(&b, "General Questions", generalQuestions(f))
	writeQuestions(&b, "Technical Questions", technicalQuestions(f))
	if gaps := gapQuestions(f); len(gaps) > 0 {
		writeQuestions(&b, "Gap Questions", gaps)
	}
	writeQuestions(&b, "Behavioral Questions", behavioralQuestions(f))

	b.WriteString("\nQuestions to Ask\n")
	fmt.Fprintf(&b, "- What does success look like for a %s in the first 90 days?\n", f.roleTitle())
	fmt.Fprintf(&b, "- How does the team at %s measure impact?\n", f.companyName())
	b.WriteString("- What are the biggest challenges facing the team this year?\n")

	return strings.TrimRight(b.String(), "\n")
}

func writeQuestions(b *strings.Builder, heading string, qs []question) {
	b.WriteString("\n" + heading + "\n")
	for _, q := range qs {
		b.WriteString("Q: " + q.Q + "\n")
		b.WriteString("Prep: " + q.Prep + "\n")
	}
}

func generalQuestions(f *facts) []question {
	intro := "Summarize your background in two minutes, ending with why this role is the natural next step."
	if f.relevant != nil {
		intro = fmt.Sprintf("Open with your role as %s, then connect it to %s in two minutes.",
			f.relevant.Title, f.data()["Skills"])
	}
	return []question{
		{Q: "Tell me about yourself.", Prep: intro},
		{
			Q:    fmt.Sprintf("Why do you want to work at %s?", f.companyName()),
			Prep: f.fill(f.prose.Motivation),
		},
	}
}

func technicalQuestions(f *facts) []question {
	skills := firstN(f.matched, maxTechnicalQuestions)
	if len(skills) == 0 {
		skills = firstN(f.topSkills, maxTechnicalQuestions)
	}
	out := make([]question, 0, len(skills)+1)
	for _, s := range skills {
		out = append(out, question{
			Q:    fmt.Sprintf("How have you used %s in your work?", s),
			Prep: fmt.Sprintf("Describe one concrete project using %s: the problem, your approach and a measurable result.", s),
		})
	}
	if len(out) == 0 {
		out = append(out, question{
			Q:    "Which tools and methods do you rely on most?",
			Prep: "Pick two tools you know well and explain a result you achieved with each.",
		})
	}
	return out
}

func gapQuestions(f *facts) []question {
	out := make([]question, 0, len(f.missing))
	for _, gap := range f.missing {
		out = append(out, question{
			Q:    fmt.Sprintf("What is your experience with %s?", gap),
			Prep: fmt.Sprintf("Be honest about your exposure to %s, relate it to adjacent experience and describe how you are closing the gap.", gap),
		})
	}
	return out
}

func behavioralQuestions(f *facts) []question {
	out := make([]question, 0, len(f.prose.Questions))
	for i, q := range f.prose.Questions {
		out = append(out, question{
			Q:    f.fill(q),
			Prep: "Use the STAR format. Example: I " + f.fill(f.prose.KeyAchievements[i%len(f.prose.KeyAchievements)]) + ".",
		})
	}
	return out
}
