package synthesis

import (
	"strings"
)

// buildResume assembles the resume as plain structured sections with ATS-safe hyphen lists
func buildResume(f *facts) string {
	var b strings.Builder
	p := f.profile

	b.WriteString(p.Name + "\n")
	contact := []string{p.Email}
	if p.Phone != "" {
		contact = append(contact, p.Phone)
	}
	b.WriteString(strings.Join(contact, " | ") + "\n")

	section(&b, "PROFESSIONAL SUMMARY")
	summary := f.fill(f.prose.Summary)
	if s := strings.TrimSpace(p.Summary); s != "" {
		summary += " " + s
	}
	b.WriteString(summary + "\n")

	section(&b, "TECHNICAL SKILLS")
	if len(f.skills) > 0 {
		b.WriteString(strings.Join(firstN(f.skills, maxSkillsDisplayed), ", ") + "\n")
	} else {
		b.WriteString("Skills available on request\n")
	}

	section(&b, "PROFESSIONAL EXPERIENCE")
	if len(p.Experience) == 0 {
		b.WriteString("- " + f.fill(f.prose.Achievements[0]) + "\n")
	}
	for i := range p.Experience {
		e := &p.Experience[i]
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(experienceHeading(e.Title, e.Company, e.Duration) + "\n")
		if d := strings.TrimSpace(e.Description); d != "" {
			b.WriteString("- " + d + "\n")
		}
		if e == f.relevant {
			for _, a := range f.prose.Achievements {
				b.WriteString("- " + f.fill(a) + "\n")
			}
		}
	}

	section(&b, "EDUCATION")
	if len(p.Education) == 0 {
		b.WriteString("Education details available on request\n")
	}
	for _, edu := range p.Education {
		b.WriteString(joinNonEmpty(", ", edu.Degree, edu.Institution, edu.Year) + "\n")
	}

	if len(p.Certifications) > 0 {
		section(&b, "CERTIFICATIONS")
		for _, c := range p.Certifications {
			b.WriteString("- " + c + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func section(b *strings.Builder, header string) {
	b.WriteString("\n" + header + "\n")
}

func experienceHeading(title, company, duration string) string {
	return joinNonEmpty(" | ", title, company, duration)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
