// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/tailor-engine/internal/pipeline"
	"github.com/jonathan/tailor-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens a line to width runes
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// writeList writes a labeled bullet list, showing at most limit items
func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", items[i])
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
	sb.WriteString("\n")
}

// PrintFitAnalysis outputs the overall score, the facet breakdown and the narrative lists.
func (p *Printer) PrintFitAnalysis(analysis *types.FitAnalysis) {
	if analysis == nil {
		return
	}

	b := analysis.Breakdown
	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall:    %d/100\n", analysis.OverallScore)
	fmt.Fprintf(&sb, "Skills:     %d  (%d matched, %d missing)\n", b.Skills.Score, len(b.Skills.Matched), b.Skills.MissingTotal)
	fmt.Fprintf(&sb, "Experience: %d\n", b.Experience.Score)
	fmt.Fprintf(&sb, "Education:  %d\n", b.Education.Score)
	fmt.Fprintf(&sb, "Location:   %d\n", b.Location.Score)
	fmt.Fprintf(&sb, "Salary:     %d\n", b.Salary.Score)
	sb.WriteString("\n")

	writeList(&sb, "Strengths", analysis.Strengths, maxItemsToShow)
	writeList(&sb, "Weaknesses", analysis.Weaknesses, maxItemsToShow)
	writeList(&sb, "Recommendations", analysis.Recommendations, maxItemsToShow)

	if analysis.BiasIndicators.Detected {
		writeList(&sb, "Bias Indicators", analysis.BiasIndicators.Factors, maxItemsToShow)
	}

	fmt.Fprintf(&sb, "Audit: %s (v%s)", clip(analysis.AuditTrail.Hash, 16), analysis.AuditTrail.Version)

	p.printBox("FIT ANALYSIS", sb.String())
}

// PrintDocuments outputs a one-line summary per tailored document.
func (p *Printer) PrintDocuments(docs []types.TailoredDocument) {
	if len(docs) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generated %d documents:\n\n", len(docs))
	for i, doc := range docs {
		fmt.Fprintf(&sb, "%s\n", doc.Type.DisplayName())
		fmt.Fprintf(&sb, "    ATS: %d  Readability: %d  Verbs: %d\n",
			doc.ATSScore, doc.Metrics.ReadabilityScore, doc.Metrics.ActionVerbCount)
		fmt.Fprintf(&sb, "    Template: %s\n", doc.Template)
		if len(doc.Keywords) > 0 {
			fmt.Fprintf(&sb, "    Keywords: %s\n", strings.Join(doc.Keywords, ", "))
		}
		if i < len(docs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TAILORED DOCUMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked jobs with their scores.
func (p *Printer) PrintRanking(ranked []pipeline.Ranked) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total jobs ranked: %d\n\n", len(ranked))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := ranked[i]
		fmt.Fprintf(&sb, "#%d  %s at %s\n", i+1, r.Job.Title, r.Job.Company)
		fmt.Fprintf(&sb, "    Overall: %d  Skills: %d\n", r.Analysis.OverallScore, r.Analysis.Breakdown.Skills.Score)
		if missing := r.Analysis.Breakdown.Skills.Missing; len(missing) > 0 {
			fmt.Fprintf(&sb, "    Missing: %s\n", strings.Join(missing, ", "))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more jobs", len(ranked)-maxItemsToShow)
	}

	p.printBox("JOB RANKING", strings.TrimSuffix(sb.String(), "\n"))
}
