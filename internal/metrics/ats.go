package metrics

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/tailor-engine/internal/matching"
)

// ATS scoring adjustments
const (
	atsBase                = 100.0
	specialCharPenalty     = 5.0
	tooShortPenalty        = 15.0
	tooLongPenalty         = 10.0
	missingHeaderPenalty   = 10.0
	keywordCoverageWeight  = 30.0
	missingVerbPenalty     = 10.0
	missingQuantityPenalty = 5.0
	minATSLength           = 500
	maxATSLength           = 3000
)

// specialChars are bullet glyphs and decorations that resume parsers commonly mangle
var specialChars = regexp.MustCompile(`[•●▪■◆◇★☆►▶✓✔➢➤→○◦]`)

// standardHeaders are section titles ATS parsers look for
var standardHeaders = []string{
	"summary", "professional summary", "experience", "professional experience", "work experience",
	"education", "skills", "technical skills", "certifications", "projects",
}

// ATSScore estimates how well text would pass automated resume screening, from 0 to 100.
func ATSScore(text string, requirements []string) int {
	score := atsBase

	if specialChars.MatchString(text) {
		score -= specialCharPenalty
	}

	length := len([]rune(text))
	switch {
	case length < minATSLength:
		score -= tooShortPenalty
	case length > maxATSLength:
		score -= tooLongPenalty
	}

	if !HasStandardHeader(text) {
		score -= missingHeaderPenalty
	}

	score += -keywordCoverageWeight + keywordCoverageWeight*KeywordCoverage(text, requirements)

	if ActionVerbCount(text) == 0 {
		score -= missingVerbPenalty
	}
	if QuantifiedAchievements(text) == 0 {
		score -= missingQuantityPenalty
	}

	return clamp(int(math.Round(score)), 0, 100)
}

// KeywordCoverage returns the fraction (0-1) of requirements mentioned in text.
// With no requirements there is nothing to miss, so coverage is full.
func KeywordCoverage(text string, requirements []string) float64 {
	total := 0
	found := 0
	for _, req := range requirements {
		if strings.TrimSpace(req) == "" {
			continue
		}
		total++
		if matching.Mentions(text, req) {
			found++
		}
	}
	if total == 0 {
		return 1.0
	}
	return float64(found) / float64(total)
}

// HasStandardHeader reports whether any line of text is a standard section header
func HasStandardHeader(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		l := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":")))
		for _, h := range standardHeaders {
			if l == h {
				return true
			}
		}
	}
	return false
}
