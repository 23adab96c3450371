// Package metrics computes deterministic quality metrics and an ATS compatibility score for document text.
package metrics

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/tailor-engine/internal/types"
)

const (
	// targetWordsPerSentence is the sentence length above which readability starts to drop
	targetWordsPerSentence = 12.0
	readabilityPenalty     = 1.5
	minReadability         = 50
	maxReadability         = 95
	// words shorter than this ("go", "ai", "c#") count only on an exact word match
	minContainmentLen = 3
)

// shortStopWords are two-letter words never treated as requirement keywords
var shortStopWords = map[string]bool{
	"an": true, "as": true, "at": true, "be": true, "by": true, "do": true, "eg": true, "ie": true,
	"if": true, "in": true, "is": true, "it": true, "of": true, "on": true, "or": true, "to": true,
	"up": true, "us": true, "we": true,
}

// quantifiedPatterns match numeric evidence of impact
var quantifiedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?%`),
	regexp.MustCompile(`\d+\+`),
	regexp.MustCompile(`\$\d[\d,]*(?:\.\d+)?[kKmMbB]?`),
	regexp.MustCompile(`\b\d+(?:\.\d+)?x\b`),
	regexp.MustCompile(`(?i)\b\d+\s+(?:years?|months?|days?|hours?|users|customers|projects|team members)\b`),
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Compute calculates all document metrics for text measured against the job requirements.
func Compute(text string, requirements []string) types.DocumentMetrics {
	return types.DocumentMetrics{
		ReadabilityScore:       Readability(text),
		KeywordDensity:         KeywordDensity(text, requirements),
		ActionVerbCount:        ActionVerbCount(text),
		QuantifiedAchievements: QuantifiedAchievements(text),
	}
}

// Readability scores average sentence length: clamp(100 - max(0, (avg-12)*1.5), 50, 95).
func Readability(text string) int {
	words := len(Words(text))

	sentences := 0
	for _, fragment := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(fragment) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}

	avg := float64(words) / float64(sentences)
	score := 100 - math.Max(0, (avg-targetWordsPerSentence)*readabilityPenalty)
	return clamp(int(math.Round(score)), minReadability, maxReadability)
}

// KeywordDensity returns the percentage of words in text that contain a requirement word,
// rounded to 2 decimals. Repeated words are counted each time. Empty text yields 0.
// Two-character requirement words must equal the text word.
func KeywordDensity(text string, requirements []string) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}

	reqWords := requirementWords(requirements)
	if len(reqWords) == 0 {
		return 0
	}

	found := 0
	for _, w := range words {
		for _, r := range reqWords {
			if containsKeyword(w, r) {
				found++
				break
			}
		}
	}

	density := float64(found) / float64(len(words)) * 100
	return math.Round(density*100) / 100
}

func containsKeyword(word, keyword string) bool {
	if len(keyword) < minContainmentLen {
		return word == keyword
	}
	return strings.Contains(word, keyword)
}

// ActionVerbCount counts the distinct action verbs present in text
func ActionVerbCount(text string) int {
	seen := make(map[string]bool)
	for _, w := range Words(text) {
		if IsActionVerb(w) {
			seen[w] = true
		}
	}
	return len(seen)
}

// QuantifiedAchievements counts matches of the numeric impact patterns
func QuantifiedAchievements(text string) int {
	count := 0
	for _, re := range quantifiedPatterns {
		count += len(re.FindAllStringIndex(text, -1))
	}
	return count
}

// Words splits text into lowercase words with surrounding punctuation removed
func Words(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// requirementWords returns the distinct significant words of all requirements
func requirementWords(requirements []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, req := range requirements {
		for _, w := range Words(req) {
			if len(w) < 2 || shortStopWords[w] || seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
