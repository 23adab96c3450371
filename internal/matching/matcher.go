// Package matching provides lexical matching of candidate terms against job terms.
// Matching is substring based with a small synonym table; all functions are pure.
package matching

import "strings"

// Matches reports whether a candidate term matches a target term.
// Two terms match if either is a case-insensitive substring of the other, or a synonym
// registered for the candidate term is a substring of the target term. Blank terms never match.
func Matches(candidateTerm, targetTerm string) bool {
	candidate := normalize(candidateTerm)
	target := normalize(targetTerm)
	if candidate == "" || target == "" {
		return false
	}

	if strings.Contains(target, candidate) || strings.Contains(candidate, target) {
		return true
	}

	for _, syn := range synonyms[candidate] {
		if strings.Contains(target, strings.TrimSpace(syn)) {
			return true
		}
	}

	return false
}

// FindMatches returns the candidate terms that match at least one target term, in candidate order.
func FindMatches(candidateTerms, targetTerms []string) []string {
	matched := make([]string, 0)
	for _, c := range candidateTerms {
		for _, t := range targetTerms {
			if Matches(c, t) {
				matched = append(matched, c)
				break
			}
		}
	}
	return matched
}

// FindGaps returns the target terms that no candidate term matches, in target order.
func FindGaps(targetTerms, candidateTerms []string) []string {
	gaps := make([]string, 0)
	for _, t := range targetTerms {
		found := false
		for _, c := range candidateTerms {
			if Matches(c, t) {
				found = true
				break
			}
		}
		if !found {
			gaps = append(gaps, t)
		}
	}
	return gaps
}

// Mentions reports whether free text mentions a term or one of its synonyms (case-insensitive).
func Mentions(text, term string) bool {
	t := normalize(term)
	if t == "" {
		return false
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, t) {
		return true
	}
	for _, syn := range synonyms[t] {
		if strings.Contains(lower, strings.TrimSpace(syn)) {
			return true
		}
	}
	return false
}

// MentionsAny reports whether the text mentions any of the terms
func MentionsAny(text string, terms []string) bool {
	for _, t := range terms {
		if Mentions(text, t) {
			return true
		}
	}
	return false
}

// Overlaps reports whether a short label (a title or degree) and a term match in either direction.
func Overlaps(label, term string) bool {
	return Matches(label, term) || Matches(term, label)
}
