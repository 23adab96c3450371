// Package suggestions splices advisory suggestion paragraphs into an editable document draft.
// Every transition is a pure function of a SuggestionDraftState; removal is the exact inverse of application.
package suggestions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/tailor-engine/internal/types"
)

const (
	paragraphSep = "\n\n"
	trailingWS   = " \t\r\n"
)

// Enable sets the integration gate. Disabling removes every applied paragraph and keeps all other edits.
func Enable(state types.SuggestionDraftState, allowed bool) types.SuggestionDraftState {
	next := state.Clone()
	if !allowed {
		next.CurrentDraft = removeAll(next.CurrentDraft, next.AppliedSuggestions)
		next.AppliedSuggestions = []string{}
	}
	next.IntegrationAllowed = allowed
	return next
}

// Apply appends the suggestion as a new paragraph. Applying an already applied suggestion is a no-op.
func Apply(state types.SuggestionDraftState, suggestion string) (types.SuggestionDraftState, error) {
	if err := checkAction(state, suggestion); err != nil {
		return state, err
	}
	if state.IsApplied(suggestion) {
		return state, nil
	}

	next := state.Clone()
	next.CurrentDraft = ApplyText(next.CurrentDraft, suggestion)
	next.AppliedSuggestions = append(next.AppliedSuggestions, suggestion)
	return next, nil
}

// Remove takes an applied suggestion's paragraph back out of the draft. Removing one that is not applied is a no-op.
func Remove(state types.SuggestionDraftState, suggestion string) (types.SuggestionDraftState, error) {
	if err := checkAction(state, suggestion); err != nil {
		return state, err
	}
	if !state.IsApplied(suggestion) {
		return state, nil
	}

	next := state.Clone()
	next.CurrentDraft = RemoveText(next.CurrentDraft, suggestion)
	next.AppliedSuggestions = without(next.AppliedSuggestions, suggestion)
	return next, nil
}

// ApplyAll applies suggestions in order. A nil list applies every suggestion of the document.
// All suggestions are validated before any is applied.
func ApplyAll(state types.SuggestionDraftState, list []string) (types.SuggestionDraftState, error) {
	if list == nil {
		list = state.Suggestions
	}
	for _, s := range list {
		if err := checkAction(state, s); err != nil {
			return state, err
		}
	}

	next := state
	for _, s := range list {
		var err error
		if next, err = Apply(next, s); err != nil {
			return state, err
		}
	}
	return next, nil
}

// ClearAll removes every applied suggestion, most recent first.
func ClearAll(state types.SuggestionDraftState) (types.SuggestionDraftState, error) {
	if !state.IntegrationAllowed {
		return state, &PermissionError{Message: MsgIntegrationDisabled}
	}
	next := state.Clone()
	next.CurrentDraft = removeAll(next.CurrentDraft, next.AppliedSuggestions)
	next.AppliedSuggestions = []string{}
	return next, nil
}

// Reset discards applied suggestions and manual edits, restoring the original text.
func Reset(state types.SuggestionDraftState) types.SuggestionDraftState {
	next := state.Clone()
	next.CurrentDraft = next.OriginalText
	next.AppliedSuggestions = []string{}
	return next
}

// EnsureSignature appends the trimmed signature as a final paragraph unless a line of content
// already equals it, ignoring case and surrounding whitespace.
func EnsureSignature(content, signature string) string {
	sig := strings.TrimSpace(signature)
	if sig == "" {
		return content
	}
	for _, line := range strings.Split(content, "\n") {
		if strings.EqualFold(strings.TrimSpace(line), sig) {
			return content
		}
	}
	return ApplyText(content, sig)
}

// ApplyText appends a trimmed paragraph to the right-trimmed draft
func ApplyText(draft, paragraph string) string {
	p := strings.TrimSpace(paragraph)
	base := strings.TrimRight(draft, trailingWS)
	if base == "" {
		return p
	}
	if p == "" {
		return base
	}
	return base + paragraphSep + p
}

// RemoveText removes the last separator-prefixed occurrence of a paragraph, or the paragraph at the
// start of the draft, and trims trailing whitespace. Matching is literal; spaces or tabs left after the
// paragraph by manual edits are removed with it.
func RemoveText(draft, paragraph string) string {
	p := strings.TrimSpace(paragraph)
	if p == "" {
		return strings.TrimRight(draft, trailingWS)
	}
	quoted := regexp.QuoteMeta(p)

	inner := regexp.MustCompile(`\n\n` + quoted + `[ \t]*(?:\n\n|\s*\z)`)
	if loc := lastMatch(inner, draft); loc != nil {
		return strings.TrimRight(draft[:loc[0]]+keepSeparator(draft, loc), trailingWS)
	}

	leading := regexp.MustCompile(`\A` + quoted + `[ \t]*(?:\n\n|\s*\z)`)
	if loc := leading.FindStringIndex(draft); loc != nil {
		return strings.TrimRight(draft[loc[1]:], trailingWS)
	}

	return strings.TrimRight(draft, trailingWS)
}

// lastMatch returns the last match of re in s, including matches that overlap an earlier one
func lastMatch(re *regexp.Regexp, s string) []int {
	var last []int
	for from := 0; from < len(s); {
		loc := re.FindStringIndex(s[from:])
		if loc == nil {
			break
		}
		last = []int{from + loc[0], from + loc[1]}
		from += loc[0] + 1
	}
	return last
}

// keepSeparator returns the text after a removed paragraph, keeping the separator to the next one
func keepSeparator(draft string, loc []int) string {
	if strings.HasSuffix(draft[loc[0]:loc[1]], paragraphSep) {
		return draft[loc[1]-len(paragraphSep):]
	}
	return draft[loc[1]:]
}

func checkAction(state types.SuggestionDraftState, suggestion string) error {
	if !state.IntegrationAllowed {
		return &PermissionError{Message: MsgIntegrationDisabled}
	}
	if strings.TrimSpace(suggestion) == "" {
		return &ValidationError{Message: "suggestion is empty"}
	}
	for _, s := range state.Suggestions {
		if s == suggestion {
			return nil
		}
	}
	return &ValidationError{Message: fmt.Sprintf("unknown suggestion %q", suggestion)}
}

// removeAll removes paragraphs in reverse application order
func removeAll(draft string, applied []string) string {
	for i := len(applied) - 1; i >= 0; i-- {
		draft = RemoveText(draft, applied[i])
	}
	return draft
}

func without(list []string, item string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != item {
			out = append(out, s)
		}
	}
	return out
}
