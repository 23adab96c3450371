// Package types provides type definitions for structured data used throughout the tailoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SuggestionDraftState is the editable draft of a document together with the suggestions spliced into it.
// It is only changed through the suggestions package transitions.
type SuggestionDraftState struct {
	OriginalText       string   `json:"original_text"`
	CurrentDraft       string   `json:"current_draft"`
	Suggestions        []string `json:"suggestions"`         // the document's AI suggestions
	AppliedSuggestions []string `json:"applied_suggestions"` // in application order
	Signature          string   `json:"signature"`
	IntegrationAllowed bool     `json:"integration_allowed"`
}

// NewDraftState seeds a draft state from a document
func NewDraftState(doc *TailoredDocument) SuggestionDraftState {
	return SuggestionDraftState{
		OriginalText:       doc.Content,
		CurrentDraft:       doc.Content,
		Suggestions:        append([]string(nil), doc.AISuggestions...),
		AppliedSuggestions: []string{},
		IntegrationAllowed: true,
	}
}

// IsApplied reports whether the suggestion is currently applied
func (s *SuggestionDraftState) IsApplied(suggestion string) bool {
	for _, a := range s.AppliedSuggestions {
		if a == suggestion {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the state
func (s SuggestionDraftState) Clone() SuggestionDraftState {
	out := s
	out.Suggestions = append([]string(nil), s.Suggestions...)
	out.AppliedSuggestions = append([]string{}, s.AppliedSuggestions...)
	return out
}
