package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfile_WithDefaults(t *testing.T) {
	p := CandidateProfile{
		Name:   "  ",
		Skills: []string{"Go", " go ", "", "Python"},
		Experience: []ExperienceEntry{
			{Title: "Engineer", Skills: []string{"SQL", "sql"}},
		},
	}

	out := p.WithDefaults()

	assert.Equal(t, PlaceholderName, out.Name)
	assert.Equal(t, PlaceholderEmail, out.Email)
	assert.Equal(t, []string{"Go", "Python"}, out.Skills)
	assert.NotNil(t, out.Certifications)
	assert.Equal(t, []string{"SQL"}, out.Experience[0].Skills)

	// receiver untouched
	assert.Equal(t, "  ", p.Name)
	assert.Equal(t, []string{"SQL", "sql"}, p.Experience[0].Skills)
}

func TestUniqueTerms(t *testing.T) {
	assert.Equal(t, []string{}, UniqueTerms(nil))
	assert.Equal(t, []string{"React", "Cloud"}, UniqueTerms([]string{" React", "react", "Cloud", "  "}))
}

func TestJobPosting_FullText(t *testing.T) {
	j := JobPosting{
		Title:        "Engineer",
		Description:  "Build things",
		Requirements: []string{"Go"},
		NiceToHaves:  []string{"Rust"},
	}
	assert.Equal(t, "Engineer\nBuild things\nGo\nRust", j.FullText())
}

func TestJobPosting_NullableListsDecode(t *testing.T) {
	var j JobPosting
	require.NoError(t, json.Unmarshal([]byte(`{"title": "X", "requirements": null}`), &j))
	assert.Nil(t, j.Requirements)
	assert.Nil(t, j.Salary)
}

func TestDocumentType(t *testing.T) {
	for _, dt := range DocumentTypes {
		parsed, err := ParseDocumentType(string(dt))
		require.NoError(t, err)
		assert.Equal(t, dt, parsed)
		assert.NotEqual(t, string(dt), dt.DisplayName())
	}

	_, err := ParseDocumentType("memo")
	require.Error(t, err)
	assert.Equal(t, "memo", DocumentType("memo").DisplayName())
}

func TestSuggestionDraftState(t *testing.T) {
	doc := &TailoredDocument{Content: "Dear team,", AISuggestions: []string{"A", "B"}}
	st := NewDraftState(doc)

	assert.Equal(t, "Dear team,", st.OriginalText)
	assert.Equal(t, "Dear team,", st.CurrentDraft)
	assert.True(t, st.IntegrationAllowed)
	assert.Empty(t, st.AppliedSuggestions)
	assert.False(t, st.IsApplied("A"))

	st.AppliedSuggestions = append(st.AppliedSuggestions, "A")
	clone := st.Clone()
	clone.AppliedSuggestions[0] = "changed"
	clone.Suggestions[0] = "changed"

	assert.True(t, st.IsApplied("A"))
	assert.Equal(t, []string{"A", "B"}, st.Suggestions)
	assert.Equal(t, []string{"A", "B"}, doc.AISuggestions)
}
