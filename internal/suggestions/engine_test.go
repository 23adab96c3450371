package suggestions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/tailor-engine/internal/types"
)

const (
	sugA = "I am particularly drawn to your mission."
	sugB = "Grew revenue by 30% (Q1) + $2M? [verified]"
	sugC = "I would welcome the opportunity to talk."
)

func newState(original string) types.SuggestionDraftState {
	return types.NewDraftState(&types.TailoredDocument{
		Content:       original,
		AISuggestions: []string{sugA, sugB, sugC},
	})
}

func TestApply_AppendsParagraph(t *testing.T) {
	st, err := Apply(newState("Dear team,\n\nBody text.  \n"), sugA)
	require.NoError(t, err)

	assert.Equal(t, "Dear team,\n\nBody text.\n\n"+sugA, st.CurrentDraft)
	assert.Equal(t, []string{sugA}, st.AppliedSuggestions)
}

func TestApply_EmptyDraftBecomesParagraph(t *testing.T) {
	st, err := Apply(newState(""), sugA)
	require.NoError(t, err)
	assert.Equal(t, sugA, st.CurrentDraft)

	st, err = Remove(st, sugA)
	require.NoError(t, err)
	assert.Equal(t, "", st.CurrentDraft)
}

func TestApply_AlreadyAppliedIsNoop(t *testing.T) {
	st, err := Apply(newState("Body"), sugA)
	require.NoError(t, err)
	again, err := Apply(st, sugA)
	require.NoError(t, err)

	assert.Equal(t, st, again)
}

func TestApply_DisabledIsPermissionError(t *testing.T) {
	st := Enable(newState("Body"), false)

	next, err := Apply(st, sugA)

	var permErr *PermissionError
	require.True(t, errors.As(err, &permErr))
	assert.Equal(t, MsgIntegrationDisabled, permErr.Message)
	assert.Equal(t, st, next)
}

func TestApply_UnknownSuggestion(t *testing.T) {
	_, err := Apply(newState("Body"), "not offered")

	var valErr *ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestRemove_IsInverseOfApply(t *testing.T) {
	drafts := []string{
		"",
		"Body",
		"Dear team,\n\nBody text.",
		"Dear team,\n\n" + sugB + "\n\nClosing.",
		sugB,
		"Price (is) $5 * 2? [x] ^start",
	}
	for _, d := range drafts {
		for _, s := range []string{sugA, sugB, sugC} {
			st := newState(d)
			applied, err := Apply(st, s)
			require.NoError(t, err)
			removed, err := Remove(applied, s)
			require.NoError(t, err)

			assert.Equal(t, d, removed.CurrentDraft, "draft %q suggestion %q", d, s)
			assert.Empty(t, removed.AppliedSuggestions)
		}
	}
}

func TestRemove_OutOfOrder(t *testing.T) {
	st, err := ApplyAll(newState("Body"), []string{sugA, sugB, sugC})
	require.NoError(t, err)

	st, err = Remove(st, sugB)
	require.NoError(t, err)

	assert.Equal(t, "Body\n\n"+sugA+"\n\n"+sugC, st.CurrentDraft)
	assert.Equal(t, []string{sugA, sugC}, st.AppliedSuggestions)
}

func TestRemove_ToleratesTrailingWhitespaceFromEdits(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		want  string
	}{
		{"trailing newline", "Body\n\n" + sugA + "\n", "Body"},
		{"trailing spaces", "Body\n\n" + sugA + "   ", "Body"},
		{"spaces before next paragraph", "Body\n\n" + sugA + "  \n\nP.S. thanks", "Body\n\nP.S. thanks"},
		{"leading paragraph", sugA + " \n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := Apply(newState("Body"), sugA)
			require.NoError(t, err)
			st.CurrentDraft = tt.draft

			st, err = Remove(st, sugA)
			require.NoError(t, err)
			assert.Equal(t, tt.want, st.CurrentDraft)
			assert.NotContains(t, st.CurrentDraft, sugA)
			assert.Empty(t, st.AppliedSuggestions)
		})
	}
}

func TestRemoveText_RepeatedParagraphRemovesLast(t *testing.T) {
	assert.Equal(t, "A\n\n"+sugA, RemoveText("A\n\n"+sugA+"\n\n"+sugA, sugA))
	assert.Equal(t, "A\n\n"+sugA+"\n\nB", RemoveText("A\n\n"+sugA+"\n\n"+sugA+"\n\nB", sugA))
}

func TestRemove_NotAppliedIsNoop(t *testing.T) {
	st := newState("Body\n\n" + sugA)
	next, err := Remove(st, sugA)
	require.NoError(t, err)
	assert.Equal(t, st, next)
}

func TestEnableFalse_KeepsManualEdits(t *testing.T) {
	st, err := ApplyAll(newState("Body"), []string{sugA, sugB})
	require.NoError(t, err)
	st.CurrentDraft += "\n\nPS: manual note"

	disabled := Enable(st, false)

	assert.Equal(t, "Body\n\nPS: manual note", disabled.CurrentDraft)
	assert.Empty(t, disabled.AppliedSuggestions)
	assert.False(t, disabled.IntegrationAllowed)

	enabled := Enable(disabled, true)
	assert.True(t, enabled.IntegrationAllowed)
	assert.Equal(t, disabled.CurrentDraft, enabled.CurrentDraft)
}

func TestApplyAll_DefaultsToEverySuggestion(t *testing.T) {
	st, err := ApplyAll(newState("Body"), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{sugA, sugB, sugC}, st.AppliedSuggestions)
	assert.Equal(t, "Body\n\n"+sugA+"\n\n"+sugB+"\n\n"+sugC, st.CurrentDraft)
}

func TestApplyAll_ValidatesBeforeApplying(t *testing.T) {
	st := newState("Body")
	next, err := ApplyAll(st, []string{sugA, "bogus"})

	assert.Error(t, err)
	assert.Equal(t, st, next)
}

func TestClearAll(t *testing.T) {
	st, err := ApplyAll(newState("Body"), nil)
	require.NoError(t, err)

	cleared, err := ClearAll(st)
	require.NoError(t, err)
	assert.Equal(t, "Body", cleared.CurrentDraft)
	assert.Empty(t, cleared.AppliedSuggestions)

	_, err = ClearAll(Enable(st, false))
	var permErr *PermissionError
	assert.True(t, errors.As(err, &permErr))
}

func TestReset_DiscardsEverything(t *testing.T) {
	st, err := Apply(newState("Body"), sugA)
	require.NoError(t, err)
	st.CurrentDraft = "rewritten entirely"

	reset := Reset(st)

	assert.Equal(t, "Body", reset.CurrentDraft)
	assert.Empty(t, reset.AppliedSuggestions)
	assert.True(t, reset.IntegrationAllowed)
}

func TestTransitionsDoNotAliasInput(t *testing.T) {
	st := newState("Body")
	applied, err := Apply(st, sugA)
	require.NoError(t, err)

	applied.AppliedSuggestions[0] = "changed"
	assert.Empty(t, st.AppliedSuggestions)
}

func TestEnsureSignature(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		signature string
		want      string
	}{
		{"appends", "Body", "Jane Doe", "Body\n\nJane Doe"},
		{"trims", "Body\n\n", "  Jane Doe ", "Body\n\nJane Doe"},
		{"existing line", "Sincerely,\nJane Doe", "Jane Doe", "Sincerely,\nJane Doe"},
		{"case insensitive", "Sincerely,\n  JANE DOE  ", "jane doe", "Sincerely,\n  JANE DOE  "},
		{"substring is not a line", "Jane Doexyz", "Jane Doe", "Jane Doexyz\n\nJane Doe"},
		{"empty signature", "Body", "   ", "Body"},
		{"empty content", "", "Jane", "Jane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := EnsureSignature(tt.content, tt.signature)
			assert.Equal(t, tt.want, once)
			assert.Equal(t, once, EnsureSignature(once, tt.signature))
		})
	}
}
