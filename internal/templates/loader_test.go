package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roleFiles = []string{
	"software-engineer.json",
	"data-scientist.json",
	"product-manager.json",
	"marketing.json",
	"sales.json",
	"business-development.json",
	"default.json",
}

var requiredKeys = []string{
	"summary",
	"achievement_1", "achievement_2", "achievement_3",
	"key_achievement_1", "key_achievement_2", "key_achievement_3",
	"motivation", "question_1", "question_2", "closing",
}

func TestGet_ValidTemplate(t *testing.T) {
	ClearCache()

	tmpl, err := Get("software-engineer.json", "summary")
	require.NoError(t, err)
	assert.Contains(t, tmpl, "{{.Skills}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "summary")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("default.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "summary")
	})
}

func TestAllRoleFilesHaveRequiredKeys(t *testing.T) {
	ClearCache()

	for _, file := range roleFiles {
		keys, err := List(file)
		require.NoError(t, err, file)
		for _, key := range requiredKeys {
			assert.Contains(t, keys, key, "%s missing %s", file, key)
			assert.NotPanics(t, func() { MustGet(file, key) })
		}
	}
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, welcome to {{.Company}}!", map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	})
	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", result)
}

func TestFormat_EmptyData(t *testing.T) {
	assert.Equal(t, "Hello {{.Name}}", Format("Hello {{.Name}}", map[string]string{}))
}

func TestList_Sorted(t *testing.T) {
	ClearCache()

	keys, err := List("default.json")
	require.NoError(t, err)
	assert.IsNonDecreasing(t, keys)
}
