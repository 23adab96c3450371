package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/tailor-engine/internal/schemas"
	"github.com/jonathan/tailor-engine/internal/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfile_AppliesDefaults(t *testing.T) {
	path := writeFile(t, "profile.json", `{
		"skills": ["Go", " go ", "", "SQL"],
		"summary": "Builds   things.\n\n\n\nReliably.",
		"experience": null
	}`)

	profile, err := LoadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, types.PlaceholderName, profile.Name)
	assert.Equal(t, types.PlaceholderEmail, profile.Email)
	assert.Equal(t, []string{"Go", "SQL"}, profile.Skills)
	assert.NotNil(t, profile.Experience)
	assert.NotNil(t, profile.Certifications)
	assert.Equal(t, "Builds things.\n\nReliably.", profile.Summary)
}

func TestLoadProfile_SchemaFailure(t *testing.T) {
	path := writeFile(t, "profile.json", `{"skills": "Go"}`)

	_, err := LoadProfile(path)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Path)
	var valErr *schemas.ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestLoadProfile_NotFound(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestParseProfile_MalformedJSON(t *testing.T) {
	_, err := ParseProfile([]byte(`{"name": `))
	assert.Error(t, err)
}

func TestLoadJob_HTMLDescriptionAndLists(t *testing.T) {
	path := writeFile(t, "job.json", `{
		"id": "job-7",
		"title": "  Backend Engineer ",
		"company": "Initech",
		"description": "<p>Join us.</p><ul><li>Ship code</li></ul>",
		"requirements": ["Go", "go", "", "Kubernetes"],
		"salary": {"min": 100000, "max": 150000, "currency": "USD"}
	}`)

	job, err := LoadJob(path)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, []string{"Go", "Kubernetes"}, job.Requirements)
	assert.Equal(t, []string{}, job.NiceToHaves)
	assert.Contains(t, job.Description, "Join us.")
	assert.Contains(t, job.Description, "- Ship code")
	require.NotNil(t, job.Salary)
	assert.Equal(t, 150000, job.Salary.Max)
}

func TestLoadJob_MissingTitle(t *testing.T) {
	_, err := LoadJob(writeFile(t, "job.json", `{"company": "Initech"}`))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "schema validation")
}

func TestLoadJobs(t *testing.T) {
	a := writeFile(t, "a.json", `{"title": "A"}`)
	b := writeFile(t, "b.json", `{"title": "B"}`)

	jobs, err := LoadJobs([]string{a, b})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "B", jobs[1].Title)

	_, err = LoadJobs([]string{a, filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)
}
