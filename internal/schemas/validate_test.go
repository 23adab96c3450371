package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for _, name := range []string{ProfileSchema, JobSchema} {
		t.Run(name, func(t *testing.T) {
			content, err := Schema(name)
			require.NoError(t, err)

			var v any
			assert.NoError(t, json.Unmarshal([]byte(content), &v))
		})
	}
}

func TestSchema_NotFound(t *testing.T) {
	_, err := Schema("missing.schema.json")

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "schema not found")
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{"full", `{"name":"Jane","email":"j@x.io","skills":["Go"],"experience":[{"title":"Dev","company":"Acme"}],"education":[{"degree":"BS","institution":"MIT","year":"2019"}]}`, false},
		{"empty object", `{}`, false},
		{"null lists", `{"skills":null,"experience":null}`, false},
		{"skills wrong type", `{"skills":"Go, Python"}`, true},
		{"experience item wrong type", `{"experience":["Dev at Acme"]}`, true},
		{"not an object", `[]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile([]byte(tt.json))
			if tt.wantErr {
				var valErr *ValidationError
				require.True(t, errors.As(err, &valErr), "got %v", err)
				assert.NotEmpty(t, valErr.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJob(t *testing.T) {
	assert.NoError(t, ValidateJob([]byte(`{"title":"Engineer","requirements":["Go"],"salary":{"min":1,"max":2}}`)))

	err := ValidateJob([]byte(`{"company":"Acme"}`))
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "(root)", valErr.Errors[0].Field)
	assert.Contains(t, err.Error(), "validation failed")

	err = ValidateJob([]byte(`{"title":"Engineer","salary":{"min":-5}}`))
	assert.Error(t, err)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type":"object","properties":{"name":{"type":"string"}},"required":["name"]}`

	assert.NoError(t, ValidateJSONString(schema, `{"name":"x"}`))
	assert.Error(t, ValidateJSONString(schema, `{"name":1}`))

	err := ValidateJSONString(`{"type":`, `{}`)
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
