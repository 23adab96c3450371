package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFunc(env map[string]string) func(string) string {
	return func(k string) string { return env[k] }
}

func TestNewJWTConfig_DefaultValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret-key", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestJWTConfig_CustomExpiration(t *testing.T) {
	cfg, err := jwtConfigFrom(envFunc(map[string]string{
		"JWT_SECRET":           "s",
		"JWT_EXPIRATION_HOURS": "48",
	}))
	require.NoError(t, err)
	assert.Equal(t, 48, cfg.ExpirationHours)
}

func TestJWTConfig_MissingSecret(t *testing.T) {
	_, err := jwtConfigFrom(envFunc(map[string]string{"JWT_EXPIRATION_HOURS": "12"}))
	require.ErrorIs(t, err, ErrJWTSecretMissing)
}

func TestJWTConfig_InvalidExpiration(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"not a number", "abc", "invalid JWT_EXPIRATION_HOURS"},
		{"zero", "0", "at least 1 hour"},
		{"negative", "-3", "at least 1 hour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jwtConfigFrom(envFunc(map[string]string{
				"JWT_SECRET":           "s",
				"JWT_EXPIRATION_HOURS": tt.value,
			}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
