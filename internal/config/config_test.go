package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"profile": "profile.json",
		"jobs": ["a.json", "b.json"],
		"audit_sink": "sqlite",
		"sqlite_path": "data/audit.db",
		"location_score": 80,
		"workers": 2,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "profile.json", cfg.Profile)
	assert.Equal(t, []string{"a.json", "b.json"}, cfg.Jobs)
	assert.Equal(t, "sqlite", cfg.AuditSink)
	assert.Equal(t, "data/audit.db", cfg.SQLitePath)
	require.NotNil(t, cfg.LocationScore)
	assert.Equal(t, 80, *cfg.LocationScore)
	assert.Nil(t, cfg.SalaryScore)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	_, err := LoadConfig(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Default()},
		{name: "unknown sink", cfg: Config{AuditSink: "kafka"}, wantErr: "unknown 'audit_sink'"},
		{name: "postgres without url", cfg: Config{AuditSink: "postgres"}, wantErr: "'database_url' is required"},
		{name: "postgres with url", cfg: Config{AuditSink: "postgres", DatabaseURL: "postgres://localhost/db"}},
		{name: "negative delay", cfg: Config{NoopDelayMS: -1}, wantErr: "'noop_delay_ms'"},
		{name: "negative workers", cfg: Config{Workers: -2}, wantErr: "'workers'"},
		{name: "port out of range", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "location score too high", cfg: Config{LocationScore: intPtr(101)}, wantErr: "'location_score'"},
		{name: "salary score negative", cfg: Config{SalaryScore: intPtr(-5)}, wantErr: "'salary_score'"},
		{name: "scores at bounds", cfg: Config{LocationScore: intPtr(0), SalaryScore: intPtr(100)}},
		{name: "missing input", cfg: Config{Job: "/nonexistent/job.json"}, wantErr: "input file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		Profile: "mine.json",
		Workers: 8,
		Verbose: true,
	}

	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, "mine.json", merged.Profile)
	assert.Equal(t, 8, merged.Workers)
	assert.Equal(t, "out", merged.OutDir)
	assert.Equal(t, "txt", merged.Format)
	assert.Equal(t, "noop", merged.AuditSink)
	assert.Equal(t, 8080, merged.Port)
	assert.True(t, merged.Verbose)
	assert.Empty(t, cfg.OutDir, "original must not be modified")
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Job: "job.json", Port: 9000}
	merged := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, cfg, merged)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDatabaseURL: "postgres://u:p@db:5432/tailor",
		EnvActorID:     "recruiter-7",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "postgres://u:p@db:5432/tailor", cfg.DatabaseURL)
	assert.Equal(t, "recruiter-7", cfg.ActorID)
	assert.Equal(t, Default().SQLitePath, cfg.SQLitePath)
}

func TestFacetDefaults(t *testing.T) {
	cfg := Config{LocationScore: intPtr(60), LocationNote: "Hybrid, 3 days on site"}
	d := cfg.FacetDefaults()

	assert.Equal(t, 60, d.LocationScore)
	assert.Equal(t, "Hybrid, 3 days on site", d.LocationNote)
	assert.Equal(t, 100, d.SalaryScore)
	assert.NotEmpty(t, d.SalaryNote)
}

func TestAuditOptions(t *testing.T) {
	cfg := Config{AuditSink: "sqlite", SQLitePath: "x.db", NoopDelayMS: 250}
	opts := cfg.AuditOptions()

	assert.Equal(t, "sqlite", opts.Kind)
	assert.Equal(t, "x.db", opts.SQLitePath)
	assert.Equal(t, 250*time.Millisecond, opts.NoopDelay)
}
