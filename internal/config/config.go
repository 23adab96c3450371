// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/tailor-engine/internal/audit"
	"github.com/jonathan/tailor-engine/internal/fit"
)

// Environment variables that override file configuration
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvSQLitePath  = "TAILOR_SQLITE_PATH"
	EnvActorID     = "TAILOR_ACTOR_ID"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs and outputs
	Profile string   `json:"profile,omitempty"` // Path to candidate profile JSON
	Job     string   `json:"job,omitempty"`     // Path to job posting JSON
	Jobs    []string `json:"jobs,omitempty"`    // Job posting paths for ranking
	OutDir  string   `json:"out_dir,omitempty"` // Directory for exported documents
	Format  string   `json:"format,omitempty"`  // Export file extension

	// Submission identity
	ActorID   string `json:"actor_id,omitempty"`  // Default actor when no token is presented
	TenantID  string `json:"tenant_id,omitempty"` // Tenant recorded on audit entries
	Signature string `json:"signature,omitempty"` // Cover letter signature

	// Audit sink
	AuditSink   string `json:"audit_sink,omitempty"`    // noop, sqlite or postgres
	SQLitePath  string `json:"sqlite_path,omitempty"`   // SQLite audit database path
	DatabaseURL string `json:"database_url,omitempty"`  // PostgreSQL connection URL
	NoopDelayMS int    `json:"noop_delay_ms,omitempty"` // Simulated write latency of the noop sink

	// Static facet scores; nil means the built-in default
	LocationScore *int   `json:"location_score,omitempty"`
	LocationNote  string `json:"location_note,omitempty"`
	SalaryScore   *int   `json:"salary_score,omitempty"`
	SalaryNote    string `json:"salary_note,omitempty"`

	// Behavior
	Workers  int  `json:"workers,omitempty"`   // Concurrent analyses when ranking
	Port     int  `json:"port,omitempty"`      // HTTP server port
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed information
	Debug    bool `json:"debug,omitempty"`     // Debug-level logging
	JSONLogs bool `json:"json_logs,omitempty"` // JSON log encoding
}

// Default returns the built-in defaults
func Default() Config {
	return Config{
		OutDir:     "out",
		Format:     "txt",
		ActorID:    "local-user",
		TenantID:   "default",
		AuditSink:  audit.KindNoop,
		SQLitePath: filepath.Join(".tailor", "audit.db"),
		Workers:    4,
		Port:       8080,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required inputs are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.AuditSink {
	case "", audit.KindNoop, audit.KindSQLite, audit.KindPostgres:
	default:
		return fmt.Errorf("config error: unknown 'audit_sink' %q", c.AuditSink)
	}
	if c.AuditSink == audit.KindPostgres && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required for the postgres audit sink")
	}

	if c.NoopDelayMS < 0 {
		return fmt.Errorf("config error: 'noop_delay_ms' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if err := validScore("location_score", c.LocationScore); err != nil {
		return err
	}
	if err := validScore("salary_score", c.SalaryScore); err != nil {
		return err
	}

	for _, p := range append([]string{c.Profile, c.Job}, c.Jobs...) {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", p)
		}
	}

	return nil
}

func validScore(name string, v *int) error {
	if v != nil && (*v < 0 || *v > 100) {
		return fmt.Errorf("config error: '%s' must be between 0 and 100", name)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	mergeString(&result.Profile, defaults.Profile)
	mergeString(&result.Job, defaults.Job)
	mergeString(&result.OutDir, defaults.OutDir)
	mergeString(&result.Format, defaults.Format)
	mergeString(&result.ActorID, defaults.ActorID)
	mergeString(&result.TenantID, defaults.TenantID)
	mergeString(&result.Signature, defaults.Signature)
	mergeString(&result.AuditSink, defaults.AuditSink)
	mergeString(&result.SQLitePath, defaults.SQLitePath)
	mergeString(&result.DatabaseURL, defaults.DatabaseURL)
	mergeString(&result.LocationNote, defaults.LocationNote)
	mergeString(&result.SalaryNote, defaults.SalaryNote)

	if len(result.Jobs) == 0 {
		result.Jobs = append([]string(nil), defaults.Jobs...)
	}
	if result.NoopDelayMS == 0 {
		result.NoopDelayMS = defaults.NoopDelayMS
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LocationScore == nil {
		result.LocationScore = defaults.LocationScore
	}
	if result.SalaryScore == nil {
		result.SalaryScore = defaults.SalaryScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func mergeString(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}

// ApplyEnv overrides connection settings and the default actor from the environment
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := getenv(EnvSQLitePath); v != "" {
		c.SQLitePath = v
	}
	if v := getenv(EnvActorID); v != "" {
		c.ActorID = v
	}
}

// FacetDefaults returns the static location and salary facets for the fit analyzer
func (c *Config) FacetDefaults() fit.FacetDefaults {
	d := fit.DefaultFacetDefaults()
	if c.LocationScore != nil {
		d.LocationScore = *c.LocationScore
	}
	if c.LocationNote != "" {
		d.LocationNote = c.LocationNote
	}
	if c.SalaryScore != nil {
		d.SalaryScore = *c.SalaryScore
	}
	if c.SalaryNote != "" {
		d.SalaryNote = c.SalaryNote
	}
	return d
}

// AuditOptions returns the audit sink selection
func (c *Config) AuditOptions() audit.Options {
	return audit.Options{
		Kind:        c.AuditSink,
		SQLitePath:  c.SQLitePath,
		DatabaseURL: c.DatabaseURL,
		NoopDelay:   time.Duration(c.NoopDelayMS) * time.Millisecond,
	}
}
