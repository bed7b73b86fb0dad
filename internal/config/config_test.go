package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"database_url": "postgres://localhost/screener",
		"reference_table": "top_employees",
		"concurrency": 8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "postgres://localhost/screener", cfg.DatabaseURL)
	assert.Equal(t, "top_employees", cfg.ReferenceTable)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := "database_url: sqlite://pool.db\ncandidate_table: applicants\nnormalize_skills: true\nport: 9090\n"

	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "sqlite://pool.db", cfg.DatabaseURL)
	assert.Equal(t, "applicants", cfg.CandidateTable)
	assert.True(t, cfg.NormalizeSkills)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("port: [unclosed"), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Defaults(), ""},
		{"negative concurrency", Config{Concurrency: -1}, "concurrency"},
		{"port out of range", Config{Port: 70000}, "port"},
		{"negative rate limit", Config{RateLimitBurst: -1}, "rate limits"},
		{"same tables", Config{ReferenceTable: "pool", CandidateTable: "pool"}, "must differ"},
		{"missing stopwords", Config{StopwordsPath: "/nonexistent/stopwords.txt"}, "stopwords file not found"},
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
	cfg := &Config{ReferenceTable: "custom", Port: 9000}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "custom", merged.ReferenceTable)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "candidates", merged.CandidateTable)
	assert.Equal(t, "sqlite://screener.db", merged.DatabaseURL)
	assert.Equal(t, 4, merged.Concurrency)
	// original untouched
	assert.Empty(t, cfg.CandidateTable)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgres://env/screener")
	t.Setenv(EnvTable, "env_employees")
	t.Setenv(EnvPort, "7070")

	cfg := &Config{DatabaseURL: "sqlite://file.db"}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "postgres://env/screener", cfg.DatabaseURL)
	assert.Equal(t, "env_employees", cfg.ReferenceTable)
	assert.Equal(t, 7070, cfg.Port)
}

func TestApplyEnv_InvalidPort(t *testing.T) {
	t.Setenv(EnvPort, "eighty")

	cfg := &Config{}
	err := cfg.ApplyEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoad_WithoutFile(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")
	t.Setenv(EnvTable, "")
	t.Setenv(EnvStopwordsPath, "")
	t.Setenv(EnvPort, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Defaults(), *cfg)
}
