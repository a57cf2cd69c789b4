package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "listpad", cfg.App.Name)
	assert.Equal(t, "data/listings.json", cfg.Storage.Path)
	assert.Equal(t, "exports", cfg.Exports.Path)
	assert.Equal(t, "backups", cfg.Backup.StoragePath)
	assert.Equal(t, 14, cfg.Backup.RetentionDays)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
app:
  name: test-app
storage:
  path: ${LISTPAD_TEST_STORAGE}
backup:
  enabled: true
  retention_days: 3
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))
	t.Setenv("LISTPAD_TEST_STORAGE", "/tmp/test-listings.json")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "test-app", cfg.App.Name)
	assert.Equal(t, "/tmp/test-listings.json", cfg.Storage.Path)
	assert.True(t, cfg.Backup.Enabled)
	assert.Equal(t, 3, cfg.Backup.RetentionDays)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched sections still get defaults
	assert.Equal(t, "exports", cfg.Exports.Path)
}

func TestLoadUnparseableFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("storage: [broken"), 0o644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     Config{Storage: StorageConfig{Path: "data/listings.json"}},
			wantErr: false,
		},
		{
			name:    "missing storage path",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name: "negative retention",
			cfg: Config{
				Storage: StorageConfig{Path: "data/listings.json"},
				Backup:  BackupConfig{RetentionDays: -1},
			},
			wantErr: true,
		},
		{
			name: "backup enabled without path",
			cfg: Config{
				Storage: StorageConfig{Path: "data/listings.json"},
				Backup:  BackupConfig{Enabled: true, RetentionDays: 7},
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
