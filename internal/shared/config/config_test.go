package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "uploads/", cfg.Storage.UploadPrefix)
	assert.Equal(t, 600*time.Second, cfg.Storage.UploadURLExpiry)
	assert.Equal(t, NotifyBackendPostgres, cfg.Notify.Backend)
	assert.Equal(t, "phone_numbers", cfg.Notify.Table)
	assert.Equal(t, uint32(5), cfg.Notify.BreakerFailures)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DARKROOM_STORAGE_BUCKET", "party-pics")
	t.Setenv("DARKROOM_STORAGE_SECRET_KEY", "s3cr3t")
	t.Setenv("DARKROOM_DB_URL", "postgres://u:p@db:5432/darkroom")
	t.Setenv("DARKROOM_NOTIFY_BACKEND", "dynamodb")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "party-pics", cfg.Storage.Bucket)
	assert.Equal(t, "s3cr3t", cfg.Storage.SecretAccessKey)
	assert.Equal(t, "postgres://u:p@db:5432/darkroom", cfg.Database.DSN())
	assert.Equal(t, NotifyBackendDynamoDB, cfg.Notify.Backend)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "darkroom.yaml")
	content := `
server:
  address: ":9090"
storage:
  bucket: wedding
  region: eu-west-1
  upload_url_expiry: 5m
rate_limit:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "wedding", cfg.Storage.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Storage.Region)
	assert.Equal(t, 5*time.Minute, cfg.Storage.UploadURLExpiry)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadFile_Example(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("..", "..", "..", "configs", "config.example.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "party-pics", cfg.Storage.Bucket)
	assert.Equal(t, 600*time.Second, cfg.Storage.UploadURLExpiry)
	assert.Equal(t, NotifyBackendPostgres, cfg.Notify.Backend)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Storage:   StorageConfig{UploadURLExpiry: time.Minute},
			Notify:    NotifyConfig{Backend: NotifyBackendPostgres},
			RateLimit: RateLimitConfig{Enabled: true, Limit: 10, Window: time.Minute},
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Notify.Backend = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Storage.UploadURLExpiry = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.RateLimit.Limit = 0
	assert.Error(t, cfg.Validate())

	cfg.RateLimit.Enabled = false
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := &DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "darkroom", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=darkroom sslmode=disable", c.DSN())
}
