package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
shutdown_timeout = 5

[database]
host = "db.internal"
port = 5433
user = "policies"
password = "secret"
dbname = "policies"

[logs]
file = "service.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "policy-service"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "default applies when unset")
	assert.Equal(t, "host=db.internal port=5433 user=policies password=secret dbname=policies sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "policy-service", cfg.Metrics.ServiceName)
}

func TestLoadRequiresDBName(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "dbname is required")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
