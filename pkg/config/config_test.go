package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("database:\n  user: explorer\n"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "explorer", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Monitoring.Enabled)
	assert.True(t, cfg.Nodes.DegradeOnError)
}

func TestParse_FileOverridesDefaults(t *testing.T) {
	raw := []byte(`
server:
  port: 9000
  read_timeout: 5s
database:
  host: db.internal
  user: reader
  password: secret
  database: ontology_explorer
logging:
  level: debug
  format: console
nodes:
  degrade_on_error: false
`)
	cfg, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "ontology_explorer", cfg.Database.Database)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Nodes.DegradeOnError)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
}

func TestParse_EnvOverridesFile(t *testing.T) {
	t.Setenv(EnvDatabasePassword, "from-env")
	t.Setenv(EnvDatabasePort, "6543")

	cfg, err := Parse([]byte("database:\n  user: reader\n  password: from-file\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestParse_InvalidEnvPort(t *testing.T) {
	t.Setenv(EnvDatabasePort, "not-a-port")

	_, err := Parse([]byte("database:\n  user: reader\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDatabasePort)
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"missing user":   "database:\n  host: localhost\n",
		"bad log level":  "database:\n  user: u\nlogging:\n  level: verbose\n",
		"bad ssl mode":   "database:\n  user: u\n  ssl_mode: maybe\n",
		"port too large": "database:\n  user: u\nserver:\n  port: 70000\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("database:\n  user: u\n  hostname: typo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  user: reader\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "reader", cfg.Database.User)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "warn", Format: "json", OutputPath: "stdout"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
}
