package base

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, name string, mutate func(cfg *config.Config)) string {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Database.Database = filepath.Join(dir, "airport.db")
	cfg.Server.HttpServer.Store.LocalStorePath = filepath.Join(dir, "upload")
	cfg.Server.HttpServer.Email.Template.OrderConfirmationTemplateFile = filepath.Join(dir, "order.template")
	if mutate != nil {
		mutate(cfg)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, saveConfig(path, cfg))
	return path
}

func TestManagerCreatesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	manager := NewManagerWithPath(log.NewNullLogger(), path, "")

	_, err := manager.Load()
	assert.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var written map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, config.ConfVersion.String(), written["config_version"])
}

func TestManagerLoadsJsonAndYaml(t *testing.T) {
	for _, name := range []string{"config.json", "config.yaml"} {
		path := writeTestConfig(t, name, nil)
		cfg, err := NewManagerWithPath(log.NewNullLogger(), path, "").Load()
		require.NoError(t, err, name)
		assert.Equal(t, config.SQLite, cfg.Database.DBType, name)
		assert.Equal(t, 100, cfg.Server.HttpServer.Limits.MaxPageSize, name)
		assert.Positive(t, cfg.Server.Maintenance.SweepDuration, name)
	}
}

func TestManagerRejectsInvalidSections(t *testing.T) {
	tests := map[string]func(cfg *config.Config){
		"version":       func(cfg *config.Config) { cfg.ConfigVersion = "0.1.0" },
		"database type": func(cfg *config.Config) { cfg.Database.Type = "oracle" },
		"query timeout": func(cfg *config.Config) { cfg.Database.QueryTimeout = "soon" },
		"bcrypt":        func(cfg *config.Config) { cfg.Server.General.BcryptCost = 99 },
		"rate limit":    func(cfg *config.Config) { cfg.Server.HttpServer.Limits.RateLimit = 0 },
		"page size":     func(cfg *config.Config) { cfg.Server.HttpServer.Limits.DefaultPageSize = 500 },
		"store type":    func(cfg *config.Config) { cfg.Server.HttpServer.Store.StoreType = 7 },
		"sweep":         func(cfg *config.Config) { cfg.Server.Maintenance.SweepInterval = "1ms" },
		"kafka":         func(cfg *config.Config) { cfg.Server.Kafka.Enabled = true; cfg.Server.Kafka.Brokers = nil },
	}
	for name, mutate := range tests {
		path := writeTestConfig(t, "config.json", mutate)
		_, err := NewManagerWithPath(log.NewNullLogger(), path, "").Load()
		assert.Error(t, err, name)
	}
}

func TestEnvironmentOverridesSecrets(t *testing.T) {
	path := writeTestConfig(t, "config.json", nil)
	envFile := filepath.Join(filepath.Dir(path), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("AIRPORT_JWT_SECRET=from-env\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("AIRPORT_JWT_SECRET") })

	cfg, err := NewManagerWithPath(log.NewNullLogger(), path, envFile).Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Server.HttpServer.JWT.Secret)
}
