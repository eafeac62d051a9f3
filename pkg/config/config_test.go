package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yml")
	err := os.WriteFile(configPath, []byte(content), 0o644)
	require.NoError(t, err)
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: file:test.db
  max_open_conns: 20

auth:
  session_ttl: 24h

llm:
  endpoint: http://localhost:11434/v1
  api_key: test-key
  model: llama3
  temperature: 0.5

news:
  feeds:
    technology:
      - https://example.com/tech.xml
      - https://example.com/ai.xml
    health:
      - https://example.com/health.xml
  timeout: 10s
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:test.db", cfg.Database.DSN)
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
		assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
		assert.Equal(t, "llama3", cfg.LLM.Model)
		assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.0001)
		assert.Len(t, cfg.News.Feeds, 2)
		assert.Equal(t, []string{"https://example.com/tech.xml", "https://example.com/ai.xml"}, cfg.News.Feeds["technology"])
		assert.Equal(t, 10*time.Second, cfg.News.Timeout)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8080\"\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:briefly.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 7*24*time.Hour, cfg.Auth.SessionTTL)
		assert.Equal(t, time.Hour, cfg.Auth.CleanupInterval)
		assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.0001)
		assert.Equal(t, 500, cfg.LLM.MaxTokens)
		assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
		assert.Equal(t, 15*time.Second, cfg.News.Timeout)
		assert.Equal(t, "Briefly/1.0", cfg.News.UserAgent)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("BRIEFLY_TEST_KEY", "secret-from-env")
		configContent := `
llm:
  endpoint: http://localhost:11434/v1
  api_key: ${BRIEFLY_TEST_KEY}
  model: llama3
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		assert.Equal(t, "secret-from-env", cfg.LLM.APIKey)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("llm endpoint without model", func(t *testing.T) {
		configContent := `
llm:
  endpoint: http://localhost:11434/v1
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "llm.model is required")
	})

	t.Run("empty feed category", func(t *testing.T) {
		configContent := `
news:
  feeds:
    technology: []
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "has no feed URLs")
	})
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  listen: \":9090\"\n  timeout: 45s\n"))
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}

func TestConfig_Getters(t *testing.T) {
	configContent := `
llm:
  endpoint: http://localhost:11434/v1
  model: llama3

news:
  feeds:
    technology:
      - https://example.com/tech.xml

calendar:
  google_client_id: client-123
  redirect_url: http://localhost:8080/api/v1/calendar/callback
`
	cfg, err := Load(writeConfig(t, configContent))
	require.NoError(t, err)

	assert.Equal(t, "llama3", cfg.GetLLMConfig().Model)
	assert.Len(t, cfg.GetNewsConfig().Feeds, 1)
	assert.Equal(t, "client-123", cfg.GetCalendarConfig().GoogleClientID)

	sessionTTL, cleanupInterval := cfg.GetAuthConfig()
	assert.Equal(t, 168*time.Hour, sessionTTL, "default session ttl")
	assert.Equal(t, time.Hour, cleanupInterval, "default cleanup interval")
}
