package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvOnly(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key-123")
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("REMOTE_TIMEOUT_SECONDS", "10")

	// No config.yaml in the directory: env vars must carry everything.
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "test-key-123", cfg.GeminiAPIKey)
	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, 10, cfg.RemoteTimeoutSeconds)
	assert.Equal(t, "gemini", cfg.Provider, "provider derives from the configured key")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("REMOTE_TIMEOUT_SECONDS", "")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 45, cfg.RemoteTimeoutSeconds)
	// No credential is not an error, the server runs fallback-only.
	assert.Empty(t, cfg.Provider)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("SERVER_ADDRESS", "")

	dir := t.TempDir()
	yaml := "SERVER_ADDRESS: \":7070\"\nOPENAI_API_KEY: file-key\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddress)
	assert.Equal(t, "file-key", cfg.OpenAIKey)
	assert.Equal(t, "openai", cfg.Provider)
}
