package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func missingDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COMPLETION_MODELS", "")
	os.Unsetenv("COMPLETION_MODELS")

	cfg, err := Load(missingDotenv(t))
	require.NoError(t, err)
	require.Equal(t, []string{"llama-3.1-8b-instant", "llama-3.1-70b-versatile", "mixtral-8x7b-32768", "gemma-7b-it"}, cfg.CompletionModels)
	require.Equal(t, 25*time.Second, cfg.CompletionTimeout)
	require.Equal(t, 10, cfg.ContextWindow)
	require.Equal(t, 500, cfg.MaxMessageLength)
	require.Equal(t, 10*time.Minute, cfg.NewsCacheTTL)
	require.Equal(t, "https://api.groq.com/openai/v1", cfg.CompletionBaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STATE_TABLE", " sessions ")
	t.Setenv("PARAM_PREFIX", "/portfolio-assistant/")
	t.Setenv("COMPLETION_MODELS", " a , ,b ")
	t.Setenv("COMPLETION_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load(missingDotenv(t))
	require.NoError(t, err)
	require.Equal(t, "sessions", cfg.StateTable)
	require.Equal(t, "/portfolio-assistant", cfg.ParamPrefix)
	require.Equal(t, []string{"a", "b"}, cfg.CompletionModels)
	require.Equal(t, 5*time.Second, cfg.CompletionTimeout)
	require.True(t, cfg.NeedsAWS())
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NEWS_API_KEY=from-file\nGROQ_API_KEY=from-file\n"), 0o600))
	t.Setenv("GROQ_API_KEY", "from-env")
	t.Setenv("NEWS_API_KEY", "")
	os.Unsetenv("NEWS_API_KEY")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.GroqAPIKey)
	require.Equal(t, "from-file", cfg.NewsAPIKey)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CONTEXT_WINDOW", "0")
	_, err := Load(missingDotenv(t))
	require.ErrorContains(t, err, "CONTEXT_WINDOW")

	t.Setenv("CONTEXT_WINDOW", "ten")
	_, err = Load(missingDotenv(t))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	c := &Config{}
	err := c.Validate()
	require.ErrorContains(t, err, "COMPLETION_MODELS")
	require.ErrorContains(t, err, "SESSION_CACHE_SIZE")
	require.False(t, c.NeedsAWS())
	require.Equal(t, slog.LevelInfo, c.SlogLevel())
}
