// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// StateTable selects DynamoDB sessions. Empty keeps sessions in memory.
	StateTable  string `env:"STATE_TABLE"`
	ParamPrefix string `env:"PARAM_PREFIX"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	GroqAPIKey         string        `env:"GROQ_API_KEY"`
	CompletionBaseURL  string        `env:"COMPLETION_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	CompletionModels   []string      `env:"COMPLETION_MODELS" envSeparator:"," envDefault:"llama-3.1-8b-instant,llama-3.1-70b-versatile,mixtral-8x7b-32768,gemma-7b-it"`
	CompletionTimeout  time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"25s"`
	ContextWindow      int           `env:"CONTEXT_WINDOW" envDefault:"10"`
	MaxMessageLength   int           `env:"MAX_MESSAGE_LENGTH" envDefault:"500"`
	SessionCacheSize   int           `env:"SESSION_CACHE_SIZE" envDefault:"1024"`
	KnowledgeParameter string        `env:"KNOWLEDGE_PARAMETER" envDefault:"knowledge_base"`

	NewsAPIKey   string        `env:"NEWS_API_KEY"`
	NewsBaseURL  string        `env:"NEWS_BASE_URL" envDefault:"https://newsapi.org/v2"`
	NewsCacheTTL time.Duration `env:"NEWS_CACHE_TTL" envDefault:"10m"`
}

// Load reads an optional .env file, then the environment. Variables already
// set in the environment win over the file.
func Load(dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load dotenv: %w", err)
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	cfg.StateTable = strings.TrimSpace(cfg.StateTable)
	cfg.ParamPrefix = strings.TrimRight(strings.TrimSpace(cfg.ParamPrefix), "/")
	cfg.GroqAPIKey = strings.TrimSpace(cfg.GroqAPIKey)
	cfg.NewsAPIKey = strings.TrimSpace(cfg.NewsAPIKey)

	models := cfg.CompletionModels[:0]
	for _, m := range cfg.CompletionModels {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	cfg.CompletionModels = models

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if len(c.CompletionModels) == 0 {
		errs = append(errs, errors.New("COMPLETION_MODELS must name at least one model"))
	}
	if c.CompletionTimeout <= 0 {
		errs = append(errs, errors.New("COMPLETION_TIMEOUT must be positive"))
	}
	if c.ContextWindow <= 0 {
		errs = append(errs, errors.New("CONTEXT_WINDOW must be positive"))
	}
	if c.MaxMessageLength <= 0 {
		errs = append(errs, errors.New("MAX_MESSAGE_LENGTH must be positive"))
	}
	if c.SessionCacheSize <= 0 {
		errs = append(errs, errors.New("SESSION_CACHE_SIZE must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// NeedsAWS reports whether any AWS-backed component is configured.
func (c *Config) NeedsAWS() bool {
	return c.StateTable != "" || c.ParamPrefix != ""
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
