package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8000"`
	LogMode string `env:"LOG_MODE" envDefault:"development"`

	UserDBPath string `env:"USER_DB_PATH" envDefault:"users.db"`
	ChatDBPath string `env:"CHAT_DB_PATH" envDefault:"chat_history.db"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5500"`

	// AI provider
	AIProvider    string `env:"AI_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	OllamaBaseURL string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaModel   string `env:"OLLAMA_MODEL" envDefault:"llama3:latest"`

	// guest session store
	GuestSessionLimit int           `env:"GUEST_SESSION_LIMIT" envDefault:"1000"`
	GuestSessionTTL   time.Duration `env:"GUEST_SESSION_TTL" envDefault:"24h"`
}

// New reads a .env file when present, then the process environment.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if strings.EqualFold(cfg.AIProvider, "gemini") && strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER=gemini")
	}
	return cfg, nil
}
