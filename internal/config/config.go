package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string `validate:"required,numeric"`
	LogLevel string `validate:"oneof=debug info warn error"`
	GinMode  string `validate:"omitempty,oneof=debug release test"`
	// Optional YAML file replacing the built-in questions and options.
	ScriptFile string
	// Origins granted cross-origin access; "*" allows any origin without credentials.
	CORSAllowedOrigins []string `validate:"dive,required"`

	Assistant AssistantConfig
	Session   SessionConfig
}

type AssistantConfig struct {
	Provider     string `validate:"oneof=openai gemini"`
	OpenAIAPIKey string `validate:"required_if=Provider openai"`
	OpenAIModel  string `validate:"required"`
	// Empty means the public OpenAI endpoint.
	OpenAIBaseURL string `validate:"omitempty,url"`
	GeminiAPIKey  string `validate:"required_if=Provider gemini"`
	GeminiModel   string `validate:"required"`
	SystemPrompt  string `validate:"required"`
	Timeout       time.Duration
}

type SessionConfig struct {
	Backend      string `validate:"oneof=cookie memory"`
	Secret       string `validate:"required"`
	CookieName   string `validate:"required"`
	CookieSecure bool
	TTL          time.Duration `validate:"gt=0"`
}

// Model returns the model identifier of the selected provider.
func (a AssistantConfig) Model() string {
	if a.Provider == "gemini" {
		return a.GeminiModel
	}
	return a.OpenAIModel
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from environment variables only.
func FromEnv() (*Config, error) {
	timeout, err := getEnvDuration("ASSISTANT_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}
	ttl, err := getEnvDuration("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	secure, err := getEnvBool("SESSION_COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               getEnvWithDefault("PORT", "8080"),
		LogLevel:           strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
		GinMode:            os.Getenv("GIN_MODE"),
		ScriptFile:         os.Getenv("SCRIPT_FILE"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		Assistant: AssistantConfig{
			Provider:      strings.ToLower(getEnvWithDefault("ASSISTANT_PROVIDER", "openai")),
			OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:   getEnvWithDefault("OPENAI_MODEL", "gpt-4o"),
			OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
			GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
			GeminiModel:   getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"),
			SystemPrompt:  getEnvWithDefault("ASSISTANT_SYSTEM_PROMPT", "You are a helpful assistant."),
			Timeout:       timeout,
		},
		Session: SessionConfig{
			Backend:      strings.ToLower(getEnvWithDefault("SESSION_BACKEND", "cookie")),
			Secret:       os.Getenv("SECRET_KEY"),
			CookieName:   getEnvWithDefault("SESSION_COOKIE_NAME", "session"),
			CookieSecure: secure,
			TTL:          ttl,
		},
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList splits a comma-separated variable, dropping blank items.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, value, err)
	}
	return d, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid bool %q: %w", key, value, err)
	}
	return b, nil
}
