package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported model providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const (
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultOpenAIEndpoint = "https://api.openai.com/v1"
	DefaultPort           = "8080"
	DefaultMaxUploadMB    = 32
)

// Config stores runtime configuration loaded from environment variables.
// It is read once at startup and never mutated afterwards.
type Config struct {
	Provider string

	GeminiAPIKey string
	GeminiModel  string

	OpenAIKey      string
	OpenAIEndpoint string
	OpenAIModel    string

	Port           string
	AllowedOrigins []string
	MaxUploadBytes int64
}

// LoadDotEnv loads a .env file if one exists. A missing file is not an error.
func LoadDotEnv() {
	err := godotenv.Load()
	if err == nil {
		log.Println("INFO: .env file loaded successfully.")
		return
	}
	if os.IsNotExist(err) {
		log.Println("WARN: .env file not found. Relying on system environment variables.")
		return
	}
	log.Printf("WARN: Error loading .env file: %v", err)
}

// Load reads configuration from the environment and validates it.
// The credential for the selected provider is required.
func Load() (Config, error) {
	cfg := Config{
		Provider:       strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", DefaultGeminiModel),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIEndpoint: getEnv("OPENAI_API_ENDPOINT", DefaultOpenAIEndpoint),
		OpenAIModel:    getEnv("OPENAI_MODEL", DefaultOpenAIModel),
		Port:           getEnv("PORT", DefaultPort),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	maxMB := DefaultMaxUploadMB
	if raw := os.Getenv("MAX_UPLOAD_MB"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("MAX_UPLOAD_MB must be a positive integer, got %q", raw)
		}
		maxMB = n
	}
	cfg.MaxUploadBytes = int64(maxMB) << 20

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return Config{}, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return Config{}, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	default:
		return Config{}, fmt.Errorf("unsupported LLM_PROVIDER %q (want %q or %q)", cfg.Provider, ProviderGemini, ProviderOpenAI)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSuffix(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
