package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Models and placeholder keys per provider. A provider counts as configured
// only once its key no longer equals the placeholder.
const (
	GroqModel   = "llama-3.3-70b-versatile"
	OpenAIModel = "gpt-3.5-turbo"

	GroqKeyPlaceholder   = "your-groq-api-key"
	OpenAIKeyPlaceholder = "your-openai-api-key"
)

// Config holds application configuration. It is built once at startup and
// passed by reference; nothing reads ambient env state after Load.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	AIProvider      string
	GroqAPIKey      string
	OpenAIAPIKey    string
	DatabaseURL     string
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "5001"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		AIProvider:      normalizeProvider(getEnv("AI_PROVIDER", "groq")),
		GroqAPIKey:      getEnv("GROQ_API_KEY", GroqKeyPlaceholder),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", OpenAIKeyPlaceholder),
		DatabaseURL:     dbURL,
		Env:             env,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	default:
		return "groq"
	}
}
