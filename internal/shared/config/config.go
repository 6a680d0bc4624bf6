package config

import (
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration. The editor is a single-user local
// application: it listens on localhost and keeps its state under DataDir.
type Config struct {
	Host            string
	Port            string
	DataDir         string
	SaveDebounce    time.Duration
	ChromePath      string
	CORSAllowOrigin []string
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env")

	return Config{
		Host:            getEnv("HOST", "127.0.0.1"),
		Port:            getEnv("PORT", "8080"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		SaveDebounce:    debounceWindow(getEnv("SAVE_DEBOUNCE_MS", "1000")),
		ChromePath:      getEnv("CHROME_PATH", ""),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
	}
}

func debounceWindow(raw string) time.Duration {
	ms, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || ms <= 0 {
		return time.Second
	}
	return time.Duration(ms) * time.Millisecond
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
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
