package common

import (
	"os"
	"strings"
)

// Config holds application configuration, read once at startup.
type Config struct {
	Port           string
	DBFile         string
	ContentDir     string
	CacheDir       string
	Environment    string
	AllowedOrigins []string

	HighlightTheme   string
	DefaultLanguage  string
	FallbackLanguage string
}

// LoadConfig returns configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		DBFile:         getEnv("sqlite_db", "quill.db"),
		ContentDir:     getEnv("CONTENT_DIR", "blogs"),
		CacheDir:       getEnv("CACHE_DIR", "cache"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),

		HighlightTheme:   getEnv("HIGHLIGHT_THEME", "tokyonight-night"),
		DefaultLanguage:  getEnv("HIGHLIGHT_DEFAULT_LANG", "text"),
		FallbackLanguage: getEnv("HIGHLIGHT_FALLBACK_LANG", "text"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
