package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// Values are not validated; a missing API key only shows up when the matching
// service call fails and falls back to its default.
type Config struct {
	ListingsURL string

	GrokAPIKey     string
	VisionAPIKey   string
	Chrono24APIKey string

	ChromeBin   string
	PageSettle  time.Duration
	PageTimeout time.Duration
	HTTPTimeout time.Duration

	Debug bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		ListingsURL: getEnv("KLEINANZEIGEN_URL", ""),

		GrokAPIKey:     getEnv("GROK_API_KEY", ""),
		VisionAPIKey:   getEnv("GOOGLE_LENS_API_KEY", ""),
		Chrono24APIKey: getEnv("CHRONO24_API_KEY", ""),

		ChromeBin:   getEnv("CHROME_BIN", getEnv("CHROMEDRIVER_PATH", "")),
		PageSettle:  time.Duration(getEnvInt("PAGE_SETTLE_MS", 2000)) * time.Millisecond,
		PageTimeout: time.Duration(getEnvInt("PAGE_TIMEOUT_SEC", 60)) * time.Second,
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SEC", 30)) * time.Second,

		Debug: getEnvBool("LOG_DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
