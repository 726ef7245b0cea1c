package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port           string        `validate:"required,numeric"`
	Env            string        `validate:"required"`
	PostsAPIURL    string        `validate:"required,url"`
	CarsAPIURL     string        `validate:"required,url"`
	APITimeout     time.Duration `validate:"gt=0"`
	SearchDebounce time.Duration `validate:"gte=0"`
	PageSize       int           `validate:"min=1,max=200"`
	UserPrefetch   int           `validate:"min=0,max=100"`
	LatestCount    int           `validate:"min=1,max=100"`
	SessionTTL     time.Duration `validate:"gt=0"`
	LogLevel       string        `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat      string        `validate:"oneof=json text"`
	ImageDomains   []string      `validate:"dive,hostname"`
}

// Load reads the configuration from the environment, loading a .env file first if present
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		PostsAPIURL:    strings.TrimRight(getEnv("POSTS_API_URL", "https://jsonplaceholder.typicode.com"), "/"),
		CarsAPIURL:     strings.TrimRight(getEnv("CARS_API_URL", "https://myfakeapi.com/api"), "/"),
		APITimeout:     getDuration("API_TIMEOUT", 10*time.Second),
		SearchDebounce: getDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		PageSize:       getInt("PAGE_SIZE", 20),
		UserPrefetch:   getInt("USER_PREFETCH", 20),
		LatestCount:    getInt("LATEST_COUNT", 6),
		SessionTTL:     getDuration("SESSION_TTL", 30*time.Minute),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),
		ImageDomains:   getList("IMAGE_DOMAINS", []string{"images.unsplash.com", "upload.wikimedia.org"}),
	}
}

// Validate checks the loaded values against their constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("Invalid integer for %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.Warnf("Invalid duration for %s=%q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
