package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	Port                int      `env:"PORT" envDefault:"8000"`
	LogLevel            string   `env:"LOG_LEVEL" envDefault:"info"`
	ProjectRoot         string   `env:"PROJECT_ROOT"` // defaults to the working directory
	ModelPath           string   `env:"MODEL_PATH" envDefault:"models/model_1x2.json"`
	FeatureColumnsPath  string   `env:"FEATURE_COLUMNS_PATH" envDefault:"models/feature_columns.json"`
	ClassifierEnabled   bool     `env:"CLASSIFIER_ENABLED" envDefault:"true"`
	ArtifactLoadTimeout int      `env:"ARTIFACT_LOAD_TIMEOUT" envDefault:"5"` // seconds
	RequestTimeout      int      `env:"REQUEST_TIMEOUT" envDefault:"30"`      // seconds
	RateLimitRPS        float64  `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst      int      `env:"RATE_LIMIT_BURST" envDefault:"40"`
	CORSAllowedOrigins  []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	MaxUploadMB         int      `env:"MAX_UPLOAD_MB" envDefault:"10"`
	TelegramBotToken    string   `env:"TELEGRAM_BOT_TOKEN"`
	PredictorAPIURL     string   `env:"PREDICTOR_API_URL" envDefault:"http://localhost:8000"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.Port = getEnvIntWithDefault("PORT", 8000)
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.ProjectRoot = os.Getenv("PROJECT_ROOT")
	if cfg.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.ProjectRoot = wd
	}
	cfg.ModelPath = getEnvWithDefault("MODEL_PATH", "models/model_1x2.json")
	cfg.FeatureColumnsPath = getEnvWithDefault("FEATURE_COLUMNS_PATH", "models/feature_columns.json")
	cfg.ClassifierEnabled = getEnvBoolWithDefault("CLASSIFIER_ENABLED", true)
	cfg.ArtifactLoadTimeout = getEnvIntWithDefault("ARTIFACT_LOAD_TIMEOUT", 5)
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 30)
	cfg.RateLimitRPS = getEnvFloatWithDefault("RATE_LIMIT_RPS", 20)
	cfg.RateLimitBurst = getEnvIntWithDefault("RATE_LIMIT_BURST", 40)
	cfg.CORSAllowedOrigins = getEnvListWithDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	cfg.MaxUploadMB = getEnvIntWithDefault("MAX_UPLOAD_MB", 10)
	cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.PredictorAPIURL = strings.TrimRight(getEnvWithDefault("PREDICTOR_API_URL", "http://localhost:8000"), "/")

	return &cfg, nil
}

// ResolvePath makes p absolute relative to the project root.
func (c *Config) ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectRoot, p)
}

// ModelFile is the absolute path of the classifier artifact
func (c *Config) ModelFile() string {
	return c.ResolvePath(c.ModelPath)
}

// FeatureColumnsFile is the absolute path of the feature-column list
func (c *Config) FeatureColumnsFile() string {
	return c.ResolvePath(c.FeatureColumnsPath)
}

// MaxUploadBytes is the body limit for fixture uploads
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvListWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
