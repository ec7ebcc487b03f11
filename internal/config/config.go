package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string `validate:"required"`
	GinMode       string `validate:"oneof=debug release test"`
	DBDriver      string `validate:"oneof=mysql postgres sqlite"`
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string `validate:"required"`
	DBLogLevel    string `validate:"oneof=silent error warn info"`
	RedisHost     string
	RedisPort     string
	SessionSecret string `validate:"required,min=16"`
	OpenAIAPIKey  string
	LogLevel      string `validate:"oneof=debug info warn error dpanic panic fatal"`
	LogFormat     string `validate:"oneof=json console"`
	UploadDir     string `validate:"required"`
	PublicBaseURL string `validate:"required"`
	SeedFile      string
	SeedRandom    uint64
	ReportPrefix  string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from the environment, after loading .env files if present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	seedRandom, err := strconv.ParseUint(getEnv("SEED_RANDOM_SEED", "1"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_RANDOM_SEED: %w", err)
	}

	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "portfolio"),
		DBPassword:    getEnv("DB_PASSWORD", "portfoliopassword"),
		DBName:        getEnv("DB_NAME", "portfolio"),
		DBLogLevel:    getEnv("DB_LOG_LEVEL", "warn"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080/uploads"),
		SeedFile:      getEnv("SEED_FILE", ""),
		SeedRandom:    seedRandom,
		ReportPrefix:  getEnv("REPORT_PREFIX", "bilaad"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or exits the process on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
