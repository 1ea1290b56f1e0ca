package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/order"

	"github.com/joho/godotenv"
)

// Storage backends selectable through STORAGE.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	Storage    string

	OrderTransitionPolicy string
	LogLevel              string
	LogFormat             string

	KafkaHost              string
	KafkaOrderChangedTopic string
	RedisAddr              string
	IdempotencyTTL         time.Duration

	ReportCron         string
	CORSAllowedOrigins []string
	PublicBaseURL      string
}

// LoadConfig reads the configuration from the environment. Variables found
// in envFile are loaded first without overriding the environment; a missing
// file is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	ttl, err := getEnvAsDuration("IDEMPOTENCY_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "marketplace"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),
		Storage:    strings.ToLower(getEnv("STORAGE", StoragePostgres)),

		OrderTransitionPolicy: getEnv("ORDER_TRANSITION_POLICY", "strict"),
		LogLevel:              strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:             strings.ToLower(getEnv("LOG_FORMAT", "json")),

		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		IdempotencyTTL:         ttl,

		ReportCron:         getEnv("REPORT_CRON", "@hourly"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the values LoadConfig cannot default.
func (c Config) Validate() error {
	var result []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		result = append(result, fmt.Errorf("invalid http port: %s", c.HTTPPort))
	}

	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DBHost == "" {
			result = append(result, errors.New("database host is required"))
		}
		if port, err := strconv.Atoi(c.DBPort); err != nil || port < 1 || port > 65535 {
			result = append(result, fmt.Errorf("invalid database port: %s", c.DBPort))
		}
		if c.DBUser == "" {
			result = append(result, errors.New("database user is required"))
		}
		if c.DBName == "" {
			result = append(result, errors.New("database name is required"))
		}
	default:
		result = append(result, fmt.Errorf("invalid storage: %s (must be postgres or memory)", c.Storage))
	}

	if _, err := order.ParseTransitionPolicy(c.OrderTransitionPolicy); err != nil {
		result = append(result, err)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		result = append(result, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		result = append(result, fmt.Errorf("invalid log format: %s (must be json or console)", c.LogFormat))
	}

	if c.KafkaHost != "" && c.KafkaOrderChangedTopic == "" {
		result = append(result, errors.New("kafka topic is required when kafka is enabled"))
	}
	if c.IdempotencyTTL <= 0 {
		result = append(result, fmt.Errorf("idempotency ttl must be positive: %s", c.IdempotencyTTL))
	}

	return errors.Join(result...)
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// TransitionPolicy returns the validated order transition policy.
func (c Config) TransitionPolicy() order.TransitionPolicy {
	policy, _ := order.ParseTransitionPolicy(c.OrderTransitionPolicy)
	return policy
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
