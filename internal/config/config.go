package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Formatting defaults
	DefaultLocale string
	DefaultTZ     string
	ICUDataPath   string

	// CORS origins, empty means same-origin only
	CORSAllowedOrigins []string

	// Report database configuration
	DBEnabled           bool
	DBMigrate           bool
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Scanner configuration
	ScannerBin       string
	ContainerRuntime string
	// Prometheus Pushgateway for CLI run metrics, empty disables pushing
	PushgatewayURL string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DefaultLocale:       getEnv("DEFAULT_LOCALE", "en-US"),
		DefaultTZ:           getEnv("DEFAULT_TZ", "UTC"),
		ICUDataPath:         os.Getenv("ICU_DATA_PATH"),
		CORSAllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS"),
		DBEnabled:           getEnvBool("DB_ENABLED", false),
		DBMigrate:           getEnvBool("DB_MIGRATE", true),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "scan_reports"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 1)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		ScannerBin:          getEnv("SCANNER_BIN", "trivy"),
		ContainerRuntime:    getEnv("CONTAINER_RUNTIME", "docker"),
		PushgatewayURL:      os.Getenv("PUSHGATEWAY_URL"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabaseURL returns the report database location as a postgres:// URL.
// Credentials are escaped.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DefaultLocale == "" {
		return fmt.Errorf("DEFAULT_LOCALE is required")
	}
	if c.DefaultTZ == "" {
		return fmt.Errorf("DEFAULT_TZ is required")
	}
	if c.ScannerBin == "" {
		return fmt.Errorf("SCANNER_BIN is required")
	}
	if c.ContainerRuntime == "" {
		return fmt.Errorf("CONTAINER_RUNTIME is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	if c.DBEnabled {
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required when DB_ENABLED is set")
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required when DB_ENABLED is set")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required when DB_ENABLED is set")
		}
		if c.DBMaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1")
		}
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated environment variable, dropping empty entries.
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
