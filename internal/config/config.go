package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
	Storage  StorageConfig
	App      AppConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
}

// RedisConfig holds the optional redis backend for rate limiting.
// An empty Addr selects the in-process limiter.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig holds session token signing configuration
type AuthConfig struct {
	Secret      string
	TokenExpiry time.Duration
	BcryptCost  int
}

// SMTPConfig holds outbound email configuration. An empty Host selects the
// dev mailer, which logs the verification code instead of sending it.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// StorageConfig holds object storage configuration for ID documents.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	// AdminEmail is the account promoted to the admin role. The promotion
	// happens at signup and again at startup, so the role survives rebuilds
	// of the users table.
	AdminEmail          string
	VerificationEnabled bool
	CodeTTL             time.Duration
	SweepInterval       time.Duration
	TopUpInitialDelay   time.Duration
	TopUpInterval       time.Duration
	AuthRateLimit       int
	AuthRateWindow      time.Duration
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5001"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "astralcu"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "5m"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			Secret:      getEnv("AUTH_SECRET", ""),
			TokenExpiry: getEnvAsDuration("AUTH_TOKEN_EXPIRY", "1h"),
			BcryptCost:  getEnvAsInt("AUTH_BCRYPT_COST", 10),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "no-reply@astralcu.example"),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
			Bucket:    getEnv("STORAGE_BUCKET", "id-documents"),
			UseSSL:    getEnvAsBool("STORAGE_USE_SSL", false),
		},
		App: AppConfig{
			AdminEmail:          strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", "admin@astral.com"))),
			VerificationEnabled: getEnvAsBool("VERIFICATION_ENABLED", true),
			CodeTTL:             getEnvAsDuration("VERIFICATION_CODE_TTL", "10m"),
			SweepInterval:       getEnvAsDuration("PENDING_SWEEP_INTERVAL", "5m"),
			TopUpInitialDelay:   getEnvAsDuration("TOPUP_INITIAL_DELAY", "5s"),
			TopUpInterval:       getEnvAsDuration("TOPUP_INTERVAL", "24h"),
			AuthRateLimit:       getEnvAsInt("AUTH_RATE_LIMIT", 20),
			AuthRateWindow:      getEnvAsDuration("AUTH_RATE_WINDOW", "1m"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if c.Auth.TokenExpiry <= 0 {
		return fmt.Errorf("auth token expiry must be positive")
	}

	if c.App.CodeTTL <= 0 {
		return fmt.Errorf("verification code TTL must be positive")
	}
	if c.App.TopUpInterval <= 0 {
		return fmt.Errorf("top-up interval must be positive")
	}
	if c.App.AuthRateLimit <= 0 {
		return fmt.Errorf("auth rate limit must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to parsing the default if provided value is invalid
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}
