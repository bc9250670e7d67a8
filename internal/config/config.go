package config

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends selectable with STORAGE_BACKEND
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Token strategies selectable with AUTH_TOKEN_STRATEGY
const (
	TokenStrategyPaseto = "paseto"
	TokenStrategyJWT    = "jwt"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Port            string
	Env             string // dev or prod, prod when unset
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	TrustedOrigins  []string // CORS allowed origins

	// Set when the API runs behind a reverse proxy that overwrites
	// X-Forwarded-For/X-Real-IP; client IPs are then taken from those headers
	TrustedProxy bool
}

type StorageConfig struct {
	Backend     string // memory or postgres
	AutoMigrate bool   // run goose migrations on API startup
	SeedContent bool   // seed the content catalog when it is empty
}

type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	ChannelBinding string // "require" for Neon DB, empty for local
	MaxOpenConns   int
	MaxIdleConns   int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int

	// Login/register attempts allowed per client IP within RateWindow
	RateLimit  int
	RateWindow time.Duration
}

type AuthConfig struct {
	TokenStrategy string

	// PASETO symmetric key (must be 32 bytes for v4.local)
	PasetoKey []byte

	// HS256 secret, at least 32 bytes
	JWTSecret []byte

	// Set when a dev-only random key was generated because none was configured
	GeneratedKey bool
}

type EmailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	FrontendURL  string // Frontend URL used in email links
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Env:             getEnv("APP_ENV", "prod"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			TrustedOrigins:  getSliceEnv("TRUSTED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
			TrustedProxy:    getBoolEnv("TRUSTED_PROXY", false),
		},
		Storage: StorageConfig{
			Backend:     strings.ToLower(getEnv("STORAGE_BACKEND", StorageMemory)),
			AutoMigrate: getBoolEnv("DB_AUTO_MIGRATE", true),
			SeedContent: getBoolEnv("SEED_CONTENT", true),
		},
		Database: databaseFromEnv(),
		Redis: RedisConfig{
			Enabled:    getBoolEnv("REDIS_ENABLED", false),
			Host:       getEnv("REDIS_HOST", "localhost"),
			Port:       getEnv("REDIS_PORT", "6379"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getIntEnv("REDIS_DB", 0),
			RateLimit:  getIntEnv("AUTH_RATE_LIMIT", 10),
			RateWindow: getDurationEnv("AUTH_RATE_WINDOW", 15*time.Minute),
		},
		Auth: AuthConfig{
			TokenStrategy: strings.ToLower(getEnv("AUTH_TOKEN_STRATEGY", TokenStrategyPaseto)),
			PasetoKey:     []byte(getEnv("PASETO_KEY", "")),
			JWTSecret:     []byte(getEnv("JWT_SECRET", "")),
		},
		Email: EmailConfig{
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnv("SMTP_PORT", "587"),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPassword: getEnv("SMTP_PASS", ""),
			FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:5173"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase reads only the Postgres settings. Used by tooling that
// does not serve requests and so needs no token keys.
func LoadDatabase() DatabaseConfig {
	_ = godotenv.Load()
	return databaseFromEnv()
}

func databaseFromEnv() DatabaseConfig {
	return DatabaseConfig{
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           getEnv("DB_PORT", "5432"),
		User:           getEnv("DB_USER", "postgres"),
		Password:       getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "glp1"),
		SSLMode:        getEnv("DB_SSLMODE", "disable"),
		ChannelBinding: getEnv("DB_CHANNEL_BINDING", ""),
		MaxOpenConns:   getIntEnv("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:   getIntEnv("DB_MAX_IDLE_CONNS", 5),
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageMemory, StoragePostgres, c.Storage.Backend)
	}

	switch c.Auth.TokenStrategy {
	case TokenStrategyPaseto:
		if len(c.Auth.PasetoKey) == 0 && c.Server.IsDevelopment() {
			key, err := randomKey(32)
			if err != nil {
				return err
			}
			c.Auth.PasetoKey = key
			c.Auth.GeneratedKey = true
		}
		// Validate PASETO key length (must be 32 bytes for v4.local)
		if len(c.Auth.PasetoKey) != 32 {
			return fmt.Errorf("PASETO_KEY must be exactly 32 bytes, got %d", len(c.Auth.PasetoKey))
		}
	case TokenStrategyJWT:
		if len(c.Auth.JWTSecret) == 0 && c.Server.IsDevelopment() {
			key, err := randomKey(32)
			if err != nil {
				return err
			}
			c.Auth.JWTSecret = key
			c.Auth.GeneratedKey = true
		}
		if len(c.Auth.JWTSecret) < 32 {
			return fmt.Errorf("JWT_SECRET must be at least 32 bytes, got %d", len(c.Auth.JWTSecret))
		}
	default:
		return fmt.Errorf("AUTH_TOKEN_STRATEGY must be %q or %q, got %q", TokenStrategyPaseto, TokenStrategyJWT, c.Auth.TokenStrategy)
	}

	return nil
}

func (c *DatabaseConfig) ConnectionString() string {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)

	// Add channel_binding if configured (required for Neon DB)
	if c.ChannelBinding != "" {
		connStr += fmt.Sprintf(" channel_binding=%s", c.ChannelBinding)
	}

	return connStr
}

// Address returns Redis connection address (host:port)
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDevelopment returns true if the environment is set to dev
func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "dev"
}

// IsEnabled reports whether SMTP delivery is configured
func (c *EmailConfig) IsEnabled() bool {
	return c.SMTPHost != ""
}

// randomKey returns a per-process key. Only used in dev, where tokens
// are allowed to die with the process.
func randomKey(n int) ([]byte, error) {
	// Printable so the same value could be pasted into .env
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate dev key: %w", err)
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return buf, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return time.Duration(seconds) * time.Second
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Split by comma and trim whitespace
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}
