package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const minJWTSecretLength = 32

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	WordPress WordPressConfig
	Cache     CacheConfig
	Matching  MatchingConfig
	Logging   LoggingConfig

	GeminiAPIKey string
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development"
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured. Redis is optional.
func (c *RedisConfig) Enabled() bool {
	return c.Host != ""
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

func (c *JWTConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

type WordPressConfig struct {
	APIURL  string
	Timeout time.Duration
}

type CacheConfig struct {
	TTL          time.Duration
	Size         int
	WarmSchedule string
	WarmPages    int
}

type MatchingConfig struct {
	Policy string
}

type LoggingConfig struct {
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "1h")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_EXPIRY_HOURS", 24*7)
	v.SetDefault("WP_API_URL", "https://genuinesugarmummies.co.ke/wp-json/wp/v2")
	v.SetDefault("WP_TIMEOUT", "15s")
	v.SetDefault("PROFILE_CACHE_TTL", "5m")
	v.SetDefault("PROFILE_CACHE_SIZE", 256)
	v.SetDefault("CACHE_WARM_SCHEDULE", "@every 5m")
	v.SetDefault("CACHE_WARM_PAGES", 3)
	v.SetDefault("MATCH_POLICY", "scaled")
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads configuration from the environment, after loading .env if present.
func Load() (*Config, error) {
	cfg := LoadEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv is Load without validation, for tools that need no database.
func LoadEnv() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// FromViper builds a Config without validating it.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetInt("SERVER_PORT"),
			Env:          v.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),

			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
		WordPress: WordPressConfig{
			APIURL:  strings.TrimRight(v.GetString("WP_API_URL"), "/"),
			Timeout: v.GetDuration("WP_TIMEOUT"),
		},
		Cache: CacheConfig{
			TTL:          v.GetDuration("PROFILE_CACHE_TTL"),
			Size:         v.GetInt("PROFILE_CACHE_SIZE"),
			WarmSchedule: v.GetString("CACHE_WARM_SCHEDULE"),
			WarmPages:    v.GetInt("CACHE_WARM_PAGES"),
		},
		Matching: MatchingConfig{
			Policy: strings.ToLower(v.GetString("MATCH_POLICY")),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
	}
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database host is required")
	}
	if c.Database.User == "" {
		return errors.New("database user is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database name is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT secret is required")
	}
	if len(c.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf("JWT secret must be at least %d characters", minJWTSecretLength)
	}
	if c.JWT.ExpiryHours <= 0 {
		return errors.New("JWT expiry must be positive")
	}
	if c.WordPress.APIURL == "" {
		return errors.New("WordPress API URL is required")
	}
	switch c.Matching.Policy {
	case "scaled", "flat":
	default:
		return fmt.Errorf("unknown match policy %q (want scaled or flat)", c.Matching.Policy)
	}
	if c.Cache.WarmPages < 0 {
		return errors.New("cache warm pages must not be negative")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
