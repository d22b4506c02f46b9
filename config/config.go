// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/VoyageGenie/voyage-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	minJWTLength = 32
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	JwtSecretKey   string      `mapstructure:"JWT_SECRET_KEY" yaml:"jwt_secret_key"`
}

// DatabaseConfig holds PostgreSQL database connection details.
type DatabaseConfig struct {
	Host         string `mapstructure:"HOST" yaml:"host"`
	Port         int    `mapstructure:"PORT" yaml:"port"`
	User         string `mapstructure:"USER" yaml:"user"`
	Password     string `mapstructure:"PASSWORD" yaml:"password"`
	Name         string `mapstructure:"NAME" yaml:"name"`
	SSLMode      string `mapstructure:"SSL_MODE" yaml:"ssl_mode"`
	MaxOpenConns int    `mapstructure:"MAX_OPEN_CONNS" yaml:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"MAX_IDLE_CONNS" yaml:"max_idle_conns"`
}

// URL returns a postgres:// connection URL suitable for golang-migrate and
// other URL-based database tools.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds Redis connection details.
type RedisConfig struct {
	Address  string `mapstructure:"ADDRESS" yaml:"address"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
	DB       int    `mapstructure:"DB" yaml:"db"`
	UseTLS   bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
}

// AuthConfig holds configuration for the credential store and login lockout.
type AuthConfig struct {
	// Maximum consecutive failed logins before an account is locked
	MaxLoginAttempts int `mapstructure:"MAX_LOGIN_ATTEMPTS" yaml:"max_login_attempts"`
	// Lockout duration in minutes once the attempt limit is hit
	LockoutMinutes int `mapstructure:"LOCKOUT_MINUTES" yaml:"lockout_minutes"`
	// Session token lifetime in hours
	TokenTTLHours int `mapstructure:"TOKEN_TTL_HOURS" yaml:"token_ttl_hours"`
	// Requests per minute allowed on auth endpoints per client IP
	RequestsPerMinute int `mapstructure:"REQUESTS_PER_MINUTE" yaml:"requests_per_minute"`
}

// SyncConfig holds configuration for the debounced itinerary bulk save.
type SyncConfig struct {
	// Quiet period in milliseconds after the last change before the
	// owner's whole itinerary list is bulk-upserted
	DebounceMillis int `mapstructure:"DEBOUNCE_MILLIS" yaml:"debounce_millis"`
	// Timeout in seconds for a single bulk save
	SaveTimeoutSeconds int `mapstructure:"SAVE_TIMEOUT_SECONDS" yaml:"save_timeout_seconds"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server   ServerConfig   `mapstructure:"SERVER" yaml:"server"`
	Database DatabaseConfig `mapstructure:"DATABASE" yaml:"database"`
	Redis    RedisConfig    `mapstructure:"REDIS" yaml:"redis"`
	Auth     AuthConfig     `mapstructure:"AUTH" yaml:"auth"`
	Sync     SyncConfig     `mapstructure:"SYNC" yaml:"sync"`
}

// IsDevelopment returns true if running in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if running in the production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "voyage_dev")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_OPEN_CONNS", 5)
	v.SetDefault("DATABASE.MAX_IDLE_CONNS", 2)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("AUTH.MAX_LOGIN_ATTEMPTS", 5)
	v.SetDefault("AUTH.LOCKOUT_MINUTES", 5)
	v.SetDefault("AUTH.TOKEN_TTL_HOURS", 72)
	v.SetDefault("AUTH.REQUESTS_PER_MINUTE", 10)
	v.SetDefault("SYNC.DEBOUNCE_MILLIS", 1000)
	v.SetDefault("SYNC.SAVE_TIMEOUT_SECONDS", 10)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.JWT_SECRET_KEY", "JWT_SECRET_KEY"},
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		{"AUTH.MAX_LOGIN_ATTEMPTS", "AUTH_MAX_LOGIN_ATTEMPTS"},
		{"AUTH.LOCKOUT_MINUTES", "AUTH_LOCKOUT_MINUTES"},
		{"AUTH.TOKEN_TTL_HOURS", "AUTH_TOKEN_TTL_HOURS"},
		{"AUTH.REQUESTS_PER_MINUTE", "AUTH_REQUESTS_PER_MINUTE"},
		{"SYNC.DEBOUNCE_MILLIS", "SYNC_DEBOUNCE_MILLIS"},
		{"SYNC.SAVE_TIMEOUT_SECONDS", "SYNC_SAVE_TIMEOUT_SECONDS"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", v.GetString("SERVER.ENVIRONMENT"),
		"server_port", v.GetString("SERVER.PORT"),
		"db_host", v.GetString("DATABASE.HOST"),
		"redis_address", v.GetString("REDIS.ADDRESS"),
		"sync_debounce_millis", v.GetInt("SYNC.DEBOUNCE_MILLIS"),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if len(cfg.Server.JwtSecretKey) < minJWTLength {
		return fmt.Errorf("JWT secret key must be at least %d characters long", minJWTLength)
	}
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	if cfg.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if cfg.Database.Password == "" {
		log.Warn("Database password is not set. Ensure this is intended (e.g., using trusted auth).")
	}
	if cfg.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if cfg.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	if cfg.Auth.MaxLoginAttempts <= 0 {
		return fmt.Errorf("auth max login attempts must be positive")
	}
	if cfg.Auth.LockoutMinutes <= 0 {
		return fmt.Errorf("auth lockout minutes must be positive")
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("auth token TTL must be positive")
	}
	if cfg.Auth.RequestsPerMinute <= 0 {
		return fmt.Errorf("auth requests per minute must be positive")
	}

	if cfg.Sync.DebounceMillis <= 0 {
		return fmt.Errorf("sync debounce must be positive")
	}
	if cfg.Sync.SaveTimeoutSeconds <= 0 {
		return fmt.Errorf("sync save timeout must be positive")
	}

	return nil
}

// containsWildcard checks if the list of allowed origins contains "*".
func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
