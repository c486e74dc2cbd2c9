package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// DevJWTSecret is the signing key used when JWT_SECRET is unset outside production.
const DevJWTSecret = "supersecretkey"

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port            int    `mapstructure:"PORT"`
	Env             string `mapstructure:"APP_ENV"` // development | production | test
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	AllowedOrigins  string `mapstructure:"ALLOWED_ORIGINS"`
	TrustProxyHTTPS bool   `mapstructure:"TRUST_PROXY_HTTPS"`

	// Database
	DBDriver    string `mapstructure:"DB_DRIVER"` // sqlite | postgres
	SQLitePath  string `mapstructure:"SQLITE_PATH"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      int    `mapstructure:"DB_PORT"`
	DBName      string `mapstructure:"DB_NAME"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPassword  string `mapstructure:"DB_PASSWORD"`
	DBSSL       bool   `mapstructure:"DB_SSL"`
	DBAlter     bool   `mapstructure:"DB_ALTER"`

	// Redis (optional, backs the auth rate limiter when set)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	JWTExpirationMinutes int    `mapstructure:"JWT_EXPIRATION_MINUTES"`
	BcryptCost           int    `mapstructure:"BCRYPT_COST"`
	AdminDefaultPassword string `mapstructure:"ADMIN_DEFAULT_PASSWORD"`
	StrictRoleScope      bool   `mapstructure:"STRICT_ROLE_SCOPE"`

	// Rate limiting on /login and /register
	AuthRateLimit         int `mapstructure:"AUTH_RATE_LIMIT"`
	AuthRateWindowMinutes int `mapstructure:"AUTH_RATE_WINDOW_MINUTES"`
}

// Load reads configuration from environment variables (and optional .env file).
// It fails when the resulting configuration is unsafe to run, most notably a
// production process without its own JWT secret.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	setDefaults(v)

	// Optional .env file for local development; a missing file is not an error
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that AutomaticEnv values reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 3001)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("TRUST_PROXY_HTTPS", true)

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("SQLITE_PATH", "./database.sqlite")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_NAME", "distrital4_jefatura")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_SSL", false)
	v.SetDefault("DB_ALTER", false)

	v.SetDefault("REDIS_URL", "")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("ADMIN_DEFAULT_PASSWORD", "")
	v.SetDefault("STRICT_ROLE_SCOPE", false)

	v.SetDefault("AUTH_RATE_LIMIT", 100)
	v.SetDefault("AUTH_RATE_WINDOW_MINUTES", 15)
}

// IsProduction reports whether the process runs with APP_ENV=production.
func (c *Config) IsProduction() bool { return c.Env == "production" }

// Validate normalises defaults and rejects configurations that must not boot.
func (c *Config) Validate() error {
	if c.JWTSecret == "" || c.JWTSecret == DevJWTSecret {
		if c.IsProduction() {
			return errors.New("configuracion insegura: define JWT_SECRET en produccion")
		}
		c.JWTSecret = DevJWTSecret
	}
	if c.AdminDefaultPassword == "" {
		if c.IsProduction() {
			return errors.New("configuracion insegura: define ADMIN_DEFAULT_PASSWORD en produccion")
		}
		c.AdminDefaultPassword = "admin"
	}
	if len(c.AdminDefaultPassword) > 72 {
		return errors.New("ADMIN_DEFAULT_PASSWORD supera los 72 bytes que admite bcrypt")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST fuera de rango (%d-%d): %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.JWTExpirationMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_MINUTES debe ser positivo: %d", c.JWTExpirationMinutes)
	}
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DB_DRIVER desconocido: %q", c.DBDriver)
	}
	return nil
}

// PostgresDSN returns DATABASE_URL or builds a DSN from the DB_* variables.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	sslmode := "disable"
	if c.DBSSL {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslmode)
}

// Origins splits ALLOWED_ORIGINS into a trimmed list; "*" allows every origin.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
