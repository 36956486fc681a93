package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DBDSN         string `mapstructure:"DB_DSN"`
	SQLitePath    string `mapstructure:"SQLITE_PATH"`

	// VocabularyFile reemplaza las tablas embebidas; vacío usa las de fábrica.
	VocabularyFile string `mapstructure:"VOCABULARY_FILE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	// AuthTokens: "token:researcher[:nombre],...". Vacío = modo dev (X-Debug-User-ID).
	AuthTokens string `mapstructure:"AUTH_TOKENS"`

	// AuthVerifyURL delega la verificación en un proveedor externo; excluye AuthTokens.
	AuthVerifyURL string        `mapstructure:"AUTH_VERIFY_URL"`
	AuthAPIKey    string        `mapstructure:"AUTH_API_KEY"`
	AuthTimeout   time.Duration `mapstructure:"AUTH_TIMEOUT"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	ReadTimeout     time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `mapstructure:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var keys = []string{
	"PORT", "STORAGE_DRIVER", "DB_DSN", "SQLITE_PATH", "VOCABULARY_FILE",
	"LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"AUTH_TOKENS", "AUTH_VERIFY_URL", "AUTH_API_KEY", "AUTH_TIMEOUT",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
}

// Load lee defaults, el archivo opcional (yaml/json/toml/.env según extensión)
// y las variables de entorno, que tienen prioridad.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("SQLITE_PATH", "genotrack.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "genotrack")
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("READ_TIMEOUT", "5s")
	v.SetDefault("WRITE_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("AUTH_TIMEOUT", "5s")

	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if file = strings.TrimSpace(file); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate junta todos los problemas en un único error.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("PORT is required"))
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			errs = append(errs, errors.New("DB_DSN is required when STORAGE_DRIVER=postgres"))
		}
	case StorageSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required when STORAGE_DRIVER=sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q must be memory, postgres or sqlite", c.StorageDriver))
	}

	if strings.TrimSpace(c.AuthTokens) != "" && strings.TrimSpace(c.AuthVerifyURL) != "" {
		errs = append(errs, errors.New("AUTH_TOKENS and AUTH_VERIFY_URL are mutually exclusive"))
	}

	if c.RateLimitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must be >= 0"))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be >= 1 when rate limiting is enabled"))
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		errs = append(errs, errors.New("READ_TIMEOUT and WRITE_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
