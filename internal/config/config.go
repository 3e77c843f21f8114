package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"fyyur/internal/datetime"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	App      AppConfig      `yaml:"app"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// Addr is the listen address for http.Server.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

type DatabaseConfig struct {
	URL          string        `yaml:"url"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	MaxLifetime  time.Duration `yaml:"max_lifetime"`
	RetryDelay   time.Duration `yaml:"retry_delay"`
	AutoMigrate  bool          `yaml:"auto_migrate"`
}

// RedisConfig is optional; an empty Addr keeps flash messages in memory.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	FlashTTL time.Duration `yaml:"flash_ttl"`
}

type AppConfig struct {
	Locale   string `yaml:"locale"`
	Timezone string `yaml:"timezone"`
	BaseURL  string `yaml:"base_url"`
	LogDir   string `yaml:"log_dir"`
}

// Location resolves Timezone; naive form input is read in this zone.
func (a AppConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", a.Timezone, err)
	}
	return loc, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "5000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			URL:          "file:fyyur.db?cache=shared",
			MaxOpenConns: 25,
			MaxIdleConns: 25,
			MaxLifetime:  5 * time.Minute,
			RetryDelay:   2 * time.Second,
			AutoMigrate:  true,
		},
		Redis: RedisConfig{
			FlashTTL: 10 * time.Minute,
		},
		App: AppConfig{
			Locale:   "en_US",
			Timezone: "UTC",
			BaseURL:  "http://localhost:5000",
			LogDir:   "logs",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file named by CONFIG_FILE
// (if any), then environment variables.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)

	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)
	cfg.Database.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)
	cfg.Database.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", cfg.Database.MaxIdleConns)
	if minutes := getEnvInt("DB_MAX_LIFETIME_MINUTES", 0); minutes > 0 {
		cfg.Database.MaxLifetime = time.Duration(minutes) * time.Minute
	}
	cfg.Database.AutoMigrate = getEnvBool("MIGRATIONS_AUTO", cfg.Database.AutoMigrate)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)

	cfg.App.Locale = getEnv("LOCALE", cfg.App.Locale)
	cfg.App.Timezone = getEnv("TIMEZONE", cfg.App.Timezone)
	cfg.App.BaseURL = getEnv("BASE_URL", cfg.App.BaseURL)
	cfg.App.LogDir = getEnv("LOG_DIR", cfg.App.LogDir)

	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Server.Port)
	}
	if _, err := cfg.App.Location(); err != nil {
		return nil, err
	}
	if !datetime.SupportedLocale(cfg.App.Locale) {
		return nil, fmt.Errorf("unsupported LOCALE %q", cfg.App.Locale)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
