package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Storage  StorageConfig  `yaml:"storage"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	Media    MediaConfig    `yaml:"media"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// AuthConfig holds the token signing configuration.
type AuthConfig struct {
	TokenKey           string `yaml:"token_key"`
	TokenExpireMinutes int    `yaml:"token_expire_minutes"`
}

// StorageConfig holds the S3-compatible object store configuration.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	PublicURL string `yaml:"public_url"`
}

// FixturesConfig points at the JSON files used by the bulk-seed endpoints.
type FixturesConfig struct {
	Dir string `yaml:"dir"`
}

// MediaConfig holds settings for generated cover images.
type MediaConfig struct {
	BaseURL string `yaml:"base_url"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	if cfg.Auth.TokenExpireMinutes <= 0 {
		log.Printf("auth.token_expire_minutes is not set or invalid; defaulting to 60")
		cfg.Auth.TokenExpireMinutes = 60
	}

	if cfg.Fixtures.Dir == "" {
		cfg.Fixtures.Dir = "./data"
	}
	if cfg.Media.BaseURL == "" {
		cfg.Media.BaseURL = "/media"
	}

	return &cfg, nil
}
