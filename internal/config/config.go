package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Environment string         `mapstructure:"environment"`
	AppName     string         `mapstructure:"app_name"`
	Server      ServerConfig   `mapstructure:"server"`
	Upstream    UpstreamConfig `mapstructure:"upstream"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Store       StoreConfig    `mapstructure:"store"`
	Demo        DemoConfig     `mapstructure:"demo"`
	Logging     LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port           int  `mapstructure:"port"`
	ReadTimeout    int  `mapstructure:"read_timeout"`
	WriteTimeout   int  `mapstructure:"write_timeout"`
	IdleTimeout    int  `mapstructure:"idle_timeout"`
	MaxHeaderBytes int  `mapstructure:"max_header_bytes"`
	EnableCORS     bool `mapstructure:"enable_cors"`
}

// UpstreamConfig contains the backend API client settings
type UpstreamConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

// RequestTimeout returns the upstream request timeout as a duration
func (u UpstreamConfig) RequestTimeout() time.Duration {
	return time.Duration(u.Timeout) * time.Second
}

// RedisConfig contains Redis cache connection settings
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	CacheTTL int    `mapstructure:"cache_ttl"`
}

// Addr returns the host:port address for the Redis client
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// TTL returns the cache entry lifetime as a duration
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.CacheTTL) * time.Second
}

// AuthConfig contains session token settings
type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	JWTExpiry     int    `mapstructure:"jwt_expiry"`
	AzureClientID string `mapstructure:"azure_client_id"`
	AzureTenantID string `mapstructure:"azure_tenant_id"`
}

// TokenLifetime returns the JWT lifetime as a duration
func (a AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(a.JWTExpiry) * time.Second
}

// StoreConfig contains app state persistence settings
type StoreConfig struct {
	PersistPath string `mapstructure:"persist_path"`
}

// DemoConfig contains demo mode settings
type DemoConfig struct {
	Default  bool  `mapstructure:"default"`
	Seed     int64 `mapstructure:"seed"`
	TrendDays int  `mapstructure:"trend_days"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from an optional file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("CANVAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	overrideWithEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required configuration values
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL not configured")
	}
	if c.Server.Port == 0 {
		return fmt.Errorf("server port not configured")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret not configured")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("app_name", "Cloud Compliance Canvas")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.max_header_bytes", 1048576)
	v.SetDefault("server.enable_cors", true)

	v.SetDefault("upstream.base_url", "")
	v.SetDefault("upstream.timeout", 30)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.cache_ttl", 30)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_expiry", 28800)

	v.SetDefault("store.persist_path", "cloud-compliance-canvas-storage.json")

	v.SetDefault("demo.default", true)
	v.SetDefault("demo.seed", 0)
	v.SetDefault("demo.trend_days", 30)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// overrideWithEnvVars overrides configuration with well-known environment variables
func overrideWithEnvVars(v *viper.Viper) {
	if url := os.Getenv("CANVAS_API_URL"); url != "" {
		v.Set("upstream.base_url", url)
	}
	if name := os.Getenv("CANVAS_APP_NAME"); name != "" {
		v.Set("app_name", name)
	}
	if mode := os.Getenv("CANVAS_ENABLE_DEMO_MODE"); mode != "" {
		v.Set("demo.default", mode == "true" || mode == "1")
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		v.Set("auth.jwt_secret", secret)
	}
	if clientID := os.Getenv("AZURE_CLIENT_ID"); clientID != "" {
		v.Set("auth.azure_client_id", clientID)
	}
	if tenantID := os.Getenv("AZURE_TENANT_ID"); tenantID != "" {
		v.Set("auth.azure_tenant_id", tenantID)
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		v.Set("redis.host", host)
		v.Set("redis.enabled", true)
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		v.Set("redis.password", password)
	}
}
