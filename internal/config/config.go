// Package config loads runtime configuration from a YAML file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/pavelpascari/typedhttp/pkg/openapi"
	"github.com/spf13/viper"
)

// Config is the root configuration for the service.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Debug     bool            `mapstructure:"debug"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	OpenAPI   OpenAPIConfig   `mapstructure:"openapi"`
}

// ServerConfig holds the HTTP listener settings. The write timeout must stay
// above the 10s ceiling of the slow endpoint or long delays get cut off.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// RateLimitConfig holds the optional per-client rate limiter settings.
// Disabled by default so load tests measure the workload, not the limiter.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

// OpenAPIConfig holds the metadata of the generated API description.
type OpenAPIConfig struct {
	Title       string `mapstructure:"title"`
	Version     string `mapstructure:"version"`
	Description string `mapstructure:"description"`
}

// Load reads configuration from config.yaml (working directory or configs/)
// and SAMPLEAPP_* environment variables. A missing file is not an error;
// defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("configs")

	viper.SetEnvPrefix("SAMPLEAPP")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	// 9080 is the HTTP port the original workload served on.
	viper.SetDefault("server.port", 9080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("debug", false)
	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.requests_per_second", 100.0)
	viper.SetDefault("openapi.title", "Liberty Sample Service API")
	viper.SetDefault("openapi.version", "1.0.0")
	viper.SetDefault("openapi.description", "Demonstration and load-testing REST workload with in-memory request statistics")
}

// Addr returns the listener address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ToOpenAPIConfig converts the OpenAPI section into the generator's config.
func (c *Config) ToOpenAPIConfig() *openapi.Config {
	return &openapi.Config{
		Info: openapi.Info{
			Title:       c.OpenAPI.Title,
			Version:     c.OpenAPI.Version,
			Description: c.OpenAPI.Description,
		},
	}
}
