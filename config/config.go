package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Upstream UpstreamConfig
	Insight  InsightConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
	RateLimitBurst  int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// UpstreamConfig points at the task API this service reports on.
type UpstreamConfig struct {
	URL         string
	AccessToken string
	Timeout     time.Duration
}

// InsightConfig tunes range resolution and the snapshot cache.
type InsightConfig struct {
	Timezone     string
	SnapshotSize int
	SnapshotTTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.RateLimitBurst = viper.GetInt("http_server.rate_limit_burst")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Upstream.URL = viper.GetString("upstream.url")
	cfg.Upstream.AccessToken = viper.GetString("upstream.access_token")
	cfg.Upstream.Timeout = viper.GetDuration("upstream.timeout")
	if upstreamURL := viper.GetString("upstream_url"); upstreamURL != "" {
		cfg.Upstream.URL = upstreamURL
	}
	if upstreamToken := viper.GetString("upstream_access_token"); upstreamToken != "" {
		cfg.Upstream.AccessToken = upstreamToken
	}

	cfg.Insight.Timezone = viper.GetString("insight.timezone")
	cfg.Insight.SnapshotSize = viper.GetInt("insight.snapshot_size")
	cfg.Insight.SnapshotTTL = viper.GetDuration("insight.snapshot_ttl")

	if cfg.Upstream.URL == "" {
		return nil, fmt.Errorf("upstream.url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("http_server.rate_limit_burst", 30)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("upstream.timeout", "10s")
	viper.SetDefault("insight.timezone", "UTC")
	viper.SetDefault("insight.snapshot_size", 128)
	viper.SetDefault("insight.snapshot_ttl", "30s")
}
