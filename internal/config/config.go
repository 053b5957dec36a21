package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Content   ContentConfig   `yaml:"content"`
	Artifact  ArtifactConfig  `yaml:"artifact"`
	Location  LocationConfig  `yaml:"location"`
	Weather   WeatherConfig   `yaml:"weather"`
	Publisher PublisherConfig `yaml:"publisher"`
	Serve     ServeConfig     `yaml:"serve"`
	LogLevel  string          `yaml:"log_level"`
}

type ContentConfig struct {
	Dir           string        `yaml:"dir"`
	Glob          string        `yaml:"glob"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

type ArtifactConfig struct {
	Output  string        `yaml:"output"`
	URL     string        `yaml:"url"`
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"`
	Retry   RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type LocationConfig struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
}

type WeatherConfig struct {
	BaseURL   string        `yaml:"base_url"`
	APIKey    string        `yaml:"api_key"`
	Timeout   time.Duration `yaml:"timeout"`
	CachePath string        `yaml:"cache_path"`
}

// Enabled reports whether a provider key is configured; without one the
// pipeline leaves weather as the placeholder.
func (w WeatherConfig) Enabled() bool {
	return w.APIKey != ""
}

type PublisherConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Enabled reports whether rebuild events should be published at all.
func (p PublisherConfig) Enabled() bool {
	return p.URL != ""
}

type ServeConfig struct {
	Addr            string        `yaml:"addr"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Content.Dir == "" {
		c.Content.Dir = "content/days"
	}
	if c.Content.Glob == "" {
		c.Content.Glob = "*.json"
	}
	if c.Content.WatchDebounce == 0 {
		c.Content.WatchDebounce = 500 * time.Millisecond
	}
	if c.Artifact.Output == "" {
		c.Artifact.Output = "site/data/days.json"
	}
	if c.Artifact.Path == "" && c.Artifact.URL == "" {
		c.Artifact.Path = c.Artifact.Output
	}
	if c.Artifact.Timeout == 0 {
		c.Artifact.Timeout = 10 * time.Second
	}
	if c.Artifact.Retry.MaxAttempts == 0 {
		c.Artifact.Retry.MaxAttempts = 3
	}
	if c.Artifact.Retry.InitialBackoff == 0 {
		c.Artifact.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Artifact.Retry.MaxBackoff == 0 {
		c.Artifact.Retry.MaxBackoff = 10 * time.Second
	}
	if c.Location.Name == "" {
		c.Location.Name = "Lake Washington"
	}
	if c.Location.Lat == 0 && c.Location.Lng == 0 {
		c.Location.Lat = 47.61
		c.Location.Lng = -122.26
	}
	if c.Weather.BaseURL == "" {
		c.Weather.BaseURL = "https://api.openweathermap.org/data/3.0/onecall/timemachine"
	}
	if c.Weather.Timeout == 0 {
		c.Weather.Timeout = 10 * time.Second
	}
	if c.Publisher.Exchange == "" {
		c.Publisher.Exchange = "photo_archive"
	}
	if c.Publisher.RoutingKey == "" {
		c.Publisher.RoutingKey = "builds"
	}
	if c.Publisher.QueueName == "" {
		c.Publisher.QueueName = "site_builds"
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8080"
	}
	if c.Serve.RefreshInterval == 0 {
		c.Serve.RefreshInterval = 5 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
