package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	API struct {
		BaseURL string `yaml:"base_url"`
		Timeout int    `yaml:"timeout_seconds"` // per-request timeout, seconds
	} `yaml:"api"`

	Session struct {
		FilePath   string `yaml:"file_path"`
		TTLMinutes int    `yaml:"ttl_minutes"` // 0 disables the expiry check
	} `yaml:"session"`

	Client struct {
		Env string `yaml:"env"` // development or production
	} `yaml:"client"`
}

var AppConfig *Config

// RequestTimeout returns the configured per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	if c.API.Timeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.API.Timeout) * time.Second
}

// SessionTTL returns the session time-to-live. Zero means no expiry check.
func (c *Config) SessionTTL() time.Duration {
	if c.Session.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

func LoadConfig() {
	var cfg Config

	baseURL := os.Getenv("BOOKMYSTARS_API_URL")
	clientEnv := os.Getenv("CLIENT_ENV")
	sessionFile := os.Getenv("SESSION_FILE")
	ttlStr := os.Getenv("SESSION_TTL_MINUTES")

	if baseURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// Environment-variable mode (tests, CI)
	cfg.API.BaseURL = baseURL
	cfg.Client.Env = clientEnv
	cfg.Session.FilePath = sessionFile
	cfg.Session.TTLMinutes, _ = strconv.Atoi(ttlStr)

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://api.bookmystars.in"
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 30
	}
	if cfg.Session.FilePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.Session.FilePath = home + "/.bookmystars/session.json"
	}
	if cfg.Client.Env == "" {
		cfg.Client.Env = "development"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
