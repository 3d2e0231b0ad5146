package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type SessionConfig struct {
	DurablePath   string `yaml:"durable_path"`
	EphemeralPath string `yaml:"ephemeral_path"`
}

type ServerConfig struct {
	Address         string `yaml:"address"`
	JWTSecret       string `yaml:"jwt_secret"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
	BcryptCost      int    `yaml:"bcrypt_cost"`
	Seed            bool   `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns a usable configuration when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:1212/api"
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 15
	}
	if c.Session.DurablePath == "" {
		c.Session.DurablePath = filepath.Join(userConfigDir(), "flyaway", "session.json")
	}
	if c.Session.EphemeralPath == "" {
		c.Session.EphemeralPath = filepath.Join(os.TempDir(), "flyaway", "session.json")
	}
	if c.Server.Address == "" {
		c.Server.Address = ":1212"
	}
	if c.Server.JWTSecret == "" {
		c.Server.JWTSecret = "flyaway-demo-secret"
	}
	if c.Server.TokenTTLMinutes <= 0 {
		c.Server.TokenTTLMinutes = 60
	}
	if c.Server.BcryptCost <= 0 {
		c.Server.BcryptCost = 10
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return os.TempDir()
}
