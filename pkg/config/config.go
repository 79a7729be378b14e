package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath  = "config.yaml"
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultTemperature = 0.7
	defaultMaxTokens   = 150
	defaultMaxTotal    = 10
	defaultMinPerTerm  = 2
)

type Config struct {
	GroqAPIKey        string
	PexelsAPIKey      string
	UnsplashAccessKey string
	GCPProject        string

	Groq   GroqConfig   `yaml:"groq"`
	Images ImagesConfig `yaml:"images"`
}

type GroqConfig struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

type ImagesConfig struct {
	// MaxTotal caps the final selection; MinPerTerm is the floor on the
	// per-provider request count for each search term.
	MaxTotal   int    `yaml:"max_total"`
	MinPerTerm int    `yaml:"min_per_term"`
	BaseDir    string `yaml:"base_dir"`
}

func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		PexelsAPIKey:      os.Getenv("PEXELS_API_KEY"),
		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
		GCPProject:        os.Getenv("GOOGLE_CLOUD_PROJECT"),
	}

	if err := loadYAMLConfig(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if cfg.GCPProject != "" {
		cfg.loadSecrets(ctx)
	}

	return cfg, nil
}

// MissingKeys returns the names of required credentials that are unset.
// Any entry here is a fatal startup condition.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.GroqAPIKey == "" {
		missing = append(missing, "GROQ_API_KEY")
	}
	if c.PexelsAPIKey == "" {
		missing = append(missing, "PEXELS_API_KEY")
	}
	if c.UnsplashAccessKey == "" {
		missing = append(missing, "UNSPLASH_ACCESS_KEY")
	}
	return missing
}

func loadYAMLConfig(cfg *Config) error {
	data, err := os.ReadFile(defaultConfigPath)
	if err != nil {
		slog.Debug("No config.yaml found, using defaults")
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config.yaml: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Groq.Model == "" {
		cfg.Groq.Model = defaultGroqModel
	}
	if cfg.Groq.Temperature == 0 {
		cfg.Groq.Temperature = defaultTemperature
	}
	if cfg.Groq.MaxTokens == 0 {
		cfg.Groq.MaxTokens = defaultMaxTokens
	}
	if cfg.Images.MaxTotal == 0 {
		cfg.Images.MaxTotal = defaultMaxTotal
	}
	if cfg.Images.MinPerTerm == 0 {
		cfg.Images.MinPerTerm = defaultMinPerTerm
	}
	if cfg.Images.BaseDir == "" {
		cfg.Images.BaseDir = defaultBaseDir()
	}
}

func defaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "reel-images")
	}
	return filepath.Join(home, "Downloads", "reel-images")
}
