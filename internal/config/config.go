// Package config holds the application configuration and filesystem layout.
// Configuration comes from environment variables (prefix ZPULSE) merged with
// an optional config.yaml next to the executable; environment wins.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Chart    ChartConfig    `yaml:"chart" envconfig:"CHART"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/zillowpulse.log"`
}

// AnalysisConfig contains the default ranking parameters.
type AnalysisConfig struct {
	Months int `yaml:"months" envconfig:"MONTHS" default:"12" validate:"gte=0"`
	TopN   int `yaml:"top_n" envconfig:"TOP_N" default:"25" validate:"gte=0"`
}

// ChartConfig contains chart rendering defaults.
type ChartConfig struct {
	Width  string `yaml:"width" envconfig:"WIDTH" default:"1200px"`
	Height string `yaml:"height" envconfig:"HEIGHT" default:"700px"`
}

// Load loads configuration from environment variables and the optional
// config file, then validates the result.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("ZPULSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence;
// fields the environment left at their zero value fall back to the file).
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Analysis.Months == 0 && fileConfig.Analysis.Months != 0 {
		envConfig.Analysis.Months = fileConfig.Analysis.Months
	}
	if envConfig.Analysis.TopN == 0 && fileConfig.Analysis.TopN != 0 {
		envConfig.Analysis.TopN = fileConfig.Analysis.TopN
	}
	if envConfig.Chart.Width == "" {
		envConfig.Chart.Width = fileConfig.Chart.Width
	}
	if envConfig.Chart.Height == "" {
		envConfig.Chart.Height = fileConfig.Chart.Height
	}
	return envConfig
}

// validate checks the configuration against the struct validation tags.
func (c *Config) validate() error {
	return validator.New().Struct(c)
}

// getConfigFilePath returns the path of the optional config file, which
// lives next to the executable.
func getConfigFilePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "config.yaml")
}
