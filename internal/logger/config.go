package logger

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration.
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// fileConfig wraps Config for YAML parsing under a "logging" key.
type fileConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig returns console-only INFO logging.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/levelforge.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file. A missing or
// unparseable file falls back to defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, nil
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return config, err
	}

	if fc.Logging.Level != "" {
		config.Level = fc.Logging.Level
	}
	config.ConsoleEnabled = fc.Logging.ConsoleEnabled
	if fc.Logging.ConsoleFormat != "" {
		config.ConsoleFormat = fc.Logging.ConsoleFormat
	}
	config.FileEnabled = fc.Logging.FileEnabled
	if fc.Logging.FilePath != "" {
		config.FilePath = fc.Logging.FilePath
	}
	if fc.Logging.FileFormat != "" {
		config.FileFormat = fc.Logging.FileFormat
	}
	if fc.Logging.FileMaxSizeMB > 0 {
		config.FileMaxSizeMB = fc.Logging.FileMaxSizeMB
	}
	if fc.Logging.FileMaxBackups > 0 {
		config.FileMaxBackups = fc.Logging.FileMaxBackups
	}
	if fc.Logging.FileMaxAgeDays > 0 {
		config.FileMaxAgeDays = fc.Logging.FileMaxAgeDays
	}

	return config, nil
}
