package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rewired-gh/loganalyzer/internal/analyzer"
)

// Config represents the complete application configuration
type Config struct {
	Source   SourceConfig   `mapstructure:"source"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Report   ReportConfig   `mapstructure:"report"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// SourceConfig names the log to analyze
type SourceConfig struct {
	Path    string `mapstructure:"path"`    // file or directory
	Include string `mapstructure:"include"` // glob applied to file names when Path is a directory
}

// AnalysisConfig holds bucket table configuration
type AnalysisConfig struct {
	DaysInMonth int `mapstructure:"days_in_month"`
}

// ReportConfig holds report output configuration
type ReportConfig struct {
	Format          string `mapstructure:"format"`
	Output          string `mapstructure:"output"`
	FilePermissions uint32 `mapstructure:"file_permissions"`
	DirPermissions  uint32 `mapstructure:"dir_permissions"`
}

// TelegramConfig holds Telegram notification configuration
type TelegramConfig struct {
	BotToken       string        `mapstructure:"bot_token"`
	ChatID         string        `mapstructure:"chat_id"`
	Enabled        bool          `mapstructure:"enabled"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryDelayBase time.Duration `mapstructure:"retry_delay_base"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// Load reads configuration from file and environment variables.
// An empty path skips the file and uses defaults plus environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Enable environment variable override
	v.SetEnvPrefix("LOGANALYZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Source defaults
	v.SetDefault("source.path", "demo.log")
	v.SetDefault("source.include", "*.log")

	// Analysis defaults
	v.SetDefault("analysis.days_in_month", 28)

	// Report defaults
	v.SetDefault("report.format", "json")
	v.SetDefault("report.output", "")
	v.SetDefault("report.file_permissions", 0o644)
	v.SetDefault("report.dir_permissions", 0o755)

	// Telegram defaults
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.max_retries", 3)
	v.SetDefault("telegram.retry_delay_base", "1s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "plain")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.compress", false)
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Source config
	if c.Source.Path == "" {
		return fmt.Errorf("source.path is required")
	}

	// Validate Analysis config
	if err := analyzer.CheckDaysInMonth(c.Analysis.DaysInMonth); err != nil {
		return fmt.Errorf("analysis.days_in_month: %w", err)
	}

	// Validate Report config
	validReportFormats := map[string]bool{"json": true, "yaml": true}
	if !validReportFormats[c.Report.Format] {
		return fmt.Errorf("report.format must be one of: json, yaml")
	}

	// Validate Telegram config
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
		if c.Telegram.MaxRetries < 1 {
			return fmt.Errorf("telegram.max_retries must be at least 1")
		}
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"plain": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: plain, text")
	}
	if c.Logging.File != "" && c.Logging.MaxSizeMB < 1 {
		return fmt.Errorf("logging.max_size_mb must be at least 1")
	}

	return nil
}
