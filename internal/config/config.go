package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the CLI configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig holds the DHIS2 connection settings. The password is never
// stored in the config file; it lives in the OS keychain or the
// DHIS2_PASSWORD environment variable.
type ServerConfig struct {
	URL      string        `mapstructure:"url"`
	Username string        `mapstructure:"username"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// DatabaseConfig holds the task-history database settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// Load loads the configuration from file and environment. A missing config
// file is not an error; defaults and environment variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("DHIS2")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, "dhis2"))
		}
		v.AddConfigPath("/etc/dhis2/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key needs a default
// so viper knows it and environment overrides apply during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.url", "")
	v.SetDefault("server.username", "")
	v.SetDefault("server.timeout", 10*time.Minute)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("database.url", "sqlite://./dhis2.db")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
