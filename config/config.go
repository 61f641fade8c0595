package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/myshows-mcp/myshows"
)

// Load loads the configuration from file and environment. Credentials may
// come from a config file or from MYSHOWS_LOGIN / MYSHOWS_PASSWORD; a
// missing config file is only an error when a path was given explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Environment overrides
	v.AutomaticEnv()
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".myshows-mcp"))
		}

		// Check /etc
		v.AddConfigPath("/etc/myshows-mcp/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		// No config file: credentials must come from the environment.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// bindEnv maps nested keys to flat environment variable names so that
// MYSHOWS_LOGIN works without a config file.
func bindEnv(v *viper.Viper) {
	v.BindEnv("myshows.login", "MYSHOWS_LOGIN")
	v.BindEnv("myshows.password", "MYSHOWS_PASSWORD")
	v.BindEnv("myshows.auth_url", "MYSHOWS_AUTH_URL")
	v.BindEnv("myshows.rpc_url", "MYSHOWS_RPC_URL")
	v.BindEnv("logging.level", "MYSHOWS_LOG_LEVEL")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Endpoint defaults
	v.SetDefault("myshows.auth_url", myshows.DefaultAuthURL)
	v.SetDefault("myshows.rpc_url", myshows.DefaultRPCURL)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid. Missing or placeholder
// credentials are a fatal startup condition, not a runtime error.
func validate(cfg *Config) error {
	if cfg.MyShows.Login == "" || strings.Contains(cfg.MyShows.Login, "your-login-here") {
		return fmt.Errorf("myshows.login must be set (config file or MYSHOWS_LOGIN)")
	}

	if cfg.MyShows.Password == "" || strings.Contains(cfg.MyShows.Password, "your-password-here") {
		return fmt.Errorf("myshows.password must be set (config file or MYSHOWS_PASSWORD)")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
