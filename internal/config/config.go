// config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/amir-mohammad-HP/cronparse/internal/render"
	"github.com/amir-mohammad-HP/cronparse/internal/types"
)

// Default configuration values
var defaultConfig = types.Config{
	AppName:     "cronparse",
	Environment: "development",
	LogLevel:    "info",
	Output: types.OutputConfig{
		ColumnWidth: render.DefaultColumnWidth,
		Format:      "table",
	},
	Preview: types.PreviewConfig{
		Count: 5,
	},
}

// getSystemConfigPath returns the OS-specific configuration directory
func getSystemConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		programData := os.Getenv("PROGRAMDATA")
		if programData == "" {
			programData = "C:\\ProgramData"
		}
		configDir = filepath.Join(programData, "cronparse")

	case "darwin":
		configDir = "/Library/Application Support/cronparse"

	case "linux", "freebsd", "openbsd", "netbsd":
		configDir = "/etc/cronparse"

	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return configDir, nil
}

// getConfigPaths returns all possible configuration file paths in order of precedence
func getConfigPaths() ([]string, error) {
	systemConfigDir, err := getSystemConfigPath()
	if err != nil {
		return nil, err
	}

	// Configuration search paths in order of precedence (first found wins):
	paths := []string{}

	// 1. Current directory (for development and testing)
	paths = append(paths, "cronparse.yaml")

	// 2. User's home directory (~/.config/cronparse/)
	if home, err := os.UserHomeDir(); err == nil {
		userConfigDir := filepath.Join(home, ".config", "cronparse")
		paths = append(paths, filepath.Join(userConfigDir, "cronparse.yaml"))
	}

	// 3. System-wide configuration directory
	paths = append(paths, filepath.Join(systemConfigDir, "cronparse.yaml"))

	return paths, nil
}

// Load loads configuration from file, environment variables, or defaults
func Load() (*types.Config, error) {
	viper.SetConfigName("cronparse") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	// Set default values
	viper.SetDefault("app_name", defaultConfig.AppName)
	viper.SetDefault("environment", defaultConfig.Environment)
	viper.SetDefault("log_level", defaultConfig.LogLevel)
	viper.SetDefault("output.column_width", defaultConfig.Output.ColumnWidth)
	viper.SetDefault("output.format", defaultConfig.Output.Format)
	viper.SetDefault("preview.count", defaultConfig.Preview.Count)

	// Add configuration paths
	configPaths, err := getConfigPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(filepath.Dir(path))
	}

	// Try to read configuration file
	if err := viper.ReadInConfig(); err != nil {
		// If file doesn't exist, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables, prefixed with CRONPARSE_
	viper.SetEnvPrefix("CRONPARSE")
	viper.AutomaticEnv()

	// Unmarshal configuration into struct
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetConfigFileLocation returns the location of the currently loaded config file
func GetConfigFileLocation() string {
	return viper.ConfigFileUsed()
}

// CreateDefaultConfig creates a default configuration file in the system config directory
func CreateDefaultConfig() error {
	systemConfigDir, err := getSystemConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(systemConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(systemConfigDir, "cronparse.yaml")

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("config file already exists")
	}

	if err := os.WriteFile(configPath, []byte(DEFAULT_CONFIG_YAML), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
