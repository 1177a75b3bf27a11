package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration settings
type Config struct {
	// Data holds local file locations
	Data DataConfig `yaml:"data" mapstructure:"data"`

	// Dashboard holds default selector state
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`

	// Log holds logging settings
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

type DataConfig struct {
	// Dir is where local state (the preference database) lives
	Dir string `yaml:"dir" mapstructure:"dir"`
	// PrefsFile is the preference database filename inside Dir
	PrefsFile string `yaml:"prefs_file" mapstructure:"prefs_file"`
}

type DashboardConfig struct {
	// DefaultQuarter is the quarter selected when none is given
	DefaultQuarter string `yaml:"default_quarter" mapstructure:"default_quarter"`
	// DefaultMethod is the aggregation method used before any preference
	// has been persisted
	DefaultMethod string `yaml:"default_method" mapstructure:"default_method"`
	// SeedQuarters is how many quarters of seed data to generate
	SeedQuarters int `yaml:"seed_quarters" mapstructure:"seed_quarters"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
	JSON  bool   `yaml:"json" mapstructure:"json"`
}

// Default returns default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Data: DataConfig{
			Dir:       filepath.Join(homeDir, ".maturityboard"),
			PrefsFile: "prefs.db",
		},
		Dashboard: DashboardConfig{
			DefaultQuarter: "Q4 2025",
			DefaultMethod:  "simple",
			SeedQuarters:   6,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// PrefsPath returns the full path of the preference database.
func (c *Config) PrefsPath() string {
	return filepath.Join(c.Data.Dir, c.Data.PrefsFile)
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	// Load .env files first (in order of precedence)
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	// Set defaults
	cfg := Default()
	v.SetDefault("data", cfg.Data)
	v.SetDefault("dashboard", cfg.Dashboard)
	v.SetDefault("log", cfg.Log)

	// Load from environment variables
	v.SetEnvPrefix("MBOARD")
	v.AutomaticEnv()

	// Try to find config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Search for config in standard locations
		v.SetConfigName("config")
		v.AddConfigPath(".maturityboard")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".maturityboard"))
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Unmarshal into struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() {
	envFiles := []string{
		".env.local", // Local overrides (highest precedence)
		".env",       // Main environment file
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			godotenv.Load(file)
		}
	}

	// Also try loading from home directory
	homeDir, _ := os.UserHomeDir()
	homeEnvFile := filepath.Join(homeDir, ".maturityboard", ".env")
	if _, err := os.Stat(homeEnvFile); err == nil {
		godotenv.Load(homeEnvFile)
	}
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if dir := os.Getenv("MBOARD_DATA_DIR"); dir != "" {
		cfg.Data.Dir = expandPath(dir)
	}
	if quarter := os.Getenv("MBOARD_DEFAULT_QUARTER"); quarter != "" {
		cfg.Dashboard.DefaultQuarter = quarter
	}
	if method := os.Getenv("MBOARD_DEFAULT_METHOD"); method != "" {
		cfg.Dashboard.DefaultMethod = method
	}
	if level := os.Getenv("MBOARD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if file := os.Getenv("MBOARD_LOG_FILE"); file != "" {
		cfg.Log.File = expandPath(file)
	}
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("data", c.Data)
	v.Set("dashboard", c.Dashboard)
	v.Set("log", c.Log)

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write config file
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
