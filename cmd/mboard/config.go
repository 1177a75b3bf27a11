package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/platformetrics/maturityboard/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage MaturityBoard configuration",
	Long: `View and modify configuration. Most keys live in the YAML config file;
calculationMethod is a persisted preference that survives restarts on its
own.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a configuration value",
	Long: `Get a configuration value.

Examples:
  mboard config get calculationMethod
  mboard config get dashboard.default_quarter`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Examples:
  mboard config set calculationMethod median
  mboard config set dashboard.default_quarter "Q1 2026"`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE:  runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runConfigList(cmd, args)
	}
	key := args[0]

	if key == "calculationMethod" {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		fmt.Printf("calculationMethod = %s\n", a.Method())
		return nil
	}

	value := getConfigValue(cfg, key)
	if value == nil {
		fmt.Printf("Configuration key '%s' not found\n", key)
		return nil
	}
	fmt.Printf("%s = %v\n", key, value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	// The aggregation method is the one setting persisted outside the
	// config file, so a changed method is picked up by every later run.
	if key == "calculationMethod" {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.SetMethod(value); err != nil {
			return err
		}
		fmt.Printf("✅ Set calculationMethod = %s\n", value)
		return nil
	}

	if err := setConfigValue(cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Save(getConfigPath()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("✅ Set %s = %s\n", key, value)
	return nil
}

func runConfigList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println("MaturityBoard Configuration")
	fmt.Println("===========================")

	fmt.Printf("\nData:\n")
	fmt.Printf("  data.dir = %s\n", cfg.Data.Dir)
	fmt.Printf("  data.prefs_file = %s\n", cfg.Data.PrefsFile)

	fmt.Printf("\nDashboard:\n")
	fmt.Printf("  dashboard.default_quarter = %s\n", cfg.Dashboard.DefaultQuarter)
	fmt.Printf("  dashboard.default_method = %s\n", cfg.Dashboard.DefaultMethod)
	fmt.Printf("  dashboard.seed_quarters = %d\n", cfg.Dashboard.SeedQuarters)

	fmt.Printf("\nLog:\n")
	fmt.Printf("  log.level = %s\n", cfg.Log.Level)
	if cfg.Log.File != "" {
		fmt.Printf("  log.file = %s\n", cfg.Log.File)
	}
	fmt.Printf("  log.json = %v\n", cfg.Log.JSON)

	fmt.Printf("\nPreferences:\n")
	fmt.Printf("  calculationMethod = %s\n", a.Method())

	return nil
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".maturityboard", "config.yaml")
}

func getConfigValue(cfg *config.Config, key string) interface{} {
	switch key {
	case "data.dir":
		return cfg.Data.Dir
	case "data.prefs_file":
		return cfg.Data.PrefsFile
	case "dashboard.default_quarter":
		return cfg.Dashboard.DefaultQuarter
	case "dashboard.default_method":
		return cfg.Dashboard.DefaultMethod
	case "dashboard.seed_quarters":
		return cfg.Dashboard.SeedQuarters
	case "log.level":
		return cfg.Log.Level
	case "log.file":
		return cfg.Log.File
	case "log.json":
		return cfg.Log.JSON
	default:
		return nil
	}
}

func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "data.dir":
		cfg.Data.Dir = value
	case "data.prefs_file":
		cfg.Data.PrefsFile = value
	case "dashboard.default_quarter":
		cfg.Dashboard.DefaultQuarter = value
	case "dashboard.default_method":
		cfg.Dashboard.DefaultMethod = value
	case "dashboard.seed_quarters":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("seed_quarters must be a number: %w", err)
		}
		cfg.Dashboard.SeedQuarters = n
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = value == "true"
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
