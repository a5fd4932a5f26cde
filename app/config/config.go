package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppConfig holds all application configuration
type AppConfig struct {
	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// Business Information (printed on receipts)
	Business BusinessConfig `json:"business"`

	// Inventory depletion settings
	Inventory InventoryConfig `json:"inventory"`

	// First run flag
	FirstRun bool `json:"first_run"`
}

// DatabaseConfig holds the local database location
type DatabaseConfig struct {
	Path string `json:"path"`
}

// BusinessConfig holds business information
type BusinessConfig struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// InventoryConfig holds raw-material depletion settings. UsagePerUnit maps
// a raw material name to how much of it one sold unit of a matching food
// consumes; materials not listed deplete 1 per unit.
type InventoryConfig struct {
	UsagePerUnit map[string]float64 `json:"usage_per_unit"`
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}
		appData = filepath.Join(homeDir, ".config")
	}

	configDir := filepath.Join(appData, "RestaurantApp")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// DefaultConfig returns the configuration used on first run.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{
			Path: "./data/restaurant.db",
		},
		Inventory: InventoryConfig{
			UsagePerUnit: map[string]float64{},
		},
		FirstRun: true,
	}
}

// LoadConfig loads configuration from config.json
func LoadConfig() (*AppConfig, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}

	// Environment overrides take priority over the file
	if path := os.Getenv("RESTAURANT_DB_PATH"); path != "" {
		cfg.Database.Path = path
	}

	return &cfg, nil
}

// SaveConfig saves configuration to config.json
func SaveConfig(cfg *AppConfig) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("could not write config file: %w", err)
	}

	return nil
}
