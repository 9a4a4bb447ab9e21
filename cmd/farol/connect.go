package main

import (
	"fmt"
	"os"

	"github.com/ogomes/farol/internal/config"
	"github.com/ogomes/farol/internal/db"
	"gorm.io/gorm"
)

const defaultConfigPath = "farol.yaml"

// loadConfig reads the config file at path. When the default path does not
// exist the built-in defaults (local SQLite) are used, so `farol serve`
// works out of the box; an explicit --config path must exist.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openDB connects to the database selected by the config.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		return db.ConnectSQLite(cfg.Database.Path)
	case "mysql":
		return db.Connect(cfg.Database.Host, cfg.Database.Port,
			cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// connectFromConfig loads the config and opens the configured database.
func connectFromConfig(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	gormDB, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gormDB, nil
}
