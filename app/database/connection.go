package database

import (
	"RestaurantApp/app/models"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db       *gorm.DB
	initOnce sync.Once
)

// GetDB returns the shared database instance, lazily initializing it with
// the default path on first use.
func GetDB() *gorm.DB {
	if db == nil {
		Initialize("./data/restaurant.db")
	}
	return db
}

// Initialize opens the local SQLite database and runs migrations. It is
// idempotent: the application is single-user, but a second call (or a racy
// first call) must never create a duplicate connection or schema.
func Initialize(dbPath string) error {
	var initErr error
	initOnce.Do(func() {
		initErr = open(dbPath)
	})
	return initErr
}

func open(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// CGO-free SQLite driver
	conn, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	// One logical actor, one shared connection. A single pooled connection
	// also keeps the foreign_keys pragma in effect for every statement.
	sqlDB.SetMaxOpenConns(1)

	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := Migrate(conn); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db = conn
	return nil
}

// Migrate creates the ledger tables. Exposed separately so tests can run
// the same schema against their own in-memory database.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		// Menu
		&models.MenuItem{},

		// Order locations
		&models.PendingOrder{},
		&models.PaidOrder{},
		&models.UnpaidOrder{},

		// Accounts and their ledger
		&models.Account{},
		&models.AccountOrder{},
		&models.CustomerTransaction{},

		// Suppliers and their ledger
		&models.Supplier{},
		&models.Product{},
		&models.BuyTransaction{},

		// Inventory
		&models.RawMaterial{},
	)
}

// Close closes the database connection
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
