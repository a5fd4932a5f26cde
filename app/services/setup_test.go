package services

import (
	"testing"
	"time"

	"RestaurantApp/app/database"
	"RestaurantApp/app/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// openTestDB gives each test its own in-memory database with the real
// schema. A single connection keeps :memory: stable across statements.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:          db,
		materialSvc: &RawMaterialService{db: db},
		now:         fixedClock,
	}
}

func newTestAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db, now: fixedClock}
}

func newTestSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db, now: fixedClock}
}

func foodLine(title string, quantity, totalPrice float64) models.FoodLine {
	return models.FoodLine{Title: title, Quantity: quantity, TotalPrice: totalPrice, Type: models.ItemTypeFood}
}

func drinkLine(title string, quantity, totalPrice float64) models.FoodLine {
	return models.FoodLine{Title: title, Quantity: quantity, TotalPrice: totalPrice, Type: models.ItemTypeDrink}
}
