package database

import (
	"testing"
	"time"

	"fincoach/internal/config"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestTransaction inserts a transaction with sensible defaults,
// overridable through the passed template.
func CreateTestTransaction(t *testing.T, db *DB, ownerID string, template models.Transaction) *models.Transaction {
	t.Helper()

	txn := template
	txn.OwnerID = ownerID

	if txn.Kind == "" {
		txn.Kind = models.TransactionKindExpense
	}
	if txn.Amount.IsZero() {
		txn.Amount = decimal.NewFromFloat(42.50)
	}
	if txn.Description == "" {
		txn.Description = "Test transaction"
	}
	if txn.Category == "" {
		if txn.Kind == models.TransactionKindIncome {
			txn.Category = "salary"
		} else {
			txn.Category = "food"
		}
	}
	if txn.Date.IsZero() {
		txn.Date = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	}

	if err := db.Create(&txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return &txn
}
