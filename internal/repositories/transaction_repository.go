package repositories

import (
	"fmt"

	"fincoach/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts a single transaction. Validation and ID assignment happen
// in the model's BeforeCreate hook; the write commits before returning.
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch inserts multiple transactions atomically. Either every record
// is stored or none are, so reported insert counts stay exact.
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range transactions {
			if err := tx.Create(&transactions[i]).Error; err != nil {
				return fmt.Errorf("failed to create batch transaction: %w", err)
			}
		}
		return nil
	})
}

// ListByOwner retrieves the owner's full ledger, newest date first, with
// ties broken by insertion recency.
func (r *transactionRepository) ListByOwner(ownerID string) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// RecentByOwner retrieves the owner's most recent transactions
func (r *transactionRepository) RecentByOwner(ownerID string, limit int) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// CountByOwner counts the owner's transactions
func (r *transactionRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// Delete removes the record matching (id, owner). A miss is reported as
// false rather than an error; deletes never cross owner boundaries.
func (r *transactionRepository) Delete(ownerID string, id uuid.UUID) (bool, error) {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Transaction{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
