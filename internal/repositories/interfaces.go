package repositories

import (
	"fincoach/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for the transaction
// store. All queries are scoped by owner; an unknown owner is not an error,
// it simply has an empty ledger.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	ListByOwner(ownerID string) ([]models.Transaction, error)
	RecentByOwner(ownerID string, limit int) ([]models.Transaction, error)
	CountByOwner(ownerID string) (int64, error)
	// Delete reports whether a record matching (id, owner) was removed.
	// Callers translate false into a not-found response.
	Delete(ownerID string, id uuid.UUID) (bool, error)
}
