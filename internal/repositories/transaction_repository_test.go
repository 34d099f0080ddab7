package repositories

import (
	"testing"
	"time"

	"fincoach/internal/database"
	"fincoach/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite exercises the repository against an in-memory
// sqlite store.
type TransactionRepositorySuite struct {
	suite.Suite
	db          *database.DB
	repo        TransactionRepositoryInterface
	testOwnerID string
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.testOwnerID = "demo-user"
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) TestCreate_RoundTrip() {
	txn := &models.Transaction{
		OwnerID:     s.testOwnerID,
		Amount:      decimal.RequireFromString("85.32"),
		Kind:        models.TransactionKindExpense,
		Description: "Groceries",
		Category:    "food",
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Notes:       "weekly shop",
	}

	err := s.repo.Create(txn)
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, txn.ID)
	s.False(txn.CreatedAt.IsZero())

	stored, err := s.repo.ListByOwner(s.testOwnerID)
	s.Require().NoError(err)
	s.Require().Len(stored, 1)

	s.Equal(txn.ID, stored[0].ID)
	s.True(stored[0].Amount.Equal(decimal.RequireFromString("85.32")),
		"amount = %s, want 85.32", stored[0].Amount)
	s.Equal("Groceries", stored[0].Description)
	s.Equal("food", stored[0].Category)
	s.Equal("weekly shop", stored[0].Notes)
}

func (s *TransactionRepositorySuite) TestCreate_InvalidRecordRejected() {
	txn := &models.Transaction{
		OwnerID:     s.testOwnerID,
		Amount:      decimal.RequireFromString("-10.00"),
		Kind:        models.TransactionKindExpense,
		Description: "Bad",
		Category:    "food",
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	err := s.repo.Create(txn)
	s.ErrorIs(err, models.ErrInvalidAmount)

	count, err := s.repo.CountByOwner(s.testOwnerID)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *TransactionRepositorySuite) TestListByOwner_NewestFirst() {
	older := database.CreateTestTransaction(s.T(), s.db, s.testOwnerID, models.Transaction{
		Description: "Older",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	newer := database.CreateTestTransaction(s.T(), s.db, s.testOwnerID, models.Transaction{
		Description: "Newer",
		Date:        time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	})

	stored, err := s.repo.ListByOwner(s.testOwnerID)
	s.Require().NoError(err)
	s.Require().Len(stored, 2)

	s.Equal(newer.ID, stored[0].ID)
	s.Equal(older.ID, stored[1].ID)
}

func (s *TransactionRepositorySuite) TestListByOwner_ScopedToOwner() {
	database.CreateTestTransaction(s.T(), s.db, s.testOwnerID, models.Transaction{})
	database.CreateTestTransaction(s.T(), s.db, "someone-else", models.Transaction{})

	stored, err := s.repo.ListByOwner(s.testOwnerID)
	s.Require().NoError(err)
	s.Len(stored, 1)
}

func (s *TransactionRepositorySuite) TestListByOwner_UnknownOwnerIsEmpty() {
	stored, err := s.repo.ListByOwner("nobody")
	s.Require().NoError(err)
	s.Empty(stored)
}

func (s *TransactionRepositorySuite) TestRecentByOwner_HonorsLimit() {
	for day := 1; day <= 5; day++ {
		database.CreateTestTransaction(s.T(), s.db, s.testOwnerID, models.Transaction{
			Date: time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		})
	}

	recent, err := s.repo.RecentByOwner(s.testOwnerID, 3)
	s.Require().NoError(err)
	s.Require().Len(recent, 3)

	// Newest dates come back first
	s.True(recent[0].Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	s.True(recent[2].Date.Equal(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)))
}

func (s *TransactionRepositorySuite) TestCreateBatch_Atomic() {
	batch := []models.Transaction{
		{
			OwnerID:     s.testOwnerID,
			Amount:      decimal.RequireFromString("10.00"),
			Kind:        models.TransactionKindExpense,
			Description: "Valid",
			Category:    "food",
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			// Missing description fails validation inside the batch
			OwnerID:  s.testOwnerID,
			Amount:   decimal.RequireFromString("20.00"),
			Kind:     models.TransactionKindExpense,
			Category: "food",
			Date:     time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	err := s.repo.CreateBatch(batch)
	s.Error(err)

	count, err := s.repo.CountByOwner(s.testOwnerID)
	s.Require().NoError(err)
	s.Zero(count, "a failed batch must not leave partial rows")
}

func (s *TransactionRepositorySuite) TestCreateBatch_Success() {
	batch := []models.Transaction{
		{
			OwnerID:     s.testOwnerID,
			Amount:      decimal.RequireFromString("10.00"),
			Kind:        models.TransactionKindExpense,
			Description: "First",
			Category:    "food",
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			OwnerID:     s.testOwnerID,
			Amount:      decimal.RequireFromString("2500.00"),
			Kind:        models.TransactionKindIncome,
			Description: "Second",
			Category:    "salary",
			Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	s.Require().NoError(s.repo.CreateBatch(batch))

	count, err := s.repo.CountByOwner(s.testOwnerID)
	s.Require().NoError(err)
	s.EqualValues(2, count)
}

func (s *TransactionRepositorySuite) TestListByOwner_LargeLedgerStaysOrdered() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		kind := models.TransactionKindExpense
		if gofakeit.Bool() {
			kind = models.TransactionKindIncome
		}

		txn := models.Transaction{
			OwnerID:     s.testOwnerID,
			Amount:      decimal.NewFromFloat(gofakeit.Price(1, 5000)).Round(2),
			Kind:        kind,
			Description: gofakeit.ProductName(),
			Category:    gofakeit.RandomString(models.KnownCategories(kind)),
			Date:        gofakeit.DateRange(start, end),
		}
		s.Require().NoError(s.repo.Create(&txn))
	}

	stored, err := s.repo.ListByOwner(s.testOwnerID)
	s.Require().NoError(err)
	s.Require().Len(stored, 50)

	for i := 1; i < len(stored); i++ {
		s.False(stored[i].Date.After(stored[i-1].Date),
			"ledger must come back newest date first")
	}
}

func (s *TransactionRepositorySuite) TestCreateBatch_EmptyIsNoop() {
	s.NoError(s.repo.CreateBatch(nil))
}

func (s *TransactionRepositorySuite) TestDelete() {
	txn := database.CreateTestTransaction(s.T(), s.db, s.testOwnerID, models.Transaction{})

	removed, err := s.repo.Delete(s.testOwnerID, txn.ID)
	s.Require().NoError(err)
	s.True(removed)

	// The same delete again reports a miss, not an error
	removed, err = s.repo.Delete(s.testOwnerID, txn.ID)
	s.Require().NoError(err)
	s.False(removed)
}

func (s *TransactionRepositorySuite) TestDelete_UnknownIDMisses() {
	removed, err := s.repo.Delete(s.testOwnerID, uuid.New())
	s.Require().NoError(err)
	s.False(removed)
}

func (s *TransactionRepositorySuite) TestDelete_NeverCrossesOwners() {
	txn := database.CreateTestTransaction(s.T(), s.db, "someone-else", models.Transaction{})

	removed, err := s.repo.Delete(s.testOwnerID, txn.ID)
	s.Require().NoError(err)
	s.False(removed)

	count, err := s.repo.CountByOwner("someone-else")
	s.Require().NoError(err)
	s.EqualValues(1, count)
}
