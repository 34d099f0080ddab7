package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fincoach/internal/models"
	"fincoach/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = `date,description,amount,type,category
2024-01-15,Coffee,4.50,expense,food
2024-01-16,Paycheck,2500.00,income,salary
`

func TestParseStatement(t *testing.T) {
	t.Run("parses well formed rows", func(t *testing.T) {
		records, err := ParseStatement(strings.NewReader(sampleStatement))

		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("4.50")))
		assert.Equal(t, models.TransactionKindExpense, records[0].Kind)
		assert.Equal(t, "Coffee", records[0].Description)
		assert.Equal(t, "food", records[0].Category)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), records[0].Date)

		assert.Equal(t, models.TransactionKindIncome, records[1].Kind)
	})

	t.Run("header matching is case insensitive", func(t *testing.T) {
		input := "Date,Description,AMOUNT,Type,Category\n2024-01-15,Coffee,4.50,expense,food\n"

		records, err := ParseStatement(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Coffee", records[0].Description)
	})

	t.Run("columns follow header order not a fixed layout", func(t *testing.T) {
		input := "amount,date,type\n9.99,2024-02-01,expense\n"

		records, err := ParseStatement(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("9.99")))
		assert.Equal(t, "No description", records[0].Description)
		assert.Equal(t, "Uncategorized", records[0].Category)
	})

	t.Run("invalid rows are dropped silently", func(t *testing.T) {
		input := `date,description,amount,type,category
2024-01-15,Coffee,4.50,expense,food
2024-01-16,Bad amount,not-a-number,expense,food
2024-01-17,Bad kind,10.00,transfer,food
not-a-date,Bad date,10.00,expense,food
2024-01-18,Negative,-5.00,expense,food
2024-01-19,Valid,12.00,income,salary
`

		records, err := ParseStatement(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Coffee", records[0].Description)
		assert.Equal(t, "Valid", records[1].Description)
	})

	t.Run("kind is lowercased before validation", func(t *testing.T) {
		input := "date,amount,type\n2024-01-15,4.50,EXPENSE\n"

		records, err := ParseStatement(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, models.TransactionKindExpense, records[0].Kind)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		input := "date,amount,type\n\n2024-01-15,4.50,expense\n\n"

		records, err := ParseStatement(strings.NewReader(input))

		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("header only file is empty", func(t *testing.T) {
		_, err := ParseStatement(strings.NewReader("date,amount,type\n"))
		assert.ErrorIs(t, err, ErrEmptyStatement)
	})

	t.Run("empty input is empty", func(t *testing.T) {
		_, err := ParseStatement(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyStatement)
	})

	t.Run("all rows invalid fails", func(t *testing.T) {
		input := "date,amount,type\n2024-01-15,nope,expense\n2024-01-16,,income\n"

		_, err := ParseStatement(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrNoValidRecords)
	})
}

func TestIngestStatement(t *testing.T) {
	ownerID := "demo-user"

	t.Run("stores accepted rows as one batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)

		var stored []models.Transaction
		repo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
			stored = transactions
			return nil
		})

		service := NewStatementIngestService(repo)

		inserted, err := service.IngestStatement(ownerID, strings.NewReader(sampleStatement))

		require.NoError(t, err)
		assert.Equal(t, 2, inserted)
		require.Len(t, stored, 2)
		assert.Equal(t, ownerID, stored[0].OwnerID)
		assert.Equal(t, ownerID, stored[1].OwnerID)
	})

	t.Run("parse failure never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
		service := NewStatementIngestService(repo)

		_, err := service.IngestStatement(ownerID, strings.NewReader("date,amount,type\n"))

		assert.ErrorIs(t, err, ErrEmptyStatement)
	})

	t.Run("store failure surfaces wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
		repo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("disk full"))

		service := NewStatementIngestService(repo)

		_, err := service.IngestStatement(ownerID, strings.NewReader(sampleStatement))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store statement batch")
	})
}
