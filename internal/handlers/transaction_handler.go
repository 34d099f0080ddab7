package handlers

import (
	"net/http"
	"strings"
	"time"

	"fincoach/internal/dto"
	"fincoach/internal/errors"
	"fincoach/internal/models"
	"fincoach/internal/repositories"
	"fincoach/internal/services"
	"fincoach/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	validator       *validation.Validator
	metrics         services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	validator *validation.Validator,
	metrics services.MetricsRecorderInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		validator:       validator,
		metrics:         metrics,
	}
}

// ListTransactions returns the owner's full ledger, newest date first
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.transactionRepo.ListByOwner(ownerID(c))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: transactions,
	})
}

// CreateTransaction validates and stores a manually entered transaction
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Request body must be valid JSON"))
	}

	if err := h.validator.Struct(&req); err != nil {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails(validation.FormatErrors(err)...))
	}

	// Validator guarantees these parse
	amount, _ := decimal.NewFromString(req.Amount)
	date, _ := time.ParseInLocation(models.DateLayout, req.Date, time.UTC)

	transaction := &models.Transaction{
		OwnerID:     ownerID(c),
		Amount:      amount,
		Kind:        strings.ToLower(req.Type),
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
		Notes:       req.Notes,
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.RecordTransactionCreated(transaction.Kind)

	return c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		ID: transaction.ID.String(),
	})
}

// DeleteTransaction removes a transaction by id, scoped to the owner.
// Unknown ids and ids belonging to other owners both report not found.
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	rawID := c.QueryParam("id")
	if rawID == "" {
		return SendError(c, errors.TransactionMissingID)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a UUID"))
	}

	removed, err := h.transactionRepo.Delete(ownerID(c), id)
	if err != nil {
		return SendSystemError(c, err)
	}
	if !removed {
		return SendError(c, errors.TransactionNotFound)
	}

	h.metrics.RecordTransactionDeleted()

	return c.JSON(http.StatusOK, dto.DeleteTransactionResponse{
		Message: "Transaction deleted successfully",
	})
}
