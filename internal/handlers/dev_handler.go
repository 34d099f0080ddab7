package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"fincoach/internal/errors"
	"fincoach/internal/repositories"
	"fincoach/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedMonths = 6
	maxSeedMonths     = 24
)

// DevHandler handles development-only endpoints. The route is registered
// only when the server runs in the development environment.
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(transactionRepo repositories.TransactionRepositoryInterface) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       services.NewTransactionGenerator(),
	}
}

// SeedLedger fills the owner's ledger with generated demo data
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - months: Months of history to generate (default: 6, max: 24)
func (h *DevHandler) SeedLedger(c echo.Context) error {
	months := defaultSeedMonths
	if raw := c.QueryParam("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSeedMonths {
			return SendError(c, errors.ValidationInvalidFormat,
				errors.WithDetails(fmt.Sprintf("months must be an integer between 1 and %d", maxSeedMonths)))
		}
		months = parsed
	}

	ledger := h.generator.GenerateLedger(ownerID(c), months)

	if err := h.transactionRepo.CreateBatch(ledger); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "Demo ledger generated",
		"transactions_created": len(ledger),
	})
}
