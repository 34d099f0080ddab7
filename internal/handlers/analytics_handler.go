package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fincoach/internal/dto"
	"fincoach/internal/errors"
	"fincoach/internal/repositories"
	"fincoach/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultTrailingMonths = 6
	maxTrailingMonths     = 24
)

// AnalyticsHandler serves the derived aggregate views of the ledger
type AnalyticsHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	insightService  services.InsightServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	insightService services.InsightServiceInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		transactionRepo: transactionRepo,
		insightService:  insightService,
	}
}

// GetSummary returns the aggregate snapshot: totals, savings rate, category
// breakdown and the trailing monthly buckets (months query param, default 6)
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	months, err := trailingMonths(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	transactions, err := h.transactionRepo.ListByOwner(ownerID(c))
	if err != nil {
		return SendSystemError(c, err)
	}

	snapshot := services.BuildSnapshot(transactions, months, time.Now().UTC())

	return c.JSON(http.StatusOK, dto.SnapshotResponse{Summary: snapshot})
}

// GetInsights returns the rule-based insight list for the ledger
func (h *AnalyticsHandler) GetInsights(c echo.Context) error {
	transactions, err := h.transactionRepo.ListByOwner(ownerID(c))
	if err != nil {
		return SendSystemError(c, err)
	}

	snapshot := services.BuildSnapshot(transactions, defaultTrailingMonths, time.Now().UTC())
	insights := h.insightService.GenerateInsights(snapshot)

	return c.JSON(http.StatusOK, dto.InsightsResponse{Insights: insights})
}

func trailingMonths(c echo.Context) (int, error) {
	raw := c.QueryParam("months")
	if raw == "" {
		return defaultTrailingMonths, nil
	}

	months, err := strconv.Atoi(raw)
	if err != nil || months < 1 || months > maxTrailingMonths {
		return 0, fmt.Errorf("months must be an integer between 1 and %d", maxTrailingMonths)
	}
	return months, nil
}
