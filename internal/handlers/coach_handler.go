package handlers

import (
	"errors"
	"net/http"
	"time"

	"fincoach/internal/dto"
	apierrors "fincoach/internal/errors"
	"fincoach/internal/services"
	"fincoach/internal/validation"

	"github.com/labstack/echo/v4"
)

// CoachHandler handles AI coach conversation requests
type CoachHandler struct {
	coachService services.CoachServiceInterface
	validator    *validation.Validator
	metrics      services.MetricsRecorderInterface
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(
	coachService services.CoachServiceInterface,
	validator *validation.Validator,
	metrics services.MetricsRecorderInterface,
) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
		validator:    validator,
		metrics:      metrics,
	}
}

// Chat forwards the user's message, together with the ledger digest and up
// to five prior turns, to the model collaborator. Upstream failures map to
// 500 with details passed through; deadline overruns map to 408.
func (h *CoachHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Request body must be valid JSON"))
	}

	if err := h.validator.Struct(&req); err != nil {
		return SendError(c, apierrors.CoachMissingMessage,
			apierrors.WithDetails(validation.FormatErrors(err)...))
	}

	started := time.Now()
	response, err := h.coachService.Chat(
		c.Request().Context(),
		ownerID(c),
		req.Message,
		req.ConversationHistory,
	)
	duration := time.Since(started)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			h.metrics.RecordCoachRequest("rejected", duration)
			return SendError(c, apierrors.CoachMissingMessage)

		case errors.Is(err, services.ErrCoachTimeout):
			h.metrics.RecordCoachRequest("timeout", duration)
			return SendError(c, apierrors.CoachTimeout)

		case errors.Is(err, services.ErrCircuitBreakerOpen):
			h.metrics.RecordCoachRequest("circuit_open", duration)
			return SendError(c, apierrors.SystemServiceUnavailable,
				apierrors.WithDetails("AI coach is temporarily unavailable"))

		default:
			var upstream *services.UpstreamError
			if errors.As(err, &upstream) {
				h.metrics.RecordCoachRequest("upstream_error", duration)
				return SendError(c, apierrors.CoachUpstreamError,
					apierrors.WithDetails(upstream.Error()))
			}
			h.metrics.RecordCoachRequest("error", duration)
			return SendSystemError(c, err)
		}
	}

	h.metrics.RecordCoachRequest("success", duration)

	return c.JSON(http.StatusOK, dto.ChatResponse{Response: response})
}
