package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fincoach/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler is a custom error handler for Echo that formats
// uncaught errors as standardized error responses and logs them
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	switch e := err.(type) {
	case *echo.HTTPError:
		errorResponse = errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(e.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", e.Message)),
		)
		httpStatus = e.Code

	case validator.ValidationErrors:
		fieldErrors := make(map[string]string, len(e))
		for _, fieldErr := range e {
			fieldErrors[fieldErr.Field()] = fmt.Sprintf("failed %s validation", fieldErr.Tag())
		}
		errorResponse = errors.NewValidationError(fieldErrors, traceID)
		httpStatus = http.StatusBadRequest

	default:
		errorResponse = errors.NewErrorResponse(errors.SystemInternalError, traceID)
		httpStatus = http.StatusInternalServerError
		slog.Error("unhandled error",
			"trace_id", traceID,
			"error", err.Error(),
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
		)
	}

	apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		strconv.Itoa(httpStatus),
	).Inc()

	if jsonErr := c.JSON(httpStatus, errorResponse); jsonErr != nil {
		slog.Error("failed to send error response",
			"trace_id", traceID,
			"error", jsonErr.Error(),
		)
	}
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.TransactionNotFound
	case http.StatusRequestTimeout:
		return errors.CoachTimeout
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemInternalError
	}
}
