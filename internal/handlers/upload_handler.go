package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"fincoach/internal/dto"
	apierrors "fincoach/internal/errors"
	"fincoach/internal/services"

	"github.com/labstack/echo/v4"
)

// maxUploadBytes caps statement uploads at 5 MiB
const maxUploadBytes = 5 << 20

// UploadHandler handles CSV statement uploads
type UploadHandler struct {
	ingestService services.StatementIngestServiceInterface
	metrics       services.MetricsRecorderInterface
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(
	ingestService services.StatementIngestServiceInterface,
	metrics services.MetricsRecorderInterface,
) *UploadHandler {
	return &UploadHandler{
		ingestService: ingestService,
		metrics:       metrics,
	}
}

// UploadStatement parses a multipart CSV file and batch-inserts the valid
// rows. A file with no valid rows is a validation failure, not an empty
// success.
func (h *UploadHandler) UploadStatement(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, apierrors.UploadMissingFile)
	}

	if fileHeader.Size > maxUploadBytes {
		h.metrics.RecordStatementUpload("rejected", 0)
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithDetails("File exceeds the 5 MiB upload limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	inserted, err := h.ingestService.IngestStatement(ownerID(c), file)
	if err != nil {
		if errors.Is(err, services.ErrNoValidRecords) || errors.Is(err, services.ErrEmptyStatement) {
			h.metrics.RecordStatementUpload("rejected", 0)
			return SendError(c, apierrors.UploadNoValidRecords)
		}
		h.metrics.RecordStatementUpload("failed", 0)
		return SendSystemError(c, err)
	}

	h.metrics.RecordStatementUpload("accepted", inserted)

	return c.JSON(http.StatusOK, dto.UploadResponse{
		Message:  fmt.Sprintf("%d transactions uploaded successfully.", inserted),
		Inserted: inserted,
	})
}
