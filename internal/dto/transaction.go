package dto

import (
	"fincoach/internal/models"
)

// CreateTransactionRequest is the POST /transactions payload. Amount arrives
// as a string to preserve decimal precision end to end.
type CreateTransactionRequest struct {
	Amount      string `json:"amount" validate:"required,positive_amount"`
	Type        string `json:"type" validate:"required,transaction_kind"`
	Description string `json:"description" validate:"required,max=255"`
	Category    string `json:"category" validate:"required,max=50"`
	Date        string `json:"date" validate:"required,calendar_date"`
	Notes       string `json:"notes" validate:"max=1000"`
}

// CreateTransactionResponse confirms a stored transaction
type CreateTransactionResponse struct {
	ID string `json:"id"`
}

// ListTransactionsResponse wraps the owner's ledger, newest first
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// DeleteTransactionResponse confirms a removal
type DeleteTransactionResponse struct {
	Message string `json:"message"`
}

// UploadResponse reports an accepted statement batch
type UploadResponse struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
}
