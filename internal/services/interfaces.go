package services

import (
	"context"
	"io"
	"time"

	"fincoach/internal/models"
)

// InsightServiceInterface defines the contract for rule-based insight generation
type InsightServiceInterface interface {
	GenerateInsights(snapshot models.Snapshot) []models.Insight
}

// CoachModelInterface is the opaque external language-model collaborator:
// a prompt goes in, text comes out. Implementations must honor context
// cancellation and deadlines.
type CoachModelInterface interface {
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// CoachServiceInterface defines the contract for the AI coach conversation
type CoachServiceInterface interface {
	Chat(ctx context.Context, ownerID, message string, history []ChatTurn) (string, error)
}

// StatementIngestServiceInterface defines the contract for CSV statement ingestion
type StatementIngestServiceInterface interface {
	IngestStatement(ownerID string, r io.Reader) (int, error)
}

// TransactionGeneratorInterface defines the contract for demo ledger generation
type TransactionGeneratorInterface interface {
	GenerateLedger(ownerID string, months int) []models.Transaction
}

// MetricsRecorderInterface defines the contract for recording operational metrics
type MetricsRecorderInterface interface {
	RecordTransactionCreated(kind string)
	RecordTransactionDeleted()
	RecordStatementUpload(status string, accepted int)
	RecordCoachRequest(status string, duration time.Duration)
}
