package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fincoach/internal/models"
	"fincoach/internal/repositories"
)

const (
	// digestTransactionLimit caps how much transaction-level detail leaves
	// the process: only the most recent entries reach the model.
	digestTransactionLimit = 5

	// historyTurnLimit caps how many prior conversation turns are replayed
	historyTurnLimit = 5

	emptyLedgerDigest = "The user has no transactions recorded yet. Encourage them to add income and expense transactions to get started."
)

var (
	ErrCoachTimeout        = errors.New("coach model timed out")
	ErrEmptyMessage        = errors.New("message is required")
	ErrModelNotConfigured  = errors.New("coach model is not configured")
)

// ChatTurn is one prior exchange in the coach conversation
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type coachService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	model           CoachModelInterface
	timeout         time.Duration
}

// NewCoachService creates a new CoachServiceInterface instance
func NewCoachService(
	transactionRepo repositories.TransactionRepositoryInterface,
	model CoachModelInterface,
	timeout time.Duration,
) CoachServiceInterface {
	return &coachService{
		transactionRepo: transactionRepo,
		model:           model,
		timeout:         timeout,
	}
}

// Chat builds the financial digest for the owner, frames it as the system
// prompt together with recent conversation turns, and asks the model.
// Deadline overruns surface as ErrCoachTimeout; other model failures pass
// through for the caller to classify.
func (s *coachService) Chat(ctx context.Context, ownerID, message string, history []ChatTurn) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	if s.model == nil {
		return "", ErrModelNotConfigured
	}

	transactions, err := s.transactionRepo.ListByOwner(ownerID)
	if err != nil {
		return "", fmt.Errorf("failed to load ledger for coach: %w", err)
	}

	systemPrompt := buildSystemPrompt(BuildDigest(transactions), history)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	response, err := s.model.Generate(ctx, systemPrompt, message)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			slog.Warn("coach model timed out",
				"owner_id", ownerID,
				"timeout", s.timeout)
			return "", ErrCoachTimeout
		}
		return "", err
	}

	slog.Info("coach response generated",
		"owner_id", ownerID,
		"duration_ms", time.Since(started).Milliseconds(),
		"history_turns", len(history))

	return response, nil
}

// BuildDigest produces the compact natural-language summary of the ledger
// handed to the model. Beyond totals, only the most recent five transactions
// are exposed.
func BuildDigest(transactions []models.Transaction) string {
	if len(transactions) == 0 {
		return emptyLedgerDigest
	}

	income, expenses := Totals(transactions)
	net := income.Sub(expenses)

	recent := transactions
	if len(recent) > digestTransactionLimit {
		recent = recent[:digestTransactionLimit]
	}

	items := make([]string, 0, len(recent))
	for i := range recent {
		items = append(items, fmt.Sprintf("%s $%s for %s",
			recent[i].Kind, recent[i].Amount.StringFixed(2), recent[i].Description))
	}

	return fmt.Sprintf(`User's Financial Profile:
- Transaction count: %d
- Net balance: $%s
- Total income: $%s
- Total expenses: $%s
- Recent transactions: %s`,
		len(transactions),
		net.StringFixed(2),
		income.StringFixed(2),
		expenses.StringFixed(2),
		strings.Join(items, ", "))
}

func buildSystemPrompt(digest string, history []ChatTurn) string {
	if len(history) > historyTurnLimit {
		history = history[len(history)-historyTurnLimit:]
	}

	turns := make([]string, 0, len(history))
	for _, turn := range history {
		turns = append(turns, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
	}

	return fmt.Sprintf(`You are a concise AI financial coach for a user. This is their data:

%s

Previous conversation:
%s

Keep responses SHORT (2-3 sentences max). Be helpful but concise. Only talk about topics relevant to what the user is asking, and only answer financially relevant questions.`,
		digest, strings.Join(turns, "\n"))
}
