package services

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"fincoach/internal/models"
	"fincoach/internal/repositories"

	"github.com/shopspring/decimal"
)

const (
	defaultDescription = "No description"
	defaultCategory    = "Uncategorized"
)

var (
	ErrNoValidRecords = errors.New("no valid transactions found in the file")
	ErrEmptyStatement = errors.New("statement has no data rows")
)

// StatementRecord is one accepted row of an uploaded statement, already
// parsed and defaulted but not yet stored.
type StatementRecord struct {
	Amount      decimal.Decimal
	Kind        string
	Description string
	Category    string
	Date        time.Time
	Notes       string
}

type statementIngestService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewStatementIngestService creates a new StatementIngestServiceInterface instance
func NewStatementIngestService(
	transactionRepo repositories.TransactionRepositoryInterface,
) StatementIngestServiceInterface {
	return &statementIngestService{
		transactionRepo: transactionRepo,
	}
}

// IngestStatement parses a CSV statement and stores the accepted rows as one
// atomic batch: either every accepted row is inserted or none are, so the
// returned count is exact. Zero accepted rows is an error, not an empty
// success.
func (s *statementIngestService) IngestStatement(ownerID string, r io.Reader) (int, error) {
	records, err := ParseStatement(r)
	if err != nil {
		return 0, err
	}

	transactions := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		transactions = append(transactions, models.Transaction{
			OwnerID:     ownerID,
			Amount:      record.Amount,
			Kind:        record.Kind,
			Description: record.Description,
			Category:    record.Category,
			Date:        record.Date,
			Notes:       record.Notes,
		})
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return 0, fmt.Errorf("failed to store statement batch: %w", err)
	}

	slog.Info("statement ingested",
		"owner_id", ownerID,
		"accepted_rows", len(transactions))

	return len(transactions), nil
}

// ParseStatement reads newline-delimited, comma-separated text. The first
// line is a case-insensitive header row; data rows map positionally onto it.
// A row is accepted only with a parseable positive amount, a valid kind, and
// a valid date; rejected rows are dropped silently. Zero accepted rows fails
// with ErrNoValidRecords.
func ParseStatement(r io.Reader) ([]StatementRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lines := make([]string, 0, 64)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}

	if len(lines) < 2 {
		return nil, ErrEmptyStatement
	}

	headers := splitRow(lines[0])
	for i := range headers {
		headers[i] = strings.ToLower(headers[i])
	}

	records := make([]StatementRecord, 0, len(lines)-1)
	dropped := 0

	for _, line := range lines[1:] {
		values := splitRow(line)

		fields := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) && values[i] != "" {
				fields[header] = values[i]
			}
		}

		record, ok := buildRecord(fields)
		if !ok {
			dropped++
			continue
		}
		records = append(records, record)
	}

	if dropped > 0 {
		slog.Debug("statement rows dropped", "dropped", dropped, "accepted", len(records))
	}

	if len(records) == 0 {
		return nil, ErrNoValidRecords
	}

	return records, nil
}

func splitRow(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// buildRecord validates the minimum structure of a row: amount, type and
// date present and parseable. Description and category receive defaults.
func buildRecord(fields map[string]string) (StatementRecord, bool) {
	rawAmount, hasAmount := fields["amount"]
	rawKind, hasKind := fields["type"]
	rawDate, hasDate := fields["date"]
	if !hasAmount || !hasKind || !hasDate {
		return StatementRecord{}, false
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return StatementRecord{}, false
	}

	kind := strings.ToLower(rawKind)
	if !models.IsValidTransactionKind(kind) {
		return StatementRecord{}, false
	}

	date, err := time.ParseInLocation(models.DateLayout, rawDate, time.UTC)
	if err != nil {
		return StatementRecord{}, false
	}

	description := fields["description"]
	if description == "" {
		description = defaultDescription
	}

	category := fields["category"]
	if category == "" {
		category = defaultCategory
	}

	return StatementRecord{
		Amount:      amount,
		Kind:        kind,
		Description: description,
		Category:    category,
		Date:        date,
		Notes:       fields["notes"],
	}, true
}
