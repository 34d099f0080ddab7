package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionKindIncome  = "income"
	TransactionKindExpense = "expense"

	// DateLayout is the calendar-date wire format; no time-of-day semantics.
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingDescription     = errors.New("transaction description is required")
	ErrMissingCategory        = errors.New("transaction category is required")
	ErrMissingDate            = errors.New("transaction date is required")
	ErrMissingOwner           = errors.New("transaction owner is required")
)

// Transaction represents a single ledger entry. Records are immutable once
// created; edits are modeled as delete followed by re-insert.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     string          `gorm:"type:varchar(64);not null;index" json:"-"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Kind        string          `gorm:"type:varchar(20);not null" json:"type"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Category    string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	// Dates carry calendar semantics only
	t.Date = t.Date.Truncate(24 * time.Hour)

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.OwnerID == "" {
		return ErrMissingOwner
	}

	if !IsValidTransactionKind(t.Kind) {
		return ErrInvalidTransactionKind
	}

	// Sign is carried by Kind, never by Amount
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrMissingDescription
	}

	if strings.TrimSpace(t.Category) == "" {
		return ErrMissingCategory
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// IsIncome returns true if the transaction adds to the ledger balance
func (t *Transaction) IsIncome() bool {
	return t.Kind == TransactionKindIncome
}

// IsExpense returns true if the transaction draws from the ledger balance
func (t *Transaction) IsExpense() bool {
	return t.Kind == TransactionKindExpense
}

// SignedAmount returns the amount with the sign implied by the kind
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Month returns the calendar year-month bucket label for the transaction date
func (t *Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionKind checks if the transaction kind is valid
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindIncome, TransactionKindExpense:
		return true
	default:
		return false
	}
}

// incomeCategories and expenseCategories mirror the vocabulary the dashboard
// offers. The store does not enforce them; insight generation and the UI
// assume a small known set per kind.
var incomeCategories = []string{
	"salary", "freelance", "investment", "business", "other-income",
}

var expenseCategories = []string{
	"food", "transport", "shopping", "bills", "entertainment",
	"health", "education", "travel", "other-expense",
}

// KnownCategories returns the suggested category vocabulary for a kind.
// Unknown kinds yield nil.
func KnownCategories(kind string) []string {
	switch kind {
	case TransactionKindIncome:
		return incomeCategories
	case TransactionKindExpense:
		return expenseCategories
	default:
		return nil
	}
}
