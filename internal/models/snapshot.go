package models

import "github.com/shopspring/decimal"

// MonthlyTotal is one calendar-month bucket of a trailing window.
// Months with no transactions report zeros, not absence.
type MonthlyTotal struct {
	Month    string          `json:"month"` // "2006-01"
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// Snapshot is the derived aggregate view of a single owner's ledger.
// It is recomputed per request and never persisted.
type Snapshot struct {
	TransactionCount   int                        `json:"transaction_count"`
	ExpenseCount       int                        `json:"expense_count"`
	TotalIncome        decimal.Decimal            `json:"total_income"`
	TotalExpenses      decimal.Decimal            `json:"total_expenses"`
	NetBalance         decimal.Decimal            `json:"net_balance"`
	SavingsRatePercent decimal.Decimal            `json:"savings_rate_percent"`
	CategoryTotals     map[string]decimal.Decimal `json:"category_totals"`
	MonthlyTotals      []MonthlyTotal             `json:"monthly_totals"`
}

// TopExpenseCategory returns the expense category with the largest total and
// that total. Ties are broken by category name to keep the result
// deterministic. Returns ("", 0) when there are no expense categories.
func (s *Snapshot) TopExpenseCategory() (string, decimal.Decimal) {
	top := ""
	topAmount := decimal.Zero
	for category, amount := range s.CategoryTotals {
		switch {
		case amount.GreaterThan(topAmount):
			top = category
			topAmount = amount
		case amount.Equal(topAmount) && top != "" && category < top:
			top = category
		}
	}
	return top, topAmount
}
