package services

import (
	"time"

	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// The aggregator is a set of pure reductions over a transaction slice.
// Callers may invoke them concurrently; nothing here holds state.

// Totals sums amounts grouped by kind. Empty input yields zeros.
func Totals(transactions []models.Transaction) (income, expenses decimal.Decimal) {
	income = decimal.Zero
	expenses = decimal.Zero

	for i := range transactions {
		if transactions[i].IsIncome() {
			income = income.Add(transactions[i].Amount)
		} else if transactions[i].IsExpense() {
			expenses = expenses.Add(transactions[i].Amount)
		}
	}

	return income, expenses
}

// TotalsByCategory sums amounts per category over transactions of one kind
func TotalsByCategory(transactions []models.Transaction, kind string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for i := range transactions {
		if transactions[i].Kind != kind {
			continue
		}
		totals[transactions[i].Category] = totals[transactions[i].Category].Add(transactions[i].Amount)
	}
	return totals
}

// ExpensesByCategory sums expense amounts per category
func ExpensesByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	return TotalsByCategory(transactions, models.TransactionKindExpense)
}

// MonthlyTotals buckets transactions into a trailing window of calendar
// months ending at the month containing the reference date, oldest first.
// Buckets without transactions report zeros; transactions outside the window
// are ignored.
func MonthlyTotals(transactions []models.Transaction, months int, reference time.Time) []models.MonthlyTotal {
	if months <= 0 {
		return []models.MonthlyTotal{}
	}

	buckets := make([]models.MonthlyTotal, months)
	indexByMonth := make(map[string]int, months)

	// First day of the oldest month in the window
	start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0)

	for i := 0; i < months; i++ {
		label := start.AddDate(0, i, 0).Format("2006-01")
		buckets[i] = models.MonthlyTotal{
			Month:    label,
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Net:      decimal.Zero,
		}
		indexByMonth[label] = i
	}

	for i := range transactions {
		idx, ok := indexByMonth[transactions[i].Month()]
		if !ok {
			continue
		}
		if transactions[i].IsIncome() {
			buckets[idx].Income = buckets[idx].Income.Add(transactions[i].Amount)
		} else if transactions[i].IsExpense() {
			buckets[idx].Expenses = buckets[idx].Expenses.Add(transactions[i].Amount)
		}
	}

	for i := range buckets {
		buckets[i].Net = buckets[i].Income.Sub(buckets[i].Expenses)
	}

	return buckets
}

// SavingsRatePercent computes (income-expenses)/income*100 rounded to two
// decimal places. Income of zero is defined as a rate of zero, never a
// division error. Negative rates are preserved; overspend detection
// needs the sign.
func SavingsRatePercent(income, expenses decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(oneHundred).Round(2)
}

// BuildSnapshot reduces a ledger into its derived aggregate view
func BuildSnapshot(transactions []models.Transaction, months int, reference time.Time) models.Snapshot {
	income, expenses := Totals(transactions)

	expenseCount := 0
	for i := range transactions {
		if transactions[i].IsExpense() {
			expenseCount++
		}
	}

	return models.Snapshot{
		TransactionCount:   len(transactions),
		ExpenseCount:       expenseCount,
		TotalIncome:        income,
		TotalExpenses:      expenses,
		NetBalance:         income.Sub(expenses),
		SavingsRatePercent: SavingsRatePercent(income, expenses),
		CategoryTotals:     ExpensesByCategory(transactions),
		MonthlyTotals:      MonthlyTotals(transactions, months, reference),
	}
}
