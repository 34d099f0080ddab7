package services

import (
	"testing"
	"time"

	"fincoach/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.ParseInLocation(models.DateLayout, value, time.UTC)
	require.NoError(t, err)
	return date
}

func tx(kind, amount, category string, date time.Time) models.Transaction {
	return models.Transaction{
		Kind:     kind,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func TestTotals(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		transactions []models.Transaction
		wantIncome   string
		wantExpenses string
	}{
		{
			name:         "empty ledger yields zeros",
			transactions: []models.Transaction{},
			wantIncome:   "0",
			wantExpenses: "0",
		},
		{
			name: "mixed kinds sum separately",
			transactions: []models.Transaction{
				tx(models.TransactionKindIncome, "2500.00", "salary", date),
				tx(models.TransactionKindExpense, "85.32", "food", date),
				tx(models.TransactionKindExpense, "45.00", "transport", date),
			},
			wantIncome:   "2500.00",
			wantExpenses: "130.32",
		},
		{
			name: "cent-level amounts keep exact precision",
			transactions: []models.Transaction{
				tx(models.TransactionKindExpense, "0.10", "food", date),
				tx(models.TransactionKindExpense, "0.20", "food", date),
			},
			wantIncome:   "0",
			wantExpenses: "0.30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			income, expenses := Totals(tt.transactions)
			assert.True(t, income.Equal(decimal.RequireFromString(tt.wantIncome)),
				"income = %s, want %s", income, tt.wantIncome)
			assert.True(t, expenses.Equal(decimal.RequireFromString(tt.wantExpenses)),
				"expenses = %s, want %s", expenses, tt.wantExpenses)
		})
	}
}

func TestExpensesByCategory(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		tx(models.TransactionKindExpense, "600.00", "food", date),
		tx(models.TransactionKindExpense, "250.00", "bills", date),
		tx(models.TransactionKindExpense, "150.00", "food", date),
		tx(models.TransactionKindIncome, "3000.00", "salary", date),
	}

	totals := ExpensesByCategory(transactions)

	require.Len(t, totals, 2)
	assert.True(t, totals["food"].Equal(decimal.RequireFromString("750.00")))
	assert.True(t, totals["bills"].Equal(decimal.RequireFromString("250.00")))
	assert.NotContains(t, totals, "salary")
}

func TestSavingsRatePercent(t *testing.T) {
	tests := []struct {
		name     string
		income   string
		expenses string
		want     string
	}{
		{name: "typical rate rounds to two decimals", income: "2500.00", expenses: "130.32", want: "94.79"},
		{name: "zero income defines rate as zero", income: "0", expenses: "500.00", want: "0"},
		{name: "overspending yields negative rate", income: "1000.00", expenses: "1500.00", want: "-50"},
		{name: "break even is zero", income: "1000.00", expenses: "1000.00", want: "0"},
		{name: "no expenses is full savings", income: "1000.00", expenses: "0", want: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := SavingsRatePercent(
				decimal.RequireFromString(tt.income),
				decimal.RequireFromString(tt.expenses))
			assert.True(t, rate.Equal(decimal.RequireFromString(tt.want)),
				"rate = %s, want %s", rate, tt.want)
		})
	}
}

func TestMonthlyTotals(t *testing.T) {
	reference := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		tx(models.TransactionKindIncome, "3000.00", "salary", mustDate(t, "2024-06-01")),
		tx(models.TransactionKindExpense, "400.00", "food", mustDate(t, "2024-06-10")),
		tx(models.TransactionKindExpense, "200.00", "bills", mustDate(t, "2024-04-05")),
		// Outside the trailing window, must be ignored
		tx(models.TransactionKindIncome, "9999.00", "salary", mustDate(t, "2023-12-31")),
	}

	buckets := MonthlyTotals(transactions, 6, reference)

	require.Len(t, buckets, 6)

	labels := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		labels = append(labels, bucket.Month)
	}
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}, labels)

	// April carries the lone expense
	assert.True(t, buckets[3].Expenses.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, buckets[3].Net.Equal(decimal.RequireFromString("-200.00")))

	// May is an explicit zero bucket
	assert.True(t, buckets[4].Income.IsZero())
	assert.True(t, buckets[4].Expenses.IsZero())

	// June nets income against expenses
	assert.True(t, buckets[5].Income.Equal(decimal.RequireFromString("3000.00")))
	assert.True(t, buckets[5].Expenses.Equal(decimal.RequireFromString("400.00")))
	assert.True(t, buckets[5].Net.Equal(decimal.RequireFromString("2600.00")))
}

func TestMonthlyTotals_WindowSpansYearBoundary(t *testing.T) {
	reference := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	buckets := MonthlyTotals(nil, 4, reference)

	require.Len(t, buckets, 4)
	assert.Equal(t, "2023-11", buckets[0].Month)
	assert.Equal(t, "2024-02", buckets[3].Month)
}

func TestMonthlyTotals_NonPositiveWindow(t *testing.T) {
	assert.Empty(t, MonthlyTotals(nil, 0, time.Now().UTC()))
	assert.Empty(t, MonthlyTotals(nil, -3, time.Now().UTC()))
}

func TestBuildSnapshot(t *testing.T) {
	reference := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		tx(models.TransactionKindIncome, "2500.00", "salary", mustDate(t, "2024-03-01")),
		tx(models.TransactionKindExpense, "85.32", "food", mustDate(t, "2024-03-05")),
		tx(models.TransactionKindExpense, "45.00", "transport", mustDate(t, "2024-03-10")),
	}

	snapshot := BuildSnapshot(transactions, 6, reference)

	assert.Equal(t, 3, snapshot.TransactionCount)
	assert.Equal(t, 2, snapshot.ExpenseCount)
	assert.True(t, snapshot.TotalIncome.Equal(decimal.RequireFromString("2500.00")))
	assert.True(t, snapshot.TotalExpenses.Equal(decimal.RequireFromString("130.32")))
	assert.True(t, snapshot.NetBalance.Equal(decimal.RequireFromString("2369.68")))
	assert.True(t, snapshot.SavingsRatePercent.Equal(decimal.RequireFromString("94.79")))
	assert.Len(t, snapshot.CategoryTotals, 2)
	assert.Len(t, snapshot.MonthlyTotals, 6)
}

func TestBuildSnapshot_EmptyLedger(t *testing.T) {
	snapshot := BuildSnapshot(nil, 6, time.Now().UTC())

	assert.Equal(t, 0, snapshot.TransactionCount)
	assert.True(t, snapshot.TotalIncome.IsZero())
	assert.True(t, snapshot.TotalExpenses.IsZero())
	assert.True(t, snapshot.SavingsRatePercent.IsZero())
	assert.Empty(t, snapshot.CategoryTotals)
	assert.Len(t, snapshot.MonthlyTotals, 6)
}
