package services

import (
	"math/rand"
	"time"

	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

const (
	salaryDayOfMonth = 1
	billsDayOfMonth  = 5
)

// merchantInfo pairs a display name with the category its spending lands in
type merchantInfo struct {
	name     string
	category string
	minSpend float64
	maxSpend float64
}

type transactionGenerator struct {
	merchantPool []merchantInfo
	rng          *rand.Rand
}

// NewTransactionGenerator creates a demo-ledger generator. Generated data
// follows household rhythms: a monthly salary, recurring bills, and a spread
// of day-to-day spending across the known expense categories.
func NewTransactionGenerator() TransactionGeneratorInterface {
	return &transactionGenerator{
		merchantPool: demoMerchantPool(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func demoMerchantPool() []merchantInfo {
	return []merchantInfo{
		{"Whole Foods Market", "food", 20, 150},
		{"Trader Joe's", "food", 15, 90},
		{"Chipotle", "food", 10, 35},
		{"Starbucks", "food", 4, 15},

		{"Shell", "transport", 25, 70},
		{"Metro Transit", "transport", 2, 10},
		{"Uber", "transport", 8, 45},

		{"Amazon", "shopping", 10, 200},
		{"Target", "shopping", 15, 120},

		{"Netflix", "entertainment", 16, 16},
		{"AMC Theatres", "entertainment", 12, 40},

		{"CVS Pharmacy", "health", 5, 60},
		{"City Gym", "health", 45, 45},

		{"Coursera", "education", 39, 59},

		{"Delta Air Lines", "travel", 150, 600},
	}
}

// GenerateLedger produces a realistic demo ledger for the owner spanning the
// trailing number of months up to today.
func (g *transactionGenerator) GenerateLedger(ownerID string, months int) []models.Transaction {
	if months <= 0 {
		return []models.Transaction{}
	}

	now := time.Now().UTC()
	transactions := make([]models.Transaction, 0, months*20)

	for offset := months - 1; offset >= 0; offset-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -offset, 0)

		transactions = append(transactions, g.monthlyIncome(ownerID, monthStart)...)
		transactions = append(transactions, g.monthlyBills(ownerID, monthStart)...)
		transactions = append(transactions, g.dailySpending(ownerID, monthStart, now)...)
	}

	return transactions
}

func (g *transactionGenerator) monthlyIncome(ownerID string, monthStart time.Time) []models.Transaction {
	salary := decimal.NewFromFloat(4200 + g.rng.Float64()*600).Round(2)

	income := []models.Transaction{{
		OwnerID:     ownerID,
		Amount:      salary,
		Kind:        models.TransactionKindIncome,
		Description: "Monthly salary",
		Category:    "salary",
		Date:        monthStart.AddDate(0, 0, salaryDayOfMonth-1),
	}}

	// Occasional freelance income
	if g.rng.Intn(3) == 0 {
		income = append(income, models.Transaction{
			OwnerID:     ownerID,
			Amount:      decimal.NewFromFloat(200 + g.rng.Float64()*800).Round(2),
			Kind:        models.TransactionKindIncome,
			Description: "Freelance project",
			Category:    "freelance",
			Date:        monthStart.AddDate(0, 0, 10+g.rng.Intn(10)),
		})
	}

	return income
}

func (g *transactionGenerator) monthlyBills(ownerID string, monthStart time.Time) []models.Transaction {
	bills := []struct {
		description string
		min, max    float64
	}{
		{"Rent", 1400, 1400},
		{"Electric bill", 60, 140},
		{"Internet service", 55, 55},
		{"Phone plan", 40, 75},
	}

	transactions := make([]models.Transaction, 0, len(bills))
	for _, bill := range bills {
		amount := bill.min
		if bill.max > bill.min {
			amount += g.rng.Float64() * (bill.max - bill.min)
		}

		transactions = append(transactions, models.Transaction{
			OwnerID:     ownerID,
			Amount:      decimal.NewFromFloat(amount).Round(2),
			Kind:        models.TransactionKindExpense,
			Description: bill.description,
			Category:    "bills",
			Date:        monthStart.AddDate(0, 0, billsDayOfMonth-1),
		})
	}

	return transactions
}

func (g *transactionGenerator) dailySpending(ownerID string, monthStart, now time.Time) []models.Transaction {
	monthEnd := monthStart.AddDate(0, 1, 0)
	if monthEnd.After(now) {
		monthEnd = now
	}
	days := int(monthEnd.Sub(monthStart).Hours() / 24)
	if days <= 0 {
		return nil
	}

	count := 8 + g.rng.Intn(8)
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		merchant := g.merchantPool[g.rng.Intn(len(g.merchantPool))]
		amount := merchant.minSpend + g.rng.Float64()*(merchant.maxSpend-merchant.minSpend)

		transactions = append(transactions, models.Transaction{
			OwnerID:     ownerID,
			Amount:      decimal.NewFromFloat(amount).Round(2),
			Kind:        models.TransactionKindExpense,
			Description: merchant.name,
			Category:    merchant.category,
			Date:        monthStart.AddDate(0, 0, g.rng.Intn(days)),
		})
	}

	return transactions
}
