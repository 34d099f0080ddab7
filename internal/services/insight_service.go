package services

import (
	"fmt"
	"strings"

	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// Rule thresholds, in currency units and percentage points
var (
	savingsRateExcellent   = decimal.NewFromInt(20)
	savingsRateGood        = decimal.NewFromInt(10)
	concentrationShare     = decimal.NewFromInt(40)
	concentrationMinAmount = decimal.NewFromInt(500)
	largeTransactionAvg    = decimal.NewFromInt(1000)
	suggestedCutRate       = decimal.NewFromFloat(0.20)
	emergencyFundMonths    = decimal.NewFromInt(3)
	contributionMonths     = decimal.NewFromInt(6)
)

// maxInsights caps the generated list at the first four insights in rule
// order, matching the dashboard's behavior. Truncation is by rule order,
// not priority.
const maxInsights = 4

type insightService struct{}

// NewInsightService creates a new InsightServiceInterface instance
func NewInsightService() InsightServiceInterface {
	return &insightService{}
}

// GenerateInsights evaluates a fixed, ordered rule chain over the snapshot.
// The engine is deterministic: equal snapshots always produce the same
// ordered list.
func (s *insightService) GenerateInsights(snapshot models.Snapshot) []models.Insight {
	if snapshot.TransactionCount == 0 {
		return []models.Insight{noDataInsight()}
	}

	insights := make([]models.Insight, 0, maxInsights)

	if insight := savingsRateInsight(snapshot); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := categoryConcentrationInsight(snapshot); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := transactionSizeInsight(snapshot); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := emergencyFundInsight(snapshot); insight != nil {
		insights = append(insights, *insight)
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}

	return insights
}

func noDataInsight() models.Insight {
	return models.Insight{
		ID:          "no-data",
		Title:       "No Transaction Data",
		Description: "Add some transactions to start receiving personalized insights about your finances.",
		Priority:    models.InsightPriorityMedium,
		Category:    models.InsightCategoryInfo,
	}
}

func savingsRateInsight(snapshot models.Snapshot) *models.Insight {
	rate := snapshot.SavingsRatePercent
	overspending := snapshot.TotalExpenses.GreaterThan(snapshot.TotalIncome)

	switch {
	case snapshot.TotalIncome.GreaterThan(decimal.Zero) && rate.GreaterThan(savingsRateExcellent):
		return &models.Insight{
			ID:          "savings-rate",
			Title:       "Excellent Savings Rate",
			Description: fmt.Sprintf("You're saving %s%% of your income. Keep it up and consider putting the surplus to work.", rate.StringFixed(2)),
			Priority:    models.InsightPriorityHigh,
			Category:    models.InsightCategorySuccess,
		}

	case snapshot.TotalIncome.GreaterThan(decimal.Zero) && rate.GreaterThan(savingsRateGood):
		return &models.Insight{
			ID:          "savings-rate",
			Title:       "Good Savings Habit",
			Description: fmt.Sprintf("You're saving %s%% of your income. Pushing past 20%% would put you in excellent shape.", rate.StringFixed(2)),
			Priority:    models.InsightPriorityMedium,
			Category:    models.InsightCategoryInfo,
		}

	case snapshot.TotalIncome.GreaterThan(decimal.Zero) && rate.GreaterThan(decimal.Zero):
		return &models.Insight{
			ID:          "savings-rate",
			Title:       "Low Savings Rate",
			Description: fmt.Sprintf("You're only saving %s%% of your income. Aim for at least 10%% to build a financial cushion.", rate.StringFixed(2)),
			Priority:    models.InsightPriorityHigh,
			Category:    models.InsightCategoryWarning,
		}

	case overspending:
		overspend := snapshot.TotalExpenses.Sub(snapshot.TotalIncome)
		return &models.Insight{
			ID:          "savings-rate",
			Title:       "Spending More Than Earning",
			Description: fmt.Sprintf("Your expenses exceed your income by $%s. Review your spending to get back on track.", overspend.Abs().StringFixed(2)),
			Priority:    models.InsightPriorityHigh,
			Category:    models.InsightCategoryWarning,
		}
	}

	// Income equals expenses exactly; no tier applies
	return nil
}

func categoryConcentrationInsight(snapshot models.Snapshot) *models.Insight {
	topCategory, topAmount := snapshot.TopExpenseCategory()
	if topCategory == "" || snapshot.TotalExpenses.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	share := topAmount.Div(snapshot.TotalExpenses).Mul(oneHundred).Round(2)

	if share.GreaterThan(concentrationShare) && topAmount.GreaterThan(concentrationMinAmount) {
		suggested := topAmount.Mul(suggestedCutRate).Round(2)
		return &models.Insight{
			ID:                      "category-concentration",
			Title:                   fmt.Sprintf("Heavy %s Spending", titleCase(topCategory)),
			Description:             fmt.Sprintf("%s accounts for %s%% of your expenses ($%s). Trimming it by 20%% would free up $%s a month.", titleCase(topCategory), share.StringFixed(2), topAmount.StringFixed(2), suggested.StringFixed(2)),
			Priority:                models.InsightPriorityHigh,
			Category:                models.InsightCategoryWarning,
			EstimatedMonthlySavings: &suggested,
		}
	}

	if len(snapshot.CategoryTotals) > 1 {
		return &models.Insight{
			ID:          "category-concentration",
			Title:       "Balanced Spending",
			Description: fmt.Sprintf("Your spending is spread across categories. The largest, %s, is %s%% of your expenses.", titleCase(topCategory), share.StringFixed(2)),
			Priority:    models.InsightPriorityLow,
			Category:    models.InsightCategorySuccess,
		}
	}

	return &models.Insight{
		ID:          "category-concentration",
		Title:       "Minimal Expense Tracking",
		Description: "All of your expenses fall in a single category. Categorizing more precisely will sharpen these insights.",
		Priority:    models.InsightPriorityLow,
		Category:    models.InsightCategoryInfo,
	}
}

func transactionSizeInsight(snapshot models.Snapshot) *models.Insight {
	if snapshot.ExpenseCount == 0 {
		return nil
	}

	average := snapshot.TotalExpenses.Div(decimal.NewFromInt(int64(snapshot.ExpenseCount)))
	if !average.GreaterThan(largeTransactionAvg) {
		return nil
	}

	return &models.Insight{
		ID:          "transaction-size",
		Title:       "Large Transaction Pattern",
		Description: fmt.Sprintf("Your average expense is $%s. Large transactions deserve a second look before committing.", average.Round(2).StringFixed(2)),
		Priority:    models.InsightPriorityMedium,
		Category:    models.InsightCategoryInfo,
	}
}

func emergencyFundInsight(snapshot models.Snapshot) *models.Insight {
	// Total expenses stand in as the monthly outflow proxy
	target := snapshot.TotalExpenses.Mul(emergencyFundMonths)

	if snapshot.NetBalance.LessThan(target) {
		shortfall := target.Sub(snapshot.NetBalance)
		contribution := shortfall.Div(contributionMonths).Round(2)
		return &models.Insight{
			ID:                      "emergency-fund",
			Title:                   "Build Emergency Fund",
			Description:             fmt.Sprintf("You're $%s short of a 3-month emergency fund. Setting aside $%s a month gets you there in six months.", shortfall.StringFixed(2), contribution.StringFixed(2)),
			Priority:                models.InsightPriorityMedium,
			Category:                models.InsightCategoryOpportunity,
			EstimatedMonthlySavings: &contribution,
		}
	}

	return &models.Insight{
		ID:          "emergency-fund",
		Title:       "Emergency Fund Complete",
		Description: "Your net balance covers at least three months of expenses. Well done.",
		Priority:    models.InsightPriorityLow,
		Category:    models.InsightCategorySuccess,
	}
}

// titleCase renders a category slug for display ("other-expense" -> "Other Expense")
func titleCase(category string) string {
	words := strings.Split(strings.ReplaceAll(category, "-", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
