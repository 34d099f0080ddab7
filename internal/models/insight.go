package models

import "github.com/shopspring/decimal"

// Insight priorities, highest relevance first
const (
	InsightPriorityHigh   = "high"
	InsightPriorityMedium = "medium"
	InsightPriorityLow    = "low"
)

// Insight categories
const (
	InsightCategoryWarning     = "warning"
	InsightCategorySuccess     = "success"
	InsightCategoryInfo        = "info"
	InsightCategoryOpportunity = "opportunity"
)

// Insight is a derived, human-readable observation about the ledger's
// aggregate state. Insights are recomputed on demand and never persisted.
type Insight struct {
	ID                      string           `json:"id"`
	Title                   string           `json:"title"`
	Description             string           `json:"description"`
	Priority                string           `json:"priority"`
	Category                string           `json:"category"`
	EstimatedMonthlySavings *decimal.Decimal `json:"estimated_monthly_savings,omitempty"`
}

// IsValidInsightPriority checks if the insight priority is valid
func IsValidInsightPriority(priority string) bool {
	switch priority {
	case InsightPriorityHigh, InsightPriorityMedium, InsightPriorityLow:
		return true
	default:
		return false
	}
}

// IsValidInsightCategory checks if the insight category is valid
func IsValidInsightCategory(category string) bool {
	switch category {
	case InsightCategoryWarning, InsightCategorySuccess,
		InsightCategoryInfo, InsightCategoryOpportunity:
		return true
	default:
		return false
	}
}
