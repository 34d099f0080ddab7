package dto

import "fincoach/internal/models"

// SnapshotResponse wraps the derived aggregate view of the ledger
type SnapshotResponse struct {
	Summary models.Snapshot `json:"summary"`
}

// InsightsResponse wraps the generated insight list, highest relevance first
type InsightsResponse struct {
	Insights []models.Insight `json:"insights"`
}
