package domain

import "time"

// LeaderboardEntry is a per-user aggregate over a period. Computed on
// demand, never persisted.
type LeaderboardEntry struct {
	UserID         int64   `json:"user_id"`
	Name           string  `json:"name"`
	TotalIncentive float64 `json:"total_incentive"`
	DealCount      int     `json:"deals"`
	TotalAmount    float64 `json:"total_amount"`
	AvgDealSize    float64 `json:"avg_deal_size"`
	WinRate        float64 `json:"win_rate"` // share of the period's deal count, percent
	Rank           int     `json:"rank"`
	Trend          int     `json:"trend"` // previousRank - currentRank, 0 if new
}

// MonthlyBucket is one month of a user's performance history. Deal count
// covers all statuses; incentive and average amount cover approved deals
// only.
type MonthlyBucket struct {
	Month         string  `json:"month"` // yyyy-mm
	DealCount     int     `json:"deal_count"`
	Incentive     float64 `json:"incentive"`
	AvgDealAmount float64 `json:"avg_deal_amount"`
}

type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// PerformanceSummary is a single user's historical analytics snapshot.
type PerformanceSummary struct {
	UserID               int64           `json:"user_id"`
	Name                 string          `json:"name"`
	TotalDeals           int             `json:"total_deals"`
	ApprovedDeals        int             `json:"approved_deals"`
	RejectedDeals        int             `json:"rejected_deals"`
	ApprovalRate         float64         `json:"approval_rate"`
	TotalIncentiveEarned float64         `json:"total_incentive_earned"`
	AverageDealValue     float64         `json:"average_deal_value"`
	ConsistencyScore     float64         `json:"consistency_score"`
	CurrentTier          Tier            `json:"current_tier"`
	NextTier             Tier            `json:"next_tier,omitempty"`
	ProgressToNextTier   float64         `json:"progress_to_next_tier"`
	BestMonth            *MonthlyBucket  `json:"best_month,omitempty"`
	GlobalRank           int             `json:"global_rank"`
	MonthlyTrend         []MonthlyBucket `json:"monthly_trend"`
}

// Payout is a payout line derived from an approved deal.
type Payout struct {
	DealID int64        `json:"deal_id"`
	Amount float64      `json:"amount"`
	Date   time.Time    `json:"date"`
	Status PayoutStatus `json:"status"`
}

// SimulationResult is the outcome of previewing alternative commission
// tiering against historical approved deals.
type SimulationResult struct {
	CurrentPayout      float64 `json:"current_payout"`
	ProjectedPayout    float64 `json:"projected_payout"`
	Difference         float64 `json:"difference"`
	ImpactedDealsCount int     `json:"impacted_deals_count"`
}
