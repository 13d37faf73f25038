package domain

import "time"

type PolicyType string

const (
	PolicyTypeCompany   PolicyType = "COMPANY"
	PolicyTypeIncentive PolicyType = "INCENTIVE"
)

// Policy describes either a company policy document or an incentive policy
// that overrides the default commission tiering. The incentive fields are
// nullable; a policy without a commission rate does not affect calculation.
type Policy struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Type           PolicyType `json:"type"`
	Content        string     `json:"content,omitempty"`
	Description    string     `json:"description,omitempty"`
	CommissionRate *float64   `json:"commission_rate,omitempty"` // percentage
	MinDealAmount  *float64   `json:"min_deal_amount,omitempty"`
	MaxDealAmount  *float64   `json:"max_deal_amount,omitempty"`
	BonusThreshold *float64   `json:"bonus_threshold,omitempty"`
	BonusAmount    *float64   `json:"bonus_amount,omitempty"`
	LastUpdated    time.Time  `json:"last_updated"`
	Active         bool       `json:"active"`
}
