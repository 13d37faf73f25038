package service

import "salesincentive-backend/internal/domain"

const (
	riskHighAmount   = 500000.0
	riskHighRate     = 20.0
	riskMediumAmount = 200000.0
)

// AssessRisk classifies a deal into a risk tier. The HIGH checks run before
// the amount MEDIUM check; a large amount is never downgraded by a low rate.
func AssessRisk(amount, rate float64) domain.RiskLevel {
	switch {
	case amount > riskHighAmount:
		return domain.RiskHigh
	case rate > riskHighRate:
		return domain.RiskHigh
	case amount > riskMediumAmount:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
