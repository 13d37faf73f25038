package service

import "salesincentive-backend/internal/domain"

// Default commission tiering applied when no policy override exists.
const (
	tierBoundaryAmount = 50000.0
	lowTierRate        = 5.0
	highTierRate       = 10.0
)

// ComputeCommission derives the rate and incentive for a deal amount.
//
// A caller-supplied non-zero rate AND incentive win unmodified. Otherwise a
// referenced policy with a commission rate overrides the default tiering.
// The policy is passed as a snapshot so the calculation never depends on
// ambient configuration state.
func ComputeCommission(amount, explicitRate, explicitIncentive float64, policy *domain.Policy) (rate, incentive float64) {
	if explicitRate != 0 && explicitIncentive != 0 {
		return explicitRate, explicitIncentive
	}

	if policy != nil && policy.CommissionRate != nil {
		rate = *policy.CommissionRate
		return rate, amount * rate / 100
	}

	if amount <= tierBoundaryAmount {
		rate = lowTierRate
	} else {
		rate = highTierRate
	}
	return rate, amount * rate / 100
}
