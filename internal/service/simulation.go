package service

import (
	"context"
	"math"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/repository"
)

// A deal counts as impacted when its projected incentive moves by more than
// this tolerance.
const simulationTolerance = 0.01

type simulationService struct {
	dealRepo repository.DealRepository
}

func NewSimulationService(dealRepo repository.DealRepository) SimulationService {
	return &simulationService{dealRepo: dealRepo}
}

// PreviewPolicy replays the approved deal history under alternative tiering
// parameters and reports the payout impact. Nothing is persisted.
func (s *simulationService) PreviewPolicy(ctx context.Context, threshold, lowRate, highRate float64) (*domain.SimulationResult, error) {
	approved, err := s.dealRepo.ListByStatus(ctx, domain.DealStatusApproved)
	if err != nil {
		return nil, err
	}

	result := &domain.SimulationResult{}
	for _, d := range approved {
		result.CurrentPayout += d.Incentive

		var projected float64
		if d.Amount <= threshold {
			projected = d.Amount * lowRate / 100
		} else {
			projected = d.Amount * highRate / 100
		}
		result.ProjectedPayout += projected

		if math.Abs(projected-d.Incentive) > simulationTolerance {
			result.ImpactedDealsCount++
		}
	}
	result.Difference = result.ProjectedPayout - result.CurrentPayout
	return result, nil
}
