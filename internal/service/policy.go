package service

import (
	"context"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/repository"
)

type policyService struct {
	policyRepo repository.PolicyRepository
}

func NewPolicyService(policyRepo repository.PolicyRepository) PolicyService {
	return &policyService{policyRepo: policyRepo}
}

func (s *policyService) GetPolicy(ctx context.Context, id int64) (*domain.Policy, error) {
	return s.policyRepo.GetByID(ctx, id)
}

func (s *policyService) ListPolicies(ctx context.Context) ([]domain.Policy, error) {
	return s.policyRepo.List(ctx)
}
