package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesincentive-backend/internal/domain"
)

func TestPerformanceService_GetSummary(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)

	newService := func(userDeals, allApproved []domain.Deal) PerformanceService {
		dealRepo := new(MockDealRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Asha"}, nil)
		dealRepo.On("ListByUser", ctx, int64(1)).Return(userDeals, nil)
		dealRepo.On("ListByStatus", ctx, domain.DealStatusApproved).Return(allApproved, nil)
		return NewPerformanceService(dealRepo, userRepo)
	}

	t.Run("Counts And Rates", func(t *testing.T) {
		userDeals := []domain.Deal{
			approvedDeal(1, 40000, 2000, march),
			approvedDeal(1, 60000, 6000, march),
			approvedDeal(1, 100000, 10000, april),
			{UserID: 1, Amount: 50000, Status: domain.DealStatusRejected, Date: &april},
			{UserID: 1, Amount: 30000, Status: domain.DealStatusPending, Date: &april},
		}

		summary, err := newService(userDeals, userDeals[:3]).GetSummary(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, "Asha", summary.Name)
		assert.Equal(t, 5, summary.TotalDeals)
		assert.Equal(t, 3, summary.ApprovedDeals)
		assert.Equal(t, 1, summary.RejectedDeals)
		assert.Equal(t, 75.0, summary.ApprovalRate, "pending deals are not decided")
		assert.Equal(t, 18000.0, summary.TotalIncentiveEarned)
		assert.Equal(t, 56000.0, summary.AverageDealValue)

		require.Len(t, summary.MonthlyTrend, 2)
		assert.Equal(t, "2026-03", summary.MonthlyTrend[0].Month)
		assert.Equal(t, 2, summary.MonthlyTrend[0].DealCount)
		assert.Equal(t, 8000.0, summary.MonthlyTrend[0].Incentive)
		assert.Equal(t, "2026-04", summary.MonthlyTrend[1].Month)
		assert.Equal(t, 3, summary.MonthlyTrend[1].DealCount, "deal count covers all statuses")
		assert.Equal(t, 10000.0, summary.MonthlyTrend[1].Incentive)

		require.NotNil(t, summary.BestMonth)
		assert.Equal(t, "2026-04", summary.BestMonth.Month)
	})

	t.Run("Single Month Scores Perfect Consistency", func(t *testing.T) {
		userDeals := []domain.Deal{approvedDeal(1, 40000, 2000, march)}

		summary, err := newService(userDeals, userDeals).GetSummary(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 100.0, summary.ConsistencyScore)
	})

	t.Run("No Deals", func(t *testing.T) {
		summary, err := newService([]domain.Deal{}, []domain.Deal{}).GetSummary(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.TotalDeals)
		assert.Equal(t, 0.0, summary.ApprovalRate)
		assert.Equal(t, 0.0, summary.ConsistencyScore)
		assert.Nil(t, summary.BestMonth)
		assert.Equal(t, domain.TierBronze, summary.CurrentTier)
		assert.Equal(t, 1, summary.GlobalRank, "no positive earners means rank 1")
	})

	t.Run("Unknown User", func(t *testing.T) {
		dealRepo := new(MockDealRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.NotFound("user", 42))
		svc := NewPerformanceService(dealRepo, userRepo)

		_, err := svc.GetSummary(ctx, 42)
		var notFoundErr *domain.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestPerformanceService_TierClassification(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	summaryFor := func(incentive float64) *domain.PerformanceSummary {
		userDeals := []domain.Deal{approvedDeal(1, incentive*10, incentive, march)}
		dealRepo := new(MockDealRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Asha"}, nil)
		dealRepo.On("ListByUser", ctx, int64(1)).Return(userDeals, nil)
		dealRepo.On("ListByStatus", ctx, domain.DealStatusApproved).Return(userDeals, nil)
		summary, err := NewPerformanceService(dealRepo, userRepo).GetSummary(ctx, 1)
		require.NoError(t, err)
		return summary
	}

	t.Run("Bronze Below Silver Threshold", func(t *testing.T) {
		s := summaryFor(49999)
		assert.Equal(t, domain.TierBronze, s.CurrentTier)
		assert.Equal(t, domain.TierSilver, s.NextTier)
	})

	t.Run("Exactly 50000 Is Silver", func(t *testing.T) {
		s := summaryFor(50000)
		assert.Equal(t, domain.TierSilver, s.CurrentTier)
		assert.Equal(t, domain.TierGold, s.NextTier)
	})

	t.Run("Gold", func(t *testing.T) {
		s := summaryFor(200000)
		assert.Equal(t, domain.TierGold, s.CurrentTier)
		assert.Equal(t, domain.TierPlatinum, s.NextTier)
	})

	t.Run("Platinum Has No Next Tier", func(t *testing.T) {
		s := summaryFor(500000)
		assert.Equal(t, domain.TierPlatinum, s.CurrentTier)
		assert.Empty(t, s.NextTier)
		assert.Equal(t, 100.0, s.ProgressToNextTier)
	})
}

func TestPerformanceService_GlobalRank(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	allApproved := []domain.Deal{
		approvedDeal(2, 100000, 10000, march),
		approvedDeal(1, 40000, 2000, march),
		approvedDeal(3, 60000, 6000, march),
	}

	rankOf := func(userID int64, userDeals []domain.Deal) int {
		dealRepo := new(MockDealRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, Name: "X"}, nil)
		dealRepo.On("ListByUser", ctx, userID).Return(userDeals, nil)
		dealRepo.On("ListByStatus", ctx, domain.DealStatusApproved).Return(allApproved, nil)
		summary, err := NewPerformanceService(dealRepo, userRepo).GetSummary(ctx, userID)
		require.NoError(t, err)
		return summary.GlobalRank
	}

	assert.Equal(t, 1, rankOf(2, []domain.Deal{allApproved[0]}))
	assert.Equal(t, 2, rankOf(3, []domain.Deal{allApproved[2]}))
	assert.Equal(t, 3, rankOf(1, []domain.Deal{allApproved[1]}))
	assert.Equal(t, 4, rankOf(4, []domain.Deal{}), "zero-incentive user ranks after all positive earners")
}
