package service

import (
	"context"
	"math"
	"sort"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/repository"
	"salesincentive-backend/internal/utils"
)

// Lifetime approved-incentive thresholds for tier classification. Lower
// bounds are inclusive: exactly 50000 is Silver.
const (
	tierSilverThreshold   = 50000.0
	tierGoldThreshold     = 200000.0
	tierPlatinumThreshold = 500000.0
)

type performanceService struct {
	dealRepo repository.DealRepository
	userRepo repository.UserRepository
}

func NewPerformanceService(dealRepo repository.DealRepository, userRepo repository.UserRepository) PerformanceService {
	return &performanceService{dealRepo: dealRepo, userRepo: userRepo}
}

func (s *performanceService) GetSummary(ctx context.Context, userID int64) (*domain.PerformanceSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	deals, err := s.dealRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &domain.PerformanceSummary{
		UserID:     userID,
		Name:       user.Name,
		TotalDeals: len(deals),
	}

	var amountSum, incentiveSum float64
	for _, d := range deals {
		amountSum += d.Amount
		switch d.Status {
		case domain.DealStatusApproved:
			summary.ApprovedDeals++
			incentiveSum += d.Incentive
		case domain.DealStatusRejected:
			summary.RejectedDeals++
		}
	}

	if decided := summary.ApprovedDeals + summary.RejectedDeals; decided > 0 {
		summary.ApprovalRate = float64(summary.ApprovedDeals) * 100 / float64(decided)
	}
	if len(deals) > 0 {
		summary.AverageDealValue = amountSum / float64(len(deals))
	}
	summary.TotalIncentiveEarned = incentiveSum

	summary.MonthlyTrend = monthlyBuckets(deals)
	summary.ConsistencyScore = consistencyScore(summary.MonthlyTrend)
	summary.BestMonth = bestMonth(summary.MonthlyTrend)
	classifyTier(summary)

	rank, err := s.globalRank(ctx, userID, incentiveSum)
	if err != nil {
		return nil, err
	}
	summary.GlobalRank = rank

	return summary, nil
}

// monthlyBuckets groups a user's dated deals by calendar month. Deal count
// covers all statuses; incentive and average amount cover approved deals
// only. Buckets come back chronologically ascending.
func monthlyBuckets(deals []domain.Deal) []domain.MonthlyBucket {
	type acc struct {
		count          int
		incentive      float64
		approvedAmount float64
		approvedCount  int
	}
	byMonth := make(map[string]*acc)
	for _, d := range deals {
		if d.Date == nil {
			continue
		}
		key := utils.MonthKey(*d.Date)
		a, ok := byMonth[key]
		if !ok {
			a = &acc{}
			byMonth[key] = a
		}
		a.count++
		if d.Status == domain.DealStatusApproved {
			a.incentive += d.Incentive
			a.approvedAmount += d.Amount
			a.approvedCount++
		}
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]domain.MonthlyBucket, 0, len(keys))
	for _, key := range keys {
		a := byMonth[key]
		bucket := domain.MonthlyBucket{
			Month:     key,
			DealCount: a.count,
			Incentive: a.incentive,
		}
		if a.approvedCount > 0 {
			bucket.AvgDealAmount = a.approvedAmount / float64(a.approvedCount)
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// consistencyScore measures month-to-month stability of incentive earnings
// as 100 minus the coefficient of variation, floored at 0. A single bucket
// has zero deviation and scores 100. No buckets, or a zero mean, score 0.
func consistencyScore(buckets []domain.MonthlyBucket) float64 {
	if len(buckets) == 0 {
		return 0
	}

	var sum float64
	for _, b := range buckets {
		sum += b.Incentive
	}
	mean := sum / float64(len(buckets))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, b := range buckets {
		diff := b.Incentive - mean
		variance += diff * diff
	}
	variance /= float64(len(buckets))

	cv := 100 * math.Sqrt(variance) / mean
	return math.Max(0, 100-cv)
}

func bestMonth(buckets []domain.MonthlyBucket) *domain.MonthlyBucket {
	var best *domain.MonthlyBucket
	for i := range buckets {
		if best == nil || buckets[i].Incentive > best.Incentive {
			best = &buckets[i]
		}
	}
	if best == nil {
		return nil
	}
	b := *best
	return &b
}

func classifyTier(s *domain.PerformanceSummary) {
	total := s.TotalIncentiveEarned
	switch {
	case total < tierSilverThreshold:
		s.CurrentTier = domain.TierBronze
		s.NextTier = domain.TierSilver
		s.ProgressToNextTier = math.Min(total/tierSilverThreshold*100, 100)
	case total < tierGoldThreshold:
		s.CurrentTier = domain.TierSilver
		s.NextTier = domain.TierGold
		s.ProgressToNextTier = math.Min(total/tierGoldThreshold*100, 100)
	case total < tierPlatinumThreshold:
		s.CurrentTier = domain.TierGold
		s.NextTier = domain.TierPlatinum
		s.ProgressToNextTier = math.Min(total/tierPlatinumThreshold*100, 100)
	default:
		s.CurrentTier = domain.TierPlatinum
		s.ProgressToNextTier = 100
	}
}

// globalRank places the user among all users by total approved incentive,
// descending. A user with zero incentive ranks after every user with a
// positive total.
func (s *performanceService) globalRank(ctx context.Context, userID int64, userIncentive float64) (int, error) {
	approved, err := s.dealRepo.ListByStatus(ctx, domain.DealStatusApproved)
	if err != nil {
		return 0, err
	}

	totals := make(map[int64]float64)
	var order []int64
	for _, d := range approved {
		if _, ok := totals[d.UserID]; !ok {
			order = append(order, d.UserID)
		}
		totals[d.UserID] += d.Incentive
	}

	var positive []int64
	for _, id := range order {
		if totals[id] > 0 {
			positive = append(positive, id)
		}
	}
	sort.SliceStable(positive, func(i, j int) bool {
		return totals[positive[i]] > totals[positive[j]]
	})

	if userIncentive > 0 {
		for i, id := range positive {
			if id == userID {
				return i + 1, nil
			}
		}
	}
	return len(positive) + 1, nil
}
