package service

import (
	"context"
	"sort"
	"time"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/repository"
	"salesincentive-backend/internal/utils"
)

type leaderboardService struct {
	dealRepo repository.DealRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewLeaderboardService(dealRepo repository.DealRepository, userRepo repository.UserRepository) LeaderboardService {
	return &leaderboardService{dealRepo: dealRepo, userRepo: userRepo, now: time.Now}
}

// GetLeaderboard computes ranked per-user standings over the requested
// period. Only approved deals with an owner participate. Trend compares each
// user's rank against the previous period's ranking; users new to the board
// get trend 0.
func (s *leaderboardService) GetLeaderboard(ctx context.Context, period string) ([]domain.LeaderboardEntry, error) {
	p := utils.ParsePeriod(period)
	now := s.now()

	approved, err := s.dealRepo.ListByStatus(ctx, domain.DealStatusApproved)
	if err != nil {
		return nil, err
	}

	var current, previous []domain.Deal
	for _, d := range approved {
		if d.Date == nil {
			continue
		}
		if utils.InWindow(p, now, *d.Date, false) {
			current = append(current, d)
		}
		if p.HasPrevious() && utils.InWindow(p, now, *d.Date, true) {
			previous = append(previous, d)
		}
	}

	// Aggregate per user, preserving first-seen order so ties keep stable
	// input order after the sort.
	stats := make(map[int64]*domain.LeaderboardEntry)
	var order []int64
	for _, d := range current {
		entry, ok := stats[d.UserID]
		if !ok {
			entry = &domain.LeaderboardEntry{UserID: d.UserID}
			stats[d.UserID] = entry
			order = append(order, d.UserID)
		}
		entry.TotalIncentive += d.Incentive
		entry.TotalAmount += d.Amount
		entry.DealCount++
	}

	totalDeals := len(current)
	entries := make([]domain.LeaderboardEntry, 0, len(order))
	for _, userID := range order {
		entry := stats[userID]
		if entry.DealCount > 0 {
			entry.AvgDealSize = entry.TotalAmount / float64(entry.DealCount)
		}
		if totalDeals > 0 {
			entry.WinRate = float64(entry.DealCount) * 100 / float64(totalDeals)
		}
		entries = append(entries, *entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalIncentive > entries[j].TotalIncentive
	})

	previousRanks := rankByIncentive(previous)
	for i := range entries {
		rank := i + 1
		entries[i].Rank = rank
		if prev, ok := previousRanks[entries[i].UserID]; ok {
			entries[i].Trend = prev - rank
		}
	}

	s.fillNames(ctx, entries)
	return entries, nil
}

// rankByIncentive computes the incentive-only ranking used for the
// previous-period trend comparison.
func rankByIncentive(deals []domain.Deal) map[int64]int {
	totals := make(map[int64]float64)
	var order []int64
	for _, d := range deals {
		if _, ok := totals[d.UserID]; !ok {
			order = append(order, d.UserID)
		}
		totals[d.UserID] += d.Incentive
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	ranks := make(map[int64]int, len(order))
	for i, userID := range order {
		ranks[userID] = i + 1
	}
	return ranks
}

func (s *leaderboardService) fillNames(ctx context.Context, entries []domain.LeaderboardEntry) {
	if len(entries) == 0 {
		return
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	for i := range entries {
		entries[i].Name = names[entries[i].UserID]
	}
}
