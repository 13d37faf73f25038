package service

import (
	"context"
	"salesincentive-backend/internal/domain"
)

// CreateDealRequest carries the inputs for deal submission. Rate and
// Incentive are honored unmodified when both are non-zero (calculator
// override from the caller).
type CreateDealRequest struct {
	UserID            int64
	Amount            float64
	Date              *string // yyyy-mm-dd, defaults to today
	Rate              float64
	Incentive         float64
	PolicyID          *int64
	CreatedBy         *int64 // admin id; assignment creates the deal in Assigned
	DealName          string
	OrganizationName  string
	DealType          string
	ExpectedCloseDate *string
	Priority          string
	DealNotes         string
	ClientName        string
	Industry          string
	Region            string
	Currency          string
}

type DealService interface {
	CreateDeal(ctx context.Context, req CreateDealRequest) (*domain.Deal, error)
	GetDeal(ctx context.Context, id int64) (*domain.Deal, error)
	ListDeals(ctx context.Context, userID *int64) ([]domain.Deal, error)
	TransitionStatus(ctx context.Context, dealID int64, status string, reason, comment *string, actorID *int64) (*domain.Deal, error)
	BulkAutoApprove(ctx context.Context) ([]domain.Deal, error)
	ListPayouts(ctx context.Context, userID int64) ([]domain.Payout, error)
}

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, period string) ([]domain.LeaderboardEntry, error)
}

type PerformanceService interface {
	GetSummary(ctx context.Context, userID int64) (*domain.PerformanceSummary, error)
}

type RuleService interface {
	EvaluateDeal(ctx context.Context, deal *domain.Deal) ([]TriggeredRule, error)
}

type SimulationService interface {
	PreviewPolicy(ctx context.Context, threshold, lowRate, highRate float64) (*domain.SimulationResult, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int64) error
}

type AuditService interface {
	LogAction(ctx context.Context, actorID *int64, actorRole, action, entityType string, entityID int64, details string)
	ListLogs(ctx context.Context, page, pageSize int32) ([]domain.AuditLog, int32, error)
}

type PolicyService interface {
	GetPolicy(ctx context.Context, id int64) (*domain.Policy, error)
	ListPolicies(ctx context.Context) ([]domain.Policy, error)
}
