package repository

import (
	"context"
	"salesincentive-backend/internal/domain"
)

type DealRepository interface {
	Create(ctx context.Context, deal *domain.Deal) error
	GetByID(ctx context.Context, id int64) (*domain.Deal, error)
	Update(ctx context.Context, deal *domain.Deal) error
	List(ctx context.Context) ([]domain.Deal, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Deal, error)
	ListByStatus(ctx context.Context, status domain.DealStatus) ([]domain.Deal, error)
	ListByStatusAndRisk(ctx context.Context, status domain.DealStatus, risk domain.RiskLevel) ([]domain.Deal, error)
	ListByPayoutStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.Deal, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type PolicyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Policy, error)
	List(ctx context.Context) ([]domain.Policy, error)
}

type RuleConfigRepository interface {
	ListActive(ctx context.Context) ([]domain.RuleConfig, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int64) error
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context, limit, offset int32) ([]domain.AuditLog, int32, error)
}
