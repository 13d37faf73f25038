package service

import (
	"context"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/logger"
	"salesincentive-backend/internal/repository"
)

type auditService struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditService(auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// LogAction records an audit entry. Audit writes are best-effort: a failure
// is logged and swallowed, never surfaced to the caller.
func (s *auditService) LogAction(ctx context.Context, actorID *int64, actorRole, action, entityType string, entityID int64, details string) {
	entry := &domain.AuditLog{
		ActorID:    actorID,
		ActorRole:  actorRole,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		logger.Warn("audit write failed", "action", action, "entity_type", entityType, "entity_id", entityID, "error", err)
	}
}

func (s *auditService) ListLogs(ctx context.Context, page, pageSize int32) ([]domain.AuditLog, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	return s.auditRepo.List(ctx, pageSize, (page-1)*pageSize)
}
