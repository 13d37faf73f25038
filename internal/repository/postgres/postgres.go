package postgres

import (
	"database/sql"
	"salesincentive-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.DealRepository
	repository.UserRepository
	repository.PolicyRepository
	repository.RuleConfigRepository
	repository.NotificationRepository
	repository.AuditLogRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		DealRepository:         NewDealRepository(db),
		UserRepository:         NewUserRepository(db),
		PolicyRepository:       NewPolicyRepository(db),
		RuleConfigRepository:   NewRuleConfigRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		AuditLogRepository:     NewAuditLogRepository(db),
	}
}
