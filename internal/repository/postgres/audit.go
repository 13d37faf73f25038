package postgres

import (
	"context"
	"database/sql"
	"time"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/repository"
)

type auditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	query := `INSERT INTO audit_logs (actor_id, actor_role, action, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		entry.ActorID, entry.ActorRole, entry.Action, entry.EntityType, entry.EntityID, entry.Details, time.Now(),
	).Scan(&entry.ID)
}

func (r *auditLogRepository) List(ctx context.Context, limit, offset int32) ([]domain.AuditLog, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM audit_logs`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, actor_id, actor_role, action, entity_type, entity_id, details, created_at
		FROM audit_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.AuditLog
	for rows.Next() {
		var e domain.AuditLog
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorRole, &e.Action, &e.EntityType, &e.EntityID, &e.Details, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, count, rows.Err()
}
