package postgres

import (
	"context"
	"database/sql"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/repository"
)

type policyRepository struct {
	db *sql.DB
}

func NewPolicyRepository(db *sql.DB) repository.PolicyRepository {
	return &policyRepository{db: db}
}

const policyColumns = `id, title, type, content, description, commission_rate,
	min_deal_amount, max_deal_amount, bonus_threshold, bonus_amount, last_updated, is_active`

func (r *policyRepository) GetByID(ctx context.Context, id int64) (*domain.Policy, error) {
	p := &domain.Policy{}
	err := r.db.QueryRowContext(ctx, `SELECT `+policyColumns+` FROM policies WHERE id = $1`, id).
		Scan(&p.ID, &p.Title, &p.Type, &p.Content, &p.Description, &p.CommissionRate,
			&p.MinDealAmount, &p.MaxDealAmount, &p.BonusThreshold, &p.BonusAmount, &p.LastUpdated, &p.Active)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("policy", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *policyRepository) List(ctx context.Context) ([]domain.Policy, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+policyColumns+` FROM policies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []domain.Policy
	for rows.Next() {
		var p domain.Policy
		if err := rows.Scan(&p.ID, &p.Title, &p.Type, &p.Content, &p.Description, &p.CommissionRate,
			&p.MinDealAmount, &p.MaxDealAmount, &p.BonusThreshold, &p.BonusAmount, &p.LastUpdated, &p.Active); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}
