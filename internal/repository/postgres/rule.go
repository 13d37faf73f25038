package postgres

import (
	"context"
	"database/sql"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/repository"
)

type ruleConfigRepository struct {
	db *sql.DB
}

func NewRuleConfigRepository(db *sql.DB) repository.RuleConfigRepository {
	return &ruleConfigRepository{db: db}
}

// ListActive reads the active rule set fresh on every call so config edits
// take effect on the next evaluation.
func (r *ruleConfigRepository) ListActive(ctx context.Context) ([]domain.RuleConfig, error) {
	query := `SELECT id, name, metric, operator, threshold, action, active
		FROM rule_configs WHERE active = true ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.RuleConfig
	for rows.Next() {
		var rc domain.RuleConfig
		if err := rows.Scan(&rc.ID, &rc.Name, &rc.Metric, &rc.Operator, &rc.Threshold, &rc.Action, &rc.Active); err != nil {
			return nil, err
		}
		rules = append(rules, rc)
	}
	return rules, rows.Err()
}
