package service

import (
	"context"
	"fmt"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/logger"
	"salesincentive-backend/internal/repository"
)

// metricExtractors maps each metric identifier to a pure accessor over a
// deal. Adding a metric means adding a registry entry; the evaluator's
// control flow never changes.
var metricExtractors = map[domain.RuleMetric]func(*domain.Deal) float64{
	domain.MetricDealAmount: func(d *domain.Deal) float64 { return d.Amount },
}

// TriggeredRule pairs a fired rule with the metric value that fired it.
type TriggeredRule struct {
	Rule  domain.RuleConfig `json:"rule"`
	Value float64           `json:"value"`
}

// EvaluateRules runs a rule snapshot against a deal. Rules with an unknown
// metric or operator never trigger. Rules are independent; any number may
// fire for the same deal.
func EvaluateRules(deal *domain.Deal, rules []domain.RuleConfig) []TriggeredRule {
	var triggered []TriggeredRule
	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		extract, ok := metricExtractors[rule.Metric]
		if !ok {
			continue
		}
		value := extract(deal)
		if compareMetric(rule.Operator, value, rule.Threshold) {
			triggered = append(triggered, TriggeredRule{Rule: rule, Value: value})
		}
	}
	return triggered
}

func compareMetric(op domain.RuleOperator, value, threshold float64) bool {
	switch op {
	case domain.OperatorGT:
		return value > threshold
	case domain.OperatorLT:
		return value < threshold
	case domain.OperatorEQ:
		return value == threshold
	default:
		return false
	}
}

type ruleService struct {
	ruleRepo repository.RuleConfigRepository
	userRepo repository.UserRepository
	noteRepo repository.NotificationRepository
}

func NewRuleService(
	ruleRepo repository.RuleConfigRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
) RuleService {
	return &ruleService{ruleRepo: ruleRepo, userRepo: userRepo, noteRepo: noteRepo}
}

// EvaluateDeal reads the active rule set fresh, evaluates it against the
// deal, and emits one alert per triggered rule per admin. Alert delivery is
// best-effort; a failed write never fails the evaluation.
func (s *ruleService) EvaluateDeal(ctx context.Context, deal *domain.Deal) ([]TriggeredRule, error) {
	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	triggered := EvaluateRules(deal, rules)
	if len(triggered) == 0 {
		return nil, nil
	}

	admins, err := s.userRepo.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		logger.Warn("rule alerts skipped, admin lookup failed", "deal_id", deal.ID, "error", err)
		return triggered, nil
	}

	for _, tr := range triggered {
		for _, admin := range admins {
			note := &domain.Notification{
				UserID: admin.ID,
				Title:  "Rule Triggered: " + tr.Rule.Name,
				Message: fmt.Sprintf("Deal #%d matched %s %s %.2f (value %.2f), action %s",
					deal.ID, tr.Rule.Metric, tr.Rule.Operator, tr.Rule.Threshold, tr.Value, tr.Rule.Action),
				Type: domain.NotificationTypeAlert,
			}
			if err := s.noteRepo.Create(ctx, note); err != nil {
				logger.Warn("failed to deliver rule alert", "deal_id", deal.ID, "rule", tr.Rule.Name, "admin_id", admin.ID, "error", err)
			}
		}
	}
	return triggered, nil
}
