package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salesincentive-backend/internal/domain"
)

func TestEvaluateRules(t *testing.T) {
	deal := &domain.Deal{ID: 1, Amount: 300000}

	t.Run("GT Triggers", func(t *testing.T) {
		rules := []domain.RuleConfig{
			{ID: 1, Name: "big deal", Metric: domain.MetricDealAmount, Operator: domain.OperatorGT, Threshold: 250000, Action: domain.ActionNotifyAdmin, Active: true},
		}
		triggered := EvaluateRules(deal, rules)
		require.Len(t, triggered, 1)
		assert.Equal(t, int64(1), triggered[0].Rule.ID)
		assert.Equal(t, 300000.0, triggered[0].Value)
	})

	t.Run("Inactive Rule Skipped", func(t *testing.T) {
		rules := []domain.RuleConfig{
			{ID: 1, Metric: domain.MetricDealAmount, Operator: domain.OperatorGT, Threshold: 1, Active: false},
		}
		assert.Empty(t, EvaluateRules(deal, rules))
	})

	t.Run("Unknown Metric Never Triggers", func(t *testing.T) {
		rules := []domain.RuleConfig{
			{ID: 1, Metric: "WIN_RATE", Operator: domain.OperatorGT, Threshold: 1, Active: true},
		}
		assert.Empty(t, EvaluateRules(deal, rules))
	})

	t.Run("Unknown Operator Never Triggers", func(t *testing.T) {
		rules := []domain.RuleConfig{
			{ID: 1, Metric: domain.MetricDealAmount, Operator: "GTE", Threshold: 1, Active: true},
		}
		assert.Empty(t, EvaluateRules(deal, rules))
	})

	t.Run("Multiple Rules Fire Independently", func(t *testing.T) {
		rules := []domain.RuleConfig{
			{ID: 1, Metric: domain.MetricDealAmount, Operator: domain.OperatorGT, Threshold: 100000, Active: true},
			{ID: 2, Metric: domain.MetricDealAmount, Operator: domain.OperatorLT, Threshold: 400000, Active: true},
			{ID: 3, Metric: domain.MetricDealAmount, Operator: domain.OperatorEQ, Threshold: 300000, Active: true},
			{ID: 4, Metric: domain.MetricDealAmount, Operator: domain.OperatorGT, Threshold: 999999, Active: true},
		}
		triggered := EvaluateRules(deal, rules)
		assert.Len(t, triggered, 3)
	})
}

func TestRuleService_EvaluateDeal(t *testing.T) {
	ctx := context.Background()
	deal := &domain.Deal{ID: 5, Amount: 300000}
	rule := domain.RuleConfig{ID: 1, Name: "big deal", Metric: domain.MetricDealAmount, Operator: domain.OperatorGT, Threshold: 250000, Action: domain.ActionNotifyAdmin, Active: true}

	t.Run("Alerts Every Admin Per Rule", func(t *testing.T) {
		ruleRepo := new(MockRuleConfigRepo)
		userRepo := new(MockUserRepo)
		noteRepo := new(MockNotificationRepo)
		svc := NewRuleService(ruleRepo, userRepo, noteRepo)

		ruleRepo.On("ListActive", ctx).Return([]domain.RuleConfig{rule}, nil)
		userRepo.On("ListByRole", ctx, domain.RoleAdmin).Return([]domain.User{{ID: 10}, {ID: 11}}, nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		triggered, err := svc.EvaluateDeal(ctx, deal)
		assert.NoError(t, err)
		assert.Len(t, triggered, 1)
		noteRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("No Trigger Means No Lookup", func(t *testing.T) {
		ruleRepo := new(MockRuleConfigRepo)
		userRepo := new(MockUserRepo)
		noteRepo := new(MockNotificationRepo)
		svc := NewRuleService(ruleRepo, userRepo, noteRepo)

		ruleRepo.On("ListActive", ctx).Return([]domain.RuleConfig{}, nil)

		triggered, err := svc.EvaluateDeal(ctx, deal)
		assert.NoError(t, err)
		assert.Empty(t, triggered)
		userRepo.AssertNotCalled(t, "ListByRole")
	})

	t.Run("Alert Failure Is Swallowed", func(t *testing.T) {
		ruleRepo := new(MockRuleConfigRepo)
		userRepo := new(MockUserRepo)
		noteRepo := new(MockNotificationRepo)
		svc := NewRuleService(ruleRepo, userRepo, noteRepo)

		ruleRepo.On("ListActive", ctx).Return([]domain.RuleConfig{rule}, nil)
		userRepo.On("ListByRole", ctx, domain.RoleAdmin).Return([]domain.User{{ID: 10}}, nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(errors.New("db down"))

		triggered, err := svc.EvaluateDeal(ctx, deal)
		assert.NoError(t, err)
		assert.Len(t, triggered, 1)
	})
}
