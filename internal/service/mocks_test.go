package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"salesincentive-backend/internal/domain"
)

// MockDealRepo
type MockDealRepo struct {
	mock.Mock
}

func (m *MockDealRepo) Create(ctx context.Context, deal *domain.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}
func (m *MockDealRepo) GetByID(ctx context.Context, id int64) (*domain.Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}
func (m *MockDealRepo) Update(ctx context.Context, deal *domain.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}
func (m *MockDealRepo) List(ctx context.Context) ([]domain.Deal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Deal), args.Error(1)
}
func (m *MockDealRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Deal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Deal), args.Error(1)
}
func (m *MockDealRepo) ListByStatus(ctx context.Context, status domain.DealStatus) ([]domain.Deal, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Deal), args.Error(1)
}
func (m *MockDealRepo) ListByStatusAndRisk(ctx context.Context, status domain.DealStatus, risk domain.RiskLevel) ([]domain.Deal, error) {
	args := m.Called(ctx, status, risk)
	return args.Get(0).([]domain.Deal), args.Error(1)
}
func (m *MockDealRepo) ListByPayoutStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.Deal, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Deal), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockPolicyRepo
type MockPolicyRepo struct {
	mock.Mock
}

func (m *MockPolicyRepo) GetByID(ctx context.Context, id int64) (*domain.Policy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Policy), args.Error(1)
}
func (m *MockPolicyRepo) List(ctx context.Context) ([]domain.Policy, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Policy), args.Error(1)
}

// MockRuleConfigRepo
type MockRuleConfigRepo struct {
	mock.Mock
}

func (m *MockRuleConfigRepo) ListActive(ctx context.Context) ([]domain.RuleConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RuleConfig), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockAuditLogRepo
type MockAuditLogRepo struct {
	mock.Mock
}

func (m *MockAuditLogRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditLogRepo) List(ctx context.Context, limit, offset int32) ([]domain.AuditLog, int32, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.AuditLog), args.Get(1).(int32), args.Error(2)
}

// MockRuleService
type MockRuleService struct {
	mock.Mock
}

func (m *MockRuleService) EvaluateDeal(ctx context.Context, deal *domain.Deal) ([]TriggeredRule, error) {
	args := m.Called(ctx, deal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TriggeredRule), args.Error(1)
}
