package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/logger"
	"salesincentive-backend/internal/repository"
)

type dealService struct {
	dealRepo   repository.DealRepository
	userRepo   repository.UserRepository
	policyRepo repository.PolicyRepository
	ruleSvc    RuleService
	noteRepo   repository.NotificationRepository
	auditRepo  repository.AuditLogRepository
	now        func() time.Time
}

func NewDealService(
	dealRepo repository.DealRepository,
	userRepo repository.UserRepository,
	policyRepo repository.PolicyRepository,
	ruleSvc RuleService,
	noteRepo repository.NotificationRepository,
	auditRepo repository.AuditLogRepository,
) DealService {
	return &dealService{
		dealRepo:   dealRepo,
		userRepo:   userRepo,
		policyRepo: policyRepo,
		ruleSvc:    ruleSvc,
		noteRepo:   noteRepo,
		auditRepo:  auditRepo,
		now:        time.Now,
	}
}

func (s *dealService) CreateDeal(ctx context.Context, req CreateDealRequest) (*domain.Deal, error) {
	if req.Amount <= 0 {
		return nil, domain.Validationf("amount must be greater than 0")
	}

	owner, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return nil, domain.Validationf("user %d not found", req.UserID)
		}
		return nil, err
	}

	now := s.now()
	dealDate, err := parseOptionalDate(req.Date, now)
	if err != nil {
		return nil, err
	}
	expectedClose, err := parseOptionalDate(req.ExpectedCloseDate, time.Time{})
	if err != nil {
		return nil, err
	}

	var policy *domain.Policy
	if req.PolicyID != nil {
		policy, err = s.policyRepo.GetByID(ctx, *req.PolicyID)
		if err != nil {
			return nil, err
		}
	}

	rate, incentive := ComputeCommission(req.Amount, req.Rate, req.Incentive, policy)

	status := domain.DealStatusDraft
	if req.CreatedBy != nil {
		status = domain.DealStatusAssigned
	}

	currency := req.Currency
	if currency == "" {
		currency = "₹"
	}

	deal := &domain.Deal{
		UserID:           req.UserID,
		Date:             dealDate,
		Amount:           req.Amount,
		Rate:             rate,
		Incentive:        incentive,
		Status:           status,
		RiskLevel:        AssessRisk(req.Amount, rate),
		DealName:         req.DealName,
		OrganizationName: req.OrganizationName,
		DealType:         req.DealType,
		Priority:         req.Priority,
		DealNotes:        req.DealNotes,
		PolicyID:         req.PolicyID,
		CreatedBy:        req.CreatedBy,
		ClientName:       req.ClientName,
		Industry:         req.Industry,
		Region:           req.Region,
		Currency:         currency,
		PayoutStatus:     domain.PayoutStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if expectedClose != nil {
		deal.ExpectedCloseDate = expectedClose
	}

	if err := s.dealRepo.Create(ctx, deal); err != nil {
		return nil, err
	}

	if _, err := s.ruleSvc.EvaluateDeal(ctx, deal); err != nil {
		logger.Warn("rule evaluation failed", "deal_id", deal.ID, "error", err)
	}

	submitted := domain.NewNotificationEvent(
		domain.AudienceAdmins,
		fmt.Sprintf("New Deal Submitted (%s Risk)", deal.RiskLevel),
		fmt.Sprintf("Sales Exec %s submitted a deal of %s%.2f", owner.Name, currency, deal.Amount),
		domain.NotificationTypeInfo,
	)
	s.dispatch(ctx, deal, []domain.Event{submitted})

	return deal, nil
}

func (s *dealService) GetDeal(ctx context.Context, id int64) (*domain.Deal, error) {
	return s.dealRepo.GetByID(ctx, id)
}

func (s *dealService) ListDeals(ctx context.Context, userID *int64) ([]domain.Deal, error) {
	if userID == nil {
		return s.dealRepo.List(ctx)
	}
	return s.dealRepo.ListByUser(ctx, *userID)
}

func (s *dealService) TransitionStatus(ctx context.Context, dealID int64, status string, reason, comment *string, actorID *int64) (*domain.Deal, error) {
	newStatus, err := domain.ParseDealStatus(status)
	if err != nil {
		return nil, domain.Validationf("unknown status %q", status)
	}

	deal, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}

	events, err := deal.Transition(domain.TransitionInput{
		To:      newStatus,
		Reason:  reason,
		Comment: comment,
		ActorID: actorID,
	}, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.dealRepo.Update(ctx, deal); err != nil {
		return nil, err
	}

	s.dispatch(ctx, deal, events)
	return deal, nil
}

// BulkAutoApprove transitions every Pending LOW-risk deal to Approved. Deals
// are processed independently: a failed write on one deal is logged and does
// not abort the rest.
func (s *dealService) BulkAutoApprove(ctx context.Context) ([]domain.Deal, error) {
	pending, err := s.dealRepo.ListByStatusAndRisk(ctx, domain.DealStatusPending, domain.RiskLow)
	if err != nil {
		return nil, err
	}

	var approved []domain.Deal
	for i := range pending {
		deal := &pending[i]
		events := deal.AutoApprove(s.now())
		if err := s.dealRepo.Update(ctx, deal); err != nil {
			logger.Error("bulk auto-approve failed for deal", "deal_id", deal.ID, "error", err)
			continue
		}
		s.dispatch(ctx, deal, events)
		approved = append(approved, *deal)
	}

	logger.Info("bulk auto-approve completed", "candidates", len(pending), "approved", len(approved))
	return approved, nil
}

func (s *dealService) ListPayouts(ctx context.Context, userID int64) ([]domain.Payout, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	deals, err := s.dealRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var payouts []domain.Payout
	for _, d := range deals {
		if d.Status != domain.DealStatusApproved {
			continue
		}
		date := d.CreatedAt
		if d.ActualCloseDate != nil {
			date = *d.ActualCloseDate
		} else if d.Date != nil {
			date = *d.Date
		}
		payouts = append(payouts, domain.Payout{
			DealID: d.ID,
			Amount: d.Incentive,
			Date:   date,
			Status: d.PayoutStatus,
		})
	}
	return payouts, nil
}

// dispatch delivers emitted events to the notification and audit sinks.
// Delivery is fire-and-forget: failures are logged and swallowed so the
// primary state change always wins.
func (s *dealService) dispatch(ctx context.Context, deal *domain.Deal, events []domain.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case domain.EventAudit:
			entry := &domain.AuditLog{
				ActorID:    ev.ActorID,
				ActorRole:  ev.ActorRole,
				Action:     ev.Action,
				EntityType: ev.EntityType,
				EntityID:   ev.EntityID,
				Details:    ev.Details,
			}
			if err := s.auditRepo.Create(ctx, entry); err != nil {
				logger.Warn("audit write failed", "event_id", ev.ID, "deal_id", deal.ID, "error", err)
			}
		case domain.EventNotification:
			for _, userID := range s.resolveAudience(ctx, deal, ev.Audience) {
				note := &domain.Notification{
					UserID:  userID,
					Title:   ev.Title,
					Message: ev.Message,
					Type:    ev.Type,
				}
				if err := s.noteRepo.Create(ctx, note); err != nil {
					logger.Warn("notification write failed", "event_id", ev.ID, "user_id", userID, "error", err)
				}
			}
		}
	}
}

func (s *dealService) resolveAudience(ctx context.Context, deal *domain.Deal, audience domain.Audience) []int64 {
	switch audience {
	case domain.AudienceOwner:
		return []int64{deal.UserID}
	case domain.AudienceAdmins:
		admins, err := s.userRepo.ListByRole(ctx, domain.RoleAdmin)
		if err != nil {
			logger.Warn("admin fan-out skipped", "deal_id", deal.ID, "error", err)
			return nil
		}
		ids := make([]int64, 0, len(admins))
		for _, a := range admins {
			ids = append(ids, a.ID)
		}
		return ids
	}
	return nil
}

func parseOptionalDate(s *string, fallback time.Time) (*time.Time, error) {
	if s == nil || *s == "" {
		if fallback.IsZero() {
			return nil, nil
		}
		d := time.Date(fallback.Year(), fallback.Month(), fallback.Day(), 0, 0, 0, 0, fallback.Location())
		return &d, nil
	}
	parsed, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, domain.Validationf("invalid date %q, expected yyyy-mm-dd", *s)
	}
	return &parsed, nil
}
