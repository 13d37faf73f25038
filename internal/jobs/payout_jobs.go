package jobs

import (
	"context"
	"time"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/logger"
)

// ProcessPayouts moves approved deals from PENDING into PROCESSING. A deal
// whose approval workflow has not finished is left untouched; payout state
// only leaves PENDING once the deal is Approved.
func (jr *JobRunner) ProcessPayouts() {
	jr.runWithRecovery("ProcessPayouts", func() {
		ctx := context.Background()

		pending, err := jr.store.DealRepository.ListByPayoutStatus(ctx, domain.PayoutStatusPending)
		if err != nil {
			logger.Error("Failed to list pending payouts", "error", err)
			return
		}

		moved := 0
		for i := range pending {
			deal := &pending[i]
			if deal.Status != domain.DealStatusApproved {
				continue
			}
			deal.PayoutStatus = domain.PayoutStatusProcessing
			if err := jr.store.DealRepository.Update(ctx, deal); err != nil {
				logger.Error("Failed to move payout to processing", "deal_id", deal.ID, "error", err)
				continue
			}
			moved++
		}

		logger.Info("Moved pending payouts to processing", "candidates", len(pending), "moved", moved)
	})
}

// CompletePayouts marks PROCESSING payouts as PAID and stamps the payout
// date.
func (jr *JobRunner) CompletePayouts() {
	jr.runWithRecovery("CompletePayouts", func() {
		ctx := context.Background()

		processing, err := jr.store.DealRepository.ListByPayoutStatus(ctx, domain.PayoutStatusProcessing)
		if err != nil {
			logger.Error("Failed to list processing payouts", "error", err)
			return
		}

		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		paid := 0
		for i := range processing {
			deal := &processing[i]
			deal.PayoutStatus = domain.PayoutStatusPaid
			deal.PayoutDate = &today
			if err := jr.store.DealRepository.Update(ctx, deal); err != nil {
				logger.Error("Failed to mark payout as paid", "deal_id", deal.ID, "error", err)
				continue
			}
			paid++
		}

		logger.Info("Completed payouts", "candidates", len(processing), "paid", paid)
	})
}
