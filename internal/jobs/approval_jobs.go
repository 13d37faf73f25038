package jobs

import (
	"context"

	"salesincentive-backend/internal/logger"
)

// AutoApproveLowRisk runs the bulk low-risk approval over all Pending deals.
func (jr *JobRunner) AutoApproveLowRisk() {
	jr.runWithRecovery("AutoApproveLowRisk", func() {
		ctx := context.Background()

		approved, err := jr.services.Deal.BulkAutoApprove(ctx)
		if err != nil {
			logger.Error("Failed to auto-approve low risk deals", "error", err)
			return
		}

		logger.Info("Auto-approved low risk deals", "count", len(approved))
	})
}
